package profile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platanus-hack-25/lumera-cli/internal/api"
)

func data(t *testing.T, s string) api.ProfileData {
	t.Helper()
	var d api.ProfileData
	require.NoError(t, json.Unmarshal([]byte(s), &d))
	return d
}

const stored = `{
	"conocimiento_previo": {"MAT": {"nivel": 3, "fuente": "diagnostico"},   "LYL": {"nivel": 2, "fuente": "autoevaluacion"}},
	"preferencias_aprendizaje": {"tipo_actividad": ["juego"]},
	"perfil_cognitivo": {"estilo_cognitivo": "visual", "memoria_trabajo": 0.7},
	"motivacion": {"intrinseca": 0.8}
}`

func TestMergeKeepsBothNestedKeys(t *testing.T) {
	cur := data(t, stored)
	merged, err := Merge(cur, data(t, `{"preferencias_aprendizaje": {"formato_preferido": "visual"}}`))
	require.NoError(t, err)

	assert.JSONEq(t, `{"tipo_actividad":["juego"],"formato_preferido":"visual"}`,
		string(merged[KeyPreferenciasAprendizaje]))
}

func TestMergeLeavesUntouchedKeysByteIdentical(t *testing.T) {
	cur := data(t, stored)
	merged, err := Merge(cur, data(t, `{"autonomia": {"nivel": "alta"}}`))
	require.NoError(t, err)

	assert.Equal(t, string(cur[KeyConocimientoPrevio]), string(merged[KeyConocimientoPrevio]))
	assert.Equal(t, string(cur[KeyPerfilCognitivo]), string(merged[KeyPerfilCognitivo]))
	assert.JSONEq(t, `{"nivel":"alta"}`, string(merged[KeyAutonomia]))
}

func TestMergeAllowList(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		partial string
		want    string
	}{
		{
			name:    "conocimiento_previo merges subjects",
			key:     KeyConocimientoPrevio,
			partial: `{"conocimiento_previo": {"HIS": {"nivel": 1, "fuente": "diagnostico"}, "MAT": {"nivel": 4, "fuente": "diagnostico"}}}`,
			want:    `{"MAT":{"nivel":4,"fuente":"diagnostico"},"LYL":{"nivel":2,"fuente":"autoevaluacion"},"HIS":{"nivel":1,"fuente":"diagnostico"}}`,
		},
		{
			name:    "motivacion merges",
			key:     KeyMotivacion,
			partial: `{"motivacion": {"interes_actual": "ciencia"}}`,
			want:    `{"intrinseca":0.8,"interes_actual":"ciencia"}`,
		},
		{
			name:    "perfil_cognitivo is replaced whole",
			key:     KeyPerfilCognitivo,
			partial: `{"perfil_cognitivo": {"estilo_cognitivo": "verbal"}}`,
			want:    `{"estilo_cognitivo":"verbal"}`,
		},
		{
			name:    "intereses_personales absent before is set",
			key:     KeyInteresesPersonales,
			partial: `{"intereses_personales": {"temas": ["robots"]}}`,
			want:    `{"temas":["robots"]}`,
		},
		{
			name:    "non-object overlay replaces",
			key:     KeyPreferenciasAprendizaje,
			partial: `{"preferencias_aprendizaje": null}`,
			want:    `null`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, err := Merge(data(t, stored), data(t, tt.partial))
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(merged[tt.key]))
		})
	}
}

func TestMergeDoesNotModifyInputs(t *testing.T) {
	cur := data(t, stored)
	before := string(cur[KeyPreferenciasAprendizaje])
	partial := data(t, `{"preferencias_aprendizaje": {"canal_preferido": "audio"}}`)

	_, err := Merge(cur, partial)
	require.NoError(t, err)
	assert.Equal(t, before, string(cur[KeyPreferenciasAprendizaje]))
	assert.Len(t, partial, 1)
}

func TestMergeEmpty(t *testing.T) {
	merged, err := Merge(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, merged)

	merged, err = Merge(nil, data(t, `{"motivacion": {"intrinseca": 1}}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"intrinseca":1}`, string(merged[KeyMotivacion]))
}

func TestDecodeView(t *testing.T) {
	v, err := Decode(data(t, stored))
	require.NoError(t, err)
	assert.Equal(t, 3, v.ConocimientoPrevio["MAT"].Nivel)
	assert.Equal(t, []string{"juego"}, v.PreferenciasAprendizaje.TipoActividad)
	assert.Equal(t, "visual", v.PerfilCognitivo.EstiloCognitivo)
	assert.Nil(t, v.Autonomia)
}
