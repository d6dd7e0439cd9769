// Package profile reads and updates the learner's profile. Updates are
// merged into the stored profile on the client and written back whole.
package profile

import (
	"encoding/json"
	"fmt"

	"github.com/platanus-hack-25/lumera-cli/internal/api"
)

// Top-level ProfileData keys.
const (
	KeyConocimientoPrevio      = "conocimiento_previo"
	KeyPerfilCognitivo         = "perfil_cognitivo"
	KeyPreferenciasAprendizaje = "preferencias_aprendizaje"
	KeyMotivacion              = "motivacion"
	KeyAutoeficacia            = "autoeficacia"
	KeyAutonomia               = "autonomia"
	KeyInteresesPersonales     = "intereses_personales"
	KeyUltimaActualizacion     = "ultima_actualizacion"
)

// Conocimiento is the prior knowledge recorded for one subject.
type Conocimiento struct {
	Nivel  int    `json:"nivel"`
	Fuente string `json:"fuente"`
}

type PerfilCognitivo struct {
	MemoriaTrabajo         *float64 `json:"memoria_trabajo,omitempty"`
	RazonamientoInductivo  *float64 `json:"razonamiento_inductivo,omitempty"`
	EstiloCognitivo        string   `json:"estilo_cognitivo,omitempty"`
	CargaCognitivaTolerada string   `json:"carga_cognitiva_tolerada,omitempty"`
}

type PreferenciasAprendizaje struct {
	FormatoPreferido string   `json:"formato_preferido,omitempty"`
	TipoActividad    []string `json:"tipo_actividad,omitempty"`
	CanalPreferido   string   `json:"canal_preferido,omitempty"`
}

type Motivacion struct {
	Intrinseca      *float64 `json:"intrinseca,omitempty"`
	Extrinseca      *float64 `json:"extrinseca,omitempty"`
	InteresActual   string   `json:"interes_actual,omitempty"`
	OrientacionMeta string   `json:"orientacion_meta,omitempty"`
}

type Autoeficacia struct {
	General             *float64 `json:"general,omitempty"`
	ConfianzaResolutiva *float64 `json:"confianza_resolutiva,omitempty"`
}

type Autonomia struct {
	Nivel          string   `json:"nivel,omitempty"`
	GestionaTiempo *bool    `json:"gestiona_tiempo,omitempty"`
	Estrategias    []string `json:"estrategias,omitempty"`
}

type InteresesPersonales struct {
	Temas           []string `json:"temas,omitempty"`
	ProfesionSoñada string   `json:"profesion_soñada,omitempty"`
}

// View is a typed, read-only decoding of api.ProfileData.
type View struct {
	ConocimientoPrevio      map[string]Conocimiento  `json:"conocimiento_previo,omitempty"`
	PerfilCognitivo         *PerfilCognitivo         `json:"perfil_cognitivo,omitempty"`
	PreferenciasAprendizaje *PreferenciasAprendizaje `json:"preferencias_aprendizaje,omitempty"`
	Motivacion              *Motivacion              `json:"motivacion,omitempty"`
	Autoeficacia            *Autoeficacia            `json:"autoeficacia,omitempty"`
	Autonomia               *Autonomia               `json:"autonomia,omitempty"`
	InteresesPersonales     *InteresesPersonales     `json:"intereses_personales,omitempty"`
	UltimaActualizacion     string                   `json:"ultima_actualizacion,omitempty"`
}

// Decode builds a View of d.
func Decode(d api.ProfileData) (View, error) {
	var v View
	raw, err := json.Marshal(d)
	if err != nil {
		return v, fmt.Errorf("encode profile data: %w", err)
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("decode profile data: %w", err)
	}
	return v, nil
}

// Update is a partial profile change. Only the Data keys present are
// touched; see Merge.
type Update struct {
	Edad        *int
	CursoActual string
	Data        api.ProfileData
}

// Set encodes v under the top-level key.
func (u *Update) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if u.Data == nil {
		u.Data = api.ProfileData{}
	}
	u.Data[key] = raw
	return nil
}
