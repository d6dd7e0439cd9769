package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketizeBoundaries(t *testing.T) {
	tests := []struct {
		pct  int
		want Level
	}{
		{0, SinDominio},
		{25, SinDominio},
		{26, Basico},
		{50, Basico},
		{51, Intermedio},
		{70, Intermedio},
		{71, Avanzado},
		{85, Avanzado},
		{86, Experto},
		{100, Experto},
		{-5, SinDominio},
		{140, Experto},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Bucketize(tt.pct), "Bucketize(%d)", tt.pct)
	}
}

func TestBucketizeMonotonic(t *testing.T) {
	prev := Bucketize(0)
	for p := 0; p <= 100; p++ {
		got := Bucketize(p)
		assert.GreaterOrEqual(t, got, prev, "p=%d", p)
		assert.True(t, got >= SinDominio && got <= Experto)
		prev = got
	}
}

func TestCalculateLevel(t *testing.T) {
	tests := []struct {
		name           string
		correct, total int
		want           LevelResult
	}{
		{"all correct", 12, 12, LevelResult{Experto, "Experto", 100}},
		{"none", 0, 12, LevelResult{SinDominio, "Sin Dominio", 0}},
		{"half rounds up", 1, 8, LevelResult{SinDominio, "Sin Dominio", 13}},
		{"3 of 12", 3, 12, LevelResult{SinDominio, "Sin Dominio", 25}},
		{"4 of 12", 4, 12, LevelResult{Basico, "Básico", 33}},
		{"7 of 12", 7, 12, LevelResult{Intermedio, "Intermedio", 58}},
		{"9 of 12", 9, 12, LevelResult{Avanzado, "Avanzado", 75}},
		{"11 of 12", 11, 12, LevelResult{Experto, "Experto", 92}},
		{"zero total", 0, 0, LevelResult{SinDominio, "Sin Dominio", 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateLevel(tt.correct, tt.total))
		})
	}
}

func TestFeedbackMessage(t *testing.T) {
	for l := SinDominio; l <= Experto; l++ {
		assert.NotEmpty(t, FeedbackMessage(l))
	}
	assert.Equal(t, FeedbackMessage(SinDominio), FeedbackMessage(Level(9)))
	assert.Contains(t, FeedbackMessage(Experto), "Sobresaliente")
}

func TestLevelLabel(t *testing.T) {
	assert.Equal(t, "Intermedio", Intermedio.Label())
	assert.Equal(t, "Sin Dominio", Level(-1).Label())
}
