package assessment

import "math"

// Level is a diagnostic mastery bucket, 0 (no mastery) to 4 (expert).
type Level int

const (
	SinDominio Level = iota
	Basico
	Intermedio
	Avanzado
	Experto
)

var levelLabels = [...]string{
	SinDominio: "Sin Dominio",
	Basico:     "Básico",
	Intermedio: "Intermedio",
	Avanzado:   "Avanzado",
	Experto:    "Experto",
}

// Label returns the Spanish display name of l.
func (l Level) Label() string {
	if l < SinDominio || l > Experto {
		return levelLabels[SinDominio]
	}
	return levelLabels[l]
}

// Bucketize maps a percentage of correct answers to a Level:
// >=86 → 4, >=71 → 3, >=51 → 2, >=26 → 1, else 0. Values above 100
// land in 4 and negative values in 0.
func Bucketize(percent int) Level {
	switch {
	case percent >= 86:
		return Experto
	case percent >= 71:
		return Avanzado
	case percent >= 51:
		return Intermedio
	case percent >= 26:
		return Basico
	default:
		return SinDominio
	}
}

// LevelResult is the outcome of CalculateLevel.
type LevelResult struct {
	Level      Level
	Label      string
	Percentage int
}

// CalculateLevel rounds correct/total to a whole percentage (halves round
// up) and buckets it. A zero total counts as 0%.
func CalculateLevel(correct, total int) LevelResult {
	pct := 0
	if total > 0 {
		pct = int(math.Round(float64(correct) / float64(total) * 100))
	}
	pct = min(max(pct, 0), 100)
	l := Bucketize(pct)
	return LevelResult{Level: l, Label: l.Label(), Percentage: pct}
}

var feedback = [...]string{
	SinDominio: "No te preocupes, estamos aquí para ayudarte a fortalecer tus bases en Lengua y Literatura. Comenzaremos con conceptos fundamentales.",
	Basico:     "Tienes una base inicial en Lengua. Trabajaremos para fortalecer tus conocimientos y desarrollar nuevas habilidades.",
	Intermedio: "Demuestras un buen manejo de Lengua y Literatura. Vamos a profundizar en conceptos más complejos y análisis crítico.",
	Avanzado:   "Excelente nivel en Lengua. Estás listo para desafíos más avanzados en análisis literario y producción de textos complejos.",
	Experto:    "¡Sobresaliente! Tienes un dominio experto de Lengua y Literatura. Te propondremos actividades de alto nivel y pensamiento crítico.",
}

// FeedbackMessage returns the encouragement shown after a diagnostic.
// Unknown levels get the level 0 message.
func FeedbackMessage(l Level) string {
	if l < SinDominio || l > Experto {
		return feedback[SinDominio]
	}
	return feedback[l]
}
