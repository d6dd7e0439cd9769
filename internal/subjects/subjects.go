// Package subjects turns backend subjects into their display form.
package subjects

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/platanus-hack-25/lumera-cli/internal/api"
)

// Subject is a subject as shown on the dashboard.
type Subject struct {
	ID          string `json:"id"` // lowercase subject code
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Color       string `json:"color"` // gradient classes
	Description string `json:"description"`
}

// DefaultIcon is used when neither code nor name is known.
const DefaultIcon = "📚"

// DefaultGradient is used for colors outside the palette.
const DefaultGradient = "from-slate-500 to-gray-600"

var icons = map[string]string{
	"MAT":         "📐",
	"MATEMATICAS": "📐",
	"LYL":         "📖",
	"LENGUAJE":    "📖",
	"LENGUA":      "📖",
	"HIS":         "🌍",
	"HISTORIA":    "🌍",
	"CNA":         "🔬",
	"CIENCIAS":    "🔬",
	"FIS":         "⚛️",
	"FISICA":      "⚛️",
	"QUI":         "⚗️",
	"QUIMICA":     "⚗️",
	"BIO":         "🧬",
	"BIOLOGIA":    "🧬",
	"ING":         "🗣️",
	"INGLES":      "🗣️",
	"FIL":         "🤔",
	"FILOSOFIA":   "🤔",
	"ART":         "🎨",
	"ARTES":       "🎨",
	"MUS":         "🎵",
	"MUSICA":      "🎵",
	"EDF":         "⚽",
	"ED_FISICA":   "⚽",
}

// gradients maps the backend palette (uppercase hex) to gradient classes.
var gradients = map[string]string{
	"#EF4444": "from-red-500 to-rose-500",
	"#F87171": "from-red-400 to-red-500",
	"#DC2626": "from-red-600 to-red-700",

	"#3B82F6": "from-blue-500 to-cyan-500",
	"#60A5FA": "from-blue-400 to-blue-500",
	"#2563EB": "from-blue-600 to-indigo-600",

	"#10B981": "from-emerald-500 to-green-500",
	"#34D399": "from-emerald-400 to-green-400",
	"#059669": "from-emerald-600 to-green-600",

	"#8B5CF6": "from-violet-500 to-purple-500",
	"#A78BFA": "from-violet-400 to-purple-400",
	"#7C3AED": "from-violet-600 to-purple-600",

	"#F59E0B": "from-amber-500 to-orange-500",
	"#FBBF24": "from-amber-400 to-yellow-400",
	"#D97706": "from-amber-600 to-orange-600",

	"#EC4899": "from-pink-500 to-rose-500",
	"#F472B6": "from-pink-400 to-rose-400",
	"#DB2777": "from-pink-600 to-rose-600",

	"#14B8A6": "from-teal-500 to-cyan-500",
	"#2DD4BF": "from-teal-400 to-cyan-400",
	"#0D9488": "from-teal-600 to-cyan-600",

	"#6366F1": "from-indigo-500 to-purple-500",
	"#818CF8": "from-indigo-400 to-purple-400",
	"#4F46E5": "from-indigo-600 to-purple-600",
}

// Gradient returns the gradient for a hex color, ignoring case.
func Gradient(hex string) string {
	if g, ok := gradients[strings.ToUpper(hex)]; ok {
		return g
	}
	return DefaultGradient
}

var spaces = regexp.MustCompile(`\s+`)

// Icon returns the icon for a subject, looked up by code first and then by
// its name uppercased, with accents dropped and spaces as underscores.
func Icon(codigo, nombre string) string {
	if icon, ok := icons[strings.ToUpper(codigo)]; ok {
		return icon
	}
	if icon, ok := icons[nameKey(nombre)]; ok {
		return icon
	}
	return DefaultIcon
}

func nameKey(nombre string) string {
	key := spaces.ReplaceAllString(strings.ToUpper(nombre), "_")
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, key)
	if err != nil {
		return key
	}
	return stripped
}

// FromMateria converts a backend subject.
func FromMateria(m api.Materia) Subject {
	return Subject{
		ID:          strings.ToLower(m.Codigo),
		Name:        m.Nombre,
		Icon:        Icon(m.Codigo, m.Nombre),
		Color:       Gradient(m.Color),
		Description: m.Descripcion,
	}
}

// FromMaterias converts a list of backend subjects, keeping order.
func FromMaterias(ms []api.Materia) []Subject {
	out := make([]Subject, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMateria(m))
	}
	return out
}
