package subjects

// DomainLevel is the mastery band shown on a subject card.
type DomainLevel int

const (
	NotEvaluated DomainLevel = 0
	Basic        DomainLevel = 2
	Intermediate DomainLevel = 3
	Advanced     DomainLevel = 4
)

// LevelInfo is the presentation of one domain level.
type LevelInfo struct {
	Level      DomainLevel
	Label      string
	Color      string
	BadgeColor string
	TextColor  string
}

var domainLevels = map[int]LevelInfo{
	0: {NotEvaluated, "No Evaluado", "from-slate-600 to-slate-700", "bg-slate-600", "text-slate-300"},
	1: {NotEvaluated, "Sin Dominio", "from-red-600 to-rose-600", "bg-red-600", "text-red-300"},
	2: {Basic, "Básico", "from-yellow-500 to-amber-500", "bg-yellow-500", "text-yellow-300"},
	3: {Intermediate, "Intermedio", "from-green-500 to-emerald-500", "bg-green-500", "text-green-300"},
	4: {Advanced, "Avanzado", "from-blue-500 to-indigo-500", "bg-blue-500", "text-blue-300"},
}

// DomainLevelInfo returns the presentation of level; unknown levels read
// as not evaluated.
func DomainLevelInfo(level int) LevelInfo {
	if info, ok := domainLevels[level]; ok {
		return info
	}
	return domainLevels[0]
}
