package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// Cursos lists every course.
func (c *Client) Cursos(ctx context.Context) ([]Curso, error) {
	var out []Curso
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/api/cursos",
		fallback: "Failed to fetch courses",
	}, &out)
	return out, err
}

// Curso fetches one course with its subjects.
func (c *Client) Curso(ctx context.Context, id int64) (*Curso, error) {
	var out Curso
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     pathf("/api/cursos/%s", id),
		fallback: "Failed to fetch course",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Materias lists the active subjects.
func (c *Client) Materias(ctx context.Context) ([]Materia, error) {
	var out []Materia
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/api/materias",
		query:    url.Values{"activo": {"true"}},
		fallback: "Failed to fetch subjects",
	}, &out)
	return out, err
}

// gradeAliases maps a grade ordinal to the words and course code that
// identify it, e.g. "primero" or "1M".
var gradeAliases = []struct {
	digit string
	word  string
	code  string
}{
	{"1", "primero", "1M"},
	{"2", "segundo", "2M"},
	{"3", "tercero", "3M"},
	{"4", "cuarto", "4M"},
}

// MatchCurso picks the course that name refers to: an exact
// case-insensitive name match first, then the grade heuristics ("1",
// "primero" → code 1M or a name containing "primero", and so on up to
// "cuarto"). It returns nil when nothing matches.
func MatchCurso(cursos []Curso, name string) *Curso {
	lower := strings.ToLower(strings.TrimSpace(name))
	for i := range cursos {
		if strings.ToLower(cursos[i].Nombre) == lower {
			return &cursos[i]
		}
	}
	for _, g := range gradeAliases {
		if !strings.Contains(lower, g.digit) && !strings.Contains(lower, g.word) {
			continue
		}
		for i := range cursos {
			if cursos[i].Codigo == g.code || strings.Contains(strings.ToLower(cursos[i].Nombre), g.word) {
				return &cursos[i]
			}
		}
		// Only the first grade mentioned in name is tried.
		return nil
	}
	return nil
}

// FindCursoByName resolves a course by its display name and then fetches
// it in full (with subjects). A name matching nothing is KindNotFound.
func (c *Client) FindCursoByName(ctx context.Context, name string) (*Curso, error) {
	cursos, err := c.Cursos(ctx)
	if err != nil {
		return nil, err
	}
	match := MatchCurso(cursos, name)
	if match == nil {
		return nil, &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: "Course not found"}
	}
	return c.Curso(ctx, match.ID)
}
