package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/platanus-hack-25/lumera-cli/internal/api"
	"github.com/platanus-hack-25/lumera-cli/internal/subjects"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List school grades",
	RunE: func(cmd *cobra.Command, args []string) error {
		cursos, err := rt.client.Cursos(cmd.Context())
		if err != nil {
			return fmt.Errorf("list courses: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%5s  %-6s  %-28s  %s\n", "ID", "Código", "Nombre", "Nivel")
		fmt.Fprintln(out, strings.Repeat("─", 60))
		for _, c := range cursos {
			fmt.Fprintf(out, "%5d  %-6s  %-28s  %s\n", c.ID, c.Codigo, truncate(c.Nombre, 28), c.NivelEducativo)
		}
		fmt.Fprintf(out, "\n%d cursos\n", len(cursos))
		return nil
	},
}

var coursesFindCmd = &cobra.Command{
	Use:   "find <name>",
	Short: "Resolve a grade by name (\"1\", \"primero\", \"1° Medio\"…) and list its subjects",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		curso, err := rt.client.FindCursoByName(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("find course: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n", curso.Nombre, curso.Codigo)
		if curso.Descripcion != "" {
			fmt.Fprintln(out, curso.Descripcion)
		}
		fmt.Fprintln(out)
		printSubjects(cmd, curso.Materias)
		return nil
	},
}

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List active subjects",
	RunE: func(cmd *cobra.Command, args []string) error {
		materias, err := rt.client.Materias(cmd.Context())
		if err != nil {
			return fmt.Errorf("list subjects: %w", err)
		}
		printSubjects(cmd, materias)
		return nil
	},
}

func printSubjects(cmd *cobra.Command, materias []api.Materia) {
	out := cmd.OutOrStdout()
	for i, s := range subjects.FromMaterias(materias) {
		fmt.Fprintf(out, "%s  %-5d %-8s %-28s  %s\n", s.Icon, materias[i].ID, s.ID, truncate(s.Name, 28), s.Color)
	}
	fmt.Fprintf(out, "\n%d materias\n", len(materias))
}

// findMateria resolves ref as a subject id, code or name.
func findMateria(ctx context.Context, ref string) (*api.Materia, error) {
	materias, err := rt.client.Materias(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	id, _ := strconv.ParseInt(ref, 10, 64)
	for i, m := range materias {
		if (id != 0 && m.ID == id) || strings.EqualFold(m.Codigo, ref) || strings.EqualFold(m.Nombre, ref) {
			return &materias[i], nil
		}
	}
	return nil, fmt.Errorf("no subject matches %q; see `lumera subjects`", ref)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func init() {
	coursesCmd.AddCommand(coursesFindCmd)
}
