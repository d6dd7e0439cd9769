package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/platanus-hack-25/lumera-cli/internal/api"
	"github.com/platanus-hack-25/lumera-cli/internal/assessment"
)

var diagnosticCmd = &cobra.Command{
	Use:         "diagnostic",
	Aliases:     []string{"diag"},
	Short:       "Take a diagnostic and review its results",
	Annotations: map[string]string{accessAnnotation: accessProfile},
}

var diagnosticRunCmd = &cobra.Command{
	Use:   "run <subject>",
	Short: "Take an adaptive diagnostic for a subject (id, code or name)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := findMateria(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Diagnóstico de %s\n", m.Nombre)

		flow := assessment.NewDiagnosticFlow(rt.client, m.ID)
		if _, err := runFlow(cmd, flow); err != nil {
			return fmt.Errorf("diagnostic: %w", err)
		}
		if s := flow.Session(); s != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "\nSesión #%d (intento %d)\n", s.ID, s.NumeroIntento)
		}
		printDiagnosticResults(cmd.OutOrStdout(), flow.Results())
		return nil
	},
}

var diagnosticLocalCmd = &cobra.Command{
	Use:         "local",
	Short:       "Take the offline Lengua y Literatura diagnostic",
	Annotations: map[string]string{accessAnnotation: accessOpen},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "Diagnóstico de Lengua y Literatura (sin conexión)")
		if _, err := runFlow(cmd, assessment.NewLocalFlow(assessment.LenguaBank)); err != nil {
			return fmt.Errorf("diagnostic: %w", err)
		}
		return nil
	},
}

var diagnosticStatusCmd = &cobra.Command{
	Use:   "status <session-id>",
	Short: "Show the progress of a diagnostic session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		s, err := rt.client.DiagnosticSession(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get diagnostic session: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Sesión #%d · materia %d · intento %d\n", s.ID, s.MateriaID, s.NumeroIntento)
		fmt.Fprintf(out, "Estado: %s\n", s.Estado)
		fmt.Fprintf(out, "Correctas: %d de %d\n", s.PreguntasCorrectas, s.PreguntasTotales)
		if s.CompletedAt != nil {
			fmt.Fprintf(out, "Completada: %s\n", s.CompletedAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var diagnosticResultsCmd = &cobra.Command{
	Use:   "results <session-id>",
	Short: "Show the mastered Bloom level per objective",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		results, err := rt.client.DiagnosticResults(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get diagnostic results: %w", err)
		}
		printDiagnosticResults(cmd.OutOrStdout(), results)
		return nil
	},
}

func printDiagnosticResults(out io.Writer, results []api.DiagnosticResult) {
	if len(results) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%-10s  %-14s  %9s  %s\n", "OA", "Bloom", "Aciertos", "Recomendación")
	for _, r := range results {
		code := strconv.FormatInt(r.OAID, 10)
		if r.OA != nil && r.OA.Codigo != "" {
			code = r.OA.Codigo
		}
		fmt.Fprintf(out, "%-10s  %d %-12s  %8.0f%%  %s\n",
			code, r.NivelBloomDominado, truncate(r.NivelBloomNombre, 12), r.PorcentajeAciertos, r.Recomendacion)
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func init() {
	diagnosticCmd.AddCommand(diagnosticRunCmd)
	diagnosticCmd.AddCommand(diagnosticLocalCmd)
	diagnosticCmd.AddCommand(diagnosticStatusCmd)
	diagnosticCmd.AddCommand(diagnosticResultsCmd)
}
