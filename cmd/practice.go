package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/platanus-hack-25/lumera-cli/internal/api"
	"github.com/platanus-hack-25/lumera-cli/internal/assessment"
)

var practiceCmd = &cobra.Command{
	Use:         "practice",
	Short:       "Practice a learning objective at a Bloom level",
	Annotations: map[string]string{accessAnnotation: accessProfile},
}

var practiceStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a practice session and answer its questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		oaID, _ := cmd.Flags().GetInt64("oa")
		bloom, _ := cmd.Flags().GetInt("bloom")
		n, _ := cmd.Flags().GetInt("questions")

		boID, err := bloomObjective(cmd.Context(), oaID, bloom)
		if err != nil {
			return err
		}

		flow := assessment.NewPracticeFlow(rt.client, oaID, boID, n)
		if _, err := runFlow(cmd, flow); err != nil {
			return fmt.Errorf("practice: %w", err)
		}
		if res := flow.Result(); res != nil {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Cambio de nivel: %+d\n", res.CambioNivel)
			for _, p := range res.Resultado.PatronRespuestas {
				fmt.Fprintf(out, "  · %s\n", p)
			}
		}
		return nil
	},
}

var practiceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List practice sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		var f api.PracticeFilter
		f.OAID, _ = cmd.Flags().GetInt64("oa")
		f.Estado, _ = cmd.Flags().GetString("estado")

		sessions, err := rt.client.PracticeSessions(cmd.Context(), f)
		if err != nil {
			return fmt.Errorf("list practice sessions: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%6s  %6s  %5s  %-11s  %9s  %s\n", "ID", "OA", "Bloom", "Estado", "Correctas", "Inicio")
		for _, s := range sessions {
			bloom := fmt.Sprintf("%d", s.BloomLevelInicial)
			if s.BloomLevelFinal != nil {
				bloom = fmt.Sprintf("%d→%d", s.BloomLevelInicial, *s.BloomLevelFinal)
			}
			fmt.Fprintf(out, "%6d  %6d  %5s  %-11s  %4d/%-4d  %s\n",
				s.ID, s.OAID, bloom, s.Estado, s.PreguntasCorrectas, s.NumeroPreguntas,
				s.StartedAt.Local().Format("2006-01-02 15:04"))
		}
		fmt.Fprintf(out, "\n%d sesiones\n", len(sessions))
		return nil
	},
}

// bloomObjective resolves the Bloom objective of oaID at level bloom.
func bloomObjective(ctx context.Context, oaID int64, bloom int) (int64, error) {
	if oaID <= 0 {
		return 0, fmt.Errorf("--oa is required")
	}
	if bloom < 1 || bloom > 6 {
		return 0, fmt.Errorf("--bloom must be between 1 and 6, got %d", bloom)
	}
	id, ok, err := rt.client.BloomObjectiveID(ctx, oaID, bloom)
	if err != nil {
		return 0, fmt.Errorf("get learning objective: %w", err)
	}
	if !ok {
		return 0, fmt.Errorf("objective %d has no Bloom level %d", oaID, bloom)
	}
	return id, nil
}

func init() {
	practiceStartCmd.Flags().Int64("oa", 0, "Learning objective id")
	practiceStartCmd.Flags().Int("bloom", 1, "Bloom level (1-6)")
	practiceStartCmd.Flags().Int("questions", api.DefaultPracticeQuestions, "Number of questions")

	practiceListCmd.Flags().Int64("oa", 0, "Only sessions of this learning objective")
	practiceListCmd.Flags().String("estado", "", "Only sessions in this state ("+api.PracticeInProgress+" or "+api.PracticeCompleted+")")

	practiceCmd.AddCommand(practiceStartCmd)
	practiceCmd.AddCommand(practiceListCmd)
}
