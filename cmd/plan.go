package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/platanus-hack-25/lumera-cli/internal/api"
)

var planCmd = &cobra.Command{
	Use:         "plan",
	Short:       "Browse learning objectives and adaptive learning plans",
	Annotations: map[string]string{accessAnnotation: accessProfile},
}

var planObjectivesCmd = &cobra.Command{
	Use:   "objectives <subject>",
	Short: "List the learning objectives of a subject",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := findMateria(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		oas, err := rt.client.ObjetivosByMateria(cmd.Context(), m.ID)
		if err != nil {
			return fmt.Errorf("list learning objectives: %w", err)
		}
		out := cmd.OutOrStdout()
		for _, oa := range oas {
			fmt.Fprintf(out, "%5d  %-10s  %s\n", oa.ID, oa.Codigo, oa.Titulo)
		}
		fmt.Fprintf(out, "\n%d objetivos\n", len(oas))
		return nil
	},
}

var planObjectiveCmd = &cobra.Command{
	Use:   "objective <oa-id>",
	Short: "Show a learning objective and its Bloom levels",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		oa, err := rt.client.ObjetivoAprendizaje(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get learning objective: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s · %s\n", oa.Codigo, oa.Titulo)
		if oa.Descripcion != "" {
			fmt.Fprintln(out, oa.Descripcion)
		}
		for _, bo := range oa.BloomObjectives {
			fmt.Fprintf(out, "\n  Bloom %d (#%d): %s\n", bo.BloomLevelID, bo.ID, bo.ObjetivoEspecifico)
			for _, ind := range bo.IndicadoresLogro {
				fmt.Fprintf(out, "    · %s\n", ind)
			}
		}
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the plan for a learning objective at a Bloom level",
	RunE: func(cmd *cobra.Command, args []string) error {
		oaID, _ := cmd.Flags().GetInt64("oa")
		bloom, _ := cmd.Flags().GetInt("bloom")
		generate, _ := cmd.Flags().GetBool("generate")

		boID, err := bloomObjective(cmd.Context(), oaID, bloom)
		if err != nil {
			return err
		}
		plan, err := rt.client.PlanByOA(cmd.Context(), boID)
		if err != nil {
			return fmt.Errorf("get learning plan: %w", err)
		}
		if plan == nil {
			if !generate {
				fmt.Fprintln(cmd.OutOrStdout(), "Aún no hay plan para este objetivo. Usa --generate para crearlo.")
				return nil
			}
			if plan, err = rt.client.GeneratePlan(cmd.Context(), boID); err != nil {
				return fmt.Errorf("generate learning plan: %w", err)
			}
		}
		printPlan(cmd.OutOrStdout(), plan)
		return nil
	},
}

var planGetCmd = &cobra.Command{
	Use:   "get <plan-id>",
	Short: "Show a plan by id",
	Args:  cobra.ExactArgs(1),
	RunE: planAction(func(cmd *cobra.Command, id int64) (*api.LearningPlan, error) {
		return rt.client.LearningPlan(cmd.Context(), id)
	}),
}

var planStartCmd = &cobra.Command{
	Use:   "start <plan-id>",
	Short: "Mark a plan as started",
	Args:  cobra.ExactArgs(1),
	RunE: planAction(func(cmd *cobra.Command, id int64) (*api.LearningPlan, error) {
		return rt.client.StartPlan(cmd.Context(), id)
	}),
}

var planCompleteCmd = &cobra.Command{
	Use:   "complete <plan-id>",
	Short: "Mark a plan as completed",
	Args:  cobra.ExactArgs(1),
	RunE: planAction(func(cmd *cobra.Command, id int64) (*api.LearningPlan, error) {
		return rt.client.CompletePlan(cmd.Context(), id)
	}),
}

var planContentCmd = &cobra.Command{
	Use:   "content <plan-id> <component-id>",
	Short: "Generate the content of one plan component",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		planID, err := parseID(args[0])
		if err != nil {
			return err
		}
		compID, err := parseID(args[1])
		if err != nil {
			return err
		}
		comp, err := rt.client.GenerateComponentContent(cmd.Context(), planID, compID)
		if err != nil {
			return fmt.Errorf("generate component content: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d. %s (%s) · %s\n", comp.Orden, comp.ObjetivoEspecifico, comp.TipoComponente, comp.Estado)
		if comp.ErrorMensaje != "" {
			fmt.Fprintf(out, "error: %s\n", comp.ErrorMensaje)
		}
		if len(comp.ContenidoProps) > 0 {
			var pretty any
			if err := json.Unmarshal(comp.ContenidoProps, &pretty); err == nil {
				b, _ := json.MarshalIndent(pretty, "", "  ")
				fmt.Fprintln(out, string(b))
			}
		}
		return nil
	},
}

func planAction(fn func(cmd *cobra.Command, id int64) (*api.LearningPlan, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		plan, err := fn(cmd, id)
		if err != nil {
			return fmt.Errorf("%s plan: %w", cmd.Name(), err)
		}
		printPlan(cmd.OutOrStdout(), plan)
		return nil
	}
}

func printPlan(out io.Writer, p *api.LearningPlan) {
	fmt.Fprintf(out, "Plan #%d · %s\n", p.ID, p.Titulo)
	if p.Descripcion != "" {
		fmt.Fprintln(out, p.Descripcion)
	}
	state := p.Estado
	if p.Completado {
		state += ", completado"
	}
	fmt.Fprintf(out, "Estado: %s · %d min · progreso %d/%d\n", state, p.TiempoEstimadoMinutos, p.ProgresoActual, p.TotalSlides)
	if p.ErrorMensaje != "" {
		fmt.Fprintf(out, "error: %s\n", p.ErrorMensaje)
	}
	for _, c := range p.Components {
		fmt.Fprintf(out, "  %2d. [%-9s] %-16s %3d min  %s  (#%d)\n",
			c.Orden, c.Estado, c.TipoComponente, c.TiempoEstimadoMinutos, c.ObjetivoEspecifico, c.ID)
	}
}

func init() {
	planShowCmd.Flags().Int64("oa", 0, "Learning objective id")
	planShowCmd.Flags().Int("bloom", 1, "Bloom level (1-6)")
	planShowCmd.Flags().Bool("generate", false, "Generate the plan when none exists")

	planCmd.AddCommand(planObjectivesCmd)
	planCmd.AddCommand(planObjectiveCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planGetCmd)
	planCmd.AddCommand(planStartCmd)
	planCmd.AddCommand(planCompleteCmd)
	planCmd.AddCommand(planContentCmd)
}
