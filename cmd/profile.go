package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/platanus-hack-25/lumera-cli/internal/api"
	"github.com/platanus-hack-25/lumera-cli/internal/profile"
	"github.com/platanus-hack-25/lumera-cli/internal/subjects"
)

var profileCmd = &cobra.Command{
	Use:         "profile",
	Short:       "Show or edit the student profile",
	Annotations: map[string]string{accessAnnotation: accessAuth},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the student profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := profile.NewService(rt.client).Get(cmd.Context(), currentUser().ID)
		if errors.Is(err, api.ErrNotFound) {
			return errNoProfile
		}
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		}
		return printProfile(cmd, p)
	},
}

var profileCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create the student profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := profileUpdateFromFlags(cmd)
		if err != nil {
			return err
		}
		if u.CursoActual == "" {
			name, err := ask(cmd, "Curso (p. ej. 1° Medio)")
			if err != nil {
				return err
			}
			if u.CursoActual, err = resolveCurso(cmd, name); err != nil {
				return err
			}
		}

		p, err := profile.NewService(rt.client).Create(cmd.Context(), currentUser().ID, u)
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		if _, err := rt.session.SyncProfile(cmd.Context()); err != nil {
			return fmt.Errorf("sync profile: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Perfil creado.")
		return printProfile(cmd, p)
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Change profile fields, merging into what is stored",
	Example: `  lumera profile update --edad 15
  lumera profile update --set preferencias_aprendizaje='{"formato_preferido":"visual"}'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := profileUpdateFromFlags(cmd)
		if err != nil {
			return err
		}
		if u.Edad == nil && u.CursoActual == "" && len(u.Data) == 0 {
			return errors.New("nothing to update; pass --edad, --curso or --set")
		}

		p, err := profile.NewService(rt.client).Update(cmd.Context(), currentUser().ID, u)
		if errors.Is(err, api.ErrNotFound) {
			return errNoProfile
		}
		if err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		if _, err := rt.session.SyncProfile(cmd.Context()); err != nil {
			return fmt.Errorf("sync profile: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Perfil actualizado.")
		return printProfile(cmd, p)
	},
}

// profileUpdateFromFlags collects --edad, --curso and --set key=json.
func profileUpdateFromFlags(cmd *cobra.Command) (profile.Update, error) {
	var u profile.Update
	if cmd.Flags().Changed("edad") {
		edad, _ := cmd.Flags().GetInt("edad")
		u.Edad = &edad
	}
	if name, _ := cmd.Flags().GetString("curso"); name != "" {
		curso, err := resolveCurso(cmd, name)
		if err != nil {
			return u, err
		}
		u.CursoActual = curso
	}
	sets, _ := cmd.Flags().GetStringArray("set")
	for _, kv := range sets {
		key, raw, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return u, fmt.Errorf("--set %q: want key=json", kv)
		}
		if !json.Valid([]byte(raw)) {
			return u, fmt.Errorf("--set %s: value is not valid JSON", key)
		}
		if u.Data == nil {
			u.Data = api.ProfileData{}
		}
		u.Data[key] = json.RawMessage(raw)
	}
	return u, nil
}

// resolveCurso maps what the user typed to the course's canonical name.
func resolveCurso(cmd *cobra.Command, name string) (string, error) {
	curso, err := rt.client.FindCursoByName(cmd.Context(), name)
	if err != nil {
		return "", fmt.Errorf("find course %q: %w", name, err)
	}
	return curso.Nombre, nil
}

func printProfile(cmd *cobra.Command, p *api.StudentProfile) error {
	v, err := profile.Decode(p.ProfileData)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if p.Edad != nil {
		fmt.Fprintf(out, "Edad:   %d\n", *p.Edad)
	}
	if p.CursoActual != "" {
		fmt.Fprintf(out, "Curso:  %s\n", p.CursoActual)
	}

	if len(v.ConocimientoPrevio) > 0 {
		fmt.Fprintln(out, "\nConocimiento previo:")
		codes := make([]string, 0, len(v.ConocimientoPrevio))
		for code := range v.ConocimientoPrevio {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			c := v.ConocimientoPrevio[code]
			info := subjects.DomainLevelInfo(c.Nivel)
			fmt.Fprintf(out, "  %s %-24s %s (%s)\n", subjects.Icon(code, code), code, info.Label, c.Fuente)
		}
	}
	if pa := v.PreferenciasAprendizaje; pa != nil {
		fmt.Fprintln(out, "\nPreferencias de aprendizaje:")
		if pa.FormatoPreferido != "" {
			fmt.Fprintf(out, "  formato: %s\n", pa.FormatoPreferido)
		}
		if pa.CanalPreferido != "" {
			fmt.Fprintf(out, "  canal:   %s\n", pa.CanalPreferido)
		}
		if len(pa.TipoActividad) > 0 {
			fmt.Fprintf(out, "  tipo:    %s\n", strings.Join(pa.TipoActividad, ", "))
		}
	}
	if ip := v.InteresesPersonales; ip != nil && len(ip.Temas) > 0 {
		fmt.Fprintf(out, "\nIntereses: %s\n", strings.Join(ip.Temas, ", "))
	}
	if v.UltimaActualizacion != "" {
		fmt.Fprintf(out, "\nActualizado: %s\n", v.UltimaActualizacion)
	}
	return nil
}

func init() {
	profileShowCmd.Flags().Bool("json", false, "Print the raw profile as JSON")

	for _, c := range []*cobra.Command{profileCreateCmd, profileUpdateCmd} {
		c.Flags().Int("edad", 0, "Age in years")
		c.Flags().String("curso", "", "Grade, e.g. \"1° Medio\" or \"primero\"")
		c.Flags().StringArray("set", nil, "Profile section as key=json (repeatable)")
	}

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileCreateCmd)
	profileCmd.AddCommand(profileUpdateCmd)
}
