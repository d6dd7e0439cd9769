package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/platanus-hack-25/lumera-cli/internal/api"
	"github.com/platanus-hack-25/lumera-cli/internal/guard"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and remember the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, err := flagOrAsk(cmd, "email", "Email")
		if err != nil {
			return err
		}
		password, err := askPassword(cmd, "Contraseña")
		if err != nil {
			return err
		}

		user, err := rt.session.Login(cmd.Context(), email, password)
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "¡Hola, %s!\n", user.Name)
		return reportLanding(cmd)
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and sign in",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := flagOrAsk(cmd, "name", "Nombre")
		if err != nil {
			return err
		}
		email, err := flagOrAsk(cmd, "email", "Email")
		if err != nil {
			return err
		}
		password, err := askPassword(cmd, "Contraseña")
		if err != nil {
			return err
		}

		user, err := rt.session.Register(cmd.Context(), email, name, password)
		if err != nil {
			return fmt.Errorf("register: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cuenta creada. ¡Bienvenido, %s!\n", user.Name)
		return reportLanding(cmd)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := rt.session.Logout(); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Sesión cerrada.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:         "whoami",
	Short:       "Show the signed-in user",
	Annotations: map[string]string{accessAnnotation: accessAuth},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		u := currentUser()
		fmt.Fprintf(out, "%s <%s>\n", u.Name, u.Email)
		fmt.Fprintf(out, "  id:    %d\n", u.ID)
		if u.Role != "" {
			fmt.Fprintf(out, "  rol:   %s\n", u.Role)
		}
		if u.CursoActual != "" {
			fmt.Fprintf(out, "  curso: %s\n", u.CursoActual)
		}
		if exp, ok := rt.session.TokenExpiry(); ok {
			state := "válida"
			if time.Now().After(exp) {
				state = "expirada"
			}
			fmt.Fprintf(out, "  token: %s hasta %s\n", state, exp.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

// reportLanding tells a freshly signed-in user where to go next.
func reportLanding(cmd *cobra.Command) error {
	dest, err := guard.Resolve(cmd.Context(), rt.session, rt.client)
	if err != nil {
		return err
	}
	switch dest {
	case guard.Onboarding:
		fmt.Fprintln(cmd.OutOrStdout(), "Aún no tienes perfil. Crea uno con `lumera profile create`.")
	case guard.Home:
		if _, err := rt.session.SyncProfile(cmd.Context()); err != nil && !api.IsNotFound(err) {
			return fmt.Errorf("sync profile: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Todo listo. Ejecuta `lumera` para comenzar.")
	}
	return nil
}

func init() {
	loginCmd.Flags().String("email", "", "Account email")

	registerCmd.Flags().String("email", "", "Account email")
	registerCmd.Flags().String("name", "", "Display name")
}
