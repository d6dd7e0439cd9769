package cmd

import (
	"github.com/spf13/cobra"

	"github.com/platanus-hack-25/lumera-cli/internal/app"
	"github.com/platanus-hack-25/lumera-cli/internal/customization"
	"github.com/platanus-hack-25/lumera-cli/internal/dashboard"
	"github.com/platanus-hack-25/lumera-cli/internal/screens/home"
	"github.com/platanus-hack-25/lumera-cli/internal/tts"
)

var playCmd = &cobra.Command{
	Use:         "play",
	Short:       "Open the interactive dashboard",
	Annotations: map[string]string{accessAnnotation: accessProfile},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp builds the screen dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	if err := checkAccess(cmd, accessProfile); err != nil {
		return err
	}

	player := tts.NewPlayer(rt.client, &tts.FileSink{Dir: rt.cfg.TTS.Dir})
	defer player.Stop()

	deps := home.Deps{
		Backend:   rt.client,
		Account:   rt.session,
		Dashboard: dashboard.New(),
		Avatar:    customization.NewStore(),
		Speaker:   player,
	}
	return app.Run(deps, rt.session)
}
