package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/platanus-hack-25/lumera-cli/internal/devserver"
)

var devCmd = &cobra.Command{
	Use:   "dev",
	Short: "Run the development proxy in front of the backend",
	Long: "Serve /api/* from the configured backend for local frontend work,\n" +
		"answering only requests addressed to an allowed host.",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := devserver.NewServer(rt.cfg.Dev)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "dev server on %s → %s\n", rt.cfg.Dev.Listen, rt.cfg.Dev.Backend)
		return srv.Run(cmd.Context())
	},
}

func init() {
	devCmd.Flags().String("listen", "", "Listen address (overrides LUMERA_DEV_LISTEN)")
	devCmd.Flags().String("backend", "", "Backend base URL (overrides LUMERA_DEV_BACKEND)")
	devCmd.Flags().StringSlice("allowed-host", nil, "Allowed Host header (repeatable, overrides LUMERA_DEV_ALLOWED_HOSTS)")
}
