package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lumera",
	Short: "Terminal client for the Lumera learning platform",
	Long: "Learn at your own pace from the terminal: diagnostics, practice,\n" +
		"learning plans and rewards backed by the Lumera API.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the command line. Ctrl+C cancels the command's context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnFinalize(teardown)

	pf := rootCmd.PersistentFlags()
	pf.String("api-url", "", "Backend base URL (overrides LUMERA_API_URL)")
	pf.String("db", "", "Path to SQLite session file (overrides LUMERA_DB)")
	pf.Duration("http-timeout", 0, "Per-request timeout, 0 for none (overrides LUMERA_HTTP_TIMEOUT)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(subjectsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(diagnosticCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(speakCmd)
	rootCmd.AddCommand(devCmd)
	rootCmd.AddCommand(versionCmd)
}
