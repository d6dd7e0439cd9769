package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:         "stats",
	Short:       "Show level, XP, coins and streak",
	Annotations: map[string]string{accessAnnotation: accessAuth},
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := rt.session.LoadGamificationStats(cmd.Context())
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Nivel %d\n", st.Level)
		fmt.Fprintf(out, "%s %d/%d XP (total %d)\n", xpBar(st.XPProgress, st.XPForNextLevel, 20), st.XPProgress, st.XPForNextLevel, st.XP)
		fmt.Fprintf(out, "Monedas: %d\n", st.Coins)
		fmt.Fprintf(out, "Racha:   %d días (récord %d)\n", st.CurrentStreak, st.LongestStreak)
		return nil
	},
}

var leaderboardCmd = &cobra.Command{
	Use:         "leaderboard",
	Short:       "Show the XP ranking",
	Annotations: map[string]string{accessAnnotation: accessAuth},
	RunE: func(cmd *cobra.Command, args []string) error {
		lb, err := rt.client.Leaderboard(cmd.Context())
		if err != nil {
			return fmt.Errorf("load leaderboard: %w", err)
		}
		out := cmd.OutOrStdout()
		me := currentUser().ID
		for _, e := range lb.Leaderboard {
			marker := " "
			if e.UserID == me {
				marker = "▶"
			}
			fmt.Fprintf(out, "%s %3d. %-24s  Nv %-3d %7d XP\n", marker, e.Rank, truncate(e.Name, 24), e.Level, e.XP)
		}
		if p := lb.UserPosition; p != nil {
			fmt.Fprintf(out, "\nTu posición: %d (%d XP)\n", p.Rank, p.XP)
		}
		return nil
	},
}

func xpBar(progress, total, width int) string {
	filled := 0
	if total > 0 {
		filled = min(max(progress*width/total, 0), width)
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
