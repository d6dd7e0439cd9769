package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/platanus-hack-25/lumera-cli/internal/tts"
)

var speakCmd = &cobra.Command{
	Use:         "speak <text>",
	Short:       "Synthesize text to an audio file",
	Annotations: map[string]string{accessAnnotation: accessAuth},
	Args:        cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sink := &tts.FileSink{Dir: rt.cfg.TTS.Dir}
		player := tts.NewPlayer(rt.client, sink)
		defer player.Stop()

		if err := player.Play(cmd.Context(), strings.Join(args, " ")); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), sink.LastPath())
		return nil
	},
}

func init() {
	speakCmd.Flags().String("tts-dir", "", "Directory audio files are written to (overrides LUMERA_TTS_DIR)")
}
