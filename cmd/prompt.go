package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// The buffered reader is kept across prompts of one invocation so input
// read ahead by one prompt is not lost to the next.
var (
	inSrc io.Reader
	inBuf *bufio.Reader
)

func inputReader(cmd *cobra.Command) *bufio.Reader {
	in := cmd.InOrStdin()
	if inBuf == nil || in != inSrc {
		inSrc, inBuf = in, bufio.NewReader(in)
	}
	return inBuf
}

// readLine reads one line without its terminator. A final line without a
// newline is returned; an empty input is io.EOF.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ask prints label and reads a non-empty answer.
func ask(cmd *cobra.Command, label string) (string, error) {
	r := inputReader(cmd)
	for {
		fmt.Fprint(cmd.OutOrStdout(), label+": ")
		line, err := readLine(r)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
		}
		if s := strings.TrimSpace(line); s != "" {
			return s, nil
		}
	}
}

// askPassword reads a password without echo when stdin is a terminal and
// as a plain line otherwise.
func askPassword(cmd *cobra.Command, label string) (string, error) {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.OutOrStdout(), label+": ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}
	return ask(cmd, label)
}

// flagOrAsk returns the flag value, prompting for it when unset.
func flagOrAsk(cmd *cobra.Command, flag, label string) (string, error) {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v, nil
	}
	return ask(cmd, label)
}
