package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/platanus-hack-25/lumera-cli/internal/assessment"
)

// lineAnswerer asks each question on out and reads the answer as one line.
type lineAnswerer struct {
	cmd *cobra.Command
}

func (a lineAnswerer) Answer(ctx context.Context, p *assessment.Prompt) (assessment.Answer, error) {
	out := a.cmd.OutOrStdout()
	printPrompt(out, p)
	r := inputReader(a.cmd)
	for {
		if err := ctx.Err(); err != nil {
			return assessment.Answer{}, err
		}
		fmt.Fprint(out, "> ")
		line, err := readLine(r)
		if err != nil {
			return assessment.Answer{}, err
		}
		ans, err := parseAnswer(p, line)
		if err == nil {
			return ans, nil
		}
		fmt.Fprintf(out, "  %v\n", err)
	}
}

func printPrompt(out io.Writer, p *assessment.Prompt) {
	if p.Total > 0 {
		fmt.Fprintf(out, "\nPregunta %d de %d\n", p.Number, p.Total)
	} else {
		fmt.Fprintf(out, "\nPregunta %d\n", p.Number)
	}
	fmt.Fprintln(out, p.Text)
	switch p.Type {
	case assessment.TypeMultipleChoice:
		for i, o := range p.Options {
			fmt.Fprintf(out, "  %c) %s\n", 'a'+i, o.Label)
		}
	case assessment.TypeTrueFalse:
		fmt.Fprintln(out, "  (v)erdadero / (f)also")
	case assessment.TypeFillBlanks:
		if p.Blanks > 1 {
			fmt.Fprintf(out, "  %d espacios, sepáralos con comas\n", p.Blanks)
		}
	}
}

var (
	trueWords  = []string{"v", "verdadero", "t", "true", "s", "si", "sí"}
	falseWords = []string{"f", "falso", "false", "n", "no"}
)

// parseAnswer reads an option letter or number, a true/false word, or a
// comma-separated list of blanks, depending on the prompt's type.
func parseAnswer(p *assessment.Prompt, line string) (assessment.Answer, error) {
	s := strings.ToLower(strings.TrimSpace(line))
	if s == "" {
		return assessment.Answer{}, errors.New("escribe una respuesta")
	}

	switch p.Type {
	case assessment.TypeMultipleChoice:
		n := len(p.Options)
		if len(s) == 1 && s[0] >= 'a' && int(s[0]-'a') < n {
			return assessment.Answer{Choice: int(s[0] - 'a')}, nil
		}
		if i, err := strconv.Atoi(s); err == nil && i >= 1 && i <= n {
			return assessment.Answer{Choice: i - 1}, nil
		}
		return assessment.Answer{}, fmt.Errorf("elige una letra entre a y %c", 'a'+n-1)

	case assessment.TypeTrueFalse:
		for _, w := range trueWords {
			if s == w {
				return assessment.Answer{True: true}, nil
			}
		}
		for _, w := range falseWords {
			if s == w {
				return assessment.Answer{True: false}, nil
			}
		}
		return assessment.Answer{}, errors.New("responde v (verdadero) o f (falso)")

	case assessment.TypeFillBlanks:
		parts := strings.Split(strings.TrimSpace(line), ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if p.Blanks > 0 && len(parts) != p.Blanks {
			return assessment.Answer{}, fmt.Errorf("se esperaban %d respuestas separadas por comas", p.Blanks)
		}
		return assessment.Answer{Blanks: parts}, nil
	}
	return assessment.Answer{}, &assessment.ErrUnsupportedType{Type: p.Type}
}

func printVerdict(out io.Writer, v *assessment.Verdict) {
	if v.IsCorrect {
		fmt.Fprintln(out, "  ✓ ¡Correcto!")
	} else {
		fmt.Fprintln(out, "  ✗ Incorrecto")
	}
	if v.Explanation != "" {
		fmt.Fprintf(out, "  %s\n", v.Explanation)
	}
}

func printSummary(out io.Writer, s *assessment.Summary) {
	fmt.Fprintf(out, "\nRespondiste %d, %d correctas (%d%%)\n", s.Answered, s.Correct, s.Level.Percentage)
	fmt.Fprintf(out, "Nivel: %s\n", s.Level.Label)
	if s.AverageBloomLevel > 0 {
		fmt.Fprintf(out, "Nivel Bloom promedio: %.1f\n", s.AverageBloomLevel)
	}
	if s.BloomFinal > 0 {
		fmt.Fprintf(out, "Nivel Bloom: %d → %d\n", s.BloomInicial, s.BloomFinal)
	}
	if s.Message != "" {
		fmt.Fprintln(out, s.Message)
	}
	if s.Feedback != "" {
		fmt.Fprintf(out, "\n%s\n", s.Feedback)
	}
}

// runFlow drives flow with answers read from the command's input.
func runFlow(cmd *cobra.Command, flow assessment.Flow) (*assessment.Summary, error) {
	out := cmd.OutOrStdout()
	r := &assessment.Runner{
		OnVerdict: func(_ *assessment.Prompt, v *assessment.Verdict) { printVerdict(out, v) },
	}
	sum, err := r.Run(cmd.Context(), flow, lineAnswerer{cmd: cmd})
	if err != nil {
		return nil, err
	}
	printSummary(out, sum)
	return sum, nil
}
