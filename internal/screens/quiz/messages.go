package quiz

import "github.com/platanus-hack-25/lumera-cli/internal/assessment"

type startedMsg struct {
	Err error
}

type promptMsg struct {
	Prompt *assessment.Prompt
	Err    error
}

type verdictMsg struct {
	Verdict *assessment.Verdict
	Err     error
}

type summaryMsg struct {
	Summary *assessment.Summary
	Err     error
}

type spokenMsg struct {
	Err error
}
