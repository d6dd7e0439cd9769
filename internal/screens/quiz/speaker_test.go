package quiz

import "context"

type speakerFunc func(text string) error

func (f speakerFunc) Play(_ context.Context, text string) error { return f(text) }
