package readmegen

import "context"

// TextPrompt describes a free-text question.
type TextPrompt struct {
	// Message is the question shown to the user.
	Message string

	// Initial is the editable default. Submitting without changes returns it.
	Initial string

	// Validate, if non-nil, rejects answers. Backends re-ask until it passes.
	Validate func(string) error
}

// Prompter asks the user questions one at a time.
//
// Calls block until the user answers. Implementations return
// ErrInputExhausted when no further answers can be obtained and ctx.Err()
// when the context is cancelled. Prompts are never issued concurrently.
type Prompter interface {
	// Text asks a free-text question.
	Text(ctx context.Context, p TextPrompt) (string, error)

	// Confirm asks a yes/no question. initial is the answer on empty input.
	Confirm(ctx context.Context, message string, initial bool) (bool, error)

	// Select asks the user to pick one of options and returns its index.
	Select(ctx context.Context, message string, options []string, initial int) (int, error)
}
