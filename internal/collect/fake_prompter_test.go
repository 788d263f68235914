package collect

import (
	"context"
	"fmt"

	"github.com/vvka-141/readmegen/pkg/readmegen"
)

// answer is one scripted reply. Exactly one of the fields is used depending
// on the prompt kind; keep zero values for "accept the initial value".
type answer struct {
	text    *string
	confirm *bool
	choice  *int
	err     error
}

func text(s string) answer { return answer{text: &s} }
func confirm(b bool) answer { return answer{confirm: &b} }
func choose(i int) answer { return answer{choice: &i} }
func fail(err error) answer { return answer{err: err} }
func keep() answer { return answer{} }
func keepAll(n int) []answer { return make([]answer, n) }

// scriptedPrompter replays answers in order and records every question.
// It runs out of input with readmegen.ErrInputExhausted.
type scriptedPrompter struct {
	answers   []answer
	questions []string
	rejected  []string
}

func (p *scriptedPrompter) next(question string) (answer, error) {
	p.questions = append(p.questions, question)
	if len(p.answers) == 0 {
		return answer{}, readmegen.ErrInputExhausted
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, a.err
}

func (p *scriptedPrompter) Text(ctx context.Context, q readmegen.TextPrompt) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		a, err := p.next(q.Message)
		if err != nil {
			return "", err
		}
		v := q.Initial
		if a.text != nil {
			v = *a.text
		}
		if q.Validate != nil {
			if verr := q.Validate(v); verr != nil {
				p.rejected = append(p.rejected, verr.Error())
				continue
			}
		}
		return v, nil
	}
}

func (p *scriptedPrompter) Confirm(ctx context.Context, message string, initial bool) (bool, error) {
	a, err := p.next(message)
	if err != nil {
		return false, err
	}
	if a.confirm != nil {
		return *a.confirm, nil
	}
	return initial, nil
}

func (p *scriptedPrompter) Select(ctx context.Context, message string, options []string, initial int) (int, error) {
	a, err := p.next(message)
	if err != nil {
		return 0, err
	}
	if a.choice == nil {
		return initial, nil
	}
	if *a.choice < 0 || *a.choice >= len(options) {
		return 0, fmt.Errorf("choice %d out of range", *a.choice)
	}
	return *a.choice, nil
}

var _ readmegen.Prompter = (*scriptedPrompter)(nil)
