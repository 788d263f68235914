package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/vvka-141/readmegen/pkg/readmegen"
)

// LinePrompter asks questions on out and reads answers line by line from in.
// An empty answer selects the initial value. End of input is reported as
// readmegen.ErrInputExhausted.
type LinePrompter struct {
	in   io.Reader
	out  io.Writer
	once sync.Once

	// lines is fed by a single reader goroutine so that a cancelled prompt
	// never drops the line that arrives after it. It is closed after the
	// first read error, which is then kept in err.
	lines chan string
	err   error
}

// NewLinePrompter creates a LinePrompter.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: in, out: out}
}

func (p *LinePrompter) start() {
	p.lines = make(chan string)
	go func() {
		reader := bufio.NewReader(p.in)
		for {
			line, err := reader.ReadString('\n')
			if line != "" {
				p.lines <- line
			}
			if err != nil {
				if errors.Is(err, io.EOF) {
					p.err = readmegen.ErrInputExhausted
				} else {
					p.err = fmt.Errorf("failed to read input: %w", err)
				}
				close(p.lines)
				return
			}
		}
	}()
}

func (p *LinePrompter) readLine(ctx context.Context) (string, error) {
	p.once.Do(p.start)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			fmt.Fprintln(p.out)
			return "", p.err
		}
		return strings.TrimSpace(line), nil
	}
}

// Text asks a free-text question, re-asking while Validate rejects the answer.
func (p *LinePrompter) Text(ctx context.Context, q readmegen.TextPrompt) (string, error) {
	for {
		if q.Initial != "" {
			fmt.Fprintf(p.out, "? %s (%s) ", q.Message, q.Initial)
		} else {
			fmt.Fprintf(p.out, "? %s ", q.Message)
		}

		answer, err := p.readLine(ctx)
		if err != nil {
			return "", err
		}
		if answer == "" {
			answer = q.Initial
		}
		if q.Validate != nil {
			if verr := q.Validate(answer); verr != nil {
				fmt.Fprintf(p.out, "✗ %v\n", verr)
				continue
			}
		}
		return answer, nil
	}
}

// Confirm asks a yes/no question.
func (p *LinePrompter) Confirm(ctx context.Context, message string, initial bool) (bool, error) {
	hint := "y/N"
	if initial {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(p.out, "? %s (%s) ", message, hint)

		answer, err := p.readLine(ctx)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return initial, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}

// Select lists the options and accepts either a 1-based number or the option
// text (case-insensitive).
func (p *LinePrompter) Select(ctx context.Context, message string, options []string, initial int) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("select requires at least one option")
	}
	if initial < 0 || initial >= len(options) {
		initial = 0
	}

	fmt.Fprintf(p.out, "? %s\n", message)
	for i, opt := range options {
		marker := " "
		if i == initial {
			marker = ">"
		}
		fmt.Fprintf(p.out, "  %s %d) %s\n", marker, i+1, opt)
	}

	for {
		fmt.Fprintf(p.out, "  Choice (%d) ", initial+1)

		answer, err := p.readLine(ctx)
		if err != nil {
			return 0, err
		}
		if idx, ok := matchOption(answer, options, initial); ok {
			return idx, nil
		}
		fmt.Fprintf(p.out, "Please enter a number between 1 and %d.\n", len(options))
	}
}

func matchOption(answer string, options []string, initial int) (int, bool) {
	if answer == "" {
		return initial, true
	}
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(options) {
			return n - 1, true
		}
		return 0, false
	}
	for i, opt := range options {
		if strings.EqualFold(answer, opt) {
			return i, true
		}
	}
	return 0, false
}

// Verify LinePrompter implements the Prompter interface at compile time
var _ readmegen.Prompter = (*LinePrompter)(nil)
