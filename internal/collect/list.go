package collect

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/vvka-141/readmegen/pkg/readmegen"
)

// SecondaryPolicy decides what happens to a list entry whose secondary
// value (feature text, technology link) is left empty.
type SecondaryPolicy int

const (
	// AllowEmptySecondary appends the entry with an empty secondary value.
	AllowEmptySecondary SecondaryPolicy = iota
	// RequireSecondary drops the entry but still asks whether to continue.
	RequireSecondary
)

// String returns the policy name.
func (p SecondaryPolicy) String() string {
	switch p {
	case AllowEmptySecondary:
		return "allow-empty-secondary"
	case RequireSecondary:
		return "require-secondary"
	default:
		return "unknown"
	}
}

// Pair is one raw list entry as typed by the user.
type Pair struct {
	Primary   string
	Secondary string
}

// ItemSource produces list entries one at a time. A non-nil error is always
// the last value yielded.
type ItemSource iter.Seq2[Pair, error]

// ListWording holds the wording of one list section.
type ListWording struct {
	Title            string // section banner
	Noun             string // singular item name used in messages
	SecondaryLabel   string // name of the secondary value used in messages
	PrimaryMessage   string
	SecondaryMessage string
	ContinueMessage  string
}

// FeatureList is the wording of the features section.
var FeatureList = ListWording{
	Title:            "Features",
	Noun:             "feature",
	SecondaryLabel:   "description",
	PrimaryMessage:   "Enter feature name (leave empty to finish adding features):",
	SecondaryMessage: "Enter feature description:",
	ContinueMessage:  "Add another feature?",
}

// TechnologyList is the wording of the technologies section.
var TechnologyList = ListWording{
	Title:            "Technologies",
	Noun:             "technology",
	SecondaryLabel:   "link",
	PrimaryMessage:   `Enter technology name (e.g., "React"):`,
	SecondaryMessage: `Enter technology link (e.g., "https://react.dev"):`,
	ContinueMessage:  "Add another technology?",
}

// ListCollector appends user-supplied entries of type T to a list.
type ListCollector[T any] struct {
	prompter readmegen.Prompter
	out      io.Writer
	logger   readmegen.Logger
	policy   SecondaryPolicy
	wording  ListWording
	build    func(Pair) T
}

// NewListCollector creates a ListCollector. build converts a raw entry into
// a list item.
func NewListCollector[T any](
	prompter readmegen.Prompter,
	out io.Writer,
	logger readmegen.Logger,
	policy SecondaryPolicy,
	wording ListWording,
	build func(Pair) T,
) *ListCollector[T] {
	return &ListCollector[T]{
		prompter: prompter,
		out:      out,
		logger:   logger,
		policy:   policy,
		wording:  wording,
		build:    build,
	}
}

// Collect prints the section banner and appends entries to items until the
// source stops. Running out of input ends the section normally and keeps
// everything appended so far; any other prompt error is returned along with
// the items collected before it.
func (c *ListCollector[T]) Collect(ctx context.Context, items []T) ([]T, error) {
	fmt.Fprintf(c.out, "\n--- %s ---\n\n", c.wording.Title)

	for pair, err := range c.Source(ctx) {
		if err != nil {
			if errors.Is(err, readmegen.ErrInputExhausted) {
				c.logger.Verbose("%s input ended after %d entries", c.wording.Noun, len(items))
				return items, nil
			}
			return items, fmt.Errorf("failed to collect %s entries: %w", c.wording.Noun, err)
		}

		if pair.Secondary == "" && c.policy == RequireSecondary {
			fmt.Fprintf(c.out, "Skipping %s %q as %s was empty.\n", c.wording.Noun, pair.Primary, c.wording.SecondaryLabel)
			continue
		}
		items = append(items, c.build(pair))
		c.logger.Verbose("Added %s %q", c.wording.Noun, pair.Primary)
	}
	return items, nil
}

// Source returns the ItemSource for this list. Each entry is followed by an
// explicit continue question that defaults to yes.
func (c *ListCollector[T]) Source(ctx context.Context) ItemSource {
	return func(yield func(Pair, error) bool) {
		for {
			primary, err := c.prompter.Text(ctx, readmegen.TextPrompt{Message: c.wording.PrimaryMessage})
			if err != nil {
				yield(Pair{}, err)
				return
			}
			primary = strings.TrimSpace(primary)
			if primary == "" {
				fmt.Fprintf(c.out, "Skipping %s as name was empty.\n", c.wording.Noun)
				return
			}

			secondary, err := c.prompter.Text(ctx, readmegen.TextPrompt{Message: c.wording.SecondaryMessage})
			if err != nil {
				yield(Pair{}, err)
				return
			}

			if !yield(Pair{Primary: primary, Secondary: strings.TrimSpace(secondary)}, nil) {
				return
			}

			more, err := c.prompter.Confirm(ctx, c.wording.ContinueMessage, true)
			if err != nil {
				yield(Pair{}, err)
				return
			}
			if !more {
				return
			}
		}
	}
}
