package collect

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vvka-141/readmegen/pkg/readmegen"
)

type textField struct {
	field    readmegen.Field
	message  string
	value    func(*readmegen.Record) *string
	validate func(string) error
}

type choiceField struct {
	field   readmegen.Field
	message string
	value   func(*readmegen.Record) *bool
}

var yesNo = []string{"Yes", "No"}

var textFields = []textField{
	{
		field:    readmegen.FieldProjectName,
		message:  "Project name",
		value:    func(r *readmegen.Record) *string { return &r.ProjectName },
		validate: requireProjectName,
	},
	{
		field:   readmegen.FieldDescription,
		message: "Project description",
		value:   func(r *readmegen.Record) *string { return &r.Description },
	},
	{
		field:   readmegen.FieldVersion,
		message: "Project version",
		value:   func(r *readmegen.Record) *string { return &r.Version },
	},
	{
		field:   readmegen.FieldAuthor,
		message: "Author name",
		value:   func(r *readmegen.Record) *string { return &r.Author },
	},
	{
		field:   readmegen.FieldLicense,
		message: "Project license",
		value:   func(r *readmegen.Record) *string { return &r.License },
	},
	{
		field:   readmegen.FieldGitHubUsername,
		message: "GitHub username",
		value:   func(r *readmegen.Record) *string { return &r.GitHubUsername },
	},
	{
		field:   readmegen.FieldRepositoryName,
		message: "Repository name (on GitHub)",
		value:   func(r *readmegen.Record) *string { return &r.RepositoryName },
	},
	{
		field:   readmegen.FieldMainLanguage,
		message: "Main programming language",
		value:   func(r *readmegen.Record) *string { return &r.MainLanguage },
	},
}

var choiceFields = []choiceField{
	{
		field:   readmegen.FieldLogo,
		message: "Would you like to include a logo in your README?",
		value:   func(r *readmegen.Record) *bool { return &r.Logo },
	},
	{
		field:   readmegen.FieldPreview,
		message: "Would you like to include a preview section in your README?",
		value:   func(r *readmegen.Record) *bool { return &r.Preview },
	},
}

func requireProjectName(v string) error {
	if v == "" {
		return &readmegen.FieldError{Field: readmegen.FieldProjectName, Message: "Project name cannot be empty"}
	}
	return nil
}

// Collector runs the interactive part of generation.
type Collector struct {
	prompter readmegen.Prompter
	out      io.Writer
	logger   readmegen.Logger
	policy   SecondaryPolicy
}

// New creates a Collector that prints banners and announcements to out.
func New(prompter readmegen.Prompter, out io.Writer, logger readmegen.Logger, policy SecondaryPolicy) *Collector {
	return &Collector{
		prompter: prompter,
		out:      out,
		logger:   logger,
		policy:   policy,
	}
}

// Collect lets the user confirm or edit every scalar field not in explicit,
// then appends features and technologies to rec.
//
// Fields in explicit were given on the command line; they are announced and
// not asked. When the prompter runs out of input the remaining questions are
// skipped and rec keeps its current values. Other prompt errors, including
// context cancellation, are returned.
func (c *Collector) Collect(ctx context.Context, rec *readmegen.Record, explicit readmegen.FieldSet) error {
	fmt.Fprintln(c.out, "We've extracted some information from your package.json. Please confirm or modify:")
	fmt.Fprintln(c.out)

	if err := c.collectScalars(ctx, rec, explicit); err != nil {
		if errors.Is(err, readmegen.ErrInputExhausted) {
			c.logger.Verbose("input ended during field confirmation; keeping resolved values")
			return nil
		}
		return err
	}

	features := NewListCollector(c.prompter, c.out, c.logger, c.policy, FeatureList,
		func(p Pair) readmegen.Feature { return readmegen.Feature{Name: p.Primary, Text: p.Secondary} })
	var err error
	if rec.Features, err = features.Collect(ctx, rec.Features); err != nil {
		return err
	}

	technologies := NewListCollector(c.prompter, c.out, c.logger, c.policy, TechnologyList,
		func(p Pair) readmegen.Technology { return readmegen.Technology{Name: p.Primary, Link: p.Secondary} })
	if rec.Technologies, err = technologies.Collect(ctx, rec.Technologies); err != nil {
		return err
	}
	return nil
}

func (c *Collector) collectScalars(ctx context.Context, rec *readmegen.Record, explicit readmegen.FieldSet) error {
	for _, f := range textFields {
		v := f.value(rec)
		if explicit.Has(f.field) {
			c.announce(f.message, *v)
			continue
		}
		answer, err := c.prompter.Text(ctx, readmegen.TextPrompt{
			Message:  f.message,
			Initial:  *v,
			Validate: f.validate,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", f.field, err)
		}
		*v = answer
	}

	for _, f := range choiceFields {
		v := f.value(rec)
		if explicit.Has(f.field) {
			c.announce(f.message, fmt.Sprint(*v))
			continue
		}
		initial := 1
		if *v {
			initial = 0
		}
		idx, err := c.prompter.Select(ctx, f.message, yesNo, initial)
		if err != nil {
			return fmt.Errorf("%s: %w", f.field, err)
		}
		*v = idx == 0
	}
	return nil
}

func (c *Collector) announce(label, value string) {
	fmt.Fprintf(c.out, "%s: \"%s\" (from CLI option)\n", label, value)
}
