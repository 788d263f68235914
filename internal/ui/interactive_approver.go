package ui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/vvka-141/readmegen/pkg/readmegen"
)

// InteractiveApprover implements the Approver interface by asking the user
// through a Prompter. The question defaults to "no".
type InteractiveApprover struct {
	prompter readmegen.Prompter
	logger   readmegen.Logger
}

// NewInteractiveApprover creates an InteractiveApprover.
func NewInteractiveApprover(prompter readmegen.Prompter, logger readmegen.Logger) readmegen.Approver {
	return &InteractiveApprover{prompter: prompter, logger: logger}
}

// OverwriteQuestion is the confirmation asked for an existing file.
func OverwriteQuestion(path string) string {
	return fmt.Sprintf("A %s already exists at \"%s\". Overwrite?", filepath.Base(path), path)
}

// RequestApproval asks whether path may be overwritten. Running out of input
// counts as a refusal; context cancellation is returned as an error.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, path string) (bool, error) {
	ok, err := a.prompter.Confirm(ctx, OverwriteQuestion(path), false)
	if err != nil {
		if errors.Is(err, readmegen.ErrInputExhausted) {
			a.logger.Verbose("no answer to overwrite confirmation for %s, treating as no", path)
			return false, nil
		}
		return false, fmt.Errorf("overwrite confirmation failed: %w", err)
	}
	return ok, nil
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ readmegen.Approver = (*InteractiveApprover)(nil)
