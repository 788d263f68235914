package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/vvka-141/readmegen/pkg/readmegen"
)

// ForcedApprover implements the Approver interface for --force. It approves
// every overwrite without asking.
type ForcedApprover struct {
	output io.Writer
	logger readmegen.Logger
}

// NewForcedApprover creates a ForcedApprover that reports on output.
func NewForcedApprover(output io.Writer, logger readmegen.Logger) readmegen.Approver {
	return &ForcedApprover{output: output, logger: logger}
}

// RequestApproval approves immediately unless ctx is already cancelled.
func (a *ForcedApprover) RequestApproval(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	a.logger.Verbose("--force given, overwriting %s without confirmation", path)
	fmt.Fprintf(a.output, "Overwriting existing file at \"%s\".\n", path)
	return true, nil
}

// Verify ForcedApprover implements the Approver interface at compile time
var _ readmegen.Approver = (*ForcedApprover)(nil)
