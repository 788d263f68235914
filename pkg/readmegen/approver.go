package readmegen

import "context"

// Approver handles confirmation before an existing output file is replaced.
//
// Implementations:
//   - ForcedApprover: approves without asking (--force)
//   - InteractiveApprover: asks a yes/no question, defaulting to no
type Approver interface {
	// RequestApproval asks whether the file at path may be overwritten.
	//
	// Returns:
	//   - bool: true if approved, false if denied
	//   - error: Any error that occurred during the approval process
	RequestApproval(ctx context.Context, path string) (bool, error)
}
