// Package generator runs the README pipeline end to end:
//
//	manifest → resolve → (collect) → overwrite check → render → write
//
// Every input arrives through Options and every collaborator through New,
// so a run has no hidden process-wide state. User-facing progress goes to
// the writer given to New; diagnostics go to the Logger.
package generator
