// Package readmegen holds the public contracts of the README generator:
// the Record threaded through the pipeline, the Logger, Prompter and
// Approver interfaces implemented by internal packages, sentinel errors and
// the exit codes derived from them.
package readmegen
