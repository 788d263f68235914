// Package ui provides plain-terminal implementations of the readmegen
// Prompter and Approver interfaces.
//
// LinePrompter reads one answer per line and works with any io.Reader, which
// makes it the fallback when no TTY is available and the driver for scripted
// input in tests. The approvers decide whether an existing README may be
// overwritten.
package ui
