// Package logging provides concrete implementations of the readmegen.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Leveled output to stderr through charmbracelet/log
//   - NullLogger: Discards all messages (useful for testing)
package logging
