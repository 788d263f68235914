// Package collect asks the user to confirm or edit the resolved Record and
// to add feature and technology entries.
//
// All questions go through a readmegen.Prompter, so the same Collector drives
// the bubbletea TUI, a plain line-oriented terminal, or a scripted fake in
// tests. Questions are asked strictly one after another.
//
// List fields are filled by a ListCollector, which consumes an ItemSource:
// a generator that produces one entry at a time and asks whether to
// continue after each one. The source stops when the entry name is left
// empty, when the user declines to continue, or when the prompter runs out
// of input.
package collect
