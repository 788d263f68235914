// Package tui provides the bubbletea-based Prompter used when readmegen runs
// in a terminal, plus the mode detection that decides whether a terminal is
// available at all.
//
// Each question is its own short-lived tea.Program wrapping one component
// from the components package. Esc ends the current question as if input
// had run out, so the caller keeps the values it already has; Ctrl+C
// cancels the run.
package tui
