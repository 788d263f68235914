package tui

import (
	"os"

	"golang.org/x/term"
)

// EnvNonInteractive forces non-interactive mode when set to "1".
const EnvNonInteractive = "READMEGEN_NON_INTERACTIVE"

// Mode represents the interaction mode for readmegen.
type Mode int

const (
	// ModeNonInteractive is used for CI/CD pipelines, scripts, and piped input.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is at the terminal.
	ModeInteractive
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeInteractive {
		return "interactive"
	}
	return "non-interactive"
}

// Unattended reports whether the environment asks for no questions at all:
// READMEGEN_NON_INTERACTIVE=1 or CI set. Piped input alone is not unattended;
// answers can still be read line by line.
func Unattended() bool {
	return os.Getenv(EnvNonInteractive) == "1" || os.Getenv("CI") != ""
}

// DetectMode determines whether readmegen can draw its terminal UI.
//
// Returns ModeNonInteractive if:
//   - the environment is Unattended
//   - NO_COLOR is set (accessibility/automation indicator)
//   - stdin is not a terminal (piped input, CI/CD)
//   - stderr is not a terminal (prompts are drawn there)
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	if Unattended() {
		return ModeNonInteractive
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModeNonInteractive
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ModeNonInteractive
	}
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return ModeNonInteractive
	}

	return ModeInteractive
}
