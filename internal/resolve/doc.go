// Package resolve merges the built-in defaults, the manifest partial and the
// command-line overrides into one Record.
//
// Precedence is per field: an explicitly supplied flag wins (even when it is
// the empty string), then a value set by the manifest, then the default.
// Lists always start from the defaults; they are only ever filled by the
// interactive collector.
package resolve
