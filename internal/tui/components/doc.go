// Package components contains the bubbletea models behind individual
// questions: a free-text TextField and a single-choice Selector. Both quit
// their program once the user submits an answer.
package components
