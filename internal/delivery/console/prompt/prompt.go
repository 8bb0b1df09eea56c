// Package prompt asks the user for menu selections and typed answers.
package prompt

import "errors"

// ErrAborted is returned when the user interrupts a prompt or input ends.
var ErrAborted = errors.New("prompt aborted")

// Prompter blocks until the user answers.
type Prompter interface {
	// Select returns the index of the chosen item.
	Select(label string, items []string) (int, error)
	// Input re-asks until validate accepts the answer. A nil validate accepts anything.
	Input(label string, validate func(string) error) (string, error)
}
