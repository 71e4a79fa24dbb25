package prompt

import "errors"

var (
	// ErrNoInput is returned when input ends before an answer is read.
	ErrNoInput = errors.New("no input")
	// ErrUserQuit is returned when the user aborts the terminal UI prompt.
	ErrUserQuit = errors.New("prompt aborted by user")
)
