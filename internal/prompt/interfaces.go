// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prompt

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/prompter_mock.go -package=mock

// Prompter shows a question and reads one answer.
type Prompter interface {
	// Ask writes question without a trailing newline and blocks until the
	// user submits a line. The line terminator is not part of the answer.
	// Returns ErrNoInput at end of input, ErrUserQuit when the user aborts,
	// or ctx.Err() when ctx is cancelled first.
	Ask(ctx context.Context, question string) (string, error)
}
