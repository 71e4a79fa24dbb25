// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package prompt asks the user a question and returns the line they answer
// with. [Line] is a plain stdin/stdout prompter; [TUI] renders the same
// question as a bubbletea text input.
package prompt
