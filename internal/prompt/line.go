// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/b64u16/internal/logger"
)

// Line is a [Prompter] that writes questions to out and reads answers from in
// one line at a time.
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLine returns a line prompter over in and out.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{
		in:  bufio.NewReader(in),
		out: out,
	}
}

type lineResult struct {
	line string
	err  error
}

// Ask implements [Prompter]. A final line without a terminator is still
// returned as an answer.
//
// When ctx is cancelled the pending read is abandoned; the Line must not be
// used afterwards.
func (p *Line) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := io.WriteString(p.out, question); err != nil {
		return "", fmt.Errorf("error writing prompt: %w", err)
	}

	log := logger.FromContext(ctx)

	result := make(chan lineResult, 1)
	// Left blocked in ReadString if ctx is cancelled; the process exits right after.
	go func() {
		line, err := p.readLine()
		result <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		log.Debug().Err(ctx.Err()).Msg("prompt cancelled, pending read abandoned")
		return "", ctx.Err()
	case res := <-result:
		if res.err != nil {
			log.Debug().Err(res.err).Msg("prompt got no answer")
			return "", res.err
		}
		log.Debug().Int("answer_len", len(res.line)).Msg("prompt answered")
		return res.line, nil
	}
}

func (p *Line) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("error reading answer: %w", err)
		}
		if line == "" {
			return "", ErrNoInput
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, nil
}
