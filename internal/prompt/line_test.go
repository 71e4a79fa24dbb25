package prompt

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/MKhiriev/b64u16/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine_Ask_ReadsOneLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "unix newline", input: "hello\n", expected: "hello"},
		{name: "windows newline", input: "hello\r\n", expected: "hello"},
		{name: "no trailing newline", input: "hello", expected: "hello"},
		{name: "empty line", input: "\n", expected: ""},
		{name: "surrounding spaces kept", input: "  spaced  \n", expected: "  spaced  "},
		{name: "only first line", input: "first\nsecond\n", expected: "first"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewLine(strings.NewReader(tt.input), &out)

			got, err := p.Ask(context.Background(), "Q: ")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, "Q: ", out.String())
		})
	}
}

func TestLine_Ask_SequentialQuestions(t *testing.T) {
	var out bytes.Buffer
	p := NewLine(strings.NewReader("e\nhi\n"), &out)
	ctx := context.Background()

	first, err := p.Ask(ctx, "mode? ")
	require.NoError(t, err)
	second, err := p.Ask(ctx, "text? ")
	require.NoError(t, err)

	assert.Equal(t, "e", first)
	assert.Equal(t, "hi", second)
	assert.Equal(t, "mode? text? ", out.String())
}

func TestLine_Ask_EOF(t *testing.T) {
	p := NewLine(strings.NewReader(""), io.Discard)

	got, err := p.Ask(context.Background(), "Q: ")
	assert.ErrorIs(t, err, ErrNoInput)
	assert.Empty(t, got)
}

func TestLine_Ask_ReadError(t *testing.T) {
	r, w := io.Pipe()
	require.NoError(t, w.CloseWithError(errors.New("tty gone")))

	p := NewLine(r, io.Discard)

	_, err := p.Ask(context.Background(), "Q: ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tty gone")
}

func TestLine_Ask_WriteError(t *testing.T) {
	r, w := io.Pipe()
	require.NoError(t, r.Close())

	p := NewLine(strings.NewReader("x\n"), w)

	_, err := p.Ask(context.Background(), "Q: ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error writing prompt")
}

func TestLine_Ask_CancelledBeforeRead(t *testing.T) {
	var out bytes.Buffer
	p := NewLine(strings.NewReader("x\n"), &out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Ask(ctx, "Q: ")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestLine_Ask_CancelledWhileBlocked(t *testing.T) {
	r, w := io.Pipe()
	t.Cleanup(func() { _ = w.Close() })

	p := NewLine(r, io.Discard)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := p.Ask(ctx, "Q: ")
		done <- err
	}()

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

// TestLine_Ask_LogsThroughContextLogger verifies that the prompter reports
// its outcome on the logger carried by ctx and never logs the answer itself.
func TestLine_Ask_LogsThroughContextLogger(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "answered", input: "secret\n", expected: "prompt answered"},
		{name: "end of input", input: "", expected: "prompt got no answer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			log, err := logger.NewLogger("test", &logs, "debug")
			require.NoError(t, err)
			ctx := log.GetChildLogger("prompt").WithContext(context.Background())

			p := NewLine(strings.NewReader(tt.input), io.Discard)
			_, _ = p.Ask(ctx, "Q: ")

			assert.Contains(t, logs.String(), tt.expected)
			assert.Contains(t, logs.String(), `"component":"prompt"`)
			assert.NotContains(t, logs.String(), "secret")
		})
	}
}

func TestLine_Ask_LogsCancellation(t *testing.T) {
	r, w := io.Pipe()
	t.Cleanup(func() { _ = w.Close() })

	var logs bytes.Buffer
	log, err := logger.NewLogger("test", &logs, "debug")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(log.WithContext(context.Background()))
	asked := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		_, err := NewLine(r, notifyWriter{asked}).Ask(ctx, "Q: ")
		done <- err
	}()

	<-asked
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
	assert.Contains(t, logs.String(), "prompt cancelled, pending read abandoned")
}

// notifyWriter closes ch on the first write.
type notifyWriter struct {
	ch chan struct{}
}

func (w notifyWriter) Write(p []byte) (int, error) {
	close(w.ch)
	return len(p), nil
}
