package client

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/b64u16/internal/clipboard"
	"github.com/MKhiriev/b64u16/internal/codec"
	"github.com/MKhiriev/b64u16/internal/logger"
	"github.com/MKhiriev/b64u16/internal/prompt"
	"github.com/MKhiriev/b64u16/models"
)

// Texts shown in interactive mode.
const (
	QuestionMode   = "Do you want to encode or decode a string? (e/d): "
	QuestionEncode = "Please enter the string to encode: "
	QuestionDecode = "Please enter the string to decode: "
	InvalidOption  = "Invalid option"
)

// App runs a single encode or decode request.
type App struct {
	codec     codec.Codec
	prompter  prompt.Prompter
	clipboard clipboard.Clipboard
	out       io.Writer

	logger *logger.Logger
}

// NewApp wires an App. clip may be nil, in which case results are only
// printed to out.
func NewApp(c codec.Codec, p prompt.Prompter, clip clipboard.Clipboard, out io.Writer, log *logger.Logger) (*App, error) {
	if c == nil || p == nil || out == nil {
		return nil, ErrMissingDependency
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{
		codec:     c,
		prompter:  p,
		clipboard: clip,
		out:       out,
		logger:    log,
	}, nil
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, req models.Request) error {
	a.logger.Debug().
		Stringer("kind", req.Kind).
		Int("input_len", len(req.Input)).
		Msg("running request")

	switch req.Kind {
	case models.Encode:
		return a.encode(req.Input)
	case models.Decode:
		return a.decode(req.Input)
	case models.Interactive:
		return a.interactive(ctx)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownRequest, req.Kind)
	}
}

func (a *App) interactive(ctx context.Context) error {
	option, err := a.prompter.Ask(ctx, QuestionMode)
	if err != nil {
		return fmt.Errorf("error reading option: %w", err)
	}

	switch strings.ToLower(option) {
	case "e":
		text, err := a.prompter.Ask(ctx, QuestionEncode)
		if err != nil {
			return fmt.Errorf("error reading string to encode: %w", err)
		}
		return a.encode(text)

	case "d":
		text, err := a.prompter.Ask(ctx, QuestionDecode)
		if err != nil {
			return fmt.Errorf("error reading string to decode: %w", err)
		}
		return a.decode(text)

	default:
		a.logger.Info().Str("option", option).Msg("invalid interactive option")
		if _, err = fmt.Fprintln(a.out, InvalidOption); err != nil {
			return fmt.Errorf("error writing result: %w", err)
		}
		return nil
	}
}

func (a *App) encode(text string) error {
	encoded, err := a.codec.Encode(text)
	if err != nil {
		return fmt.Errorf("error encoding string: %w", err)
	}

	return a.emit(encoded)
}

func (a *App) decode(b64 string) error {
	decoded, err := a.codec.Decode(b64)
	if err != nil {
		a.logger.Debug().Err(err).Msg("decode failed")
		return fmt.Errorf("error decoding string: %w", err)
	}

	return a.emit(decoded)
}

// emit prints result and, when configured, copies it to the clipboard.
// A clipboard failure is logged and does not fail the run.
func (a *App) emit(result string) error {
	if _, err := fmt.Fprintln(a.out, result); err != nil {
		return fmt.Errorf("error writing result: %w", err)
	}

	if a.clipboard != nil {
		if err := a.clipboard.WriteAll(result); err != nil {
			a.logger.Warn().Err(err).Msg("could not copy result to clipboard")
		}
	}

	return nil
}
