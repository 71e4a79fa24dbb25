// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli builds the b64u16 cobra command and wires configuration,
// logging and the client app together for one run.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/b64u16/internal/client"
	"github.com/MKhiriev/b64u16/internal/clipboard"
	"github.com/MKhiriev/b64u16/internal/codec"
	"github.com/MKhiriev/b64u16/internal/config"
	"github.com/MKhiriev/b64u16/internal/logger"
	"github.com/MKhiriev/b64u16/internal/prompt"
	"github.com/MKhiriev/b64u16/models"
	"github.com/spf13/cobra"
)

const appName = "b64u16"

// Streams are the process files a command talks to.
type Streams struct {
	In  *os.File
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the standard input, output and error of the process.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// NewRootCommand returns the b64u16 command. Results and prompts go to
// streams.Out; usage errors and logs go to streams.Err.
func NewRootCommand(streams Streams, buildInfo models.AppBuildInfo) *cobra.Command {
	var flags *config.StructuredConfig

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Encode or decode a string using base64",
		Long: `Encode or decode a string using base64.

The string is converted to UTF-16LE before it is base64 encoded, and decoded
base64 is read back as UTF-16LE. Without --encode or --decode the command asks
interactively which operation to run.`,
		Example: `  b64u16 -e 'hello'
  b64u16 --decode aABlAGwAbABvAA==
  b64u16            # interactive`,
		Args:          cobra.NoArgs,
		Version:       buildInfo.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), streams, flags)
		},
	}

	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.Err)
	cmd.SetVersionTemplate(buildInfo.String())

	flags = config.BindFlags(cmd.Flags())

	return cmd
}

func run(ctx context.Context, streams Streams, flags *config.StructuredConfig) error {
	cfg, err := config.GetStructuredConfig(flags)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	logOut := streams.Err
	if cfg.Log.File != "" {
		logFile, err := logger.OpenFile(cfg.Log.File)
		if err != nil {
			return err
		}
		defer logFile.Close()
		logOut = logFile
	}

	log, err := logger.NewLogger(appName, logOut, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("error creating logger: %w", err)
	}
	log = log.WithRunID()
	// Prompters read their logger from the context.
	ctx = log.GetChildLogger("prompt").WithContext(ctx)

	var clip clipboard.Clipboard
	if cfg.CopyEnabled() {
		clip = clipboard.NewSystem()
	}

	app, err := client.NewApp(
		codec.NewUTF16LE(),
		prompt.New(streams.In, streams.Out, cfg.TUIEnabled()),
		clip,
		streams.Out,
		log.GetChildLogger("client"),
	)
	if err != nil {
		return fmt.Errorf("init client app error: %w", err)
	}

	req := cfg.ToRequest()
	if err = app.Run(ctx, req); err != nil {
		log.Debug().Err(err).Stringer("kind", req.Kind).Msg("run failed")
		return err
	}

	return nil
}
