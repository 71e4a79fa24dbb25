package config

import (
	"strconv"

	"github.com/spf13/pflag"
)

// BindFlags registers all configuration flags on fs and returns the config
// they write into. The returned value is only meaningful after fs.Parse.
//
// Flags:
//
//	-e/--encode string to encode
//	-d/--decode string to decode
//	--copy      copy the result to the clipboard
//	--tui       use the terminal UI for interactive prompts
//	--log-level zerolog level (debug, info, warn, error, disabled)
//	--log-file  append JSON logs to this file instead of stderr
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.Request.Encode, "encode", "e", "", "The `string` to encode")
	fs.StringVarP(&cfg.Request.Decode, "decode", "d", "", "The `string` to decode")
	boolVar(fs, &cfg.Copy, "copy", "Copy the result to the system clipboard")
	boolVar(fs, &cfg.TUI, "tui", "Use the terminal UI for interactive prompts")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error, disabled)")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Append logs to this file instead of stderr")

	return cfg
}

// boolVar registers a boolean flag that leaves *target nil until the flag is
// given, so an explicit --name=false still overrides the environment.
func boolVar(fs *pflag.FlagSet, target **bool, name, usage string) {
	fs.Var(optionalBool{target: target}, name, usage)
	fs.Lookup(name).NoOptDefVal = "true"
}

type optionalBool struct {
	target **bool
}

func (b optionalBool) String() string {
	if b.target == nil || *b.target == nil {
		return "false"
	}
	return strconv.FormatBool(**b.target)
}

func (b optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*b.target = &v
	return nil
}

func (b optionalBool) Type() string { return "bool" }

func (b optionalBool) IsBoolFlag() bool { return true }
