// Package config provides configuration loading, merging, and validation
// for b64u16.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Defaults
//  2. Environment variables (B64U16_*)
//  3. Command-line flags
//
// The string to encode or decode is only ever taken from flags.
package config
