// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RequestKind defines what a single run of the tool does.
// The value is decided once at startup from the command line and never
// changes afterwards.
type RequestKind int

const (
	// Interactive asks the user for the mode and the input string.
	Interactive RequestKind = iota

	// Encode turns Request.Input into Base64.
	Encode

	// Decode turns the Base64 in Request.Input back into text.
	Decode
)

// String returns a lowercase name suitable for log fields.
func (k RequestKind) String() string {
	switch k {
	case Interactive:
		return "interactive"
	case Encode:
		return "encode"
	case Decode:
		return "decode"
	default:
		return "unknown"
	}
}

// Request is the parsed intent of one invocation.
type Request struct {
	// Kind selects the code path.
	Kind RequestKind

	// Input is the string to encode or decode. It is empty for Interactive,
	// where the string is read from the prompt instead.
	Input string
}

// NewRequest builds a Request from the raw --encode and --decode values.
//
// A non-empty encode value wins over decode. An empty value counts as not
// given, so `-e ""` falls through to decode or to the interactive prompt.
func NewRequest(encode, decode string) Request {
	switch {
	case encode != "":
		return Request{Kind: Encode, Input: encode}
	case decode != "":
		return Request{Kind: Decode, Input: decode}
	default:
		return Request{Kind: Interactive}
	}
}
