// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"unicode/utf16"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

const replacementChar = '\uFFFD'

// UTF16LE is the [Codec] used by the command line tool. The zero value is
// not usable, construct it with [NewUTF16LE].
type UTF16LE struct {
	charset encoding.Encoding
	b64     *base64.Encoding
}

// NewUTF16LE returns a codec that transcodes text to UTF-16LE without a byte
// order mark and wraps the bytes in standard padded Base64.
func NewUTF16LE() *UTF16LE {
	return &UTF16LE{
		charset: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
		b64:     base64.StdEncoding,
	}
}

// Encode transcodes text to UTF-16LE and returns its Base64 form.
// Invalid UTF-8 sequences in text are carried as U+FFFD.
func (c *UTF16LE) Encode(text string) (string, error) {
	raw, err := c.charset.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return "", fmt.Errorf("error transcoding text to utf-16le: %w", err)
	}

	return c.b64.EncodeToString(raw), nil
}

// Decode parses b64 as standard Base64 and interprets the bytes as UTF-16LE.
// A leading U+FEFF is kept as part of the text.
func (c *UTF16LE) Decode(b64 string) (string, error) {
	raw, err := c.b64.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBase64, err)
	}

	if err = validateUTF16LE(raw); err != nil {
		return "", err
	}

	text, err := c.charset.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidUTF16, err)
	}

	return string(text), nil
}

// validateUTF16LE rejects buffers the x/text decoder would otherwise patch
// with U+FFFD.
func validateUTF16LE(raw []byte) error {
	if len(raw)%2 != 0 {
		return fmt.Errorf("%w: %d bytes", ErrOddLength, len(raw))
	}

	for i := 0; i < len(raw); i += 2 {
		unit := rune(binary.LittleEndian.Uint16(raw[i:]))
		if !utf16.IsSurrogate(unit) {
			continue
		}

		if unit >= 0xDC00 {
			return fmt.Errorf("%w: unpaired low surrogate %#04x at offset %d", ErrInvalidUTF16, unit, i)
		}
		if i+4 > len(raw) {
			return fmt.Errorf("%w: unpaired high surrogate %#04x at offset %d", ErrInvalidUTF16, unit, i)
		}

		next := rune(binary.LittleEndian.Uint16(raw[i+2:]))
		if utf16.DecodeRune(unit, next) == replacementChar {
			return fmt.Errorf("%w: unpaired high surrogate %#04x at offset %d", ErrInvalidUTF16, unit, i)
		}
		i += 2
	}

	return nil
}
