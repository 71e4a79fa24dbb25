// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

//go:generate mockgen -source=interfaces.go -destination=../mock/codec_mock.go -package=mock

// Codec converts between text and its Base64 representation.
type Codec interface {
	// Encode returns the Base64 form of text.
	Encode(text string) (string, error)

	// Decode reverses Encode. It fails with ErrInvalidBase64, ErrOddLength
	// or ErrInvalidUTF16 when b64 does not describe valid text.
	Decode(b64 string) (string, error)
}
