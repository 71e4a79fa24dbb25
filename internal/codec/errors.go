// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import "errors"

var (
	// ErrInvalidBase64 is returned when the input is not standard padded Base64.
	ErrInvalidBase64 = errors.New("invalid base64 input")
	// ErrOddLength is returned when the decoded buffer cannot hold whole
	// 16-bit code units.
	ErrOddLength = errors.New("decoded data has odd length")
	// ErrInvalidUTF16 is returned for unpaired surrogate code units.
	ErrInvalidUTF16 = errors.New("decoded data is not valid UTF-16LE")
)
