// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec converts text to and from standard Base64 over its UTF-16LE
// byte representation.
//
// The UTF-16LE step is part of the wire format: "A" is carried as the bytes
// 0x41 0x00 and therefore encodes to "QQA=", not "QQ==".
package codec
