// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the front-end of b64u16.
//
// It takes the request decided at startup, asks for the missing pieces when
// the request is interactive, runs the codec and prints the result.
package client
