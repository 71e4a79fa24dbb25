// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/b64u16/models"
)

// Client defines the lifecycle contract for one run of the tool.
type Client interface {
	// Run executes req and blocks until the result is printed or an error
	// occurs.
	Run(ctx context.Context, req models.Request) error
}
