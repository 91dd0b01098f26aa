// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of a runnable storefront process.
type Client interface {
	// Serve runs the storefront HTTP server and blocks until ctx ends or the
	// process is signalled.
	Serve(ctx context.Context) error
	// Close releases local resources.
	Close() error
}
