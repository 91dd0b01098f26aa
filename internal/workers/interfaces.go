// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background runners of the storefront.
package workers

import "context"

// Debouncer collapses a burst of updates into a single save that runs once
// no new update has arrived for a quiet window. Only the latest value of a
// burst is saved.
type Debouncer[T any] interface {
	// Schedule records v as the latest value and restarts the quiet window.
	Schedule(v T)

	// Flush saves the pending value now. It is a no-op without one.
	Flush(ctx context.Context) error

	// Pending reports whether a value is waiting to be saved.
	Pending() bool

	// Stop cancels the timer and waits for an in-flight save. A pending
	// value is discarded; call Flush first to keep it.
	Stop()
}
