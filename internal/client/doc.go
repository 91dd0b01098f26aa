// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the storefront application runtime.
//
// It wires the local state database, the remote content store, the
// interaction notifier and the services into a single process lifecycle, and
// serves the storefront over HTTP.
package client
