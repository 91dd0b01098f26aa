// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli defines the storefront command tree: the public storefront
// server, the admin editing commands and the language preference.
package cli
