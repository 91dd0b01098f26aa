// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the public storefront API.
//
// It serves the ordered catalog, the application version and accepts visitor
// interaction events from storefront pages. Request tracing, access logging
// and response compression are applied here before requests reach the
// service layer.
package http
