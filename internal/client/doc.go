// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the one-shot credential lookup application.
//
// It wires the companion adapter, the association store, the crypto
// services, and the terminal picker into a single process lifecycle:
// restore or establish an association, run the configured query, and
// hand the matching password to the clipboard.
package client
