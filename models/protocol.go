// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RequestType enumerates the protocol verbs understood by the companion
// process. The wire values follow the companion's convention.
type RequestType string

const (
	// TestAssociate probes the companion without establishing anything.
	// The companion answers with its hash and whether the presented
	// verifier matches a known association.
	TestAssociate RequestType = "test-associate"

	// Associate submits a freshly generated shared key and asks the
	// companion to register it. The companion answers with a client id.
	Associate RequestType = "associate"

	// GetLogins searches stored credentials by URL.
	GetLogins RequestType = "get-logins"

	// GetLoginsCustomSearch searches stored credentials by an arbitrary
	// search string instead of a URL.
	GetLoginsCustomSearch RequestType = "get-logins-custom-search"
)

// Request is the outbound protocol record. One struct covers every verb;
// fields irrelevant to a verb are left empty and omitted from the wire.
// Use the builder functions in the service package rather than filling
// this struct by hand — they keep illegal field combinations out.
type Request struct {
	// RequestType selects the protocol verb.
	RequestType RequestType `json:"RequestType"`

	// ID is the client identifier assigned at association time.
	// Empty until the connection is associated.
	ID string `json:"Id,omitempty"`

	// Nonce is the base64 form of the fresh 16-byte IV generated for
	// this request. Every encrypted field of the request is encrypted
	// under this IV.
	Nonce string `json:"Nonce,omitempty"`

	// Verifier is the base64 ciphertext of the Nonce string itself,
	// encrypted under (shared key, Nonce). It proves key possession
	// without revealing the key.
	Verifier string `json:"Verifier,omitempty"`

	// Key carries the base64 shared key. Set only on Associate.
	Key string `json:"Key,omitempty"`

	// URL carries the base64 ciphertext of the search URL.
	// Set only on GetLogins.
	URL string `json:"Url,omitempty"`

	// SearchString carries the base64 ciphertext of the custom search
	// value. Set only on GetLoginsCustomSearch.
	SearchString string `json:"SearchString,omitempty"`
}

// Response is the inbound protocol record.
type Response struct {
	// Success reports whether the companion accepted the request.
	Success bool `json:"Success"`

	// Hash is the companion's opaque fingerprint, present on first
	// contact. The client stores it as its "connected" marker.
	Hash string `json:"Hash,omitempty"`

	// ID is the client identifier, present on successful association.
	ID string `json:"Id,omitempty"`

	// Nonce is the base64 IV the companion used to encrypt this
	// response's payload. Distinct from the request's nonce.
	Nonce string `json:"Nonce,omitempty"`

	// Error is an optional human-readable rejection reason.
	Error string `json:"Error,omitempty"`

	// Entries holds the encrypted credential records matching a query,
	// in the companion's order.
	Entries []Entry `json:"Entries,omitempty"`
}
