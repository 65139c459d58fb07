// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the protocol core of the companion client:
// the connect → associate → query handshake state machine and the
// per-field encryption of everything that crosses the wire.
//
// A Connection is strictly single-threaded. There is no internal locking;
// concurrent calls on the same Connection must be serialized by the
// caller.
package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-keepass-http/internal/adapter"
	"github.com/MKhiriev/go-keepass-http/internal/crypto"
	"github.com/MKhiriev/go-keepass-http/internal/logger"
	"github.com/MKhiriev/go-keepass-http/internal/recorder"
	"github.com/MKhiriev/go-keepass-http/models"
)

// State is the handshake state of a [Connection].
type State int

const (
	// StateUnconnected means no contact has been made with the
	// companion yet (or Disconnect reset the connection).
	StateUnconnected State = iota
	// StateConnected means the companion's hash has been recorded but
	// no association identity exists.
	StateConnected
	// StateAssociated means a shared key and client id are installed
	// and queries may be issued.
	StateAssociated
)

func (s State) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateAssociated:
		return "associated"
	default:
		return "unconnected"
	}
}

// zeroKey signs first-contact probes before any key exists. The companion
// cannot verify it; it only needs the request to be well-formed.
var zeroKey = make([]byte, crypto.KeySize)

// Connection is the long-lived client object for one companion process.
// The handshake state, the companion hash, and the association identity
// (client id + key) live here as one explicit state machine instead of
// independently nullable fields.
type Connection struct {
	host string
	port int

	state      State
	serverHash string
	clientID   string
	key        []byte

	companion adapter.CompanionAdapter
	cipher    crypto.CipherService
	recorder  recorder.Recorder
	logger    *logger.Logger
}

// NewConnection constructs an unconnected [Connection] for the companion
// at host:port. rec may be [recorder.Nop] when debugging is off.
func NewConnection(host string, port int, companion adapter.CompanionAdapter, cipher crypto.CipherService, rec recorder.Recorder, log *logger.Logger) *Connection {
	return &Connection{
		host:      host,
		port:      port,
		companion: companion,
		cipher:    cipher,
		recorder:  rec,
		logger:    log,
	}
}

// RestoreConnection reconstructs a [Connection] from a persisted
// association bundle so the caller can skip re-association. The restored
// connection still starts unconnected; the first Connect promotes it
// straight to associated because the identity is already installed.
//
// Returns [ErrInvalidConnectionInfo] if the bundle carries only one half
// of the identity.
func RestoreConnection(info models.ConnectionInfo, companion adapter.CompanionAdapter, cipher crypto.CipherService, rec recorder.Recorder, log *logger.Logger) (*Connection, error) {
	if !info.Complete() {
		return nil, fmt.Errorf("%w: client id and key must both be present", ErrInvalidConnectionInfo)
	}
	if len(info.Key) != crypto.KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", ErrInvalidConnectionInfo, crypto.KeySize, len(info.Key))
	}

	c := NewConnection(info.Host, info.Port, companion, cipher, rec, log)
	c.clientID = info.ClientID
	c.key = append([]byte(nil), info.Key...)

	return c, nil
}

// Connect implements [ConnectionService]. On first call it sends a
// test-associate probe signed with whatever key currently exists and
// records the companion's hash from the response regardless of success.
// Subsequent calls are no-ops returning success.
func (c *Connection) Connect(ctx context.Context) (bool, error) {
	if c.state != StateUnconnected {
		return true, nil
	}

	request, err := c.newTestAssociateRequest()
	if err != nil {
		return false, err
	}

	response, err := c.exchange(ctx, request)
	if err != nil {
		return false, err
	}

	c.serverHash = response.Hash
	if c.key != nil && c.clientID != "" {
		c.state = StateAssociated
	} else {
		c.state = StateConnected
	}

	c.logger.Debug().
		Str("state", c.state.String()).
		Bool("verified", response.Success).
		Msg("connected to companion")

	return response.Success, nil
}

// Associate implements [ConnectionService]. It generates a 32-byte key if
// none exists, submits it, and installs the companion-assigned client id
// on success.
//
// Fails with [ErrDisconnected] before any Connect, and with
// [ErrAssociationRejected] (carrying the companion's reason) when the
// companion refuses or returns no id; in that case the connection stays
// connected but not associated. The key and id are installed together on
// success only, so they never exist half-installed.
func (c *Connection) Associate(ctx context.Context) error {
	if c.state == StateUnconnected {
		return fmt.Errorf("%w: associate requires a prior connect", ErrDisconnected)
	}

	key := c.key
	if key == nil {
		var err error
		if key, err = c.cipher.GenerateKey(); err != nil {
			return fmt.Errorf("generate key: %w", err)
		}
	}

	request, err := c.newAssociateRequest(key)
	if err != nil {
		return err
	}

	response, err := c.exchange(ctx, request)
	if err != nil {
		return err
	}

	if !response.Success || response.ID == "" {
		reason := response.Error
		if reason == "" {
			reason = "no id returned"
		}
		return fmt.Errorf("%w: %s", ErrAssociationRejected, reason)
	}

	c.key = key
	c.clientID = response.ID
	c.state = StateAssociated

	c.logger.Info().Str("client_id", c.clientID).Msg("associated with companion")

	return nil
}

// Disconnect implements [ConnectionService]. It resets the handshake
// state and forgets the companion hash. The association identity is kept:
// the caller may export it via Info and restore it later to skip
// re-association.
func (c *Connection) Disconnect() {
	c.state = StateUnconnected
	c.serverHash = ""
}

// Info implements [ConnectionService].
func (c *Connection) Info() models.ConnectionInfo {
	return models.ConnectionInfo{
		Host:     c.host,
		Port:     c.port,
		ClientID: c.clientID,
		Key:      append([]byte(nil), c.key...),
	}
}

// State implements [ConnectionService].
func (c *Connection) State() State {
	return c.state
}

// ServerHash returns the companion fingerprint recorded by Connect, or
// the empty string before first contact.
func (c *Connection) ServerHash() string {
	return c.serverHash
}

func (c *Connection) currentKey() []byte {
	if c.key == nil {
		return zeroKey
	}
	return c.key
}

// exchange runs one request/response round trip through the transport,
// mirroring both records to the debug recorder.
func (c *Connection) exchange(ctx context.Context, request models.Request) (models.Response, error) {
	c.recorder.RecordRequest(request)

	response, err := c.companion.Post(ctx, request)
	if err != nil {
		return models.Response{}, err
	}

	c.recorder.RecordResponse(response)
	return response, nil
}
