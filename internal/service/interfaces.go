package service

import (
	"context"

	"github.com/MKhiriev/go-keepass-http/models"
)

// ConnectionService is the protocol surface consumed by the application:
// the connect → associate → query state machine over one companion
// process. Implementations are not safe for concurrent use; callers
// serialize access or use one connection per worker.
type ConnectionService interface {
	// Connect performs first contact with the companion and records its
	// hash. Idempotent: once connected it is a no-op returning success.
	Connect(ctx context.Context) (bool, error)

	// Associate establishes a shared key and client id with the
	// companion. Requires a prior Connect.
	Associate(ctx context.Context) error

	// RetrieveCredentials runs an encrypted search and returns the
	// decrypted matches in the companion's order. Requires an associated
	// connection.
	RetrieveCredentials(ctx context.Context, mode SearchMode, value string) ([]models.Credential, error)

	// Disconnect resets the connection to its unconnected state. The
	// association identity (client id, key) survives so it can be
	// exported and reused.
	Disconnect()

	// Info exports the association identity for persistence.
	Info() models.ConnectionInfo

	// State reports the current handshake state.
	State() State
}
