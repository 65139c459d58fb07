package store

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/association_repository_mock.go -package=mock

// AssociationRecord is one persisted association bundle. The shared key
// is stored sealed (see the crypto package's KeyStore); the store never
// sees it in the clear.
type AssociationRecord struct {
	Host      string
	Port      int
	ClientID  string
	SealedKey string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AssociationRepository persists association bundles keyed by companion
// endpoint, so later runs can skip the association ceremony.
type AssociationRepository interface {
	// Save inserts or replaces the bundle for rec's endpoint.
	Save(ctx context.Context, rec AssociationRecord) error

	// Get returns the bundle for host:port, or
	// [ErrAssociationNotFound].
	Get(ctx context.Context, host string, port int) (AssociationRecord, error)

	// Delete forgets the bundle for host:port. Deleting a missing
	// bundle is not an error.
	Delete(ctx context.Context, host string, port int) error
}
