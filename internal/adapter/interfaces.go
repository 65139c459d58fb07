package adapter

import (
	"context"

	"github.com/MKhiriev/go-keepass-http/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/companion_adapter_mock.go -package=mock

// CompanionAdapter is the transport collaborator consumed by the protocol
// core. It serializes a request record to wire JSON, performs one HTTP
// round trip against the companion process, and deserializes the response
// record. JSON field naming and HTTP semantics are its concern alone; the
// core only requires that fields round-trip under the same name and that
// any failure surfaces as a single [ErrTransport]-wrapped error.
type CompanionAdapter interface {
	Post(ctx context.Context, request models.Request) (models.Response, error)
}
