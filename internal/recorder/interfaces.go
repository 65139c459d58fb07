package recorder

import "github.com/MKhiriev/go-keepass-http/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/recorder_mock.go -package=mock

// Recorder is the optional debug collaborator of the protocol core. The
// core calls it once per outbound request and once per inbound response;
// implementations must tolerate being a no-op.
type Recorder interface {
	RecordRequest(request models.Request)
	RecordResponse(response models.Response)
}
