package models

// ConnectionInfo is the persistable identity of an association: everything
// a caller needs to reconstruct a Connection without repeating the
// association ceremony. The core prescribes no storage format; encoding
// and safekeeping of the key are the caller's concern.
type ConnectionInfo struct {
	// Host and Port address the companion process.
	Host string
	Port int

	// ClientID is the identifier the companion assigned at association.
	ClientID string

	// Key is the 32-byte shared symmetric key.
	Key []byte
}

// Complete reports whether the bundle carries both halves of an
// association. ClientID and Key only ever travel together.
func (i ConnectionInfo) Complete() bool {
	return i.ClientID != "" && len(i.Key) > 0
}
