package models

// Credential is a fully decrypted entry. It is constructed once per entry
// during response decryption and never mutated afterwards; the caller owns
// it after return.
type Credential struct {
	// Username is the decrypted login name.
	Username string

	// Password is the decrypted password.
	Password string

	// UUID is the decrypted identifier of the record inside the vault.
	UUID string

	// Name is the decrypted display name of the record.
	Name string

	// Fields holds the decrypted additional attributes, preserving the
	// companion's order.
	Fields []CredentialField
}

// CredentialField is one decrypted key/value attribute of a credential.
type CredentialField struct {
	Key   string
	Value string
}
