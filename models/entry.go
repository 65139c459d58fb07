package models

// Entry is one encrypted credential record returned by a query. Every
// field is base64 AES-CBC ciphertext under the response's nonce; an empty
// string means the companion omitted the field.
type Entry struct {
	Login    string `json:"Login,omitempty"`
	Password string `json:"Password,omitempty"`
	UUID     string `json:"Uuid,omitempty"`
	Name     string `json:"Name,omitempty"`

	// StringFields carries additional key/value attributes of the
	// credential, both sides encrypted, in the companion's order.
	StringFields []StringField `json:"StringFields,omitempty"`
}

// StringField is one encrypted key/value attribute of an entry.
type StringField struct {
	Key   string `json:"Key"`
	Value string `json:"Value"`
}
