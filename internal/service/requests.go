package service

import (
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-keepass-http/models"
)

// SearchMode selects how the companion matches stored credentials.
type SearchMode int

const (
	// SearchByURL matches credentials against a site URL.
	SearchByURL SearchMode = iota
	// SearchByCustomString matches credentials against an arbitrary
	// search string.
	SearchByCustomString
)

// verifier is the per-request proof of key possession: a fresh IV, its
// base64 form as the request nonce, and the nonce string encrypted under
// (key, IV). Every encrypted field of the same request reuses the IV —
// the companion expects one IV per message.
type verifier struct {
	iv          []byte
	nonce       string
	verifierB64 string
}

// newVerifier generates a fresh verifier under key. The encrypted payload
// is the UTF-8 bytes of the base64 nonce string itself, binding the proof
// to an unpredictable single-use value.
func (c *Connection) newVerifier(key []byte) (verifier, error) {
	iv, err := c.cipher.GenerateNonce()
	if err != nil {
		return verifier{}, fmt.Errorf("generate nonce: %w", err)
	}

	nonce := base64.StdEncoding.EncodeToString(iv)
	ct, err := c.cipher.Encrypt(key, iv, []byte(nonce))
	if err != nil {
		return verifier{}, fmt.Errorf("encrypt verifier: %w", err)
	}

	return verifier{
		iv:          iv,
		nonce:       nonce,
		verifierB64: base64.StdEncoding.EncodeToString(ct),
	}, nil
}

// newTestAssociateRequest builds the first-contact probe. It is signed
// with whatever key currently exists; before any association that is the
// all-zero default key, which the companion will simply fail to verify.
func (c *Connection) newTestAssociateRequest() (models.Request, error) {
	v, err := c.newVerifier(c.currentKey())
	if err != nil {
		return models.Request{}, err
	}

	return models.Request{
		RequestType: models.TestAssociate,
		ID:          c.clientID,
		Nonce:       v.nonce,
		Verifier:    v.verifierB64,
	}, nil
}

// newAssociateRequest builds the key-registration request carrying the
// base64 shared key alongside the verifier.
func (c *Connection) newAssociateRequest(key []byte) (models.Request, error) {
	v, err := c.newVerifier(key)
	if err != nil {
		return models.Request{}, err
	}

	return models.Request{
		RequestType: models.Associate,
		Nonce:       v.nonce,
		Verifier:    v.verifierB64,
		Key:         base64.StdEncoding.EncodeToString(key),
	}, nil
}

// newLoginsRequest builds a credential query. The search value is
// encrypted under the same IV as the request's verifier and lands in the
// Url or SearchString field depending on mode.
func (c *Connection) newLoginsRequest(mode SearchMode, value string) (models.Request, error) {
	v, err := c.newVerifier(c.key)
	if err != nil {
		return models.Request{}, err
	}

	ct, err := c.cipher.Encrypt(c.key, v.iv, []byte(value))
	if err != nil {
		return models.Request{}, fmt.Errorf("encrypt search value: %w", err)
	}
	encrypted := base64.StdEncoding.EncodeToString(ct)

	request := models.Request{
		ID:       c.clientID,
		Nonce:    v.nonce,
		Verifier: v.verifierB64,
	}

	switch mode {
	case SearchByCustomString:
		request.RequestType = models.GetLoginsCustomSearch
		request.SearchString = encrypted
	default:
		request.RequestType = models.GetLogins
		request.URL = encrypted
	}

	return request, nil
}
