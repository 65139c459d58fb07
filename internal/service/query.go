// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-keepass-http/internal/crypto"
	"github.com/MKhiriev/go-keepass-http/models"
)

// RetrieveCredentials implements [ConnectionService]. It encrypts the
// search value under the request's own nonce, sends the query, and
// decrypts every returned entry field-by-field under the nonce the
// companion chose for its response — never the request's.
//
// Decoding is all-or-nothing: one malformed field fails the whole call
// with [crypto.ErrDecryption] and no partial results.
func (c *Connection) RetrieveCredentials(ctx context.Context, mode SearchMode, value string) ([]models.Credential, error) {
	if c.state != StateAssociated {
		return nil, fmt.Errorf("%w: retrieve credentials requires an associated connection", ErrNotAssociated)
	}

	request, err := c.newLoginsRequest(mode, value)
	if err != nil {
		return nil, err
	}

	response, err := c.exchange(ctx, request)
	if err != nil {
		return nil, err
	}

	if !response.Success {
		reason := response.Error
		if reason == "" {
			reason = "unknown error"
		}
		return nil, fmt.Errorf("%w: %s", ErrQueryRejected, reason)
	}

	credentials, err := c.decryptEntries(response)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().Int("matches", len(credentials)).Msg("credentials retrieved")

	return credentials, nil
}

// decryptEntries decrypts all entries of a query response under the
// response's nonce, preserving the companion's order.
func (c *Connection) decryptEntries(response models.Response) ([]models.Credential, error) {
	if len(response.Entries) == 0 {
		return nil, nil
	}

	iv, err := base64.StdEncoding.DecodeString(response.Nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: bad response nonce: %v", crypto.ErrDecryption, err)
	}
	if len(iv) != crypto.NonceSize {
		return nil, fmt.Errorf("%w: response nonce is %d bytes, want %d", crypto.ErrDecryption, len(iv), crypto.NonceSize)
	}

	credentials := make([]models.Credential, 0, len(response.Entries))
	for i, entry := range response.Entries {
		credential, err := c.decryptEntry(entry, iv)
		if err != nil {
			return nil, fmt.Errorf("decrypt entry %d: %w", i, err)
		}
		credentials = append(credentials, credential)
	}

	return credentials, nil
}

func (c *Connection) decryptEntry(entry models.Entry, iv []byte) (models.Credential, error) {
	credential := models.Credential{}

	fields := []struct {
		ciphertext string
		out        *string
	}{
		{entry.Login, &credential.Username},
		{entry.Password, &credential.Password},
		{entry.UUID, &credential.UUID},
		{entry.Name, &credential.Name},
	}
	for _, f := range fields {
		plain, err := c.decryptField(f.ciphertext, iv)
		if err != nil {
			return models.Credential{}, err
		}
		*f.out = plain
	}

	for _, sf := range entry.StringFields {
		key, err := c.decryptField(sf.Key, iv)
		if err != nil {
			return models.Credential{}, err
		}
		value, err := c.decryptField(sf.Value, iv)
		if err != nil {
			return models.Credential{}, err
		}
		credential.Fields = append(credential.Fields, models.CredentialField{Key: key, Value: value})
	}

	return credential, nil
}

// decryptField decrypts one base64 ciphertext field. An absent field
// decrypts to the empty string without touching the cipher; the wire
// cannot distinguish an omitted field from a present-but-empty one.
func (c *Connection) decryptField(ciphertext string, iv []byte) (string, error) {
	if ciphertext == "" {
		return "", nil
	}

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: bad field encoding: %v", crypto.ErrDecryption, err)
	}

	plain, err := c.cipher.Decrypt(c.key, iv, raw)
	if err != nil {
		return "", err
	}

	return string(plain), nil
}
