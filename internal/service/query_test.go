// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"testing"

	"github.com/MKhiriev/go-keepass-http/internal/crypto"
	"github.com/MKhiriev/go-keepass-http/internal/logger"
	"github.com/MKhiriev/go-keepass-http/internal/mock"
	"github.com/MKhiriev/go-keepass-http/internal/recorder"
	"github.com/MKhiriev/go-keepass-http/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testKey = bytes.Repeat([]byte{0x5A}, 32)

// newAssociatedConnection returns a connection holding testKey and client
// id "abc", promoted to associated through a stubbed first contact.
func newAssociatedConnection(t *testing.T, ctrl *gomock.Controller) (*Connection, *mock.MockCompanionAdapter) {
	t.Helper()

	mockAdapter := mock.NewMockCompanionAdapter(ctrl)
	info := models.ConnectionInfo{Host: "localhost", Port: 19455, ClientID: "abc", Key: testKey}

	c, err := RestoreConnection(info, mockAdapter, crypto.NewCipherService(), recorder.Nop{}, logger.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	mockAdapter.EXPECT().Post(ctx, gomock.Any()).Return(models.Response{Success: true, Hash: "aa"}, nil)
	_, err = c.Connect(ctx)
	require.NoError(t, err)
	require.Equal(t, StateAssociated, c.State())

	return c, mockAdapter
}

// encryptField encrypts value under (testKey, iv) and base64-encodes it,
// the way the companion prepares response entries.
func encryptField(t *testing.T, iv []byte, value string) string {
	t.Helper()

	ct, err := crypto.NewCipherService().Encrypt(testKey, iv, []byte(value))
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(ct)
}

func TestRetrieveCredentials_NotAssociated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no Post expectation: the precondition fails before any network I/O
	c, _ := newTestConnection(t, ctrl)

	_, err := c.RetrieveCredentials(context.Background(), SearchByURL, "https://example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotAssociated)
}

func TestRetrieveCredentials_DecryptsEntriesUnderResponseNonce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, mockAdapter := newAssociatedConnection(t, ctrl)
	ctx := context.Background()
	svc := crypto.NewCipherService()

	// the companion picks its own IV, distinct from the request's
	respIV, err := svc.GenerateNonce()
	require.NoError(t, err)

	mockAdapter.EXPECT().Post(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.Request) (models.Response, error) {
			assert.Equal(t, models.GetLogins, req.RequestType)
			assert.Equal(t, "abc", req.ID)
			assert.Empty(t, req.SearchString)
			assert.NotEqual(t, base64.StdEncoding.EncodeToString(respIV), req.Nonce)

			// the search URL travels encrypted under the request's nonce
			reqIV, err := base64.StdEncoding.DecodeString(req.Nonce)
			require.NoError(t, err)
			ct, err := base64.StdEncoding.DecodeString(req.URL)
			require.NoError(t, err)
			plain, err := svc.Decrypt(testKey, reqIV, ct)
			require.NoError(t, err)
			assert.Equal(t, "https://example.com/login", string(plain))

			return models.Response{
				Success: true,
				Nonce:   base64.StdEncoding.EncodeToString(respIV),
				Entries: []models.Entry{
					{
						Login:    encryptField(t, respIV, "alice"),
						Password: encryptField(t, respIV, "s3cr3t"),
						UUID:     encryptField(t, respIV, "uuid-1"),
						Name:     encryptField(t, respIV, "Example"),
						StringFields: []models.StringField{
							{Key: encryptField(t, respIV, "KPH: otp"), Value: encryptField(t, respIV, "123456")},
						},
					},
					{
						Login:    encryptField(t, respIV, "bob"),
						Password: encryptField(t, respIV, "hunter2"),
					},
				},
			}, nil
		},
	)

	credentials, err := c.RetrieveCredentials(ctx, SearchByURL, "https://example.com/login")
	require.NoError(t, err)
	require.Len(t, credentials, 2)

	assert.Equal(t, "alice", credentials[0].Username)
	assert.Equal(t, "s3cr3t", credentials[0].Password)
	assert.Equal(t, "uuid-1", credentials[0].UUID)
	assert.Equal(t, "Example", credentials[0].Name)
	require.Len(t, credentials[0].Fields, 1)
	assert.Equal(t, "KPH: otp", credentials[0].Fields[0].Key)
	assert.Equal(t, "123456", credentials[0].Fields[0].Value)

	// order preserved, absent fields decrypt to empty strings
	assert.Equal(t, "bob", credentials[1].Username)
	assert.Equal(t, "hunter2", credentials[1].Password)
	assert.Empty(t, credentials[1].UUID)
	assert.Empty(t, credentials[1].Name)
}

func TestRetrieveCredentials_CustomSearchUsesSearchStringField(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, mockAdapter := newAssociatedConnection(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Post(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.Request) (models.Response, error) {
			assert.Equal(t, models.GetLoginsCustomSearch, req.RequestType)
			assert.NotEmpty(t, req.SearchString)
			assert.Empty(t, req.URL)
			return models.Response{Success: true}, nil
		},
	)

	credentials, err := c.RetrieveCredentials(ctx, SearchByCustomString, "bank")
	require.NoError(t, err)
	assert.Empty(t, credentials)
}

func TestRetrieveCredentials_RejectedWithServerText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, mockAdapter := newAssociatedConnection(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Post(ctx, gomock.Any()).Return(
		models.Response{Success: false, Error: "database locked"}, nil,
	)

	_, err := c.RetrieveCredentials(ctx, SearchByURL, "https://example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQueryRejected)
	assert.Contains(t, err.Error(), "database locked")
}

func TestRetrieveCredentials_RejectedWithoutTextFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, mockAdapter := newAssociatedConnection(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Post(ctx, gomock.Any()).Return(models.Response{Success: false}, nil)

	_, err := c.RetrieveCredentials(ctx, SearchByURL, "https://example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQueryRejected)
	assert.Contains(t, err.Error(), "unknown error")
}

func TestRetrieveCredentials_RequestNonceCannotDecryptEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, mockAdapter := newAssociatedConnection(t, ctrl)
	ctx := context.Background()
	svc := crypto.NewCipherService()

	mockAdapter.EXPECT().Post(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.Request) (models.Response, error) {
			// entries encrypted under the *request* nonce but the
			// response advertises a different one: decryption must not
			// silently succeed
			reqIV, err := base64.StdEncoding.DecodeString(req.Nonce)
			require.NoError(t, err)

			otherIV, err := svc.GenerateNonce()
			require.NoError(t, err)

			return models.Response{
				Success: true,
				Nonce:   base64.StdEncoding.EncodeToString(otherIV),
				Entries: []models.Entry{{Login: encryptField(t, reqIV, "alice")}},
			}, nil
		},
	)

	credentials, err := c.RetrieveCredentials(ctx, SearchByURL, "https://example.com")
	if err == nil {
		require.Len(t, credentials, 1)
		assert.NotEqual(t, "alice", credentials[0].Username)
	}
}

func TestRetrieveCredentials_ShortResponseNonceFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, mockAdapter := newAssociatedConnection(t, ctrl)
	ctx := context.Background()

	// a truncated IV is malformed response material, not a caller error
	shortIV := bytes.Repeat([]byte{0x01}, 8)
	mockAdapter.EXPECT().Post(ctx, gomock.Any()).Return(models.Response{
		Success: true,
		Nonce:   base64.StdEncoding.EncodeToString(shortIV),
		Entries: []models.Entry{{Login: "AAAA"}},
	}, nil)

	_, err := c.RetrieveCredentials(ctx, SearchByURL, "https://example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, crypto.ErrDecryption)
	assert.NotErrorIs(t, err, crypto.ErrInvalidNonceSize)
}

func TestRetrieveCredentials_MalformedEntryFailsWhole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, mockAdapter := newAssociatedConnection(t, ctrl)
	ctx := context.Background()
	svc := crypto.NewCipherService()

	respIV, err := svc.GenerateNonce()
	require.NoError(t, err)

	mockAdapter.EXPECT().Post(ctx, gomock.Any()).Return(models.Response{
		Success: true,
		Nonce:   base64.StdEncoding.EncodeToString(respIV),
		Entries: []models.Entry{
			{Login: encryptField(t, respIV, "alice"), Password: encryptField(t, respIV, "ok")},
			{Login: "bm90LWEtYmxvY2s="}, // not block-aligned after decode
		},
	}, nil)

	_, err = c.RetrieveCredentials(ctx, SearchByURL, "https://example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, crypto.ErrDecryption)
}
