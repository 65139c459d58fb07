// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter implements the HTTP transport against the companion
// process. The transport itself is plaintext HTTP: every secret that
// crosses it is already encrypted field-by-field by the protocol core, so
// the adapter never sees a credential in the clear.
package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-keepass-http/internal/logger"
	"github.com/MKhiriev/go-keepass-http/models"
)

// HTTPConfig holds the settings of the companion HTTP endpoint.
type HTTPConfig struct {
	// Address is the companion endpoint, "host:port" or a full URL.
	Address string
	// RequestTimeout bounds one round trip. Zero means no timeout: a
	// hung companion hangs the caller.
	RequestTimeout time.Duration
}

type httpCompanionAdapter struct {
	client *HTTPClient
	logger *logger.Logger
}

// NewHTTPCompanionAdapter constructs an HTTP implementation of
// [CompanionAdapter]. It normalises and validates the base URL from
// cfg.Address and configures the underlying HTTP client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.Address is empty or cannot be parsed as a valid
// URL.
func NewHTTPCompanionAdapter(cfg HTTPConfig, log *logger.Logger) (CompanionAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	client := NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpCompanionAdapter{client: client, logger: log}, nil
}

// Post implements [CompanionAdapter]. It POSTs request as JSON to the
// companion's root endpoint and decodes the JSON response record. Network
// errors and non-2xx statuses surface wrapped in [ErrTransport].
func (h *httpCompanionAdapter) Post(ctx context.Context, request models.Request) (models.Response, error) {
	var response models.Response

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&response).
		Post("/")
	if err != nil {
		return models.Response{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Response{}, err
	}

	h.logger.Debug().
		Str("request_type", string(request.RequestType)).
		Bool("success", response.Success).
		Msg("companion exchange completed")

	return response, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
