// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package recorder captures request/response pairs for inspection while
// debugging companion exchanges.
//
// Records are keyed by a monotonically increasing sequence number rather
// than a wall-clock timestamp, so two operations completing within the
// clock's resolution can never overwrite each other.
package recorder

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-keepass-http/internal/logger"
	"github.com/MKhiriev/go-keepass-http/models"
)

// Direction tells which side of an exchange a record captured.
type Direction string

const (
	DirectionRequest  Direction = "request"
	DirectionResponse Direction = "response"
)

// Record is one captured protocol message.
type Record struct {
	// Seq is the process-wide monotonic key of the record.
	Seq uint64
	// ID is a unique identifier for cross-referencing in log output.
	ID uuid.UUID
	// At is informational only; ordering is defined by Seq.
	At        time.Time
	Direction Direction

	// Exactly one of Request/Response is set, per Direction.
	Request  *models.Request
	Response *models.Response
}

// DebugRecorder retains a bounded tail of records in memory and mirrors
// each one to the logger at debug level.
type DebugRecorder struct {
	logger *logger.Logger
	limit  int
	seq    atomic.Uint64

	mu      sync.Mutex
	records []Record
}

// NewDebugRecorder constructs a [Recorder] that keeps at most limit
// records in memory. A non-positive limit falls back to 128.
func NewDebugRecorder(limit int, log *logger.Logger) *DebugRecorder {
	if limit <= 0 {
		limit = 128
	}
	return &DebugRecorder{logger: log, limit: limit}
}

// RecordRequest implements [Recorder].
func (r *DebugRecorder) RecordRequest(request models.Request) {
	rec := r.newRecord(DirectionRequest)
	rec.Request = &request

	r.logger.Debug().
		Uint64("seq", rec.Seq).
		Str("record_id", rec.ID.String()).
		Str("request_type", string(request.RequestType)).
		Str("nonce", request.Nonce).
		Msg("recorded request")

	r.append(rec)
}

// RecordResponse implements [Recorder].
func (r *DebugRecorder) RecordResponse(response models.Response) {
	rec := r.newRecord(DirectionResponse)
	rec.Response = &response

	r.logger.Debug().
		Uint64("seq", rec.Seq).
		Str("record_id", rec.ID.String()).
		Bool("success", response.Success).
		Int("entries", len(response.Entries)).
		Msg("recorded response")

	r.append(rec)
}

// Records returns a copy of the retained tail in sequence order.
func (r *DebugRecorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

func (r *DebugRecorder) newRecord(d Direction) Record {
	return Record{
		Seq:       r.seq.Add(1),
		ID:        uuid.New(),
		At:        time.Now(),
		Direction: d,
	}
}

func (r *DebugRecorder) append(rec Record) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, rec)
	if len(r.records) > r.limit {
		r.records = r.records[len(r.records)-r.limit:]
	}
}

// Nop is a [Recorder] that drops everything. Used when the debug flag is
// off.
type Nop struct{}

func (Nop) RecordRequest(models.Request)   {}
func (Nop) RecordResponse(models.Response) {}
