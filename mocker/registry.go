package mocker

import (
	"sync"
	"unicode/utf8"
)

type (
	// CallRecord is one observed request. Body is nil when the request
	// carried no body, so it serializes as JSON null rather than "".
	CallRecord struct {
		Method string  `json:"method"`
		Path   string  `json:"path"`
		Body   *string `json:"body"`
	}

	// Registry is the append-only log of requests served from the mock
	// table, read and cleared through the introspection endpoint. Add,
	// List and Clear are safe to call from concurrent handlers.
	Registry struct {
		mu      sync.Mutex
		records []CallRecord
	}
)

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{records: []CallRecord{}}
}

// Add appends one record. The raw body must be valid UTF-8 text; anything
// else is rejected so the caller can fail the request instead of logging a
// garbled record.
func (r *Registry) Add(method, path string, rawBody []byte) error {
	var body *string
	if len(rawBody) > 0 {
		if !utf8.Valid(rawBody) {
			return bodyDecodeError(path)
		}

		decoded := string(rawBody)
		body = &decoded
	}

	r.mu.Lock()
	r.records = append(r.records, CallRecord{Method: method, Path: path, Body: body})
	r.mu.Unlock()

	return nil
}

// List returns a snapshot in arrival order. Records appended after the
// snapshot is taken are not reflected in it.
func (r *Registry) List() []CallRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]CallRecord, len(r.records))
	copy(snapshot, r.records)

	return snapshot
}

// Clear drops every record. Idempotent.
func (r *Registry) Clear() {
	r.mu.Lock()
	r.records = []CallRecord{}
	r.mu.Unlock()
}
