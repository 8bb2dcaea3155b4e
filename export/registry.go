package export

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Handle identifies a buffer held by a Registry.
type Handle uuid.UUID

// String returns the canonical uuid form.
func (h Handle) String() string { return uuid.UUID(h).String() }

// ParseHandle parses the canonical uuid form. Malformed input matches
// ErrUnknownHandle.
func ParseHandle(s string) (Handle, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return Handle{}, fmt.Errorf("%w: %q", ErrUnknownHandle, s)
	}
	return Handle(id), nil
}

// Buffer is an encoded record set owned by whoever holds its handle.
type Buffer struct {
	Format Format
	Data   []byte
	Cells  int
}

// Registry tracks transferred buffers. Buffers stay alive until Release;
// the registry never frees them on its own. Safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	buffers map[Handle]Buffer
	bytes   int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{buffers: make(map[Handle]Buffer)}
}

// Transfer encodes records in format f and hands the buffer to the caller
// under a fresh handle. The returned bytes are the caller's copy; changing
// them does not affect what Get serves.
func (r *Registry) Transfer(records []Record, f Format) (Handle, []byte, error) {
	data, err := Encode(records, f)
	if err != nil {
		return Handle{}, nil, err
	}
	h := Handle(uuid.New())

	r.mu.Lock()
	defer r.mu.Unlock()
	r.buffers[h] = Buffer{Format: f, Data: data, Cells: len(records)}
	r.bytes += len(data)
	return h, bytes.Clone(data), nil
}

// Get returns a copy of the buffer held under h.
func (r *Registry) Get(h Handle) (Buffer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	buf, ok := r.buffers[h]
	if !ok {
		return Buffer{}, fmt.Errorf("%w: %s", ErrUnknownHandle, h)
	}
	buf.Data = bytes.Clone(buf.Data)
	return buf, nil
}

// Update decodes the buffer held under h, passes its records to fn and
// stores fn's result in the same format. The registry stays locked while fn
// runs, so concurrent updates of one handle are serialized. When fn fails
// the buffer is left unchanged.
func (r *Registry) Update(h Handle, fn func([]Record) ([]Record, error)) (Buffer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	buf, ok := r.buffers[h]
	if !ok {
		return Buffer{}, fmt.Errorf("%w: %s", ErrUnknownHandle, h)
	}
	records, err := Decode(buf.Data, buf.Format)
	if err != nil {
		return Buffer{}, err
	}
	records, err = fn(records)
	if err != nil {
		return Buffer{}, err
	}
	data, err := Encode(records, buf.Format)
	if err != nil {
		return Buffer{}, err
	}
	r.bytes += len(data) - len(buf.Data)
	next := Buffer{Format: buf.Format, Data: data, Cells: len(records)}
	r.buffers[h] = next
	next.Data = bytes.Clone(data)
	return next, nil
}

// Release reclaims the buffer held under h. Releasing twice returns
// ErrUnknownHandle.
func (r *Registry) Release(h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	buf, ok := r.buffers[h]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownHandle, h)
	}
	delete(r.buffers, h)
	r.bytes -= len(buf.Data)
	return nil
}

// Stats reports the number of outstanding buffers and their total size.
func (r *Registry) Stats() (buffers, bytes int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.buffers), r.bytes
}
