// Package mocks provides shared test doubles for edfdur packages.
package mocks

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/AndreyAkinshin/edfdur/internal/batch"
)

// ErrCorruptHeader is returned by Open for paths registered with WithCorrupt.
var ErrCorruptHeader = errors.New("mock: corrupted header")

// Decoder implements batch.Decoder for testing.
// Use NewDecoder() to create instances with a fluent builder API.
// Paths not registered with WithRecording or WithCorrupt are not EDF files.
type Decoder struct {
	durations map[string]float64
	corrupt   map[string]bool
	closeErr  error

	// Tracking (thread-safe)
	openCount  int32
	closeCount int32
	mu         sync.Mutex
	openOrder  []string
}

// NewDecoder creates a decoder that knows no recordings.
func NewDecoder() *Decoder {
	return &Decoder{
		durations: make(map[string]float64),
		corrupt:   make(map[string]bool),
	}
}

// WithRecording registers an EDF file at path with the given duration in seconds.
func (d *Decoder) WithRecording(path string, seconds float64) *Decoder {
	d.durations[path] = seconds
	return d
}

// WithCorrupt registers an EDF file at path whose header fails to decode.
func (d *Decoder) WithCorrupt(path string) *Decoder {
	d.corrupt[path] = true
	return d
}

// WithCloseError makes every Recording.Close return err.
func (d *Decoder) WithCloseError(err error) *Decoder {
	d.closeErr = err
	return d
}

// batch.Decoder interface implementation

func (d *Decoder) IsEDF(path string) bool {
	if d.corrupt[path] {
		return true
	}
	_, ok := d.durations[path]
	return ok
}

func (d *Decoder) Open(path string) (batch.Recording, error) {
	atomic.AddInt32(&d.openCount, 1)
	d.mu.Lock()
	d.openOrder = append(d.openOrder, path)
	d.mu.Unlock()

	if d.corrupt[path] {
		return nil, ErrCorruptHeader
	}
	seconds, ok := d.durations[path]
	if !ok {
		return nil, ErrCorruptHeader
	}
	return &Recording{decoder: d, seconds: seconds}, nil
}

// Test inspection methods

// OpenCount returns the number of times Open was called.
func (d *Decoder) OpenCount() int32 {
	return atomic.LoadInt32(&d.openCount)
}

// CloseCount returns the number of recordings closed.
func (d *Decoder) CloseCount() int32 {
	return atomic.LoadInt32(&d.closeCount)
}

// OpenOrder returns the paths passed to Open, in call order.
func (d *Decoder) OpenOrder() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	result := make([]string, len(d.openOrder))
	copy(result, d.openOrder)
	return result
}

// Recording implements batch.Recording for testing.
type Recording struct {
	decoder *Decoder
	seconds float64
	closed  bool
}

func (r *Recording) Duration() float64 { return r.seconds }

func (r *Recording) Close() error {
	if !r.closed {
		r.closed = true
		atomic.AddInt32(&r.decoder.closeCount, 1)
	}
	return r.decoder.closeErr
}
