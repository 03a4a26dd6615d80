// Package edf decodes the fixed-size header of European Data Format files.
//
// Only the header is read: the general 256-byte block and one 256-byte
// block per signal. Data records are never loaded.
package edf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// HeaderSize is the size of the general header block.
	HeaderSize = 256
	// SignalHeaderSize is the size of the header block for one signal.
	SignalHeaderSize = 256
	// Version is the version field every EDF and EDF+ file starts with.
	Version = "0       "
)

var (
	// ErrNotEDF is returned when the version field does not match.
	ErrNotEDF = errors.New("not an EDF file")
	// ErrCorrupt is returned when a header field cannot be decoded.
	ErrCorrupt = errors.New("corrupted EDF header")
)

// Signal describes one channel.
type Signal struct {
	Label             string
	Transducer        string
	PhysicalDimension string
	PhysicalMin       float64
	PhysicalMax       float64
	DigitalMin        int
	DigitalMax        int
	Prefilter         string
	SamplesPerRecord  int
}

// Header is the decoded header of an EDF file.
type Header struct {
	PatientID      string
	RecordingID    string
	StartTime      time.Time // zero when the start date or time is malformed
	HeaderBytes    int
	Reserved       string
	NumRecords     int
	RecordDuration float64 // seconds
	Signals        []Signal
}

// Duration returns the recording length in seconds.
func (h *Header) Duration() float64 {
	return float64(h.NumRecords) * h.RecordDuration
}

// IsPlus reports whether the file declares itself EDF+.
func (h *Header) IsPlus() bool {
	return strings.HasPrefix(h.Reserved, "EDF+")
}

// NumSignals returns the number of channels.
func (h *Header) NumSignals() int {
	return len(h.Signals)
}

// ReadHeader decodes the general and signal headers from r.
func ReadHeader(r io.Reader) (*Header, error) {
	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		if bytes.HasPrefix(buf, []byte(Version)) {
			return nil, fmt.Errorf("%w: short general header: %v", ErrCorrupt, err)
		}
		return nil, ErrNotEDF
	}
	if string(buf[:len(Version)]) != Version {
		return nil, ErrNotEDF
	}

	fr := &fieldReader{buf: buf, off: len(Version)}
	h := &Header{}
	h.PatientID = fr.str(80)
	h.RecordingID = fr.str(80)
	startDate := fr.str(8)
	startTime := fr.str(8)
	h.HeaderBytes = fr.int("header bytes", 8)
	h.Reserved = fr.str(44)
	h.NumRecords = fr.int("number of data records", 8)
	h.RecordDuration = fr.float("data record duration", 8)
	ns := fr.int("number of signals", 4)
	if fr.err != nil {
		return nil, fr.err
	}
	h.StartTime = parseStart(startDate, startTime)

	switch {
	case ns <= 0:
		return nil, fmt.Errorf("%w: number of signals is %d", ErrCorrupt, ns)
	case h.HeaderBytes != HeaderSize+ns*SignalHeaderSize:
		return nil, fmt.Errorf("%w: header bytes is %d, want %d for %d signals",
			ErrCorrupt, h.HeaderBytes, HeaderSize+ns*SignalHeaderSize, ns)
	case h.NumRecords < 0:
		return nil, fmt.Errorf("%w: number of data records is %d", ErrCorrupt, h.NumRecords)
	case h.RecordDuration < 0:
		return nil, fmt.Errorf("%w: data record duration is %g", ErrCorrupt, h.RecordDuration)
	}

	sbuf := make([]byte, ns*SignalHeaderSize)
	if _, err := io.ReadFull(r, sbuf); err != nil {
		return nil, fmt.Errorf("%w: short signal header: %v", ErrCorrupt, err)
	}
	signals, err := readSignals(sbuf, ns)
	if err != nil {
		return nil, err
	}
	h.Signals = signals
	return h, nil
}

// readSignals decodes the signal block, which stores each field for all
// signals before moving to the next field.
func readSignals(buf []byte, ns int) ([]Signal, error) {
	signals := make([]Signal, ns)
	fr := &fieldReader{buf: buf}
	for i := range signals {
		signals[i].Label = fr.str(16)
	}
	for i := range signals {
		signals[i].Transducer = fr.str(80)
	}
	for i := range signals {
		signals[i].PhysicalDimension = fr.str(8)
	}
	for i := range signals {
		signals[i].PhysicalMin = fr.float("physical minimum", 8)
	}
	for i := range signals {
		signals[i].PhysicalMax = fr.float("physical maximum", 8)
	}
	for i := range signals {
		signals[i].DigitalMin = fr.int("digital minimum", 8)
	}
	for i := range signals {
		signals[i].DigitalMax = fr.int("digital maximum", 8)
	}
	for i := range signals {
		signals[i].Prefilter = fr.str(80)
	}
	for i := range signals {
		signals[i].SamplesPerRecord = fr.int("samples per record", 8)
	}
	if fr.err != nil {
		return nil, fr.err
	}
	return signals, nil
}

// fieldReader walks fixed-width ASCII fields. The first decode error sticks.
type fieldReader struct {
	buf []byte
	off int
	err error
}

func (r *fieldReader) str(n int) string {
	s := strings.TrimSpace(string(r.buf[r.off : r.off+n]))
	r.off += n
	return s
}

func (r *fieldReader) int(name string, n int) int {
	s := r.str(n)
	if r.err != nil {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		r.err = fmt.Errorf("%w: %s %q is not an integer", ErrCorrupt, name, s)
	}
	return v
}

func (r *fieldReader) float(name string, n int) float64 {
	s := r.str(n)
	if r.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		r.err = fmt.Errorf("%w: %s %q is not a number", ErrCorrupt, name, s)
		return 0
	}
	return v
}

// parseStart combines dd.mm.yy and hh.mm.ss. Years 85-99 are 19xx.
func parseStart(date, clock string) time.Time {
	t, err := time.Parse("02.01.06 15.04.05", date+" "+clock)
	if err != nil {
		return time.Time{}
	}
	year := 2000 + t.Year()%100
	if t.Year()%100 >= 85 {
		year = 1900 + t.Year()%100
	}
	return time.Date(year, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}
