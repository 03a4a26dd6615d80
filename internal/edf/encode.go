package edf

import (
	"bytes"
	"fmt"
	"strconv"
)

// MarshalBinary encodes the general and signal headers.
// A zero HeaderBytes is filled in from the number of signals.
func (h *Header) MarshalBinary() ([]byte, error) {
	ns := len(h.Signals)
	headerBytes := h.HeaderBytes
	if headerBytes == 0 {
		headerBytes = HeaderSize + ns*SignalHeaderSize
	}

	fw := &fieldWriter{}
	fw.str(Version, 8)
	fw.str(h.PatientID, 80)
	fw.str(h.RecordingID, 80)
	if h.StartTime.IsZero() {
		fw.str("01.01.85", 8)
		fw.str("00.00.00", 8)
	} else {
		fw.str(h.StartTime.Format("02.01.06"), 8)
		fw.str(h.StartTime.Format("15.04.05"), 8)
	}
	fw.str(strconv.Itoa(headerBytes), 8)
	fw.str(h.Reserved, 44)
	fw.str(strconv.Itoa(h.NumRecords), 8)
	fw.str(strconv.FormatFloat(h.RecordDuration, 'g', -1, 64), 8)
	fw.str(strconv.Itoa(ns), 4)

	for _, s := range h.Signals {
		fw.str(s.Label, 16)
	}
	for _, s := range h.Signals {
		fw.str(s.Transducer, 80)
	}
	for _, s := range h.Signals {
		fw.str(s.PhysicalDimension, 8)
	}
	for _, s := range h.Signals {
		fw.str(strconv.FormatFloat(s.PhysicalMin, 'g', -1, 64), 8)
	}
	for _, s := range h.Signals {
		fw.str(strconv.FormatFloat(s.PhysicalMax, 'g', -1, 64), 8)
	}
	for _, s := range h.Signals {
		fw.str(strconv.Itoa(s.DigitalMin), 8)
	}
	for _, s := range h.Signals {
		fw.str(strconv.Itoa(s.DigitalMax), 8)
	}
	for _, s := range h.Signals {
		fw.str(s.Prefilter, 80)
	}
	for _, s := range h.Signals {
		fw.str(strconv.Itoa(s.SamplesPerRecord), 8)
	}
	for range h.Signals {
		fw.str("", 32)
	}

	if fw.err != nil {
		return nil, fw.err
	}
	return fw.buf.Bytes(), nil
}

type fieldWriter struct {
	buf bytes.Buffer
	err error
}

func (w *fieldWriter) str(s string, n int) {
	if len(s) > n {
		if w.err == nil {
			w.err = fmt.Errorf("field %q does not fit in %d bytes", s, n)
		}
		s = s[:n]
	}
	w.buf.WriteString(s)
	w.buf.Write(bytes.Repeat([]byte{' '}, n-len(s)))
}
