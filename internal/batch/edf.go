package batch

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/AndreyAkinshin/edfdur/internal/edf"
	"github.com/AndreyAkinshin/edfdur/internal/output"
)

// EDFDecoder reads recordings from disk with the edf package.
type EDFDecoder struct{}

// IsEDF implements Decoder.
func (EDFDecoder) IsEDF(path string) bool {
	return edf.IsEDF(path)
}

// Open implements Decoder.
func (EDFDecoder) Open(path string) (Recording, error) {
	f, err := edf.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// describe prints header details for recordings decoded from disk.
func (a *Aggregator) describe(rec Recording) {
	f, ok := rec.(*edf.File)
	if !ok || a.w.DebugLevel() < output.DebugDetailed {
		return
	}

	start := "unknown start"
	if !f.StartTime.IsZero() {
		start = f.StartTime.Format(time.DateTime)
	}
	kind := "EDF"
	if f.IsPlus() {
		kind = "EDF+"
	}
	a.w.Debug(output.DebugDetailed, "%s: %s, %s, %s records x %g secs, %d signals, %s",
		f.Path(), kind, humanize.Bytes(uint64(f.Size())), humanize.Comma(int64(f.NumRecords)),
		f.RecordDuration, f.NumSignals(), start)

	for i, s := range f.Signals {
		a.w.Debug(output.DebugFull, "  signal %d: %q, %d samples/record, %s",
			i, s.Label, s.SamplesPerRecord, s.PhysicalDimension)
	}
}
