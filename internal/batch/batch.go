// Package batch walks EDF files and list files and totals their durations.
package batch

import (
	"os"

	"github.com/AndreyAkinshin/edfdur/internal/errors"
	"github.com/AndreyAkinshin/edfdur/internal/filelist"
	"github.com/AndreyAkinshin/edfdur/internal/output"
)

// Decoder classifies files and opens EDF recordings.
type Decoder interface {
	// IsEDF reports whether path carries the EDF signature.
	IsEDF(path string) bool
	// Open decodes the header of the recording at path.
	Open(path string) (Recording, error)
}

// Recording is an open EDF header. It is owned by a single iteration and
// closed before the next file is visited.
type Recording interface {
	Duration() float64
	Close() error
}

// Lister resolves a list file into the paths it names.
type Lister interface {
	Load(path string) ([]string, error)
}

// Options configures an Aggregator. Nil fields fall back to the EDF decoder,
// the default list loader, filelist.Expand and a stdout writer.
type Options struct {
	Decoder Decoder
	Lister  Lister
	Expand  func(string) string
	Writer  *output.Writer
}

// Aggregator visits files in argument order and accumulates Stats.
type Aggregator struct {
	decoder Decoder
	lister  Lister
	expand  func(string) string
	w       *output.Writer
	stats   Stats
}

// New creates an Aggregator.
func New(opts Options) *Aggregator {
	a := &Aggregator{
		decoder: opts.Decoder,
		lister:  opts.Lister,
		expand:  opts.Expand,
		w:       opts.Writer,
	}
	if a.decoder == nil {
		a.decoder = EDFDecoder{}
	}
	if a.lister == nil {
		a.lister = filelist.Loader{}
	}
	if a.expand == nil {
		a.expand = filelist.Expand
	}
	if a.w == nil {
		a.w = output.New()
	}
	return a
}

// Run processes every path and prints the report.
//
// A path that does not exist, or a list file that cannot be read, stops the
// run: the error is printed and returned with the counts reached so far, and
// no report is written. A recording whose header cannot be decoded is
// reported and skipped.
func (a *Aggregator) Run(paths []string) (Stats, error) {
	a.w.Println("beginning argument processing...")

	for _, p := range paths {
		if err := a.visitArg(p); err != nil {
			return a.stats, err
		}
	}

	a.w.Println("ending processing...")
	a.w.Println("")
	a.stats.WriteReport(a.w)
	return a.stats, nil
}

// fail prints err in line with the progress output. It returns err when the
// error stops the batch and nil when processing continues.
func (a *Aggregator) fail(err *errors.EdfdurError) error {
	a.w.FileError(err)
	if err.Fatal() {
		return err
	}
	return nil
}

func (a *Aggregator) visitArg(name string) error {
	path := a.expand(name)
	if _, err := os.Stat(path); err != nil {
		return a.fail(errors.NotFound(name, err))
	}

	if a.decoder.IsEDF(path) {
		return a.visitEDF(name, path)
	}

	a.w.Debug(output.DebugBrief, "opening list (%s)", name)
	entries, err := a.lister.Load(path)
	if err != nil {
		return a.fail(errors.ListOpen(name, err))
	}

	for _, entry := range entries {
		entryPath := a.expand(entry)
		if _, err := os.Stat(entryPath); err != nil {
			return a.fail(errors.NotFoundInList(entry, name, err))
		}
		// Lists are expanded one level only.
		if !a.decoder.IsEDF(entryPath) {
			a.w.Debug(output.DebugBrief, "skipping %s: not an EDF file", entry)
			continue
		}
		if err := a.visitEDF(entry, entryPath); err != nil {
			return err
		}
	}
	return nil
}

func (a *Aggregator) visitEDF(name, path string) error {
	a.stats.Attempted++
	a.w.Println("  %6d: %s", a.stats.Attempted, name)

	rec, err := a.decoder.Open(path)
	if err != nil {
		ferr := a.fail(errors.Corrupt(name, err))
		a.w.Debug(output.DebugDetailed, "%s: %v", name, err)
		return ferr
	}
	defer func() {
		if err := rec.Close(); err != nil {
			a.w.Debug(output.DebugBrief, "closing %s: %v", name, err)
		}
	}()

	dur := rec.Duration()
	a.w.Println("   %1d (%10.2f secs): %s", a.stats.Processed, dur, name)
	a.describe(rec)

	a.stats.TotalSeconds += dur
	a.stats.Processed++
	return nil
}
