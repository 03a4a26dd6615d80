package batch_test

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AndreyAkinshin/edfdur/internal/batch"
	"github.com/AndreyAkinshin/edfdur/internal/errors"
	"github.com/AndreyAkinshin/edfdur/internal/output"
	"github.com/AndreyAkinshin/edfdur/internal/testing/mocks"
)

// fixture is a temp directory where every created file exists on disk and
// EDF files are registered with a mock decoder.
type fixture struct {
	t       *testing.T
	dir     string
	decoder *mocks.Decoder
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
	w       *output.Writer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &fixture{
		t:       t,
		dir:     t.TempDir(),
		decoder: mocks.NewDecoder(),
		stdout:  stdout,
		stderr:  stderr,
		w:       output.NewWithWriters(stdout, stderr, false),
	}
}

func (f *fixture) file(name, content string) string {
	f.t.Helper()
	path := filepath.Join(f.dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		f.t.Fatal(err)
	}
	return path
}

func (f *fixture) edf(name string, seconds float64) string {
	path := f.file(name, "")
	f.decoder.WithRecording(path, seconds)
	return path
}

func (f *fixture) corrupt(name string) string {
	path := f.file(name, "")
	f.decoder.WithCorrupt(path)
	return path
}

func (f *fixture) list(name string, entries ...string) string {
	return f.file(name, strings.Join(entries, "\n")+"\n")
}

func (f *fixture) run(paths ...string) (batch.Stats, error) {
	return batch.New(batch.Options{Decoder: f.decoder, Writer: f.w}).Run(paths)
}

type listerFunc func(path string) ([]string, error)

func (fn listerFunc) Load(path string) ([]string, error) { return fn(path) }

func TestRun_SingleFile(t *testing.T) {
	f := newFixture(t)
	a := f.edf("a.edf", 120.5)

	stats, err := f.run(a)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stats != (batch.Stats{Attempted: 1, Processed: 1, TotalSeconds: 120.5}) {
		t.Errorf("Stats = %+v", stats)
	}

	want := "beginning argument processing...\n" +
		"       1: " + a + "\n" +
		"   0 (    120.50 secs): " + a + "\n" +
		"ending processing...\n" +
		"\n" +
		"total num files processed successfully was 1 out of 1\n" +
		"total dur of data processed = 120.5000 secs | 2.0083 mins | 0.0335 hrs\n" +
		"avg file dur = 120.5000 secs | 2.0083 mins | 0.0335 hrs\n"
	if got := f.stdout.String(); got != want {
		t.Errorf("stdout =\n%s\nwant\n%s", got, want)
	}
	if f.stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty", f.stderr.String())
	}
	if f.decoder.CloseCount() != 1 {
		t.Errorf("CloseCount() = %d, want 1", f.decoder.CloseCount())
	}
}

func TestRun_ListFile(t *testing.T) {
	f := newFixture(t)
	list := f.list("files.list", f.edf("a.edf", 10), f.edf("b.edf", 20))

	stats, err := f.run(list)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stats.Attempted != 2 || stats.Processed != 2 || stats.TotalSeconds != 30 {
		t.Errorf("Stats = %+v, want 2/2/30", stats)
	}
	avg, ok := stats.Average()
	if !ok || avg != 15 {
		t.Errorf("Average() = %v, %v; want 15, true", avg, ok)
	}
	if !strings.Contains(f.stdout.String(), "avg file dur = 15.0000 secs | 0.2500 mins | 0.0042 hrs\n") {
		t.Errorf("stdout missing average line:\n%s", f.stdout.String())
	}
	if !strings.Contains(f.stdout.String(), "   1 (     20.00 secs): ") {
		t.Errorf("second file should use processed index 1:\n%s", f.stdout.String())
	}
}

func TestRun_CorruptHeader(t *testing.T) {
	f := newFixture(t)
	bad := f.corrupt("bad.edf")

	stats, err := f.run(bad)
	if err != nil {
		t.Fatalf("Run() error = %v, corrupted headers are not fatal", err)
	}
	if stats != (batch.Stats{Attempted: 1}) {
		t.Errorf("Stats = %+v, want 1 attempted and nothing processed", stats)
	}
	if !strings.Contains(f.stdout.String(), "       1: "+bad+"\nError: header corrupted ("+bad+")\n") {
		t.Errorf("error line should follow its progress line:\n%s", f.stdout.String())
	}
	if f.stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty", f.stderr.String())
	}
	if !strings.Contains(f.stdout.String(), "avg file dur = n/a (no files processed)\n") {
		t.Errorf("stdout should report missing average:\n%s", f.stdout.String())
	}
}

func TestRun_CorruptHeaderContinues(t *testing.T) {
	f := newFixture(t)
	a := f.edf("a.edf", 5)
	bad := f.corrupt("bad.edf")
	c := f.edf("c.edf", 7)

	stats, err := f.run(a, bad, c)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stats != (batch.Stats{Attempted: 3, Processed: 2, TotalSeconds: 12}) {
		t.Errorf("Stats = %+v", stats)
	}
	if !strings.Contains(f.stdout.String(), "   1 (      7.00 secs): "+c) {
		t.Errorf("file after corrupt header should use processed index 1:\n%s", f.stdout.String())
	}
	if f.decoder.CloseCount() != 2 {
		t.Errorf("CloseCount() = %d, want 2", f.decoder.CloseCount())
	}
}

func TestRun_ErrorLinesInterleaveWithProgress(t *testing.T) {
	f := newFixture(t)
	a := f.edf("a.edf", 1)
	c := f.corrupt("c.edf")

	if _, err := f.run(a, c); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := "beginning argument processing...\n" +
		"       1: " + a + "\n" +
		"   0 (      1.00 secs): " + a + "\n" +
		"       2: " + c + "\n" +
		"Error: header corrupted (" + c + ")\n" +
		"ending processing...\n" +
		"\n" +
		"total num files processed successfully was 1 out of 2\n" +
		"total dur of data processed = 1.0000 secs | 0.0167 mins | 0.0003 hrs\n" +
		"avg file dur = 1.0000 secs | 0.0167 mins | 0.0003 hrs\n"
	if got := f.stdout.String(); got != want {
		t.Errorf("stdout =\n%s\nwant\n%s", got, want)
	}
	if f.stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty", f.stderr.String())
	}
}

func TestRun_MissingFileIsFatal(t *testing.T) {
	f := newFixture(t)
	a := f.edf("a.edf", 5)
	missing := filepath.Join(f.dir, "missing.edf")
	b := f.edf("b.edf", 5)

	stats, err := f.run(a, missing, b)
	if err == nil {
		t.Fatal("Run() expected error")
	}
	if got := errors.GetExitCode(err); got != errors.ExitSoftwareError {
		t.Errorf("exit code = %d, want %d", got, errors.ExitSoftwareError)
	}
	if !stderrors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist: %v", err)
	}
	if stats.Attempted != 1 {
		t.Errorf("Attempted = %d, want 1", stats.Attempted)
	}
	if strings.Contains(f.stdout.String(), b) {
		t.Errorf("no progress lines expected after the missing file:\n%s", f.stdout.String())
	}
	if strings.Contains(f.stdout.String(), "ending processing") || strings.Contains(f.stdout.String(), "total num files") {
		t.Errorf("no report expected after a fatal error:\n%s", f.stdout.String())
	}
	if !strings.HasSuffix(f.stdout.String(), "Error: file does not exist ("+missing+")\n") {
		t.Errorf("stdout should end with the error line:\n%s", f.stdout.String())
	}
	if f.stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty", f.stderr.String())
	}
}

func TestRun_MissingOnlyFile(t *testing.T) {
	f := newFixture(t)

	nope := filepath.Join(f.dir, "nope.edf")
	_, err := f.run(nope)
	if errors.GetExitCode(err) != errors.ExitSoftwareError {
		t.Fatalf("Run() error = %v, want software error", err)
	}
	want := "beginning argument processing...\nError: file does not exist (" + nope + ")\n"
	if got := f.stdout.String(); got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestRun_MissingListEntryIsFatal(t *testing.T) {
	f := newFixture(t)
	list := f.list("files.list", f.edf("a.edf", 1), "gone.edf", f.edf("b.edf", 2))

	stats, err := f.run(list)
	if errors.GetExitCode(err) != errors.ExitSoftwareError {
		t.Fatalf("Run() error = %v, want software error", err)
	}
	wantLine := "Error: file does not exist (gone.edf) listed in (" + list + ")\n"
	if !strings.HasSuffix(f.stdout.String(), wantLine) {
		t.Errorf("stdout should end with %q:\n%s", wantLine, f.stdout.String())
	}
	if stats.Processed != 1 {
		t.Errorf("Processed = %d, want 1", stats.Processed)
	}
}

func TestRun_ListOpenFailureIsFatal(t *testing.T) {
	f := newFixture(t)
	list := f.list("files.list", "a.edf")
	lister := listerFunc(func(string) ([]string, error) {
		return nil, os.ErrPermission
	})

	_, err := batch.New(batch.Options{Decoder: f.decoder, Lister: lister, Writer: f.w}).Run([]string{list})
	if err == nil {
		t.Fatal("Run() expected error")
	}
	var ee *errors.EdfdurError
	if !stderrors.As(err, &ee) || ee.Kind != errors.KindList {
		t.Fatalf("Run() error = %#v, want list error", err)
	}
	if ee.ExitCode() != errors.ExitSoftwareError {
		t.Errorf("ExitCode() = %d, want %d", ee.ExitCode(), errors.ExitSoftwareError)
	}
	if !strings.HasSuffix(f.stdout.String(), "Error: error opening ("+list+")\n") {
		t.Errorf("stdout = %q", f.stdout.String())
	}
}

func TestRun_NestedListNotExpanded(t *testing.T) {
	f := newFixture(t)
	inner := f.list("inner.list", f.edf("deep.edf", 100))
	outer := f.list("outer.list", f.edf("a.edf", 1), inner)

	var loaded []string
	lister := listerFunc(func(path string) ([]string, error) {
		loaded = append(loaded, path)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return strings.Fields(string(data)), nil
	})

	stats, err := batch.New(batch.Options{Decoder: f.decoder, Lister: lister, Writer: f.w}).Run([]string{outer})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stats != (batch.Stats{Attempted: 1, Processed: 1, TotalSeconds: 1}) {
		t.Errorf("Stats = %+v, nested list must not be expanded", stats)
	}
	if len(loaded) != 1 || loaded[0] != outer {
		t.Errorf("lists loaded = %v, want only %s", loaded, outer)
	}
}

func TestRun_VisitOrder(t *testing.T) {
	f := newFixture(t)
	a := f.edf("a.edf", 1)
	b := f.edf("b.edf", 2)
	c := f.edf("c.edf", 3)
	d := f.edf("d.edf", 4)
	list := f.list("files.list", b, c)

	stats, err := f.run(a, list, d)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{a, b, c, d}
	got := f.decoder.OpenOrder()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("OpenOrder() = %v, want %v", got, want)
	}
	for i, p := range want {
		line := strings.Repeat(" ", 2) + strings.Repeat(" ", 5) + string(rune('1'+i)) + ": " + p
		if !strings.Contains(f.stdout.String(), line+"\n") {
			t.Errorf("stdout missing progress line %q", line)
		}
	}
	if stats.TotalSeconds != 10 {
		t.Errorf("TotalSeconds = %v, want 10", stats.TotalSeconds)
	}
}

func TestRun_EmptyInput(t *testing.T) {
	f := newFixture(t)

	stats, err := f.run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stats != (batch.Stats{}) {
		t.Errorf("Stats = %+v, want zero", stats)
	}
	want := "beginning argument processing...\n" +
		"ending processing...\n" +
		"\n" +
		"total num files processed successfully was 0 out of 0\n" +
		"total dur of data processed = 0.0000 secs | 0.0000 mins | 0.0000 hrs\n" +
		"avg file dur = n/a (no files processed)\n"
	if got := f.stdout.String(); got != want {
		t.Errorf("stdout =\n%s\nwant\n%s", got, want)
	}
}

func TestRun_ExpandsEnvironment(t *testing.T) {
	f := newFixture(t)
	a := f.edf("a.edf", 3)
	t.Setenv("EDFDUR_BATCH_DIR", f.dir)

	if _, err := f.run("$EDFDUR_BATCH_DIR/a.edf"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := f.decoder.OpenOrder(); len(got) != 1 || got[0] != a {
		t.Errorf("OpenOrder() = %v, want [%s]", got, a)
	}
	if !strings.Contains(f.stdout.String(), "       1: $EDFDUR_BATCH_DIR/a.edf\n") {
		t.Errorf("progress line should show the path as given:\n%s", f.stdout.String())
	}
}

func TestRun_CloseErrorIsNotFatal(t *testing.T) {
	f := newFixture(t)
	f.decoder.WithCloseError(stderrors.New("close failed"))
	f.w.SetDebugLevel(output.DebugBrief)
	a := f.edf("a.edf", 2)

	stats, err := f.run(a)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stats.Processed != 1 {
		t.Errorf("Processed = %d, want 1", stats.Processed)
	}
	if !strings.Contains(f.stdout.String(), "debug: closing "+a+": close failed") {
		t.Errorf("stdout missing close diagnostic:\n%s", f.stdout.String())
	}
}

func TestRun_DebugLevel(t *testing.T) {
	tests := []struct {
		name  string
		level output.DebugLevel
		want  bool
	}{
		{"none", output.DebugNone, false},
		{"brief", output.DebugBrief, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.w.SetDebugLevel(tt.level)
			list := f.list("files.list", f.edf("a.edf", 1))

			if _, err := f.run(list); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			got := strings.Contains(f.stdout.String(), "debug: opening list ("+list+")")
			if got != tt.want {
				t.Errorf("debug line present = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRun_Idempotent(t *testing.T) {
	f := newFixture(t)
	list := f.list("files.list", f.edf("a.edf", 1.25), f.corrupt("b.edf"), f.edf("c.edf", 3.5))

	first, err := f.run(list)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	second, err := f.run(list)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if first != second {
		t.Errorf("runs differ: %+v vs %+v", first, second)
	}
	if first.Processed > first.Attempted {
		t.Errorf("Processed %d > Attempted %d", first.Processed, first.Attempted)
	}
	if first.TotalSeconds != 1.25+3.5 {
		t.Errorf("TotalSeconds = %v, want %v", first.TotalSeconds, 1.25+3.5)
	}
}
