package batch

import "github.com/AndreyAkinshin/edfdur/internal/output"

// Stats holds the batch counters.
// Processed never exceeds Attempted, and TotalSeconds only includes
// processed recordings.
type Stats struct {
	Attempted    int     // files with an EDF signature
	Processed    int     // files whose header was decoded
	TotalSeconds float64 // sum of processed durations
}

// TotalMinutes returns the total duration in minutes.
func (s Stats) TotalMinutes() float64 {
	return s.TotalSeconds / 60
}

// TotalHours returns the total duration in hours.
func (s Stats) TotalHours() float64 {
	return s.TotalSeconds / 3600
}

// Average returns the mean duration in seconds. ok is false when nothing
// was processed.
func (s Stats) Average() (seconds float64, ok bool) {
	if s.Processed == 0 {
		return 0, false
	}
	return s.TotalSeconds / float64(s.Processed), true
}

// WriteReport prints the summary lines.
func (s Stats) WriteReport(w *output.Writer) {
	w.Println("total num files processed successfully was %d out of %d", s.Processed, s.Attempted)
	w.Println("total dur of data processed = %0.4f secs | %0.4f mins | %0.4f hrs",
		s.TotalSeconds, s.TotalMinutes(), s.TotalHours())

	avg, ok := s.Average()
	if !ok {
		w.Println("avg file dur = n/a (no files processed)")
		return
	}
	w.Println("avg file dur = %0.4f secs | %0.4f mins | %0.4f hrs", avg, avg/60, avg/3600)
}
