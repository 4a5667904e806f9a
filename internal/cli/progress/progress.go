package progress

import (
	"fmt"
	"time"
)

// Status represents the state of a tracked action
type Status int

const (
	StatusPending Status = iota
	StatusRunning
	StatusSuccess
	StatusFailed
	StatusSkipped
)

// Item represents a single tracked action
type Item struct {
	Name      string
	Status    Status
	Detail    string
	Duration  time.Duration
	startTime time.Time
}

var spinnerFrames = []string{"✦", "✸", "✹", "❋", "✹", "✸"}

// FormatDuration renders a duration the way the tracker displays it,
// seconds granularity.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := d / time.Minute
	s := (d % time.Minute) / time.Second

	if m > 0 {
		return fmt.Sprintf("%dm %02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
