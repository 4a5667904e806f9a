package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"rops/internal/core/domain"

	"golang.org/x/term"
)

// Tracker renders the live state of a plan's actions. Actions start and
// finish in any order; the tracker prints one completion line per action and
// animates a spinner while work is in flight (TTY only). It implements the
// orchestrator's observer interface, which guarantees single-threaded event
// delivery; the mutex only protects against the spinner goroutine.
type Tracker struct {
	mu           sync.Mutex
	wg           sync.WaitGroup
	items        []Item
	total        int
	completed    int
	inProgress   int
	isTTY        bool
	useColor     bool
	caps         terminalCapabilities
	stopChan     chan struct{}
	stopOnce     sync.Once
	spinnerFrame int
	startTime    time.Time
	writer       io.Writer
}

// NewTracker creates a tracker for a list of action names.
func NewTracker(names []string) *Tracker {
	_, noColor := os.LookupEnv("NO_COLOR")
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	caps := detectCapabilities()

	return newTracker(names, os.Stdout, isTTY, !noColor && isTTY && caps.supportsANSI, caps)
}

// NewTrackerWithWriter creates a tracker with an injectable writer and
// explicit terminal settings, bypassing auto-detection. Intended for testing.
func NewTrackerWithWriter(names []string, writer io.Writer, isTTY bool, useColor bool, caps terminalCapabilities) *Tracker {
	return newTracker(names, writer, isTTY, useColor, caps)
}

func newTracker(names []string, writer io.Writer, isTTY bool, useColor bool, caps terminalCapabilities) *Tracker {
	items := make([]Item, len(names))
	for i, name := range names {
		items[i] = Item{Name: name, Status: StatusPending}
	}

	return &Tracker{
		items:    items,
		total:    len(names),
		isTTY:    isTTY,
		useColor: useColor,
		caps:     caps,
		stopChan: make(chan struct{}),
		writer:   writer,
	}
}

// Start begins tracking and starts the spinner animation if in TTY mode
func (t *Tracker) Start() {
	t.startTime = time.Now()
	if t.isTTY {
		t.wg.Add(1)
		go t.animate()
	}
}

// ActionStarted marks an action as running.
func (t *Tracker) ActionStarted(index int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.items[index].Status = StatusRunning
	t.items[index].startTime = time.Now()
	t.inProgress++

	if !t.isTTY {
		ts := time.Now().Format("15:04:05")
		fmt.Fprintf(t.writer, "[%s] [%d/%d] %s (%d in progress)...\n",
			ts, t.completed, t.total, t.items[index].Name, t.inProgress)
	}
}

// ActionCompleted records an action's final state and prints its line.
func (t *Tracker) ActionCompleted(index int, result domain.OperationResult) {
	t.mu.Lock()
	defer t.mu.Unlock()

	item := &t.items[index]
	switch result.Status {
	case domain.StatusSuccess:
		item.Status = StatusSuccess
		item.Duration = time.Since(item.startTime)
		t.inProgress--
	case domain.StatusFailed:
		item.Status = StatusFailed
		item.Duration = time.Since(item.startTime)
		t.inProgress--
	case domain.StatusSkipped:
		item.Status = StatusSkipped
	}
	item.Detail = result.Detail
	t.completed++

	t.printCompletion(index)
}

func (t *Tracker) printCompletion(index int) {
	item := t.items[index]

	var sym, suffix string
	switch item.Status {
	case StatusSuccess:
		sym = t.colored("\033[32m", "+")
		suffix = fmt.Sprintf("(%s)", FormatDuration(item.Duration))
	case StatusFailed:
		sym = t.colored("\033[31m", "x")
		suffix = fmt.Sprintf("(%s) FAILED", FormatDuration(item.Duration))
	case StatusSkipped:
		sym = t.colored("\033[33m", "-")
		suffix = "SKIPPED"
		if item.Detail != "" {
			suffix = fmt.Sprintf("SKIPPED: %s", item.Detail)
		}
	}

	counter := fmt.Sprintf("[%d/%d]", t.completed, t.total)

	if t.isTTY {
		fmt.Fprint(t.writer, clearLine(t.caps))
	} else {
		counter = fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), counter)
	}

	if t.useColor {
		counter = fmt.Sprintf("\033[2m%s\033[0m", counter)
		suffix = fmt.Sprintf("\033[2m%s\033[0m", suffix)
	}

	fmt.Fprintf(t.writer, "  %s %s  %s  %s\n", sym, counter, item.Name, suffix)
}

func (t *Tracker) colored(color, sym string) string {
	if !t.useColor {
		return sym
	}
	return color + sym + "\033[0m"
}

// Stop ends the progress tracking
func (t *Tracker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopChan)
	})
	t.wg.Wait()

	if t.isTTY {
		t.mu.Lock()
		if t.useColor {
			fmt.Fprint(t.writer, "\033[0m")
		}
		fmt.Fprint(t.writer, clearLine(t.caps))
		t.mu.Unlock()
	}
}

// Summary returns a one-line digest of the run
func (t *Tracker) Summary() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	counts := map[Status]int{}
	for _, item := range t.items {
		counts[item.Status]++
	}

	var parts []string
	if n := counts[StatusSuccess]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d succeeded", n))
	}
	if n := counts[StatusFailed]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", n))
	}
	if n := counts[StatusSkipped]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", n))
	}
	if len(parts) == 0 {
		parts = append(parts, "nothing to do")
	}

	return fmt.Sprintf("%s in %s", strings.Join(parts, ", "), FormatDuration(time.Since(t.startTime)))
}

func (t *Tracker) animate() {
	defer t.wg.Done()
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-t.stopChan:
			return
		case <-ticker.C:
			t.mu.Lock()
			if t.inProgress > 0 {
				t.spinnerFrame++
				spinner := spinnerFrames[t.spinnerFrame%len(spinnerFrames)]
				counter := fmt.Sprintf("[%d/%d]", t.completed, t.total)
				status := fmt.Sprintf("%d in progress...", t.inProgress)
				elapsed := FormatDuration(time.Since(t.startTime))

				var line string
				if t.useColor {
					line = fmt.Sprintf("  \033[1m%s %s  %s\033[0m  \033[2m%s\033[0m", spinner, counter, status, elapsed)
				} else {
					line = fmt.Sprintf("  %s %s  %s  %s", spinner, counter, status, elapsed)
				}

				line = truncateToWidth(line, t.caps.terminalWidth)
				fmt.Fprint(t.writer, clearLine(t.caps)+line)
			}
			t.mu.Unlock()
		}
	}
}
