package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"rops/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCaps() terminalCapabilities {
	return terminalCapabilities{supportsANSI: true, terminalWidth: 80}
}

func TestTracker_NonTTYPrintsTimestampedLines(t *testing.T) {
	var buf bytes.Buffer
	sut := NewTrackerWithWriter([]string{"build app", "push app"}, &buf, false, false, testCaps())
	sut.Start()

	sut.ActionStarted(0)
	sut.ActionCompleted(0, domain.OperationResult{TargetID: "build app", Status: domain.StatusSuccess})
	sut.ActionStarted(1)
	sut.ActionCompleted(1, domain.OperationResult{TargetID: "push app", Status: domain.StatusFailed, Detail: "denied"})
	sut.Stop()

	out := buf.String()
	assert.Contains(t, out, "build app")
	assert.Contains(t, out, "[1/2]")
	assert.Contains(t, out, "[2/2]")
	assert.Contains(t, out, "FAILED")
	assert.NotContains(t, out, "\033[", "non-color mode must not emit ANSI sequences")
}

func TestTracker_SkippedActionsAreReported(t *testing.T) {
	var buf bytes.Buffer
	sut := NewTrackerWithWriter([]string{"deploy app-services"}, &buf, false, false, testCaps())
	sut.Start()

	sut.ActionCompleted(0, domain.OperationResult{
		TargetID: "deploy app-services",
		Status:   domain.StatusSkipped,
		Detail:   `dependency "push app" did not succeed`,
	})
	sut.Stop()

	out := buf.String()
	assert.Contains(t, out, "SKIPPED")
	assert.Contains(t, out, "push app")
}

func TestTracker_Summary(t *testing.T) {
	var buf bytes.Buffer
	sut := NewTrackerWithWriter([]string{"a", "b", "c"}, &buf, false, false, testCaps())
	sut.Start()

	sut.ActionStarted(0)
	sut.ActionCompleted(0, domain.OperationResult{TargetID: "a", Status: domain.StatusSuccess})
	sut.ActionStarted(1)
	sut.ActionCompleted(1, domain.OperationResult{TargetID: "b", Status: domain.StatusFailed, Detail: "boom"})
	sut.ActionCompleted(2, domain.OperationResult{TargetID: "c", Status: domain.StatusSkipped})
	sut.Stop()

	summary := sut.Summary()
	assert.Contains(t, summary, "1 succeeded")
	assert.Contains(t, summary, "1 failed")
	assert.Contains(t, summary, "1 skipped")
}

func TestTracker_SummaryWithNoActions(t *testing.T) {
	var buf bytes.Buffer
	sut := NewTrackerWithWriter(nil, &buf, false, false, testCaps())
	sut.Start()
	sut.Stop()

	assert.Contains(t, sut.Summary(), "nothing to do")
}

func TestTracker_ColorModeEmitsAnsi(t *testing.T) {
	var buf bytes.Buffer
	sut := NewTrackerWithWriter([]string{"build app"}, &buf, false, true, testCaps())
	sut.Start()

	sut.ActionStarted(0)
	sut.ActionCompleted(0, domain.OperationResult{TargetID: "build app", Status: domain.StatusSuccess})
	sut.Stop()

	assert.Contains(t, buf.String(), "\033[32m")
}

func TestTracker_StopIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	sut := NewTrackerWithWriter([]string{"a"}, &buf, false, false, testCaps())
	sut.Start()
	sut.Stop()
	sut.Stop()
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0s", FormatDuration(300*time.Millisecond))
	assert.Equal(t, "5s", FormatDuration(5*time.Second))
	assert.Equal(t, "1m 05s", FormatDuration(65*time.Second))
}

func TestTruncateToWidth(t *testing.T) {
	assert.Equal(t, "", truncateToWidth("anything", 0))

	plain := truncateToWidth("abcdef", 3)
	require.True(t, strings.HasPrefix(plain, "abc"))

	colored := truncateToWidth("\033[32mabcdef\033[0m", 3)
	assert.Contains(t, colored, "\033[32m")
	assert.Contains(t, colored, "abc")
	assert.NotContains(t, colored, "abcd")
}
