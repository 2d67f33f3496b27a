package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// verbose lowers the global level for the duration of a test.
func verbose(t *testing.T) {
	t.Helper()
	old := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(old) })
}

func TestCompletionEvent_BasicFields(t *testing.T) {
	verbose(t)
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	SetPrettyMode(false)

	NewCompletionEvent(log, "test_event", "test_phase", 500*time.Millisecond).
		Str("bucket", "logs").
		Int("pages", 2).
		Log("test message")

	output := buf.String()
	for _, want := range []string{
		`"level":"info"`,
		`"event":"test_event"`,
		`"phase":"test_phase"`,
		`"duration_ms":500`,
		`"bucket":"logs"`,
		`"pages":2`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
	if strings.Contains(output, `"duration_h"`) {
		t.Errorf("unexpected duration_h outside pretty mode: %s", output)
	}
}

func TestCompletionEvent_BytesAndCounts(t *testing.T) {
	verbose(t)
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	SetPrettyMode(true)
	defer SetPrettyMode(false)

	BucketCompleted(log, time.Second).
		Bytes("bytes", 2_001_000).
		Count("files", 1_500_000).
		Log("bucket aggregated")

	output := buf.String()
	for _, want := range []string{
		`"event":"bucket_completed"`,
		`"phase":"aggregate"`,
		`"bytes":2001000`,
		`"bytes_h":"2.00 MB"`,
		`"files":1500000`,
		`"files_h":"1.50M"`,
		`"duration_h":"1.00s"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
}

func TestCompletionEvent_LogDebug(t *testing.T) {
	verbose(t)
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	SetPrettyMode(false)

	BucketsListed(log, 10*time.Millisecond).Int("buckets", 3).LogDebug("buckets listed")

	output := buf.String()
	if !strings.Contains(output, `"level":"debug"`) {
		t.Errorf("expected debug level, got: %s", output)
	}
	if !strings.Contains(output, `"event":"buckets_listed"`) {
		t.Errorf("expected buckets_listed event, got: %s", output)
	}
}

func TestCompletionEvent_SuppressedAtDefaultLevel(t *testing.T) {
	old := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(DefaultLevel)
	defer zerolog.SetGlobalLevel(old)

	var buf bytes.Buffer
	ReportWritten(zerolog.New(&buf), time.Millisecond).Int("rows", 1).Log("report written")

	if buf.Len() != 0 {
		t.Errorf("expected no output at %v, got: %s", DefaultLevel, buf.String())
	}
}
