package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"lyrsync/internal/deps"
	"lyrsync/internal/queue"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("ffprobe", statusError, "not found", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "ffprobe:", "[ERROR] not found")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("ffprobe", statusOK, "available", true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestDependencyStatusLine(t *testing.T) {
	required := dependencyStatusLine(deps.Status{Name: "ffprobe", Detail: "binary not found"}, false)
	if !strings.Contains(required, "[ERROR]") {
		t.Fatalf("missing required dependency should be an error: %q", required)
	}
	optional := dependencyStatusLine(deps.Status{Name: "FFmpeg", Optional: true, Detail: "binary not found"}, false)
	if !strings.Contains(optional, "[WARN]") {
		t.Fatalf("missing optional dependency should be a warning: %q", optional)
	}
	available := dependencyStatusLine(deps.Status{Name: "FFmpeg", Available: true, Command: "ffmpeg"}, false)
	if !strings.Contains(available, "[OK]") {
		t.Fatalf("available dependency should be OK: %q", available)
	}
}

func TestLedgerStatusLine(t *testing.T) {
	empty := ledgerStatusLine(queue.HealthSummary{}, false)
	if !strings.Contains(empty, "empty") {
		t.Fatalf("unexpected empty ledger line: %q", empty)
	}
	failed := ledgerStatusLine(queue.HealthSummary{Total: 3, Completed: 2, Failed: 1}, false)
	if !strings.Contains(failed, "[WARN]") || !strings.Contains(failed, "1 failed") {
		t.Fatalf("unexpected failed ledger line: %q", failed)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(&bytes.Buffer{}) {
		t.Fatal("buffers are never a terminal")
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"Status", "Count"},
		[][]string{{"pending", "2"}, {"completed"}},
		[]columnAlignment{alignLeft, alignRight},
	)
	if !strings.Contains(out, "pending") || !strings.Contains(out, "2") {
		t.Fatalf("expected table content, got:\n%s", out)
	}
	if !strings.Contains(out, "STATUS") && !strings.Contains(out, "Status") {
		t.Fatalf("expected header row, got:\n%s", out)
	}
}

func TestTruncateError(t *testing.T) {
	long := strings.Repeat("x", maxErrorColumnWidth+10)
	got := truncateError(long)
	if len(got) != maxErrorColumnWidth {
		t.Fatalf("expected %d chars, got %d", maxErrorColumnWidth, len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
	if truncateError("  short  ") != "short" {
		t.Fatal("short messages should only be trimmed")
	}
}
