// Package lrc serializes timestamped lyric lines to the LRC text format.
package lrc

import (
	"fmt"
	"io"
	"strings"

	"lyrsync/internal/fileutil"
)

// Entry pairs a display line with the moment, in seconds, it should appear.
type Entry struct {
	Timestamp float64
	Line      string
}

// Zip pairs timestamps with lines positionally. Both slices must have equal
// length; the allocator guarantees that for engine output.
func Zip(timestamps []float64, lines []string) ([]Entry, error) {
	if len(timestamps) != len(lines) {
		return nil, fmt.Errorf("lrc: %d timestamps for %d lines", len(timestamps), len(lines))
	}
	entries := make([]Entry, len(lines))
	for i := range lines {
		entries[i] = Entry{Timestamp: timestamps[i], Line: lines[i]}
	}
	return entries, nil
}

// FormatTimestamp renders seconds as the LRC tag [MM:SS.CC]. Hundredths are
// truncated, not rounded, so a tag never points past the moment it marks.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	whole := int(seconds)
	minutes := whole / 60
	secs := whole % 60
	hundredths := int((seconds - float64(whole)) * 100)
	return fmt.Sprintf("[%02d:%02d.%02d]", minutes, secs, hundredths)
}

// Write serializes entries to w, one `[MM:SS.CC] line` per row, in order.
func Write(w io.Writer, entries []Entry) error {
	var b strings.Builder
	for _, entry := range entries {
		b.WriteString(FormatTimestamp(entry.Timestamp))
		b.WriteByte(' ')
		b.WriteString(entry.Line)
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write lrc: %w", err)
	}
	return nil
}

// WriteFile atomically writes entries to path.
func WriteFile(path string, entries []Entry) error {
	var b strings.Builder
	if err := Write(&b, entries); err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(path, []byte(b.String()), 0o644)
}
