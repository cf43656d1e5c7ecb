package lrc_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lyrsync/internal/lrc"
)

func TestFormatTimestamp(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "[00:00.00]"},
		{7.5, "[00:07.50]"},
		{59.999, "[00:59.99]"}, // truncated, never rounded up
		{60, "[01:00.00]"},
		{61.239, "[01:01.23]"},
		{754.5, "[12:34.50]"},
		{-3, "[00:00.00]"},
	}
	for _, tc := range cases {
		if got := lrc.FormatTimestamp(tc.seconds); got != tc.want {
			t.Errorf("FormatTimestamp(%f) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestZipLengthMismatch(t *testing.T) {
	if _, err := lrc.Zip([]float64{1, 2}, []string{"only"}); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}

func TestWriteRendersEntriesInOrder(t *testing.T) {
	entries, err := lrc.Zip([]float64{7.5, 15.0, 22.5}, []string{"你好", "世界", "again"})
	if err != nil {
		t.Fatalf("zip: %v", err)
	}

	var b strings.Builder
	if err := lrc.Write(&b, entries); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "[00:07.50] 你好\n[00:15.00] 世界\n[00:22.50] again\n"
	if b.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", b.String(), want)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.lrc")
	entries := []lrc.Entry{{Timestamp: 1.25, Line: "line"}}
	if err := lrc.WriteFile(path, entries); err != nil {
		t.Fatalf("write file: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "[00:01.25] line\n" {
		t.Fatalf("unexpected contents: %q", data)
	}
}
