package segment_test

import (
	"strings"
	"testing"

	"lyrsync/internal/segment"
)

func TestSplitStripsAnnotationsAndPunctuation(t *testing.T) {
	raw := "[Verse 1]\n你好，世界！\n(x2)\n"
	got := segment.Split(raw)
	want := []string{"你好", "世界"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSplitOutputIsNormalized(t *testing.T) {
	raw := "【桥段】\n  hello   world  \n★ la la ♪\n1. 第一句。第二句\n---\n\n~~~\n"
	lines := segment.Split(raw)
	if len(lines) == 0 {
		t.Fatal("expected lines from mixed input")
	}
	for _, line := range lines {
		if line == "" {
			t.Fatal("empty line in output")
		}
		if strings.Contains(line, "\n") {
			t.Fatalf("line %q contains a line break", line)
		}
		if line != strings.TrimSpace(line) {
			t.Fatalf("line %q has surrounding whitespace", line)
		}
		if strings.Contains(line, "  ") {
			t.Fatalf("line %q has an uncollapsed whitespace run", line)
		}
	}
}

func TestSplitKeepsLineWithoutPunctuationWhole(t *testing.T) {
	got := segment.Split("just one line of lyric\n")
	if len(got) != 1 || got[0] != "just one line of lyric" {
		t.Fatalf("unexpected result: %v", got)
	}
}

func TestSplitProtectsQuotedSpans(t *testing.T) {
	got := segment.Split("「他说：你好」很好\n")
	want := []string{"「他说：你好」", "很好"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSplitFlushesUnterminatedQuote(t *testing.T) {
	got := segment.Split("他说：「还没说完\n")
	want := []string{"他说", "「还没说完"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSplitDegenerateInputYieldsEmpty(t *testing.T) {
	for _, raw := range []string{"", "\n\n\n", "[Intro]\n(x2)\n---\n", "★☆♪"} {
		if got := segment.Split(raw); len(got) != 0 {
			t.Fatalf("expected empty result for %q, got %v", raw, got)
		}
	}
}

func TestAnnotationStrippingIsIdempotent(t *testing.T) {
	raw := "[Verse]\n他说（轻声）第1. 句【注】\n---\n你好，世界\n"
	once := segment.Split(raw)
	twice := segment.Split(strings.Join(once, "\n"))
	if len(once) != len(twice) {
		t.Fatalf("second pass changed line count: %v vs %v", once, twice)
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("line %d changed on second pass: %q vs %q", i, once[i], twice[i])
		}
	}
}

func TestSplitOrdersSubUnitsByReadingOrder(t *testing.T) {
	got := segment.Split("第一句。第二句！第三句\n第四句\n")
	want := []string{"第一句", "第二句", "第三句", "第四句"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
