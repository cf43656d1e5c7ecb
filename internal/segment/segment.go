package segment

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Sentence-ending punctuation that ends a display unit when it appears
// outside a quoted span.
const sentenceEndings = "。！？，；："

// Quote markers toggle quoted mode. Opening and closing marks are not
// distinguished: any marker flips the state, which also recovers text with
// mismatched quotes.
const quoteMarkers = "「」\""

// Split converts raw lyric text into ordered display lines: annotation
// markup stripped, lines re-segmented at sentence punctuation with quoted
// spans kept whole, whitespace normalized. Degenerate input yields an empty
// slice; Split never fails.
func Split(raw string) []string {
	cleaned := stripAnnotations(raw)

	var units []string
	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.ContainsAny(line, sentenceEndings) {
			units = append(units, line)
			continue
		}
		units = append(units, splitSentences(line)...)
	}

	result := make([]string, 0, len(units))
	for _, unit := range units {
		if normalized := normalizeUnit(unit); normalized != "" {
			result = append(result, normalized)
		}
	}
	return result
}

type scanState int

const (
	stateNormal scanState = iota
	stateInQuote
)

// splitSentences breaks one line into units at sentence-ending punctuation.
// A two-state scanner protects quoted spans: while in stateInQuote all
// characters, punctuation included, accumulate into the quote buffer, and
// the buffer flushes as a single unit when the span closes. An unterminated
// quote buffer still flushes at end of line.
func splitSentences(line string) []string {
	var (
		units   []string
		current strings.Builder
		quoted  strings.Builder
		state   = stateNormal
	)

	flushCurrent := func() {
		if text := strings.TrimSpace(current.String()); text != "" {
			units = append(units, text)
		}
		current.Reset()
	}

	for _, char := range line {
		switch {
		case strings.ContainsRune(quoteMarkers, char):
			quoted.WriteRune(char)
			if state == stateNormal {
				state = stateInQuote
			} else {
				state = stateNormal
				flushCurrent()
				units = append(units, quoted.String())
				quoted.Reset()
			}
		case state == stateInQuote:
			quoted.WriteRune(char)
		case strings.ContainsRune(sentenceEndings, char):
			flushCurrent()
		default:
			current.WriteRune(char)
		}
	}

	flushCurrent()
	if text := strings.TrimSpace(quoted.String()); text != "" {
		units = append(units, text)
	}
	return units
}

// normalizeUnit collapses whitespace runs to single spaces, trims the ends,
// and applies NFC so that combining-character variants of the same lyric
// compare equal downstream.
func normalizeUnit(unit string) string {
	return norm.NFC.String(strings.Join(strings.Fields(unit), " "))
}
