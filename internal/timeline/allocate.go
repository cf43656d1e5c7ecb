package timeline

import "lyrsync/internal/silence"

// defaultGapSeconds is used to extrapolate past the known silence starts
// when fewer than two silences exist to average.
const defaultGapSeconds = 2.0

// Allocate returns exactly lineCount timestamps in seconds, non-decreasing,
// each within (0, duration]. Three branches, in priority order:
//
//  1. No silence intervals: spread lines uniformly at duration/(lineCount+1)
//     spacing, leaving one trailing gap before the end of the audio.
//  2. At least lineCount intervals: each line starts at the start of the
//     corresponding silence interval.
//  3. Fewer intervals than lines: silence starts seed the prefix, the rest
//     extrapolate at the average gap between consecutive known starts. If
//     the tail overshoots the duration, the whole sequence is rescaled
//     linearly, anchored at the first timestamp, so the last one lands
//     exactly on the duration.
//
// lineCount must be >= 1 and duration > 0; every such input resolves to
// exactly one branch.
func Allocate(lineCount int, duration float64, silences []silence.Interval) []float64 {
	if lineCount <= 0 {
		return nil
	}

	if len(silences) == 0 {
		interval := duration / float64(lineCount+1)
		timestamps := make([]float64, lineCount)
		for i := range timestamps {
			timestamps[i] = interval * float64(i+1)
		}
		return timestamps
	}

	starts := make([]float64, len(silences))
	for i, region := range silences {
		starts[i] = region.Start
	}

	if lineCount <= len(starts) {
		return starts[:lineCount]
	}

	avgGap := defaultGapSeconds
	if len(starts) >= 2 {
		sum := 0.0
		for i := 1; i < len(starts); i++ {
			sum += starts[i] - starts[i-1]
		}
		avgGap = sum / float64(len(starts)-1)
	}

	timestamps := make([]float64, 0, lineCount)
	timestamps = append(timestamps, starts...)
	last := starts[len(starts)-1]
	for len(timestamps) < lineCount {
		last += avgGap
		timestamps = append(timestamps, last)
	}

	if timestamps[len(timestamps)-1] > duration {
		first := timestamps[0]
		span := timestamps[len(timestamps)-1] - first
		if span > 0 {
			scale := (duration - first) / span
			for i, t := range timestamps {
				timestamps[i] = first + (t-first)*scale
			}
		}
	}
	return timestamps
}
