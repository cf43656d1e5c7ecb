package silence

import "context"

// SignalSource decodes an audio file into mono samples plus their sample
// rate. The workflow package provides the ffmpeg-backed implementation.
type SignalSource interface {
	Decode(ctx context.Context, path string) (samples []float32, sampleRate int, err error)
}

// Analysis is the outcome of silence analysis for one audio file. A failed
// decode or analysis does not produce an error: the result is marked
// Degraded with Reason set, and Intervals is empty so the timestamp
// allocator falls back to a synthesized timeline.
type Analysis struct {
	Intervals []Interval
	Degraded  bool
	Reason    error
}

// Analyze decodes path through source and runs Detect over the samples.
// minRunSeconds, when positive, overrides params.MinRunFrames with the
// equivalent frame count at the decoded sample rate; the conversion has to
// happen here because the rate is only known after decoding. Failures
// degrade rather than propagate; callers log Reason and continue.
func Analyze(ctx context.Context, source SignalSource, path string, params Params, minRunSeconds float64) Analysis {
	samples, sampleRate, err := source.Decode(ctx, path)
	if err != nil {
		return Analysis{Degraded: true, Reason: err}
	}
	if minRunSeconds > 0 {
		params.MinRunFrames = params.FramesForDuration(minRunSeconds, sampleRate)
	}
	return Analysis{Intervals: Detect(samples, sampleRate, params)}
}
