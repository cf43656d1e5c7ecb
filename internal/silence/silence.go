package silence

import "math"

const (
	// DefaultFrameSize and DefaultHopSize are the common short-time RMS
	// analysis settings; the default threshold is tuned against them.
	DefaultFrameSize = 2048
	DefaultHopSize   = 512

	// DefaultThresholdDB is the energy level below which a frame counts as
	// silent.
	DefaultThresholdDB = -40.0

	// rmsEpsilon keeps the dB conversion defined for all-zero frames.
	rmsEpsilon = 1e-10
)

// Interval is a half-open time range [Start, End) in seconds where the
// signal energy stayed below the silence threshold.
type Interval struct {
	Start float64
	End   float64
}

// Duration returns the interval length in seconds.
func (i Interval) Duration() float64 {
	return i.End - i.Start
}

// Params configures framed silence detection. MinRunFrames is expressed in
// frame-mask index units, the same units the run scan operates in; callers
// that think in wall-clock time convert via FramesForDuration first.
type Params struct {
	FrameSize    int
	HopSize      int
	ThresholdDB  float64
	MinRunFrames int
}

// DefaultParams returns detection parameters with a one-second minimum run
// at the given sample rate.
func DefaultParams(sampleRate int) Params {
	p := Params{
		FrameSize:   DefaultFrameSize,
		HopSize:     DefaultHopSize,
		ThresholdDB: DefaultThresholdDB,
	}
	p.MinRunFrames = p.FramesForDuration(1.0, sampleRate)
	return p
}

// FramesForDuration converts a wall-clock duration in seconds to the
// equivalent number of hop-spaced frames, never less than one.
func (p Params) FramesForDuration(seconds float64, sampleRate int) int {
	if p.HopSize <= 0 || sampleRate <= 0 || seconds <= 0 {
		return 1
	}
	frames := int(seconds * float64(sampleRate) / float64(p.HopSize))
	if frames < 1 {
		return 1
	}
	return frames
}

// Detect computes the short-time RMS energy contour of samples and returns
// every maximal sub-threshold run of at least MinRunFrames frames as a time
// interval. Intervals are disjoint and sorted by start time. The result is
// empty when the signal is shorter than one frame.
func Detect(samples []float32, sampleRate int, params Params) []Interval {
	if sampleRate <= 0 || params.FrameSize <= 0 || params.HopSize <= 0 {
		return nil
	}
	if len(samples) < params.FrameSize {
		return nil
	}

	frameCount := 1 + (len(samples)-params.FrameSize)/params.HopSize
	mask := make([]bool, frameCount)
	for i := 0; i < frameCount; i++ {
		offset := i * params.HopSize
		rms := frameRMS(samples[offset : offset+params.FrameSize])
		db := 20 * math.Log10(rms+rmsEpsilon)
		mask[i] = db < params.ThresholdDB
	}

	secondsPerFrame := float64(params.HopSize) / float64(sampleRate)
	minRun := params.MinRunFrames
	if minRun < 1 {
		minRun = 1
	}

	var intervals []Interval
	runStart := -1
	for i, silent := range mask {
		switch {
		case silent && runStart < 0:
			runStart = i
		case !silent && runStart >= 0:
			if i-runStart >= minRun {
				intervals = append(intervals, Interval{
					Start: float64(runStart) * secondsPerFrame,
					End:   float64(i) * secondsPerFrame,
				})
			}
			runStart = -1
		}
	}
	// A run still open at end of signal is trailing fade-out, not a phrase
	// boundary, and is not emitted.
	return intervals
}

func frameRMS(frame []float32) float64 {
	sum := 0.0
	for _, sample := range frame {
		v := float64(sample)
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(frame)))
}
