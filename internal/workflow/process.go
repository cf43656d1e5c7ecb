package workflow

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"lyrsync/internal/lrc"
	"lyrsync/internal/media"
	"lyrsync/internal/segment"
	"lyrsync/internal/silence"
	"lyrsync/internal/textutil"
	"lyrsync/internal/timeline"
)

// Outcome summarizes one successfully processed pair.
type Outcome struct {
	OutputPath     string
	LineCount      int
	SilenceCount   int
	Degraded       bool
	DegradedReason error
}

// Processor aligns a single pair. It owns no per-run state beyond the
// injected prober and decoder, so one Processor is safe to share across
// workers.
type Processor struct {
	Prober  media.Prober
	Decoder silence.SignalSource
	Params  silence.Params
	// MinSilenceSeconds is converted to a frame count per track once the
	// decode sample rate is known.
	MinSilenceSeconds float64
	OutputDir         string
}

// Process runs the full alignment pipeline for one pair and writes the LRC
// file. Missing inputs, empty segmentation, probe failures, and write
// failures are per-pair errors; silence analysis failures degrade to the
// allocator's fallback timeline instead.
func (p *Processor) Process(ctx context.Context, pair Pair) (Outcome, error) {
	for _, path := range []string{pair.AudioPath, pair.LyricsPath} {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return Outcome{}, fmt.Errorf("%w: %s", ErrMissingInput, path)
			}
			return Outcome{}, fmt.Errorf("stat %s: %w", path, err)
		}
	}

	raw, err := os.ReadFile(pair.LyricsPath)
	if err != nil {
		return Outcome{}, fmt.Errorf("read lyrics: %w", err)
	}
	lines := segment.Split(string(raw))
	if len(lines) == 0 {
		return Outcome{}, fmt.Errorf("%w: %s", ErrEmptySegmentation, pair.LyricsPath)
	}

	info, err := p.Prober.Probe(ctx, pair.AudioPath)
	if err != nil {
		return Outcome{}, fmt.Errorf("probe audio: %w", err)
	}

	analysis := p.analyze(ctx, pair.AudioPath)
	timestamps := timeline.Allocate(len(lines), info.DurationSeconds, analysis.Intervals)

	entries, err := lrc.Zip(timestamps, lines)
	if err != nil {
		return Outcome{}, err
	}

	outputPath := p.outputPath(pair.Track)
	if err := lrc.WriteFile(outputPath, entries); err != nil {
		return Outcome{}, fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	return Outcome{
		OutputPath:     outputPath,
		LineCount:      len(lines),
		SilenceCount:   len(analysis.Intervals),
		Degraded:       analysis.Degraded,
		DegradedReason: analysis.Reason,
	}, nil
}

// analyze scopes the decoded sample buffer: it lives only for the duration
// of this call and is collectable as soon as detection finishes.
func (p *Processor) analyze(ctx context.Context, audioPath string) silence.Analysis {
	return silence.Analyze(ctx, p.Decoder, audioPath, p.Params, p.MinSilenceSeconds)
}

// OutputPath reports where the pair's LRC file lands.
func (p *Processor) OutputPath(track string) string {
	return p.outputPath(track)
}

func (p *Processor) outputPath(track string) string {
	name := textutil.SanitizeFileName(track)
	if name == "" {
		name = "untitled"
	}
	return filepath.Join(p.OutputDir, name+".lrc")
}
