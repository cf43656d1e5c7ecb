package media

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Info is the subset of ffprobe output the workflow needs.
type Info struct {
	DurationSeconds float64
	SampleRate      int
	CodecName       string
}

// Prober inspects an audio file. *FFprobe is the production implementation.
type Prober interface {
	Probe(ctx context.Context, path string) (Info, error)
}

// FFprobe inspects audio files with the ffprobe binary.
type FFprobe struct {
	Binary string
}

type probePayload struct {
	Streams []struct {
		CodecType  string `json:"codec_type"`
		CodecName  string `json:"codec_name"`
		SampleRate string `json:"sample_rate"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Probe executes ffprobe against path and extracts duration and the first
// audio stream's sample rate.
func (f *FFprobe) Probe(ctx context.Context, path string) (Info, error) {
	binary := strings.TrimSpace(f.Binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Info{}, errors.New("ffprobe: empty path")
	}

	cmd := exec.CommandContext(ctx, binary, "-v", "error", "-hide_banner", "-show_format", "-show_streams", "-of", "json", "--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return Info{}, fmt.Errorf("ffprobe %s: %w: %s", path, err, strings.TrimSpace(string(output)))
	}
	return parseProbeOutput(output)
}

func parseProbeOutput(output []byte) (Info, error) {
	var payload probePayload
	if err := json.Unmarshal(output, &payload); err != nil {
		return Info{}, fmt.Errorf("ffprobe parse: %w", err)
	}

	info := Info{}
	duration, err := strconv.ParseFloat(strings.TrimSpace(payload.Format.Duration), 64)
	if err != nil || duration <= 0 {
		return Info{}, fmt.Errorf("ffprobe: no usable duration in output")
	}
	info.DurationSeconds = duration

	for _, stream := range payload.Streams {
		if !strings.EqualFold(stream.CodecType, "audio") {
			continue
		}
		info.CodecName = stream.CodecName
		if rate, err := strconv.Atoi(strings.TrimSpace(stream.SampleRate)); err == nil {
			info.SampleRate = rate
		}
		break
	}
	if info.SampleRate <= 0 {
		return Info{}, errors.New("ffprobe: no audio stream with a sample rate")
	}
	return info, nil
}
