package media

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"os/exec"
	"strings"
)

// decodeSampleRate is the rate PCM is resampled to for silence analysis.
// Energy contours do not need the original rate, and a fixed rate keeps the
// frame parameters meaningful across inputs.
const decodeSampleRate = 22050

// FFmpegDecoder decodes audio files to mono float32 PCM with the ffmpeg
// binary. It implements silence.SignalSource.
type FFmpegDecoder struct {
	Binary string
}

// Decode runs ffmpeg and parses the little-endian float32 stream it writes
// to stdout. The returned buffer is owned by the caller and should be
// dropped as soon as silence detection is done with it.
func (d *FFmpegDecoder) Decode(ctx context.Context, path string) ([]float32, int, error) {
	bin := strings.TrimSpace(d.Binary)
	if bin == "" {
		bin = "ffmpeg"
	}

	cmd := exec.CommandContext(ctx, bin,
		"-i", path,
		"-f", "f32le",
		"-acodec", "pcm_f32le",
		"-ar", fmt.Sprint(decodeSampleRate),
		"-ac", "1",
		"-loglevel", "error",
		"pipe:1",
	)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return nil, 0, fmt.Errorf("ffmpeg decode %s: %w: %s", path, err, detail)
		}
		return nil, 0, fmt.Errorf("ffmpeg decode %s: %w", path, err)
	}

	samples, err := parsePCM(out)
	if err != nil {
		return nil, 0, fmt.Errorf("ffmpeg decode %s: %w", path, err)
	}
	return samples, decodeSampleRate, nil
}

func parsePCM(raw []byte) ([]float32, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty PCM stream")
	}
	// Trim a ragged tail rather than failing a whole track over it.
	raw = raw[:len(raw)-len(raw)%4]

	samples := make([]float32, len(raw)/4)
	for i := range samples {
		bits := binary.LittleEndian.Uint32(raw[i*4 : i*4+4])
		samples[i] = math.Float32frombits(bits)
	}
	return samples, nil
}
