package media

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestParseProbeOutput(t *testing.T) {
	payload := []byte(`{
		"streams": [
			{"codec_type": "video", "codec_name": "mjpeg"},
			{"codec_type": "audio", "codec_name": "mp3", "sample_rate": "44100"}
		],
		"format": {"duration": "185.338776"}
	}`)
	info, err := parseProbeOutput(payload)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if math.Abs(info.DurationSeconds-185.338776) > 1e-9 {
		t.Fatalf("unexpected duration: %f", info.DurationSeconds)
	}
	if info.SampleRate != 44100 {
		t.Fatalf("unexpected sample rate: %d", info.SampleRate)
	}
	if info.CodecName != "mp3" {
		t.Fatalf("unexpected codec: %q", info.CodecName)
	}
}

func TestParseProbeOutputRejectsMissingData(t *testing.T) {
	cases := map[string]string{
		"no duration":     `{"streams": [{"codec_type": "audio", "sample_rate": "44100"}], "format": {}}`,
		"no audio stream": `{"streams": [{"codec_type": "video"}], "format": {"duration": "10.0"}}`,
		"bad json":        `{`,
	}
	for name, payload := range cases {
		if _, err := parseProbeOutput([]byte(payload)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestParsePCM(t *testing.T) {
	want := []float32{0, 0.5, -1, 0.25}
	raw := make([]byte, 0, len(want)*4+2)
	for _, v := range want {
		var quad [4]byte
		binary.LittleEndian.PutUint32(quad[:], math.Float32bits(v))
		raw = append(raw, quad[:]...)
	}
	raw = append(raw, 0xAB, 0xCD) // ragged tail

	got, err := parsePCM(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sample %d: got %f want %f", i, got[i], want[i])
		}
	}
}

func TestParsePCMEmpty(t *testing.T) {
	if _, err := parsePCM(nil); err == nil {
		t.Fatal("expected error for empty stream")
	}
}
