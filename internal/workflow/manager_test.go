package workflow

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"lyrsync/internal/config"
	"lyrsync/internal/logging"
	"lyrsync/internal/queue"
)

func newTestManager(t *testing.T) (*Manager, *queue.Store, *config.Config) {
	t.Helper()
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.BaseDir = base
	cfg.Paths.AudioDir = filepath.Join(base, "audio")
	cfg.Paths.LyricsDir = filepath.Join(base, "lyrics")
	cfg.Paths.OutputDir = filepath.Join(base, "output")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Workflow.Workers = 2
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}

	store, err := queue.OpenPath(filepath.Join(cfg.Paths.LogDir, "ledger.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	processor := newTestProcessor(cfg.Paths.OutputDir,
		fakeProber{info: mediaInfo30s()},
		fakeDecoder{samples: make([]float32, 4096), sampleRate: 8000},
	)
	manager := NewManagerWithProcessor(&cfg, store, logging.NewNop(), processor)
	return manager, store, &cfg
}

func addPair(t *testing.T, cfg *config.Config, track, lyrics string) {
	t.Helper()
	audioPath := filepath.Join(cfg.Paths.AudioDir, track+".mp3")
	if err := os.WriteFile(audioPath, []byte("x"), 0o644); err != nil {
		t.Fatalf("write audio: %v", err)
	}
	lyricsPath := filepath.Join(cfg.Paths.LyricsDir, track+".txt")
	if err := os.WriteFile(lyricsPath, []byte(lyrics), 0o644); err != nil {
		t.Fatalf("write lyrics: %v", err)
	}
}

func TestRunProcessesDiscoveredPairs(t *testing.T) {
	manager, store, cfg := newTestManager(t)
	addPair(t, cfg, "alpha", "第一句。\n第二句。\n")
	addPair(t, cfg, "beta", "一句歌词\n")
	// Audio without lyrics is reported, not processed.
	orphan := filepath.Join(cfg.Paths.AudioDir, "orphan.mp3")
	if err := os.WriteFile(orphan, []byte("x"), 0o644); err != nil {
		t.Fatalf("write orphan: %v", err)
	}

	summary, err := manager.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Discovered != 2 || summary.Succeeded != 2 || summary.Failed != 0 {
		t.Fatalf("unexpected summary: %#v", summary)
	}
	if summary.Unpaired != 1 {
		t.Fatalf("expected one unpaired recording, got %d", summary.Unpaired)
	}
	if summary.SessionID == "" {
		t.Fatal("expected a session id")
	}

	for _, track := range []string{"alpha", "beta"} {
		item, err := store.GetByTrack(context.Background(), track)
		if err != nil {
			t.Fatalf("get %q: %v", track, err)
		}
		if item.Status != queue.StatusCompleted {
			t.Fatalf("track %q status = %s", track, item.Status)
		}
		if item.SessionID != summary.SessionID {
			t.Fatalf("track %q session = %q, want %q", track, item.SessionID, summary.SessionID)
		}
		if _, err := os.Stat(item.OutputPath); err != nil {
			t.Fatalf("stat output for %q: %v", track, err)
		}
	}
}

func TestRunRecordsPairFailures(t *testing.T) {
	manager, store, cfg := newTestManager(t)
	addPair(t, cfg, "blank", "[Instrumental]\n")

	summary, err := manager.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Succeeded != 0 || summary.Failed != 1 {
		t.Fatalf("unexpected summary: %#v", summary)
	}

	item, err := store.GetByTrack(context.Background(), "blank")
	if err != nil {
		t.Fatalf("get blank: %v", err)
	}
	if item.Status != queue.StatusFailed {
		t.Fatalf("status = %s, want failed", item.Status)
	}
	if item.ErrorMessage == "" {
		t.Fatal("expected a recorded error message")
	}
}

func TestRunSkipsExistingOutput(t *testing.T) {
	manager, _, cfg := newTestManager(t)
	addPair(t, cfg, "done", "一句歌词\n")
	existing := filepath.Join(cfg.Paths.OutputDir, "done.lrc")
	if err := os.WriteFile(existing, []byte("[00:01.00] old\n"), 0o644); err != nil {
		t.Fatalf("write existing output: %v", err)
	}

	summary, err := manager.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Skipped != 1 || summary.Succeeded != 0 {
		t.Fatalf("unexpected summary: %#v", summary)
	}
	data, err := os.ReadFile(existing)
	if err != nil {
		t.Fatalf("read existing output: %v", err)
	}
	if string(data) != "[00:01.00] old\n" {
		t.Fatal("existing output was overwritten")
	}
}

func TestRunOverwritesWhenConfigured(t *testing.T) {
	manager, _, cfg := newTestManager(t)
	cfg.Workflow.OverwriteExisting = true
	addPair(t, cfg, "done", "一句歌词\n")
	existing := filepath.Join(cfg.Paths.OutputDir, "done.lrc")
	if err := os.WriteFile(existing, []byte("[00:01.00] old\n"), 0o644); err != nil {
		t.Fatalf("write existing output: %v", err)
	}

	summary, err := manager.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Succeeded != 1 || summary.Skipped != 0 {
		t.Fatalf("unexpected summary: %#v", summary)
	}
	data, err := os.ReadFile(existing)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) == "[00:01.00] old\n" {
		t.Fatal("expected output to be regenerated")
	}
}

func TestRunEmptyDirectories(t *testing.T) {
	manager, _, _ := newTestManager(t)
	summary, err := manager.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Discovered != 0 || summary.Succeeded != 0 || summary.Failed != 0 {
		t.Fatalf("unexpected summary: %#v", summary)
	}
}

func TestDiscoverPairsFiltersAndSorts(t *testing.T) {
	audioDir := t.TempDir()
	lyricsDir := t.TempDir()
	for _, name := range []string{"b.mp3", "a.flac", "c.mp3", "notes.pdf"} {
		if err := os.WriteFile(filepath.Join(audioDir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	for _, stem := range []string{"a", "b"} {
		if err := os.WriteFile(filepath.Join(lyricsDir, stem+".txt"), []byte("词"), 0o644); err != nil {
			t.Fatalf("write lyrics: %v", err)
		}
	}

	pairs, unpaired, err := DiscoverPairs(audioDir, lyricsDir, []string{".mp3", ".flac"})
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if len(pairs) != 2 || pairs[0].Track != "a" || pairs[1].Track != "b" {
		t.Fatalf("unexpected pairs: %#v", pairs)
	}
	if len(unpaired) != 1 || unpaired[0] != "c.mp3" {
		t.Fatalf("unexpected unpaired: %#v", unpaired)
	}
}

func TestDiscoverPairsMissingAudioDir(t *testing.T) {
	if _, _, err := DiscoverPairs(filepath.Join(t.TempDir(), "absent"), t.TempDir(), []string{".mp3"}); err == nil {
		t.Fatal("expected error for missing audio directory")
	}
}
