package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"lyrsync/internal/config"
	"lyrsync/internal/logging"
	"lyrsync/internal/media"
	"lyrsync/internal/queue"
	"lyrsync/internal/silence"
)

// Manager coordinates one batch run over the configured directories.
type Manager struct {
	cfg       *config.Config
	store     *queue.Store
	logger    *slog.Logger
	processor *Processor
	lockPath  string
}

// Summary reports what a batch run did.
type Summary struct {
	SessionID  string
	Discovered int
	Unpaired   int
	Skipped    int
	Succeeded  int
	Failed     int
}

// NewManager constructs a manager with the production ffmpeg/ffprobe
// implementations.
func NewManager(cfg *config.Config, store *queue.Store, logger *slog.Logger) *Manager {
	processor := &Processor{
		Prober:  &media.FFprobe{Binary: cfg.FFprobeBinary()},
		Decoder: &media.FFmpegDecoder{Binary: cfg.FFmpegBinary()},
		Params: silence.Params{
			FrameSize:   cfg.Silence.FrameSize,
			HopSize:     cfg.Silence.HopSize,
			ThresholdDB: cfg.Silence.ThresholdDB,
		},
		MinSilenceSeconds: float64(cfg.Silence.MinSilenceMS) / 1000.0,
		OutputDir:         cfg.Paths.OutputDir,
	}
	return NewManagerWithProcessor(cfg, store, logger, processor)
}

// NewManagerWithProcessor constructs a manager with an injected processor
// (used in tests).
func NewManagerWithProcessor(cfg *config.Config, store *queue.Store, logger *slog.Logger, processor *Processor) *Manager {
	return &Manager{
		cfg:       cfg,
		store:     store,
		logger:    logging.NewComponentLogger(logger, "workflow"),
		processor: processor,
		lockPath:  filepath.Join(cfg.Paths.LogDir, "lyrsync.lock"),
	}
}

// Run executes one batch: discover pairs, register them in the ledger, and
// process them with the configured number of workers. Per-pair failures are
// recorded and logged; Run only returns an error for setup-level problems
// (lock contention, unreadable directories, ledger failures).
func (m *Manager) Run(ctx context.Context) (Summary, error) {
	lock := flock.New(m.lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return Summary{}, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return Summary{}, fmt.Errorf("%w (lock %s)", ErrLocked, m.lockPath)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	summary := Summary{SessionID: uuid.NewString()}
	logger := m.logger.With(logging.String(logging.FieldSessionID, summary.SessionID))

	pairs, unpaired, err := DiscoverPairs(m.cfg.Paths.AudioDir, m.cfg.Paths.LyricsDir, m.cfg.Workflow.AudioExtensions)
	if err != nil {
		return summary, err
	}
	summary.Discovered = len(pairs)
	summary.Unpaired = len(unpaired)
	for _, name := range unpaired {
		logger.Warn("no lyric file for recording",
			logging.String("audio", name),
			logging.Error(ErrMissingInput),
		)
	}
	if len(pairs) == 0 {
		logger.Warn("no audio/lyric pairs found",
			logging.String("audio_dir", m.cfg.Paths.AudioDir),
			logging.String("lyrics_dir", m.cfg.Paths.LyricsDir),
		)
		return summary, nil
	}

	work := make(chan workItem)
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	workers := m.cfg.Workflow.Workers
	if workers < 1 {
		workers = 1
	}
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for item := range work {
				ok := m.processOne(ctx, logger, item)
				mu.Lock()
				if ok {
					summary.Succeeded++
				} else {
					summary.Failed++
				}
				mu.Unlock()
			}
		}()
	}

	skipped := 0
	for _, pair := range pairs {
		if ctx.Err() != nil {
			break
		}
		if !m.cfg.Workflow.OverwriteExisting {
			if _, err := os.Stat(m.processor.OutputPath(pair.Track)); err == nil {
				logger.Debug("output exists, skipping", logging.String(logging.FieldTrack, pair.Track))
				skipped++
				continue
			}
		}
		item, err := m.store.Register(ctx, pair.Track, pair.AudioPath, pair.LyricsPath)
		if err != nil {
			close(work)
			wg.Wait()
			return summary, fmt.Errorf("register %q: %w", pair.Track, err)
		}
		select {
		case work <- workItem{pair: pair, id: item.ID, session: summary.SessionID}:
		case <-ctx.Done():
		}
	}
	close(work)
	wg.Wait()
	summary.Skipped = skipped

	logger.Info("batch finished",
		logging.Int("discovered", summary.Discovered),
		logging.Int("succeeded", summary.Succeeded),
		logging.Int("failed", summary.Failed),
		logging.Int("skipped", summary.Skipped),
		logging.Int("unpaired", summary.Unpaired),
	)
	return summary, ctx.Err()
}

type workItem struct {
	pair    Pair
	id      int64
	session string
}

// processOne runs a single pair and records the result in the ledger.
// Returns true on success.
func (m *Manager) processOne(ctx context.Context, logger *slog.Logger, item workItem) bool {
	pairLogger := logger.With(logging.String(logging.FieldTrack, item.pair.Track))
	if err := m.store.MarkProcessing(ctx, item.id, item.session); err != nil {
		pairLogger.Error("mark processing failed", logging.Error(err))
		return false
	}

	outcome, err := m.processor.Process(ctx, item.pair)
	if err != nil {
		pairLogger.Error("pair failed", logging.Error(err))
		if markErr := m.store.MarkFailed(ctx, item.id, err.Error()); markErr != nil {
			pairLogger.Error("mark failed failed", logging.Error(markErr))
		}
		return false
	}

	if outcome.Degraded {
		pairLogger.Warn("silence analysis degraded, used fallback timeline",
			logging.Error(outcome.DegradedReason),
		)
	}
	if err := m.store.MarkCompleted(ctx, item.id, outcome.OutputPath, outcome.LineCount, outcome.SilenceCount, outcome.Degraded); err != nil {
		pairLogger.Error("mark completed failed", logging.Error(err))
		return false
	}
	pairLogger.Info("synchronized lyrics written",
		logging.String("output", outcome.OutputPath),
		logging.Int("lines", outcome.LineCount),
		logging.Int("silences", outcome.SilenceCount),
		logging.Bool("degraded", outcome.Degraded),
	)
	return true
}
