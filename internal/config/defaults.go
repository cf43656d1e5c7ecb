package config

const (
	defaultBaseDir      = "~/.local/share/lyrsync"
	defaultThresholdDB  = -40.0
	defaultMinSilenceMS = 1000
	defaultFrameSize    = 2048
	defaultHopSize      = 512
	defaultWorkers      = 2
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

func defaultAudioExtensions() []string {
	return []string{".mp3", ".flac", ".wav", ".m4a", ".ogg"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			BaseDir: defaultBaseDir,
		},
		Silence: Silence{
			ThresholdDB:  defaultThresholdDB,
			MinSilenceMS: defaultMinSilenceMS,
			FrameSize:    defaultFrameSize,
			HopSize:      defaultHopSize,
		},
		Workflow: Workflow{
			Workers:         defaultWorkers,
			AudioExtensions: defaultAudioExtensions(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
