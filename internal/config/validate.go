package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSilence(); err != nil {
		return err
	}
	if err := c.validateWorkflow(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSilence() error {
	if c.Silence.ThresholdDB >= 0 {
		return errors.New("silence.threshold_db must be negative (decibels below full scale)")
	}
	if c.Silence.MinSilenceMS <= 0 {
		return errors.New("silence.min_silence_ms must be positive")
	}
	if c.Silence.FrameSize <= 0 {
		return errors.New("silence.frame_size must be positive")
	}
	if c.Silence.HopSize <= 0 {
		return errors.New("silence.hop_size must be positive")
	}
	if c.Silence.HopSize > c.Silence.FrameSize {
		return errors.New("silence.hop_size must not exceed silence.frame_size")
	}
	return nil
}

func (c *Config) validateWorkflow() error {
	if c.Workflow.Workers < 1 {
		return errors.New("workflow.workers must be >= 1")
	}
	if len(c.Workflow.AudioExtensions) == 0 {
		return errors.New("workflow.audio_extensions must include at least one extension")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
