package config

import (
	"os"
	"path/filepath"
	"strings"
)

// normalize expands paths, applies the base-dir environment override, and
// derives unset directories from the base directory.
func (c *Config) normalize() error {
	if env := strings.TrimSpace(os.Getenv("LYRSYNC_BASE_DIR")); env != "" {
		c.Paths.BaseDir = env
	}

	base, err := expandPath(c.Paths.BaseDir)
	if err != nil {
		return err
	}
	c.Paths.BaseDir = base

	derived := map[*string]string{
		&c.Paths.AudioDir:  "audio",
		&c.Paths.LyricsDir: "lyrics",
		&c.Paths.OutputDir: "output",
		&c.Paths.LogDir:    "logs",
	}
	for field, sub := range derived {
		if strings.TrimSpace(*field) == "" {
			*field = filepath.Join(base, sub)
			continue
		}
		expanded, err := expandPath(*field)
		if err != nil {
			return err
		}
		*field = expanded
	}

	normalized := make([]string, 0, len(c.Workflow.AudioExtensions))
	for _, ext := range c.Workflow.AudioExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	c.Workflow.AudioExtensions = normalized

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}
