package workflow

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Pair is one recording plus its lyric file, keyed by the shared stem.
type Pair struct {
	Track      string
	AudioPath  string
	LyricsPath string
}

// DiscoverPairs scans audioDir for files with one of the configured
// extensions and pairs each with `<stem>.txt` in lyricsDir. Audio files
// without a lyric counterpart are reported in the second return value so
// the caller can log them; they are not an error.
func DiscoverPairs(audioDir, lyricsDir string, extensions []string) ([]Pair, []string, error) {
	entries, err := os.ReadDir(audioDir)
	if err != nil {
		return nil, nil, fmt.Errorf("read audio directory: %w", err)
	}

	extSet := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		extSet[strings.ToLower(ext)] = struct{}{}
	}

	var (
		pairs    []Pair
		unpaired []string
	)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if _, ok := extSet[ext]; !ok {
			continue
		}
		track := strings.TrimSuffix(name, filepath.Ext(name))
		lyricsPath := filepath.Join(lyricsDir, track+".txt")
		if _, err := os.Stat(lyricsPath); err != nil {
			unpaired = append(unpaired, name)
			continue
		}
		pairs = append(pairs, Pair{
			Track:      track,
			AudioPath:  filepath.Join(audioDir, name),
			LyricsPath: lyricsPath,
		})
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Track < pairs[j].Track })
	sort.Strings(unpaired)
	return pairs, unpaired, nil
}
