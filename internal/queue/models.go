package queue

import (
	"strings"
	"time"
)

// Status represents the lifecycle of a ledger item.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

var allStatuses = []Status{
	StatusPending,
	StatusProcessing,
	StatusCompleted,
	StatusFailed,
}

var statusSet = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(allStatuses))
	for _, status := range allStatuses {
		set[status] = struct{}{}
	}
	return set
}()

// Item represents one audio/lyric pair persisted in SQLite.
type Item struct {
	ID           int64
	Track        string
	AudioPath    string
	LyricsPath   string
	OutputPath   string
	Status       Status
	ErrorMessage string
	LineCount    int
	SilenceCount int
	Degraded     bool
	SessionID    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HealthSummary describes aggregated ledger counts per lifecycle state.
type HealthSummary struct {
	Total      int
	Pending    int
	Processing int
	Completed  int
	Failed     int
}

// AllStatuses returns the ordered list of known statuses.
func AllStatuses() []Status {
	cp := make([]Status, len(allStatuses))
	copy(cp, allStatuses)
	return cp
}

// ParseStatus converts a string into a known Status.
func ParseStatus(value string) (Status, bool) {
	normalized := Status(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := statusSet[normalized]
	return normalized, ok
}
