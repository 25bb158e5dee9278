package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/LounisBou/claudeline/internal/api"
)

// FileStore persists the cache entry as a two-line text file:
//
//	line 1: unix timestamp (seconds) of the last successful fetch
//	line 2: "<utilization>|<resetsAt RFC3339, or empty>"
//
// Writes go through a temp file plus rename so concurrent readers never
// observe a torn record.
type FileStore struct {
	Path string
}

// DefaultPath returns ~/.cache/claudeline/usage.txt.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "claudeline", "usage.txt"), nil
}

func (s *FileStore) Load() (*Entry, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return parseEntry(string(data))
}

func (s *FileStore) Save(entry Entry) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	resetsAt := ""
	if !entry.Snapshot.ResetsAt.IsZero() {
		resetsAt = entry.Snapshot.ResetsAt.UTC().Format(time.RFC3339)
	}
	record := fmt.Sprintf("%d\n%d|%s\n",
		entry.ObservedAt.Unix(), entry.Snapshot.Utilization, resetsAt)

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, []byte(record), 0644); err != nil {
		return fmt.Errorf("write temp: %w", err)
	}
	return os.Rename(tmp, s.Path)
}

func parseEntry(data string) (*Entry, error) {
	lines := strings.SplitN(strings.TrimRight(data, "\n"), "\n", 3)
	if len(lines) < 2 {
		return nil, fmt.Errorf("cache record has %d lines, want 2", len(lines))
	}

	secs, err := strconv.ParseInt(strings.TrimSpace(lines[0]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache timestamp: %w", err)
	}
	observedAt := time.Unix(secs, 0)

	utilStr, resetsStr, _ := strings.Cut(strings.TrimSpace(lines[1]), "|")
	util, err := strconv.Atoi(utilStr)
	if err != nil {
		return nil, fmt.Errorf("cache utilization: %w", err)
	}

	var resetsAt time.Time
	if resetsStr != "" {
		resetsAt, err = time.Parse(time.RFC3339, resetsStr)
		if err != nil {
			return nil, fmt.Errorf("cache resets_at: %w", err)
		}
	}

	return &Entry{
		ObservedAt: observedAt,
		Snapshot: api.Snapshot{
			Utilization: util,
			ResetsAt:    resetsAt,
			ObservedAt:  observedAt,
		},
	}, nil
}
