package state

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Snapshot is the latest console output available to the view.
type Snapshot struct {
	Text        string
	Progress    float64
	Renders     int // text notifications received
	LastUpdated time.Time
	LastError   error // most recent feed failure, nil once cleared
}

// Lines splits Text into display lines, dropping the trailing terminator.
func (s Snapshot) Lines() []string {
	if s.Text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s.Text, "\n"), "\n")
}

// Store holds the console's published text and progress.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// SetText records a text notification.
func (s *Store) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Text = text
	s.snapshot.Renders++
	s.snapshot.LastUpdated = time.Now()
}

// SetProgress records a progress notification.
func (s *Store) SetProgress(progress float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Progress = progress
	s.snapshot.LastUpdated = time.Now()
}

// RecordError keeps err for display. A nil err clears the previous one.
func (s *Store) RecordError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastError = err
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
