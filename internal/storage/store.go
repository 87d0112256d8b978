// Package storage persists planner state as a single human-readable
// JSON blob. Every mutation rereads the blob, applies the change and
// rewrites the whole file, so an external import/reset between any two
// operations is always picked up.
package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store reads and writes the planner state blob at a fixed path.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (st *Store) Path() string { return st.path }

// Load reads the persisted state. Missing or corrupt blobs degrade to
// an empty state; Load never fails.
func (st *Store) Load() *State {
	data, err := os.ReadFile(st.path)
	if err != nil {
		return NewState()
	}
	s := NewState()
	if err := json.Unmarshal(data, s); err != nil {
		return NewState()
	}
	return s
}

// Save serializes the whole state and replaces the blob atomically
// (temp file + rename), so readers never observe a partial write.
func (st *Store) Save(s *State) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("state marshal: %w", err)
	}
	return st.writeBlob(data)
}

func (st *Store) writeBlob(data []byte) error {
	dir := filepath.Dir(st.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("state dir: %w", err)
	}
	tmp := st.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("state write: %w", err)
	}
	if err := os.Rename(tmp, st.path); err != nil {
		return fmt.Errorf("state rename: %w", err)
	}
	return nil
}

// SetTaskDone upserts the done-flag for one task on one day.
func (st *Store) SetTaskDone(dateKey, taskID string, done bool) error {
	s := st.Load()
	day := s.Done[dateKey]
	if day == nil {
		day = map[string]bool{}
		s.Done[dateKey] = day
	}
	day[taskID] = done
	return st.Save(s)
}

// AddCustomTask appends a custom task for a day. Empty or whitespace-only
// text is a no-op and returns a nil task, not an error.
func (st *Store) AddCustomTask(dateKey, text string, at time.Time) (*Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	task := NewCustomTask(dateKey, text, at)
	s := st.Load()
	s.Custom[dateKey] = append(s.Custom[dateKey], task)
	if err := st.Save(s); err != nil {
		return nil, err
	}
	return &task, nil
}

// RemoveCustomTask deletes a custom task and any done-flag recorded for
// it. Completion state never outlives its task. Unknown ids are no-ops.
func (st *Store) RemoveCustomTask(dateKey, taskID string) error {
	s := st.Load()
	list := s.Custom[dateKey]
	kept := list[:0]
	for _, t := range list {
		if t.ID != taskID {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		delete(s.Custom, dateKey)
	} else {
		s.Custom[dateKey] = kept
	}
	if day := s.Done[dateKey]; day != nil {
		delete(day, taskID)
	}
	return st.Save(s)
}

// CompleteAll marks every given task id done for the day, replacing any
// prior partial state for that day.
func (st *Store) CompleteAll(dateKey string, taskIDs []string) error {
	s := st.Load()
	day := make(map[string]bool, len(taskIDs))
	for _, id := range taskIDs {
		day[id] = true
	}
	s.Done[dateKey] = day
	return st.Save(s)
}

// ClearDay deletes all done-flags for a day. Custom tasks are kept.
func (st *Store) ClearDay(dateKey string) error {
	s := st.Load()
	delete(s.Done, dateKey)
	return st.Save(s)
}

// Reset replaces the blob with the empty state.
func (st *Store) Reset() error {
	return st.Save(NewState())
}

// ExportTo writes the persisted blob verbatim. A missing blob exports
// as the empty state.
func (st *Store) ExportTo(w io.Writer) error {
	data, err := os.ReadFile(st.path)
	if err != nil {
		if data, err = json.MarshalIndent(NewState(), "", "  "); err != nil {
			return fmt.Errorf("export marshal: %w", err)
		}
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("export write: %w", err)
	}
	return nil
}

// ImportFrom validates an incoming JSON document against the state
// shape and replaces the blob with it verbatim. On a parse failure the
// existing blob is left untouched.
func (st *Store) ImportFrom(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("import read: %w", err)
	}
	var probe State
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("import: invalid state document: %w", err)
	}
	return st.writeBlob(data)
}
