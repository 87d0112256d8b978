package storage

import (
	"encoding/json"
	"fmt"
)

// State is the single persisted aggregate: per-day done flags keyed by
// task id, and per-day custom task lists. Fields other writers may have
// added to the blob are carried through re-saves untouched.
type State struct {
	Done   map[string]map[string]bool
	Custom map[string][]Task

	extra map[string]json.RawMessage
}

// NewState returns an empty state with initialized maps.
func NewState() *State {
	return &State{
		Done:   map[string]map[string]bool{},
		Custom: map[string][]Task{},
	}
}

func (s *State) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("state unmarshal: %w", err)
	}

	s.Done = map[string]map[string]bool{}
	s.Custom = map[string][]Task{}
	s.extra = nil

	if v, ok := raw["done"]; ok {
		if err := json.Unmarshal(v, &s.Done); err != nil {
			return fmt.Errorf("state done: %w", err)
		}
		if s.Done == nil {
			s.Done = map[string]map[string]bool{}
		}
		delete(raw, "done")
	}
	if v, ok := raw["custom"]; ok {
		if err := json.Unmarshal(v, &s.Custom); err != nil {
			return fmt.Errorf("state custom: %w", err)
		}
		if s.Custom == nil {
			s.Custom = map[string][]Task{}
		}
		delete(raw, "custom")
	}
	if len(raw) > 0 {
		s.extra = raw
	}
	return nil
}

func (s *State) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.extra)+2)
	for k, v := range s.extra {
		out[k] = v
	}
	done := s.Done
	if done == nil {
		done = map[string]map[string]bool{}
	}
	custom := s.Custom
	if custom == nil {
		custom = map[string][]Task{}
	}
	out["done"] = done
	out["custom"] = custom
	return json.Marshal(out)
}

// DoneCount returns the number of true done-flags for a day.
func (s *State) DoneCount(dateKey string) int {
	n := 0
	for _, ok := range s.Done[dateKey] {
		if ok {
			n++
		}
	}
	return n
}

// TotalDone returns the number of true done-flags across all days.
func (s *State) TotalDone() int {
	n := 0
	for key := range s.Done {
		n += s.DoneCount(key)
	}
	return n
}
