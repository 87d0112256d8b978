package planner

import (
	"math"

	"github.com/Nazish-kiran/planify/internal/storage"
)

// DayProgress is derived per day, never stored.
type DayProgress struct {
	Completed  int
	Total      int
	Percentage int
}

// GlobalProgress measures completed generated-task slots against the
// whole planning horizon. Custom tasks are excluded from the
// denominator so the percentage tracks the fixed curriculum only.
type GlobalProgress struct {
	Completed  int
	Percentage int
}

// DayProgress computes the completion summary for one day:
// total = 4 generated + customs, completed = true done-flags.
func (s *Service) DayProgress(dateKey string) DayProgress {
	state := s.store.Load()
	return dayProgressFrom(state, dateKey)
}

// AllDayProgress computes the per-day summary for every day the state
// has any record of, for calendar and heatmap views.
func (s *Service) AllDayProgress() map[string]DayProgress {
	state := s.store.Load()
	out := map[string]DayProgress{}
	for key := range state.Custom {
		out[key] = dayProgressFrom(state, key)
	}
	for key := range state.Done {
		if _, ok := out[key]; !ok {
			out[key] = dayProgressFrom(state, key)
		}
	}
	return out
}

func dayProgressFrom(state *storage.State, dateKey string) DayProgress {
	total := SlotCount + len(state.Custom[dateKey])
	completed := state.DoneCount(dateKey)
	return DayProgress{
		Completed:  completed,
		Total:      total,
		Percentage: percentage(completed, total),
	}
}

// GlobalProgress sums completed tasks across all days against
// horizonYears * 365 days of 4 generated tasks each.
func (s *Service) GlobalProgress() GlobalProgress {
	state := s.store.Load()
	completed := state.TotalDone()
	baseTasks := s.horizon * 365 * SlotCount
	return GlobalProgress{
		Completed:  completed,
		Percentage: percentage(completed, baseTasks),
	}
}

// ActivityLevel buckets a day's completed count into the 5-level
// heatmap scale: 0 means no activity, 4 caps the scale.
func ActivityLevel(completed int) int {
	if completed <= 0 {
		return 0
	}
	if completed >= 4 {
		return 4
	}
	return completed
}

func percentage(completed, total int) int {
	if total < 1 {
		total = 1
	}
	p := int(math.Round(100 * float64(completed) / float64(total)))
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return p
}
