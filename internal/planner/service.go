package planner

import (
	"time"

	"github.com/Nazish-kiran/planify/internal/dateutil"
	"github.com/Nazish-kiran/planify/internal/storage"
)

// DefaultHorizonYears is the planning horizon the global percentage is
// measured against.
const DefaultHorizonYears = 5

// Service ties the task generator to the state store. The epoch is the
// installation's fixed first-run date; it is persisted once and passed
// in here, never recomputed from the current time.
type Service struct {
	store   *storage.Store
	epoch   time.Time
	horizon int
}

func NewService(store *storage.Store, epoch time.Time, horizonYears int) *Service {
	if horizonYears <= 0 {
		horizonYears = DefaultHorizonYears
	}
	return &Service{store: store, epoch: dateutil.Midnight(epoch), horizon: horizonYears}
}

func (s *Service) Store() *storage.Store { return s.store }
func (s *Service) Epoch() time.Time      { return s.epoch }

// DayTask is one checklist row: a task plus its current done flag.
type DayTask struct {
	storage.Task
	Done bool
}

// DayTasks returns the full checklist for a date: the four generated
// tasks followed by that day's custom tasks, with done flags applied.
// State is reloaded on every call so external imports are picked up.
func (s *Service) DayTasks(date time.Time) []DayTask {
	key := dateutil.Key(date)
	state := s.store.Load()
	done := state.Done[key]

	generated := GenerateTasks(date, s.epoch)
	out := make([]DayTask, 0, len(generated)+len(state.Custom[key]))
	for _, t := range generated {
		out = append(out, DayTask{Task: t, Done: done[t.ID]})
	}
	for _, t := range state.Custom[key] {
		out = append(out, DayTask{Task: t, Done: done[t.ID]})
	}
	return out
}

// Toggle sets the done flag for one task on one day.
func (s *Service) Toggle(dateKey, taskID string, done bool) error {
	return s.store.SetTaskDone(dateKey, taskID, done)
}

// AddCustom appends a user-authored task to a day. Whitespace-only text
// is a silent no-op and returns a nil task.
func (s *Service) AddCustom(date time.Time, text string) (*storage.Task, error) {
	return s.store.AddCustomTask(dateutil.Key(date), text, time.Now().UTC())
}

// RemoveCustom deletes a custom task and its done flag.
func (s *Service) RemoveCustom(dateKey, taskID string) error {
	return s.store.RemoveCustomTask(dateKey, taskID)
}

// FinishDay marks every task on the date's checklist done, replacing
// any prior partial state for that day.
func (s *Service) FinishDay(date time.Time) error {
	tasks := s.DayTasks(date)
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return s.store.CompleteAll(dateutil.Key(date), ids)
}

// ClearDay removes all done flags for a day, keeping custom tasks.
func (s *Service) ClearDay(dateKey string) error {
	return s.store.ClearDay(dateKey)
}
