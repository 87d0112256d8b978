package planner

import (
	"path/filepath"
	"testing"

	"github.com/Nazish-kiran/planify/internal/dateutil"
	"github.com/Nazish-kiran/planify/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store := storage.New(filepath.Join(t.TempDir(), "state.json"))
	return NewService(store, testEpoch, DefaultHorizonYears)
}

func TestDayTasksMergesGeneratedAndCustom(t *testing.T) {
	svc := newTestService(t)
	date := testEpoch

	task, err := svc.AddCustom(date, "  Call supplier  ")
	if err != nil {
		t.Fatalf("add custom: %v", err)
	}
	if task.Text != "Call supplier" {
		t.Fatalf("custom text=%q, want trimmed", task.Text)
	}

	tasks := svc.DayTasks(date)
	if len(tasks) != SlotCount+1 {
		t.Fatalf("len=%d, want %d", len(tasks), SlotCount+1)
	}
	if tasks[SlotCount].Type != storage.TaskCustom {
		t.Fatalf("custom task should follow the generated slots")
	}
	for _, dt := range tasks {
		if dt.Done {
			t.Fatalf("fresh day should have nothing done")
		}
	}
}

func TestDayProgressHalf(t *testing.T) {
	svc := newTestService(t)
	date := testEpoch
	key := dateutil.Key(date)

	tasks := svc.DayTasks(date)
	for _, dt := range tasks[:2] {
		if err := svc.Toggle(key, dt.ID, true); err != nil {
			t.Fatalf("toggle: %v", err)
		}
	}

	got := svc.DayProgress(key)
	want := DayProgress{Completed: 2, Total: 4, Percentage: 50}
	if got != want {
		t.Fatalf("day progress=%+v, want %+v", got, want)
	}
}

func TestDayProgressCountsCustomInTotal(t *testing.T) {
	svc := newTestService(t)
	date := testEpoch
	key := dateutil.Key(date)

	if _, err := svc.AddCustom(date, "Call supplier"); err != nil {
		t.Fatalf("add custom: %v", err)
	}
	got := svc.DayProgress(key)
	if got.Total != 5 {
		t.Fatalf("total=%d, want 5", got.Total)
	}
	if got.Percentage != 0 {
		t.Fatalf("percentage=%d, want 0", got.Percentage)
	}
}

func TestFinishDayYieldsFullProgress(t *testing.T) {
	svc := newTestService(t)
	date := testEpoch
	key := dateutil.Key(date)

	if _, err := svc.AddCustom(date, "Call supplier"); err != nil {
		t.Fatalf("add custom: %v", err)
	}
	if err := svc.FinishDay(date); err != nil {
		t.Fatalf("finish: %v", err)
	}

	got := svc.DayProgress(key)
	if got.Percentage != 100 || got.Completed != got.Total {
		t.Fatalf("after finish: %+v, want 100%%", got)
	}
}

func TestRemoveCustomDropsItsDoneFlag(t *testing.T) {
	svc := newTestService(t)
	date := testEpoch
	key := dateutil.Key(date)

	task, err := svc.AddCustom(date, "Call supplier")
	if err != nil {
		t.Fatalf("add custom: %v", err)
	}
	if err := svc.Toggle(key, task.ID, true); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := svc.RemoveCustom(key, task.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	got := svc.DayProgress(key)
	if got.Completed != 0 || got.Total != 4 {
		t.Fatalf("progress after removal=%+v, want 0/4", got)
	}
}

func TestClearDayKeepsCustoms(t *testing.T) {
	svc := newTestService(t)
	date := testEpoch
	key := dateutil.Key(date)

	if _, err := svc.AddCustom(date, "Call supplier"); err != nil {
		t.Fatalf("add custom: %v", err)
	}
	if err := svc.FinishDay(date); err != nil {
		t.Fatalf("finish: %v", err)
	}
	if err := svc.ClearDay(key); err != nil {
		t.Fatalf("clear: %v", err)
	}

	got := svc.DayProgress(key)
	if got.Completed != 0 {
		t.Fatalf("completed=%d after clear", got.Completed)
	}
	if got.Total != 5 {
		t.Fatalf("total=%d, custom task should survive", got.Total)
	}
}

func TestGlobalProgressExcludesCustomFromDenominator(t *testing.T) {
	svc := newTestService(t)
	date := testEpoch

	// Finish a day that includes a custom task: 5 completions against a
	// base of 5*365*4 generated slots.
	if _, err := svc.AddCustom(date, "Call supplier"); err != nil {
		t.Fatalf("add custom: %v", err)
	}
	if err := svc.FinishDay(date); err != nil {
		t.Fatalf("finish: %v", err)
	}

	got := svc.GlobalProgress()
	if got.Completed != 5 {
		t.Fatalf("completed=%d, want 5", got.Completed)
	}
	if got.Percentage != 0 { // round(100*5/7300) = 0
		t.Fatalf("percentage=%d, want 0", got.Percentage)
	}
}

func TestGlobalProgressHalfHorizon(t *testing.T) {
	store := storage.New(filepath.Join(t.TempDir(), "state.json"))
	svc := NewService(store, testEpoch, 5)

	// 3650 completed of 7300 base tasks is exactly 50%.
	state := storage.NewState()
	day := testEpoch
	for i := 0; i < 3650/2; i++ {
		key := dateutil.Key(day)
		state.Done[key] = map[string]bool{"a": true, "b": true}
		day = day.AddDate(0, 0, 1)
	}
	if err := store.Save(state); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := svc.GlobalProgress()
	if got.Completed != 3650 || got.Percentage != 50 {
		t.Fatalf("global=%+v, want 3650/50%%", got)
	}
}

func TestGlobalProgressCapped(t *testing.T) {
	store := storage.New(filepath.Join(t.TempDir(), "state.json"))
	svc := NewService(store, testEpoch, 1)

	state := storage.NewState()
	day := testEpoch
	for i := 0; i < 400; i++ { // more than 365*4/4 days of full completion
		key := dateutil.Key(day)
		state.Done[key] = map[string]bool{"a": true, "b": true, "c": true, "d": true}
		day = day.AddDate(0, 0, 1)
	}
	if err := store.Save(state); err != nil {
		t.Fatalf("save: %v", err)
	}

	if got := svc.GlobalProgress().Percentage; got != 100 {
		t.Fatalf("percentage=%d, want capped at 100", got)
	}
}

func TestAllDayProgressCoversDoneOnlyAndCustomOnlyDays(t *testing.T) {
	svc := newTestService(t)

	dayA := testEpoch
	dayB := testEpoch.AddDate(0, 0, 1)
	keyA := dateutil.Key(dayA)
	keyB := dateutil.Key(dayB)

	tasks := svc.DayTasks(dayA)
	if err := svc.Toggle(keyA, tasks[0].ID, true); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, err := svc.AddCustom(dayB, "Call supplier"); err != nil {
		t.Fatalf("add custom: %v", err)
	}

	all := svc.AllDayProgress()
	if got := all[keyA]; got.Completed != 1 || got.Total != 4 {
		t.Fatalf("dayA=%+v", got)
	}
	if got := all[keyB]; got.Completed != 0 || got.Total != 5 {
		t.Fatalf("dayB=%+v", got)
	}
}

func TestActivityLevels(t *testing.T) {
	cases := map[int]int{-1: 0, 0: 0, 1: 1, 2: 2, 3: 3, 4: 4, 9: 4}
	for completed, want := range cases {
		if got := ActivityLevel(completed); got != want {
			t.Fatalf("ActivityLevel(%d)=%d, want %d", completed, got, want)
		}
	}
}

func TestToggleSurvivesExternalReplacement(t *testing.T) {
	svc := newTestService(t)
	key := dateutil.Key(testEpoch)

	if err := svc.Toggle(key, "abc", true); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	// Simulate an external import replacing the blob between operations.
	if err := svc.Store().Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if got := svc.DayProgress(key); got.Completed != 0 {
		t.Fatalf("stale derived state after external replacement: %+v", got)
	}
}
