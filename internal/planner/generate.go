// Package planner derives the four daily curriculum tasks from a date,
// merges them with stored custom tasks and rolls completion up into
// day-level and five-year progress.
package planner

import (
	"strconv"
	"time"

	"github.com/Nazish-kiran/planify/internal/curriculum"
	"github.com/Nazish-kiran/planify/internal/dateutil"
	"github.com/Nazish-kiran/planify/internal/storage"
)

// Slot order is fixed: LEARN, DO, BUILD, BUSINESS.
const (
	SlotLearn = iota
	SlotDo
	SlotBuild
	SlotBusiness

	SlotCount = 4
)

// Fallback module texts for a track with an empty module list.
const (
	fallbackLearn = "Focus block"
	fallbackDo    = "Implementation"
)

// GenerateTasks derives the four generated tasks for a calendar day.
// It is pure: equal dates (same epoch) always yield structurally equal
// output, ids included, so completion flags stay stable across runs.
func GenerateTasks(date, epoch time.Time) []storage.Task {
	day := dateutil.Midnight(date)
	track := curriculum.TrackForWeekday(day.Weekday())
	idx := dateutil.WeekIndex(day, epoch)
	mods := curriculum.Modules(track)

	moduleA := fallbackLearn
	moduleB := fallbackDo
	if len(mods) > 0 {
		moduleA = mods[wrap(idx, len(mods))]
		moduleB = mods[wrap(idx+1, len(mods))]
	}

	texts := [SlotCount]string{
		SlotLearn:    "LEARN: " + moduleA,
		SlotDo:       "DO: " + moduleB,
		SlotBuild:    "BUILD: " + curriculum.BuildPhrase(track),
		SlotBusiness: "BUSINESS: " + curriculum.PhaseNarrative(dateutil.YearPhase(day, epoch)),
	}

	key := dateutil.Key(day)
	tasks := make([]storage.Task, 0, SlotCount)
	for i, text := range texts {
		tasks = append(tasks, storage.Task{
			ID:   storage.HashID(key + ":" + strconv.Itoa(i) + ":" + text),
			Text: text,
			Type: storage.TaskGenerated,
		})
	}
	return tasks
}

// wrap maps any week index into [0, n), including negative indexes for
// days browsed before the epoch.
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
