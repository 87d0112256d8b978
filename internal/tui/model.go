package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nazish-kiran/planify/internal/curriculum"
	"github.com/Nazish-kiran/planify/internal/dateutil"
	"github.com/Nazish-kiran/planify/internal/planner"
	"github.com/Nazish-kiran/planify/internal/storage"
	"github.com/Nazish-kiran/planify/internal/ui"
)

type dayModel struct {
	svc  *planner.Service
	date time.Time

	width  int
	height int

	tasks    []planner.DayTask
	prog     planner.DayProgress
	selected int

	adding bool
	input  textinput.Model

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	tasks []planner.DayTask
	prog  planner.DayProgress
	err   error
}

type mutatedMsg struct {
	log string
	err error
}

func newDayModel(svc *planner.Service, date time.Time) dayModel {
	in := textinput.New()
	in.Placeholder = "Add a custom task…"
	in.CharLimit = 200
	in.Width = 40

	return dayModel{
		svc:     svc,
		date:    dateutil.Midnight(date),
		input:   in,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m dayModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m dayModel) loadCmd() tea.Cmd {
	date := m.date
	svc := m.svc
	return func() tea.Msg {
		tasks := svc.DayTasks(date)
		prog := svc.DayProgress(dateutil.Key(date))
		return loadedMsg{tasks: tasks, prog: prog}
	}
}

func (m dayModel) toggleCmd(taskID string, done bool) tea.Cmd {
	key := dateutil.Key(m.date)
	svc := m.svc
	return func() tea.Msg {
		if err := svc.Toggle(key, taskID, done); err != nil {
			return mutatedMsg{err: err}
		}
		verb := "Unchecked"
		if done {
			verb = "Checked"
		}
		return mutatedMsg{log: fmt.Sprintf("%s %s.", verb, taskID)}
	}
}

func (m dayModel) addCmd(text string) tea.Cmd {
	date := m.date
	svc := m.svc
	return func() tea.Msg {
		task, err := svc.AddCustom(date, text)
		if err != nil {
			return mutatedMsg{err: err}
		}
		if task == nil {
			return mutatedMsg{log: "Nothing to add."}
		}
		return mutatedMsg{log: fmt.Sprintf("Added %q.", task.Text)}
	}
}

func (m dayModel) removeCmd(taskID string) tea.Cmd {
	key := dateutil.Key(m.date)
	svc := m.svc
	return func() tea.Msg {
		if err := svc.RemoveCustom(key, taskID); err != nil {
			return mutatedMsg{err: err}
		}
		return mutatedMsg{log: fmt.Sprintf("Removed %s.", taskID)}
	}
}

func (m dayModel) finishCmd() tea.Cmd {
	date := m.date
	svc := m.svc
	return func() tea.Msg {
		if err := svc.FinishDay(date); err != nil {
			return mutatedMsg{err: err}
		}
		return mutatedMsg{log: "All tasks completed."}
	}
}

func (m dayModel) clearCmd() tea.Cmd {
	key := dateutil.Key(m.date)
	svc := m.svc
	return func() tea.Msg {
		if err := svc.ClearDay(key); err != nil {
			return mutatedMsg{err: err}
		}
		return mutatedMsg{log: "Checks cleared."}
	}
}

func (m dayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.tasks = msg.tasks
		m.prog = msg.prog
		if m.selected >= len(m.tasks) {
			m.selected = len(m.tasks) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		return m, nil

	case mutatedMsg:
		if msg.err != nil {
			m.lastLog = ui.IconError + " " + msg.err.Error()
			return m, nil
		}
		m.lastLog = msg.log
		return m, m.loadCmd()

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "left", "h":
			m.date = m.date.AddDate(0, 0, -1)
			return m, m.loadCmd()
		case "right", "l":
			m.date = m.date.AddDate(0, 0, 1)
			return m, m.loadCmd()
		case "t":
			m.date = dateutil.Midnight(time.Now())
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.tasks)-1 {
				m.selected++
			}
			return m, nil
		case " ", "enter":
			if m.selected < 0 || m.selected >= len(m.tasks) {
				return m, nil
			}
			line := m.tasks[m.selected]
			return m, m.toggleCmd(line.ID, !line.Done)
		case "a":
			m.adding = true
			m.input.SetValue("")
			m.input.Focus()
			return m, textinput.Blink
		case "d":
			if m.selected < 0 || m.selected >= len(m.tasks) {
				return m, nil
			}
			line := m.tasks[m.selected]
			if line.Type != storage.TaskCustom {
				m.lastLog = "Only custom tasks can be removed."
				return m, nil
			}
			return m, m.removeCmd(line.ID)
		case "F":
			return m, m.finishCmd()
		case "C":
			return m, m.clearCmd()
		}
	}
	return m, nil
}

func (m dayModel) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.input.Blur()
		m.lastLog = "Add cancelled."
		return m, nil
	case "enter":
		text := m.input.Value()
		m.adding = false
		m.input.Blur()
		return m, m.addCmd(text)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m dayModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderTasks())
	b.WriteString("\n")
	if m.adding {
		b.WriteString(ui.Key.Render("New task:") + " " + m.input.View() + "\n")
	}
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m dayModel) renderHeader() string {
	track := curriculum.TrackForWeekday(m.date.Weekday())
	title := ui.Heading(ui.IconCalendar, m.date.Format("Monday, January 2, 2006"))
	bar := ui.ProgressBar(m.prog.Completed, m.prog.Total, 24)
	return fmt.Sprintf("%s %s\n%s %d/%d (%d%%) %s",
		title,
		ui.Muted.Render("— "+track.String()),
		ui.Key.Render("Progress:"),
		m.prog.Completed, m.prog.Total, m.prog.Percentage, bar)
}

func (m dayModel) renderTasks() string {
	if m.loading {
		return "Loading…\n"
	}
	if len(m.tasks) == 0 {
		return ui.Muted.Render("(no tasks)") + "\n"
	}
	var b strings.Builder
	for i, task := range m.tasks {
		cursor := "  "
		text := task.Text
		if i == m.selected {
			cursor = ui.SelectedRow.Render("> ")
			text = ui.SelectedRow.Render(text)
		} else if task.Done {
			text = ui.Muted.Render(text)
		}
		b.WriteString(cursor)
		b.WriteString(ui.Checkbox(task.Done))
		b.WriteString(" ")
		b.WriteString(text)
		if task.Type == storage.TaskCustom {
			b.WriteString(" " + ui.Muted.Render("(custom)"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m dayModel) renderFooter() string {
	keys := "←/→ day · t today · ↑/↓ move · space toggle · a add · d delete · F finish · C clear · q quit"
	return "\n" + m.lastLog + "\n" + ui.Dim.Render(keys)
}
