package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nazish-kiran/planify/internal/planner"
)

// RunDay opens the interactive day board for the given date.
func RunDay(svc *planner.Service, date time.Time, out io.Writer) error {
	m := newDayModel(svc, date)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
