package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rob-by06/workout-nutrition-tracker/internal/tracker"
)

func RunBoard(svc *tracker.Service, out io.Writer) error {
	m := newBoardModel(svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
