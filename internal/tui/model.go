package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rob-by06/workout-nutrition-tracker/internal/storage"
	"github.com/rob-by06/workout-nutrition-tracker/internal/tracker"
	"github.com/rob-by06/workout-nutrition-tracker/internal/ui"
)

type boardModel struct {
	svc *tracker.Service

	width  int
	height int

	day     storage.Date
	meals   []storage.MealEntry
	totals  tracker.DailyTotals
	session *storage.WorkoutSession
	trend   []tracker.DailyTotals

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	day     storage.Date
	meals   []storage.MealEntry
	totals  tracker.DailyTotals
	session *storage.WorkoutSession
	trend   []tracker.DailyTotals
	err     error
}

func newBoardModel(svc *tracker.Service) boardModel {
	return boardModel{
		svc:     svc,
		day:     storage.Today(),
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd(m.day)
}

func (m boardModel) loadCmd(day storage.Date) tea.Cmd {
	return func() tea.Msg {
		totals, err := m.svc.DayTotals(day)
		if err != nil {
			return loadedMsg{day: day, err: err}
		}
		trend, err := m.svc.ComputeTrend(day)
		if err != nil {
			return loadedMsg{day: day, err: err}
		}
		session, err := m.svc.Workouts().GetSession(day)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return loadedMsg{day: day, err: err}
		}
		return loadedMsg{
			day:     day,
			meals:   m.svc.Meals().ListMeals(day),
			totals:  totals,
			session: session,
			trend:   trend,
		}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		m.day = msg.day
		m.meals = msg.meals
		m.totals = msg.totals
		m.session = msg.session
		m.trend = msg.trend
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd(m.day)
		case "left", "h":
			day := m.day.AddDays(-1)
			m.loading = true
			m.lastLog = "Loading " + string(day) + "…"
			return m, m.loadCmd(day)
		case "right", "l":
			day := m.day.AddDays(1)
			m.loading = true
			m.lastLog = "Loading " + string(day) + "…"
			return m, m.loadCmd(day)
		case "t":
			m.loading = true
			m.lastLog = "Back to today…"
			return m, m.loadCmd(storage.Today())
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	left := m.renderDay()
	right := m.renderTrend()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 34
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 22 {
			leftW = 22
		}
	}

	linesLeft := strings.Split(left, "\n")
	linesRight := strings.Split(right, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	day := string(m.day)
	if m.day == storage.Today() {
		day += " (today)"
	}
	return fmt.Sprintf("FitTrack | %s | %.0f kcal / %.1f g protein", day, m.totals.TotalCalories, m.totals.TotalProtein)
}

func (m boardModel) renderDay() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, ui.H2.Render("Meals"))
	if len(m.meals) == 0 {
		out = append(out, ui.Muted.Render("(no meals logged)"))
	} else {
		for i, meal := range m.meals {
			out = append(out, fmt.Sprintf("[%d] %s %s %.0f g", i, meal.Time, meal.FoodName, meal.GramsConsumed))
		}
	}
	out = append(out, "")
	out = append(out, ui.H2.Render("Workout"))
	switch {
	case m.session == nil:
		out = append(out, ui.Muted.Render("(rest day)"))
	case len(m.session.Exercises) == 0:
		out = append(out, sessionTitle(m.session), ui.Muted.Render("(no exercises)"))
	default:
		out = append(out, sessionTitle(m.session))
		for _, ex := range m.session.Exercises {
			out = append(out, fmt.Sprintf("- %s %.1f kg × %d", ex.ExerciseName, ex.Weight, ex.Reps))
		}
	}
	out = append(out, "")
	out = append(out, ui.H2.Render("Keys"))
	out = append(out, "- ←/→ or h/l: change day")
	out = append(out, "- t: today")
	out = append(out, "- r: refresh")
	out = append(out, "- q: quit")
	return strings.Join(out, "\n")
}

func (m boardModel) renderTrend() string {
	if m.loading {
		return ""
	}
	var out []string
	out = append(out, ui.H2.Render("Calories (kcal)"))
	out = append(out, renderSeries(m.trend, func(p tracker.DailyTotals) float64 { return p.TotalCalories }, ui.CalBar.Render)...)
	out = append(out, "")
	out = append(out, ui.H2.Render("Protein (g)"))
	out = append(out, renderSeries(m.trend, func(p tracker.DailyTotals) float64 { return p.TotalProtein }, ui.ProtBar.Render)...)
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func sessionTitle(s *storage.WorkoutSession) string {
	if s.Name == "" {
		return "Session"
	}
	return s.Name
}

func renderSeries(series []tracker.DailyTotals, value func(tracker.DailyTotals) float64, style func(...string) string) []string {
	max := 0.0
	for _, p := range series {
		if v := value(p); v > max {
			max = v
		}
	}
	out := make([]string, 0, len(series))
	for _, p := range series {
		v := value(p)
		out = append(out, fmt.Sprintf("%s %s %.1f", ui.Muted.Render(string(p.Date)), style(ui.Bar(v, max, 20)), v))
	}
	return out
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
