package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/olympus/internal/editor"
	"github.com/verte-zerg/olympus/internal/model"
	"github.com/verte-zerg/olympus/internal/timer"
)

const (
	weightWidth = 8
	repsWidth   = 5
	roleWidth   = 9
)

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	activeDayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true).Underline(true)
	dayStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	optionalStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Italic(true)
	notesStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E")).Italic(true)
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Underline(true)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// View implements tea.Model.
func (m *Model) View() string {
	var lines []string
	lines = append(lines, m.renderHeader(), "")
	lines = append(lines, m.renderCards()...)
	lines = append(lines, "")
	if m.editing != editNone {
		lines = append(lines, m.input.View())
	}
	if line := m.renderStatus(); line != "" {
		lines = append(lines, line)
	}
	if m.showHelp {
		lines = append(lines, m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		lines = append(lines, m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	content := strings.Join(lines, "\n")
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, content)
}

func (m *Model) renderHeader() string {
	tabs := make([]string, len(m.days))
	for i, d := range m.days {
		label := strings.ToUpper(string(d))
		if i == m.dayIdx {
			tabs[i] = activeDayStyle.Render(label)
		} else {
			tabs[i] = dayStyle.Render(label)
		}
	}
	workout := "Workout " + timer.FormatClock(m.workout.Elapsed())
	if !m.workout.Running() {
		workout += " (paused)"
	}
	rest := "Rest " + timer.FormatClock(m.rest.Remaining())
	if !m.rest.Running() {
		rest += " (stopped)"
	}
	segments := []string{
		titleStyle.Render("Olympus"),
		strings.Join(tabs, " "),
		footerStyle.Render(m.editor.Unit().Symbol()),
		footerStyle.Render(workout),
		footerStyle.Render(rest),
	}
	return strings.Join(segments, "  ")
}

func (m *Model) renderCards() []string {
	st := m.state()
	current, hasCursor := m.position()
	unit := m.editor.Unit()

	var lines []string
	for ci, card := range st.Cards {
		name := card.Name
		if strings.TrimSpace(name) == "" {
			name = "(unnamed exercise)"
		}
		header := cardStyle.Render(name)
		if model.IsOptionalName(card.Name) {
			header = optionalStyle.Render(name)
		}
		prefix := "  "
		if hasCursor && current.card == ci && current.row < 0 {
			prefix = "> "
		}
		lines = append(lines, prefix+header)
		if card.Notes != "" {
			lines = append(lines, "    "+notesStyle.Render(card.Notes))
		}
		for ri, row := range card.Rows {
			selected := hasCursor && current.card == ci && current.row == ri
			lines = append(lines, m.renderRow(row, unit, selected))
		}
	}
	return lines
}

func (m *Model) renderRow(row editor.Row, unit model.Unit, selected bool) string {
	cells := []struct {
		f     field
		value string
		width int
		empty string
	}{
		{fieldWeight, row.Weight, weightWidth, "—"},
		{fieldReps, row.Reps, repsWidth, "—"},
		{fieldRole, string(row.Role), roleWidth, "-"},
	}
	parts := make([]string, 0, len(cells)+1)
	parts = append(parts, fmt.Sprintf("%2d.", row.Ordinal))
	for _, c := range cells {
		value := c.value
		style := lipgloss.NewStyle()
		if value == "" {
			value = c.empty
			style = pendingStyle
		}
		if c.f == fieldWeight && c.value != "" {
			value += " " + unit.Symbol()
		}
		value = padRight(value, c.width)
		if selected && m.field == c.f {
			style = selectedStyle
		}
		parts = append(parts, style.Render(value))
	}
	prefix := "    "
	if selected {
		prefix = "  > "
	}
	complete := ""
	if editor.ParseRow(row).Complete() {
		complete = statusStyle.Render("✓")
	}
	return prefix + strings.Join(parts, " ") + " " + complete
}

func (m *Model) renderStatus() string {
	if m.errMsg != "" {
		return errorStyle.Render(m.errMsg)
	}
	if m.status != "" {
		return statusStyle.Render(m.status)
	}
	return ""
}

func padRight(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
