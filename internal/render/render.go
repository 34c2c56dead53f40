package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/verte-zerg/olympus/internal/daylog"
	"github.com/verte-zerg/olympus/internal/model"
	"github.com/verte-zerg/olympus/internal/plates"
	"github.com/verte-zerg/olympus/internal/standards"
	"github.com/verte-zerg/olympus/internal/warmup"
)

var bandStyles = map[standards.Band]lipgloss.Style{
	standards.BandBelow:   lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
	standards.BandGood:    lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")),
	standards.BandGreat:   lipgloss.NewStyle().Foreground(lipgloss.Color("#1890FF")).Bold(true),
	standards.BandGodlike: lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true),
}

// Renderer writes tables to w.
type Renderer struct {
	w     io.Writer
	color bool
}

// New returns a Renderer. Bands are colored only when w is a terminal.
func New(w io.Writer) *Renderer {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isTerminal(f)
	}
	return &Renderer{w: w, color: color}
}

// Plan writes a warm-up plan.
func (r *Renderer) Plan(tpl warmup.Template, sets []warmup.PlannedSet, bar float64, unit model.Unit) error {
	header := fmt.Sprintf("%s  bar %s %s", tpl.Name, warmup.FormatWeight(bar), unit.Symbol())
	rows := make([][]string, len(sets))
	for i, s := range sets {
		rows[i] = []string{
			strconv.Itoa(s.Ordinal),
			string(s.Role),
			strconv.Itoa(s.Percent) + "%",
			s.Reps,
			warmup.FormatWeight(s.Target) + " " + unit.Symbol(),
			s.Plates.String(),
		}
	}
	lines := formatTable([]string{"#", "Set", "%", "Reps", "Weight", "Plates / side"}, rows, map[int]bool{0: true, 2: true, 4: true})
	return r.writeLines(append([]string{header}, lines...))
}

// Plates writes a single plate breakdown.
func (r *Renderer) Plates(target, bar float64, b plates.Breakdown, unit model.Unit) error {
	lines := []string{
		fmt.Sprintf("Target %s %s, bar %s %s", warmup.FormatWeight(target), unit.Symbol(), warmup.FormatWeight(bar), unit.Symbol()),
		"Per side: " + b.String(),
	}
	if loaded := b.Total(bar); !b.BarOnly() && loaded < target-plates.Epsilon {
		lines = append(lines, fmt.Sprintf("Loaded: %s %s (closest below target)", warmup.FormatWeight(loaded), unit.Symbol()))
	}
	return r.writeLines(lines)
}

// Standards writes classified results, or a hint when there are none.
func (r *Renderer) Standards(results []standards.Result, emptyHint string) error {
	if len(results) == 0 {
		return r.writeLines([]string{emptyHint})
	}
	rows := make([][]string, len(results))
	for i, res := range results {
		rows[i] = []string{res.Metric.Label, res.Value(), r.band(res.Band)}
	}
	return r.writeLines(formatTable([]string{"Standard", "Value", "Score"}, rows, map[int]bool{1: true}))
}

// Templates lists warm-up templates.
func (r *Renderer) Templates(tpls []warmup.Template) error {
	rows := make([][]string, len(tpls))
	for i, tpl := range tpls {
		steps := make([]string, len(tpl.Steps))
		for j, st := range tpl.Steps {
			steps[j] = fmt.Sprintf("%d%%×%s", int(math.Round(st.Fraction*100)), st.Reps)
		}
		rows[i] = []string{tpl.Key, tpl.Name, strings.Join(steps, "  ")}
	}
	return r.writeLines(formatTable([]string{"Key", "Name", "Steps"}, rows, nil))
}

// History writes one block per record, newest first as given.
func (r *Renderer) History(h daylog.History) error {
	if len(h) == 0 {
		return r.writeLines([]string{"No workouts logged yet."})
	}
	var lines []string
	for i, rec := range h {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, fmt.Sprintf("%s  %s  (%s)", rec.Date.Local().Format("2006-01-02 15:04"), strings.ToUpper(string(rec.Day)), rec.Unit.Symbol()))
		for _, ex := range rec.Exercises {
			lines = append(lines, "  "+exerciseLine(ex, rec.Unit))
		}
	}
	return r.writeLines(lines)
}

// Exercise writes the sets of one exercise.
func (r *Renderer) Exercise(ex model.ExerciseEntry, unit model.Unit) error {
	rows := make([][]string, len(ex.Sets))
	for i, s := range ex.Sets {
		rows[i] = []string{strconv.Itoa(s.Ordinal), roleLabel(s.Role), warmup.FormatWeight(s.Weight) + " " + unit.Symbol(), strconv.Itoa(s.Reps)}
	}
	lines := append([]string{ex.Name}, formatTable([]string{"Set", "Type", "Weight", "Reps"}, rows, map[int]bool{0: true, 2: true, 3: true})...)
	if ex.Notes != "" {
		lines = append(lines, "Notes: "+ex.Notes)
	}
	return r.writeLines(lines)
}

func exerciseLine(ex model.ExerciseEntry, unit model.Unit) string {
	parts := make([]string, len(ex.Sets))
	for i, s := range ex.Sets {
		parts[i] = fmt.Sprintf("%s%s×%d", warmup.FormatWeight(s.Weight), unit.Symbol(), s.Reps)
	}
	line := ex.Name
	if len(parts) > 0 {
		line += ": " + strings.Join(parts, ", ")
	}
	if ex.Notes != "" {
		line += "  [" + ex.Notes + "]"
	}
	return line
}

func roleLabel(role model.SetRole) string {
	if role == model.RoleUnset {
		return "-"
	}
	return string(role)
}

func (r *Renderer) band(b standards.Band) string {
	if !r.color {
		return b.String()
	}
	return bandStyles[b].Render(b.String())
}

func (r *Renderer) writeLines(lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// ChartWidth is the number of chart columns that fit the writer's terminal,
// or a fixed width when w is not a terminal.
func (r *Renderer) ChartWidth() int {
	const fallback = 60
	f, ok := r.w.(*os.File)
	if !ok || !isTerminal(f) {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return max(width-16, minChartWidth)
}

func isTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
