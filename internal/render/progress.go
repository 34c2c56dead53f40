package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/verte-zerg/olympus/internal/daylog"
	"github.com/verte-zerg/olympus/internal/model"
	"github.com/verte-zerg/olympus/internal/warmup"
)

const (
	defaultChartHeight = 8
	minChartWidth      = 10
	axisSeparator      = " │ "
)

// Progress draws the heaviest set per session as a braille line chart.
// width is the number of chart columns, excluding the axis.
func (r *Renderer) Progress(name string, points []daylog.Point, unit model.Unit, width int) error {
	if len(points) == 0 {
		return r.writeLines([]string{fmt.Sprintf("No sets logged for %s.", name)})
	}
	if width < minChartWidth {
		width = minChartWidth
	}
	height := defaultChartHeight

	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Weight
	}
	lo, hi := minMax(values)
	top, bottom := hi, lo
	if math.Abs(hi-lo) < 1e-9 {
		lo--
		hi++
	}

	cells := make([][]uint8, height)
	for y := range cells {
		cells[y] = make([]uint8, width)
	}
	prevX, prevY := -1, -1
	for x, v := range resample(values, width) {
		px, py := x*2, valueToRow(v, lo, hi, height*4)
		if prevX >= 0 {
			drawLine(prevX, prevY, px, py, func(dx, dy int) { setDot(cells, dx, dy) })
		} else {
			setDot(cells, px, py)
		}
		prevX, prevY = px, py
	}

	topLabel := warmup.FormatWeight(top) + " " + unit.Symbol()
	bottomLabel := warmup.FormatWeight(bottom) + " " + unit.Symbol()
	labelWidth := max(displayWidth(topLabel), displayWidth(bottomLabel))

	first, last := points[0], points[len(points)-1]
	lines := []string{fmt.Sprintf("%s: %d sessions, %s → %s", name, len(points), setLabel(first, unit), setLabel(last, unit))}
	for y, row := range cells {
		label := ""
		switch y {
		case 0:
			label = topLabel
		case height - 1:
			label = bottomLabel
		}
		var b strings.Builder
		b.WriteString(padCell(label, labelWidth, true))
		b.WriteString(axisSeparator)
		for _, mask := range row {
			b.WriteRune(rune(0x2800 + int(mask)))
		}
		lines = append(lines, b.String())
	}
	lines = append(lines, strings.Repeat(" ", labelWidth+displayWidth(axisSeparator))+
		dateAxis(first.Date.Local().Format("2006-01-02"), last.Date.Local().Format("2006-01-02"), width))
	return r.writeLines(lines)
}

func setLabel(p daylog.Point, unit model.Unit) string {
	return fmt.Sprintf("%s%s×%d", warmup.FormatWeight(p.Weight), unit.Symbol(), p.Reps)
}

func dateAxis(from, to string, width int) string {
	gap := width - len(from) - len(to)
	if gap < 1 {
		return from
	}
	return from + strings.Repeat(" ", gap) + to
}

func minMax(values []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// resample stretches or averages values into exactly width points.
func resample(values []float64, width int) []float64 {
	out := make([]float64, width)
	switch {
	case len(values) == 1 || width == 1:
		for i := range out {
			out[i] = values[0]
		}
	case len(values) > width:
		for i := range out {
			start := i * len(values) / width
			end := max((i+1)*len(values)/width, start+1)
			var sum float64
			for _, v := range values[start:end] {
				sum += v
			}
			out[i] = sum / float64(end-start)
		}
	default:
		for i := range out {
			pos := float64(i) * float64(len(values)-1) / float64(width-1)
			idx := int(pos)
			if idx >= len(values)-1 {
				out[i] = values[len(values)-1]
				continue
			}
			frac := pos - float64(idx)
			out[i] = values[idx]*(1-frac) + values[idx+1]*frac
		}
	}
	return out
}

func valueToRow(v, lo, hi float64, rows int) int {
	pos := (v - lo) / (hi - lo)
	row := int(math.Round((1 - pos) * float64(rows-1)))
	return min(max(row, 0), rows-1)
}

// drawLine walks Bresenham's line from (x0, y0) to (x1, y1).
func drawLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx, sx := abs(x1-x0), 1
	if x0 > x1 {
		sx = -1
	}
	dy, sy := -abs(y1-y0), 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// brailleBits maps a dot at (x%2, y%4) inside a cell to its bit.
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

func setDot(cells [][]uint8, x, y int) {
	cy, cx := y/4, x/2
	if x < 0 || y < 0 || cy >= len(cells) || cx >= len(cells[cy]) {
		return
	}
	cells[cy][cx] |= brailleBits[x%2][y%4]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
