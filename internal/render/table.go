// Package render draws a LocalizedView as a plain-text table for the CLI
// surface.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/koldex/weatherview/internal/view"
)

// Table writes the view as an aligned text table. Column widths are computed
// with runewidth since the Finnish labels and descriptions are not ASCII.
func Table(w io.Writer, v view.LocalizedView) error {
	rows := make([][]string, 0, len(v.Rows)+1)
	rows = append(rows, formatRow(v.Current))
	for _, e := range v.Rows {
		rows = append(rows, formatRow(e))
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if rw := runewidth.StringWidth(cell); rw > widths[i] {
				widths[i] = rw
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s — %s\n", v.City, v.FetchedAt.Format("2.1.2006 15:04"))
	for _, row := range rows {
		for i, cell := range row {
			b.WriteString(cell)
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)+2))
			}
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func formatRow(e view.Entry) []string {
	return []string{
		e.Label,
		e.Time.Format("15:04"),
		fmt.Sprintf("%.1f°C", e.Temperature),
		fmt.Sprintf("%d %%", e.Humidity),
		fmt.Sprintf("%.1f m/s", e.WindSpeed),
		e.Description,
	}
}
