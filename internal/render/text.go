package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteText prints the status line followed by the table rows aligned in
// columns. Header cells are upper-cased; image cells print their asset path.
func WriteText(w io.Writer, status string, rows [][]Cell) error {
	if status != "" {
		if _, err := fmt.Fprintln(w, status); err != nil {
			return err
		}
	}
	if len(rows) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, row := range rows {
		fields := make([]string, len(row))
		for i, cell := range row {
			text := cell.String()
			if cell.Header {
				text = strings.ToUpper(text)
			}
			fields[i] = text
		}
		if _, err := fmt.Fprintln(tw, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}
