// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/typesprint/internal/model"
)

// RenderResults prints an aligned results table followed by the performance message.
func RenderResults(w io.Writer, r model.Results) error {
	if _, err := fmt.Fprintln(w, "Results"); err != nil {
		return err
	}
	rows := [][]string{
		{"Finished", string(r.Reason)},
		{"Time", fmt.Sprintf("%ds", r.ElapsedSeconds)},
		{"WPM", strconv.Itoa(r.WPM)},
		{"Accuracy", fmt.Sprintf("%d%%", r.Accuracy)},
		{"Errors", strconv.Itoa(r.Errors)},
		{"Characters", strconv.Itoa(r.TotalTyped)},
	}
	lines := formatRows(rows, map[int]bool{1: true})
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if r.Message != "" {
		if _, err := fmt.Fprintln(w, r.Message); err != nil {
			return err
		}
	}
	return nil
}

// formatRows pads every column to its widest cell.
func formatRows(rows [][]string, rightAlignCols map[int]bool) []string {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var b strings.Builder
		for i, width := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if i > 0 {
				b.WriteString("  ")
			}
			pad := strings.Repeat(" ", width-runewidth.StringWidth(cell))
			if rightAlignCols[i] {
				b.WriteString(pad + cell)
			} else {
				b.WriteString(cell + pad)
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}
