package render

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"quadnet/internal/label"
	"quadnet/internal/trainer"
)

// WriteTable prints one row per classified point.
func WriteTable(w io.Writer, classified []trainer.Classified) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"x", "y", "label", "confidence"})
	for _, c := range classified {
		table.Append([]string{
			strconv.FormatFloat(c.Point.X, 'f', 3, 64),
			strconv.FormatFloat(c.Point.Y, 'f', 3, 64),
			string(c.Predicted),
			strconv.FormatFloat(c.Confidence, 'f', 4, 64),
		})
	}
	table.Render()
}

// WriteSummary prints the number of points per predicted label, in label order.
func WriteSummary(w io.Writer, space label.Space, classified []trainer.Classified) {
	counts := make([]int, space.Len())
	for _, c := range classified {
		if idx, err := space.Index(c.Predicted); err == nil {
			counts[idx]++
		}
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"label", "points"})
	for i, l := range space.Labels() {
		table.Append([]string{string(l), strconv.Itoa(counts[i])})
	}
	table.Render()
}
