package jobs

import (
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// displayLayerOffset shifts zero-based layers to one-based for display.
// Cosmetic only; all layer math is done on the zero-based values.
const displayLayerOffset = 1

// Row is one entry of the ordered execution table.
type Row struct {
	// Layer is the one-based display layer.
	Layer int
	// JobID is the job identifier.
	JobID string
	// Name is the job display name.
	Name string
}

// OrderedRows returns the execution table rows sorted by display layer,
// with ties broken by original input order.
func OrderedRows(s *Snapshot) []Row {
	rows := make([]Row, 0, len(s.Jobs))
	for _, job := range s.Jobs {
		rows = append(rows, Row{
			Layer: s.Layers[job.ID] + displayLayerOffset,
			JobID: job.ID,
			Name:  job.Name,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Layer < rows[j].Layer
	})

	return rows
}

// RenderTable renders the ordered execution table. When colored is true,
// rows are painted with their layer's palette color.
func RenderTable(s *Snapshot, colored bool) string {
	rows := OrderedRows(s)

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Layer", "Job ID", "Name"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.Layer, r.JobID, r.Name})
	}

	if colored {
		t.SetRowPainter(func(row table.Row) text.Colors {
			layer, ok := row[0].(int)
			if !ok {
				return nil
			}
			return text.Colors{layerTextColor(layer - displayLayerOffset)}
		})
	}

	return t.Render()
}
