package compose

import (
	"github.com/smallbiznis/lockerdocs/internal/document/layout"
)

// Column is a table column anchored at a fixed x-offset. Cell text is written
// verbatim at the offset; no wrapping or truncation of long values.
type Column struct {
	Title string
	X     float64
}

// Table renders a header row plus separator and then data rows at a fixed
// pitch. The header and the first row are placed atomically on the same page;
// subsequent rows may split across pages. When MaxRows caps the output, the
// remainder is replaced by a single overflow note rather than dropped
// silently.
type Table struct {
	Columns  []Column
	RowPitch float64
	MaxRows  int
	Overflow func(hidden int) string
}

func (t Table) Render(cur *layout.Cursor, rows [][]string) error {
	headH := t.RowPitch + 2
	if err := cur.EnsureRoom(headH + t.RowPitch); err != nil {
		return err
	}

	geo := cur.Geometry()
	page := cur.Page()
	for _, col := range t.Columns {
		page.Append(layout.TextOp{
			Content: col.Title,
			X:       col.X,
			Y:       cur.Y(),
			Font:    fontFamily,
			Style:   "B",
			Size:    bodySize,
		})
	}
	ruleY := cur.Y() + 2
	page.Append(layout.LineOp{
		X1: geo.Margin.Left,
		Y1: ruleY,
		X2: geo.PageWidth - geo.Margin.Right,
		Y2: ruleY,
	})
	cur.Advance(headH)

	shown := rows
	hidden := 0
	if t.MaxRows > 0 && len(rows) > t.MaxRows {
		shown = rows[:t.MaxRows]
		hidden = len(rows) - t.MaxRows
	}

	for _, row := range shown {
		if err := cur.EnsureRoom(t.RowPitch); err != nil {
			return err
		}
		page = cur.Page()
		for i, cell := range row {
			if i >= len(t.Columns) {
				break
			}
			page.Append(layout.TextOp{
				Content: cell,
				X:       t.Columns[i].X,
				Y:       cur.Y(),
				Font:    fontFamily,
				Size:    bodySize,
			})
		}
		cur.Advance(t.RowPitch)
	}

	if hidden > 0 && t.Overflow != nil {
		if err := cur.EnsureRoom(t.RowPitch); err != nil {
			return err
		}
		cur.Page().Append(layout.TextOp{
			Content: t.Overflow(hidden),
			X:       t.Columns[0].X,
			Y:       cur.Y(),
			Font:    fontFamily,
			Style:   "I",
			Size:    bodySize,
		})
		cur.Advance(t.RowPitch)
	}
	return nil
}
