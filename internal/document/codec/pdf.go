package codec

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/smallbiznis/lockerdocs/internal/document/layout"
)

// PDF replays draw instructions into a PDF document via fpdf. Coordinates are
// millimeters, matching the layout geometry; the compositor already resolved
// all pagination, so the codec disables fpdf's own page breaking.
type PDF struct {
	geo layout.Geometry
}

func NewPDF(geo layout.Geometry) *PDF {
	return &PDF{geo: geo}
}

func (p *PDF) ContentType() string {
	return "application/pdf"
}

func (p *PDF) Encode(pages []*layout.Page) ([]byte, error) {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: p.geo.PageWidth, Ht: p.geo.PageHeight},
	})
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(p.geo.Margin.Left, p.geo.Margin.Top, p.geo.Margin.Right)
	tr := doc.UnicodeTranslatorFromDescriptor("")

	for _, page := range pages {
		doc.AddPage()
		for _, op := range page.Ops {
			switch v := op.(type) {
			case layout.TextOp:
				p.drawText(doc, tr, v)
			case layout.LineOp:
				doc.Line(v.X1, v.Y1, v.X2, v.Y2)
			case layout.PageBreakOp:
				// Page boundaries are already explicit in the page list.
			}
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return buf.Bytes(), nil
}

func (p *PDF) drawText(doc *fpdf.Fpdf, tr func(string) string, op layout.TextOp) {
	doc.SetFont(op.Font, op.Style, op.Size)

	// TextOp Y is the top of the line; fpdf draws at the baseline.
	baseline := op.Y + op.Size*0.3528

	content := tr(op.Content)
	x := op.X
	switch op.Align {
	case layout.AlignCenter:
		x -= doc.GetStringWidth(content) / 2
	case layout.AlignRight:
		x -= doc.GetStringWidth(content)
	}
	doc.Text(x, baseline, content)
}
