package compose

import (
	"fmt"

	"github.com/smallbiznis/lockerdocs/internal/document/layout"
)

// stampFooters revisits every page after the forward pass and appends the
// footer pair: the page indicator, which needs the final page count, and the
// branding line. Footers are placed at absolute coordinates below the bottom
// margin and bypass the cursor entirely so they can never trigger a page
// break. A zero-page buffer is stamped zero times.
func stampFooters(buf *layout.Buffer, geo layout.Geometry, b BrandingView) {
	total := buf.Count()
	center := geo.PageWidth / 2
	y := geo.PageHeight - geo.Margin.Bottom + 8

	for i := 0; i < total; i++ {
		page := buf.At(i)
		page.Append(layout.TextOp{
			Content: fmt.Sprintf("Page %d of %d", i+1, total),
			X:       center,
			Y:       y,
			Font:    fontFamily,
			Size:    smallSize,
			Align:   layout.AlignCenter,
		})
		page.Append(layout.TextOp{
			Content: footerBrandingLine(b),
			X:       center,
			Y:       y + 4,
			Font:    fontFamily,
			Size:    smallSize - 1,
			Align:   layout.AlignCenter,
		})
	}
}

func footerBrandingLine(b BrandingView) string {
	line := b.Name
	if b.Address != "" {
		line += " · " + b.Address
	}
	if b.Phone != "" {
		line += " · " + b.Phone
	}
	return line
}
