package layout

import "errors"

var (
	// ErrGeometry is returned when the configured margins leave no usable
	// writing area. This is a configuration error, not a runtime condition.
	ErrGeometry = errors.New("invalid_page_geometry")

	// ErrBlockOverflow is returned when an atomic block is taller than the
	// usable height of an empty page, so no page break can make it fit.
	ErrBlockOverflow = errors.New("block_exceeds_usable_height")
)

// Margins are the non-writable borders of a page, in the same unit as the
// page size (millimeters for the default geometry).
type Margins struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// Geometry describes the fixed page size and margins of a document.
type Geometry struct {
	PageWidth  float64
	PageHeight float64
	Margin     Margins
}

// A4 returns the default portrait A4 geometry used for contract documents.
func A4() Geometry {
	return Geometry{
		PageWidth:  210,
		PageHeight: 297,
		Margin:     Margins{Top: 20, Bottom: 20, Left: 15, Right: 15},
	}
}

// Usable returns the writable height between the top and bottom margins.
func (g Geometry) Usable() float64 {
	return g.PageHeight - g.Margin.Top - g.Margin.Bottom
}

// Limit returns the lowest Y a content op may be written at.
func (g Geometry) Limit() float64 {
	return g.PageHeight - g.Margin.Bottom
}

// Cursor owns the current vertical write position and page index of one
// composition. All content writes go through the cursor; it is the only
// component allowed to trigger page breaks, which keeps cursor Y monotonically
// non-decreasing within a page by construction.
type Cursor struct {
	geo Geometry
	buf *Buffer
	y   float64
	idx int
}

// NewCursor validates the geometry and binds a cursor to an empty buffer.
// The first page is created lazily on the first write.
func NewCursor(geo Geometry, buf *Buffer) (*Cursor, error) {
	if geo.Usable() <= 0 || geo.PageWidth <= geo.Margin.Left+geo.Margin.Right {
		return nil, ErrGeometry
	}
	return &Cursor{geo: geo, buf: buf, y: geo.Margin.Top, idx: -1}, nil
}

// Geometry returns the fixed page geometry the cursor operates in.
func (c *Cursor) Geometry() Geometry {
	return c.geo
}

// Y returns the current vertical write position.
func (c *Cursor) Y() float64 {
	return c.y
}

// PageIndex returns the index of the page the cursor is on, or -1 before the
// first write.
func (c *Cursor) PageIndex() int {
	return c.idx
}

// Page returns the page the cursor is on, creating the first page if no write
// has happened yet.
func (c *Cursor) Page() *Page {
	if c.idx < 0 {
		c.idx = c.buf.NewPage()
	}
	return c.buf.At(c.idx)
}

// Fits reports whether a block of the given height fits above the bottom
// margin at the current position, without mutating any state.
func (c *Cursor) Fits(height float64) bool {
	return c.y+height <= c.geo.Limit()
}

// Advance moves the cursor down by height. If the new position would cross
// the bottom margin, it breaks to a fresh page instead and returns the reset
// position at the top margin.
func (c *Cursor) Advance(height float64) float64 {
	if !c.Fits(height) {
		c.Break()
		return c.y
	}
	c.y += height
	return c.y
}

// Break finishes the current page and moves the cursor to the top margin of a
// fresh one. The finished page keeps a break marker at the end of its log.
func (c *Cursor) Break() {
	if c.idx >= 0 {
		c.buf.At(c.idx).Append(PageBreakOp{})
	}
	c.idx = c.buf.NewPage()
	c.y = c.geo.Margin.Top
}

// EnsureRoom guarantees that a block of the given height can be written
// without crossing the bottom margin, breaking to a new page when necessary.
// It fails with ErrBlockOverflow if the block cannot fit even on an empty
// page.
func (c *Cursor) EnsureRoom(height float64) error {
	if height > c.geo.Usable() {
		return ErrBlockOverflow
	}
	c.Page()
	if !c.Fits(height) {
		c.Break()
	}
	return nil
}
