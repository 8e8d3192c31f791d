package layout

// Align controls horizontal placement of a text op relative to its X anchor.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Op is a single draw instruction. Ops are immutable once appended to a page.
type Op interface {
	isOp()
}

// TextOp draws a string at an absolute position on the page.
type TextOp struct {
	Content string
	X       float64
	Y       float64
	Font    string
	Style   string
	Size    float64
	Align   Align
}

// LineOp draws a straight line between two absolute points.
type LineOp struct {
	X1, Y1 float64
	X2, Y2 float64
}

// PageBreakOp marks the point at which composition moved to the next page.
type PageBreakOp struct{}

func (TextOp) isOp()      {}
func (LineOp) isOp()      {}
func (PageBreakOp) isOp() {}

// Page is an ordered, append-only log of draw instructions. The forward pass
// appends content ops; finalization may append footer ops afterwards, but no op
// is ever mutated, removed or reordered.
type Page struct {
	Index int
	Ops   []Op
}

// Append adds an op to the end of the page's instruction log.
func (p *Page) Append(op Op) {
	p.Ops = append(p.Ops, op)
}
