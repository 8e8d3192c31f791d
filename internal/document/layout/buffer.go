package layout

// Buffer holds the ordered pages of one in-flight composition. Pages are
// created, never deleted or merged; every page keeps its index for the
// lifetime of the buffer so finalization can revisit it.
type Buffer struct {
	pages []*Page
}

// NewBuffer returns an empty page buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// NewPage appends a fresh page and returns its index.
func (b *Buffer) NewPage() int {
	page := &Page{Index: len(b.pages)}
	b.pages = append(b.pages, page)
	return page.Index
}

// At returns page i. It panics on an out-of-range index, which indicates a
// compositor bug rather than a runtime condition.
func (b *Buffer) At(i int) *Page {
	return b.pages[i]
}

// Count returns the number of pages. The value is provisional until the
// forward pass has completed; only finalization may treat it as the total.
func (b *Buffer) Count() int {
	return len(b.pages)
}

// Pages returns the underlying page slice in index order.
func (b *Buffer) Pages() []*Page {
	return b.pages
}
