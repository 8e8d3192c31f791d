package layout

import "testing"

func TestBufferPagesKeepStableIndexes(t *testing.T) {
	buf := NewBuffer()
	for i := 0; i < 4; i++ {
		if idx := buf.NewPage(); idx != i {
			t.Fatalf("expected index %d, got %d", i, idx)
		}
	}
	if buf.Count() != 4 {
		t.Fatalf("expected 4 pages, got %d", buf.Count())
	}

	// Revisiting an earlier page must still be possible after later pages
	// were created, and appends must not disturb existing ops.
	buf.At(1).Append(TextOp{Content: "a"})
	buf.At(1).Append(TextOp{Content: "b"})
	buf.At(3).Append(TextOp{Content: "c"})

	page := buf.At(1)
	if len(page.Ops) != 2 {
		t.Fatalf("expected 2 ops on page 1, got %d", len(page.Ops))
	}
	if got := page.Ops[0].(TextOp).Content; got != "a" {
		t.Fatalf("expected first op to stay first, got %q", got)
	}
}

func TestEmptyBuffer(t *testing.T) {
	buf := NewBuffer()
	if buf.Count() != 0 {
		t.Fatalf("expected empty buffer, got %d pages", buf.Count())
	}
	if pages := buf.Pages(); len(pages) != 0 {
		t.Fatalf("expected no pages, got %d", len(pages))
	}
}
