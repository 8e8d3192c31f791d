package layout

import (
	"errors"
	"testing"
)

func TestNewCursorRejectsDegenerateMargins(t *testing.T) {
	geo := Geometry{
		PageWidth:  210,
		PageHeight: 100,
		Margin:     Margins{Top: 60, Bottom: 60, Left: 10, Right: 10},
	}
	if _, err := NewCursor(geo, NewBuffer()); !errors.Is(err, ErrGeometry) {
		t.Fatalf("expected ErrGeometry, got %v", err)
	}
}

func TestAdvanceBreaksAtBottomMargin(t *testing.T) {
	buf := NewBuffer()
	cur, err := NewCursor(A4(), buf)
	if err != nil {
		t.Fatalf("new cursor: %v", err)
	}
	cur.Page()

	limit := cur.Geometry().Limit()
	for cur.Y()+10 <= limit {
		cur.Advance(10)
	}
	if buf.Count() != 1 {
		t.Fatalf("expected 1 page before overflow, got %d", buf.Count())
	}

	y := cur.Advance(10)
	if buf.Count() != 2 {
		t.Fatalf("expected page break, got %d pages", buf.Count())
	}
	if y != cur.Geometry().Margin.Top {
		t.Fatalf("expected reset to top margin %v, got %v", cur.Geometry().Margin.Top, y)
	}
	if cur.PageIndex() != 1 {
		t.Fatalf("expected cursor on page 1, got %d", cur.PageIndex())
	}
}

func TestAdvanceIsMonotonicWithinPage(t *testing.T) {
	buf := NewBuffer()
	cur, err := NewCursor(A4(), buf)
	if err != nil {
		t.Fatalf("new cursor: %v", err)
	}
	cur.Page()

	prev := cur.Y()
	page := cur.PageIndex()
	for i := 0; i < 200; i++ {
		y := cur.Advance(7)
		if cur.PageIndex() == page && y < prev {
			t.Fatalf("cursor moved up within page %d: %v -> %v", page, prev, y)
		}
		prev = y
		page = cur.PageIndex()
	}
}

func TestFitsDoesNotMutate(t *testing.T) {
	buf := NewBuffer()
	cur, err := NewCursor(A4(), buf)
	if err != nil {
		t.Fatalf("new cursor: %v", err)
	}
	cur.Page()

	before := cur.Y()
	cur.Fits(1000)
	cur.Fits(1)
	if cur.Y() != before || buf.Count() != 1 {
		t.Fatalf("Fits mutated cursor state: y=%v pages=%d", cur.Y(), buf.Count())
	}
}

func TestEnsureRoomBreaksWhenBlockDoesNotFit(t *testing.T) {
	buf := NewBuffer()
	cur, err := NewCursor(A4(), buf)
	if err != nil {
		t.Fatalf("new cursor: %v", err)
	}
	cur.Page()
	for cur.Geometry().Limit()-cur.Y() > 15 {
		cur.Advance(10)
	}

	if err := cur.EnsureRoom(30); err != nil {
		t.Fatalf("ensure room: %v", err)
	}
	if buf.Count() != 2 {
		t.Fatalf("expected forced break, got %d pages", buf.Count())
	}
	if cur.Y() != cur.Geometry().Margin.Top {
		t.Fatalf("expected top margin after break, got %v", cur.Y())
	}
}

func TestEnsureRoomRejectsOversizedBlock(t *testing.T) {
	buf := NewBuffer()
	cur, err := NewCursor(A4(), buf)
	if err != nil {
		t.Fatalf("new cursor: %v", err)
	}
	if err := cur.EnsureRoom(cur.Geometry().Usable() + 1); !errors.Is(err, ErrBlockOverflow) {
		t.Fatalf("expected ErrBlockOverflow, got %v", err)
	}
}

func TestBreakMarksFinishedPage(t *testing.T) {
	buf := NewBuffer()
	cur, err := NewCursor(A4(), buf)
	if err != nil {
		t.Fatalf("new cursor: %v", err)
	}
	cur.Page()
	cur.Break()

	first := buf.At(0)
	if len(first.Ops) == 0 {
		t.Fatalf("expected break marker on finished page")
	}
	if _, ok := first.Ops[len(first.Ops)-1].(PageBreakOp); !ok {
		t.Fatalf("expected PageBreakOp at end of page 0, got %T", first.Ops[len(first.Ops)-1])
	}
}
