package compose

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/smallbiznis/lockerdocs/internal/document/layout"
)

func testInput(paymentCount int) Input {
	paid := int64(40000)
	in := Input{
		Contract: ContractView{
			ID:              "1874561023412932608",
			MemberName:      "Ayşe Demir",
			MemberPhone:     "+90 532 000 11 22",
			MemberEmail:     "ayse@example.com",
			PlanID:          "premium",
			StartDate:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:         time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
			KioskID:         "KIOSK-03",
			LockerID:        "L-214",
			RFIDCard:        "04:A2:19:7F",
			BackupCard:      "04:A2:19:80",
			PriceAmount:     100000,
			TotalPaidAmount: &paid,
		},
		Options: Options{
			Branding: BrandingView{
				Name:    "Smallbiznis Locker Rooms",
				Address: "Örnek Cad. 12, İstanbul",
				Phone:   "+90 212 000 00 00",
				Email:   "info@example.com",
			},
			GeneratedAt: time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
		},
	}
	for i := 0; i < paymentCount; i++ {
		in.Payments = append(in.Payments, PaymentView{
			PaidAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i*7),
			Method:    "card",
			Amount:    5000,
			Reference: fmt.Sprintf("REF-%02d", i),
		})
	}
	return in
}

func boolPtr(v bool) *bool { return &v }

func textOps(pages []*layout.Page) []layout.TextOp {
	var ops []layout.TextOp
	for _, page := range pages {
		for _, op := range page.Ops {
			if text, ok := op.(layout.TextOp); ok {
				ops = append(ops, text)
			}
		}
	}
	return ops
}

func countContaining(pages []*layout.Page, substr string) int {
	n := 0
	for _, op := range textOps(pages) {
		if strings.Contains(op.Content, substr) {
			n++
		}
	}
	return n
}

func TestComposeSinglePageFooter(t *testing.T) {
	in := testInput(0)
	in.Options.IncludeTerms = boolPtr(false)

	art, err := New(layout.A4()).Compose(in)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if art.PageCount != 1 {
		t.Fatalf("expected single page, got %d", art.PageCount)
	}
	if got := countContaining(art.Pages, "Page 1 of 1"); got != 1 {
		t.Fatalf("expected exactly one footer indicator, got %d", got)
	}
	if got := countContaining(art.Pages, "Smallbiznis Locker Rooms"); got < 2 {
		t.Fatalf("expected branding in header and footer, got %d occurrences", got)
	}
}

func TestComposeStampsEveryPage(t *testing.T) {
	art, err := New(layout.A4()).Compose(testInput(5))
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if art.PageCount < 2 {
		t.Fatalf("expected multi-page document with terms enabled, got %d", art.PageCount)
	}
	for i, page := range art.Pages {
		want := fmt.Sprintf("Page %d of %d", i+1, art.PageCount)
		got := 0
		for _, op := range page.Ops {
			if text, ok := op.(layout.TextOp); ok && text.Content == want {
				got++
			}
		}
		if got != 1 {
			t.Fatalf("page %d: expected exactly one %q stamp, got %d", i, want, got)
		}
	}
}

func TestPaymentTruncation(t *testing.T) {
	in := testInput(14)
	in.Options.IncludePayments = true

	art, err := New(layout.A4()).Compose(in)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	shown := countContaining(art.Pages, "REF-")
	if shown != maxPaymentRows {
		t.Fatalf("expected %d payment rows, got %d", maxPaymentRows, shown)
	}
	if got := countContaining(art.Pages, "REF-10"); got != 0 {
		t.Fatalf("row beyond the cap leaked into the document")
	}
	if got := countContaining(art.Pages, "... and 4 more payments"); got != 1 {
		t.Fatalf("expected exactly one overflow note, got %d", got)
	}
}

func TestShortPaymentListHasNoOverflowNote(t *testing.T) {
	in := testInput(3)
	in.Options.IncludePayments = true

	art, err := New(layout.A4()).Compose(in)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if got := countContaining(art.Pages, "REF-"); got != 3 {
		t.Fatalf("expected 3 payment rows, got %d", got)
	}
	if got := countContaining(art.Pages, "more payments"); got != 0 {
		t.Fatalf("unexpected overflow note for short list")
	}
}

func TestPaymentsOmittedWhenFlagUnset(t *testing.T) {
	in := testInput(5)
	in.Options.IncludePayments = false

	art, err := New(layout.A4()).Compose(in)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if got := countContaining(art.Pages, "Payment History"); got != 0 {
		t.Fatalf("payment section rendered despite flag unset")
	}
}

func TestUnknownPlanFallsBack(t *testing.T) {
	in := testInput(0)
	in.Contract.PlanID = "student-2024"

	art, err := New(layout.A4()).Compose(in)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if got := countContaining(art.Pages, "STUDENT-2024"); got != 1 {
		t.Fatalf("expected upper-cased plan echo, got %d occurrences", got)
	}
	if got := countContaining(art.Pages, "Towel and laundry"); got != 0 {
		t.Fatalf("unknown plan must not inherit feature lines")
	}
}

func TestRemainingBalanceRendering(t *testing.T) {
	in := testInput(0)
	art, err := New(layout.A4()).Compose(in)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if got := countContaining(art.Pages, "Remaining Balance"); got != 1 {
		t.Fatalf("expected a remaining balance row, got %d matches", got)
	}
	if got := countContaining(art.Pages, "₺600.00"); got != 1 {
		t.Fatalf("expected remaining amount ₺600.00, got %d matches", got)
	}

	fullyPaid := testInput(0)
	full := int64(100000)
	fullyPaid.Contract.TotalPaidAmount = &full
	art, err = New(layout.A4()).Compose(fullyPaid)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if got := countContaining(art.Pages, "Remaining Balance"); got != 0 {
		t.Fatalf("fully paid contract must not render a remaining balance")
	}
}

func TestTermsStartFreshPageAndReducePageCountWhenDisabled(t *testing.T) {
	withTerms, err := New(layout.A4()).Compose(testInput(0))
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	termsPage := -1
	for _, page := range withTerms.Pages {
		for _, op := range page.Ops {
			if text, ok := op.(layout.TextOp); ok && text.Content == "Terms and Conditions" {
				termsPage = page.Index
				if text.Y != layout.A4().Margin.Top {
					t.Fatalf("terms heading not at top margin: y=%v", text.Y)
				}
			}
		}
	}
	if termsPage < 1 {
		t.Fatalf("expected terms on a fresh page after page 0, got page %d", termsPage)
	}

	in := testInput(0)
	in.Options.IncludeTerms = boolPtr(false)
	withoutTerms, err := New(layout.A4()).Compose(in)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if withoutTerms.PageCount >= withTerms.PageCount {
		t.Fatalf("disabling terms should reduce page count: %d vs %d",
			withoutTerms.PageCount, withTerms.PageCount)
	}
	if got := countContaining(withoutTerms.Pages, "Terms and Conditions"); got != 0 {
		t.Fatalf("terms rendered despite explicit opt-out")
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	first, err := New(layout.A4()).Compose(testInput(12))
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	second, err := New(layout.A4()).Compose(testInput(12))
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if !reflect.DeepEqual(first.Pages, second.Pages) {
		t.Fatalf("identical input produced different instruction sequences")
	}
}

func TestMissingMemberNameFailsFast(t *testing.T) {
	in := testInput(0)
	in.Contract.MemberName = "   "

	d := New(layout.A4())
	if _, err := d.Compose(in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if d.State() != StateFailed {
		t.Fatalf("expected Failed state, got %v", d.State())
	}
	if d.Err() == nil {
		t.Fatalf("failed compositor must carry its error")
	}
}

func TestCompositorIsSingleUse(t *testing.T) {
	d := New(layout.A4())
	if _, err := d.Compose(testInput(0)); err != nil {
		t.Fatalf("compose: %v", err)
	}
	if d.State() != StateComplete {
		t.Fatalf("expected Complete, got %v", d.State())
	}
	if _, err := d.Compose(testInput(0)); !errors.Is(err, ErrSpent) {
		t.Fatalf("expected ErrSpent on reuse, got %v", err)
	}
}

func TestStampFootersToleratesZeroPages(t *testing.T) {
	buf := layout.NewBuffer()
	stampFooters(buf, layout.A4(), BrandingView{Name: "x"})
	if buf.Count() != 0 {
		t.Fatalf("stamping must not create pages, got %d", buf.Count())
	}
}
