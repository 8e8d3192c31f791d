package compose

import (
	"fmt"

	"github.com/smallbiznis/lockerdocs/internal/document/layout"
)

const (
	fontFamily = "Helvetica"

	titleSize   = 16.0
	headingSize = 12.0
	bodySize    = 10.0
	smallSize   = 8.0

	lineH    = 5.5
	rowPitch = 6.0

	// X anchor of the right column in the details section.
	detailsRightX = 115.0

	dateLayout = "02.01.2006"
)

const maxPaymentRows = 10

type renderer struct {
	cur *layout.Cursor
	in  Input
}

func (r *renderer) text(content string, x float64, style string, size float64, align layout.Align) {
	r.cur.Page().Append(layout.TextOp{
		Content: content,
		X:       x,
		Y:       r.cur.Y(),
		Font:    fontFamily,
		Style:   style,
		Size:    size,
		Align:   align,
	})
}

func (r *renderer) rule() {
	geo := r.cur.Geometry()
	r.cur.Page().Append(layout.LineOp{
		X1: geo.Margin.Left,
		Y1: r.cur.Y(),
		X2: geo.PageWidth - geo.Margin.Right,
		Y2: r.cur.Y(),
	})
}

func (r *renderer) left() float64 {
	return r.cur.Geometry().Margin.Left
}

func (r *renderer) right() float64 {
	geo := r.cur.Geometry()
	return geo.PageWidth - geo.Margin.Right
}

func (r *renderer) header() error {
	b := r.in.Options.Branding
	if err := r.cur.EnsureRoom(3*lineH + 3); err != nil {
		return err
	}
	r.text(b.Name, r.left(), "B", headingSize, layout.AlignLeft)
	r.text(contactLine(b), r.right(), "", smallSize, layout.AlignRight)
	r.cur.Advance(lineH)
	if b.Address != "" {
		r.text(b.Address, r.left(), "", smallSize, layout.AlignLeft)
	}
	r.cur.Advance(lineH)
	r.rule()
	r.cur.Advance(lineH + 3)
	return nil
}

func (r *renderer) title() error {
	if err := r.cur.EnsureRoom(2*lineH + 4); err != nil {
		return err
	}
	geo := r.cur.Geometry()
	center := geo.PageWidth / 2
	r.text("MEMBERSHIP CONTRACT", center, "B", titleSize, layout.AlignCenter)
	r.cur.Advance(lineH + 2)
	meta := fmt.Sprintf("Contract No: %s    Issued: %s",
		r.in.Contract.ID, r.in.Options.GeneratedAt.Format(dateLayout))
	r.text(meta, center, "", smallSize, layout.AlignCenter)
	r.cur.Advance(lineH + 2)
	return nil
}

func (r *renderer) memberInfo() error {
	c := r.in.Contract
	lines := []string{
		"Member: " + c.MemberName,
		"Phone: " + c.MemberPhone,
	}
	if c.MemberEmail != "" {
		lines = append(lines, "Email: "+c.MemberEmail)
	}

	block := float64(len(lines))*lineH + lineH + 2
	if err := r.cur.EnsureRoom(block); err != nil {
		return err
	}
	r.text("Member Information", r.left(), "B", headingSize, layout.AlignLeft)
	r.cur.Advance(lineH)
	for _, line := range lines {
		r.text(line, r.left(), "", bodySize, layout.AlignLeft)
		r.cur.Advance(lineH)
	}
	r.cur.Advance(2)
	return nil
}

// details renders the plan column and the assignment column side by side at
// fixed offsets. The whole block is reserved atomically so the two columns
// always land on the same page.
func (r *renderer) details() error {
	c := r.in.Contract
	plan := LookupPlan(c.PlanID)

	leftLines := []string{
		"Plan: " + plan.Title,
		"Start Date: " + c.StartDate.Format(dateLayout),
		"End Date: " + c.EndDate.Format(dateLayout),
	}
	for _, feature := range plan.Features {
		leftLines = append(leftLines, "  - "+feature)
	}

	rightLines := []string{
		"Kiosk: " + c.KioskID,
		"Locker: " + c.LockerID,
		"RFID Card: " + c.RFIDCard,
	}
	if c.BackupCard != "" {
		rightLines = append(rightLines, "Backup Card: "+c.BackupCard)
	}

	rows := len(leftLines)
	if len(rightLines) > rows {
		rows = len(rightLines)
	}
	block := lineH + float64(rows)*lineH + 2
	if err := r.cur.EnsureRoom(block); err != nil {
		return err
	}

	r.text("Contract Details", r.left(), "B", headingSize, layout.AlignLeft)
	r.cur.Advance(lineH)

	startY := r.cur.Y()
	page := r.cur.Page()
	for i, line := range leftLines {
		page.Append(layout.TextOp{
			Content: line, X: r.left(), Y: startY + float64(i)*lineH,
			Font: fontFamily, Size: bodySize,
		})
	}
	for i, line := range rightLines {
		page.Append(layout.TextOp{
			Content: line, X: detailsRightX, Y: startY + float64(i)*lineH,
			Font: fontFamily, Size: bodySize,
		})
	}
	r.cur.Advance(float64(rows)*lineH + 2)
	return nil
}

func (r *renderer) pricing() error {
	c := r.in.Contract
	symbol := r.in.Options.symbol()

	rows := [][]string{
		{"Total Contract Value", formatAmount(symbol, c.PriceAmount)},
	}
	if c.TotalPaidAmount != nil {
		rows = append(rows, []string{"Total Paid", formatAmount(symbol, *c.TotalPaidAmount)})
		if *c.TotalPaidAmount < c.PriceAmount {
			remaining := c.PriceAmount - *c.TotalPaidAmount
			rows = append(rows, []string{"Remaining Balance", formatAmount(symbol, remaining)})
		}
	}

	// Pricing is small; reserve heading, header row and all data rows as one
	// block so it never splits.
	block := lineH + 1 + (rowPitch + 2) + float64(len(rows))*rowPitch + 2
	if err := r.cur.EnsureRoom(block); err != nil {
		return err
	}
	r.text("Pricing", r.left(), "B", headingSize, layout.AlignLeft)
	r.cur.Advance(lineH + 1)

	left := r.left()
	table := Table{
		Columns: []Column{
			{Title: "Item", X: left},
			{Title: "Amount", X: left + 95},
		},
		RowPitch: rowPitch,
	}
	if err := table.Render(r.cur, rows); err != nil {
		return err
	}
	r.cur.Advance(2)
	return nil
}

func (r *renderer) payments() error {
	if err := r.cur.EnsureRoom(lineH + rowPitch*2 + 2); err != nil {
		return err
	}
	r.text("Payment History", r.left(), "B", headingSize, layout.AlignLeft)
	r.cur.Advance(lineH + 1)

	left := r.left()
	table := Table{
		Columns: []Column{
			{Title: "Date", X: left},
			{Title: "Method", X: left + 45},
			{Title: "Amount", X: left + 95},
			{Title: "Reference", X: left + 130},
		},
		RowPitch: rowPitch,
		MaxRows:  maxPaymentRows,
		Overflow: func(hidden int) string {
			return fmt.Sprintf("... and %d more payments", hidden)
		},
	}

	symbol := r.in.Options.symbol()
	rows := make([][]string, 0, len(r.in.Payments))
	for _, p := range r.in.Payments {
		rows = append(rows, []string{
			p.PaidAt.Format(dateLayout),
			p.Method,
			formatAmount(symbol, p.Amount),
			p.Reference,
		})
	}
	if err := table.Render(r.cur, rows); err != nil {
		return err
	}
	r.cur.Advance(2)
	return nil
}

func (r *renderer) terms() error {
	// Terms always open a fresh page regardless of remaining space.
	r.cur.Page()
	r.cur.Break()

	r.text("Terms and Conditions", r.left(), "B", headingSize, layout.AlignLeft)
	r.cur.Advance(lineH + 2)

	for i, paragraph := range termsParagraphs {
		for _, line := range paragraph {
			if err := r.cur.EnsureRoom(lineH); err != nil {
				return err
			}
			r.text(line, r.left(), "", bodySize, layout.AlignLeft)
			r.cur.Advance(lineH)
		}
		if i < len(termsParagraphs)-1 {
			r.cur.Advance(lineH / 2)
		}
	}
	r.cur.Advance(2)
	return nil
}

func (r *renderer) signature() error {
	block := 4*lineH + 14
	if err := r.cur.EnsureRoom(block); err != nil {
		return err
	}
	r.cur.Advance(12)

	geo := r.cur.Geometry()
	page := r.cur.Page()
	y := r.cur.Y()
	memberX1 := geo.Margin.Left
	memberX2 := memberX1 + 60
	companyX2 := geo.PageWidth - geo.Margin.Right
	companyX1 := companyX2 - 60

	page.Append(layout.LineOp{X1: memberX1, Y1: y, X2: memberX2, Y2: y})
	page.Append(layout.LineOp{X1: companyX1, Y1: y, X2: companyX2, Y2: y})
	r.cur.Advance(lineH)

	r.text("Member Signature", memberX1, "", smallSize, layout.AlignLeft)
	r.text(r.in.Options.Branding.Name, companyX2, "", smallSize, layout.AlignRight)
	r.cur.Advance(lineH)

	r.text("Date: "+r.in.Options.GeneratedAt.Format(dateLayout), memberX1, "", smallSize, layout.AlignLeft)
	r.cur.Advance(lineH)
	return nil
}

func formatAmount(symbol string, minor int64) string {
	return fmt.Sprintf("%s%.2f", symbol, float64(minor)/100)
}

func contactLine(b BrandingView) string {
	line := b.Phone
	if b.Email != "" {
		if line != "" {
			line += "  "
		}
		line += b.Email
	}
	if b.Website != "" {
		if line != "" {
			line += "  "
		}
		line += b.Website
	}
	return line
}

var termsParagraphs = [][]string{
	{
		"1. The member agrees to use the assigned locker and kiosk facilities in",
		"accordance with the house rules posted at the facility entrance. Lockers",
		"remain the property of the operator at all times.",
	},
	{
		"2. The RFID card issued with this contract is personal and must not be",
		"shared. Loss of a card must be reported immediately at any kiosk; a",
		"replacement fee applies. The backup card, when issued, is subject to the",
		"same conditions.",
	},
	{
		"3. Membership fees are due in full at the start of the contract period",
		"unless an installment schedule has been agreed. Outstanding balances",
		"may result in suspension of locker access.",
	},
	{
		"4. The operator is not liable for items stored in lockers beyond the",
		"statutory minimum. Members are advised not to store valuables.",
	},
	{
		"5. This contract terminates automatically at the end date stated above",
		"unless renewed. Early termination is subject to the cancellation policy",
		"in effect at the signing date.",
	},
	{
		"6. Personal data collected under this contract is processed solely for",
		"membership administration and access control, and is retained no longer",
		"than legally required.",
	},
}
