package compose

import "time"

// Input is the deterministic, read-only input for one document composition.
// All values are supplied fully populated by the caller; the compositor
// performs no data fetching and no currency/locale negotiation.
type Input struct {
	Contract ContractView
	Payments []PaymentView
	Options  Options
}

type ContractView struct {
	ID          string
	MemberName  string
	MemberPhone string
	MemberEmail string
	PlanID      string
	StartDate   time.Time
	EndDate     time.Time
	KioskID     string
	LockerID    string
	RFIDCard    string
	BackupCard  string

	// Amounts are minor units (kuruş).
	PriceAmount     int64
	TotalPaidAmount *int64
}

type PaymentView struct {
	PaidAt    time.Time
	Method    string
	Amount    int64
	Reference string
}

type BrandingView struct {
	Name    string
	Address string
	Phone   string
	Email   string
	Website string
	LogoURL string
}

type Options struct {
	IncludePayments bool

	// IncludeTerms is tri-state: nil means the default (terms included),
	// an explicit false omits the section entirely.
	IncludeTerms *bool

	Branding       BrandingView
	CurrencySymbol string

	// GeneratedAt is the caller-supplied render timestamp. It is the only
	// nondeterministic input; everything else makes composition idempotent.
	GeneratedAt time.Time
}

func (o Options) termsEnabled() bool {
	return o.IncludeTerms == nil || *o.IncludeTerms
}

func (o Options) symbol() string {
	if o.CurrencySymbol == "" {
		return "₺"
	}
	return o.CurrencySymbol
}
