package compose

import (
	"errors"
	"fmt"
	"strings"

	"github.com/smallbiznis/lockerdocs/internal/document/layout"
)

var (
	ErrInvalidInput = errors.New("invalid_render_input")
	ErrSpent        = errors.New("compositor_already_used")
)

// State tracks the lifecycle of one composition. Complete and Failed are
// terminal; no transition skips a state.
type State int

const (
	StateCreated State = iota
	StateComposing
	StateFinalizing
	StateComplete
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateComposing:
		return "composing"
	case StateFinalizing:
		return "finalizing"
	case StateComplete:
		return "complete"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Artifact is the finished logical document: finalized pages ready for codec
// encoding. It is only materialized once composition reaches Complete.
type Artifact struct {
	Pages     []*layout.Page
	PageCount int
}

// Compositor runs the fixed section sequence over a fresh page buffer and
// then the finalization pass. One compositor composes exactly one document;
// it owns its buffer and cursor exclusively, so independent compositions need
// no locking.
type Compositor struct {
	geo   layout.Geometry
	buf   *layout.Buffer
	state State
	err   error
}

// New returns a compositor in the Created state.
func New(geo layout.Geometry) *Compositor {
	return &Compositor{
		geo:   geo,
		buf:   layout.NewBuffer(),
		state: StateCreated,
	}
}

// State returns the current lifecycle state.
func (d *Compositor) State() State {
	return d.state
}

// Err returns the error that moved the compositor to Failed, if any.
func (d *Compositor) Err() error {
	return d.err
}

// Compose runs the forward pass over the fixed section order, then the
// finalization pass, and returns the artifact. Input validation fails fast
// before any page is created; a renderer error moves the compositor to
// Failed with no partial artifact.
func (d *Compositor) Compose(in Input) (*Artifact, error) {
	if d.state != StateCreated {
		return nil, ErrSpent
	}
	if err := validateInput(in); err != nil {
		return nil, d.fail(err)
	}

	cur, err := layout.NewCursor(d.geo, d.buf)
	if err != nil {
		return nil, d.fail(err)
	}

	d.state = StateComposing
	r := &renderer{cur: cur, in: in}

	sections := []func() error{
		r.header,
		r.title,
		r.memberInfo,
		r.details,
		r.pricing,
	}
	if in.Options.IncludePayments && len(in.Payments) > 0 {
		sections = append(sections, r.payments)
	}
	if in.Options.termsEnabled() {
		sections = append(sections, r.terms)
	}
	sections = append(sections, r.signature)

	for _, section := range sections {
		if err := section(); err != nil {
			return nil, d.fail(err)
		}
	}

	d.state = StateFinalizing
	stampFooters(d.buf, d.geo, in.Options.Branding)
	d.state = StateComplete

	return &Artifact{Pages: d.buf.Pages(), PageCount: d.buf.Count()}, nil
}

func (d *Compositor) fail(err error) error {
	d.state = StateFailed
	d.err = err
	return err
}

func validateInput(in Input) error {
	if strings.TrimSpace(in.Contract.MemberName) == "" {
		return fmt.Errorf("%w: member name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Contract.ID) == "" {
		return fmt.Errorf("%w: contract id is required", ErrInvalidInput)
	}
	return nil
}
