package brique

import "fmt"

// Validate checks an event for correctness and applies quick fixes
// where applicable (zero date, blank id, over-allocated manual split).
// It returns the validated (and potentially modified) event, or an
// error detailing the validation failure.
//
// The switch is exhaustive on purpose: a new event kind must be given
// an explicit branch, it can never fall through to a default behavior.
func Validate(l *Ledger, e Event) (Event, error) {
	var err error
	switch v := e.(type) {
	case Drawdown:
		e, err = v.Validate(l)
	case Payment:
		e, err = v.Validate(l)
	case Repayment:
		e, err = v.Validate(l)
	case Return:
		e, err = v.Validate(l)
	case RentalIncome:
		e, err = v.Validate(l)
	case Interest:
		e, err = v.Validate(l)
	default:
		return e, fmt.Errorf("unsupported event type for validation: %T", e)
	}
	if err != nil {
		return e, fmt.Errorf("invalid %s event on %v: %w", e.What(), e.When(), err)
	}
	if prev := l.Get(e.Ref()); prev != nil {
		return e, fmt.Errorf("duplicate event id %q: already used on %v", e.Ref(), prev.When())
	}
	return e, nil
}
