package brique

import (
	"errors"
	"fmt"
	"iter"
	"sort"
)

// Ledger represents the list of cash-flow events of one investment.
//
// In a Ledger events are always in chronological order; same-day ties
// are broken by kind priority so that the balance computation is
// deterministic regardless of insertion order: money drawn on a day is
// available to be repaid the same day, and interest lands in between.
type Ledger struct {
	events []Event
	name   string
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{events: make([]Event, 0)}
}

// Name returns the ledger's name, its relative path without extension.
func (l *Ledger) Name() string { return l.name }

// SetName sets the ledger's name.
func (l *Ledger) SetName(name string) { l.name = name }

// kindPriority orders events that fall on the same day.
// Drawdowns and payments come first, interest in between, receipts last.
func kindPriority(k EventKind) int {
	switch k {
	case KindDrawdown, KindPayment:
		return 0
	case KindInterest:
		return 1
	case KindReturn, KindRepayment, KindRentalIncome:
		return 2
	default:
		return 3
	}
}

// Append appends events to this ledger and maintains the chronological order.
func (l *Ledger) Append(evts ...Event) {
	l.events = append(l.events, evts...)
	l.stableSort()
}

// stableSort sorts the ledger by date, then same-day kind priority.
// The sort is stable, so equal events maintain their relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.events, func(i, j int) bool {
		a, b := l.events[i], l.events[j]
		if a.When() != b.When() {
			return a.When().Before(b.When())
		}
		return kindPriority(a.What()) < kindPriority(b.What())
	})
}

// Get returns the event with the given id, or nil if unknown.
func (l *Ledger) Get(id string) Event {
	for _, e := range l.events {
		if e.Ref() == id {
			return e
		}
	}
	return nil
}

// Remove deletes the event with the given id. It reports whether an
// event was actually removed.
func (l *Ledger) Remove(id string) bool {
	for i, e := range l.events {
		if e.Ref() == id {
			l.events = append(l.events[:i], l.events[i+1:]...)
			return true
		}
	}
	return false
}

// Replace substitutes the event carrying the same id as 'e'.
// The replacement keeps the ledger sorted.
func (l *Ledger) Replace(e Event) error {
	for i, old := range l.events {
		if old.Ref() == e.Ref() {
			l.events[i] = e
			l.stableSort()
			return nil
		}
	}
	return fmt.Errorf("no event with id %q", e.Ref())
}

// Len returns the number of events in the ledger.
func (l *Ledger) Len() int { return len(l.events) }

// Events returns an iterator over all events in chronological order.
// Filters, if any, accept an event when at least one of them matches.
func (l *Ledger) Events(filters ...func(Event) bool) iter.Seq2[int, Event] {
	return func(yield func(int, Event) bool) {
		for i, e := range l.events {
			if len(filters) > 0 {
				accept := false
				for _, filter := range filters {
					if filter(e) {
						accept = true
						break
					}
				}
				if !accept {
					continue
				}
			}
			if !yield(i, e) {
				return
			}
		}
	}
}

// ByKind returns a predicate that filters events by kind.
func ByKind(kinds ...EventKind) func(Event) bool {
	return func(e Event) bool {
		for _, k := range kinds {
			if e.What() == k {
				return true
			}
		}
		return false
	}
}

// OldestEventDate returns the date of the earliest event in the ledger,
// or the zero date if the ledger is empty.
func (l *Ledger) OldestEventDate() Date {
	if len(l.events) == 0 {
		return Date{}
	}
	return l.events[0].When()
}

// NewestEventDate returns the date of the latest event in the ledger,
// or the zero date if the ledger is empty.
func (l *Ledger) NewestEventDate() Date {
	if len(l.events) == 0 {
		return Date{}
	}
	return l.events[len(l.events)-1].When()
}

// Currency returns the first non-empty currency code found in the
// ledger. Amounts with a blank currency are compatible with any.
func (l *Ledger) Currency() string {
	for _, e := range l.events {
		if c := e.Sum().Currency(); c != "" {
			return c
		}
	}
	return ""
}

// StripInterest returns a copy of the ledger without Interest events.
// Interest is always recomputed from scratch, never incrementally, so
// previously synthesized events are discarded before a new accrual.
func (l *Ledger) StripInterest() *Ledger {
	out := NewLedger()
	out.name = l.name
	for _, e := range l.events {
		if e.What() == KindInterest {
			continue
		}
		out.events = append(out.events, e)
	}
	return out
}

// Fmt validates every event, applies the available quick fixes and
// returns a new canonically sorted ledger, or an error detailing every
// invalid event.
func (l *Ledger) Fmt() (*Ledger, error) {
	out := NewLedger()
	out.name = l.name
	var errs error
	for _, e := range l.events {
		fixed, err := Validate(out, e)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		out.events = append(out.events, fixed)
	}
	out.stableSort()
	return out, errs
}
