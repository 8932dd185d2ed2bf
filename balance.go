package brique

import "fmt"

// Allocation is the resolved split of a receipt between loan paydown
// and net investor return. The conservation invariant
// LoanAdjustment + NetReturn == event amount always holds, the resolver
// corrects any violation deterministically instead of failing.
type Allocation struct {
	LoanAdjustment Money // part applied to the outstanding loan
	NetReturn      Money // part kept by the investor
	Clamped        bool  // a manual allocation was clamped to the outstanding balance
}

// BalanceSnapshot captures the loan state immediately after one event.
//
// The invariant Outstanding == max(0, TotalDrawn - TotalRepaid) holds
// by construction: no adjustment ever exceeds the outstanding balance,
// over-repayment is absorbed as net investor return, never a credit.
type BalanceSnapshot struct {
	Event       Event
	Outstanding Money
	TotalDrawn  Money
	TotalRepaid Money
	Allocation  *Allocation // set for events that move investor money against the loan
}

// Replay is the result of one full chronological pass over a ledger:
// one snapshot per event, plus the warnings produced by deterministic
// corrections. A Replay is derived state; it is recomputed from the
// event list every time and never mutated afterwards.
type Replay struct {
	Snapshots []BalanceSnapshot
	Warnings  []string

	currency string
}

// NewReplay walks the sorted event list once and resolves the loan
// balance and the allocation of every receipt.
func NewReplay(l *Ledger) *Replay {
	r := &Replay{currency: l.Currency()}
	zero := M(0, r.currency)
	outstanding, drawn, repaid := zero, zero, zero

	// paydown applies 'want' to the loan, clamped to the outstanding
	// balance, and reports whether clamping occurred.
	paydown := func(want Money) (adj Money, clamped bool) {
		adj = want.Min(outstanding)
		clamped = want.GreaterThan(outstanding)
		outstanding = outstanding.Sub(adj)
		repaid = repaid.Add(adj)
		return adj, clamped
	}

	for _, e := range l.Events() {
		snap := BalanceSnapshot{Event: e}

		switch v := e.(type) {
		case Drawdown:
			outstanding = outstanding.Add(v.Amount)
			drawn = drawn.Add(v.Amount)

		case Payment:
			// a payment is an expense; it touches the loan only on
			// an explicit investor-initiated allocation.
			if v.LoanAllocation != nil {
				adj, clamped := paydown(*v.LoanAllocation)
				snap.Allocation = &Allocation{LoanAdjustment: adj, NetReturn: M(0, r.currency), Clamped: clamped}
				if clamped {
					r.warnf(e, "manual loan allocation %s exceeds outstanding balance, clamped to %s", *v.LoanAllocation, adj)
				}
			}

		case Repayment:
			want := v.Amount
			manual := v.LoanAllocation != nil
			if manual {
				want = *v.LoanAllocation
			}
			adj, clamped := paydown(want)
			snap.Allocation = &Allocation{LoanAdjustment: adj, NetReturn: v.Amount.Sub(adj), Clamped: manual && clamped}
			if manual && clamped {
				r.warnf(e, "manual loan allocation %s exceeds outstanding balance, clamped to %s", want, adj)
			}

		case Return:
			want := v.Amount
			manual := v.LoanAllocation != nil
			if manual {
				want = *v.LoanAllocation
			}
			adj, clamped := paydown(want)
			snap.Allocation = &Allocation{LoanAdjustment: adj, NetReturn: v.Amount.Sub(adj), Clamped: manual && clamped}
			if manual && clamped {
				r.warnf(e, "manual loan allocation %s exceeds outstanding balance, clamped to %s", want, adj)
			}

		case RentalIncome:
			// rent is investor income by default; it pays the loan
			// down only through an explicit allocation.
			want := M(0, r.currency)
			if v.LoanAllocation != nil {
				want = *v.LoanAllocation
			}
			adj, clamped := paydown(want)
			snap.Allocation = &Allocation{LoanAdjustment: adj, NetReturn: v.Amount.Sub(adj), Clamped: v.LoanAllocation != nil && clamped}
			if v.LoanAllocation != nil && clamped {
				r.warnf(e, "manual loan allocation %s exceeds outstanding balance, clamped to %s", want, adj)
			}

		case Interest:
			// interest is an expense, not new debt: it never feeds
			// back into the outstanding balance.

		default:
			r.warnf(e, "unknown event kind %q ignored by the balance tracker", e.What())
		}

		snap.Outstanding = outstanding
		snap.TotalDrawn = drawn
		snap.TotalRepaid = repaid
		r.Snapshots = append(r.Snapshots, snap)
	}
	return r
}

func (r *Replay) warnf(e Event, format string, args ...any) {
	prefix := fmt.Sprintf("%s %s: ", e.When(), e.What())
	r.Warnings = append(r.Warnings, prefix+fmt.Sprintf(format, args...))
}

// last returns the final snapshot, or a zero-valued one for an empty ledger.
func (r *Replay) last() BalanceSnapshot {
	if len(r.Snapshots) == 0 {
		zero := M(0, r.currency)
		return BalanceSnapshot{Outstanding: zero, TotalDrawn: zero, TotalRepaid: zero}
	}
	return r.Snapshots[len(r.Snapshots)-1]
}

// Outstanding returns the outstanding loan balance after the last event.
func (r *Replay) Outstanding() Money { return r.last().Outstanding }

// TotalDrawn returns the total amount disbursed by the lender.
func (r *Replay) TotalDrawn() Money { return r.last().TotalDrawn }

// TotalRepaid returns the total amount applied against the loan.
func (r *Replay) TotalRepaid() Money { return r.last().TotalRepaid }

// OutstandingOn returns the outstanding balance at the end of the given
// day, that is after every event dated on or before it.
func (r *Replay) OutstandingOn(day Date) Money {
	out := M(0, r.currency)
	for _, snap := range r.Snapshots {
		if snap.Event.When().After(day) {
			break
		}
		out = snap.Outstanding
	}
	return out
}

// AllocationFor returns the resolved allocation for the event with the
// given id, or nil when the event does not move money against the loan.
func (r *Replay) AllocationFor(id string) *Allocation {
	for _, snap := range r.Snapshots {
		if snap.Event.Ref() == id {
			return snap.Allocation
		}
	}
	return nil
}
