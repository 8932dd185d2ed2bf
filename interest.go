package brique

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AccrueInterest synthesizes one Interest event per calendar month from
// the first event month up to the horizon, computed on the outstanding
// balance at an annual nominal rate. Interest is non-compounding: it is
// an expense, it never feeds back into the balance it is computed on.
//
// Within a month the balance is piecewise constant; each sub-period is
// charged pro rata temporis on the actual day count of that month:
//
//	interest = principal * (rate/100) / 12 / daysInMonth * days
//
// A balance change applies from its event day inclusive. Months with no
// outstanding balance produce no event. A zero horizon defaults to the
// later of the last event month and the current month, so an open loan
// keeps accruing.
//
// Previously synthesized Interest events are ignored: accrual is always
// a full recomputation over the stripped ledger.
func AccrueInterest(l *Ledger, rate Percent, horizon Date) []Interest {
	stripped := l.StripInterest()
	oldest := stripped.OldestEventDate()
	if oldest.IsZero() || rate <= 0 {
		return nil
	}
	if horizon.IsZero() {
		horizon = stripped.NewestEventDate()
		if today := Today(); today.After(horizon) {
			horizon = today
		}
	}
	// a horizon before the first event means zero accrual periods
	if horizon.Before(oldest) {
		return nil
	}

	r := NewReplay(stripped)
	cur := stripped.Currency()

	var out []Interest
	for m := range NewRange(oldest, horizon).Months {
		if e, ok := accrueMonth(r, m, rate, cur); ok {
			out = append(out, e)
		}
	}
	return out
}

// accrueMonth computes the Interest event for the month starting at m.
// It reports false when no interest accrued.
func accrueMonth(r *Replay, m Date, rate Percent, cur string) (Interest, bool) {
	monthEnd := m.EndOfMonth()

	// outstanding balance at the end of each event day of the month,
	// in chronological order.
	var days []Date
	dayOut := make(map[Date]Money)
	for _, snap := range r.Snapshots {
		d := snap.Event.When()
		if d.Before(m) || d.After(monthEnd) {
			continue
		}
		if _, seen := dayOut[d]; !seen {
			days = append(days, d)
		}
		dayOut[d] = snap.Outstanding
	}

	// dailyRate is exact; every period is rounded to the currency minor
	// unit so that the event amount equals the sum of its breakdown.
	dailyRate := decimal.NewFromFloat(float64(rate)).
		Div(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(12)).
		Div(decimal.NewFromInt(int64(m.DaysInMonth())))

	var periods []InterestPeriod
	total := M(0, cur)
	from, principal := m, r.OutstandingOn(m.Add(-1))
	accrue := func(to Date) {
		n := to.DaysSince(from) + 1
		if n <= 0 {
			return
		}
		earned := principal.Scale(dailyRate.Mul(decimal.NewFromInt(int64(n)))).Round()
		periods = append(periods, InterestPeriod{From: from, To: to, Days: n, Principal: principal, Rate: rate, Interest: earned})
		total = total.Add(earned)
	}
	for _, d := range days {
		if out := dayOut[d]; !out.Equal(principal) {
			accrue(d.Add(-1))
			from, principal = d, out
		}
	}
	accrue(monthEnd)

	if total.IsZero() {
		return Interest{}, false
	}
	e := NewInterest(monthEnd, fmt.Sprintf("interest at %s", rate), total, periods)
	// deterministic id so that repeated accruals replace, never duplicate
	e.ID = "interest-" + m.Format("2006-01")
	return e, true
}

// ApplyInterest returns a copy of the ledger with freshly accrued
// Interest events in place of any previously synthesized ones.
func ApplyInterest(l *Ledger, rate Percent, horizon Date) (*Ledger, []Interest) {
	accrued := AccrueInterest(l, rate, horizon)
	out := l.StripInterest()
	for _, e := range accrued {
		out.Append(e)
	}
	return out, accrued
}

// TotalInterest sums the accrued interest of a ledger's Interest events.
func TotalInterest(l *Ledger) Money {
	total := M(0, l.Currency())
	for _, e := range l.Events(ByKind(KindInterest)) {
		total = total.Add(e.Sum())
	}
	return total
}
