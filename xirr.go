package brique

import "math"

// NetCashFlow is one dated investor cash flow, outflows negative.
// The series feeds the solver as float64: the rate is an iterative
// estimate, exactness would buy nothing here.
type NetCashFlow struct {
	Date   Date
	Amount float64
}

// NetCashFlows derives the investor cash-flow series from a ledger.
// Drawdowns are financing, never an investor flow. Payments and
// interest are outflows of their full magnitude. Returns, repayments
// and rental income contribute their net return only: the part that
// pays down the loan is financing movement on both sides, so a receipt
// fully swallowed by the debt contributes nothing.
func NetCashFlows(l *Ledger) []NetCashFlow {
	r := NewReplay(l)
	var flows []NetCashFlow
	for _, snap := range r.Snapshots {
		e := snap.Event
		f := NetCashFlow{Date: e.When()}
		switch e.What() {
		case KindPayment, KindInterest:
			f.Amount = -e.Sum().InexactFloat()
		case KindReturn, KindRepayment, KindRentalIncome:
			if snap.Allocation == nil {
				continue
			}
			f.Amount = snap.Allocation.NetReturn.InexactFloat()
			if f.Amount == 0 {
				continue
			}
		default:
			continue
		}
		flows = append(flows, f)
	}
	return flows
}

// XIRRStatus qualifies the outcome of the solver.
type XIRRStatus string

const (
	Converged     XIRRStatus = "converged"
	NoData        XIRRStatus = "no-data"        // fewer than two flows, or all flows on the same side
	NoConvergence XIRRStatus = "no-convergence" // the iteration cap was reached without a root
)

// XIRRResult is the annualized internal rate of return of an irregular
// cash-flow series. Rate is zero unless Status is Converged; the
// metric must always be renderable, degenerate inputs are a status,
// never an error.
type XIRRResult struct {
	Rate   Percent
	Status XIRRStatus
}

const (
	xirrMaxIterations = 100
	xirrPrecision     = 1e-7
)

// XIRR solves for the rate that zeroes the net present value of the
// series, using Newton-Raphson with a bisection fallback. Time is
// measured in actual days since the first flow, over a 365-day year.
func XIRR(flows []NetCashFlow) XIRRResult {
	if len(flows) < 2 || !mixedSigns(flows) {
		return XIRRResult{Status: NoData}
	}

	t0 := flows[0].Date
	for _, f := range flows {
		if f.Date.Before(t0) {
			t0 = f.Date
		}
	}
	npv := func(rate float64) (value, derivative float64) {
		for _, f := range flows {
			years := float64(f.Date.DaysSince(t0)) / 365
			d := math.Pow(1+rate, years)
			value += f.Amount / d
			derivative -= years * f.Amount / (d * (1 + rate))
		}
		return value, derivative
	}

	rate := 0.1
	for range xirrMaxIterations {
		value, derivative := npv(rate)
		if math.Abs(value) < xirrPrecision {
			return converged(rate)
		}
		if derivative == 0 || math.IsNaN(derivative) {
			break
		}
		next := rate - value/derivative
		if next <= -1 {
			// keep the iterate in the domain of (1+rate)^t
			next = (rate - 1) / 2
		}
		if math.Abs(next-rate) < xirrPrecision {
			rate = next
			if v, _ := npv(rate); math.Abs(v) < xirrPrecision*math.Abs(flows[0].Amount) {
				return converged(rate)
			}
			break
		}
		rate = next
	}

	return bisectXIRR(func(r float64) float64 { v, _ := npv(r); return v })
}

func converged(rate float64) XIRRResult {
	return XIRRResult{Rate: Percent(rate * 100), Status: Converged}
}

// bisectXIRR brackets a sign change on (-1, 10] and bisects it.
func bisectXIRR(f func(float64) float64) XIRRResult {
	lo, hi := -0.999999, 10.0
	flo, fhi := f(lo), f(hi)
	if flo*fhi > 0 {
		return XIRRResult{Status: NoConvergence}
	}
	for range xirrMaxIterations {
		mid := (lo + hi) / 2
		fmid := f(mid)
		if math.Abs(fmid) < xirrPrecision || (hi-lo)/2 < xirrPrecision {
			return converged(mid)
		}
		if flo*fmid < 0 {
			hi = mid
		} else {
			lo, flo = mid, fmid
		}
	}
	return XIRRResult{Status: NoConvergence}
}

func mixedSigns(flows []NetCashFlow) bool {
	var pos, neg bool
	for _, f := range flows {
		pos = pos || f.Amount > 0
		neg = neg || f.Amount < 0
	}
	return pos && neg
}
