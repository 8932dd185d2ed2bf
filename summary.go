package brique

// Summary aggregates a whole ledger into the totals an investor asks
// about: how much went in, how much came back net of the debt, what
// the loan looks like, and the annualized return of the investment.
//
// A Summary is derived from a full replay; it holds no state of its own.
type Summary struct {
	Name     string
	Currency string
	On       Date    // accrual horizon used for the interest engine
	Rate     Percent // annual nominal rate used for the interest engine

	TotalInvested Money // investor outflows: payments and interest
	TotalReturned Money // net investor inflows, after loan paydown
	TotalInterest Money // accrued interest over the horizon
	NetProfit     Money // returned minus invested

	TotalDrawn  Money // lender disbursements
	TotalRepaid Money // amounts applied against the loan
	Outstanding Money // remaining debt after the last event

	XIRR     XIRRResult
	Warnings []string // deterministic corrections applied during the replay
}

// NewSummary computes the summary of a ledger with interest freshly
// accrued at the given rate up to the horizon. A zero horizon keeps the
// accrual rolling to the later of the last event and today. Without a
// rate the interest events already in the ledger are used as is.
//
// Drawdowns and the loan-allocated part of receipts count on neither
// side: money that merely moves the debt is not invested and not
// returned.
func NewSummary(l *Ledger, rate Percent, horizon Date) *Summary {
	applied := l
	if rate > 0 {
		applied, _ = ApplyInterest(l, rate, horizon)
	}
	r := NewReplay(applied)

	s := &Summary{
		Name:     l.Name(),
		Currency: applied.Currency(),
		On:       horizon,
		Rate:     rate,
	}
	if s.On.IsZero() {
		s.On = applied.NewestEventDate()
	}

	zero := M(0, s.Currency)
	s.TotalInvested, s.TotalReturned, s.TotalInterest = zero, zero, zero
	for _, snap := range r.Snapshots {
		e := snap.Event
		switch e.What() {
		case KindPayment:
			s.TotalInvested = s.TotalInvested.Add(e.Sum())
		case KindInterest:
			s.TotalInvested = s.TotalInvested.Add(e.Sum())
			s.TotalInterest = s.TotalInterest.Add(e.Sum())
		case KindReturn, KindRepayment, KindRentalIncome:
			if snap.Allocation != nil {
				s.TotalReturned = s.TotalReturned.Add(snap.Allocation.NetReturn)
			}
		}
	}
	s.NetProfit = s.TotalReturned.Sub(s.TotalInvested)

	s.TotalDrawn = r.TotalDrawn()
	s.TotalRepaid = r.TotalRepaid()
	s.Outstanding = r.Outstanding()
	s.Warnings = r.Warnings

	s.XIRR = XIRR(NetCashFlows(applied))
	return s
}
