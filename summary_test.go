package brique

import "testing"

func TestNewSummary(t *testing.T) {
	// one month of life: loan drawn and purchase on the 1st, half the
	// loan repaid on the 16th, first rent at month end.
	l := NewLedger()
	l.SetName("maison")
	l.Append(
		NewDrawdown(MustParse("2025-06-01"), "bridge loan", eur(120000)),
		NewPayment(MustParse("2025-06-01"), "purchase", eur(150000)),
		NewRepayment(MustParse("2025-06-16"), "partial", eur(60000)),
		NewRentalIncome(MustParse("2025-06-30"), "first rent", eur(1000)),
	)

	s := NewSummary(l, 12, MustParse("2025-06-30"))

	if s.Name != "maison" || s.Currency != "EUR" {
		t.Errorf("header = %s %s, want maison EUR", s.Name, s.Currency)
	}
	// June has 30 days: 15 at 120000 (600) then 15 at 60000 (300)
	if !s.TotalInterest.Equal(eur(900)) {
		t.Errorf("TotalInterest = %s, want 900", s.TotalInterest)
	}
	// the purchase plus the interest; the repayment only moves the debt
	if !s.TotalInvested.Equal(eur(150900)) {
		t.Errorf("TotalInvested = %s, want 150900", s.TotalInvested)
	}
	if !s.TotalReturned.Equal(eur(1000)) {
		t.Errorf("TotalReturned = %s, want the rent's 1000", s.TotalReturned)
	}
	if !s.NetProfit.Equal(eur(-149900)) {
		t.Errorf("NetProfit = %s, want -149900", s.NetProfit)
	}
	if !s.TotalDrawn.Equal(eur(120000)) || !s.TotalRepaid.Equal(eur(60000)) || !s.Outstanding.Equal(eur(60000)) {
		t.Errorf("loan = drawn %s repaid %s outstanding %s", s.TotalDrawn, s.TotalRepaid, s.Outstanding)
	}
	// one month in, nearly all the money still in the walls: there is
	// no rate that zeroes this npv, and the summary must say so.
	if s.XIRR.Status != NoConvergence {
		t.Errorf("xirr status = %s, want no-convergence", s.XIRR.Status)
	}
}

func TestNewSummaryExcludesFinancing(t *testing.T) {
	// the drawdown and the loan-paying part of the sale count on
	// neither side: the investor put in 50000 and got 50000 back.
	l := NewLedger()
	l.Append(
		NewDrawdown(MustParse("2024-01-01"), "loan", eur(100000)),
		NewPayment(MustParse("2024-01-15"), "works", eur(50000)),
		NewReturn(MustParse("2024-02-01"), "sale", eur(150000)),
	)
	s := NewSummary(l, 0, Date{})
	if !s.TotalInvested.Equal(eur(50000)) {
		t.Errorf("TotalInvested = %s, want 50000", s.TotalInvested)
	}
	if !s.TotalReturned.Equal(eur(50000)) {
		t.Errorf("TotalReturned = %s, want 50000", s.TotalReturned)
	}
	if !s.NetProfit.IsZero() {
		t.Errorf("NetProfit = %s, want zero", s.NetProfit)
	}
	if !s.Outstanding.IsZero() {
		t.Errorf("Outstanding = %s, want zero after the sale", s.Outstanding)
	}
}

func TestNewSummaryKeepsExistingInterestWithoutRate(t *testing.T) {
	l := NewLedger()
	l.Append(
		NewDrawdown(MustParse("2025-06-01"), "loan", eur(120000)),
		NewInterest(MustParse("2025-06-30"), "entered by hand", eur(42), nil),
	)
	s := NewSummary(l, 0, Date{})
	if !s.TotalInterest.Equal(eur(42)) {
		t.Errorf("TotalInterest = %s, want the ledger's own 42", s.TotalInterest)
	}
	if !s.TotalInvested.Equal(eur(42)) {
		t.Errorf("TotalInvested = %s, want the interest alone", s.TotalInvested)
	}
}

func TestNewSummaryEmptyLedger(t *testing.T) {
	s := NewSummary(NewLedger(), 12, Date{})
	if !s.TotalInvested.IsZero() || !s.Outstanding.IsZero() {
		t.Errorf("empty ledger summary = %+v", s)
	}
	if s.XIRR.Status != NoData {
		t.Errorf("xirr status = %s, want no-data", s.XIRR.Status)
	}
}

func TestNewSummaryReportsClampWarnings(t *testing.T) {
	l := NewLedger()
	l.Append(
		NewDrawdown(MustParse("2025-06-01"), "loan", eur(100)),
		NewAllocatedRentalIncome(MustParse("2025-06-10"), "rent", eur(500), eur(300)),
	)
	s := NewSummary(l, 0, Date{})
	if len(s.Warnings) != 1 {
		t.Errorf("warnings = %v, want the clamp warning", s.Warnings)
	}
}

func TestNewSummaryNetProfitTurnsPositive(t *testing.T) {
	// buy, rent a while, sell above the all-in cost.
	l := NewLedger()
	l.Append(
		NewDrawdown(MustParse("2024-01-01"), "loan", eur(100000)),
		NewPayment(MustParse("2024-01-01"), "purchase", eur(120000)),
		NewRentalIncome(MustParse("2024-06-01"), "rent", eur(6000)),
		NewReturn(MustParse("2024-12-31"), "sale", eur(250000)),
	)
	s := NewSummary(l, 3, MustParse("2024-12-31"))
	if !s.NetProfit.IsPositive() {
		t.Errorf("NetProfit = %s, want positive", s.NetProfit)
	}
	if s.XIRR.Status != Converged || s.XIRR.Rate <= 0 {
		t.Errorf("xirr = %+v, want a positive converged rate", s.XIRR)
	}
	if !s.Outstanding.IsZero() {
		t.Errorf("Outstanding = %s, want zero after the sale", s.Outstanding)
	}
}
