package renderer

import "github.com/ghilain/brique"

// SummaryMarkdown generates the markdown report of a ledger summary.
func SummaryMarkdown(s *brique.Summary) string {
	r := newRenderer()
	r.Printf("# Summary %s\n\n", s.Name)
	r.Printf("As of %s, interest at %s.\n\n", s.On, s.Rate)

	r.Printf("## Investor Position\n\n")
	r.Printf("| | |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| Total Invested | %s |\n", s.TotalInvested)
	r.Printf("| Total Returned | %s |\n", s.TotalReturned)
	r.Printf("| Total Interest | %s |\n", s.TotalInterest)
	r.Printf("| Net Profit | %s |\n", s.NetProfit.SignedString())
	r.Printf("| Annualized Return (XIRR) | %s |\n\n", xirrString(s.XIRR))

	r.Printf("## Loan\n\n")
	r.Printf("| | |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| Total Drawn | %s |\n", s.TotalDrawn)
	r.Printf("| Total Repaid | %s |\n", s.TotalRepaid)
	r.Printf("| Outstanding | %s |\n\n", s.Outstanding)

	for _, w := range s.Warnings {
		r.Printf("> ⚠ %s\n", w)
	}
	if len(s.Warnings) > 0 {
		r.Printf("\n")
	}
	return r.String()
}

// xirrString renders the solver outcome, spelling out the degenerate cases.
func xirrString(x brique.XIRRResult) string {
	switch x.Status {
	case brique.Converged:
		return x.Rate.SignedString()
	case brique.NoData:
		return "n/a (not enough cash flows)"
	default:
		return "n/a (no convergence)"
	}
}
