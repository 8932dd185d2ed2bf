package renderer

import "github.com/ghilain/brique"

// ScheduleMarkdown generates a markdown report of an interest accrual:
// one row per month, with the constant-principal breakdown of the
// months that saw the balance move.
func ScheduleMarkdown(name string, rate brique.Percent, accrued []brique.Interest) string {
	r := newRenderer()
	r.Printf("# Interest Schedule %s\n\n", name)
	r.Printf("Annual nominal rate: %s, non-compounding, actual day count.\n\n", rate)
	if len(accrued) == 0 {
		r.Printf("No interest accrued.\n")
		return r.String()
	}

	r.Printf("| Month | Principal | Interest |\n")
	r.Printf("|:---|---:|---:|\n")
	total := brique.M(0, accrued[0].Sum().Currency())
	for _, e := range accrued {
		r.Printf("| %s | %s | %s |\n", e.When().Format("2006-01"), monthPrincipal(e), e.Sum())
		total = total.Add(e.Sum())
	}
	r.Printf("| **Total** | | **%s** |\n\n", total)

	for _, e := range accrued {
		if len(e.Periods) < 2 {
			continue
		}
		r.Printf("## %s\n\n", e.When().Format("January 2006"))
		r.Printf("| From | To | Days | Principal | Interest |\n")
		r.Printf("|:---|:---|---:|---:|---:|\n")
		for _, p := range e.Periods {
			r.Printf("| %s | %s | %d | %s | %s |\n", p.From, p.To, p.Days, p.Principal, p.Interest)
		}
		r.Printf("\n")
	}
	return r.String()
}

// monthPrincipal summarizes the principal of a month: the single value
// when constant, a range when the balance moved.
func monthPrincipal(e brique.Interest) string {
	if len(e.Periods) == 0 {
		return "-"
	}
	first := e.Periods[0].Principal
	last := e.Periods[len(e.Periods)-1].Principal
	if first.Equal(last) {
		return first.String()
	}
	return first.String() + " to " + last.String()
}
