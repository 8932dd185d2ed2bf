package renderer

import (
	"strings"

	"github.com/ghilain/brique"
)

// LogMarkdown generates a markdown report of every event in the ledger,
// in chronological order, with the running outstanding balance.
func LogMarkdown(l *brique.Ledger) string {
	r := newRenderer()
	r.Printf("# Ledger %s\n\n", l.Name())
	if l.Len() == 0 {
		r.Printf("No events recorded.\n")
		return r.String()
	}

	replay := brique.NewReplay(l)

	r.Printf("| Date | Kind | Amount | Loan Effect | Outstanding | Memo |\n")
	r.Printf("|:---|:---|---:|---:|---:|:---|\n")
	for _, snap := range replay.Snapshots {
		e := snap.Event
		r.Printf("| %s | %s | %s | %s | %s | %s |\n",
			e.When(), e.What(), e.Sum(), loanEffect(snap), snap.Outstanding, e.Note())
	}
	r.Printf("\n")

	for _, w := range replay.Warnings {
		r.Printf("> ⚠ %s\n", w)
	}
	if len(replay.Warnings) > 0 {
		r.Printf("\n")
	}
	return r.String()
}

// loanEffect renders how an event moved the outstanding balance.
func loanEffect(snap brique.BalanceSnapshot) string {
	switch snap.Event.What() {
	case brique.KindDrawdown:
		return "+" + snap.Event.Sum().String()
	case brique.KindInterest:
		return "-"
	}
	if snap.Allocation == nil || snap.Allocation.LoanAdjustment.IsZero() {
		return "-"
	}
	var sb strings.Builder
	sb.WriteString("-")
	sb.WriteString(snap.Allocation.LoanAdjustment.String())
	if snap.Allocation.Clamped {
		sb.WriteString(" (clamped)")
	}
	return sb.String()
}
