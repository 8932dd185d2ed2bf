package renderer

import (
	"strings"
	"testing"

	"github.com/ghilain/brique"
)

func eur(v float64) brique.Money { return brique.M(v, "EUR") }

func day(s string) brique.Date { return brique.MustParse(s) }

func TestLogMarkdown(t *testing.T) {
	l := brique.NewLedger()
	l.SetName("maison")
	l.Append(
		brique.NewDrawdown(day("2025-06-01"), "bridge loan", eur(120000)),
		brique.NewRepayment(day("2025-06-16"), "partial", eur(60000)),
	)

	md := LogMarkdown(l)
	for _, want := range []string{
		"# Ledger maison",
		"| 2025-06-01 | drawdown |",
		"| 2025-06-16 | repayment |",
		"bridge loan",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("log misses %q:\n%s", want, md)
		}
	}
}

func TestLogMarkdownEmpty(t *testing.T) {
	l := brique.NewLedger()
	l.SetName("empty")
	if md := LogMarkdown(l); !strings.Contains(md, "No events recorded") {
		t.Errorf("empty log:\n%s", md)
	}
}

func TestLogMarkdownWarnings(t *testing.T) {
	l := brique.NewLedger()
	l.Append(
		brique.NewDrawdown(day("2025-06-01"), "loan", eur(100)),
		brique.NewAllocatedRentalIncome(day("2025-06-10"), "rent", eur(500), eur(300)),
	)
	if md := LogMarkdown(l); !strings.Contains(md, "clamped") {
		t.Errorf("log should surface the clamp warning:\n%s", md)
	}
}

func TestScheduleMarkdown(t *testing.T) {
	l := brique.NewLedger()
	l.Append(
		brique.NewDrawdown(day("2025-06-01"), "loan", eur(120000)),
		brique.NewRepayment(day("2025-06-16"), "partial", eur(60000)),
	)
	accrued := brique.AccrueInterest(l, 12, day("2025-06-30"))

	md := ScheduleMarkdown("maison", 12, accrued)
	for _, want := range []string{
		"# Interest Schedule maison",
		"12.00%",
		"| 2025-06 |",
		"## June 2025", // the month with a balance change gets a breakdown
		"| 2025-06-01 | 2025-06-15 | 15 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("schedule misses %q:\n%s", want, md)
		}
	}
}

func TestScheduleMarkdownEmpty(t *testing.T) {
	if md := ScheduleMarkdown("maison", 12, nil); !strings.Contains(md, "No interest accrued") {
		t.Errorf("empty schedule:\n%s", md)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	l := brique.NewLedger()
	l.SetName("maison")
	l.Append(
		brique.NewDrawdown(day("2025-06-01"), "loan", eur(120000)),
		brique.NewPayment(day("2025-06-01"), "purchase", eur(150000)),
	)
	s := brique.NewSummary(l, 12, day("2025-06-30"))

	md := SummaryMarkdown(s)
	for _, want := range []string{
		"# Summary maison",
		"## Investor Position",
		"## Loan",
		"| Total Invested |",
		"| Outstanding |",
		"n/a", // two outflows and no inflow, no rate to show
	} {
		if !strings.Contains(md, want) {
			t.Errorf("summary misses %q:\n%s", want, md)
		}
	}
}
