package brique

import (
	"strings"
	"testing"
)

func eur(v float64) Money { return M(v, "EUR") }

func TestLedgerOrdering(t *testing.T) {
	// same-day events must settle in a deterministic order: money in
	// first, interest next, money back last.
	day := MustParse("2025-07-01")
	l := NewLedger()
	l.Append(
		NewReturn(day, "sale", eur(50)),
		NewInterest(day, "", eur(1), nil),
		NewDrawdown(day, "loan", eur(100)),
		NewPayment(day, "fees", eur(10)),
	)

	var kinds []string
	for _, e := range l.Events() {
		kinds = append(kinds, string(e.What()))
	}
	got := strings.Join(kinds, ",")
	want := "drawdown,payment,interest,return"
	if got != want {
		t.Errorf("ordering = %s, want %s", got, want)
	}
}

func TestLedgerGetRemoveReplace(t *testing.T) {
	l := NewLedger()
	e := NewDrawdown(MustParse("2025-07-01"), "loan", eur(100))
	e.ID = "e1"
	l.Append(e)

	if got := l.Get("e1"); got == nil || !got.Equal(e) {
		t.Fatalf("Get(e1) = %v, want the drawdown", got)
	}
	if l.Get("nope") != nil {
		t.Error("Get(nope) should be nil")
	}

	e2 := NewDrawdown(MustParse("2025-07-02"), "loan corrected", eur(200))
	e2.ID = "e1"
	if err := l.Replace(e2); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if got := l.Get("e1"); !got.Equal(e2) {
		t.Errorf("after Replace, Get(e1) = %v, want the corrected drawdown", got)
	}
	if err := l.Replace(NewDrawdown(Date{}, "", eur(1))); err == nil {
		t.Error("Replace with unknown id should fail")
	}

	if !l.Remove("e1") {
		t.Error("Remove(e1) should report true")
	}
	if l.Remove("e1") {
		t.Error("Remove(e1) twice should report false")
	}
	if l.Len() != 0 {
		t.Errorf("Len = %d, want 0", l.Len())
	}
}

func TestLedgerFmtQuickFixes(t *testing.T) {
	l := NewLedger()
	e := NewDrawdown(MustParse("2025-07-01"), "loan", eur(100))
	l.Append(e) // blank id

	fixed, err := l.Fmt()
	if err != nil {
		t.Fatalf("Fmt: %v", err)
	}
	for _, e := range fixed.Events() {
		if e.Ref() == "" {
			t.Error("Fmt should generate missing ids")
		}
		if e.When().IsZero() {
			t.Error("Fmt should fill missing dates")
		}
	}
}

func TestLedgerFmtPartial(t *testing.T) {
	l := NewLedger()
	l.Append(
		NewDrawdown(MustParse("2025-07-01"), "loan", eur(100)),
		NewPayment(MustParse("2025-07-02"), "bad", eur(0)), // non-positive amount
	)
	fixed, err := l.Fmt()
	if err == nil {
		t.Fatal("Fmt should report the invalid event")
	}
	if fixed.Len() != 1 {
		t.Errorf("Fmt kept %d events, want 1", fixed.Len())
	}
}

func TestLedgerFmtDuplicateIDs(t *testing.T) {
	l := NewLedger()
	a := NewDrawdown(MustParse("2025-07-01"), "loan", eur(100))
	a.ID = "dup"
	b := NewPayment(MustParse("2025-07-02"), "fees", eur(10))
	b.ID = "dup"
	l.Append(a, b)

	fixed, err := l.Fmt()
	if err == nil {
		t.Fatal("Fmt should report the duplicate id")
	}
	if fixed.Len() != 1 {
		t.Errorf("Fmt kept %d events, want 1", fixed.Len())
	}
}

func TestStripInterest(t *testing.T) {
	l := NewLedger()
	l.Append(
		NewDrawdown(MustParse("2025-07-01"), "loan", eur(100)),
		NewInterest(MustParse("2025-07-31"), "", eur(1), nil),
	)
	stripped := l.StripInterest()
	if stripped.Len() != 1 {
		t.Errorf("StripInterest kept %d events, want 1", stripped.Len())
	}
	if l.Len() != 2 {
		t.Errorf("StripInterest must not mutate the source, Len = %d", l.Len())
	}
}

func TestLedgerCurrency(t *testing.T) {
	l := NewLedger()
	if got := l.Currency(); got != "" {
		t.Errorf("empty ledger currency = %q, want empty", got)
	}
	l.Append(NewDrawdown(MustParse("2025-07-01"), "loan", eur(100)))
	if got := l.Currency(); got != "EUR" {
		t.Errorf("currency = %q, want EUR", got)
	}
}
