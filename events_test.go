package brique

import "testing"

func TestReturnValidateManualSplits(t *testing.T) {
	l := NewLedger()
	day := MustParse("2025-09-30")

	t.Run("net only implies the allocation", func(t *testing.T) {
		e := NewReturn(day, "sale", eur(130000))
		net := eur(10000)
		e.NetReturn = &net
		fixed, err := Validate(l, e)
		if err != nil {
			t.Fatalf("Validate: %v", err)
		}
		r := fixed.(Return)
		if r.LoanAllocation == nil || !r.LoanAllocation.Equal(eur(120000)) {
			t.Errorf("LoanAllocation = %v, want the 120000 complement", r.LoanAllocation)
		}
	})

	t.Run("conservation wins over an inconsistent split", func(t *testing.T) {
		e := NewAllocatedReturn(day, "sale", eur(130000), eur(100000))
		net := eur(99999) // does not sum to the amount
		e.NetReturn = &net
		fixed, err := Validate(l, e)
		if err != nil {
			t.Fatalf("Validate: %v", err)
		}
		r := fixed.(Return)
		if !r.LoanAllocation.Add(*r.NetReturn).Equal(eur(130000)) {
			t.Errorf("split %s + %s does not conserve the amount",
				r.LoanAllocation, r.NetReturn)
		}
		if !r.NetReturn.Equal(eur(30000)) {
			t.Errorf("NetReturn = %s, want recomputed 30000", r.NetReturn)
		}
	})

	t.Run("allocation above the amount is clamped", func(t *testing.T) {
		e := NewAllocatedReturn(day, "sale", eur(100), eur(500))
		fixed, err := Validate(l, e)
		if err != nil {
			t.Fatalf("Validate: %v", err)
		}
		r := fixed.(Return)
		if !r.LoanAllocation.Equal(eur(100)) {
			t.Errorf("LoanAllocation = %s, want clamped to 100", r.LoanAllocation)
		}
	})

	t.Run("negative allocation is rejected", func(t *testing.T) {
		e := NewAllocatedReturn(day, "sale", eur(100), eur(-1))
		if _, err := Validate(l, e); err == nil {
			t.Error("a negative allocation must not validate")
		}
	})

	t.Run("net out of range is rejected", func(t *testing.T) {
		e := NewReturn(day, "sale", eur(100))
		net := eur(500)
		e.NetReturn = &net
		if _, err := Validate(l, e); err == nil {
			t.Error("a net return above the amount must not validate")
		}
	})
}

func TestValidateQuickFixes(t *testing.T) {
	l := NewLedger()
	e := NewDrawdown(Date{}, "no date, no id", eur(100))
	fixed, err := Validate(l, e)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if fixed.When().IsZero() {
		t.Error("a zero date should be fixed to today")
	}
	if fixed.Ref() == "" {
		t.Error("a blank id should be generated")
	}
}

func TestValidateRejectsNonPositiveAmounts(t *testing.T) {
	l := NewLedger()
	for _, e := range []Event{
		NewDrawdown(MustParse("2025-07-01"), "", eur(0)),
		NewPayment(MustParse("2025-07-01"), "", eur(-10)),
	} {
		if _, err := Validate(l, e); err == nil {
			t.Errorf("%s with amount %s must not validate", e.What(), e.Sum())
		}
	}
}
