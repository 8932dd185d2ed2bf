package brique

import (
	"bytes"
	"strings"
	"testing"
)

func TestLedgerRoundTrip(t *testing.T) {
	l := NewLedger()
	l.Append(
		NewDrawdown(MustParse("2025-06-01"), "bridge loan", eur(120000)),
		NewAllocatedPayment(MustParse("2025-06-02"), "works, partly on the loan", eur(5000), eur(2000)),
		NewRepayment(MustParse("2025-06-16"), "partial", eur(60000)),
		NewAllocatedReturn(MustParse("2025-09-30"), "sale", eur(130000), eur(60000)),
		NewAllocatedRentalIncome(MustParse("2025-07-31"), "rent", eur(1000), eur(500)),
		NewInterest(MustParse("2025-06-30"), "interest at 12.00%", eur(900), []InterestPeriod{
			{From: MustParse("2025-06-01"), To: MustParse("2025-06-15"), Days: 15, Principal: eur(120000), Rate: 12, Interest: eur(600)},
			{From: MustParse("2025-06-16"), To: MustParse("2025-06-30"), Days: 15, Principal: eur(60000), Rate: 12, Interest: eur(300)},
		}),
	)
	fixed, err := l.Fmt() // generate the ids
	if err != nil {
		t.Fatalf("Fmt: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, fixed); err != nil {
		t.Fatalf("EncodeLedger: %v", err)
	}
	if got := strings.Count(buf.String(), "\n"); got != fixed.Len() {
		t.Errorf("encoded %d lines, want %d", got, fixed.Len())
	}

	decoded, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger: %v", err)
	}
	if decoded.Len() != fixed.Len() {
		t.Fatalf("decoded %d events, want %d", decoded.Len(), fixed.Len())
	}
	for _, e := range fixed.Events() {
		got := decoded.Get(e.Ref())
		if got == nil {
			t.Errorf("event %s lost in the round trip", e.Ref())
			continue
		}
		if !e.Equal(got) {
			t.Errorf("event %s changed in the round trip:\n got %#v\nwant %#v", e.Ref(), got, e)
		}
	}
}

func TestDecodeLedgerPartial(t *testing.T) {
	input := strings.Join([]string{
		`{"kind":"drawdown","id":"d1","date":"2025-06-01","amount":120000,"currency":"EUR"}`,
		`this is not json`,
		``, // blank lines are fine
		`{"kind":"no-such-kind","id":"x1","date":"2025-06-02","amount":1}`,
		`{"kind":"repayment","id":"r1","date":"2025-06-16","amount":60000,"currency":"EUR"}`,
	}, "\n")

	l, err := DecodeLedger(strings.NewReader(input))
	if err == nil {
		t.Fatal("DecodeLedger should report the invalid lines")
	}
	if l.Len() != 2 {
		t.Fatalf("decoded %d events, want the 2 valid ones", l.Len())
	}
	if l.Get("d1") == nil || l.Get("r1") == nil {
		t.Error("the valid events should survive the corrupt lines")
	}
	msg := err.Error()
	if !strings.Contains(msg, "line 2") || !strings.Contains(msg, "line 4") {
		t.Errorf("error should name the offending lines, got: %v", msg)
	}
}

func TestDecodeEventManualSplit(t *testing.T) {
	e, err := DecodeEvent([]byte(`{"kind":"return","id":"s1","date":"2025-09-30","amount":130000,"currency":"EUR","loanAllocation":60000}`))
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}
	ret, ok := e.(Return)
	if !ok {
		t.Fatalf("decoded a %T, want Return", e)
	}
	if ret.LoanAllocation == nil || !ret.LoanAllocation.Equal(eur(60000)) {
		t.Errorf("LoanAllocation = %v, want 60000", ret.LoanAllocation)
	}
	if ret.NetReturn != nil {
		t.Errorf("NetReturn = %v, want absent", ret.NetReturn)
	}
}
