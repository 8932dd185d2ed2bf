package brique

import (
	"bytes"
	"strings"
	"testing"
)

func TestImportCSV(t *testing.T) {
	input := strings.Join([]string{
		"date,kind,amount,currency,memo,loanAllocation",
		"2025-07-01,drawdown,120000,EUR,bridge loan,",
		"2025-07-03,payment,2300,EUR,notary fees,",
		"2025-09-30,return,130000,EUR,sale proceeds,120000",
		"not-a-date,payment,100,EUR,bad row,",
		"2025-10-01,no-such-kind,100,EUR,bad kind,",
	}, "\n")

	events, err := ImportCSV(strings.NewReader(input))
	if err == nil {
		t.Fatal("ImportCSV should report the invalid rows")
	}
	msg := err.Error()
	if !strings.Contains(msg, "line 5") || !strings.Contains(msg, "line 6") {
		t.Errorf("error should name the offending lines, got: %v", msg)
	}
	if len(events) != 3 {
		t.Fatalf("imported %d events, want the 3 valid ones", len(events))
	}

	if events[0].What() != KindDrawdown || !events[0].Sum().Equal(eur(120000)) {
		t.Errorf("event 0 = %s %s", events[0].What(), events[0].Sum())
	}
	ret, ok := events[2].(Return)
	if !ok {
		t.Fatalf("event 2 is a %T, want Return", events[2])
	}
	if ret.LoanAllocation == nil || !ret.LoanAllocation.Equal(eur(120000)) {
		t.Errorf("event 2 LoanAllocation = %v, want 120000", ret.LoanAllocation)
	}
	if ret.Note() != "sale proceeds" {
		t.Errorf("event 2 memo = %q", ret.Note())
	}
}

func TestImportCSVMissingColumn(t *testing.T) {
	input := "date,amount\n2025-07-01,100\n"
	if _, err := ImportCSV(strings.NewReader(input)); err == nil {
		t.Fatal("ImportCSV should reject a header without a kind column")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	l := NewLedger()
	l.Append(
		NewDrawdown(MustParse("2025-07-01"), "bridge loan", eur(120000)),
		NewAllocatedRentalIncome(MustParse("2025-07-31"), "rent", eur(1000), eur(500)),
		NewInterest(MustParse("2025-07-31"), "derived", eur(1200), nil),
	)

	var buf bytes.Buffer
	if err := ExportCSV(&buf, l); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	if strings.Contains(buf.String(), "interest") {
		t.Error("interest events are derived and must not be exported")
	}

	events, err := ImportCSV(&buf)
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("round trip produced %d events, want 2", len(events))
	}
	rent, ok := events[1].(RentalIncome)
	if !ok {
		t.Fatalf("event 1 is a %T, want RentalIncome", events[1])
	}
	if rent.LoanAllocation == nil || !rent.LoanAllocation.Equal(eur(500)) {
		t.Errorf("LoanAllocation = %v, want 500", rent.LoanAllocation)
	}
	if !rent.Sum().Equal(eur(1000)) || rent.Note() != "rent" {
		t.Errorf("rent = %s %q", rent.Sum(), rent.Note())
	}
}
