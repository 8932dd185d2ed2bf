package brique

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// this file handles the import/export format: a csv file with a header
// row, one event per record, easy to produce from any spreadsheet.
//
//	date,kind,amount,currency,memo,loanAllocation
//
// Only date, kind and amount are required. The loanAllocation column,
// when non empty, records a manual split.

// ImportCSV parses events from 'r' in the import/export format.
// Import is best effort: invalid records are reported with their line
// number, valid ones are still returned.
func ImportCSV(r io.Reader) ([]Event, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read csv header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"date", "kind", "amount"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("csv header misses required column %q", required)
		}
	}
	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var events []Event
	var errs error
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		e, err := importRecord(
			field(record, "date"),
			field(record, "kind"),
			field(record, "amount"),
			field(record, "currency"),
			field(record, "memo"),
			field(record, "loanallocation"),
		)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		events = append(events, e)
	}
	return events, errs
}

func importRecord(date, kind, amount, currency, memo, allocation string) (Event, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	sum := M(value, currency)

	var alloc *Money
	if allocation != "" {
		v, err := decimal.NewFromString(allocation)
		if err != nil {
			return nil, fmt.Errorf("invalid loan allocation %q: %w", allocation, err)
		}
		m := M(v, currency)
		alloc = &m
	}

	switch EventKind(kind) {
	case KindDrawdown:
		return NewDrawdown(day, memo, sum), nil
	case KindPayment:
		e := NewPayment(day, memo, sum)
		e.LoanAllocation = alloc
		return e, nil
	case KindRepayment:
		e := NewRepayment(day, memo, sum)
		e.LoanAllocation = alloc
		return e, nil
	case KindReturn:
		e := NewReturn(day, memo, sum)
		e.LoanAllocation = alloc
		return e, nil
	case KindRentalIncome:
		e := NewRentalIncome(day, memo, sum)
		e.LoanAllocation = alloc
		return e, nil
	default:
		return nil, fmt.Errorf("unknown event kind %q", kind)
	}
}

// ExportCSV writes the ledger to 'w' in the import/export format.
// Interest events are skipped: they are derived, not source data.
func ExportCSV(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "kind", "amount", "currency", "memo", "loanAllocation"}); err != nil {
		return err
	}
	for _, e := range l.Events() {
		if e.What() == KindInterest {
			continue
		}
		allocation := ""
		if m := manualAllocation(e); m != nil {
			allocation = m.value.String()
		}
		record := []string{
			e.When().String(),
			string(e.What()),
			e.Sum().value.String(),
			e.Sum().Currency(),
			e.Note(),
			allocation,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// manualAllocation returns the manual loan allocation of an event, or
// nil when the event has none.
func manualAllocation(e Event) *Money {
	switch v := e.(type) {
	case Payment:
		return v.LoanAllocation
	case Repayment:
		return v.LoanAllocation
	case Return:
		return v.LoanAllocation
	case RentalIncome:
		return v.LoanAllocation
	}
	return nil
}
