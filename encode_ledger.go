package brique

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts are stored as json numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// jsonEvent is the decoding superset of every event kind. Encoding goes
// through the per-kind MarshalJSON methods to keep a canonical key
// order; decoding reads any kind into this one struct and dispatches.
type jsonEvent struct {
	Kind           EventKind        `json:"kind"`
	ID             string           `json:"id"`
	Date           Date             `json:"date"`
	Memo           string           `json:"memo"`
	Currency       string           `json:"currency"`
	Amount         decimal.Decimal  `json:"amount"`
	LoanAllocation *decimal.Decimal `json:"loanAllocation"`
	NetReturn      *decimal.Decimal `json:"netReturn"`
	Periods        []InterestPeriod `json:"periods"`
}

func (j jsonEvent) money(d decimal.Decimal) Money { return M(d, j.Currency) }

func (j jsonEvent) moneyPtr(d *decimal.Decimal) *Money {
	if d == nil {
		return nil
	}
	m := j.money(*d)
	return &m
}

// event builds the concrete event for the decoded kind.
func (j jsonEvent) event() (Event, error) {
	base := baseEvent{Kind: j.Kind, ID: j.ID, Date: j.Date, Memo: j.Memo}
	amt := amtEvent{baseEvent: base, Amount: j.money(j.Amount)}
	switch j.Kind {
	case KindDrawdown:
		return Drawdown{amt}, nil
	case KindPayment:
		return Payment{amtEvent: amt, LoanAllocation: j.moneyPtr(j.LoanAllocation)}, nil
	case KindRepayment:
		return Repayment{amtEvent: amt, LoanAllocation: j.moneyPtr(j.LoanAllocation)}, nil
	case KindReturn:
		return Return{amtEvent: amt, LoanAllocation: j.moneyPtr(j.LoanAllocation), NetReturn: j.moneyPtr(j.NetReturn)}, nil
	case KindRentalIncome:
		return RentalIncome{amtEvent: amt, LoanAllocation: j.moneyPtr(j.LoanAllocation)}, nil
	case KindInterest:
		return Interest{amtEvent: amt, Periods: j.Periods}, nil
	default:
		return nil, fmt.Errorf("unknown event kind %q", j.Kind)
	}
}

// DecodeEvent parses a single json object into its concrete event.
func DecodeEvent(data []byte) (Event, error) {
	var j jsonEvent
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, err
	}
	return j.event()
}

// EncodeEvent writes one event as a single json line.
func EncodeEvent(w io.Writer, e Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// EncodeLedger writes the ledger in jsonl format, one event per line,
// in chronological order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, e := range l.Events() {
		if err := EncodeEvent(w, e); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads a jsonl stream into a sorted ledger. Decoding is
// best effort: invalid lines are reported with their line number, valid
// ones still make it into the returned ledger, so a single corrupt line
// never takes the whole file hostage.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	l := NewLedger()
	var errs error
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for line := 1; scanner.Scan(); line++ {
		data := bytes.TrimSpace(scanner.Bytes())
		if len(data) == 0 {
			continue
		}
		e, err := DecodeEvent(data)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		l.Append(e)
	}
	if err := scanner.Err(); err != nil {
		errs = errors.Join(errs, err)
	}
	return l, errs
}
