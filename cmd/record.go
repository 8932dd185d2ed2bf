package cmd

import (
	"flag"
	"fmt"

	"github.com/ghilain/brique"
	"github.com/shopspring/decimal"
)

// eventFlags holds the flags shared by every event-recording command.
type eventFlags struct {
	ledger   string
	date     string
	amount   string
	currency string
	memo     string
}

func (c *eventFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to record into. Defaults to the only ledger if one exists.")
	f.StringVar(&c.date, "d", brique.Today().String(), "Date of the event, e.g. 2025-07-01.")
	f.StringVar(&c.amount, "a", "", "Amount of the event, e.g. 120000 or 1234.56.")
	f.StringVar(&c.currency, "c", "EUR", "Currency code of the amount.")
	f.StringVar(&c.memo, "m", "", "Optional memo for the event.")
}

// parse resolves the shared flags into a date and an amount.
func (c *eventFlags) parse() (brique.Date, brique.Money, error) {
	day, err := brique.ParseDate(c.date)
	if err != nil {
		return brique.Date{}, brique.Money{}, err
	}
	if c.amount == "" {
		return brique.Date{}, brique.Money{}, fmt.Errorf("missing required flag -a")
	}
	value, err := decimal.NewFromString(c.amount)
	if err != nil {
		return brique.Date{}, brique.Money{}, fmt.Errorf("invalid amount %q: %w", c.amount, err)
	}
	return day, brique.M(value, c.currency), nil
}

// allocFlag holds the optional manual loan allocation flag.
type allocFlag struct {
	allocation string
}

func (c *allocFlag) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.allocation, "loan", "", "Part of the amount applied to the loan. Defaults to the kind's own rule.")
}

// parse resolves the allocation flag, nil when absent.
func (c *allocFlag) parse(currency string) (*brique.Money, error) {
	if c.allocation == "" {
		return nil, nil
	}
	value, err := decimal.NewFromString(c.allocation)
	if err != nil {
		return nil, fmt.Errorf("invalid loan allocation %q: %w", c.allocation, err)
	}
	m := brique.M(value, currency)
	return &m, nil
}
