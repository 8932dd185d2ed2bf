package brique

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// EventKind is a typed string for identifying cash-flow event kinds.
type EventKind string

// Event kinds recorded in a ledger.
const (
	KindDrawdown     EventKind = "drawdown"      // loan disbursement, increases the outstanding debt
	KindPayment      EventKind = "payment"       // investor cash outflow (expense), no loan effect by default
	KindRepayment    EventKind = "repayment"     // payment explicitly intended to reduce the loan
	KindReturn       EventKind = "return"        // investor cash inflow, possibly partially applied to the loan
	KindRentalIncome EventKind = "rental-income" // rent received, investor income by default
	KindInterest     EventKind = "interest"      // synthesized monthly interest expense
)

// Event defines the common interface for all cash-flow events recorded
// in the ledger. Events are immutable values: an edit replaces the
// event that carries the same Ref.
type Event interface {
	What() EventKind // What returns the kind of the event.
	When() Date      // When returns the date on which the event occurred.
	Ref() string     // Ref returns the stable unique id of the event.
	Sum() Money      // Sum returns the magnitude of the event; its effect is derived from the kind.
	Note() string    // Note returns the optional memo of the event.
	Equal(Event) bool
	Validate(l *Ledger) (Event, error)
}

// baseEvent carries the fields shared by every event kind.
type baseEvent struct {
	Kind EventKind `json:"kind"`
	ID   string    `json:"id"`
	Date Date      `json:"date"`
	Memo string    `json:"memo,omitempty"` // Memo provides an optional rationale or note for the event.
}

func (e baseEvent) What() EventKind { return e.Kind }
func (e baseEvent) When() Date      { return e.Date }
func (e baseEvent) Ref() string     { return e.ID }
func (e baseEvent) Note() string    { return e.Memo }

// Validate checks the base fields and applies quick fixes: a zero date
// becomes today, a blank id gets generated. Meant to be embedded in the
// kind-specific validation methods.
func (e *baseEvent) Validate() {
	if e.Date == (Date{}) {
		e.Date = Today()
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
}

// MarshalJSON implements the json.Marshaler interface for baseEvent.
func (e baseEvent) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", e.Kind)
	w.Append("id", e.ID)
	w.Append("date", e.Date)
	w.Optional("memo", e.Memo)
	return w.MarshalJSON()
}

// amtEvent is a component for events that carry a single magnitude.
type amtEvent struct {
	baseEvent
	Amount Money
}

func (e amtEvent) Sum() Money { return e.Amount }

// Validate checks the shared amount fields: the magnitude must be
// strictly positive, the sign always derives from the kind.
func (e *amtEvent) Validate() error {
	e.baseEvent.Validate()
	if !e.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive, got %s", e.Amount)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for amtEvent.
func (e amtEvent) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEvent)
	w.EmbedFrom(e.Amount)
	return w.MarshalJSON()
}

// --- Drawdown ---

// Drawdown represents a loan disbursement from the lender. It increases
// the outstanding debt and is never an investor cash flow.
type Drawdown struct {
	amtEvent
}

// NewDrawdown creates a new Drawdown event.
func NewDrawdown(day Date, memo string, amount Money) Drawdown {
	return Drawdown{amtEvent{baseEvent: baseEvent{Kind: KindDrawdown, Date: day, Memo: memo}, Amount: amount}}
}

func (e Drawdown) Equal(other Event) bool {
	o, ok := other.(Drawdown)
	return ok && e.baseEvent == o.baseEvent && e.Amount.Equal(o.Amount)
}

// Validate checks the Drawdown event's fields.
func (e Drawdown) Validate(l *Ledger) (Event, error) {
	if err := e.amtEvent.Validate(); err != nil {
		return e, err
	}
	return e, nil
}

// --- Payment ---

// Payment represents an investor cash outflow (purchase price, legal
// fees, works). By default it does not touch the loan; an explicit
// LoanAllocation marks the part of it that pays down the debt.
type Payment struct {
	amtEvent
	LoanAllocation *Money // optional investor-initiated debt paydown
}

// NewPayment creates a new Payment event.
func NewPayment(day Date, memo string, amount Money) Payment {
	return Payment{amtEvent: amtEvent{baseEvent: baseEvent{Kind: KindPayment, Date: day, Memo: memo}, Amount: amount}}
}

// NewAllocatedPayment creates a Payment of which 'allocation' explicitly pays down the loan.
func NewAllocatedPayment(day Date, memo string, amount, allocation Money) Payment {
	p := NewPayment(day, memo, amount)
	p.LoanAllocation = &allocation
	return p
}

func (e Payment) Equal(other Event) bool {
	o, ok := other.(Payment)
	return ok && e.baseEvent == o.baseEvent && e.Amount.Equal(o.Amount) && moneyPtrEqual(e.LoanAllocation, o.LoanAllocation)
}

// Validate checks the Payment event's fields. A manual loan allocation
// exceeding the amount is corrected deterministically to the amount.
func (e Payment) Validate(l *Ledger) (Event, error) {
	if err := e.amtEvent.Validate(); err != nil {
		return e, err
	}
	if e.LoanAllocation != nil {
		if e.LoanAllocation.IsNegative() {
			return e, errors.New("loan allocation cannot be negative")
		}
		if e.LoanAllocation.GreaterThan(e.Amount) {
			clamped := e.Amount
			e.LoanAllocation = &clamped
		}
	}
	return e, nil
}

// MarshalJSON implements the json.Marshaler interface for Payment.
func (e Payment) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.amtEvent)
	if e.LoanAllocation != nil {
		w.Append("loanAllocation", e.LoanAllocation.value)
	}
	return w.MarshalJSON()
}

// --- Repayment ---

// Repayment represents a payment explicitly intended to reduce the
// loan. Any part beyond the outstanding balance is absorbed as net
// investor return, never a credit.
type Repayment struct {
	amtEvent
	LoanAllocation *Money // optional cap on the part applied to the loan
}

// NewRepayment creates a new Repayment event.
func NewRepayment(day Date, memo string, amount Money) Repayment {
	return Repayment{amtEvent: amtEvent{baseEvent: baseEvent{Kind: KindRepayment, Date: day, Memo: memo}, Amount: amount}}
}

// NewAllocatedRepayment creates a Repayment of which at most 'allocation' is applied to the loan.
func NewAllocatedRepayment(day Date, memo string, amount, allocation Money) Repayment {
	r := NewRepayment(day, memo, amount)
	r.LoanAllocation = &allocation
	return r
}

func (e Repayment) Equal(other Event) bool {
	o, ok := other.(Repayment)
	return ok && e.baseEvent == o.baseEvent && e.Amount.Equal(o.Amount) && moneyPtrEqual(e.LoanAllocation, o.LoanAllocation)
}

// Validate checks the Repayment event's fields.
func (e Repayment) Validate(l *Ledger) (Event, error) {
	if err := e.amtEvent.Validate(); err != nil {
		return e, err
	}
	if e.LoanAllocation != nil {
		if e.LoanAllocation.IsNegative() {
			return e, errors.New("loan allocation cannot be negative")
		}
		if e.LoanAllocation.GreaterThan(e.Amount) {
			clamped := e.Amount
			e.LoanAllocation = &clamped
		}
	}
	return e, nil
}

// MarshalJSON implements the json.Marshaler interface for Repayment.
func (e Repayment) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.amtEvent)
	if e.LoanAllocation != nil {
		w.Append("loanAllocation", e.LoanAllocation.value)
	}
	return w.MarshalJSON()
}

// --- Return ---

// Return represents an investor cash inflow, typically sale proceeds.
// Without a manual allocation it first pays down the outstanding loan;
// the remainder is the net investor return.
type Return struct {
	amtEvent
	LoanAllocation *Money // optional manual split: part applied to the loan
	NetReturn      *Money // optional manual split: part kept by the investor
}

// NewReturn creates a new Return event with automatic allocation.
func NewReturn(day Date, memo string, amount Money) Return {
	return Return{amtEvent: amtEvent{baseEvent: baseEvent{Kind: KindReturn, Date: day, Memo: memo}, Amount: amount}}
}

// NewAllocatedReturn creates a Return with a manual loan allocation.
func NewAllocatedReturn(day Date, memo string, amount, allocation Money) Return {
	r := NewReturn(day, memo, amount)
	r.LoanAllocation = &allocation
	return r
}

func (e Return) Equal(other Event) bool {
	o, ok := other.(Return)
	return ok && e.baseEvent == o.baseEvent && e.Amount.Equal(o.Amount) &&
		moneyPtrEqual(e.LoanAllocation, o.LoanAllocation) && moneyPtrEqual(e.NetReturn, o.NetReturn)
}

// Validate checks the Return event's fields. When both manual parts are
// present and do not sum to the amount, the net return is recomputed
// from the allocation: conservation wins over the stated split.
func (e Return) Validate(l *Ledger) (Event, error) {
	if err := e.amtEvent.Validate(); err != nil {
		return e, err
	}
	if e.LoanAllocation != nil {
		if e.LoanAllocation.IsNegative() {
			return e, errors.New("loan allocation cannot be negative")
		}
		if e.LoanAllocation.GreaterThan(e.Amount) {
			clamped := e.Amount
			e.LoanAllocation = &clamped
		}
		if e.NetReturn != nil && !e.LoanAllocation.Add(*e.NetReturn).Equal(e.Amount) {
			net := e.Amount.Sub(*e.LoanAllocation)
			e.NetReturn = &net
		}
	} else if e.NetReturn != nil {
		if e.NetReturn.IsNegative() || e.NetReturn.GreaterThan(e.Amount) {
			return e, fmt.Errorf("net return must be within [0, %s], got %s", e.Amount, e.NetReturn)
		}
		// a manual net return implies the complementary loan allocation
		alloc := e.Amount.Sub(*e.NetReturn)
		e.LoanAllocation = &alloc
	}
	return e, nil
}

// MarshalJSON implements the json.Marshaler interface for Return.
func (e Return) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.amtEvent)
	if e.LoanAllocation != nil {
		w.Append("loanAllocation", e.LoanAllocation.value)
	}
	if e.NetReturn != nil {
		w.Append("netReturn", e.NetReturn.value)
	}
	return w.MarshalJSON()
}

// --- RentalIncome ---

// RentalIncome represents rent received. It is investor income by
// default and reduces the loan only through an explicit allocation.
type RentalIncome struct {
	amtEvent
	LoanAllocation *Money // optional part applied to the loan
}

// NewRentalIncome creates a new RentalIncome event.
func NewRentalIncome(day Date, memo string, amount Money) RentalIncome {
	return RentalIncome{amtEvent: amtEvent{baseEvent: baseEvent{Kind: KindRentalIncome, Date: day, Memo: memo}, Amount: amount}}
}

// NewAllocatedRentalIncome creates a RentalIncome of which 'allocation' pays down the loan.
func NewAllocatedRentalIncome(day Date, memo string, amount, allocation Money) RentalIncome {
	r := NewRentalIncome(day, memo, amount)
	r.LoanAllocation = &allocation
	return r
}

func (e RentalIncome) Equal(other Event) bool {
	o, ok := other.(RentalIncome)
	return ok && e.baseEvent == o.baseEvent && e.Amount.Equal(o.Amount) && moneyPtrEqual(e.LoanAllocation, o.LoanAllocation)
}

// Validate checks the RentalIncome event's fields.
func (e RentalIncome) Validate(l *Ledger) (Event, error) {
	if err := e.amtEvent.Validate(); err != nil {
		return e, err
	}
	if e.LoanAllocation != nil {
		if e.LoanAllocation.IsNegative() {
			return e, errors.New("loan allocation cannot be negative")
		}
		if e.LoanAllocation.GreaterThan(e.Amount) {
			clamped := e.Amount
			e.LoanAllocation = &clamped
		}
	}
	return e, nil
}

// MarshalJSON implements the json.Marshaler interface for RentalIncome.
func (e RentalIncome) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.amtEvent)
	if e.LoanAllocation != nil {
		w.Append("loanAllocation", e.LoanAllocation.value)
	}
	return w.MarshalJSON()
}

// --- Interest ---

// InterestPeriod is one constant-principal sub-period of a month,
// attached to a synthesized Interest event as an audit breakdown.
type InterestPeriod struct {
	From      Date    `json:"from"`
	To        Date    `json:"to"` // inclusive
	Days      int     `json:"days"`
	Principal Money   `json:"principal"`
	Rate      Percent `json:"rate"` // annual nominal rate
	Interest  Money   `json:"interest"`
}

// Interest represents one month of interest accrued on the outstanding
// debt. Interest events are synthesized by the accrual engine, dated
// the last day of their month, and never feed back into the balance.
type Interest struct {
	amtEvent
	Periods []InterestPeriod // constant-principal sub-periods of the month
}

// NewInterest creates a new Interest event.
func NewInterest(day Date, memo string, amount Money, periods []InterestPeriod) Interest {
	return Interest{
		amtEvent: amtEvent{baseEvent: baseEvent{Kind: KindInterest, Date: day, Memo: memo}, Amount: amount},
		Periods:  periods,
	}
}

func (e Interest) Equal(other Event) bool {
	o, ok := other.(Interest)
	if !ok || e.baseEvent != o.baseEvent || !e.Amount.Equal(o.Amount) || len(e.Periods) != len(o.Periods) {
		return false
	}
	for i, p := range e.Periods {
		q := o.Periods[i]
		if p.From != q.From || p.To != q.To || p.Days != q.Days ||
			!p.Principal.Equal(q.Principal) || !p.Rate.Equal(q.Rate) || !p.Interest.Equal(q.Interest) {
			return false
		}
	}
	return true
}

// Validate checks the Interest event's fields.
func (e Interest) Validate(l *Ledger) (Event, error) {
	if err := e.amtEvent.Validate(); err != nil {
		return e, err
	}
	for _, p := range e.Periods {
		if p.To.Before(p.From) {
			return e, fmt.Errorf("interest period %s..%s is reversed", p.From, p.To)
		}
	}
	return e, nil
}

// MarshalJSON implements the json.Marshaler interface for Interest.
func (e Interest) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.amtEvent)
	if len(e.Periods) > 0 {
		w.Append("periods", e.Periods)
	}
	return w.MarshalJSON()
}

func moneyPtrEqual(a, b *Money) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
