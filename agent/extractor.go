// Package agent extracts ledger events from free text with a Gemini model.
package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ghilain/brique"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

const systemPrompt = `You extract cash-flow events of a leveraged real-estate
investment from free text. Event kinds:
- drawdown: money drawn from the lender
- payment: investor expense (purchase, fees, works)
- repayment: payment explicitly reducing the loan
- return: money coming back to the investor (sale proceeds)
- rental-income: rent received
Dates are ISO-8601. Amounts are positive numbers. When the text states
that part of a receipt pays down the loan, set loanAllocation to that
part. Extract only what the text states, never invent amounts or dates.`

// Extractor turns free text into candidate ledger events. The events
// it produces are proposals: the caller validates and confirms them
// before anything is recorded.
type Extractor struct {
	ModelName string
	chat      *genai.Chat
}

func NewExtractor() *Extractor {
	return &Extractor{ModelName: defaultModel}
}

// Start creates the underlying chat session.
func (e *Extractor) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
		ResponseMIMEType:  "application/json",
		ResponseSchema:    extractionSchema(),
	}
	chat, err := client.Chats.Create(ctx, e.ModelName, config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// extractionSchema constrains the model output to a parseable event list.
func extractionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"events": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"date": {
							Type:        genai.TypeString,
							Description: "Date of the event, ISO-8601.",
						},
						"kind": {
							Type: genai.TypeString,
							Enum: []string{"drawdown", "payment", "repayment", "return", "rental-income"},
						},
						"amount": {
							Type:        genai.TypeNumber,
							Description: "Positive amount of the event.",
						},
						"currency": {
							Type:        genai.TypeString,
							Description: "Currency code, e.g. EUR.",
						},
						"memo": {
							Type:        genai.TypeString,
							Description: "Short description of the event.",
						},
						"loanAllocation": {
							Type:        genai.TypeNumber,
							Description: "Part of the amount applied to the loan, when the text states one.",
						},
					},
					Required: []string{"date", "kind", "amount"},
				},
			},
		},
		Required: []string{"events"},
	}
}

// jevent is the decoding shape of one extracted event.
type jevent struct {
	Date           string   `json:"date"`
	Kind           string   `json:"kind"`
	Amount         float64  `json:"amount"`
	Currency       string   `json:"currency"`
	Memo           string   `json:"memo"`
	LoanAllocation *float64 `json:"loanAllocation"`
}

// Extract asks the model to read events out of the given text.
func (e *Extractor) Extract(ctx context.Context, text string) ([]brique.Event, error) {
	if e.chat == nil {
		return nil, fmt.Errorf("extractor not started")
	}
	resp, err := e.chat.Send(ctx, &genai.Part{Text: text})
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from extractor")
	}

	var parsed struct {
		Events []jevent `json:"events"`
	}
	raw := resp.Candidates[0].Content.Parts[0].Text
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("cannot parse extractor response %q: %w", raw, err)
	}

	var events []brique.Event
	for i, j := range parsed.Events {
		evt, err := j.event()
		if err != nil {
			return nil, fmt.Errorf("extracted event %d: %w", i+1, err)
		}
		events = append(events, evt)
	}
	return events, nil
}

func (j jevent) event() (brique.Event, error) {
	day, err := brique.ParseDate(j.Date)
	if err != nil {
		return nil, err
	}
	sum := brique.M(j.Amount, j.Currency)
	var alloc *brique.Money
	if j.LoanAllocation != nil {
		m := brique.M(*j.LoanAllocation, j.Currency)
		alloc = &m
	}
	switch brique.EventKind(j.Kind) {
	case brique.KindDrawdown:
		return brique.NewDrawdown(day, j.Memo, sum), nil
	case brique.KindPayment:
		e := brique.NewPayment(day, j.Memo, sum)
		e.LoanAllocation = alloc
		return e, nil
	case brique.KindRepayment:
		e := brique.NewRepayment(day, j.Memo, sum)
		e.LoanAllocation = alloc
		return e, nil
	case brique.KindReturn:
		e := brique.NewReturn(day, j.Memo, sum)
		e.LoanAllocation = alloc
		return e, nil
	case brique.KindRentalIncome:
		e := brique.NewRentalIncome(day, j.Memo, sum)
		e.LoanAllocation = alloc
		return e, nil
	default:
		return nil, fmt.Errorf("unknown event kind %q", j.Kind)
	}
}
