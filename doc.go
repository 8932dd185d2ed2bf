// Package brique tracks a leveraged real-estate investment as a ledger
// of dated cash-flow events: capital drawn from a lender, capital paid
// in by the investor, rental and sale proceeds, and interest accruing
// on the outstanding debt.
//
// The engine is a pure pipeline: the outstanding loan balance, the
// allocation of receipts between debt paydown and investor return, the
// monthly interest schedule and the money-weighted annualized return
// (XIRR) are all recomputed in full from the event list every time
// they are needed. There is no incremental state to drift.
package brique
