package ashare

import "github.com/shopspring/decimal"

// Quote is a point-in-time price snapshot for one symbol. Quotes are
// produced fresh on every fetch and discarded after rendering; they are
// never persisted.
type Quote struct {
	Symbol    Symbol
	Name      string // display name as reported by the gateway
	Date      string // trading day as reported by the gateway
	Open      decimal.Decimal
	High      decimal.Decimal
	Low       decimal.Decimal
	Close     decimal.Decimal // latest price during the session
	PrevClose decimal.Decimal
	Change    decimal.Decimal // Close - PrevClose
	ChangePct Percent
}

// A Quoter returns the current quote for a single symbol, or an error when
// the gateway has no data for it. Implementations live in the provider
// packages (sina, netease).
type Quoter interface {
	Quote(s Symbol) (*Quote, error)
}
