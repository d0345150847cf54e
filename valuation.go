package ashare

import "log"

// Row is the valuation of a single position against its current quote.
type Row struct {
	Position *Position
	Quote    *Quote
	Cost     Money
	Value    Money
	Profit   Money
	Return   Percent
}

// Valuation is the result of one full pass over the portfolio.
//
// Positions whose quote fetch failed are excluded from Rows and from every
// total, so on a bad gateway day the totals understate the portfolio. The
// per-symbol warning on stderr is the only trace of that.
type Valuation struct {
	Rows        []Row
	TotalCost   Money
	TotalValue  Money
	TotalProfit Money
	TotalReturn Percent
}

// Valuate fetches a quote for every position, one request at a time, and
// computes cost, market value and unrealized profit per position plus the
// aggregate totals. A failed fetch is logged and skips its position; it
// never aborts the pass.
func Valuate(p *Portfolio, q Quoter) *Valuation {
	v := &Valuation{}
	for _, pos := range p.Positions() {
		quote, err := q.Quote(pos.Symbol)
		if err != nil {
			log.Printf("warning: no data for %s: %v", pos.Symbol, err)
			continue
		}
		cost := pos.Cost()
		value := NewMoney(pos.Shares.Mul(quote.Close))
		profit := value.Sub(cost)
		v.Rows = append(v.Rows, Row{
			Position: pos,
			Quote:    quote,
			Cost:     cost,
			Value:    value,
			Profit:   profit,
			Return:   profit.PercentOf(cost),
		})
		v.TotalCost = v.TotalCost.Add(cost)
		v.TotalValue = v.TotalValue.Add(value)
		v.TotalProfit = v.TotalProfit.Add(profit)
	}
	v.TotalReturn = v.TotalProfit.PercentOf(v.TotalCost)
	return v
}
