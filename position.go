package ashare

import (
	"time"

	"github.com/shopspring/decimal"
)

// Position is one held symbol with its quantity and average cost basis.
// The timestamps are informational only and never enter a calculation.
type Position struct {
	Symbol        Symbol          `json:"symbol"`
	Name          string          `json:"name,omitempty"`
	Shares        decimal.Decimal `json:"shares"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	DateAdded     time.Time       `json:"dateAdded"`
	DateModified  time.Time       `json:"dateModified"`
}

// Cost returns the total cost basis of the position.
func (p *Position) Cost() Money { return NewMoney(p.Shares.Mul(p.PurchasePrice)) }

// Portfolio holds all positions, at most one per formatted symbol.
// Insertion order is preserved for display but carries no meaning.
type Portfolio struct {
	positions []*Position
	index     map[Symbol]*Position
}

// NewPortfolio returns a new empty portfolio.
func NewPortfolio() *Portfolio {
	return &Portfolio{
		positions: make([]*Position, 0),
		index:     make(map[Symbol]*Position),
	}
}

func (p *Portfolio) Len() int { return len(p.positions) }

func (p *Portfolio) Has(s Symbol) bool {
	_, ok := p.index[s]
	return ok
}

func (p *Portfolio) Get(s Symbol) *Position { return p.index[s] }

// Positions returns the positions in insertion order. The slice is a copy,
// the positions are not.
func (p *Portfolio) Positions() []*Position {
	list := make([]*Position, len(p.positions))
	copy(list, p.positions)
	return list
}

// Add records a purchase. Buying a symbol already held merges into the
// existing position: share counts add up and the purchase price becomes the
// weighted average of both cost bases. It returns the resulting position.
func (p *Portfolio) Add(code string, shares, price decimal.Decimal, name string) *Position {
	sym := Format(code)
	now := time.Now()
	if pos, ok := p.index[sym]; ok {
		oldCost := pos.Shares.Mul(pos.PurchasePrice)
		newCost := shares.Mul(price)
		total := pos.Shares.Add(shares)
		pos.PurchasePrice = oldCost.Add(newCost).Div(total)
		pos.Shares = total
		if name != "" {
			pos.Name = name
		}
		pos.DateModified = now
		return pos
	}
	pos := &Position{
		Symbol:        sym,
		Name:          name,
		Shares:        shares,
		PurchasePrice: price,
		DateAdded:     now,
		DateModified:  now,
	}
	p.positions = append(p.positions, pos)
	p.index[sym] = pos
	return pos
}

// Remove deletes the position matching the given code or, as a convenience,
// the given display name. The whole position goes at once; there is no
// partial-share removal. It returns the removed position, or nil when
// nothing matched — an absent symbol is not an error.
func (p *Portfolio) Remove(key string) *Position {
	pos, ok := p.index[Format(key)]
	if !ok {
		for _, q := range p.positions {
			if q.Name != "" && q.Name == key {
				pos, ok = q, true
				break
			}
		}
	}
	if !ok {
		return nil
	}
	delete(p.index, pos.Symbol)
	for i, q := range p.positions {
		if q == pos {
			p.positions = append(p.positions[:i], p.positions[i+1:]...)
			break
		}
	}
	return pos
}

// insert appends a decoded position without merging. The decoder uses it to
// rebuild the index while rejecting duplicate symbols itself.
func (p *Portfolio) insert(pos *Position) {
	p.positions = append(p.positions, pos)
	p.index[pos.Symbol] = pos
}
