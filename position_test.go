package ashare

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func TestAddMergesWithWeightedAverage(t *testing.T) {
	p := NewPortfolio()
	p.Add("600000", dec(100), dec(10.00), "")
	pos := p.Add("600000", dec(100), dec(12.00), "")

	if p.Len() != 1 {
		t.Fatalf("Len() = %d; want 1", p.Len())
	}
	if !pos.Shares.Equal(dec(200)) {
		t.Errorf("Shares = %s; want 200", pos.Shares)
	}
	if !pos.PurchasePrice.Equal(dec(11.00)) {
		t.Errorf("PurchasePrice = %s; want 11", pos.PurchasePrice)
	}
	if pos.DateModified.Before(pos.DateAdded) {
		t.Errorf("DateModified %v is before DateAdded %v", pos.DateModified, pos.DateAdded)
	}
}

func TestAddMergesUnevenLots(t *testing.T) {
	p := NewPortfolio()
	p.Add("000001", dec(300), dec(9.00), "")
	pos := p.Add("000001", dec(100), dec(13.00), "")

	// (300*9 + 100*13) / 400 = 10
	if !pos.PurchasePrice.Equal(dec(10.00)) {
		t.Errorf("PurchasePrice = %s; want 10", pos.PurchasePrice)
	}
	if !pos.Shares.Equal(dec(400)) {
		t.Errorf("Shares = %s; want 400", pos.Shares)
	}
}

func TestAddNormalizesTheSymbol(t *testing.T) {
	p := NewPortfolio()
	p.Add("600000.SH", dec(100), dec(10), "")
	pos := p.Add("sh600000", dec(100), dec(10), "")

	if p.Len() != 1 {
		t.Fatalf("Len() = %d; want 1, dotted and prefixed forms must land on the same key", p.Len())
	}
	if pos.Symbol != "sh600000" {
		t.Errorf("Symbol = %q; want %q", pos.Symbol, "sh600000")
	}
}

func TestAddKeepsDistinctSymbols(t *testing.T) {
	p := NewPortfolio()
	p.Add("600000", dec(100), dec(10), "")
	p.Add("000001", dec(200), dec(20), "")

	if p.Len() != 2 {
		t.Fatalf("Len() = %d; want 2", p.Len())
	}
	if !p.Has("sh600000") || !p.Has("sz000001") {
		t.Errorf("portfolio misses a symbol: has sh600000=%v sz000001=%v", p.Has("sh600000"), p.Has("sz000001"))
	}
}

func TestRemoveAbsentLeavesPortfolioUnchanged(t *testing.T) {
	p := NewPortfolio()
	p.Add("600000", dec(100), dec(10), "")

	if pos := p.Remove("000001"); pos != nil {
		t.Errorf("Remove(absent) = %v; want nil", pos)
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d; want 1", p.Len())
	}
}

func TestRemovePresentDeletesTheWholePosition(t *testing.T) {
	p := NewPortfolio()
	p.Add("600000", dec(100), dec(10), "")
	p.Add("000001", dec(200), dec(20), "")

	pos := p.Remove("600000")
	if pos == nil {
		t.Fatal("Remove(present) = nil; want the removed position")
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d; want 1", p.Len())
	}
	if p.Has("sh600000") {
		t.Error("sh600000 still resolves after Remove")
	}
	if p.Get("sh600000") != nil {
		t.Error("Get(sh600000) is not nil after Remove")
	}
}

func TestRemoveByDisplayName(t *testing.T) {
	p := NewPortfolio()
	p.Add("600000", dec(100), dec(10), "浦发银行")

	pos := p.Remove("浦发银行")
	if pos == nil {
		t.Fatal("Remove(by name) = nil; want the removed position")
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d; want 0", p.Len())
	}
}

func TestPositionCost(t *testing.T) {
	p := NewPortfolio()
	pos := p.Add("600000", dec(100), dec(10.50), "")
	if !pos.Cost().Equal(M(1050)) {
		t.Errorf("Cost() = %s; want %s", pos.Cost(), M(1050))
	}
}
