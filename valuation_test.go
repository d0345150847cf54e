package ashare

import (
	"errors"
	"testing"
)

// fakeQuoter serves quotes from a map and fails for any other symbol.
type fakeQuoter map[Symbol]*Quote

func (f fakeQuoter) Quote(s Symbol) (*Quote, error) {
	q, ok := f[s]
	if !ok {
		return nil, errors.New("no data")
	}
	return q, nil
}

func TestValuateComputesCostValueProfitReturn(t *testing.T) {
	p := NewPortfolio()
	p.Add("600000", dec(100), dec(10.00), "")

	v := Valuate(p, fakeQuoter{
		"sh600000": {Symbol: "sh600000", Close: dec(11.00)},
	})

	if len(v.Rows) != 1 {
		t.Fatalf("len(Rows) = %d; want 1", len(v.Rows))
	}
	r := v.Rows[0]
	if !r.Cost.Equal(M(1000)) {
		t.Errorf("Cost = %s; want %s", r.Cost, M(1000))
	}
	if !r.Value.Equal(M(1100)) {
		t.Errorf("Value = %s; want %s", r.Value, M(1100))
	}
	if !r.Profit.Equal(M(100)) {
		t.Errorf("Profit = %s; want %s", r.Profit, M(100))
	}
	if !r.Return.Equal(10) {
		t.Errorf("Return = %s; want 10%%", r.Return)
	}
	if !v.TotalReturn.Equal(10) {
		t.Errorf("TotalReturn = %s; want 10%%", v.TotalReturn)
	}
}

func TestValuateAccumulatesTotals(t *testing.T) {
	p := NewPortfolio()
	p.Add("600000", dec(100), dec(10.00), "")
	p.Add("000001", dec(200), dec(20.00), "")

	v := Valuate(p, fakeQuoter{
		"sh600000": {Symbol: "sh600000", Close: dec(11.00)},
		"sz000001": {Symbol: "sz000001", Close: dec(19.00)},
	})

	if len(v.Rows) != 2 {
		t.Fatalf("len(Rows) = %d; want 2", len(v.Rows))
	}
	if !v.TotalCost.Equal(M(5000)) {
		t.Errorf("TotalCost = %s; want %s", v.TotalCost, M(5000))
	}
	if !v.TotalValue.Equal(M(4900)) {
		t.Errorf("TotalValue = %s; want %s", v.TotalValue, M(4900))
	}
	if !v.TotalProfit.Equal(M(-100)) {
		t.Errorf("TotalProfit = %s; want %s", v.TotalProfit, M(-100))
	}
	if !v.TotalReturn.Equal(-2) {
		t.Errorf("TotalReturn = %s; want -2%%", v.TotalReturn)
	}
}

func TestValuateSkipsFailedFetches(t *testing.T) {
	p := NewPortfolio()
	p.Add("600000", dec(100), dec(10.00), "")
	p.Add("000001", dec(200), dec(20.00), "")

	// the quoter only knows one of the two symbols
	v := Valuate(p, fakeQuoter{
		"sh600000": {Symbol: "sh600000", Close: dec(11.00)},
	})

	if len(v.Rows) != 1 {
		t.Fatalf("len(Rows) = %d; want 1, the failed symbol must be absent", len(v.Rows))
	}
	if v.Rows[0].Position.Symbol != "sh600000" {
		t.Errorf("Rows[0] is %s; want sh600000", v.Rows[0].Position.Symbol)
	}
	// the failed position contributes zero to every total
	if !v.TotalCost.Equal(M(1000)) {
		t.Errorf("TotalCost = %s; want %s", v.TotalCost, M(1000))
	}
	if !v.TotalValue.Equal(M(1100)) {
		t.Errorf("TotalValue = %s; want %s", v.TotalValue, M(1100))
	}
	if !v.TotalProfit.Equal(M(100)) {
		t.Errorf("TotalProfit = %s; want %s", v.TotalProfit, M(100))
	}
}

func TestValuateEmptyPortfolio(t *testing.T) {
	v := Valuate(NewPortfolio(), fakeQuoter{})

	if len(v.Rows) != 0 {
		t.Fatalf("len(Rows) = %d; want 0", len(v.Rows))
	}
	if !v.TotalCost.IsZero() || !v.TotalValue.IsZero() || !v.TotalProfit.IsZero() {
		t.Errorf("totals are not zero: cost=%s value=%s profit=%s", v.TotalCost, v.TotalValue, v.TotalProfit)
	}
	// 0/0 is undefined and renders as "-"
	if got := v.TotalReturn.String(); got != "-" {
		t.Errorf("TotalReturn.String() = %q; want \"-\"", got)
	}
}
