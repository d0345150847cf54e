// Package renderer turns portfolios and valuations into terminal tables.
//
// Gains are red and losses green, following the mainland market convention
// (the opposite of western tickers). The convention is applied to every
// colored cell; there is no per-column exception.
package renderer

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/yzhou/ashare"
)

var (
	gain = color.New(color.FgRed)
	loss = color.New(color.FgGreen)
)

// colorize renders s in the gain color when sign is positive and in the loss
// color when negative. A zero sign stays plain.
func colorize(s string, sign int) string {
	switch {
	case sign > 0:
		return gain.Sprint(s)
	case sign < 0:
		return loss.Sprint(s)
	}
	return s
}

// Valuation renders the per-position table with a totals footer.
func Valuation(w io.Writer, v *ashare.Valuation) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Symbol", "Name", "Shares", "Buy", "Price", "Today", "Value", "Profit", "Return"}),
		tablewriter.WithFooter([]string{"TOTAL", "", "", "", "", "",
			v.TotalValue.String(),
			colorize(v.TotalProfit.SignedString(), v.TotalProfit.Sign()),
			colorize(v.TotalReturn.SignedString(), v.TotalProfit.Sign()),
		}),
	)
	for _, r := range v.Rows {
		name := r.Position.Name
		if name == "" {
			name = r.Quote.Name
		}
		table.Append([]string{
			string(r.Position.Symbol),
			name,
			r.Position.Shares.String(),
			r.Position.PurchasePrice.StringFixed(2),
			r.Quote.Close.StringFixed(2),
			colorize(r.Quote.ChangePct.SignedString(), r.Quote.Change.Sign()),
			r.Value.String(),
			colorize(r.Profit.SignedString(), r.Profit.Sign()),
			colorize(r.Return.SignedString(), r.Profit.Sign()),
		})
	}
	table.Render()
}

// Summary renders the aggregate panel shown under the table in monitor mode.
// prev is the previous cycle's total return; pass NaN on the first cycle to
// suppress the direction marker.
func Summary(w io.Writer, v *ashare.Valuation, prev ashare.Percent) {
	marker := ""
	if !math.IsNaN(float64(prev)) {
		switch {
		case v.TotalReturn > prev:
			marker = " " + gain.Sprint("▲")
		case v.TotalReturn < prev:
			marker = " " + loss.Sprint("▼")
		default:
			marker = " ─"
		}
	}
	fmt.Fprintf(w, "\nCost %s   Value %s   Profit %s   Return %s%s\n",
		v.TotalCost,
		v.TotalValue,
		colorize(v.TotalProfit.SignedString(), v.TotalProfit.Sign()),
		colorize(v.TotalReturn.String(), v.TotalProfit.Sign()),
		marker,
	)
	fmt.Fprintf(w, "Updated %s\n", time.Now().Format("15:04:05"))
}

// Positions renders the stored portfolio without fetching any quote.
func Positions(w io.Writer, positions []*ashare.Position) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Symbol", "Name", "Shares", "Buy", "Cost", "Added"}),
	)
	for _, p := range positions {
		table.Append([]string{
			string(p.Symbol),
			p.Name,
			p.Shares.String(),
			p.PurchasePrice.StringFixed(2),
			p.Cost().String(),
			p.DateAdded.Format("2006-01-02"),
		})
	}
	table.Render()
}
