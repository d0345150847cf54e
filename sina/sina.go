// Package sina fetches real-time quotes from the Sina hq gateway.
//
// The gateway answers one javascript assignment per requested symbol:
//
//	var hq_str_sh600000="浦发银行,10.40,10.00,11.00,11.20,9.90,…";
//
// The quoted payload is comma separated and addressed by position. The
// layout is a contract with the gateway, not with this program: keep the
// field constants in sync with what the gateway actually serves.
package sina

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yzhou/ashare"
)

const defaultBaseURL = "https://hq.sinajs.cn/list="

// the gateway rejects requests without a referer from the finance portal.
const referer = "https://finance.sina.com.cn"

// Positional layout of the payload.
const (
	fieldName      = 0
	fieldOpen      = 1
	fieldPrevClose = 2
	fieldPrice     = 3
	fieldHigh      = 4
	fieldLow       = 5
	fieldDate      = 30
	minFields      = 31
)

// Client fetches quotes from the Sina gateway, one HTTP GET per symbol.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New returns a Client using the given token. The token is attached to every
// request when not empty; the public gateway ignores it, licensed mirrors
// require it.
func New(apiKey string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		// the gateway answers in well under a second; anything slower is stuck
		http: &http.Client{Timeout: 5 * time.Second},
	}
}

// Quote implements ashare.Quoter.
func (c *Client) Quote(s ashare.Symbol) (*ashare.Quote, error) {
	addr := c.baseURL + url.QueryEscape(string(s))
	if c.apiKey != "" {
		addr += "?token=" + url.QueryEscape(c.apiKey)
	}
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Referer", referer)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return parse(s, string(body))
}

// parse decodes one gateway line into a quote. A short or malformed payload
// is an error, never a panic: a symbol unknown to the gateway answers with
// an empty string between the quotes.
func parse(s ashare.Symbol, payload string) (*ashare.Quote, error) {
	_, rest, ok := strings.Cut(payload, `"`)
	raw, _, ok2 := strings.Cut(rest, `"`)
	if !ok || !ok2 {
		return nil, fmt.Errorf("malformed payload for %s: %.40q", s, payload)
	}
	fields := strings.Split(raw, ",")
	if len(fields) < minFields {
		return nil, fmt.Errorf("no data for %s: got %d fields, want at least %d", s, len(fields), minFields)
	}

	var perr error
	dec := func(i int) decimal.Decimal {
		d, err := decimal.NewFromString(strings.TrimSpace(fields[i]))
		if err != nil && perr == nil {
			perr = fmt.Errorf("bad field %d for %s: %w", i, s, err)
		}
		return d
	}
	open := dec(fieldOpen)
	prevClose := dec(fieldPrevClose)
	price := dec(fieldPrice)
	high := dec(fieldHigh)
	low := dec(fieldLow)
	if perr != nil {
		return nil, perr
	}

	change := price.Sub(prevClose)
	pct := ashare.Percent(change.InexactFloat64() / prevClose.InexactFloat64() * 100)
	return &ashare.Quote{
		Symbol:    s,
		Name:      fields[fieldName],
		Date:      fields[fieldDate],
		Open:      open,
		High:      high,
		Low:       low,
		Close:     price,
		PrevClose: prevClose,
		Change:    change,
		ChangePct: pct,
	}, nil
}
