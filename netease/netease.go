// Package netease fetches real-time quotes from the NetEase money API.
//
// The endpoint answers a JSONP document:
//
//	_ntes_quote_callback({"0600000":{"name":"浦发银行","price":11.0,…}});
//
// The wrapper is stripped and the named fields are extracted with jsonpath.
// Unlike the sina gateway, field names are a stable part of this API, but
// the digit market prefix (0 for Shanghai, 1 for Shenzhen) is its own
// convention and differs from the symbol's canonical form.
package netease

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"

	"github.com/yzhou/ashare"
)

const defaultBaseURL = "https://api.money.126.net/data/feed/"

// Client fetches quotes from the NetEase feed, one HTTP GET per symbol.
// It relies on the transport's default timeout.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New returns a Client using the given token, attached to every request when
// not empty.
func New(apiKey string) *Client {
	return &Client{baseURL: defaultBaseURL, apiKey: apiKey, http: new(http.Client)}
}

// gatewayCode translates a canonical symbol into NetEase's digit-prefixed
// code: sh600000 becomes 0600000 and sz000001 becomes 1000001.
func gatewayCode(s ashare.Symbol) string {
	if strings.HasPrefix(string(s), "sz") {
		return "1" + s.Code()
	}
	return "0" + s.Code()
}

// Quote implements ashare.Quoter.
func (c *Client) Quote(s ashare.Symbol) (*ashare.Quote, error) {
	code := gatewayCode(s)
	addr := c.baseURL + code + ",money.api"
	if c.apiKey != "" {
		addr += "?token=" + url.QueryEscape(c.apiKey)
	}
	resp, err := c.http.Get(addr)
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
	jobj, err := decode(body)
	if err != nil {
		return nil, err
	}
	return extract(s, code, jobj)
}

// decode strips the JSONP wrapper and parses the JSON inside.
func decode(payload []byte) (any, error) {
	s := string(payload)
	i, j := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if i < 0 || j <= i {
		return nil, fmt.Errorf("malformed payload: %.40q", s)
	}
	var jobj any
	if err := json.Unmarshal([]byte(s[i+1:j]), &jobj); err != nil {
		return nil, fmt.Errorf("malformed payload: %w", err)
	}
	return jobj, nil
}

// extract pulls the quote fields for one gateway code out of the decoded
// document. A symbol the feed does not know is simply absent from the
// document, which surfaces here as a jsonpath miss.
func extract(s ashare.Symbol, code string, jobj any) (*ashare.Quote, error) {
	var perr error
	num := func(field string) float64 {
		jval, err := jsonpath.Get(fmt.Sprintf("$[%q].%s", code, field), jobj)
		if err != nil {
			if perr == nil {
				perr = fmt.Errorf("no data for %s: %w", s, err)
			}
			return 0
		}
		val, ok := jval.(float64)
		if !ok && perr == nil {
			perr = fmt.Errorf("no data for %s: %q is not a number", s, field)
		}
		return val
	}
	str := func(field string) string {
		jval, err := jsonpath.Get(fmt.Sprintf("$[%q].%s", code, field), jobj)
		if err != nil {
			return ""
		}
		val, _ := jval.(string)
		return val
	}

	open := num("open")
	prevClose := num("yestclose")
	price := num("price")
	high := num("high")
	low := num("low")
	updown := num("updown")
	percent := num("percent") // a fraction, not a percentage
	if perr != nil {
		return nil, perr
	}

	return &ashare.Quote{
		Symbol:    s,
		Name:      str("name"),
		Date:      str("time"),
		Open:      decimal.NewFromFloat(open),
		High:      decimal.NewFromFloat(high),
		Low:       decimal.NewFromFloat(low),
		Close:     decimal.NewFromFloat(price),
		PrevClose: decimal.NewFromFloat(prevClose),
		Change:    decimal.NewFromFloat(updown),
		ChangePct: ashare.Percent(percent * 100),
	}, nil
}
