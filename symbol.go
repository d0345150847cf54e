package ashare

import "strings"

// Symbol is an exchange-qualified A-share code, e.g. "sh600000" or
// "sz000001". It is both the unique key of a position and the parameter sent
// to the quote gateways, so Format must stay pure: same input, same output.
type Symbol string

func (s Symbol) String() string { return string(s) }

// Code returns the bare numeric code without the exchange prefix.
func (s Symbol) Code() string {
	c := string(s)
	if strings.HasPrefix(c, shanghai) || strings.HasPrefix(c, shenzhen) {
		return c[len(shanghai):]
	}
	return c
}

// Exchange prefixes as the CN quote gateways spell them.
const (
	shanghai = "sh"
	shenzhen = "sz"
)

// Format canonicalizes a stock code into its exchange-qualified form.
//
// Accepted inputs are the bare six-digit code ("600000"), the dotted form
// ("600000.SH"), or an already prefixed form ("SH600000"). Bare codes are
// classified by their leading digit: 6 is Shanghai, 0 and 3 are Shenzhen.
// Codes with any other leading digit (e.g. the Beijing exchange 8xxxxx
// range) are passed through unchanged; the gateways reject them at fetch
// time rather than here.
func Format(code string) Symbol {
	c := strings.ToLower(strings.TrimSpace(code))
	if i := strings.LastIndexByte(c, '.'); i >= 0 {
		bare, exch := c[:i], c[i+1:]
		if exch == shanghai || exch == shenzhen {
			return Symbol(exch + bare)
		}
		// unknown suffix, keep verbatim
		return Symbol(c)
	}
	if strings.HasPrefix(c, shanghai) || strings.HasPrefix(c, shenzhen) {
		return Symbol(c)
	}
	switch {
	case strings.HasPrefix(c, "6"):
		return Symbol(shanghai + c)
	case strings.HasPrefix(c, "0"), strings.HasPrefix(c, "3"):
		return Symbol(shenzhen + c)
	}
	return Symbol(c)
}
