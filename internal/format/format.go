// Package format renders amounts, dates, and numbers for display. Grouping
// and decimal separators come from golang.org/x/text locale data so French
// and English conventions both come out right without manual string building.
package format

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// symbols maps common ISO 4217 codes to their display symbol. Codes without
// an entry render as the code itself.
var symbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"INR": "₹",
	"CHF": "CHF",
	"CAD": "$",
	"AUD": "$",
	"XOF": "FCFA",
	"MAD": "MAD",
}

// Currency formats an amount with locale grouping and the currency symbol.
// Whole amounts render without decimals; fractional amounts keep up to two
// digits. French-style locales place the symbol after the amount. Alphabetic
// symbols and bare ISO codes always follow the amount, separated by a
// non-breaking space, so "10 ZZZ" stays readable for any code.
func Currency(amount float64, code, locale string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	symbol, ok := symbols[code]
	if !ok {
		symbol = code
	}
	n := decimal(amount, locale, 2)
	switch {
	case symbol == "":
		return n
	case alphabetic(symbol) || symbolAfterAmount(locale):
		return n + " " + symbol
	default:
		return symbol + n
	}
}

// Date formats an ISO date (YYYY-MM-DD) per locale convention. An
// unparseable input is returned unchanged so a broken date never blocks an
// otherwise valid render.
func Date(iso, locale string) string {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(iso))
	if err != nil {
		if t, err = time.Parse(time.RFC3339, strings.TrimSpace(iso)); err != nil {
			return iso
		}
	}
	if baseLang(locale) == "fr" {
		return t.Format("02/01/2006")
	}
	return t.Format("Jan 2, 2006")
}

// Number formats a plain number with locale grouping, no currency symbol.
func Number(value float64, locale string) string {
	return decimal(value, locale, 6)
}

func decimal(value float64, locale string, maxFraction int) string {
	p := message.NewPrinter(language.Make(locale))
	return p.Sprint(number.Decimal(value, number.MaxFractionDigits(maxFraction)))
}

func baseLang(locale string) string {
	base, _ := language.Make(locale).Base()
	return base.String()
}

func symbolAfterAmount(locale string) bool {
	return baseLang(locale) == "fr"
}

func alphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
