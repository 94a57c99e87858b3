// Package currency provides the supported-currency enumeration and display
// formatting. Currency is a display label only; amounts are never converted
// between currencies.
package currency

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency represents an ISO 4217 currency code.
type Currency string

// Supported currencies.
const (
	USD Currency = "USD" // US Dollar
	EUR Currency = "EUR" // Euro
	GBP Currency = "GBP" // British Pound
	JPY Currency = "JPY" // Japanese Yen
	CAD Currency = "CAD" // Canadian Dollar
	AUD Currency = "AUD" // Australian Dollar
	CHF Currency = "CHF" // Swiss Franc
	MXN Currency = "MXN" // Mexican Peso
	BRL Currency = "BRL" // Brazilian Real
	ARS Currency = "ARS" // Argentine Peso
)

// Default is the currency used when none has been chosen yet: the first
// entry of the supported enumeration.
const Default = USD

// Info contains display metadata about a currency.
type Info struct {
	Code          Currency
	Name          string
	Symbol        string
	DecimalPlaces int  // Number of decimal places (e.g., 2 for USD, 0 for JPY)
	SymbolBefore  bool // Whether symbol appears before amount
}

// currencies maps currency codes to their info.
var currencies = map[Currency]Info{
	USD: {Code: USD, Name: "US Dollar", Symbol: "$", DecimalPlaces: 2, SymbolBefore: true},
	EUR: {Code: EUR, Name: "Euro", Symbol: "€", DecimalPlaces: 2, SymbolBefore: false},
	GBP: {Code: GBP, Name: "British Pound", Symbol: "£", DecimalPlaces: 2, SymbolBefore: true},
	JPY: {Code: JPY, Name: "Japanese Yen", Symbol: "¥", DecimalPlaces: 0, SymbolBefore: true},
	CAD: {Code: CAD, Name: "Canadian Dollar", Symbol: "$", DecimalPlaces: 2, SymbolBefore: true},
	AUD: {Code: AUD, Name: "Australian Dollar", Symbol: "$", DecimalPlaces: 2, SymbolBefore: true},
	CHF: {Code: CHF, Name: "Swiss Franc", Symbol: "CHF", DecimalPlaces: 2, SymbolBefore: true},
	MXN: {Code: MXN, Name: "Mexican Peso", Symbol: "$", DecimalPlaces: 2, SymbolBefore: true},
	BRL: {Code: BRL, Name: "Brazilian Real", Symbol: "R$", DecimalPlaces: 2, SymbolBefore: true},
	ARS: {Code: ARS, Name: "Argentine Peso", Symbol: "$", DecimalPlaces: 2, SymbolBefore: true},
}

// Supported returns all supported currency codes in enumeration order.
func Supported() []Currency {
	return []Currency{USD, EUR, GBP, JPY, CAD, AUD, CHF, MXN, BRL, ARS}
}

// SupportedCodes returns all supported currency codes as strings.
func SupportedCodes() []string {
	codes := Supported()
	result := make([]string, len(codes))
	for i, c := range codes {
		result[i] = string(c)
	}
	return result
}

// IsValid checks if a currency code is supported.
func IsValid(code Currency) bool {
	_, ok := currencies[code]
	return ok
}

// GetInfo returns metadata for a currency code.
func GetInfo(code Currency) (Info, bool) {
	info, ok := currencies[code]
	return info, ok
}

// Format renders an amount with the currency's symbol and decimal places.
// Unknown codes fall back to "<amount> <code>".
func Format(amount decimal.Decimal, code Currency) string {
	info, ok := GetInfo(code)
	if !ok {
		return fmt.Sprintf("%s %s", amount.StringFixed(2), code)
	}

	rounded := amount.StringFixed(int32(info.DecimalPlaces))
	if info.SymbolBefore {
		return info.Symbol + rounded
	}
	return rounded + info.Symbol
}
