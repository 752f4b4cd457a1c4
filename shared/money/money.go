// Package money keeps amounts in integer minor units and renders them for display.
package money

import (
	"github.com/shopspring/decimal"

	"rentpay/shared/constant"
)

const minorUnitExponent = -2

// ApplyBasisPoints returns amount * bps / 10000, rounded toward zero.
func ApplyBasisPoints(amount, bps int64) int64 {
	return amount * bps / constant.BasisPointsDenominator
}

// Decimal converts minor units to a major-unit decimal.
func Decimal(minor int64) decimal.Decimal {
	return decimal.New(minor, minorUnitExponent)
}

// Format renders minor units as "12.34 USD".
func Format(minor int64, currency string) string {
	return Decimal(minor).StringFixed(-minorUnitExponent) + " " + currency
}

// Percent renders basis points as a percentage string, e.g. 1050 -> "10.5".
func Percent(bps int64) string {
	return decimal.New(bps, minorUnitExponent).String()
}
