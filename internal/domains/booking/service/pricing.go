package service

import (
	"rentpay/infras/listing"
	"rentpay/shared/money"
)

const (
	weeklyNights  = 7
	monthlyNights = 28
)

// Quote is a price breakdown in minor units. Total is always Base + Fees.
type Quote struct {
	PricePerNight  int64
	Nights         int
	Lodging        int64
	Discount       int64
	Base           int64
	CleaningFee    int64
	PetFee         int64
	FeeBasisPoints int64
	ServiceFee     int64
	Fees           int64
	Total          int64
}

// Price quotes a stay. The longest-stay discount the property offers wins, and the
// service fee is charged on lodging after discount plus cleaning and pet fees.
func Price(property listing.Property, nights int, hasPets bool, defaultFeeBps int64) Quote {
	quote := Quote{
		PricePerNight:  property.PricePerNight,
		Nights:         nights,
		Lodging:        property.PricePerNight * int64(nights),
		CleaningFee:    property.CleaningFee,
		FeeBasisPoints: property.PlatformFeeBps,
	}

	switch {
	case nights >= monthlyNights && property.MonthlyDiscountBps > 0:
		quote.Discount = money.ApplyBasisPoints(quote.Lodging, property.MonthlyDiscountBps)
	case nights >= weeklyNights && property.WeeklyDiscountBps > 0:
		quote.Discount = money.ApplyBasisPoints(quote.Lodging, property.WeeklyDiscountBps)
	}

	if hasPets {
		quote.PetFee = property.PetFee
	}

	if quote.FeeBasisPoints <= 0 {
		quote.FeeBasisPoints = defaultFeeBps
	}

	quote.Base = quote.Lodging - quote.Discount
	quote.ServiceFee = money.ApplyBasisPoints(quote.Base+quote.CleaningFee+quote.PetFee, quote.FeeBasisPoints)
	quote.Fees = quote.CleaningFee + quote.PetFee + quote.ServiceFee
	quote.Total = quote.Base + quote.Fees

	return quote
}
