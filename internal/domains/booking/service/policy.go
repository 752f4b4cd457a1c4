package service

import (
	"fmt"
	"time"

	"rentpay/config"
	"rentpay/infras/listing"
	"rentpay/shared/failure"
	"rentpay/shared/timezone"
)

// Nights counts calendar nights between two stay dates, ignoring clock time and DST.
func Nights(checkIn, checkOut time.Time) int {
	return timezone.CalendarDays(checkIn, checkOut)
}

// CheckStay applies the property's booking rules, falling back to configured defaults
// where the listing leaves a rule unset.
func CheckStay(cfg *config.Config, property listing.Property, checkIn, checkOut, now time.Time, guests int, hasPets bool) (int, error) {
	nights := Nights(checkIn, checkOut)
	if nights <= 0 {
		return 0, failure.ErrInvalidDateRange
	}

	if !property.Active {
		return 0, fmt.Errorf("%w: property is not accepting bookings", failure.ErrOutOfPolicy)
	}

	minNights := orDefault(property.MinStayNights, cfg.Booking.DefaultMinNights)
	maxNights := orDefault(property.MaxStayNights, cfg.Booking.DefaultMaxNights)
	advanceDays := orDefault(property.BookingAdvanceDays, cfg.Booking.DefaultAdvanceDays)

	today := timezone.StartOfDay(now)

	switch {
	case checkIn.Before(today):
		return 0, fmt.Errorf("%w: check-in is in the past", failure.ErrOutOfPolicy)
	case advanceDays > 0 && checkIn.After(today.AddDate(0, 0, advanceDays)):
		return 0, fmt.Errorf("%w: check-in is more than %d days ahead", failure.ErrOutOfPolicy, advanceDays)
	case minNights > 0 && nights < minNights:
		return 0, fmt.Errorf("%w: minimum stay is %d nights", failure.ErrOutOfPolicy, minNights)
	case maxNights > 0 && nights > maxNights:
		return 0, fmt.Errorf("%w: maximum stay is %d nights", failure.ErrOutOfPolicy, maxNights)
	case property.MaxGuests > 0 && guests > property.MaxGuests:
		return 0, fmt.Errorf("%w: at most %d guests", failure.ErrOutOfPolicy, property.MaxGuests)
	case hasPets && !property.PetsAllowed:
		return 0, fmt.Errorf("%w: pets are not allowed", failure.ErrOutOfPolicy)
	}

	return nights, nil
}

func orDefault(value, fallback int) int {
	if value > 0 {
		return value
	}

	return fallback
}
