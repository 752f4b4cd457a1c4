package dto

import (
	"time"

	"rentpay/internal/domains/booking/model"
	"rentpay/shared"
	"rentpay/shared/constant"
	gDto "rentpay/shared/dto"
	"rentpay/shared/money"
	"rentpay/shared/timezone"
)

type CreateBookingRequest struct {
	PropertyID string `json:"property_id" validate:"required,max=64"`
	CheckIn    string `json:"check_in"    validate:"required,day"`
	CheckOut   string `json:"check_out"   validate:"required,day"`
	NumGuests  int    `json:"num_guests"  validate:"required,min=1,max=64"`
	HasPets    bool   `json:"has_pets"`
}

// Stay parses the requested dates as midnight in the application timezone.
func (r *CreateBookingRequest) Stay() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DayFormat, r.CheckIn)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = timezone.Parse(constant.DayFormat, r.CheckOut)

	return checkIn, checkOut, err
}

type AttachTransferRequest struct {
	TransferReference string `json:"transfer_reference" validate:"required,max=128"`
}

type PriceBreakdown struct {
	PricePerNight  int64  `json:"price_per_night"`
	Nights         int    `json:"nights"`
	Lodging        int64  `json:"lodging"`
	Discount       int64  `json:"discount"`
	Base           int64  `json:"base"`
	CleaningFee    int64  `json:"cleaning_fee"`
	PetFee         int64  `json:"pet_fee"`
	ServiceFee     int64  `json:"service_fee"`
	FeeBasisPoints int64  `json:"fee_basis_points"`
	Fees           int64  `json:"fees"`
	Total          int64  `json:"total"`
	Currency       string `json:"currency"`
	DisplayTotal   string `json:"display_total"`
}

func (p *PriceBreakdown) FromModel(m model.Booking, currency string) {
	p.PricePerNight = m.PricePerNight
	p.Nights = m.Nights
	p.Lodging = m.LodgingAmount
	p.Discount = m.DiscountAmount
	p.Base = m.BaseAmount
	p.CleaningFee = m.CleaningFee
	p.PetFee = m.PetFee
	p.ServiceFee = m.ServiceFee
	p.FeeBasisPoints = m.FeeBasisPoints
	p.Fees = m.FeesAmount
	p.Total = m.TotalAmount
	p.Currency = currency
	p.DisplayTotal = money.Format(m.TotalAmount, currency)
}

type CreateBookingResponse struct {
	BookingID      string         `json:"booking_id"`
	Status         string         `json:"status"`
	PriceBreakdown PriceBreakdown `json:"price_breakdown"`
}

type BookingResponse struct {
	ID                 string         `json:"id"`
	PropertyID         string         `json:"property_id"`
	RenterID           string         `json:"renter_id"`
	HostID             string         `json:"host_id"`
	CheckIn            string         `json:"check_in"`
	CheckOut           string         `json:"check_out"`
	NumGuests          int            `json:"num_guests"`
	HasPets            bool           `json:"has_pets"`
	Status             string         `json:"status"`
	CancellationPolicy string         `json:"cancellation_policy"`
	PriceBreakdown     PriceBreakdown `json:"price_breakdown"`
	TransferReference  string         `json:"transfer_reference,omitempty"`
	SettledAmount      int64          `json:"settled_amount"`
	EscrowReleased     bool           `json:"escrow_released"`
	CancelledAt        string         `json:"cancelled_at,omitempty"`
	CancelReason       string         `json:"cancel_reason,omitempty"`
	ConfirmedAt        string         `json:"confirmed_at,omitempty"`
	CheckedInAt        string         `json:"checked_in_at,omitempty"`
	CompletedAt        string         `json:"completed_at,omitempty"`
	Version            int64          `json:"version"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(m model.Booking, currency string) {
	r.ID = m.ID
	r.PropertyID = m.PropertyID
	r.RenterID = m.RenterID
	r.HostID = m.HostID
	r.CheckIn = timezone.Format(m.CheckIn, constant.DayFormat)
	r.CheckOut = timezone.Format(m.CheckOut, constant.DayFormat)
	r.NumGuests = m.NumGuests
	r.HasPets = m.HasPets
	r.Status = string(m.Status)
	r.CancellationPolicy = m.CancellationPolicy
	r.PriceBreakdown.FromModel(m, currency)
	r.TransferReference = m.Reference()
	r.SettledAmount = m.SettledAmount
	r.EscrowReleased = m.EscrowReleased
	r.CancelledAt = formatOptional(m.CancelledAt)
	r.ConfirmedAt = formatOptional(m.ConfirmedAt)
	r.CheckedInAt = formatOptional(m.CheckedInAt)
	r.CompletedAt = formatOptional(m.CompletedAt)
	r.Version = m.Version
	r.Metadata = gDto.NewMetadata(m.Metadata)

	if m.CancelReason != nil {
		r.CancelReason = *m.CancelReason
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int, currency string) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod, currency)
	}
}

type HistoryResponse struct {
	FromStatus string `json:"from_status,omitempty"`
	ToStatus   string `json:"to_status"`
	Event      string `json:"event"`
	Actor      string `json:"actor"`
	Reason     string `json:"reason,omitempty"`
	CreatedAt  string `json:"created_at"`
}

func (r *HistoryResponse) FromModel(m model.StatusHistory) {
	r.FromStatus = string(m.FromStatus)
	r.ToStatus = string(m.ToStatus)
	r.Event = m.Event
	r.Actor = m.Actor
	r.Reason = m.Reason
	r.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)
}

func formatOptional(t *time.Time) string {
	if t == nil {
		return constant.Empty
	}

	return timezone.Format(*t, constant.DateFormat)
}
