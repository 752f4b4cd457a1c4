package dto

import (
	"time"

	bookingModel "rentpay/internal/domains/booking/model"
	escrowModel "rentpay/internal/domains/escrow/model"
	transferModel "rentpay/internal/domains/transfer/model"
	transferService "rentpay/internal/domains/transfer/service"
	"rentpay/shared/constant"
	"rentpay/shared/timezone"
)

// PaymentRequest carries a transaction the payer signed in their wallet, hex encoded.
type PaymentRequest struct {
	SignedTransaction string `json:"signed_transaction" validate:"required,startswith=0x,max=8192"`
}

type ReasonRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type TransferResponse struct {
	TransferReference string `json:"transfer_reference"`
	BookingID         string `json:"booking_id"`
	Amount            int64  `json:"amount"`
	Status            string `json:"status"`
	FailureReason     string `json:"failure_reason,omitempty"`
	TimedOut          bool   `json:"timed_out"`
}

func (r *TransferResponse) FromModel(m transferModel.Transfer) {
	r.TransferReference = m.Reference
	r.BookingID = m.BookingID
	r.Amount = m.Amount
	r.Status = string(m.Status)
	r.TimedOut = m.TimedOutAt != nil

	if m.FailureReason != nil {
		r.FailureReason = *m.FailureReason
	}
}

type PollingResponse struct {
	Attempt     int    `json:"attempt"`
	MaxAttempts int    `json:"max_attempts"`
	LastStatus  string `json:"last_status,omitempty"`
	StartedAt   string `json:"started_at"`
}

func (r *PollingResponse) FromSession(s transferService.Session) {
	r.Attempt = s.Attempt
	r.MaxAttempts = s.MaxAttempts
	r.LastStatus = string(s.LastStatus)
	r.StartedAt = timezone.Format(s.StartedAt, constant.DateFormat)
}

type StatusResponse struct {
	BookingID         string           `json:"booking_id"`
	Status            string           `json:"status"`
	TransferReference string           `json:"transfer_reference,omitempty"`
	TransferStatus    string           `json:"transfer_status,omitempty"`
	SettledAmount     int64            `json:"settled_amount"`
	EscrowReleased    bool             `json:"escrow_released"`
	Polling           *PollingResponse `json:"polling,omitempty"`
}

func (r *StatusResponse) FromModel(m bookingModel.Booking) {
	r.BookingID = m.ID
	r.Status = string(m.Status)
	r.TransferReference = m.Reference()
	r.SettledAmount = m.SettledAmount
	r.EscrowReleased = m.EscrowReleased
}

type RefundResponse struct {
	ID                string `json:"id"`
	BookingID         string `json:"booking_id"`
	Kind              string `json:"kind"`
	Policy            string `json:"policy"`
	Tier              string `json:"tier"`
	RefundBasisPoints int64  `json:"refund_basis_points"`
	SettledAmount     int64  `json:"settled_amount"`
	Amount            int64  `json:"amount"`
	Reason            string `json:"reason,omitempty"`
	CreatedAt         string `json:"created_at"`
}

func (r *RefundResponse) FromModel(m escrowModel.Refund) {
	r.ID = m.ID
	r.BookingID = m.BookingID
	r.Kind = string(m.Kind)
	r.Policy = m.Policy
	r.Tier = m.TierLabel
	r.RefundBasisPoints = m.RefundBasisPoints
	r.SettledAmount = m.SettledAmount
	r.Amount = m.Amount
	r.Reason = m.Reason
	r.CreatedAt = formatTime(m.CreatedAt)
}

type CancelResponse struct {
	Status string          `json:"status"`
	Refund *RefundResponse `json:"refund,omitempty"`
}

type ReleaseResponse struct {
	ID               string `json:"id"`
	BookingID        string `json:"booking_id"`
	HostID           string `json:"host_id"`
	HostAddress      string `json:"host_address"`
	Amount           int64  `json:"amount"`
	ReleaseReference string `json:"release_reference"`
	CreatedAt        string `json:"created_at"`
}

func (r *ReleaseResponse) FromModel(m escrowModel.Release) {
	r.ID = m.ID
	r.BookingID = m.BookingID
	r.HostID = m.HostID
	r.HostAddress = m.HostAddress
	r.Amount = m.Amount
	r.ReleaseReference = m.ReleaseReference
	r.CreatedAt = formatTime(m.CreatedAt)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return constant.Empty
	}

	return timezone.Format(t, constant.DateFormat)
}
