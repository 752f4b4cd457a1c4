package model

import (
	"time"

	"rentpay/shared/model"
)

const (
	TableName  = "transfers"
	EntityName = "transfer"

	FieldReference           = "transfer_reference"
	FieldBookingID           = "booking_id"
	FieldStatus              = "status"
	FieldConfirmedAtSequence = "confirmed_at_sequence"
	FieldFailureReason       = "failure_reason"
	FieldTimedOutAt          = "timed_out_at"
)

type Status string

const (
	StatusSubmitted Status = "SUBMITTED"
	StatusConfirmed Status = "CONFIRMED"
	StatusFailed    Status = "FAILED"
)

// Transfer is a signed transfer accepted by the settlement layer for one booking.
type Transfer struct {
	Reference           string     `db:"transfer_reference"`
	BookingID           string     `db:"booking_id"`
	FromAddress         string     `db:"from_address"`
	ToAddress           string     `db:"to_address"`
	Amount              int64      `db:"amount"`
	Status              Status     `db:"status"`
	ConfirmedAtSequence *int64     `db:"confirmed_at_sequence"`
	FailureReason       *string    `db:"failure_reason"`
	TimedOutAt          *time.Time `db:"timed_out_at"`
	model.Metadata
}

// Polling reports whether the transfer still waits on settlement and has not
// exhausted a polling session.
func (t Transfer) Polling() bool {
	return t.Status == StatusSubmitted && t.TimedOutAt == nil
}

func (t Transfer) Terminal() bool {
	return t.Status == StatusConfirmed || t.Status == StatusFailed
}
