package model

import (
	"fmt"
	"reflect"
	"slices"
	"time"

	"rentpay/shared/constant"
	"rentpay/shared/failure"
	"rentpay/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                     = "id"
	FieldRenterID               = "renter_id"
	FieldHostID                 = "host_id"
	FieldPropertyID             = "property_id"
	FieldCheckIn                = "check_in"
	FieldCheckOut               = "check_out"
	FieldStatus                 = "status"
	FieldTransferReference      = "transfer_reference"
	FieldSettledAmount          = "settled_amount"
	FieldConfirmedSequence      = "confirmed_sequence"
	FieldEscrowReleased         = "escrow_released"
	FieldEscrowReleaseReference = "escrow_release_reference"
	FieldCancelledAt            = "cancelled_at"
	FieldCancelReason           = "cancel_reason"
	FieldConfirmedAt            = "confirmed_at"
	FieldCheckedInAt            = "checked_in_at"
	FieldCompletedAt            = "completed_at"
	FieldVersion                = "version"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCheckedIn Status = "CHECKED_IN"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
	StatusRefunded  Status = "REFUNDED"
)

// ActiveStatuses hold the property's dates.
var ActiveStatuses = []Status{StatusPending, StatusConfirmed, StatusCheckedIn}

type Booking struct {
	ID                     string     `db:"id"`
	RenterID               string     `db:"renter_id"`
	HostID                 string     `db:"host_id"`
	HostAddress            string     `db:"host_address"`
	PropertyID             string     `db:"property_id"`
	CheckIn                time.Time  `db:"check_in"`
	CheckOut               time.Time  `db:"check_out"`
	NumGuests              int        `db:"num_guests"`
	HasPets                bool       `db:"has_pets"`
	Status                 Status     `db:"status"`
	PricePerNight          int64      `db:"price_per_night"`
	Nights                 int        `db:"nights"`
	LodgingAmount          int64      `db:"lodging_amount"`
	DiscountAmount         int64      `db:"discount_amount"`
	BaseAmount             int64      `db:"base_amount"`
	CleaningFee            int64      `db:"cleaning_fee"`
	PetFee                 int64      `db:"pet_fee"`
	ServiceFee             int64      `db:"service_fee"`
	FeeBasisPoints         int64      `db:"fee_basis_points"`
	FeesAmount             int64      `db:"fees_amount"`
	TotalAmount            int64      `db:"total_amount"`
	CancellationPolicy     string     `db:"cancellation_policy"`
	TransferReference      *string    `db:"transfer_reference"`
	SettledAmount          int64      `db:"settled_amount"`
	ConfirmedSequence      int64      `db:"confirmed_sequence"`
	EscrowReleased         bool       `db:"escrow_released"`
	EscrowReleaseReference *string    `db:"escrow_release_reference"`
	CancelledAt            *time.Time `db:"cancelled_at"`
	CancelReason           *string    `db:"cancel_reason"`
	ConfirmedAt            *time.Time `db:"confirmed_at"`
	CheckedInAt            *time.Time `db:"checked_in_at"`
	CompletedAt            *time.Time `db:"completed_at"`
	Version                int64      `db:"version"`
	model.Metadata
}

// Columns picks the named db columns out of b for an update.
func (b Booking) Columns(names ...string) map[string]any {
	val := reflect.ValueOf(b)
	typ := val.Type()
	fields := make(map[string]any, len(names))

	for i := range typ.NumField() {
		tag := typ.Field(i).Tag.Get("db")
		if tag != "" && slices.Contains(names, tag) {
			fields[tag] = val.Field(i).Interface()
		}
	}

	return fields
}

// Reference returns the attached transfer reference, or "" when none is attached.
func (b Booking) Reference() string {
	if b.TransferReference == nil {
		return constant.Empty
	}

	return *b.TransferReference
}

func (b Booking) IsParticipant(userID string) bool {
	return userID != constant.Empty && (b.RenterID == userID || b.HostID == userID)
}

// WasConfirmed reports whether settlement ever confirmed this booking.
func (b Booking) WasConfirmed() bool {
	return b.ConfirmedAt != nil
}

// SettledAfterCancel reports a transfer that settled only after the booking was cancelled.
func (b Booking) SettledAfterCancel() bool {
	return b.CancelledAt != nil && b.ConfirmedAt != nil && b.ConfirmedAt.After(*b.CancelledAt)
}

func (b Booking) CanAttachTransfer() error {
	if b.Status != StatusPending {
		return fmt.Errorf("%w: booking is %s", failure.ErrConflict, b.Status)
	}

	if b.TransferReference != nil {
		return fmt.Errorf("%w: transfer %s is still attached", failure.ErrConflict, *b.TransferReference)
	}

	return nil
}

func (b Booking) CanCancel() error {
	switch b.Status {
	case StatusPending, StatusConfirmed:
		return nil
	default:
		return fmt.Errorf("%w: cannot cancel a %s booking", failure.ErrConflict, b.Status)
	}
}

// CanCheckIn requires the stay to have started unless an admin overrides it.
func (b Booking) CanCheckIn(now time.Time, override bool) error {
	if b.Status != StatusConfirmed {
		return fmt.Errorf("%w: cannot check in a %s booking", failure.ErrConflict, b.Status)
	}

	if !override && now.Before(b.CheckIn) {
		return fmt.Errorf("%w: check-in opens at %s", failure.ErrNotEligible, b.CheckIn.Format(constant.DateFormat))
	}

	return nil
}

func (b Booking) CanCheckOut() error {
	if b.Status != StatusCheckedIn {
		return fmt.Errorf("%w: cannot check out a %s booking", failure.ErrConflict, b.Status)
	}

	return nil
}

type StatusHistory struct {
	ID         string    `db:"id"`
	BookingID  string    `db:"booking_id"`
	FromStatus Status    `db:"from_status"`
	ToStatus   Status    `db:"to_status"`
	Event      string    `db:"event"`
	Actor      string    `db:"actor"`
	Reason     string    `db:"reason"`
	CreatedAt  time.Time `db:"created_at"`
}

const (
	HistoryTableName  = "booking_status_histories"
	HistoryEntityName = "booking_status_history"

	FieldHistoryID        = "id"
	FieldHistoryBookingID = "booking_id"
	FieldHistoryCreatedAt = "created_at"
)

// AppliedEvent marks a transition as done so a replay of the same event is a no-op.
type AppliedEvent struct {
	EventKey  string    `db:"event_key"`
	BookingID string    `db:"booking_id"`
	AppliedAt time.Time `db:"applied_at"`
}

const (
	AppliedEventTableName  = "booking_applied_events"
	AppliedEventEntityName = "booking_applied_event"

	FieldEventKey = "event_key"
)

// Transition is one compare-and-set step of the ledger.
type Transition struct {
	BookingID string
	Version   int64
	Fields    map[string]any
	History   StatusHistory
	EventKey  string
}

const (
	EventCreated          = "created"
	EventTransferAttached = "transfer_attached"
	EventConfirmed        = "transfer_confirmed"
	EventFailed           = "transfer_failed"
	EventTimeout          = "polling_timeout"
	EventCancelled        = "cancelled"
	EventCheckedIn        = "checked_in"
	EventCheckedOut       = "checked_out"
	EventEscrowReleased   = "escrow_released"
	EventRefunded         = "refunded"
)

func ConfirmKey(ref string) string { return "confirm:" + ref }
func FailKey(ref string) string { return "fail:" + ref }
func TimeoutKey(ref string) string { return "timeout:" + ref }
func EscrowKey(bookingID string) string { return "escrow:" + bookingID }
func RefundKey(bookingID string) string { return "refund:" + bookingID }
