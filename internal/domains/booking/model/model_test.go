package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rentpay/internal/domains/booking/model"
	"rentpay/shared/failure"
)

func ref(s string) *string { return &s }

func TestBooking_CanAttachTransfer(t *testing.T) {
	tests := []struct {
		name    string
		booking model.Booking
		wantErr error
	}{
		{name: "pending without transfer", booking: model.Booking{Status: model.StatusPending}},
		{name: "pending with transfer", booking: model.Booking{Status: model.StatusPending, TransferReference: ref("0xabc")}, wantErr: failure.ErrConflict},
		{name: "confirmed", booking: model.Booking{Status: model.StatusConfirmed}, wantErr: failure.ErrConflict},
		{name: "cancelled", booking: model.Booking{Status: model.StatusCancelled}, wantErr: failure.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.booking.CanAttachTransfer()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBooking_CanCancel(t *testing.T) {
	allowed := map[model.Status]bool{
		model.StatusPending:   true,
		model.StatusConfirmed: true,
		model.StatusCheckedIn: false,
		model.StatusCompleted: false,
		model.StatusCancelled: false,
		model.StatusRefunded:  false,
	}

	for status, ok := range allowed {
		t.Run(string(status), func(t *testing.T) {
			err := model.Booking{Status: status}.CanCancel()
			if ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, failure.ErrConflict)
			}
		})
	}
}

func TestBooking_CanCheckIn(t *testing.T) {
	checkIn := time.Date(2026, 7, 1, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		status   model.Status
		now      time.Time
		override bool
		wantErr  error
	}{
		{name: "on time", status: model.StatusConfirmed, now: checkIn},
		{name: "late", status: model.StatusConfirmed, now: checkIn.Add(48 * time.Hour)},
		{name: "early", status: model.StatusConfirmed, now: checkIn.Add(-time.Hour), wantErr: failure.ErrNotEligible},
		{name: "early with override", status: model.StatusConfirmed, now: checkIn.Add(-time.Hour), override: true},
		{name: "not paid", status: model.StatusPending, now: checkIn, wantErr: failure.ErrConflict},
		{name: "override does not skip payment", status: model.StatusPending, now: checkIn, override: true, wantErr: failure.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := model.Booking{Status: tt.status, CheckIn: checkIn}.CanCheckIn(tt.now, tt.override)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBooking_CanCheckOut(t *testing.T) {
	assert.NoError(t, model.Booking{Status: model.StatusCheckedIn}.CanCheckOut())
	assert.ErrorIs(t, model.Booking{Status: model.StatusConfirmed}.CanCheckOut(), failure.ErrConflict)
}

func TestBooking_Helpers(t *testing.T) {
	booking := model.Booking{RenterID: "renter-1", HostID: "host-1"}

	assert.Equal(t, "", booking.Reference())
	assert.False(t, booking.WasConfirmed())
	assert.True(t, booking.IsParticipant("renter-1"))
	assert.True(t, booking.IsParticipant("host-1"))
	assert.False(t, booking.IsParticipant("someone-else"))
	assert.False(t, booking.IsParticipant(""))

	now := time.Now()
	booking.TransferReference = ref("0xabc")
	booking.ConfirmedAt = &now

	assert.Equal(t, "0xabc", booking.Reference())
	assert.True(t, booking.WasConfirmed())
	assert.False(t, booking.SettledAfterCancel())

	cancelled := now.Add(-time.Minute)
	booking.CancelledAt = &cancelled

	assert.True(t, booking.SettledAfterCancel())

	cancelled = now.Add(time.Minute)

	assert.False(t, booking.SettledAfterCancel())
}

func TestEventKeys(t *testing.T) {
	assert.Equal(t, "confirm:0xabc", model.ConfirmKey("0xabc"))
	assert.Equal(t, "fail:0xabc", model.FailKey("0xabc"))
	assert.Equal(t, "timeout:0xabc", model.TimeoutKey("0xabc"))
	assert.Equal(t, "escrow:b-1", model.EscrowKey("b-1"))
	assert.Equal(t, "refund:b-1", model.RefundKey("b-1"))
}

func TestBooking_Columns(t *testing.T) {
	booking := model.Booking{Status: model.StatusConfirmed, SettledAmount: 352}

	fields := booking.Columns(model.FieldStatus, model.FieldSettledAmount, model.FieldTransferReference)

	assert.Equal(t, map[string]any{
		model.FieldStatus:            model.StatusConfirmed,
		model.FieldSettledAmount:     int64(352),
		model.FieldTransferReference: (*string)(nil),
	}, fields)
}
