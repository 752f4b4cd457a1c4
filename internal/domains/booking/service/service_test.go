package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rentpay/config"
	"rentpay/infras/listing"
	listingMocks "rentpay/infras/listing/mocks"
	"rentpay/infras/otel/mocks"
	bookingMocks "rentpay/internal/domains/booking/mocks"
	"rentpay/internal/domains/booking/model"
	"rentpay/internal/domains/booking/model/dto"
	"rentpay/internal/domains/booking/repository"
	"rentpay/internal/domains/booking/service"
	eventMocks "rentpay/internal/events/mocks"
	cacheMocks "rentpay/shared/cache/mocks"
	"rentpay/shared/constant"
	gDto "rentpay/shared/dto"
	"rentpay/shared/failure"
	"rentpay/shared/keylock"
	"rentpay/shared/timezone"
)

const transferRef = "0xfeed"

// filterOn matches a filter group whose first filter targets field.
type filterOn string

func (f filterOn) Matches(x any) bool {
	group, ok := x.(gDto.FilterGroup)
	if !ok || len(group.Filters) == 0 {
		return false
	}

	filter, ok := group.Filters[0].(gDto.Filter)

	return ok && filter.Field == string(f)
}

func (f filterOn) String() string {
	return "filter on " + string(f)
}

type harness struct {
	repo    *bookingMocks.MockBooking
	listing *listingMocks.MockClient
	ledger  service.Ledger
}

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.Payment.Currency = "USD"
	cfg.Booking.DefaultFeeBasisPoints = 1000
	cfg.Booking.DefaultMinNights = 1
	cfg.Booking.DefaultMaxNights = 365
	cfg.Booking.DefaultAdvanceDays = 365

	return cfg
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	ctrl := gomock.NewController(t)

	h := &harness{
		repo:    bookingMocks.NewMockBooking(ctrl),
		listing: listingMocks.NewMockClient(ctrl),
	}

	mockEvents := eventMocks.NewMockPublisher(ctrl)
	mockEvents.EXPECT().Publish(gomock.Any(), gomock.Any()).AnyTimes()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	h.ledger = service.New(h.repo, h.listing, mockEvents, mockCache, keylock.New(), newConfig(), mocks.NewOtel())

	return h
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "renter-1")
}

func pendingBooking() model.Booking {
	checkIn := timezone.Now().AddDate(0, 0, 10)

	return model.Booking{
		ID:                 "booking-1",
		RenterID:           "renter-1",
		HostID:             "host-1",
		PropertyID:         "prop-1",
		CheckIn:            checkIn,
		CheckOut:           checkIn.AddDate(0, 0, 3),
		Status:             model.StatusPending,
		BaseAmount:         300,
		FeesAmount:         52,
		TotalAmount:        352,
		CancellationPolicy: "moderate",
		Version:            1,
	}
}

func withTransfer(b model.Booking) model.Booking {
	ref := transferRef
	b.TransferReference = &ref

	return b
}

func TestLedger_Create(t *testing.T) {
	day := func(offset int) string {
		return timezone.Now().AddDate(0, 0, offset).Format(constant.DayFormat)
	}

	property := listing.Property{
		ID:                 "prop-1",
		HostID:             "host-1",
		HostAddress:        "0x00000000000000000000000000000000000000aa",
		PricePerNight:      100,
		CleaningFee:        20,
		MaxGuests:          2,
		CancellationPolicy: "moderate",
		Active:             true,
	}

	t.Run("three nights with cleaning and service fee", func(t *testing.T) {
		h := newHarness(t)

		var created model.Booking

		h.listing.EXPECT().GetProperty(gomock.Any(), "prop-1").Return(property, nil)
		h.listing.EXPECT().CheckAvailability(gomock.Any(), "prop-1", gomock.Any(), gomock.Any()).Return(true, nil)
		h.repo.EXPECT().Overlapping(gomock.Any(), "prop-1", gomock.Any(), gomock.Any()).Return(false, nil)
		h.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking, history model.StatusHistory) error {
				created = booking

				assert.Equal(t, model.StatusPending, history.ToStatus)
				assert.Equal(t, booking.ID, history.BookingID)

				return nil
			})

		res, err := h.ledger.Create(userContext(), dto.CreateBookingRequest{
			PropertyID: "prop-1",
			CheckIn:    day(10),
			CheckOut:   day(13),
			NumGuests:  2,
		})
		require.NoError(t, err)

		assert.Equal(t, "PENDING", res.Status)
		assert.Equal(t, created.ID, res.BookingID)
		assert.Equal(t, int64(300), res.PriceBreakdown.Base)
		assert.Equal(t, int64(32), res.PriceBreakdown.ServiceFee)
		assert.Equal(t, int64(352), res.PriceBreakdown.Total)
		assert.Equal(t, "3.52 USD", res.PriceBreakdown.DisplayTotal)

		assert.Equal(t, "renter-1", created.RenterID)
		assert.Equal(t, "host-1", created.HostID)
		assert.Equal(t, created.BaseAmount+created.FeesAmount, created.TotalAmount)
		assert.Equal(t, "moderate", created.CancellationPolicy)
		assert.Nil(t, created.TransferReference)
	})

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(h *harness)
		wantErr   error
	}{
		{
			name:      "check-out before check-in",
			req:       dto.CreateBookingRequest{PropertyID: "prop-1", CheckIn: day(10), CheckOut: day(10), NumGuests: 1},
			setupMock: func(*harness) {},
			wantErr:   failure.ErrInvalidDateRange,
		},
		{
			name: "too many guests",
			req:  dto.CreateBookingRequest{PropertyID: "prop-1", CheckIn: day(10), CheckOut: day(12), NumGuests: 5},
			setupMock: func(h *harness) {
				h.listing.EXPECT().GetProperty(gomock.Any(), "prop-1").Return(property, nil)
			},
			wantErr: failure.ErrOutOfPolicy,
		},
		{
			name: "listing reports dates taken",
			req:  dto.CreateBookingRequest{PropertyID: "prop-1", CheckIn: day(10), CheckOut: day(12), NumGuests: 1},
			setupMock: func(h *harness) {
				h.listing.EXPECT().GetProperty(gomock.Any(), "prop-1").Return(property, nil)
				h.listing.EXPECT().CheckAvailability(gomock.Any(), "prop-1", gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: failure.ErrConflict,
		},
		{
			name: "overlaps a local booking",
			req:  dto.CreateBookingRequest{PropertyID: "prop-1", CheckIn: day(10), CheckOut: day(12), NumGuests: 1},
			setupMock: func(h *harness) {
				h.listing.EXPECT().GetProperty(gomock.Any(), "prop-1").Return(property, nil)
				h.listing.EXPECT().CheckAvailability(gomock.Any(), "prop-1", gomock.Any(), gomock.Any()).Return(true, nil)
				h.repo.EXPECT().Overlapping(gomock.Any(), "prop-1", gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: failure.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			tt.setupMock(h)

			_, err := h.ledger.Create(userContext(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLedger_AttachTransfer(t *testing.T) {
	t.Run("attaches to a pending booking", func(t *testing.T) {
		h := newHarness(t)

		h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldID)).Return(pendingBooking(), nil)
		h.repo.EXPECT().Transition(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tr model.Transition) error {
				assert.Equal(t, int64(1), tr.Version)
				assert.Equal(t, model.StatusPending, tr.Fields[model.FieldStatus])
				assert.Equal(t, transferRef, *tr.Fields[model.FieldTransferReference].(*string))
				assert.Equal(t, "renter-1", tr.Fields[constant.FieldModifiedBy])
				assert.Empty(t, tr.EventKey)

				return nil
			})

		booking, err := h.ledger.AttachTransfer(userContext(), "booking-1", transferRef)
		require.NoError(t, err)
		assert.Equal(t, transferRef, booking.Reference())
		assert.Equal(t, int64(2), booking.Version)
	})

	t.Run("refuses a second active transfer", func(t *testing.T) {
		h := newHarness(t)

		h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldID)).Return(withTransfer(pendingBooking()), nil)

		_, err := h.ledger.AttachTransfer(userContext(), "booking-1", "0xother")
		assert.ErrorIs(t, err, failure.ErrConflict)
	})

	t.Run("unknown booking", func(t *testing.T) {
		h := newHarness(t)

		h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldID)).Return(model.Booking{}, nil)

		_, err := h.ledger.AttachTransfer(userContext(), "booking-1", transferRef)
		assert.ErrorIs(t, err, failure.ErrNotFound)
	})
}

func TestLedger_ApplyConfirmation(t *testing.T) {
	ctx := context.Background()

	t.Run("confirms a pending booking", func(t *testing.T) {
		h := newHarness(t)
		booking := withTransfer(pendingBooking())

		h.repo.EXPECT().EventApplied(gomock.Any(), model.ConfirmKey(transferRef)).Return(false, nil)
		h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldTransferReference)).Return(booking, nil)
		h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldID)).Return(booking, nil)
		h.repo.EXPECT().Transition(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tr model.Transition) error {
				assert.Equal(t, model.ConfirmKey(transferRef), tr.EventKey)
				assert.Equal(t, model.StatusConfirmed, tr.Fields[model.FieldStatus])
				assert.Equal(t, int64(352), tr.Fields[model.FieldSettledAmount])
				assert.Equal(t, int64(42), tr.Fields[model.FieldConfirmedSequence])
				assert.Equal(t, model.StatusPending, tr.History.FromStatus)
				assert.Equal(t, constant.ContextSystem, tr.History.Actor)

				return nil
			})

		got, err := h.ledger.ApplyConfirmation(ctx, transferRef, 352, 42)
		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, got.Status)
		assert.Equal(t, int64(352), got.SettledAmount)
		assert.True(t, got.WasConfirmed())
	})

	t.Run("replay is a no-op", func(t *testing.T) {
		h := newHarness(t)

		now := time.Now()
		confirmed := withTransfer(pendingBooking())
		confirmed.Status = model.StatusConfirmed
		confirmed.SettledAmount = 352
		confirmed.ConfirmedAt = &now
		confirmed.Version = 3

		h.repo.EXPECT().EventApplied(gomock.Any(), model.ConfirmKey(transferRef)).Return(true, nil)
		h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldTransferReference)).Return(confirmed, nil)
		h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldID)).Return(confirmed, nil)

		got, err := h.ledger.ApplyConfirmation(ctx, transferRef, 352, 42)
		require.NoError(t, err)
		assert.Equal(t, confirmed, got)
	})

	t.Run("amount mismatch never confirms", func(t *testing.T) {
		h := newHarness(t)
		booking := withTransfer(pendingBooking())

		h.repo.EXPECT().EventApplied(gomock.Any(), gomock.Any()).Return(false, nil)
		h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldTransferReference)).Return(booking, nil)
		h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldID)).Return(booking, nil)

		_, err := h.ledger.ApplyConfirmation(ctx, transferRef, 351, 42)
		assert.ErrorIs(t, err, failure.ErrAmountMismatch)
	})

	t.Run("unknown transfer", func(t *testing.T) {
		h := newHarness(t)

		h.repo.EXPECT().EventApplied(gomock.Any(), gomock.Any()).Return(false, nil)
		h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldTransferReference)).Return(model.Booking{}, nil)

		_, err := h.ledger.ApplyConfirmation(ctx, transferRef, 352, 42)
		assert.ErrorIs(t, err, failure.ErrNotFound)
	})

	t.Run("settlement after cancellation keeps the booking cancelled", func(t *testing.T) {
		h := newHarness(t)

		cancelled := withTransfer(pendingBooking())
		cancelled.Status = model.StatusCancelled

		h.repo.EXPECT().EventApplied(gomock.Any(), gomock.Any()).Return(false, nil)
		h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldTransferReference)).Return(cancelled, nil)
		h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldID)).Return(cancelled, nil)
		h.repo.EXPECT().Transition(gomock.Any(), gomock.Any()).Return(nil)

		got, err := h.ledger.ApplyConfirmation(ctx, transferRef, 352, 42)
		require.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, got.Status)
		assert.Equal(t, int64(352), got.SettledAmount)
		assert.False(t, got.EscrowReleased)
	})

	t.Run("lost version race", func(t *testing.T) {
		h := newHarness(t)
		booking := withTransfer(pendingBooking())

		h.repo.EXPECT().EventApplied(gomock.Any(), gomock.Any()).Return(false, nil)
		h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldTransferReference)).Return(booking, nil)
		h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldID)).Return(booking, nil)
		h.repo.EXPECT().Transition(gomock.Any(), gomock.Any()).Return(failure.ErrConflict)

		_, err := h.ledger.ApplyConfirmation(ctx, transferRef, 352, 42)
		assert.ErrorIs(t, err, failure.ErrConflict)
	})

	t.Run("concurrent duplicate resolves to the stored state", func(t *testing.T) {
		h := newHarness(t)
		booking := withTransfer(pendingBooking())

		confirmed := booking
		confirmed.Status = model.StatusConfirmed
		confirmed.SettledAmount = 352
		confirmed.Version = 2

		h.repo.EXPECT().EventApplied(gomock.Any(), gomock.Any()).Return(false, nil)
		h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldTransferReference)).Return(booking, nil)
		h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldID)).Return(booking, nil)
		h.repo.EXPECT().Transition(gomock.Any(), gomock.Any()).Return(repository.ErrEventApplied)
		h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldID)).Return(confirmed, nil)

		got, err := h.ledger.ApplyConfirmation(ctx, transferRef, 352, 42)
		require.NoError(t, err)
		assert.Equal(t, confirmed, got)
	})
}

func TestLedger_ApplyFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("clears the transfer and stays pending", func(t *testing.T) {
		h := newHarness(t)
		booking := withTransfer(pendingBooking())

		h.repo.EXPECT().EventApplied(gomock.Any(), model.FailKey(transferRef)).Return(false, nil)
		h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldTransferReference)).Return(booking, nil)
		h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldID)).Return(booking, nil)
		h.repo.EXPECT().Transition(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tr model.Transition) error {
				assert.Equal(t, model.StatusPending, tr.Fields[model.FieldStatus])
				assert.Nil(t, tr.Fields[model.FieldTransferReference])
				assert.Contains(t, tr.Fields, model.FieldTransferReference)
				assert.Equal(t, "transaction reverted", tr.History.Reason)

				return nil
			})

		require.NoError(t, h.ledger.ApplyFailure(ctx, transferRef, "transaction reverted"))
	})

	t.Run("replay is a no-op", func(t *testing.T) {
		h := newHarness(t)

		h.repo.EXPECT().EventApplied(gomock.Any(), model.FailKey(transferRef)).Return(true, nil)
		h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldTransferReference)).Return(model.Booking{}, nil)

		require.NoError(t, h.ledger.ApplyFailure(ctx, transferRef, "transaction reverted"))
	})

	t.Run("confirmed booking is not reopened", func(t *testing.T) {
		h := newHarness(t)

		confirmed := withTransfer(pendingBooking())
		confirmed.Status = model.StatusConfirmed

		h.repo.EXPECT().EventApplied(gomock.Any(), gomock.Any()).Return(false, nil)
		h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldTransferReference)).Return(confirmed, nil)
		h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldID)).Return(confirmed, nil)

		assert.ErrorIs(t, h.ledger.ApplyFailure(ctx, transferRef, "late failure"), failure.ErrConflict)
	})
}

func TestLedger_MarkTimeout(t *testing.T) {
	h := newHarness(t)
	booking := withTransfer(pendingBooking())

	h.repo.EXPECT().EventApplied(gomock.Any(), model.TimeoutKey(transferRef)).Return(false, nil)
	h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldTransferReference)).Return(booking, nil)
	h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldID)).Return(booking, nil)
	h.repo.EXPECT().Transition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tr model.Transition) error {
			assert.Equal(t, model.StatusPending, tr.Fields[model.FieldStatus])
			assert.NotContains(t, tr.Fields, model.FieldTransferReference)
			assert.Equal(t, model.EventTimeout, tr.History.Event)

			return nil
		})

	require.NoError(t, h.ledger.MarkTimeout(context.Background(), transferRef))
}

func TestLedger_Cancel(t *testing.T) {
	tests := []struct {
		name    string
		status  model.Status
		wantErr error
	}{
		{name: "pending", status: model.StatusPending},
		{name: "confirmed", status: model.StatusConfirmed},
		{name: "checked in", status: model.StatusCheckedIn, wantErr: failure.ErrConflict},
		{name: "completed", status: model.StatusCompleted, wantErr: failure.ErrConflict},
		{name: "already cancelled", status: model.StatusCancelled, wantErr: failure.ErrConflict},
		{name: "refunded", status: model.StatusRefunded, wantErr: failure.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			booking := pendingBooking()
			booking.Status = tt.status

			h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldID)).Return(booking, nil)

			if tt.wantErr == nil {
				h.repo.EXPECT().Transition(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tr model.Transition) error {
						assert.Equal(t, model.StatusCancelled, tr.Fields[model.FieldStatus])
						assert.Equal(t, "plans changed", *tr.Fields[model.FieldCancelReason].(*string))
						assert.NotNil(t, tr.Fields[model.FieldCancelledAt])

						return nil
					})
			}

			got, err := h.ledger.Cancel(userContext(), "booking-1", "plans changed")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.StatusCancelled, got.Status)
			assert.NotNil(t, got.CancelledAt)
		})
	}
}

func TestLedger_CheckInAndOut(t *testing.T) {
	t.Run("check-in before the stay needs an override", func(t *testing.T) {
		h := newHarness(t)

		confirmed := pendingBooking()
		confirmed.Status = model.StatusConfirmed

		h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldID)).Return(confirmed, nil).Times(2)
		h.repo.EXPECT().Transition(gomock.Any(), gomock.Any()).Return(nil)

		_, err := h.ledger.CheckIn(userContext(), "booking-1", false)
		assert.ErrorIs(t, err, failure.ErrNotEligible)

		got, err := h.ledger.CheckIn(userContext(), "booking-1", true)
		require.NoError(t, err)
		assert.Equal(t, model.StatusCheckedIn, got.Status)
		assert.NotNil(t, got.CheckedInAt)
	})

	t.Run("check-out completes a checked-in stay", func(t *testing.T) {
		h := newHarness(t)

		checkedIn := pendingBooking()
		checkedIn.Status = model.StatusCheckedIn

		h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldID)).Return(checkedIn, nil)
		h.repo.EXPECT().Transition(gomock.Any(), gomock.Any()).Return(nil)

		got, err := h.ledger.CheckOut(userContext(), "booking-1")
		require.NoError(t, err)
		assert.Equal(t, model.StatusCompleted, got.Status)
	})

	t.Run("check-out without check-in", func(t *testing.T) {
		h := newHarness(t)

		confirmed := pendingBooking()
		confirmed.Status = model.StatusConfirmed

		h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldID)).Return(confirmed, nil)

		_, err := h.ledger.CheckOut(userContext(), "booking-1")
		assert.ErrorIs(t, err, failure.ErrConflict)
	})
}

func TestLedger_MarkEscrowReleased(t *testing.T) {
	tests := []struct {
		name     string
		status   model.Status
		released bool
		wantErr  error
	}{
		{name: "checked in", status: model.StatusCheckedIn},
		{name: "completed", status: model.StatusCompleted},
		{name: "confirmed only", status: model.StatusConfirmed, wantErr: failure.ErrNotEligible},
		{name: "cancelled", status: model.StatusCancelled, wantErr: failure.ErrNotEligible},
		{name: "already released", status: model.StatusCompleted, released: true, wantErr: failure.ErrAlreadyReleased},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			booking := pendingBooking()
			booking.Status = tt.status
			booking.EscrowReleased = tt.released

			h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldID)).Return(booking, nil)

			if tt.wantErr == nil {
				h.repo.EXPECT().Transition(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tr model.Transition) error {
						assert.Equal(t, model.EscrowKey("booking-1"), tr.EventKey)
						assert.Equal(t, true, tr.Fields[model.FieldEscrowReleased])
						assert.Equal(t, tt.status, tr.Fields[model.FieldStatus])

						return nil
					})
			}

			got, err := h.ledger.MarkEscrowReleased(context.Background(), "booking-1", "release-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.True(t, got.EscrowReleased)
			assert.Equal(t, tt.status, got.Status)
		})
	}
}

func TestLedger_MarkRefunded(t *testing.T) {
	tests := []struct {
		name     string
		status   model.Status
		released bool
		wantErr  error
	}{
		{name: "cancelled", status: model.StatusCancelled},
		{name: "disputed stay", status: model.StatusCompleted},
		{name: "completed and paid out", status: model.StatusCompleted, released: true, wantErr: failure.ErrNotEligible},
		{name: "confirmed", status: model.StatusConfirmed, wantErr: failure.ErrNotEligible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			booking := pendingBooking()
			booking.Status = tt.status
			booking.EscrowReleased = tt.released

			h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldID)).Return(booking, nil)

			if tt.wantErr == nil {
				h.repo.EXPECT().Transition(gomock.Any(), gomock.Any()).Return(nil)
			}

			got, err := h.ledger.MarkRefunded(context.Background(), "booking-1", "refund-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.StatusRefunded, got.Status)
		})
	}

	t.Run("already refunded", func(t *testing.T) {
		h := newHarness(t)

		booking := pendingBooking()
		booking.Status = model.StatusRefunded

		h.repo.EXPECT().Get(gomock.Any(), filterOn(model.FieldID)).Return(booking, nil)

		got, err := h.ledger.MarkRefunded(context.Background(), "booking-1", "refund-1")
		require.NoError(t, err)
		assert.Equal(t, model.StatusRefunded, got.Status)
	})
}

func TestLedger_History(t *testing.T) {
	h := newHarness(t)

	at := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)

	h.repo.EXPECT().History(gomock.Any(), "booking-1").Return([]model.StatusHistory{
		{ToStatus: model.StatusPending, Event: model.EventCreated, Actor: "renter-1", CreatedAt: at},
		{FromStatus: model.StatusPending, ToStatus: model.StatusConfirmed, Event: model.EventConfirmed, Actor: "system", CreatedAt: at},
	}, nil)

	got, err := h.ledger.History(context.Background(), "booking-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "", got[0].FromStatus)
	assert.Equal(t, "CONFIRMED", got[1].ToStatus)

	h.repo.EXPECT().History(gomock.Any(), "booking-2").Return(nil, errors.New("db down"))

	_, err = h.ledger.History(context.Background(), "booking-2")
	assert.Error(t, err)
}
