package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rentpay/config"
	"rentpay/infras/otel/mocks"
	"rentpay/infras/settlement"
	settlementMocks "rentpay/infras/settlement/mocks"
	bookingMocks "rentpay/internal/domains/booking/mocks"
	bookingModel "rentpay/internal/domains/booking/model"
	escrowMocks "rentpay/internal/domains/escrow/mocks"
	escrowModel "rentpay/internal/domains/escrow/model"
	transferMocks "rentpay/internal/domains/transfer/mocks"
	"rentpay/internal/domains/transfer/model"
	"rentpay/internal/domains/transfer/service"
	"rentpay/shared/failure"
)

const (
	transferRef   = "0xfeed"
	escrowAddress = "0x00000000000000000000000000000000000000E5"
	payerAddress  = "0x00000000000000000000000000000000000000B0"
)

// statusUpdate matches an update that moves the transfer record to a status.
type statusUpdate model.Status

func (s statusUpdate) Matches(x any) bool {
	fields, ok := x.(map[string]any)

	return ok && fields[model.FieldStatus] == model.Status(s)
}

func (s statusUpdate) String() string {
	return fmt.Sprintf("update to status %s", string(s))
}

// hasField matches an update that sets field.
type hasField string

func (f hasField) Matches(x any) bool {
	fields, ok := x.(map[string]any)
	if !ok {
		return false
	}

	_, ok = fields[string(f)]

	return ok
}

func (f hasField) String() string {
	return "update setting " + string(f)
}

type pollerHarness struct {
	settlement *settlementMocks.MockClient
	ledger     *bookingMocks.MockLedger
	repo       *transferMocks.MockTransfer
	escrow     *escrowMocks.MockController
	cfg        *config.Config
}

func newPollerHarness(t *testing.T) *pollerHarness {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Payment.Poller.Interval = time.Millisecond
	cfg.Payment.Poller.MaxAttempts = 60
	cfg.Payment.Poller.QueryTimeout = time.Second
	cfg.Settlement.EscrowAddress = escrowAddress

	return &pollerHarness{
		settlement: settlementMocks.NewMockClient(ctrl),
		ledger:     bookingMocks.NewMockLedger(ctrl),
		repo:       transferMocks.NewMockTransfer(ctrl),
		escrow:     escrowMocks.NewMockController(ctrl),
		cfg:        cfg,
	}
}

func (h *pollerHarness) poller(t *testing.T) service.Poller {
	t.Helper()

	p := service.NewPoller(h.settlement, h.ledger, h.repo, h.escrow, h.cfg, mocks.NewOtel())

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		assert.NoError(t, p.Shutdown(ctx))
	})

	return p
}

func submitted() model.Transfer {
	return model.Transfer{
		Reference: transferRef,
		BookingID: "booking-1",
		Amount:    352,
		Status:    model.StatusSubmitted,
	}
}

func pending() settlement.Receipt {
	return settlement.Receipt{Status: settlement.StatusPending}
}

// confirmed is a final receipt paying amount into escrow.
func confirmed(amount int64) settlement.Receipt {
	return settlement.Receipt{
		Status:   settlement.StatusConfirmed,
		Amount:   amount,
		Sequence: 7,
		To:       escrowAddress,
	}
}

// waitDone blocks until the booking's session has ended.
func waitDone(t *testing.T, p service.Poller) {
	t.Helper()

	assert.Eventually(t, func() bool {
		_, ok := p.Active("booking-1")

		return !ok
	}, 5*time.Second, time.Millisecond)
}

func TestPoller_ConfirmsAfterPending(t *testing.T) {
	h := newPollerHarness(t)

	h.settlement.EXPECT().Status(gomock.Any(), transferRef).Return(pending(), nil).Times(2)
	h.settlement.EXPECT().Status(gomock.Any(), transferRef).
		Return(confirmed(352), nil)
	h.ledger.EXPECT().ApplyConfirmation(gomock.Any(), transferRef, int64(352), uint64(7)).
		Return(bookingModel.Booking{ID: "booking-1", Status: bookingModel.StatusConfirmed}, nil)
	h.repo.EXPECT().Update(gomock.Any(), statusUpdate(model.StatusConfirmed), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			seq, ok := fields[model.FieldConfirmedAtSequence].(*int64)
			assert.True(t, ok)
			assert.Equal(t, int64(7), *seq)

			return nil
		})

	p := h.poller(t)
	require.NoError(t, p.Start(context.Background(), submitted()))

	waitDone(t, p)
}

func TestPoller_SettlementFailure(t *testing.T) {
	h := newPollerHarness(t)

	h.settlement.EXPECT().Status(gomock.Any(), transferRef).
		Return(settlement.Receipt{Status: settlement.StatusFailed, Reason: "transaction reverted"}, nil)
	h.ledger.EXPECT().ApplyFailure(gomock.Any(), transferRef, "transaction reverted").Return(nil)
	h.repo.EXPECT().Update(gomock.Any(), statusUpdate(model.StatusFailed), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			reason, ok := fields[model.FieldFailureReason].(*string)
			assert.True(t, ok)
			assert.Equal(t, "transaction reverted", *reason)

			return nil
		})

	p := h.poller(t)
	require.NoError(t, p.Start(context.Background(), submitted()))

	waitDone(t, p)
}

func TestPoller_TimesOutAfterMaxAttempts(t *testing.T) {
	h := newPollerHarness(t)
	h.cfg.Payment.Poller.MaxAttempts = 3

	h.settlement.EXPECT().Status(gomock.Any(), transferRef).Return(pending(), nil).Times(3)
	h.repo.EXPECT().Update(gomock.Any(), hasField(model.FieldTimedOutAt), gomock.Any()).Return(nil)
	h.ledger.EXPECT().MarkTimeout(gomock.Any(), transferRef).Return(nil)

	p := h.poller(t)
	require.NoError(t, p.Start(context.Background(), submitted()))

	waitDone(t, p)
}

func TestPoller_TimesOutAtDefaultBudget(t *testing.T) {
	h := newPollerHarness(t)
	require.Equal(t, 60, h.cfg.Payment.Poller.MaxAttempts)

	h.settlement.EXPECT().Status(gomock.Any(), transferRef).Return(pending(), nil).Times(60)
	h.repo.EXPECT().Update(gomock.Any(), hasField(model.FieldTimedOutAt), gomock.Any()).Return(nil)
	h.ledger.EXPECT().MarkTimeout(gomock.Any(), transferRef).Return(nil)

	p := h.poller(t)
	require.NoError(t, p.Start(context.Background(), submitted()))

	waitDone(t, p)
}

func TestPoller_QueryErrorsCountAsAttempts(t *testing.T) {
	h := newPollerHarness(t)
	h.cfg.Payment.Poller.MaxAttempts = 2

	h.settlement.EXPECT().Status(gomock.Any(), transferRef).Return(settlement.Receipt{}, errors.New("node unreachable")).Times(2)
	h.repo.EXPECT().Update(gomock.Any(), hasField(model.FieldTimedOutAt), gomock.Any()).Return(nil)
	h.ledger.EXPECT().MarkTimeout(gomock.Any(), transferRef).Return(nil)

	p := h.poller(t)
	require.NoError(t, p.Start(context.Background(), submitted()))

	waitDone(t, p)
}

func TestPoller_AmountMismatchFailsTransfer(t *testing.T) {
	h := newPollerHarness(t)

	h.settlement.EXPECT().Status(gomock.Any(), transferRef).
		Return(confirmed(300), nil)
	h.ledger.EXPECT().ApplyFailure(gomock.Any(), transferRef, "settled amount does not match booking total").Return(nil)
	h.repo.EXPECT().Update(gomock.Any(), statusUpdate(model.StatusFailed), gomock.Any()).Return(nil)

	p := h.poller(t)
	require.NoError(t, p.Start(context.Background(), submitted()))

	waitDone(t, p)
}

func TestPoller_RejectsMisdirectedSettlement(t *testing.T) {
	tests := []struct {
		name    string
		payer   string
		receipt func() settlement.Receipt
		reason  string
	}{
		{
			name: "pays another account",
			receipt: func() settlement.Receipt {
				r := confirmed(352)
				r.To = "0x00000000000000000000000000000000000000AA"

				return r
			},
			reason: "transfer does not pay the escrow account",
		},
		{
			name: "contract creation",
			receipt: func() settlement.Receipt {
				r := confirmed(352)
				r.To = ""

				return r
			},
			reason: "transfer does not pay the escrow account",
		},
		{
			name:  "sent by someone other than the payer",
			payer: payerAddress,
			receipt: func() settlement.Receipt {
				r := confirmed(352)
				r.From = "0x00000000000000000000000000000000000000C0"

				return r
			},
			reason: "transfer was sent from another account",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newPollerHarness(t)

			h.settlement.EXPECT().Status(gomock.Any(), transferRef).Return(tt.receipt(), nil)
			h.ledger.EXPECT().ApplyFailure(gomock.Any(), transferRef, tt.reason).Return(nil)
			h.repo.EXPECT().Update(gomock.Any(), statusUpdate(model.StatusFailed), gomock.Any()).Return(nil)

			transfer := submitted()
			transfer.FromAddress = tt.payer

			p := h.poller(t)
			require.NoError(t, p.Start(context.Background(), transfer))

			waitDone(t, p)
		})
	}
}

func TestPoller_AcceptsPayerAndEscrowInAnyCase(t *testing.T) {
	h := newPollerHarness(t)

	receipt := confirmed(352)
	receipt.To = strings.ToLower(escrowAddress)
	receipt.From = strings.ToLower(payerAddress)

	h.settlement.EXPECT().Status(gomock.Any(), transferRef).Return(receipt, nil)
	h.ledger.EXPECT().ApplyConfirmation(gomock.Any(), transferRef, int64(352), uint64(7)).
		Return(bookingModel.Booking{ID: "booking-1", Status: bookingModel.StatusConfirmed}, nil)
	h.repo.EXPECT().Update(gomock.Any(), statusUpdate(model.StatusConfirmed), gomock.Any()).Return(nil)

	transfer := submitted()
	transfer.FromAddress = payerAddress

	p := h.poller(t)
	require.NoError(t, p.Start(context.Background(), transfer))

	waitDone(t, p)
}

func TestPoller_RecipientFallsBackToTransfer(t *testing.T) {
	h := newPollerHarness(t)
	h.cfg.Settlement.EscrowAddress = ""

	h.settlement.EXPECT().Status(gomock.Any(), transferRef).Return(confirmed(352), nil)
	h.ledger.EXPECT().ApplyFailure(gomock.Any(), transferRef, "transfer does not pay the escrow account").Return(nil)
	h.repo.EXPECT().Update(gomock.Any(), statusUpdate(model.StatusFailed), gomock.Any()).Return(nil)

	transfer := submitted()
	transfer.ToAddress = "0x00000000000000000000000000000000000000AA"

	p := h.poller(t)
	require.NoError(t, p.Start(context.Background(), transfer))

	waitDone(t, p)
}

func TestPoller_RetriesTransientLedgerErrors(t *testing.T) {
	h := newPollerHarness(t)

	h.settlement.EXPECT().Status(gomock.Any(), transferRef).Return(confirmed(352), nil).Times(2)
	h.ledger.EXPECT().ApplyConfirmation(gomock.Any(), transferRef, int64(352), uint64(7)).
		Return(bookingModel.Booking{}, errors.New("connection reset"))
	h.ledger.EXPECT().ApplyConfirmation(gomock.Any(), transferRef, int64(352), uint64(7)).
		Return(bookingModel.Booking{ID: "booking-1", Status: bookingModel.StatusConfirmed}, nil)
	h.repo.EXPECT().Update(gomock.Any(), statusUpdate(model.StatusConfirmed), gomock.Any()).Return(nil)

	p := h.poller(t)
	require.NoError(t, p.Start(context.Background(), submitted()))

	waitDone(t, p)
}

func TestPoller_ConflictEndsSession(t *testing.T) {
	h := newPollerHarness(t)

	h.settlement.EXPECT().Status(gomock.Any(), transferRef).
		Return(confirmed(352), nil)
	h.ledger.EXPECT().ApplyConfirmation(gomock.Any(), transferRef, int64(352), uint64(7)).
		Return(bookingModel.Booking{}, failure.ErrConflict)
	h.repo.EXPECT().Update(gomock.Any(), statusUpdate(model.StatusConfirmed), gomock.Any()).Return(nil)

	p := h.poller(t)
	require.NoError(t, p.Start(context.Background(), submitted()))

	waitDone(t, p)
}

func TestPoller_RefundsSettlementAfterCancellation(t *testing.T) {
	h := newPollerHarness(t)

	h.settlement.EXPECT().Status(gomock.Any(), transferRef).
		Return(confirmed(352), nil)
	h.ledger.EXPECT().ApplyConfirmation(gomock.Any(), transferRef, int64(352), uint64(7)).
		Return(bookingModel.Booking{ID: "booking-1", Status: bookingModel.StatusCancelled}, nil)
	h.repo.EXPECT().Update(gomock.Any(), statusUpdate(model.StatusConfirmed), gomock.Any()).Return(nil)
	h.escrow.EXPECT().Refund(gomock.Any(), "booking-1", "transfer settled after cancellation").
		Return(escrowModel.Refund{ID: "refund-1", Amount: 352}, nil)

	p := h.poller(t)
	require.NoError(t, p.Start(context.Background(), submitted()))

	waitDone(t, p)
}

func TestPoller_Stop(t *testing.T) {
	h := newPollerHarness(t)
	h.cfg.Payment.Poller.Interval = 5 * time.Millisecond
	h.cfg.Payment.Poller.MaxAttempts = 100000

	h.settlement.EXPECT().Status(gomock.Any(), transferRef).Return(pending(), nil).AnyTimes()

	p := h.poller(t)
	require.NoError(t, p.Start(context.Background(), submitted()))

	assert.Eventually(t, func() bool {
		s, ok := p.Active("booking-1")

		return ok && s.Attempt >= 1 && s.LastStatus == settlement.StatusPending
	}, 5*time.Second, time.Millisecond)

	session, ok := p.Active("booking-1")
	require.True(t, ok)
	assert.Equal(t, transferRef, session.Reference)
	assert.Equal(t, int64(352), session.Expected)
	assert.Equal(t, escrowAddress, session.Recipient)

	assert.True(t, p.Stop("booking-1"))

	_, ok = p.Active("booking-1")
	assert.False(t, ok)
	assert.False(t, p.Stop("booking-1"))

	// the detached transfer still holds its reference
	err := p.Start(context.Background(), submitted())
	assert.ErrorIs(t, err, failure.ErrConflict)
}

func TestPoller_RefundsSettlementObservedAfterStop(t *testing.T) {
	h := newPollerHarness(t)
	h.cfg.Payment.Poller.Interval = 5 * time.Millisecond
	h.cfg.Payment.Poller.MaxAttempts = 100000

	var settled atomic.Bool

	refunded := make(chan struct{})

	h.settlement.EXPECT().Status(gomock.Any(), transferRef).
		DoAndReturn(func(context.Context, string) (settlement.Receipt, error) {
			if settled.Load() {
				return confirmed(352), nil
			}

			return pending(), nil
		}).MinTimes(2)
	h.ledger.EXPECT().ApplyConfirmation(gomock.Any(), transferRef, int64(352), uint64(7)).
		Return(bookingModel.Booking{ID: "booking-1", Status: bookingModel.StatusCancelled}, nil)
	h.repo.EXPECT().Update(gomock.Any(), statusUpdate(model.StatusConfirmed), gomock.Any()).Return(nil)
	h.escrow.EXPECT().Refund(gomock.Any(), "booking-1", "transfer settled after cancellation").
		DoAndReturn(func(context.Context, string, string) (escrowModel.Refund, error) {
			close(refunded)

			return escrowModel.Refund{ID: "refund-1", Amount: 352}, nil
		})

	p := h.poller(t)
	require.NoError(t, p.Start(context.Background(), submitted()))

	assert.Eventually(t, func() bool {
		s, ok := p.Active("booking-1")

		return ok && s.Attempt >= 1
	}, 5*time.Second, time.Millisecond)

	require.True(t, p.Stop("booking-1"))
	settled.Store(true)

	select {
	case <-refunded:
	case <-time.After(5 * time.Second):
		t.Fatal("late settlement was not refunded")
	}
}

func TestPoller_DetachedSessionKeepsItsBudget(t *testing.T) {
	h := newPollerHarness(t)
	h.cfg.Payment.Poller.Interval = 5 * time.Millisecond
	h.cfg.Payment.Poller.MaxAttempts = 20

	timedOut := make(chan struct{})

	h.settlement.EXPECT().Status(gomock.Any(), transferRef).Return(pending(), nil).Times(20)
	h.repo.EXPECT().Update(gomock.Any(), hasField(model.FieldTimedOutAt), gomock.Any()).Return(nil)
	h.ledger.EXPECT().MarkTimeout(gomock.Any(), transferRef).
		DoAndReturn(func(context.Context, string) error {
			close(timedOut)

			return nil
		})

	p := h.poller(t)
	require.NoError(t, p.Start(context.Background(), submitted()))
	require.True(t, p.Stop("booking-1"))

	select {
	case <-timedOut:
	case <-time.After(5 * time.Second):
		t.Fatal("detached session never timed out")
	}
}

func TestPoller_StartRefusesDuplicates(t *testing.T) {
	h := newPollerHarness(t)
	h.cfg.Payment.Poller.Interval = time.Hour

	h.settlement.EXPECT().Status(gomock.Any(), transferRef).Return(pending(), nil).AnyTimes()

	p := h.poller(t)
	require.NoError(t, p.Start(context.Background(), submitted()))

	err := p.Start(context.Background(), submitted())
	assert.ErrorIs(t, err, failure.ErrConflict)

	other := submitted()
	other.Reference = "0xother"

	err = p.Start(context.Background(), other)
	assert.ErrorIs(t, err, failure.ErrConflict)
}

func TestPoller_Shutdown(t *testing.T) {
	h := newPollerHarness(t)
	h.cfg.Payment.Poller.Interval = time.Hour

	h.settlement.EXPECT().Status(gomock.Any(), transferRef).Return(pending(), nil).AnyTimes()

	p := service.NewPoller(h.settlement, h.ledger, h.repo, h.escrow, h.cfg, mocks.NewOtel())
	require.NoError(t, p.Start(context.Background(), submitted()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, p.Shutdown(ctx))

	_, ok := p.Active("booking-1")
	assert.False(t, ok)

	err := p.Start(context.Background(), submitted())
	assert.ErrorIs(t, err, failure.ErrConflict)
}
