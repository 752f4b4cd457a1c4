package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"rentpay/config"
	"rentpay/infras/otel"
	"rentpay/infras/settlement"
	bookingService "rentpay/internal/domains/booking/service"
	"rentpay/internal/domains/transfer/gateway"
	"rentpay/internal/domains/transfer/model"
	"rentpay/internal/domains/transfer/repository"
	"rentpay/internal/events"
	"rentpay/shared"
	"rentpay/shared/constant"
	"rentpay/shared/failure"
	gModel "rentpay/shared/model"
	"rentpay/shared/timezone"
)

const reasonNotAttached = "booking no longer accepts this transfer"

// Submitter hands signed transfers to settlement and starts their polling sessions.
type Submitter interface {
	Pay(ctx context.Context, bookingID string, gw gateway.Gateway) (model.Transfer, error)
	Submit(ctx context.Context, bookingID string, signed gateway.SignedTransfer) (model.Transfer, error)
	Track(ctx context.Context, bookingID, reference string) (model.Transfer, error)
	Get(ctx context.Context, reference string) (model.Transfer, error)
	Resume(ctx context.Context) (int, error)
	Reconcile(ctx context.Context, reference string) (model.Transfer, error)
}

type serviceImpl struct {
	repo       repository.Transfer
	ledger     bookingService.Ledger
	settlement settlement.Client
	poller     Poller
	events     events.Publisher
	cfg        *config.Config
	otel       otel.Otel
}

func New(repo repository.Transfer, ledger bookingService.Ledger, settlement settlement.Client, poller Poller, events events.Publisher, cfg *config.Config, otel otel.Otel) Submitter {
	return &serviceImpl{
		repo:       repo,
		ledger:     ledger,
		settlement: settlement,
		poller:     poller,
		events:     events,
		cfg:        cfg,
		otel:       otel,
	}
}

// Pay runs the gateway flow for a booking. No booking lock is held while the
// gateway waits on the payer.
func (s *serviceImpl) Pay(ctx context.Context, bookingID string, gw gateway.Gateway) (res model.Transfer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Pay")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, err := s.ledger.Get(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if err = booking.CanAttachTransfer(); err != nil {
		return res, err
	}

	identity, err := gw.Connect(ctx)
	if err != nil {
		log.Warn().Err(err).Str("booking_id", bookingID).Msg("gateway connect failed")

		return res, err
	}

	sufficient, err := gw.VerifySufficientBalance(ctx, identity.Address, booking.TotalAmount)
	if err != nil {
		return res, err
	}

	if !sufficient {
		return res, fmt.Errorf("%w: %s cannot cover %d", failure.ErrInsufficientBalance, identity.Address, booking.TotalAmount)
	}

	signed, err := gw.Sign(ctx, gateway.TransferRequest{
		BookingID: bookingID,
		From:      identity.Address,
		To:        s.cfg.Settlement.EscrowAddress,
		Amount:    booking.TotalAmount,
	})
	if err != nil {
		log.Warn().Err(err).Str("booking_id", bookingID).Msg("gateway sign failed")

		return res, err
	}

	return s.Submit(ctx, bookingID, signed)
}

// Submit returns once settlement intake accepts the transfer. A rejected submission
// leaves the booking PENDING with no transfer attached.
func (s *serviceImpl) Submit(ctx context.Context, bookingID string, signed gateway.SignedTransfer) (res model.Transfer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, err := s.ledger.Get(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if err = booking.CanAttachTransfer(); err != nil {
		return res, err
	}

	if signed.Amount != booking.TotalAmount {
		return res, fmt.Errorf("%w: transfer pays %d, booking total is %d", failure.ErrAmountMismatch, signed.Amount, booking.TotalAmount)
	}

	if escrow := s.cfg.Settlement.EscrowAddress; escrow != constant.Empty && !strings.EqualFold(signed.To, escrow) {
		return res, fmt.Errorf("%w: transfer must pay the escrow account", failure.ErrUserRejectedSignature)
	}

	reference, err := s.settlement.Submit(ctx, signed.Raw)
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("settlement rejected transfer")

		return res, fmt.Errorf("%w: %w", failure.ErrSubmission, err)
	}

	return s.track(ctx, model.Transfer{
		Reference:   reference,
		BookingID:   bookingID,
		FromAddress: signed.From,
		ToAddress:   signed.To,
		Amount:      signed.Amount,
	})
}

// Track attaches a transfer the payer broadcast on their own and polls it for the
// booking total.
func (s *serviceImpl) Track(ctx context.Context, bookingID, reference string) (res model.Transfer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Track")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, err := s.ledger.Get(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if err = booking.CanAttachTransfer(); err != nil {
		return res, err
	}

	return s.track(ctx, model.Transfer{
		Reference: reference,
		BookingID: bookingID,
		ToAddress: s.cfg.Settlement.EscrowAddress,
		Amount:    booking.TotalAmount,
	})
}

// track records a submitted transfer, attaches it to its booking and starts polling.
func (s *serviceImpl) track(ctx context.Context, res model.Transfer) (model.Transfer, error) {
	user := actor(ctx)
	reference, bookingID := res.Reference, res.BookingID

	res.Status = model.StatusSubmitted
	res.Metadata = gModel.NewMetadata(timezone.Now(), user)

	if err := s.repo.Create(ctx, res); err != nil {
		log.Error().Err(err).Str("transfer_reference", reference).Msg("failed to record transfer")

		return res, fmt.Errorf("failed to record transfer: %w", err)
	}

	if _, err := s.ledger.AttachTransfer(ctx, bookingID, reference); err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Str("transfer_reference", reference).Msg("failed to attach transfer")

		s.detach(ctx, reference)

		return res, err
	}

	if err := s.poller.Start(ctx, res); err != nil {
		// the transfer is attached; an admin reconcile can restart polling
		log.Error().Err(err).Str("transfer_reference", reference).Msg("failed to start polling session")
	}

	s.events.Publish(ctx, events.Event{
		Type:      events.TransferSubmitted,
		BookingID: bookingID,
		Reference: reference,
		Status:    string(res.Status),
		Amount:    res.Amount,
		Actor:     user,
	})

	log.Info().Str("booking_id", bookingID).Str("transfer_reference", reference).Int64("amount", res.Amount).Msg("transfer submitted")

	return res, nil
}

func (s *serviceImpl) detach(ctx context.Context, reference string) {
	reason := reasonNotAttached
	fields := shared.Stamp(map[string]any{
		model.FieldStatus:        model.StatusFailed,
		model.FieldFailureReason: &reason,
	}, actor(ctx))

	if err := s.repo.Update(ctx, fields, shared.FilterBy(model.FieldReference, reference, model.TableName)); err != nil {
		log.Error().Err(err).Str("transfer_reference", reference).Msg("failed to mark unattached transfer")
	}
}

func (s *serviceImpl) Get(ctx context.Context, reference string) (res model.Transfer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTransfer")
	defer scope.End()
	defer scope.TraceIfError(&err)

	res, err = s.repo.Get(ctx, shared.FilterBy(model.FieldReference, reference, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("transfer_reference", reference).Msg("failed to get transfer")

		return res, fmt.Errorf("failed to get transfer: %w", err)
	}

	if res.Reference == constant.Empty {
		return res, fmt.Errorf("%w: transfer %s", failure.ErrNotFound, reference)
	}

	return res, nil
}

// Resume restarts a session for every transfer still waiting on settlement.
func (s *serviceImpl) Resume(ctx context.Context) (resumed int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resume")
	defer scope.End()
	defer scope.TraceIfError(&err)

	transfers, err := s.repo.Resumable(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list resumable transfers")

		return 0, fmt.Errorf("failed to list resumable transfers: %w", err)
	}

	for _, transfer := range transfers {
		if err := s.poller.Start(ctx, transfer); err != nil {
			log.Warn().Err(err).Str("transfer_reference", transfer.Reference).Msg("failed to resume polling session")

			continue
		}

		resumed++
	}

	log.Info().Int("resumed", resumed).Int("pending", len(transfers)).Msg("polling sessions resumed")

	return resumed, nil
}

// Reconcile restarts polling for a transfer whose session timed out or was stopped.
func (s *serviceImpl) Reconcile(ctx context.Context, reference string) (res model.Transfer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reconcile")
	defer scope.End()
	defer scope.TraceIfError(&err)

	res, err = s.Get(ctx, reference)
	if err != nil {
		return res, err
	}

	if res.Terminal() {
		return res, fmt.Errorf("%w: transfer %s is already %s", failure.ErrNotEligible, reference, res.Status)
	}

	if res.TimedOutAt != nil {
		fields := shared.Stamp(map[string]any{model.FieldTimedOutAt: nil}, actor(ctx))

		if err = s.repo.Update(ctx, fields, shared.FilterBy(model.FieldReference, reference, model.TableName)); err != nil {
			log.Error().Err(err).Str("transfer_reference", reference).Msg("failed to clear transfer timeout")

			return res, fmt.Errorf("failed to clear transfer timeout: %w", err)
		}

		res.TimedOutAt = nil
	}

	if err = s.poller.Start(ctx, res); err != nil {
		if errors.Is(err, failure.ErrConflict) {
			log.Info().Str("transfer_reference", reference).Msg("transfer is already being polled")
		}

		return res, err
	}

	log.Info().Str("booking_id", res.BookingID).Str("transfer_reference", reference).Msg("transfer reconciliation started")

	return res, nil
}

func actor(ctx context.Context) string {
	if user, _ := ctx.Value(constant.ContextKeyUserID).(string); user != constant.Empty {
		return user
	}

	return constant.ContextSystem
}
