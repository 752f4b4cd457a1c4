package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"rentpay/config"
	"rentpay/infras/otel"
	"rentpay/infras/s3"
	bookingModel "rentpay/internal/domains/booking/model"
	bookingService "rentpay/internal/domains/booking/service"
	"rentpay/internal/domains/escrow/model"
	"rentpay/internal/domains/escrow/repository"
	"rentpay/internal/events"
	"rentpay/shared/constant"
	"rentpay/shared/failure"
	"rentpay/shared/money"
	"rentpay/shared/timezone"
)

const (
	TriggerCheckIn  = "check_in"
	TriggerCheckOut = "check_out"
)

// Controller moves held funds exactly once per booking: either a release to the host or
// a refund to the renter.
type Controller interface {
	ReleaseFunds(ctx context.Context, bookingID string) (model.Release, error)
	Refund(ctx context.Context, bookingID, reason string) (model.Refund, error)
	DisputeRefund(ctx context.Context, bookingID, reason string) (model.Refund, error)
	Eligible(ctx context.Context, bookingID string) (bool, error)
}

type serviceImpl struct {
	repo     repository.Escrow
	ledger   bookingService.Ledger
	events   events.Publisher
	receipts s3.Store
	policies Policies
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Escrow, ledger bookingService.Ledger, events events.Publisher, receipts s3.Store, cfg *config.Config, otel otel.Otel) Controller {
	policies, err := LoadPolicies(cfg.Escrow.RefundPolicyFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.Escrow.RefundPolicyFile).Msg("Failed to load refund policies")
	}

	return &serviceImpl{
		repo:     repo,
		ledger:   ledger,
		events:   events,
		receipts: receipts,
		policies: policies,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) ReleaseFunds(ctx context.Context, bookingID string) (res model.Release, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReleaseFunds")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, err := s.ledger.Get(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if booking.EscrowReleased {
		res, _ = s.repo.GetRelease(ctx, bookingID)

		return res, fmt.Errorf("%w: booking %s", failure.ErrAlreadyReleased, bookingID)
	}

	if booking.Status != bookingModel.StatusCheckedIn && booking.Status != bookingModel.StatusCompleted {
		return res, fmt.Errorf("%w: escrow is released after check-in, booking is %s", failure.ErrNotEligible, booking.Status)
	}

	if booking.SettledAmount <= 0 {
		return res, fmt.Errorf("%w: booking %s holds no settled funds", failure.ErrNotEligible, bookingID)
	}

	res, err = s.repo.GetRelease(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to get escrow release")

		return res, fmt.Errorf("failed to get escrow release: %w", err)
	}

	// a release recorded by an earlier attempt is reused so the host is paid once
	if res.ID == constant.Empty {
		if res, err = s.recordRelease(ctx, booking); err != nil {
			return res, err
		}
	}

	if _, err = s.ledger.MarkEscrowReleased(ctx, bookingID, res.ReleaseReference); err != nil {
		if errors.Is(err, failure.ErrNotEligible) {
			s.discard(ctx, bookingID, "release", res.ID, s.repo.DeleteRelease)
		}

		return res, err
	}

	log.Info().Str("booking_id", bookingID).Int64("amount", res.Amount).Str("release_reference", res.ReleaseReference).Msg("escrow released")

	s.events.Publish(ctx, events.Event{
		Type:      events.EscrowReleased,
		BookingID: bookingID,
		Reference: booking.Reference(),
		Status:    string(booking.Status),
		Amount:    res.Amount,
		Actor:     actor(ctx),
		Data: map[string]any{
			"host_id":           res.HostID,
			"host_address":      res.HostAddress,
			"release_reference": res.ReleaseReference,
		},
	})

	s.archive(ctx, bookingID, "release", res)

	return res, nil
}

func (s *serviceImpl) recordRelease(ctx context.Context, booking bookingModel.Booking) (model.Release, error) {
	release := model.Release{
		ID:               uuid.NewString(),
		BookingID:        booking.ID,
		HostID:           booking.HostID,
		HostAddress:      booking.HostAddress,
		Amount:           booking.SettledAmount - booking.ServiceFee,
		ReleaseReference: uuid.NewString(),
		CreatedAt:        timezone.Now(),
	}

	err := s.repo.CreateRelease(ctx, release)
	if errors.Is(err, repository.ErrRecorded) {
		return s.repo.GetRelease(ctx, booking.ID) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to record escrow release")

		return release, fmt.Errorf("failed to record escrow release: %w", err)
	}

	return release, nil
}

func (s *serviceImpl) Refund(ctx context.Context, bookingID, reason string) (res model.Refund, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Refund")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, existing, err := s.load(ctx, bookingID)
	if err != nil || existing.ID != constant.Empty {
		return existing, err
	}

	if booking.Status != bookingModel.StatusCancelled {
		return res, fmt.Errorf("%w: only cancelled bookings are refunded, booking is %s", failure.ErrNotEligible, booking.Status)
	}

	if booking.SettledAmount <= 0 {
		return res, fmt.Errorf("%w: booking %s holds no settled funds", failure.ErrNotEligible, bookingID)
	}

	tier := Tier{Label: labelLateSettlement, BasisPoints: fullRefundBasisPoints}

	if !booking.SettledAfterCancel() {
		notice := booking.CheckIn.Sub(*booking.CancelledAt)

		var ok bool
		if tier, ok = s.policies.Select(booking.CancellationPolicy, notice); !ok || tier.BasisPoints == 0 {
			return res, fmt.Errorf("%w: %s policy grants no refund %s before check-in",
				failure.ErrNotEligible, booking.CancellationPolicy, notice.Round(time.Hour))
		}
	}

	return s.recordRefund(ctx, booking, tier, model.RefundKindCancellation, reason)
}

func (s *serviceImpl) DisputeRefund(ctx context.Context, bookingID, reason string) (res model.Refund, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DisputeRefund")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, existing, err := s.load(ctx, bookingID)
	if err != nil || existing.ID != constant.Empty {
		return existing, err
	}

	if booking.Status != bookingModel.StatusCompleted || booking.EscrowReleased {
		return res, fmt.Errorf("%w: dispute refunds need a completed stay with escrow held", failure.ErrNotEligible)
	}

	if booking.SettledAmount <= 0 {
		return res, fmt.Errorf("%w: booking %s holds no settled funds", failure.ErrNotEligible, bookingID)
	}

	tier := Tier{Label: labelFullRefund, BasisPoints: fullRefundBasisPoints}

	return s.recordRefund(ctx, booking, tier, model.RefundKindDispute, reason)
}

// load returns the booking, or the refund already recorded for it once the ledger
// agrees the booking is refunded.
func (s *serviceImpl) load(ctx context.Context, bookingID string) (bookingModel.Booking, model.Refund, error) {
	booking, err := s.ledger.Get(ctx, bookingID)
	if err != nil {
		return booking, model.Refund{}, err
	}

	existing, err := s.repo.GetRefund(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to get refund")

		return booking, model.Refund{}, fmt.Errorf("failed to get refund: %w", err)
	}

	if existing.ID == constant.Empty {
		if booking.Status == bookingModel.StatusRefunded {
			return booking, model.Refund{}, fmt.Errorf("%w: booking %s is already refunded", failure.ErrNotEligible, bookingID)
		}

		return booking, existing, nil
	}

	if booking.Status != bookingModel.StatusRefunded {
		if _, err = s.ledger.MarkRefunded(ctx, bookingID, existing.ID); err != nil {
			if errors.Is(err, failure.ErrNotEligible) {
				s.discard(ctx, bookingID, "refund", existing.ID, s.repo.DeleteRefund)
			}

			return booking, model.Refund{}, err
		}
	}

	return booking, existing, nil
}

func (s *serviceImpl) recordRefund(ctx context.Context, booking bookingModel.Booking, tier Tier, kind model.RefundKind, reason string) (model.Refund, error) {
	refund := model.Refund{
		ID:                uuid.NewString(),
		BookingID:         booking.ID,
		RenterID:          booking.RenterID,
		Policy:            booking.CancellationPolicy,
		TierLabel:         tier.Label,
		RefundBasisPoints: tier.BasisPoints,
		SettledAmount:     booking.SettledAmount,
		Amount:            money.ApplyBasisPoints(booking.SettledAmount, tier.BasisPoints),
		Reason:            reason,
		Kind:              kind,
		CreatedAt:         timezone.Now(),
	}

	err := s.repo.CreateRefund(ctx, refund)
	if errors.Is(err, repository.ErrRecorded) {
		if refund, err = s.repo.GetRefund(ctx, booking.ID); err != nil {
			return refund, fmt.Errorf("failed to get refund: %w", err)
		}
	} else if err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to record refund")

		return refund, fmt.Errorf("failed to record refund: %w", err)
	}

	if _, err = s.ledger.MarkRefunded(ctx, booking.ID, refund.ID); err != nil {
		if errors.Is(err, failure.ErrNotEligible) {
			s.discard(ctx, booking.ID, "refund", refund.ID, s.repo.DeleteRefund)
		}

		return refund, err
	}

	log.Info().Str("booking_id", booking.ID).Int64("amount", refund.Amount).Int64("basis_points", refund.RefundBasisPoints).
		Str("kind", string(kind)).Msg("refund issued")

	s.archive(ctx, booking.ID, "refund", refund)

	return refund, nil
}

// discard removes a row the ledger refused, so it cannot shadow a later release
// or refund of the same booking.
func (s *serviceImpl) discard(ctx context.Context, bookingID, kind, id string, remove func(context.Context, string) error) {
	if err := remove(ctx, id); err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Str(kind+"_id", id).Msgf("failed to discard refused %s", kind)

		return
	}

	log.Warn().Str("booking_id", bookingID).Str(kind+"_id", id).Msgf("ledger refused %s, record discarded", kind)
}

func (s *serviceImpl) Eligible(ctx context.Context, bookingID string) (bool, error) {
	if !s.cfg.Escrow.AutoRelease {
		return false, nil
	}

	booking, err := s.ledger.Get(ctx, bookingID)
	if err != nil {
		return false, err
	}

	if booking.EscrowReleased {
		return false, nil
	}

	switch s.cfg.Escrow.ReleaseTrigger {
	case TriggerCheckIn:
		return booking.Status == bookingModel.StatusCheckedIn || booking.Status == bookingModel.StatusCompleted, nil
	default:
		return booking.Status == bookingModel.StatusCompleted, nil
	}
}

// archive stores a receipt in the background; the money movement is already committed.
func (s *serviceImpl) archive(ctx context.Context, bookingID, kind string, receipt any) {
	name := kind + "-" + bookingID

	go func() {
		c := context.WithoutCancel(ctx)

		data, err := json.Marshal(receipt)
		if err != nil {
			log.Error().Err(err).Str("receipt", name).Msg("failed to encode receipt")

			return
		}

		_, err = s.receipts.Put(c, s3.Object{
			Directory:   s.cfg.Escrow.ReceiptsDirectory,
			Name:        name + ".json",
			ContentType: constant.ContentTypeJSON,
			Body:        data,
			Metadata:    map[string]string{"booking-id": bookingID, "kind": kind},
		})
		if err != nil {
			log.Error().Err(err).Str("receipt", name).Msg("failed to archive receipt")
		}
	}()
}

func actor(ctx context.Context) string {
	if user, _ := ctx.Value(constant.ContextKeyUserID).(string); user != constant.Empty {
		return user
	}

	return constant.ContextSystem
}
