package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog/log"

	"rentpay/config"
	"rentpay/infras/otel"
	"rentpay/infras/settlement"
	bookingModel "rentpay/internal/domains/booking/model"
	bookingDto "rentpay/internal/domains/booking/model/dto"
	bookingService "rentpay/internal/domains/booking/service"
	escrowService "rentpay/internal/domains/escrow/service"
	"rentpay/internal/domains/reservation/model/dto"
	"rentpay/internal/domains/transfer/gateway"
	transferService "rentpay/internal/domains/transfer/service"
	"rentpay/shared/constant"
	gDto "rentpay/shared/dto"
	"rentpay/shared/failure"
)

// Reservation is what the API drives: every call checks that the caller takes part
// in the booking, then coordinates the ledger, the submitter and escrow.
type Reservation interface {
	Create(ctx context.Context, req bookingDto.CreateBookingRequest) (bookingDto.CreateBookingResponse, error)
	Get(ctx context.Context, id string) (bookingDto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, status string) (bookingDto.GetBookingsResponse, error)
	History(ctx context.Context, id string) ([]bookingDto.HistoryResponse, error)
	Status(ctx context.Context, id string) (dto.StatusResponse, error)
	AttachTransfer(ctx context.Context, id string, req bookingDto.AttachTransferRequest) (dto.TransferResponse, error)
	Pay(ctx context.Context, id string, req dto.PaymentRequest) (dto.TransferResponse, error)
	Cancel(ctx context.Context, id string, req dto.ReasonRequest) (dto.CancelResponse, error)
	CheckIn(ctx context.Context, id string, override bool) (bookingDto.BookingResponse, error)
	CheckOut(ctx context.Context, id string) (bookingDto.BookingResponse, error)
	ReleaseEscrow(ctx context.Context, id string) (dto.ReleaseResponse, error)
	Refund(ctx context.Context, id string, req dto.ReasonRequest) (dto.RefundResponse, error)
	DisputeRefund(ctx context.Context, id string, req dto.ReasonRequest) (dto.RefundResponse, error)
	Reconcile(ctx context.Context, reference string) (dto.TransferResponse, error)
}

type serviceImpl struct {
	ledger     bookingService.Ledger
	submitter  transferService.Submitter
	poller     transferService.Poller
	escrow     escrowService.Controller
	settlement settlement.Client
	cfg        *config.Config
	otel       otel.Otel
}

func New(ledger bookingService.Ledger, submitter transferService.Submitter, poller transferService.Poller, escrow escrowService.Controller, settlement settlement.Client, cfg *config.Config, otel otel.Otel) Reservation {
	return &serviceImpl{
		ledger:     ledger,
		submitter:  submitter,
		poller:     poller,
		escrow:     escrow,
		settlement: settlement,
		cfg:        cfg,
		otel:       otel,
	}
}

type caller struct {
	userID string
	role   string
}

func callerFrom(ctx context.Context) caller {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return caller{userID: userID, role: role}
}

func (c caller) admin() bool {
	return slices.Contains([]string{constant.RoleAdmin, constant.RoleSuperAdmin}, c.role)
}

// participant loads a booking the caller may act on. With renterOnly the host is refused too.
func (s *serviceImpl) participant(ctx context.Context, id string, renterOnly bool) (bookingModel.Booking, error) {
	booking, err := s.ledger.Get(ctx, id)
	if err != nil {
		return booking, err
	}

	c := callerFrom(ctx)

	switch {
	case c.admin():
		return booking, nil
	case renterOnly && booking.RenterID == c.userID:
		return booking, nil
	case !renterOnly && booking.IsParticipant(c.userID):
		return booking, nil
	}

	log.Warn().Str("booking_id", id).Str("user_id", c.userID).Msg("caller does not take part in booking")

	return booking, failure.ResourceRestrictedError
}

func (s *serviceImpl) Create(ctx context.Context, req bookingDto.CreateBookingRequest) (bookingDto.CreateBookingResponse, error) {
	return s.ledger.Create(ctx, req) //nolint:wrapcheck
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res bookingDto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, err := s.participant(ctx, id, false)
	if err != nil {
		return res, err
	}

	res.FromModel(booking, s.cfg.Payment.Currency)

	return res, nil
}

// GetAll lists the caller's bookings as renter or host. Admins see every booking.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, status string) (bookingDto.GetBookingsResponse, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if c := callerFrom(ctx); !c.admin() {
		filter.Filters = append(filter.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{Field: bookingModel.FieldRenterID, ArgName: "mine_renter", Value: c.userID, Operator: gDto.FilterOperatorEq, Table: bookingModel.TableName},
				gDto.Filter{Field: bookingModel.FieldHostID, ArgName: "mine_host", Value: c.userID, Operator: gDto.FilterOperatorEq, Table: bookingModel.TableName},
			},
		})
	}

	if status != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    bookingModel.FieldStatus,
			Value:    status,
			Operator: gDto.FilterOperatorEq,
			Table:    bookingModel.TableName,
		})
	}

	return s.ledger.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (s *serviceImpl) History(ctx context.Context, id string) ([]bookingDto.HistoryResponse, error) {
	if _, err := s.participant(ctx, id, false); err != nil {
		return nil, err
	}

	return s.ledger.History(ctx, id) //nolint:wrapcheck
}

// Status is what clients poll while a payment settles.
func (s *serviceImpl) Status(ctx context.Context, id string) (res dto.StatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Status")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, err := s.participant(ctx, id, false)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	if ref := booking.Reference(); ref != constant.Empty {
		transfer, err := s.submitter.Get(ctx, ref)

		switch {
		case err == nil:
			res.TransferStatus = string(transfer.Status)
		case !errors.Is(err, failure.ErrNotFound):
			return res, err
		}
	}

	if session, ok := s.poller.Active(id); ok {
		res.Polling = &dto.PollingResponse{}
		res.Polling.FromSession(session)
	}

	return res, nil
}

func (s *serviceImpl) AttachTransfer(ctx context.Context, id string, req bookingDto.AttachTransferRequest) (res dto.TransferResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.AttachTransfer")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if _, err = s.participant(ctx, id, true); err != nil {
		return res, err
	}

	transfer, err := s.submitter.Track(ctx, id, req.TransferReference)
	if err != nil {
		return res, err
	}

	res.FromModel(transfer)

	return res, nil
}

// Pay submits a wallet-signed transaction. The signature decodes before any lock is taken.
func (s *serviceImpl) Pay(ctx context.Context, id string, req dto.PaymentRequest) (res dto.TransferResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Pay")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if _, err = s.participant(ctx, id, true); err != nil {
		return res, err
	}

	raw, err := hexutil.Decode(req.SignedTransaction)
	if err != nil {
		return res, fmt.Errorf("%w: %w", failure.ErrUserRejectedSignature, err)
	}

	transfer, err := s.submitter.Pay(ctx, id, gateway.NewPresigned(s.settlement, raw))
	if err != nil {
		return res, err
	}

	res.FromModel(transfer)

	return res, nil
}

// Cancel detaches the booking's polling session and refunds what already settled. A
// transfer still in flight keeps being watched and is refunded if it settles late.
// A policy that grants nothing leaves the booking CANCELLED.
func (s *serviceImpl) Cancel(ctx context.Context, id string, req dto.ReasonRequest) (res dto.CancelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Cancel")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if _, err = s.participant(ctx, id, false); err != nil {
		return res, err
	}

	booking, err := s.ledger.Cancel(ctx, id, req.Reason)
	if err != nil {
		return res, err
	}

	s.poller.Stop(id)

	res.Status = string(booking.Status)

	if booking.SettledAmount <= 0 {
		return res, nil
	}

	refund, err := s.escrow.Refund(ctx, id, req.Reason)

	switch {
	case errors.Is(err, failure.ErrNotEligible):
		log.Info().Err(err).Str("booking_id", id).Msg("cancellation carries no refund")

		return res, nil
	case err != nil:
		// the cancellation stands; the refund is retried from the admin API
		log.Error().Err(err).Str("booking_id", id).Msg("failed to refund cancelled booking")

		return res, nil
	}

	res.Status = string(bookingModel.StatusRefunded)
	res.Refund = &dto.RefundResponse{}
	res.Refund.FromModel(refund)

	return res, nil
}

// CheckIn lets a participant check in once the stay starts. Override is for admins.
func (s *serviceImpl) CheckIn(ctx context.Context, id string, override bool) (res bookingDto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.CheckIn")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if _, err = s.participant(ctx, id, false); err != nil {
		return res, err
	}

	if override && !callerFrom(ctx).admin() {
		return res, failure.ForbiddenError
	}

	booking, err := s.ledger.CheckIn(ctx, id, override)
	if err != nil {
		return res, err
	}

	return s.afterStayEvent(ctx, booking), nil
}

func (s *serviceImpl) CheckOut(ctx context.Context, id string) (res bookingDto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.CheckOut")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if _, err = s.participant(ctx, id, false); err != nil {
		return res, err
	}

	booking, err := s.ledger.CheckOut(ctx, id)
	if err != nil {
		return res, err
	}

	return s.afterStayEvent(ctx, booking), nil
}

// afterStayEvent releases escrow when the configured trigger has been reached. A failed
// release is left for the admin API.
func (s *serviceImpl) afterStayEvent(ctx context.Context, booking bookingModel.Booking) (res bookingDto.BookingResponse) {
	eligible, err := s.escrow.Eligible(ctx, booking.ID)
	if err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to evaluate escrow release")
	}

	if eligible {
		if _, err = s.escrow.ReleaseFunds(ctx, booking.ID); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("automatic escrow release failed")
		} else if released, err := s.ledger.Get(ctx, booking.ID); err == nil {
			booking = released
		}
	}

	res.FromModel(booking, s.cfg.Payment.Currency)

	return res
}

func (s *serviceImpl) ReleaseEscrow(ctx context.Context, id string) (res dto.ReleaseResponse, err error) {
	release, err := s.escrow.ReleaseFunds(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(release)

	return res, nil
}

func (s *serviceImpl) Refund(ctx context.Context, id string, req dto.ReasonRequest) (res dto.RefundResponse, err error) {
	refund, err := s.escrow.Refund(ctx, id, req.Reason)
	if err != nil {
		return res, err
	}

	res.FromModel(refund)

	return res, nil
}

func (s *serviceImpl) DisputeRefund(ctx context.Context, id string, req dto.ReasonRequest) (res dto.RefundResponse, err error) {
	refund, err := s.escrow.DisputeRefund(ctx, id, req.Reason)
	if err != nil {
		return res, err
	}

	res.FromModel(refund)

	return res, nil
}

func (s *serviceImpl) Reconcile(ctx context.Context, reference string) (res dto.TransferResponse, err error) {
	transfer, err := s.submitter.Reconcile(ctx, reference)
	if err != nil {
		return res, err
	}

	res.FromModel(transfer)

	return res, nil
}
