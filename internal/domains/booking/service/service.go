package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"rentpay/config"
	"rentpay/infras/listing"
	"rentpay/infras/otel"
	"rentpay/internal/domains/booking/model"
	"rentpay/internal/domains/booking/model/dto"
	"rentpay/internal/domains/booking/repository"
	"rentpay/internal/events"
	"rentpay/shared"
	"rentpay/shared/cache"
	"rentpay/shared/constant"
	gDto "rentpay/shared/dto"
	"rentpay/shared/failure"
	"rentpay/shared/keylock"
	gModel "rentpay/shared/model"
	"rentpay/shared/timezone"
)

const (
	cacheGetAllBooking = "booking:gets"

	reasonLateSettlement = "settled after cancellation"
	reasonTimeout        = "polling attempts exhausted"
)

// Ledger is the only writer of booking state. Every mutation runs under a per-booking
// lock and a version compare-and-set, and event-keyed transitions are applied at most once.
type Ledger interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	Get(ctx context.Context, id string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	History(ctx context.Context, id string) ([]dto.HistoryResponse, error)
	FindByTransfer(ctx context.Context, reference string) (model.Booking, error)
	AttachTransfer(ctx context.Context, bookingID, reference string) (model.Booking, error)
	ApplyConfirmation(ctx context.Context, reference string, amount int64, sequence uint64) (model.Booking, error)
	ApplyFailure(ctx context.Context, reference, reason string) error
	MarkTimeout(ctx context.Context, reference string) error
	Cancel(ctx context.Context, bookingID, reason string) (model.Booking, error)
	CheckIn(ctx context.Context, bookingID string, override bool) (model.Booking, error)
	CheckOut(ctx context.Context, bookingID string) (model.Booking, error)
	MarkEscrowReleased(ctx context.Context, bookingID, releaseReference string) (model.Booking, error)
	MarkRefunded(ctx context.Context, bookingID, refundID string) (model.Booking, error)
}

type serviceImpl struct {
	repo    repository.Booking
	listing listing.Client
	events  events.Publisher
	cache   cache.RedisCache
	locks   *keylock.Locker
	cfg     *config.Config
	otel    otel.Otel
}

func New(repo repository.Booking, listing listing.Client, events events.Publisher, cache cache.RedisCache, locks *keylock.Locker, cfg *config.Config, otel otel.Otel) Ledger {
	return &serviceImpl{
		repo:    repo,
		listing: listing,
		events:  events,
		cache:   cache,
		locks:   locks,
		cfg:     cfg,
		otel:    otel,
	}
}

func actor(ctx context.Context) string {
	if user, _ := ctx.Value(constant.ContextKeyUserID).(string); user != constant.Empty {
		return user
	}

	return constant.ContextSystem
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	checkIn, checkOut, err := req.Stay()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return res, failure.ErrInvalidDateRange
	}

	property, err := s.listing.GetProperty(ctx, req.PropertyID)
	if err != nil {
		log.Error().Err(err).Str("property_id", req.PropertyID).Msg("failed to get property")

		return res, fmt.Errorf("failed to get property: %w", err)
	}

	now := timezone.Now()

	nights, err := CheckStay(s.cfg, property, checkIn, checkOut, now, req.NumGuests, req.HasPets)
	if err != nil {
		return res, err
	}

	unlock := s.locks.Lock("property:" + property.ID)
	defer unlock()

	available, err := s.listing.CheckAvailability(ctx, property.ID, checkIn, checkOut)
	if err != nil {
		log.Error().Err(err).Str("property_id", property.ID).Msg("failed to check availability")

		return res, fmt.Errorf("failed to check availability: %w", err)
	}

	if !available {
		return res, fmt.Errorf("%w: dates are not available", failure.ErrConflict)
	}

	overlapping, err := s.repo.Overlapping(ctx, property.ID, checkIn, checkOut)
	if err != nil {
		log.Error().Err(err).Str("property_id", property.ID).Msg("failed to check overlapping bookings")

		return res, fmt.Errorf("failed to check overlapping bookings: %w", err)
	}

	if overlapping {
		return res, fmt.Errorf("%w: dates overlap an existing booking", failure.ErrConflict)
	}

	user := actor(ctx)
	quote := Price(property, nights, req.HasPets, s.cfg.Booking.DefaultFeeBasisPoints)

	booking := model.Booking{
		ID:                 uuid.NewString(),
		RenterID:           user,
		HostID:             property.HostID,
		HostAddress:        property.HostAddress,
		PropertyID:         property.ID,
		CheckIn:            checkIn,
		CheckOut:           checkOut,
		NumGuests:          req.NumGuests,
		HasPets:            req.HasPets,
		Status:             model.StatusPending,
		PricePerNight:      quote.PricePerNight,
		Nights:             quote.Nights,
		LodgingAmount:      quote.Lodging,
		DiscountAmount:     quote.Discount,
		BaseAmount:         quote.Base,
		CleaningFee:        quote.CleaningFee,
		PetFee:             quote.PetFee,
		ServiceFee:         quote.ServiceFee,
		FeeBasisPoints:     quote.FeeBasisPoints,
		FeesAmount:         quote.Fees,
		TotalAmount:        quote.Total,
		CancellationPolicy: property.CancellationPolicy,
		Version:            1,
		Metadata:           gModel.NewMetadata(now, user),
	}

	history := model.StatusHistory{
		ID:        uuid.NewString(),
		BookingID: booking.ID,
		ToStatus:  model.StatusPending,
		Event:     model.EventCreated,
		Actor:     user,
		CreatedAt: now,
	}

	if err = s.repo.Create(ctx, booking, history); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.publish(ctx, events.BookingCreated, booking, "")

	res.BookingID = booking.ID
	res.Status = string(booking.Status)
	res.PriceBreakdown.FromModel(booking, s.cfg.Payment.Currency)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	res, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if res.ID == constant.Empty {
		return res, fmt.Errorf("%w: booking %s", failure.ErrNotFound, id)
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit, s.cfg.Payment.Currency)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) History(ctx context.Context, id string) (res []dto.HistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".History")
	defer scope.End()
	defer scope.TraceIfError(&err)

	histories, err := s.repo.History(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking history")

		return res, fmt.Errorf("failed to get booking history: %w", err)
	}

	res = make([]dto.HistoryResponse, len(histories))
	for i, history := range histories {
		res[i].FromModel(history)
	}

	return res, nil
}

func (s *serviceImpl) FindByTransfer(ctx context.Context, reference string) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindByTransfer")
	defer scope.End()
	defer scope.TraceIfError(&err)

	res, err = s.repo.Get(ctx, shared.FilterBy(model.FieldTransferReference, reference, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("transfer_reference", reference).Msg("failed to get booking by transfer")

		return res, fmt.Errorf("failed to get booking by transfer: %w", err)
	}

	if res.ID == constant.Empty {
		return res, fmt.Errorf("%w: no booking holds transfer %s", failure.ErrNotFound, reference)
	}

	return res, nil
}

func (s *serviceImpl) AttachTransfer(ctx context.Context, bookingID, reference string) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AttachTransfer")
	defer scope.End()
	defer scope.TraceIfError(&err)

	defer s.locks.Lock(bookingID)()

	booking, err := s.Get(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if err = booking.CanAttachTransfer(); err != nil {
		return res, err
	}

	next := booking
	next.TransferReference = &reference

	return s.transition(ctx, booking, next, model.EventTransferAttached, constant.Empty, reference, model.FieldTransferReference)
}

func (s *serviceImpl) ApplyConfirmation(ctx context.Context, reference string, amount int64, sequence uint64) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ApplyConfirmation")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, applied, err := s.resolveTransfer(ctx, reference, model.ConfirmKey(reference))
	if err != nil {
		return res, err
	}

	if booking.ID == constant.Empty {
		return res, fmt.Errorf("%w: no booking holds transfer %s", failure.ErrNotFound, reference)
	}

	defer s.locks.Lock(booking.ID)()

	if booking, err = s.Get(ctx, booking.ID); err != nil {
		return res, err
	}

	if amount != booking.TotalAmount {
		log.Error().Str("booking_id", booking.ID).Str("transfer_reference", reference).
			Int64("expected", booking.TotalAmount).Int64("settled", amount).Msg("settled amount mismatch")

		return res, fmt.Errorf("%w: expected %d, settled %d", failure.ErrAmountMismatch, booking.TotalAmount, amount)
	}

	// A duplicate that queued on the lock finds the confirmation already recorded.
	if applied || (booking.WasConfirmed() && booking.Reference() == reference) {
		return booking, nil
	}

	if booking.Reference() != reference {
		return res, fmt.Errorf("%w: transfer %s is no longer attached", failure.ErrConflict, reference)
	}

	if booking.WasConfirmed() {
		return res, fmt.Errorf("%w: booking already confirmed by another transfer", failure.ErrConflict)
	}

	now := timezone.Now()
	next := booking
	next.SettledAmount = amount
	next.ConfirmedSequence = int64(sequence) //nolint:gosec
	next.ConfirmedAt = &now

	switch booking.Status {
	case model.StatusPending:
		next.Status = model.StatusConfirmed

		res, err = s.transition(ctx, booking, next, model.EventConfirmed, model.ConfirmKey(reference), reference,
			model.FieldSettledAmount, model.FieldConfirmedSequence, model.FieldConfirmedAt)
		if err == nil {
			s.publish(ctx, events.BookingConfirmed, res, "")
		}

		return res, err
	case model.StatusCancelled:
		log.Warn().Str("booking_id", booking.ID).Str("transfer_reference", reference).Msg("transfer settled after cancellation")

		return s.transition(ctx, booking, next, model.EventConfirmed, model.ConfirmKey(reference), reasonLateSettlement,
			model.FieldSettledAmount, model.FieldConfirmedSequence, model.FieldConfirmedAt)
	default:
		return res, fmt.Errorf("%w: cannot confirm a %s booking", failure.ErrConflict, booking.Status)
	}
}

func (s *serviceImpl) ApplyFailure(ctx context.Context, reference, reason string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ApplyFailure")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, applied, err := s.resolveTransfer(ctx, reference, model.FailKey(reference))
	if err != nil || applied {
		return err
	}

	defer s.locks.Lock(booking.ID)()

	if booking, err = s.Get(ctx, booking.ID); err != nil {
		return err
	}

	if booking.Reference() != reference {
		if applied, _ = s.repo.EventApplied(ctx, model.FailKey(reference)); applied {
			return nil
		}

		return fmt.Errorf("%w: transfer %s is no longer attached", failure.ErrConflict, reference)
	}

	if booking.Status != model.StatusPending && booking.Status != model.StatusCancelled {
		return fmt.Errorf("%w: cannot fail transfer of a %s booking", failure.ErrConflict, booking.Status)
	}

	next := booking
	next.TransferReference = nil

	updated, err := s.transition(ctx, booking, next, model.EventFailed, model.FailKey(reference), reason, model.FieldTransferReference)
	if err != nil {
		return err
	}

	s.publish(ctx, events.TransferFailed, updated, reason)

	return nil
}

func (s *serviceImpl) MarkTimeout(ctx context.Context, reference string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkTimeout")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, applied, err := s.resolveTransfer(ctx, reference, model.TimeoutKey(reference))
	if err != nil || applied {
		return err
	}

	defer s.locks.Lock(booking.ID)()

	if booking, err = s.Get(ctx, booking.ID); err != nil {
		return err
	}

	updated, err := s.transition(ctx, booking, booking, model.EventTimeout, model.TimeoutKey(reference), reasonTimeout)
	if err != nil {
		return err
	}

	s.publish(ctx, events.TransferTimeout, updated, reasonTimeout)

	return nil
}

func (s *serviceImpl) Cancel(ctx context.Context, bookingID, reason string) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(&err)

	defer s.locks.Lock(bookingID)()

	booking, err := s.Get(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if err = booking.CanCancel(); err != nil {
		return res, err
	}

	now := timezone.Now()
	next := booking
	next.Status = model.StatusCancelled
	next.CancelledAt = &now
	next.CancelReason = &reason

	res, err = s.transition(ctx, booking, next, model.EventCancelled, constant.Empty, reason, model.FieldCancelledAt, model.FieldCancelReason)
	if err != nil {
		return res, err
	}

	s.publish(ctx, events.BookingCancelled, res, reason)

	return res, nil
}

func (s *serviceImpl) CheckIn(ctx context.Context, bookingID string, override bool) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(&err)

	defer s.locks.Lock(bookingID)()

	booking, err := s.Get(ctx, bookingID)
	if err != nil {
		return res, err
	}

	now := timezone.Now()

	if err = booking.CanCheckIn(now, override); err != nil {
		return res, err
	}

	reason := constant.Empty
	if override {
		reason = "admin override"
	}

	next := booking
	next.Status = model.StatusCheckedIn
	next.CheckedInAt = &now

	res, err = s.transition(ctx, booking, next, model.EventCheckedIn, constant.Empty, reason, model.FieldCheckedInAt)
	if err != nil {
		return res, err
	}

	s.publish(ctx, events.BookingCheckedIn, res, reason)

	return res, nil
}

func (s *serviceImpl) CheckOut(ctx context.Context, bookingID string) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(&err)

	defer s.locks.Lock(bookingID)()

	booking, err := s.Get(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if err = booking.CanCheckOut(); err != nil {
		return res, err
	}

	now := timezone.Now()
	next := booking
	next.Status = model.StatusCompleted
	next.CompletedAt = &now

	res, err = s.transition(ctx, booking, next, model.EventCheckedOut, constant.Empty, constant.Empty, model.FieldCompletedAt)
	if err != nil {
		return res, err
	}

	s.publish(ctx, events.BookingCompleted, res, "")

	return res, nil
}

func (s *serviceImpl) MarkEscrowReleased(ctx context.Context, bookingID, releaseReference string) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkEscrowReleased")
	defer scope.End()
	defer scope.TraceIfError(&err)

	defer s.locks.Lock(bookingID)()

	booking, err := s.Get(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if booking.EscrowReleased {
		return booking, fmt.Errorf("%w: booking %s", failure.ErrAlreadyReleased, bookingID)
	}

	if booking.Status != model.StatusCheckedIn && booking.Status != model.StatusCompleted {
		return res, fmt.Errorf("%w: escrow cannot be released for a %s booking", failure.ErrNotEligible, booking.Status)
	}

	next := booking
	next.EscrowReleased = true
	next.EscrowReleaseReference = &releaseReference

	return s.transition(ctx, booking, next, model.EventEscrowReleased, model.EscrowKey(bookingID), releaseReference,
		model.FieldEscrowReleased, model.FieldEscrowReleaseReference)
}

func (s *serviceImpl) MarkRefunded(ctx context.Context, bookingID, refundID string) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkRefunded")
	defer scope.End()
	defer scope.TraceIfError(&err)

	defer s.locks.Lock(bookingID)()

	booking, err := s.Get(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if booking.Status == model.StatusRefunded {
		return booking, nil
	}

	disputed := booking.Status == model.StatusCompleted && !booking.EscrowReleased
	if booking.Status != model.StatusCancelled && !disputed {
		return res, fmt.Errorf("%w: cannot refund a %s booking", failure.ErrNotEligible, booking.Status)
	}

	next := booking
	next.Status = model.StatusRefunded

	res, err = s.transition(ctx, booking, next, model.EventRefunded, model.RefundKey(bookingID), refundID)
	if err != nil {
		return res, err
	}

	s.publish(ctx, events.BookingRefunded, res, refundID)

	return res, nil
}

// resolveTransfer finds the booking holding reference. When eventKey was already
// applied it reports so, and the booking may be empty if the reference was since cleared.
func (s *serviceImpl) resolveTransfer(ctx context.Context, reference, eventKey string) (model.Booking, bool, error) {
	applied, err := s.repo.EventApplied(ctx, eventKey)
	if err != nil {
		log.Error().Err(err).Str("event_key", eventKey).Msg("failed to check applied event")

		return model.Booking{}, false, fmt.Errorf("failed to check applied event: %w", err)
	}

	if applied {
		log.Debug().Str("event_key", eventKey).Msg("event already applied")

		booking, err := s.repo.Get(ctx, shared.FilterBy(model.FieldTransferReference, reference, model.TableName))
		if err != nil {
			return model.Booking{}, true, fmt.Errorf("failed to get booking by transfer: %w", err)
		}

		return booking, true, nil
	}

	booking, err := s.FindByTransfer(ctx, reference)

	return booking, false, err
}

// transition persists next over current, writing only status, audit columns and the
// listed columns, and returns next with its bumped version.
func (s *serviceImpl) transition(ctx context.Context, current, next model.Booking, event, eventKey, reason string, columns ...string) (model.Booking, error) {
	user := actor(ctx)
	now := timezone.Now()

	fields := shared.Stamp(next.Columns(append(columns, model.FieldStatus)...), user)

	err := s.repo.Transition(ctx, model.Transition{
		BookingID: current.ID,
		Version:   current.Version,
		Fields:    fields,
		EventKey:  eventKey,
		History: model.StatusHistory{
			ID:         uuid.NewString(),
			BookingID:  current.ID,
			FromStatus: current.Status,
			ToStatus:   next.Status,
			Event:      event,
			Actor:      user,
			Reason:     reason,
			CreatedAt:  now,
		},
	})
	if errors.Is(err, repository.ErrEventApplied) {
		log.Info().Str("booking_id", current.ID).Str("event_key", eventKey).Msg("transition already applied")

		return s.Get(ctx, current.ID)
	}

	if err != nil {
		log.Error().Err(err).Str("booking_id", current.ID).Str("event", event).Msg("failed to apply booking transition")

		return model.Booking{}, fmt.Errorf("failed to apply %s: %w", event, err)
	}

	next.Version = current.Version + 1
	next.ModifiedAt = now
	next.ModifiedBy = user

	log.Info().Str("booking_id", current.ID).Str("from", string(current.Status)).Str("to", string(next.Status)).Str("event", event).Msg("booking transition applied")

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllBooking)
	}()

	return next, nil
}

func (s *serviceImpl) publish(ctx context.Context, eventType string, booking model.Booking, reason string) {
	s.events.Publish(ctx, events.Event{
		Type:      eventType,
		BookingID: booking.ID,
		Reference: booking.Reference(),
		Status:    string(booking.Status),
		Amount:    booking.TotalAmount,
		Actor:     actor(ctx),
		Reason:    reason,
	})
}
