package service

//go:generate go run go.uber.org/mock/mockgen -source=./poller.go -destination=../mocks/poller_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"rentpay/config"
	"rentpay/infras/otel"
	"rentpay/infras/settlement"
	bookingModel "rentpay/internal/domains/booking/model"
	bookingService "rentpay/internal/domains/booking/service"
	escrowService "rentpay/internal/domains/escrow/service"
	"rentpay/internal/domains/transfer/model"
	"rentpay/internal/domains/transfer/repository"
	"rentpay/shared"
	"rentpay/shared/constant"
	"rentpay/shared/failure"
	"rentpay/shared/timezone"
)

const (
	reasonAmountMismatch = "settled amount does not match booking total"
	reasonWrongRecipient = "transfer does not pay the escrow account"
	reasonWrongSender    = "transfer was sent from another account"
	reasonLateRefund     = "transfer settled after cancellation"
)

// Session is a snapshot of one polling session.
type Session struct {
	Reference   string            `json:"transfer_reference"`
	BookingID   string            `json:"booking_id"`
	Expected    int64             `json:"expected_amount"`
	Recipient   string            `json:"recipient"`
	Payer       string            `json:"payer,omitempty"`
	Attempt     int               `json:"attempt"`
	MaxAttempts int               `json:"max_attempts"`
	Interval    time.Duration     `json:"interval"`
	StartedAt   time.Time         `json:"started_at"`
	LastStatus  settlement.Status `json:"last_status,omitempty"`
}

// Poller runs one goroutine per transfer until settlement reports a final status
// or the attempt budget runs out. Stop detaches a session from its booking; the
// transfer is still watched for the rest of its budget so a late settlement gets
// refunded.
type Poller interface {
	Start(ctx context.Context, transfer model.Transfer) error
	Stop(bookingID string) bool
	Active(bookingID string) (Session, bool)
	Shutdown(ctx context.Context) error
}

type session struct {
	mu       sync.Mutex
	info     Session
	detached atomic.Bool
}

func (s *session) snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.info
}

func (s *session) next() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.info.Attempt++

	return s.info.Attempt
}

func (s *session) observe(status settlement.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.info.LastStatus = status
}

type pollerImpl struct {
	settlement settlement.Client
	ledger     bookingService.Ledger
	repo       repository.Transfer
	escrow     escrowService.Controller
	cfg        *config.Config
	otel       otel.Otel

	mu          sync.Mutex
	byBooking   map[string]*session
	byReference map[string]*session
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
}

func NewPoller(settlement settlement.Client, ledger bookingService.Ledger, repo repository.Transfer, escrow escrowService.Controller, cfg *config.Config, otel otel.Otel) Poller {
	ctx, cancel := context.WithCancel(context.Background())

	if cfg.Settlement.EscrowAddress == constant.Empty {
		log.Warn().Msg("settlement escrow address is not configured, confirmations are checked against each transfer's recorded recipient")
	}

	return &pollerImpl{
		settlement:  settlement,
		ledger:      ledger,
		repo:        repo,
		escrow:      escrow,
		cfg:         cfg,
		otel:        otel,
		byBooking:   map[string]*session{},
		byReference: map[string]*session{},
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start refuses a second session for the same booking or reference. Sessions run
// detached from ctx so a finished request does not end them.
func (p *pollerImpl) Start(ctx context.Context, transfer model.Transfer) (err error) {
	_, scope := p.otel.NewScope(ctx, constant.OtelWorkerScopeName, constant.OtelWorkerScopeName+".poller.Start")
	defer scope.End()
	defer scope.TraceIfError(&err)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctx.Err() != nil {
		return fmt.Errorf("%w: poller is shutting down", failure.ErrConflict)
	}

	if _, ok := p.byReference[transfer.Reference]; ok {
		return fmt.Errorf("%w: transfer %s is already being polled", failure.ErrConflict, transfer.Reference)
	}

	if _, ok := p.byBooking[transfer.BookingID]; ok {
		return fmt.Errorf("%w: booking %s already has a polling session", failure.ErrConflict, transfer.BookingID)
	}

	recipient := p.cfg.Settlement.EscrowAddress
	if recipient == constant.Empty {
		recipient = transfer.ToAddress
	}

	s := &session{
		info: Session{
			Reference:   transfer.Reference,
			BookingID:   transfer.BookingID,
			Expected:    transfer.Amount,
			Recipient:   recipient,
			Payer:       transfer.FromAddress,
			MaxAttempts: p.cfg.Payment.Poller.MaxAttempts,
			Interval:    p.cfg.Payment.Poller.Interval,
			StartedAt:   timezone.Now(),
		},
	}

	p.byBooking[transfer.BookingID] = s
	p.byReference[transfer.Reference] = s

	log.Info().Str("booking_id", transfer.BookingID).Str("transfer_reference", transfer.Reference).
		Int("max_attempts", s.info.MaxAttempts).Dur("interval", s.info.Interval).Msg("polling session started")

	p.wg.Add(1)

	go p.run(context.Background(), s)

	return nil
}

// Stop releases the booking at once. Its transfer stays registered by reference
// until it settles, fails or exhausts the remaining attempts.
func (p *pollerImpl) Stop(bookingID string) bool {
	p.mu.Lock()
	s, ok := p.byBooking[bookingID]
	if ok {
		delete(p.byBooking, bookingID)
		s.detached.Store(true)
	}
	p.mu.Unlock()

	if !ok {
		return false
	}

	log.Info().Str("booking_id", bookingID).Str("transfer_reference", s.info.Reference).Msg("polling session detached, watching for late settlement")

	return true
}

func (p *pollerImpl) Active(bookingID string) (Session, bool) {
	p.mu.Lock()
	s, ok := p.byBooking[bookingID]
	p.mu.Unlock()

	if !ok {
		return Session{}, false
	}

	return s.snapshot(), true
}

// Shutdown stops every session and waits for in-flight ticks to finish.
func (p *pollerImpl) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	p.cancel()
	p.mu.Unlock()

	done := make(chan struct{})

	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("poller shutdown: %w", ctx.Err())
	}
}

func (p *pollerImpl) release(s *session) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.byBooking[s.info.BookingID] == s {
		delete(p.byBooking, s.info.BookingID)
	}

	delete(p.byReference, s.info.Reference)
}

func (p *pollerImpl) run(ctx context.Context, s *session) {
	defer p.wg.Done()
	defer p.release(s)

	ref := s.info.Reference

	for {
		if p.ctx.Err() != nil {
			log.Info().Str("transfer_reference", ref).Msg("polling session stopped")

			return
		}

		attempt := s.next()
		if attempt > s.info.MaxAttempts {
			p.timeout(ctx, s)

			return
		}

		receipt, err := p.query(ctx, ref)
		if err != nil {
			log.Warn().Err(err).Str("transfer_reference", ref).Int("attempt", attempt).Msg("settlement status query failed")
		} else {
			s.observe(receipt.Status)

			log.Debug().Str("transfer_reference", ref).Int("attempt", attempt).Str("status", string(receipt.Status)).Msg("settlement status observed")

			if p.settle(ctx, s, receipt) {
				return
			}
		}

		if !p.wait(s) {
			log.Info().Str("transfer_reference", ref).Msg("polling session stopped")

			return
		}
	}
}

func (p *pollerImpl) query(ctx context.Context, reference string) (settlement.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Payment.Poller.QueryTimeout)
	defer cancel()

	return p.settlement.Status(ctx, reference) //nolint:wrapcheck
}

// wait sleeps one interval and reports false when the poller shut down meanwhile.
func (p *pollerImpl) wait(s *session) bool {
	timer := time.NewTimer(s.info.Interval)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-p.ctx.Done():
		return false
	}
}

// settle writes a final receipt back and reports whether the session is over.
// Transient ledger errors keep the session alive so the next tick retries.
func (p *pollerImpl) settle(ctx context.Context, s *session, receipt settlement.Receipt) bool {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelWorkerScopeName, constant.OtelWorkerScopeName+".poller.settle")
	defer scope.End()

	ref := s.info.Reference

	switch receipt.Status {
	case settlement.StatusConfirmed:
		if receipt.Amount != s.info.Expected {
			log.Error().Str("transfer_reference", ref).Int64("expected", s.info.Expected).Int64("settled", receipt.Amount).Msg("settled amount mismatch")

			return p.fail(ctx, s, reasonAmountMismatch)
		}

		if s.info.Recipient == constant.Empty || !strings.EqualFold(receipt.To, s.info.Recipient) {
			log.Error().Str("transfer_reference", ref).Str("expected", s.info.Recipient).Str("paid", receipt.To).Msg("settled transfer pays another account")

			return p.fail(ctx, s, reasonWrongRecipient)
		}

		if s.info.Payer != constant.Empty && !strings.EqualFold(receipt.From, s.info.Payer) {
			log.Error().Str("transfer_reference", ref).Str("expected", s.info.Payer).Str("sender", receipt.From).Msg("settled transfer sent from another account")

			return p.fail(ctx, s, reasonWrongSender)
		}

		booking, err := p.ledger.ApplyConfirmation(ctx, ref, receipt.Amount, receipt.Sequence)

		switch {
		case errors.Is(err, failure.ErrAmountMismatch):
			return p.fail(ctx, s, reasonAmountMismatch)
		case errors.Is(err, failure.ErrConflict), errors.Is(err, failure.ErrNotFound):
			log.Error().Err(err).Str("transfer_reference", ref).Msg("confirmed transfer no longer matches its booking")
		case err != nil:
			scope.TraceError(err)
			log.Error().Err(err).Str("transfer_reference", ref).Msg("failed to apply confirmation, will retry")

			return false
		}

		sequence := int64(receipt.Sequence) //nolint:gosec
		p.record(ctx, ref, map[string]any{
			model.FieldStatus:              model.StatusConfirmed,
			model.FieldConfirmedAtSequence: &sequence,
		})

		if err == nil && booking.Status == bookingModel.StatusCancelled {
			p.refundLate(ctx, booking)
		}

		return true
	case settlement.StatusFailed:
		return p.fail(ctx, s, receipt.Reason)
	default:
		return false
	}
}

func (p *pollerImpl) fail(ctx context.Context, s *session, reason string) bool {
	ref := s.info.Reference

	if err := p.ledger.ApplyFailure(ctx, ref, reason); err != nil && !errors.Is(err, failure.ErrConflict) && !errors.Is(err, failure.ErrNotFound) {
		log.Error().Err(err).Str("transfer_reference", ref).Msg("failed to apply transfer failure, will retry")

		return false
	}

	p.record(ctx, ref, map[string]any{
		model.FieldStatus:        model.StatusFailed,
		model.FieldFailureReason: &reason,
	})

	log.Warn().Str("booking_id", s.info.BookingID).Str("transfer_reference", ref).Str("reason", reason).Msg("transfer failed")

	return true
}

func (p *pollerImpl) timeout(ctx context.Context, s *session) {
	ref := s.info.Reference
	now := timezone.Now()

	p.record(ctx, ref, map[string]any{model.FieldTimedOutAt: &now})

	if err := p.ledger.MarkTimeout(ctx, ref); err != nil {
		log.Error().Err(err).Str("transfer_reference", ref).Msg("failed to record polling timeout")
	}

	log.Warn().Err(failure.ErrPollingTimeout).Str("booking_id", s.info.BookingID).Str("transfer_reference", ref).
		Int("attempts", s.info.MaxAttempts).Bool("detached", s.detached.Load()).Msg("polling session timed out")
}

func (p *pollerImpl) refundLate(ctx context.Context, booking bookingModel.Booking) {
	refund, err := p.escrow.Refund(ctx, booking.ID, reasonLateRefund)
	if err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to refund late settlement")

		return
	}

	log.Info().Str("booking_id", booking.ID).Int64("amount", refund.Amount).Msg("late settlement refunded")
}

func (p *pollerImpl) record(ctx context.Context, reference string, fields map[string]any) {
	fields = shared.Stamp(fields, constant.ContextSystem)

	if err := p.repo.Update(ctx, fields, shared.FilterBy(model.FieldReference, reference, model.TableName)); err != nil {
		log.Error().Err(err).Str("transfer_reference", reference).Msg("failed to update transfer record")
	}
}
