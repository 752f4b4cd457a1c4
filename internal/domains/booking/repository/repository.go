package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"rentpay/infras/otel"
	"rentpay/infras/postgres"
	"rentpay/internal/domains/booking/model"
	"rentpay/shared"
	"rentpay/shared/constant"
	gDto "rentpay/shared/dto"
	"rentpay/shared/failure"
	gRepo "rentpay/shared/repository"
)

// ErrEventApplied is returned by Transition when its event key was recorded by an earlier call.
var ErrEventApplied = errors.New("event already applied")

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Create(ctx context.Context, booking model.Booking, history model.StatusHistory) error
	Transition(ctx context.Context, transition model.Transition) error
	History(ctx context.Context, bookingID string) ([]model.StatusHistory, error)
	EventApplied(ctx context.Context, eventKey string) (bool, error)
	Overlapping(ctx context.Context, propertyID string, checkIn, checkOut time.Time) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	history gRepo.Repository[model.StatusHistory]
	applied gRepo.Repository[model.AppliedEvent]
	db      *postgres.Connection
	otel    otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		history:    gRepo.NewRepository[model.StatusHistory](model.HistoryEntityName, model.HistoryTableName, model.FieldHistoryID, db, otel),
		applied:    gRepo.NewRepository[model.AppliedEvent](model.AppliedEventEntityName, model.AppliedEventTableName, model.FieldEventKey, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) Create(ctx context.Context, booking model.Booking, history model.StatusHistory) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := r.InsertTx(ctx, tx, booking); err != nil {
			return err
		}

		return r.history.InsertTx(ctx, tx, history)
	})
}

// Transition applies a compare-and-set update on the version column, records the
// history row, and claims the event key, all in one transaction.
func (r *repositoryImpl) Transition(ctx context.Context, transition model.Transition) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Transition")
	defer scope.End()
	defer scope.TraceIfError(&err)

	fields := maps.Clone(transition.Fields)
	fields[model.FieldVersion] = transition.Version + 1

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: transition.BookingID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{ArgName: "expected_version", Field: model.FieldVersion, Value: transition.Version, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	return r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if transition.EventKey != constant.Empty {
			event := model.AppliedEvent{
				EventKey:  transition.EventKey,
				BookingID: transition.BookingID,
				AppliedAt: transition.History.CreatedAt,
			}

			if err := r.applied.InsertTx(ctx, tx, event); err != nil {
				if gRepo.IsUniqueViolation(err) {
					return ErrEventApplied
				}

				return err
			}
		}

		affected, err := r.UpdateTxCount(ctx, tx, fields, filter)
		if err != nil {
			return err
		}

		if affected == 0 {
			log.Warn().Str("booking_id", transition.BookingID).Int64("version", transition.Version).Msg("stale booking version")

			return fmt.Errorf("%w: booking %s changed since version %d", failure.ErrConflict, transition.BookingID, transition.Version)
		}

		return r.history.InsertTx(ctx, tx, transition.History)
	})
}

func (r *repositoryImpl) History(ctx context.Context, bookingID string) (res []model.StatusHistory, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.History")
	defer scope.End()
	defer scope.TraceIfError(&err)

	params := gDto.QueryParams{SortBy: model.FieldHistoryCreatedAt, SortDir: gDto.SortDirAsc}

	return r.history.GetAll(ctx, params, shared.FilterBy(model.FieldHistoryBookingID, bookingID, model.HistoryTableName))
}

func (r *repositoryImpl) EventApplied(ctx context.Context, eventKey string) (bool, error) {
	return r.applied.Exist(ctx, shared.FilterBy(model.FieldEventKey, eventKey, model.AppliedEventTableName))
}

// Overlapping reports whether an active booking holds any night of [checkIn, checkOut).
func (r *repositoryImpl) Overlapping(ctx context.Context, propertyID string, checkIn, checkOut time.Time) (bool, error) {
	active := make([]string, len(model.ActiveStatuses))
	for i, status := range model.ActiveStatuses {
		active[i] = string(status)
	}

	return r.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldPropertyID, Value: propertyID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: active, Operator: gDto.FilterOperatorIn, Table: model.TableName},
			gDto.Filter{ArgName: "stay_check_out", Field: model.FieldCheckIn, Value: checkOut, Operator: gDto.FilterOperatorLess, Table: model.TableName},
			gDto.Filter{ArgName: "stay_check_in", Field: model.FieldCheckOut, Value: checkIn, Operator: gDto.FilterOperatorGreater, Table: model.TableName},
		},
	})
}
