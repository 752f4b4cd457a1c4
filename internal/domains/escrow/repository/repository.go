package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"

	"rentpay/infras/otel"
	"rentpay/infras/postgres"
	"rentpay/internal/domains/escrow/model"
	"rentpay/shared"
	"rentpay/shared/constant"
	gRepo "rentpay/shared/repository"
)

// ErrRecorded is returned when the booking already has a row of that kind.
var ErrRecorded = errors.New("already recorded for booking")

type Escrow interface {
	GetRelease(ctx context.Context, bookingID string) (model.Release, error)
	CreateRelease(ctx context.Context, release model.Release) error
	DeleteRelease(ctx context.Context, id string) error
	GetRefund(ctx context.Context, bookingID string) (model.Refund, error)
	CreateRefund(ctx context.Context, refund model.Refund) error
	DeleteRefund(ctx context.Context, id string) error
}

type repositoryImpl struct {
	releases gRepo.Repository[model.Release]
	refunds  gRepo.Repository[model.Refund]
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Escrow {
	return &repositoryImpl{
		releases: gRepo.NewRepository[model.Release](model.ReleaseEntityName, model.ReleaseTableName, model.FieldID, db, otel),
		refunds:  gRepo.NewRepository[model.Refund](model.RefundEntityName, model.RefundTableName, model.FieldID, db, otel),
		otel:     otel,
	}
}

func (r *repositoryImpl) GetRelease(ctx context.Context, bookingID string) (model.Release, error) {
	return r.releases.Get(ctx, shared.FilterBy(model.FieldBookingID, bookingID, model.ReleaseTableName))
}

func (r *repositoryImpl) CreateRelease(ctx context.Context, release model.Release) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".escrow.CreateRelease")
	defer scope.End()
	defer scope.TraceIfError(&err)

	err = r.releases.Insert(ctx, release)
	if gRepo.IsUniqueViolation(err) {
		return ErrRecorded
	}

	return err
}

func (r *repositoryImpl) DeleteRelease(ctx context.Context, id string) error {
	return r.releases.Delete(ctx, shared.FilterBy(model.FieldID, id, model.ReleaseTableName))
}

func (r *repositoryImpl) GetRefund(ctx context.Context, bookingID string) (model.Refund, error) {
	return r.refunds.Get(ctx, shared.FilterBy(model.FieldBookingID, bookingID, model.RefundTableName))
}

func (r *repositoryImpl) CreateRefund(ctx context.Context, refund model.Refund) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".escrow.CreateRefund")
	defer scope.End()
	defer scope.TraceIfError(&err)

	err = r.refunds.Insert(ctx, refund)
	if gRepo.IsUniqueViolation(err) {
		return ErrRecorded
	}

	return err
}

func (r *repositoryImpl) DeleteRefund(ctx context.Context, id string) error {
	return r.refunds.Delete(ctx, shared.FilterBy(model.FieldID, id, model.RefundTableName))
}
