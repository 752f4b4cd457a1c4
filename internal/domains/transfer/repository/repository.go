package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"rentpay/infras/otel"
	"rentpay/infras/postgres"
	"rentpay/internal/domains/transfer/model"
	"rentpay/shared/constant"
	gDto "rentpay/shared/dto"
	"rentpay/shared/failure"
	gRepo "rentpay/shared/repository"
)

type Transfer interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Transfer, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Transfer, error)
	Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) error
	Create(ctx context.Context, transfer model.Transfer) error
	Resumable(ctx context.Context) ([]model.Transfer, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Transfer]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Transfer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Transfer](model.EntityName, model.TableName, model.FieldReference, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) Create(ctx context.Context, transfer model.Transfer) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".transfer.Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	err = r.Insert(ctx, transfer)
	if gRepo.IsUniqueViolation(err) {
		return fmt.Errorf("%w: transfer %s is already recorded", failure.ErrConflict, transfer.Reference)
	}

	return err
}

// Resumable lists transfers that still wait on settlement and never timed out.
func (r *repositoryImpl) Resumable(ctx context.Context) (res []model.Transfer, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".transfer.Resumable")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldStatus, Value: model.StatusSubmitted, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldTimedOutAt, Operator: gDto.FilterIsNull, Table: model.TableName},
		},
	}

	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	return r.GetAll(ctx, params, filter)
}
