package dto

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"rentpay/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"

	MaxLimit = 100
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page, limit and sort from the query string. With defaultRequest
// set, missing page and limit fall back to the defaults. Limit never exceeds MaxLimit.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page, err := strconv.Atoi(queryParams.Get(constant.RequestParamPage)); err == nil && page > 0 {
		q.Page = page
	}

	if limit, err := strconv.Atoi(queryParams.Get(constant.RequestParamLimit)); err == nil && limit > 0 {
		q.Limit = min(limit, MaxLimit)
	}

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := strings.ToUpper(queryParams.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

// Restrict resets SortBy to the default unless it names one of the sortable
// columns, and fills in the default direction. SortBy is interpolated into SQL.
func (q *QueryParams) Restrict(sortable ...string) {
	if !slices.Contains(sortable, q.SortBy) {
		q.SortBy = constant.DefaultValueSortBy
	}

	if q.SortDir == constant.Empty {
		q.SortDir = constant.DefaultValueSortDir
	}
}
