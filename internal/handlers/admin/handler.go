package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"rentpay/infras/otel"
	"rentpay/internal/domains/reservation/model/dto"
	"rentpay/internal/domains/reservation/service"
	"rentpay/shared/constant"
	"rentpay/shared/validator"
	"rentpay/transport/http/response"
)

// Handler exposes operator actions. Route access is restricted to admins by the RBAC table.
type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Post("/bookings/{id}/release-escrow", handler.ReleaseEscrow)
		routerGroup.Post("/bookings/{id}/refund", handler.Refund)
		routerGroup.Post("/bookings/{id}/dispute-refund", handler.DisputeRefund)
		routerGroup.Post("/bookings/{id}/check-in", handler.CheckIn)
		routerGroup.Post("/transfers/{reference}/reconcile", handler.Reconcile)
	})
}

// ReleaseEscrow pays the host share of a checked-in or completed booking.
// @Summary Release escrow
// @Tags Admin
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.ReleaseResponse] "Escrow release"
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/admin/bookings/{id}/release-escrow [post]
// @Security BearerAuth
func (handler *Handler) ReleaseEscrow(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReleaseEscrow")
	defer scope.End()

	res, err := handler.service.ReleaseEscrow(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to release escrow")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Refund retries the policy refund of a cancelled booking.
// @Summary Refund a cancelled booking
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.ReasonRequest false "Reason"
// @Success 200 {object} response.Data[dto.RefundResponse] "Refund"
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/admin/bookings/{id}/refund [post]
// @Security BearerAuth
func (handler *Handler) Refund(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Refund")
	defer scope.End()

	req := dto.ReasonRequest{}

	if err := validator.ValidateOptional(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Refund(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refund booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// DisputeRefund returns the settled amount of a disputed stay to the renter.
// @Summary Refund a disputed stay
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.ReasonRequest false "Reason"
// @Success 200 {object} response.Data[dto.RefundResponse] "Refund"
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/admin/bookings/{id}/dispute-refund [post]
// @Security BearerAuth
func (handler *Handler) DisputeRefund(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DisputeRefund")
	defer scope.End()

	req := dto.ReasonRequest{}

	if err := validator.ValidateOptional(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.DisputeRefund(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refund disputed booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CheckIn checks a booking in before its check-in day.
// @Summary Check in with override
// @Tags Admin
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[bookingDto.BookingResponse] "Checked in booking"
// @Failure 409 {object} response.Error
// @Router /v1/admin/bookings/{id}/check-in [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	booking, err := handler.service.CheckIn(ctx, chi.URLParam(request, constant.RequestParamID), true)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// Reconcile restarts confirmation polling for a transfer that timed out or was abandoned.
// @Summary Reconcile a transfer
// @Tags Admin
// @Produce json
// @Param reference path string true "Transfer reference"
// @Success 202 {object} response.Data[dto.TransferResponse] "Polling restarted"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/admin/transfers/{reference}/reconcile [post]
// @Security BearerAuth
func (handler *Handler) Reconcile(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Reconcile")
	defer scope.End()

	transfer, err := handler.service.Reconcile(ctx, chi.URLParam(request, constant.RequestParamReference))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reconcile transfer")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusAccepted, transfer)
}
