package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"rentpay/infras/otel"
	"rentpay/internal/domains/booking/model"
	bookingDto "rentpay/internal/domains/booking/model/dto"
	"rentpay/internal/domains/reservation/model/dto"
	"rentpay/internal/domains/reservation/service"
	"rentpay/shared/constant"
	gDto "rentpay/shared/dto"
	"rentpay/shared/validator"
	"rentpay/transport/http/response"
)

var sortableFields = []string{
	constant.FieldCreatedAt,
	model.FieldCheckIn,
	model.FieldCheckOut,
	model.FieldStatus,
}

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
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Get("/{id}/status", handler.GetBookingStatus)
		routerGroup.Get("/{id}/history", handler.GetBookingHistory)
		routerGroup.Post("/{id}/transfers", handler.AttachTransfer)
		routerGroup.Post("/{id}/payments", handler.Pay)
		routerGroup.Post("/{id}/cancel", handler.CancelBooking)
		routerGroup.Post("/{id}/check-in", handler.CheckIn)
		routerGroup.Post("/{id}/check-out", handler.CheckOut)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Price a stay against the listing and hold it as a PENDING booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body bookingDto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[bookingDto.CreateBookingResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := bookingDto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking " + res.BookingID + " created")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookings lists the caller's bookings as renter or host.
// @Summary Get my bookings
// @Description Bookings where the caller is renter or host. Admins see every booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (PENDING, CONFIRMED, CHECKED_IN, COMPLETED, CANCELLED, REFUNDED)"
// @Success 200 {object} response.Data[bookingDto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)
	queryParams.Restrict(sortableFields...)

	bookings, err := handler.service.GetAll(ctx, queryParams, request.URL.Query().Get(model.FieldStatus))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[bookingDto.BookingResponse] "Booking details"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	booking, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// GetBookingStatus reports booking, transfer and polling state.
// @Summary Get booking payment status
// @Description Clients poll this while a payment settles.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.StatusResponse] "Booking status"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/status [get]
// @Security BearerAuth
func (handler *Handler) GetBookingStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingStatus")
	defer scope.End()

	status, err := handler.service.Status(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking status")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, status)
}

// GetBookingHistory lists every status transition of a booking.
// @Summary Get booking history
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[[]bookingDto.HistoryResponse] "Status history"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/history [get]
// @Security BearerAuth
func (handler *Handler) GetBookingHistory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingHistory")
	defer scope.End()

	history, err := handler.service.History(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking history")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, history)
}

// AttachTransfer registers a transfer the renter broadcast from their own wallet.
// @Summary Attach a transfer
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body bookingDto.AttachTransferRequest true "Transfer reference"
// @Success 202 {object} response.Data[dto.TransferResponse] "Transfer is being confirmed"
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/transfers [post]
// @Security BearerAuth
func (handler *Handler) AttachTransfer(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AttachTransfer")
	defer scope.End()

	req := bookingDto.AttachTransferRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	transfer, err := handler.service.AttachTransfer(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to attach transfer")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusAccepted, transfer)
}

// Pay submits a wallet-signed transaction for the booking total.
// @Summary Pay for a booking
// @Description Submits the signed transaction to settlement and starts confirmation polling.
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.PaymentRequest true "Signed transaction"
// @Success 202 {object} response.Data[dto.TransferResponse] "Transfer is being confirmed"
// @Failure 402 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings/{id}/payments [post]
// @Security BearerAuth
func (handler *Handler) Pay(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Pay")
	defer scope.End()

	req := dto.PaymentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	transfer, err := handler.service.Pay(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to pay for booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusAccepted, transfer)
}

// CancelBooking cancels a booking and refunds what already settled.
// @Summary Cancel a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.ReasonRequest false "Cancellation reason"
// @Success 200 {object} response.Data[dto.CancelResponse] "Cancellation outcome"
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	req := dto.ReasonRequest{}

	if err := validator.ValidateOptional(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Cancel(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CheckIn starts the stay.
// @Summary Check in
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[bookingDto.BookingResponse] "Checked in booking"
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/bookings/{id}/check-in [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	booking, err := handler.service.CheckIn(ctx, chi.URLParam(request, constant.RequestParamID), false)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// CheckOut ends the stay, releasing escrow when configured to.
// @Summary Check out
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[bookingDto.BookingResponse] "Completed booking"
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/check-out [post]
// @Security BearerAuth
func (handler *Handler) CheckOut(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOut")
	defer scope.End()

	booking, err := handler.service.CheckOut(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}
