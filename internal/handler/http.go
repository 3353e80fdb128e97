package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/autobid/transport-service/internal/booking"
	"github.com/autobid/transport-service/internal/entities"
	"github.com/autobid/transport-service/internal/quote"
	"github.com/autobid/transport-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type QuoteService interface {
	GetQuotes(ctx context.Context, req quote.Request) ([]entities.Quote, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, in booking.CreateInput) (entities.TransportBooking, error)
	GetBookingByID(ctx context.Context, bookingID string) (entities.TransportBooking, error)
	UpdateStatus(ctx context.Context, bookingID string, ch booking.StatusChange) (entities.TransportBooking, error)
	CompleteCustoms(ctx context.Context, bookingID string, cc booking.CustomsCompletion) (entities.TransportBooking, error)
	UpdateTracking(ctx context.Context, bookingID string, patch booking.TrackingPatch) (entities.TransportBooking, error)
	AddDocument(ctx context.Context, bookingID string, doc entities.Document) (entities.TransportBooking, error)
	AddNote(ctx context.Context, bookingID string, note entities.Note) (entities.TransportBooking, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	quotes   QuoteService
	bookings BookingService
}

func NewHTTPHandler(logger *slog.Logger, quotes QuoteService, bookings BookingService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		quotes:   quotes,
		bookings: bookings,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/quotes", h.GetQuotes)
	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", h.CreateBooking)
		r.Get("/{booking_id}", h.GetBookingByID)
		r.Post("/{booking_id}/status", h.UpdateStatus)
		r.Post("/{booking_id}/customs/complete", h.CompleteCustoms)
		r.Patch("/{booking_id}/tracking", h.UpdateTracking)
		r.Post("/{booking_id}/documents", h.AddDocument)
		r.Post("/{booking_id}/notes", h.AddNote)
	})
}

// GetQuotes prices a route with every eligible provider.
// @Summary      Request transport quotes
// @Description  Returns one quote per eligible provider, preferred-first. An empty list means no provider serves the route.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request  body      QuoteRequest  true  "Route and vehicle"
// @Success      200  {array}   Quote
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /quotes [post]
func (h *HTTPHandler) GetQuotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req QuoteRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	quotes, err := h.quotes.GetQuotes(ctx, QuoteRequestToInput(req))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get quotes", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]Quote, 0, len(quotes))
	for _, q := range quotes {
		resp = append(resp, QuoteEntityToJSON(q))
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}

// CreateBooking creates a transport booking for a chosen provider.
// @Summary      Create booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request  body      CreateBookingRequest  true  "Booking details"
// @Success      201  {object}  Booking
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse "Provider not found"
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /bookings [post]
func (h *HTTPHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateBookingRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	b, err := h.bookings.CreateBooking(ctx, CreateRequestToInput(req))
	if errors.Is(err, entities.ErrProviderNotFound) {
		utils.WriteError(w, "provider not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create booking", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, BookingEntityToJSON(b), http.StatusCreated)
}

// GetBookingByID returns the booking aggregate.
// @Summary      Get booking
// @Tags         bookings
// @Produce      json
// @Param        booking_id  path      string  true  "Booking identifier"
// @Success      200  {object}  Booking
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /bookings/{booking_id} [get]
func (h *HTTPHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	bookingID := chi.URLParam(r, "booking_id")

	b, err := h.bookings.GetBookingByID(ctx, bookingID)
	if errors.Is(err, entities.ErrBookingNotFound) {
		utils.WriteError(w, "booking not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get booking", slog.Any("error", err), slog.String("booking_id", bookingID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, BookingEntityToJSON(b), http.StatusOK)
}

// UpdateStatus moves the booking through its lifecycle.
// @Summary      Update booking status
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        booking_id  path      string               true  "Booking identifier"
// @Param        request     body      StatusUpdateRequest  true  "Target status"
// @Success      200  {object}  Booking
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Transition not allowed"
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /bookings/{booking_id}/status [post]
func (h *HTTPHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	bookingID := chi.URLParam(r, "booking_id")

	var req StatusUpdateRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	b, err := h.bookings.UpdateStatus(ctx, bookingID, booking.StatusChange{
		Status:   entities.BookingStatus(req.Status),
		Location: req.Location,
		Notes:    req.Notes,
	})
	if h.writeBookingError(w, r, err, bookingID) {
		return
	}

	utils.WriteJSON(w, BookingEntityToJSON(b), http.StatusOK)
}

// CompleteCustoms records customs clearance facts.
// @Summary      Complete customs clearance
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        booking_id  path      string                  true  "Booking identifier"
// @Param        request     body      CompleteCustomsRequest  true  "Clearance details"
// @Success      200  {object}  Booking
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Customs clearance not required"
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /bookings/{booking_id}/customs/complete [post]
func (h *HTTPHandler) CompleteCustoms(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	bookingID := chi.URLParam(r, "booking_id")

	var req CompleteCustomsRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	b, err := h.bookings.CompleteCustoms(ctx, bookingID, booking.CustomsCompletion{
		ClearanceDate: req.ClearanceDate,
		Office:        req.Office,
		Agent:         req.Agent,
		Documents:     req.Documents,
		DutiesAmount:  req.DutiesAmount,
		Notes:         req.Notes,
	})
	if h.writeBookingError(w, r, err, bookingID) {
		return
	}

	utils.WriteJSON(w, BookingEntityToJSON(b), http.StatusOK)
}

// UpdateTracking applies a partial tracking update.
// @Summary      Update tracking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        booking_id  path      string                true  "Booking identifier"
// @Param        request     body      TrackingPatchRequest  true  "Fields to overwrite"
// @Success      200  {object}  Booking
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /bookings/{booking_id}/tracking [patch]
func (h *HTTPHandler) UpdateTracking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	bookingID := chi.URLParam(r, "booking_id")

	var req TrackingPatchRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	b, err := h.bookings.UpdateTracking(ctx, bookingID, TrackingPatchToInput(req))
	if h.writeBookingError(w, r, err, bookingID) {
		return
	}

	utils.WriteJSON(w, BookingEntityToJSON(b), http.StatusOK)
}

// AddDocument attaches a document to the booking.
// @Summary      Add document
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        booking_id  path      string              true  "Booking identifier"
// @Param        request     body      AddDocumentRequest  true  "Document"
// @Success      200  {object}  Booking
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /bookings/{booking_id}/documents [post]
func (h *HTTPHandler) AddDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	bookingID := chi.URLParam(r, "booking_id")

	var req AddDocumentRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	b, err := h.bookings.AddDocument(ctx, bookingID, entities.Document{
		Type:       req.Type,
		Filename:   req.Filename,
		URL:        req.URL,
		UploadedAt: time.Now(),
	})
	if h.writeBookingError(w, r, err, bookingID) {
		return
	}

	utils.WriteJSON(w, BookingEntityToJSON(b), http.StatusOK)
}

// AddNote appends a note to the booking. Notes default to public.
// @Summary      Add note
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        booking_id  path      string          true  "Booking identifier"
// @Param        request     body      AddNoteRequest  true  "Note"
// @Success      200  {object}  Booking
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /bookings/{booking_id}/notes [post]
func (h *HTTPHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	bookingID := chi.URLParam(r, "booking_id")

	var req AddNoteRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	b, err := h.bookings.AddNote(ctx, bookingID, entities.Note{
		Author:    req.Author,
		Content:   req.Content,
		IsPublic:  isPublic,
		CreatedAt: time.Now(),
	})
	if h.writeBookingError(w, r, err, bookingID) {
		return
	}

	utils.WriteJSON(w, BookingEntityToJSON(b), http.StatusOK)
}

// writeBookingError maps lifecycle errors to HTTP statuses and reports
// whether a response was written.
func (h *HTTPHandler) writeBookingError(w http.ResponseWriter, r *http.Request, err error, bookingID string) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, entities.ErrBookingNotFound):
		utils.WriteError(w, "booking not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrBadTransition):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrCustomsNotNeeded):
		utils.WriteError(w, "customs clearance not required", http.StatusConflict)
	default:
		h.logger.ErrorContext(r.Context(), "booking operation failed",
			slog.Any("error", err), slog.String("booking_id", bookingID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
	return true
}
