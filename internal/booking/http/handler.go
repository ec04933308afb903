package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arenaduna/booking-backend/internal/auth"
	"github.com/arenaduna/booking-backend/internal/booking"
	"github.com/arenaduna/booking-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
	logger  *zap.Logger
}

func NewHandler(service booking.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Availability handles GET /v1/availability?date=YYYY-MM-DD&duration=60
func (h *Handler) Availability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and duration query parameters are required"})
		return
	}

	slots, err := h.service.Availability(c.Request.Context(), req.Date, req.Duration)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": NewSlotResponses(slots)})
}

// Create handles POST /v1/bookings
func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	assignment, err := h.service.Book(c.Request.Context(), booking.CreateRequest{
		Date:     body.Date,
		Start:    body.Start,
		Duration: body.Duration,
		Name:     body.Name,
		Phone:    body.Phone,
		Email:    body.Email,
	})
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(assignment))
}

// Cancel handles POST /v1/bookings/cancel
func (h *Handler) Cancel(c *gin.Context) {
	var body CancelBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.service.Cancel(c.Request.Context(), booking.CancelRequest{
		Phone:      body.Phone,
		EventID:    body.EventID,
		CancelCode: body.CancelCode,
	})
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, NewCancelResponse(result))
}

// Mine handles GET /v1/bookings/mine (authenticated). It lists upcoming
// events matching the phone number claim of the access token.
func (h *Handler) Mine(c *gin.Context) {
	if auth.GetUserID(c) == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	phone := auth.GetUserPhone(c)
	if phone == "" {
		c.JSON(http.StatusOK, gin.H{"bookings": []EventResponse{}})
		return
	}

	events, err := h.service.UpcomingByPhone(c.Request.Context(), phone)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": NewEventResponses(events)})
}
