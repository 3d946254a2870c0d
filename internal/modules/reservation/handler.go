package reservation

import (
	"errors"
	"net/http"
	"strconv"

	"seatrips/internal/domain"
	"seatrips/internal/modules/promo"
	"seatrips/internal/pkg/response"
	"seatrips/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the authenticated booking endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.Reserve)
	rg.GET("/bookings/my", h.MyBookings)
	rg.POST("/bookings/:id/cancel", h.Cancel)
}

// RegisterStaffRoutes mounts staff-only lifecycle management.
func (h *Handler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.PATCH("/bookings/:id/status", h.UpdateStatus)
}

// RegisterPublicRoutes mounts unauthenticated reads.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/slots/:id/occupancy", h.Occupancy)
}

func (h *Handler) Reserve(c *gin.Context) {
	var req ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if details := validator.Validate(req); details != nil {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", details)
			return
		}
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	userID := c.GetInt64("user_id")
	role := c.GetString("role")

	// clients always book for themselves; staff may book on a client's behalf
	if role == string(domain.RoleClient) || req.HolderID == 0 {
		req.HolderID = userID
	}
	if role == string(domain.RoleStaff) || role == string(domain.RoleAdmin) {
		creator := userID
		req.CreatedByID = &creator
	}

	b, err := h.service.Reserve(c.Request.Context(), req)
	if err != nil {
		h.writeReserveError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) writeReserveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid reservation request")
	case errors.Is(err, ErrSlotNotFound):
		response.Error(c, http.StatusNotFound, "SLOT_NOT_FOUND", "Slot does not exist")
	case errors.Is(err, ErrSlotClosed):
		response.Error(c, http.StatusConflict, "SLOT_CLOSED", "Slot is not open for reservations")
	case errors.Is(err, ErrDuplicateBooking):
		response.Error(c, http.StatusConflict, "DUPLICATE_BOOKING", "You already have an active booking on this slot")
	case errors.Is(err, ErrCapacityExceeded):
		response.Error(c, http.StatusConflict, "CAPACITY_EXCEEDED", "Slot capacity would be exceeded")
	case errors.Is(err, promo.ErrNotFound):
		response.Error(c, http.StatusNotFound, "PROMO_NOT_FOUND", "Promo code not found")
	case errors.Is(err, promo.ErrNotYetValid):
		response.Error(c, http.StatusConflict, "PROMO_NOT_YET_VALID", "Promo code is not yet valid")
	case errors.Is(err, promo.ErrExpired):
		response.Error(c, http.StatusConflict, "PROMO_EXPIRED", "Promo code expired")
	case errors.Is(err, promo.ErrExhausted):
		response.Error(c, http.StatusConflict, "PROMO_USAGE_EXHAUSTED", "Promo code usage limit reached")
	case errors.Is(err, ErrBusy):
		response.Error(c, http.StatusServiceUnavailable, "SLOT_BUSY", "Slot is busy, please retry")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
	}
}

func (h *Handler) MyBookings(c *gin.Context) {
	userID := c.GetInt64("user_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	bookings, err := h.service.ListByHolder(c.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking does not exist")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel booking")
		return
	}

	userID := c.GetInt64("user_id")
	role := c.GetString("role")
	if b.HolderID != userID && role != string(domain.RoleStaff) && role != string(domain.RoleAdmin) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your booking")
		return
	}

	ok, err := h.service.Cancel(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking does not exist")
		case errors.Is(err, ErrBookingCancelled):
			response.Error(c, http.StatusConflict, "BOOKING_CANCELLED", "Booking is already cancelled")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cancelled": ok})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), id, req.ClientStatus, req.PaymentStatus)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown status value")
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking does not exist")
		case errors.Is(err, ErrBookingCancelled):
			response.Error(c, http.StatusConflict, "BOOKING_CANCELLED", "Cancelled bookings cannot be updated")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update booking status")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": updated})
}

func (h *Handler) Occupancy(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid slot ID")
		return
	}

	people, weight, err := h.service.Occupancy(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			response.Error(c, http.StatusNotFound, "SLOT_NOT_FOUND", "Slot does not exist")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute occupancy")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"occupancy": OccupancyResponse{
		SlotID: id,
		People: people,
		Weight: weight,
	}})
}
