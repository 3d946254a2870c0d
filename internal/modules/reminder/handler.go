package reminder

import (
	"errors"
	"net/http"
	"strconv"

	"seatrips/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the staff reminder query.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reminders", h.Upcoming)
}

func (h *Handler) Upcoming(c *gin.Context) {
	windowHours, err := strconv.Atoi(c.DefaultQuery("window_hours", "24"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid window_hours")
		return
	}

	bookings, err := h.service.UpcomingForReminder(c.Request.Context(), windowHours)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "window_hours must be positive")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to select reminders")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}
