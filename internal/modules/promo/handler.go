package promo

import (
	"errors"
	"net/http"

	"seatrips/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts staff-only promo management.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/promos", h.Create)
	rg.GET("/promos", h.List)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid promo parameters")
		case errors.Is(err, ErrCodeTaken):
			response.Error(c, http.StatusConflict, "PROMO_CODE_TAKEN", "Promo code already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create promo code")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"promo": p})
}

func (h *Handler) List(c *gin.Context) {
	promos, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list promo codes")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"promos": promos})
}
