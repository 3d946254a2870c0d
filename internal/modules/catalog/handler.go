package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"seatrips/internal/domain"
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

// RegisterPublicRoutes mounts the catalog reads.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/excursions", h.ListExcursions)
	rg.GET("/excursions/:id", h.GetExcursion)
	rg.GET("/excursions/:id/slots", h.ListSlots)
	rg.GET("/slots/:id", h.GetSlot)
}

// RegisterStaffRoutes mounts excursion/slot management.
func (h *Handler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.POST("/excursions", h.CreateExcursion)
	rg.POST("/excursions/:id/deactivate", h.DeactivateExcursion)
	rg.POST("/excursions/:id/activate", h.ActivateExcursion)
	rg.POST("/slots", h.CreateSlot)
	rg.POST("/slots/:id/complete", h.CompleteSlot)
	rg.POST("/slots/:id/cancel", h.CancelSlot)
}

func (h *Handler) CreateExcursion(c *gin.Context) {
	var req CreateExcursionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.CreateExcursion(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrNameTaken) {
			response.Error(c, http.StatusConflict, "NAME_TAKEN", "Excursion name already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create excursion")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"excursion": e})
}

func (h *Handler) ListExcursions(c *gin.Context) {
	activeOnly := c.DefaultQuery("active", "true") == "true"

	list, err := h.service.ListExcursions(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list excursions")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"excursions": list})
}

func (h *Handler) GetExcursion(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid excursion ID")
		return
	}

	e, err := h.service.GetExcursion(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Excursion not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load excursion")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"excursion": e})
}

func (h *Handler) DeactivateExcursion(c *gin.Context) { h.setExcursionActive(c, false) }
func (h *Handler) ActivateExcursion(c *gin.Context)   { h.setExcursionActive(c, true) }

func (h *Handler) setExcursionActive(c *gin.Context, active bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid excursion ID")
		return
	}

	if err := h.service.SetExcursionActive(c.Request.Context(), id, active); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Excursion not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update excursion")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"active": active})
}

func (h *Handler) CreateSlot(c *gin.Context) {
	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if details := validator.Validate(req); details != nil {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", details)
			return
		}
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	slot, err := h.service.CreateSlot(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Slot must start in the future")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Excursion not found")
		case errors.Is(err, ErrExcursionInactive):
			response.Error(c, http.StatusConflict, "EXCURSION_INACTIVE", "Excursion is not active")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create slot")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"slot": slot})
}

func (h *Handler) ListSlots(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid excursion ID")
		return
	}

	slots, err := h.service.ListSlots(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list slots")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"slots": slots})
}

func (h *Handler) GetSlot(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid slot ID")
		return
	}

	slot, err := h.service.GetSlot(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Slot not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load slot")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"slot": slot})
}

func (h *Handler) CompleteSlot(c *gin.Context) { h.updateSlotStatus(c, domain.SlotCompleted) }
func (h *Handler) CancelSlot(c *gin.Context)   { h.updateSlotStatus(c, domain.SlotCancelled) }

func (h *Handler) updateSlotStatus(c *gin.Context, status domain.SlotStatus) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid slot ID")
		return
	}

	if err := h.service.UpdateSlotStatus(c.Request.Context(), id, status); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Slot not found")
		case errors.Is(err, ErrInvalidTransition):
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Slot is no longer scheduled")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update slot")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": status})
}
