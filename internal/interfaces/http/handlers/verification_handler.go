package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"care-connect.backend/internal/domain/entities"
	domainerrors "care-connect.backend/internal/domain/errors"
	"care-connect.backend/internal/interfaces/http/middleware"
	"care-connect.backend/internal/interfaces/http/response"
	"care-connect.backend/internal/usecases"
	"care-connect.backend/pkg/utils"
)

// VerificationHandler handles coordinator-side verification review endpoints
type VerificationHandler struct {
	verificationUsecase *usecases.VerificationUsecase
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(verificationUsecase *usecases.VerificationUsecase) *VerificationHandler {
	return &VerificationHandler{verificationUsecase: verificationUsecase}
}

// ListPendingReview lists worker profiles awaiting review
// GET /api/v1/verification/pending
func (h *VerificationHandler) ListPendingReview(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	profiles, total, err := h.verificationUsecase.ListPendingReview(c.Request.Context(), params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"profiles":   profiles,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// GetWorkerProfile returns a worker profile with its checklist
// GET /api/v1/verification/workers/:id
func (h *VerificationHandler) GetWorkerProfile(c *gin.Context) {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid profile ID"))
		return
	}

	profile, requirements, err := h.verificationUsecase.GetWorkerProfile(c.Request.Context(), profileID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Worker profile not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"profile":      profile,
		"requirements": requirements,
	})
}

// CreateRequirement adds a checklist item to a worker profile
// POST /api/v1/verification/workers/:id/requirements
func (h *VerificationHandler) CreateRequirement(c *gin.Context) {
	coordinatorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid profile ID"))
		return
	}

	var input entities.CreateRequirementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	requirement, err := h.verificationUsecase.CreateRequirement(c.Request.Context(), coordinatorID, profileID, &input)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Worker profile not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"requirement": requirement})
}

// ReviewRequirement records a decision on a submitted document
// POST /api/v1/verification/requirements/:id/review
func (h *VerificationHandler) ReviewRequirement(c *gin.Context) {
	coordinatorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	requirementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid requirement ID"))
		return
	}

	var input entities.ReviewRequirementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	requirement, err := h.verificationUsecase.ReviewRequirement(c.Request.Context(), coordinatorID, requirementID, &input)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Requirement not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"requirement": requirement})
}

// ApproveWorker finalises a worker verification
// POST /api/v1/verification/workers/:id/approve
func (h *VerificationHandler) ApproveWorker(c *gin.Context) {
	coordinatorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid profile ID"))
		return
	}

	profile, err := h.verificationUsecase.ApproveWorker(c.Request.Context(), coordinatorID, profileID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Worker profile not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}

// RejectWorker records a verification rejection
// POST /api/v1/verification/workers/:id/reject
func (h *VerificationHandler) RejectWorker(c *gin.Context) {
	coordinatorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid profile ID"))
		return
	}

	var input struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.verificationUsecase.RejectWorker(c.Request.Context(), coordinatorID, profileID, input.Reason)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Worker profile not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}
