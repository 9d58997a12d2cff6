package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"care-connect.backend/internal/domain/entities"
	domainerrors "care-connect.backend/internal/domain/errors"
	"care-connect.backend/internal/interfaces/http/middleware"
	"care-connect.backend/internal/interfaces/http/response"
	"care-connect.backend/internal/usecases"
)

// WorkerHandler handles a worker's own profile and checklist endpoints
type WorkerHandler struct {
	workerUsecase       *usecases.WorkerProfileUsecase
	verificationUsecase *usecases.VerificationUsecase
}

// NewWorkerHandler creates a new worker handler
func NewWorkerHandler(workerUsecase *usecases.WorkerProfileUsecase, verificationUsecase *usecases.VerificationUsecase) *WorkerHandler {
	return &WorkerHandler{
		workerUsecase:       workerUsecase,
		verificationUsecase: verificationUsecase,
	}
}

// GetProfile returns the worker profile of the authenticated user
// GET /api/v1/workers/me
func (h *WorkerHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	profile, err := h.workerUsecase.GetOwnProfile(c.Request.Context(), userID)
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

// UpdateProfile applies worker-editable profile fields
// PUT /api/v1/workers/me
func (h *WorkerHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.UpdateWorkerProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.workerUsecase.UpdateOwnProfile(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}

// ListRequirements lists the compliance checklist of the authenticated worker
// GET /api/v1/workers/me/requirements
func (h *WorkerHandler) ListRequirements(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	requirements, err := h.workerUsecase.ListOwnRequirements(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"requirements": requirements})
}

// SubmitDocument attaches a document to a checklist item
// POST /api/v1/workers/me/requirements/:id/document
func (h *WorkerHandler) SubmitDocument(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	requirementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid requirement ID"))
		return
	}

	var input entities.SubmitDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	requirement, err := h.verificationUsecase.SubmitDocument(c.Request.Context(), userID, requirementID, &input)
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

// SubmitForReview hands the worker's profile to coordinators
// POST /api/v1/workers/me/submit
func (h *WorkerHandler) SubmitForReview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	profile, err := h.verificationUsecase.SubmitForReview(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}
