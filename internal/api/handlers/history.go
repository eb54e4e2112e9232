package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/iamvkosarev/replyme/internal/api/middleware"
	"github.com/iamvkosarev/replyme/internal/logger"
	"github.com/iamvkosarev/replyme/internal/model"
)

type HistoryService interface {
	ListHistory(ctx context.Context, ownerID uuid.UUID) ([]model.Generation, error)
	GetGeneration(ctx context.Context, ownerID, generationID uuid.UUID) (model.Generation, error)
	ToggleFavorite(ctx context.Context, ownerID, generationID uuid.UUID) (model.Generation, error)
	DeleteGeneration(ctx context.Context, ownerID, generationID uuid.UUID) error
	ClearHistory(ctx context.Context, ownerID uuid.UUID) error
}

type HistoryHandler struct {
	history HistoryService
}

func NewHistoryHandler(history HistoryService) *HistoryHandler {
	return &HistoryHandler{history: history}
}

func (h *HistoryHandler) List(c *gin.Context) {
	owner, ok := middleware.GetOwner(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": errorCodeUnauthorized})
		return
	}
	generations, err := h.history.ListHistory(c.Request.Context(), owner.ID)
	if err != nil {
		h.internalError(c, "Failed to list history", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": generations})
}

func (h *HistoryHandler) Get(c *gin.Context) {
	owner, generationID, ok := ownerAndGenerationID(c)
	if !ok {
		return
	}
	generation, err := h.history.GetGeneration(c.Request.Context(), owner.ID, generationID)
	if err != nil {
		h.handleError(c, "Failed to get generation", err)
		return
	}
	c.JSON(http.StatusOK, generation)
}

func (h *HistoryHandler) ToggleFavorite(c *gin.Context) {
	owner, generationID, ok := ownerAndGenerationID(c)
	if !ok {
		return
	}
	generation, err := h.history.ToggleFavorite(c.Request.Context(), owner.ID, generationID)
	if err != nil {
		h.handleError(c, "Failed to toggle favorite", err)
		return
	}
	c.JSON(http.StatusOK, generation)
}

func (h *HistoryHandler) Delete(c *gin.Context) {
	owner, generationID, ok := ownerAndGenerationID(c)
	if !ok {
		return
	}
	if err := h.history.DeleteGeneration(c.Request.Context(), owner.ID, generationID); err != nil {
		h.handleError(c, "Failed to delete generation", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HistoryHandler) Clear(c *gin.Context) {
	owner, ok := middleware.GetOwner(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": errorCodeUnauthorized})
		return
	}
	if err := h.history.ClearHistory(c.Request.Context(), owner.ID); err != nil {
		h.internalError(c, "Failed to clear history", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HistoryHandler) handleError(c *gin.Context, msg string, err error) {
	if errors.Is(err, model.ErrGenerationNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": errorCodeNotFound, "message": err.Error()})
		return
	}
	h.internalError(c, msg, err)
}

func (h *HistoryHandler) internalError(c *gin.Context, msg string, err error) {
	logger.Error(msg, err, logger.Fields{"request_id": middleware.GetRequestID(c)})
	c.JSON(http.StatusInternalServerError, gin.H{"error": errorCodeInternal})
}

// ownerAndGenerationID writes the error response itself when ok is false.
// A malformed id cannot name an existing entry, so it is reported as not found.
func ownerAndGenerationID(c *gin.Context) (model.Owner, uuid.UUID, bool) {
	owner, ok := middleware.GetOwner(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": errorCodeUnauthorized})
		return model.Owner{}, uuid.Nil, false
	}
	generationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errorCodeNotFound, "message": model.ErrGenerationNotFound.Error()})
		return model.Owner{}, uuid.Nil, false
	}
	return owner, generationID, true
}
