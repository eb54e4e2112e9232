package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/iamvkosarev/replyme/internal/logger"
	"github.com/iamvkosarev/replyme/internal/model"
)

type HistoryStorage interface {
	AddGeneration(ctx context.Context, generation model.Generation) error
	ListGenerations(ctx context.Context, ownerID uuid.UUID) ([]model.Generation, error)
	CountGenerations(ctx context.Context, ownerID uuid.UUID) (int, error)
	GetGeneration(ctx context.Context, ownerID, generationID uuid.UUID) (model.Generation, error)
	SetFavorite(ctx context.Context, ownerID, generationID uuid.UUID, favorite bool) error
	DeleteGeneration(ctx context.Context, ownerID, generationID uuid.UUID) error
	ClearGenerations(ctx context.Context, ownerID uuid.UUID) error
}

type Generator interface {
	Generate(ctx context.Context, input string, tone model.Tone, mode model.Mode) (model.GenerationResult, error)
}

type HistoryUsecaseDeps struct {
	HistoryStorage HistoryStorage
	Generator      Generator
}

type HistoryUsecase struct {
	HistoryUsecaseDeps
	freeGenerations int
	now             func() time.Time
}

func NewHistoryUsecase(deps HistoryUsecaseDeps, freeGenerations int) *HistoryUsecase {
	return &HistoryUsecase{
		HistoryUsecaseDeps: deps,
		freeGenerations:    freeGenerations,
		now:                time.Now,
	}
}

// GenerateComeback checks the free-generation gate, generates replies and
// records them in the owner's history. Rejected input is not recorded.
func (h *HistoryUsecase) GenerateComeback(
	ctx context.Context, owner model.Owner, input string, tone model.Tone, mode model.Mode,
) (model.Generation, error) {
	if owner.Anonymous {
		used, err := h.HistoryStorage.CountGenerations(ctx, owner.ID)
		if err != nil {
			return model.Generation{}, fmt.Errorf("failed to count generations: %w", err)
		}
		if used >= h.freeGenerations {
			return model.Generation{}, model.ErrSignInRequired
		}
	}

	result, err := h.Generator.Generate(ctx, input, tone, mode)
	if err != nil {
		return model.Generation{}, err
	}

	generation := model.Generation{
		ID:        uuid.New(),
		OwnerID:   owner.ID,
		Timestamp: h.now().UTC(),
		Input:     input,
		Tone:      tone,
		Mode:      mode,
		Replies:   result.Replies,
		Source:    result.Source,
	}
	if err = h.HistoryStorage.AddGeneration(ctx, generation); err != nil {
		logger.Error("Failed to save generation", err, logger.Fields{
			"owner_id":      owner.ID.String(),
			"generation_id": generation.ID.String(),
		})
	}
	return generation, nil
}

func (h *HistoryUsecase) ListHistory(ctx context.Context, ownerID uuid.UUID) ([]model.Generation, error) {
	return h.HistoryStorage.ListGenerations(ctx, ownerID)
}

func (h *HistoryUsecase) GetGeneration(ctx context.Context, ownerID, generationID uuid.UUID) (model.Generation, error) {
	return h.HistoryStorage.GetGeneration(ctx, ownerID, generationID)
}

func (h *HistoryUsecase) ToggleFavorite(ctx context.Context, ownerID, generationID uuid.UUID) (model.Generation, error) {
	generation, err := h.HistoryStorage.GetGeneration(ctx, ownerID, generationID)
	if err != nil {
		return model.Generation{}, err
	}
	generation.IsFavorite = !generation.IsFavorite
	if err = h.HistoryStorage.SetFavorite(ctx, ownerID, generationID, generation.IsFavorite); err != nil {
		return model.Generation{}, fmt.Errorf("failed to set favorite: %w", err)
	}
	return generation, nil
}

func (h *HistoryUsecase) DeleteGeneration(ctx context.Context, ownerID, generationID uuid.UUID) error {
	return h.HistoryStorage.DeleteGeneration(ctx, ownerID, generationID)
}

func (h *HistoryUsecase) ClearHistory(ctx context.Context, ownerID uuid.UUID) error {
	return h.HistoryStorage.ClearGenerations(ctx, ownerID)
}
