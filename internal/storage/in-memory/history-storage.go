package in_memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/iamvkosarev/replyme/internal/model"
)

// HistoryStorage keeps generations per owner, newest first.
type HistoryStorage struct {
	mu          sync.RWMutex
	generations map[uuid.UUID][]model.Generation
	limit       int
}

// NewHistoryStorage keeps at most limit entries per owner; limit <= 0 means unbounded.
func NewHistoryStorage(limit int) *HistoryStorage {
	return &HistoryStorage{
		generations: make(map[uuid.UUID][]model.Generation),
		limit:       limit,
	}
}

func (h *HistoryStorage) AddGeneration(_ context.Context, generation model.Generation) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	owned := h.generations[generation.OwnerID]
	owned = append([]model.Generation{generation}, owned...)
	if h.limit > 0 && len(owned) > h.limit {
		owned = owned[:h.limit]
	}
	h.generations[generation.OwnerID] = owned
	return nil
}

func (h *HistoryStorage) ListGenerations(_ context.Context, ownerID uuid.UUID) ([]model.Generation, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	owned := h.generations[ownerID]
	generations := make([]model.Generation, len(owned))
	copy(generations, owned)
	return generations, nil
}

func (h *HistoryStorage) CountGenerations(_ context.Context, ownerID uuid.UUID) (int, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.generations[ownerID]), nil
}

func (h *HistoryStorage) GetGeneration(_ context.Context, ownerID, generationID uuid.UUID) (model.Generation, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	i := h.indexOf(ownerID, generationID)
	if i < 0 {
		return model.Generation{}, model.ErrGenerationNotFound
	}
	return h.generations[ownerID][i], nil
}

func (h *HistoryStorage) SetFavorite(_ context.Context, ownerID, generationID uuid.UUID, favorite bool) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	i := h.indexOf(ownerID, generationID)
	if i < 0 {
		return model.ErrGenerationNotFound
	}
	h.generations[ownerID][i].IsFavorite = favorite
	return nil
}

func (h *HistoryStorage) DeleteGeneration(_ context.Context, ownerID, generationID uuid.UUID) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	i := h.indexOf(ownerID, generationID)
	if i < 0 {
		return model.ErrGenerationNotFound
	}
	owned := h.generations[ownerID]
	h.generations[ownerID] = append(owned[:i:i], owned[i+1:]...)
	return nil
}

func (h *HistoryStorage) ClearGenerations(_ context.Context, ownerID uuid.UUID) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.generations, ownerID)
	return nil
}

func (h *HistoryStorage) indexOf(ownerID, generationID uuid.UUID) int {
	for i, generation := range h.generations[ownerID] {
		if generation.ID == generationID {
			return i
		}
	}
	return -1
}
