package key_value

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/iamvkosarev/replyme/internal/model"
	"github.com/redis/go-redis/v9"
)

type replyInternal struct {
	Text        string `json:"text"`
	Explanation string `json:"explanation"`
	Tone        string `json:"tone"`
}

type generationInternal struct {
	GenerationID string          `json:"generation_id"`
	OwnerID      string          `json:"owner_id"`
	Timestamp    int64           `json:"timestamp"`
	Input        string          `json:"input"`
	Tone         string          `json:"tone"`
	Mode         string          `json:"mode"`
	Replies      []replyInternal `json:"replies"`
	Source       string          `json:"source"`
	IsFavorite   bool            `json:"is_favorite"`
}

// HistoryStorage keeps a list of generation ids per owner (newest first) and
// one JSON document per generation.
type HistoryStorage struct {
	rdb   *redis.Client
	limit int
}

func NewHistoryStorage(rdb *redis.Client, limit int) *HistoryStorage {
	return &HistoryStorage{
		rdb:   rdb,
		limit: limit,
	}
}

func (h *HistoryStorage) AddGeneration(ctx context.Context, generation model.Generation) error {
	if err := h.setGenerationInt(ctx, toGenerationInternal(generation)); err != nil {
		return err
	}
	historyKey := getHistoryKey(generation.OwnerID)
	if err := h.rdb.LPush(ctx, historyKey, generation.ID.String()).Err(); err != nil {
		return fmt.Errorf("failed to push generation %s: %w", generation.ID, err)
	}
	if h.limit <= 0 {
		return nil
	}

	overflow, err := h.rdb.LRange(ctx, historyKey, int64(h.limit), -1).Result()
	if err != nil {
		return fmt.Errorf("failed to get overflow of %s: %w", historyKey, err)
	}
	if len(overflow) == 0 {
		return nil
	}
	keys := make([]string, 0, len(overflow))
	for _, generationID := range overflow {
		keys = append(keys, getGenerationKey(generationID))
	}
	_, err = h.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, keys...)
		pipe.LTrim(ctx, historyKey, 0, int64(h.limit-1))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to trim %s: %w", historyKey, err)
	}
	return nil
}

func (h *HistoryStorage) ListGenerations(ctx context.Context, ownerID uuid.UUID) ([]model.Generation, error) {
	generationIDs, err := h.rdb.LRange(ctx, getHistoryKey(ownerID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get history ids %s: %w", ownerID, err)
	}
	generations := make([]model.Generation, 0, len(generationIDs))
	if len(generationIDs) == 0 {
		return generations, nil
	}

	keys := make([]string, 0, len(generationIDs))
	for _, generationID := range generationIDs {
		keys = append(keys, getGenerationKey(generationID))
	}
	values, err := h.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get generations %s: %w", ownerID, err)
	}
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		var generationInt generationInternal
		if err = json.Unmarshal([]byte(raw), &generationInt); err != nil {
			return nil, fmt.Errorf("failed to unmarshal generation %s: %w", generationIDs[i], err)
		}
		generation, err := fromGenerationInternal(generationInt)
		if err != nil {
			return nil, err
		}
		generations = append(generations, generation)
	}
	return generations, nil
}

func (h *HistoryStorage) CountGenerations(ctx context.Context, ownerID uuid.UUID) (int, error) {
	count, err := h.rdb.LLen(ctx, getHistoryKey(ownerID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count history %s: %w", ownerID, err)
	}
	return int(count), nil
}

func (h *HistoryStorage) GetGeneration(ctx context.Context, ownerID, generationID uuid.UUID) (model.Generation, error) {
	generationInt, err := h.getOwnedGenerationInt(ctx, ownerID, generationID)
	if err != nil {
		return model.Generation{}, err
	}
	return fromGenerationInternal(generationInt)
}

func (h *HistoryStorage) SetFavorite(ctx context.Context, ownerID, generationID uuid.UUID, favorite bool) error {
	generationInt, err := h.getOwnedGenerationInt(ctx, ownerID, generationID)
	if err != nil {
		return err
	}
	generationInt.IsFavorite = favorite
	return h.setGenerationInt(ctx, generationInt)
}

func (h *HistoryStorage) DeleteGeneration(ctx context.Context, ownerID, generationID uuid.UUID) error {
	if _, err := h.getOwnedGenerationInt(ctx, ownerID, generationID); err != nil {
		return err
	}
	_, err := h.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LRem(ctx, getHistoryKey(ownerID), 0, generationID.String())
		pipe.Del(ctx, getGenerationKey(generationID.String()))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete generation %s: %w", generationID, err)
	}
	return nil
}

func (h *HistoryStorage) ClearGenerations(ctx context.Context, ownerID uuid.UUID) error {
	historyKey := getHistoryKey(ownerID)
	generationIDs, err := h.rdb.LRange(ctx, historyKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to get history ids %s: %w", ownerID, err)
	}
	keys := make([]string, 0, len(generationIDs)+1)
	keys = append(keys, historyKey)
	for _, generationID := range generationIDs {
		keys = append(keys, getGenerationKey(generationID))
	}
	if err = h.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear history %s: %w", ownerID, err)
	}
	return nil
}

func (h *HistoryStorage) getOwnedGenerationInt(
	ctx context.Context, ownerID, generationID uuid.UUID,
) (generationInternal, error) {
	generationKey := getGenerationKey(generationID.String())
	raw, err := h.rdb.Get(ctx, generationKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return generationInternal{}, model.ErrGenerationNotFound
		}
		return generationInternal{}, fmt.Errorf("failed to get generation %s: %w", generationID, err)
	}
	var generationInt generationInternal
	if err = json.Unmarshal([]byte(raw), &generationInt); err != nil {
		return generationInternal{}, fmt.Errorf("failed to unmarshal generation %s: %w", generationID, err)
	}
	if generationInt.OwnerID != ownerID.String() {
		return generationInternal{}, model.ErrGenerationNotFound
	}
	return generationInt, nil
}

func (h *HistoryStorage) setGenerationInt(ctx context.Context, generationInt generationInternal) error {
	generationJSON, err := json.Marshal(generationInt)
	if err != nil {
		return fmt.Errorf("failed to marshal internal generation: %w", err)
	}
	generationKey := getGenerationKey(generationInt.GenerationID)
	if err = h.rdb.Set(ctx, generationKey, generationJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save generation %s: %w", generationKey, err)
	}
	return nil
}

func toGenerationInternal(generation model.Generation) generationInternal {
	replies := make([]replyInternal, 0, len(generation.Replies))
	for _, reply := range generation.Replies {
		replies = append(replies, replyInternal{
			Text:        reply.Text,
			Explanation: reply.Explanation,
			Tone:        string(reply.Tone),
		})
	}
	return generationInternal{
		GenerationID: generation.ID.String(),
		OwnerID:      generation.OwnerID.String(),
		Timestamp:    generation.Timestamp.UnixMilli(),
		Input:        generation.Input,
		Tone:         string(generation.Tone),
		Mode:         string(generation.Mode),
		Replies:      replies,
		Source:       string(generation.Source),
		IsFavorite:   generation.IsFavorite,
	}
}

// fromGenerationInternal maps tones written by other versions onto the known
// set, so an entry with a retired tone reads back as mixed.
func fromGenerationInternal(generationInt generationInternal) (model.Generation, error) {
	generationID, err := uuid.Parse(generationInt.GenerationID)
	if err != nil {
		return model.Generation{}, fmt.Errorf("failed to parse generationID %s: %w", generationInt.GenerationID, err)
	}
	ownerID, err := uuid.Parse(generationInt.OwnerID)
	if err != nil {
		return model.Generation{}, fmt.Errorf("failed to parse ownerID %s: %w", generationInt.OwnerID, err)
	}
	tone, _ := model.ParseTone(generationInt.Tone)

	var replies [model.RepliesCount]model.Reply
	for i := range replies {
		if i >= len(generationInt.Replies) {
			break
		}
		replyTone, _ := model.ParseTone(generationInt.Replies[i].Tone)
		replies[i] = model.Reply{
			Text:        generationInt.Replies[i].Text,
			Explanation: generationInt.Replies[i].Explanation,
			Tone:        replyTone,
		}
	}

	return model.Generation{
		ID:         generationID,
		OwnerID:    ownerID,
		Timestamp:  time.UnixMilli(generationInt.Timestamp).UTC(),
		Input:      generationInt.Input,
		Tone:       tone,
		Mode:       model.ParseMode(generationInt.Mode),
		Replies:    replies,
		Source:     model.ReplySource(generationInt.Source),
		IsFavorite: generationInt.IsFavorite,
	}, nil
}

func getGenerationKey(generationID string) string {
	return fmt.Sprintf("generation_%s", generationID)
}

func getHistoryKey(ownerID uuid.UUID) string {
	return fmt.Sprintf("history_%s", ownerID.String())
}
