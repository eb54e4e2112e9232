package in_memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/iamvkosarev/replyme/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryStorage(t *testing.T) {
	ctx := context.Background()
	storage := NewHistoryStorage(2)
	ownerID := uuid.New()

	var ids []uuid.UUID
	for _, input := range []string{"first", "second", "third"} {
		generation := model.Generation{ID: uuid.New(), OwnerID: ownerID, Input: input}
		ids = append(ids, generation.ID)
		require.NoError(t, storage.AddGeneration(ctx, generation))
	}

	generations, err := storage.ListGenerations(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, generations, 2)
	assert.Equal(t, "third", generations[0].Input)
	assert.Equal(t, "second", generations[1].Input)

	_, err = storage.GetGeneration(ctx, ownerID, ids[0])
	assert.ErrorIs(t, err, model.ErrGenerationNotFound)
	_, err = storage.GetGeneration(ctx, uuid.New(), ids[2])
	assert.ErrorIs(t, err, model.ErrGenerationNotFound)

	require.NoError(t, storage.SetFavorite(ctx, ownerID, ids[2], true))
	generation, err := storage.GetGeneration(ctx, ownerID, ids[2])
	require.NoError(t, err)
	assert.True(t, generation.IsFavorite)

	generations[0].Input = "mutated"
	generation, err = storage.GetGeneration(ctx, ownerID, ids[2])
	require.NoError(t, err)
	assert.Equal(t, "third", generation.Input)

	require.NoError(t, storage.DeleteGeneration(ctx, ownerID, ids[1]))
	assert.ErrorIs(t, storage.DeleteGeneration(ctx, ownerID, ids[1]), model.ErrGenerationNotFound)
	count, err := storage.CountGenerations(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, storage.ClearGenerations(ctx, ownerID))
	count, err = storage.CountGenerations(ctx, ownerID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUserStorage(t *testing.T) {
	ctx := context.Background()
	storage := NewUserStorage()

	_, err := storage.GetUserIDForTelegramUser(ctx, 7)
	assert.ErrorIs(t, err, model.ErrTelegramUserDoesNotExist)

	userID, err := storage.CreateNewTelegramUser(ctx, 7)
	require.NoError(t, err)
	_, err = storage.CreateNewTelegramUser(ctx, 7)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	require.NoError(t, storage.UpdateUserPreferences(ctx, userID, model.ToneWitty, model.ModeUnfiltered))
	user, err := storage.GetUserInfo(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, model.ToneWitty, user.Tone)
	assert.Equal(t, model.ModeUnfiltered, user.Mode)

	_, err = storage.GetProfile(ctx, userID)
	assert.ErrorIs(t, err, model.ErrProfileNotFound)
	require.NoError(t, storage.SetProfile(ctx, model.Profile{UserID: userID, Name: "Ada"}))
	profile, err := storage.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.Name)

	_, err = storage.GetSettings(ctx, userID)
	assert.ErrorIs(t, err, model.ErrSettingsNotFound)
	require.NoError(t, storage.SetSettings(ctx, userID, model.Settings{PushNotifications: true}))
	settings, err := storage.GetSettings(ctx, userID)
	require.NoError(t, err)
	assert.True(t, settings.PushNotifications)
}
