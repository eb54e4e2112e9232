package key_value

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/iamvkosarev/replyme/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStorage_TelegramUser(t *testing.T) {
	ctx := context.Background()
	rdb, _ := newTestRedis(t)
	storage := NewUserStorage(rdb)

	_, err := storage.GetUserIDForTelegramUser(ctx, 42)
	assert.ErrorIs(t, err, model.ErrTelegramUserDoesNotExist)

	userID, err := storage.CreateNewTelegramUser(ctx, 42)
	require.NoError(t, err)

	_, err = storage.CreateNewTelegramUser(ctx, 42)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	gotID, err := storage.GetUserIDForTelegramUser(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)

	user, err := storage.GetUserInfo(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, model.User{
		UserID:     userID,
		TelegramID: 42,
		Tone:       model.ToneMixed,
		Mode:       model.ModeStandard,
	}, user)

	require.NoError(t, storage.UpdateUserPreferences(ctx, userID, model.ToneFlirty, model.ModeUnfiltered))
	user, err = storage.GetUserInfo(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, model.ToneFlirty, user.Tone)
	assert.Equal(t, model.ModeUnfiltered, user.Mode)

	err = storage.UpdateUserPreferences(ctx, uuid.New(), model.ToneFlirty, model.ModeStandard)
	assert.ErrorIs(t, err, model.ErrUserDoesNotExist)
}

func TestUserStorage_Profile(t *testing.T) {
	ctx := context.Background()
	rdb, _ := newTestRedis(t)
	storage := NewUserStorage(rdb)
	userID := uuid.New()

	_, err := storage.GetProfile(ctx, userID)
	assert.ErrorIs(t, err, model.ErrProfileNotFound)

	createdAt := time.Date(2025, 1, 2, 3, 4, 5, 6, time.UTC)
	profile := model.Profile{
		UserID:    userID,
		Email:     "ada@example.com",
		Name:      "Ada",
		Age:       36,
		CreatedAt: createdAt,
		UpdatedAt: createdAt.Add(time.Hour),
	}
	require.NoError(t, storage.SetProfile(ctx, profile))

	got, err := storage.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestUserStorage_Settings(t *testing.T) {
	ctx := context.Background()
	rdb, _ := newTestRedis(t)
	storage := NewUserStorage(rdb)
	userID := uuid.New()

	_, err := storage.GetSettings(ctx, userID)
	assert.ErrorIs(t, err, model.ErrSettingsNotFound)

	settings := model.Settings{Notifications: false, EmailNotifications: true, PushNotifications: true}
	require.NoError(t, storage.SetSettings(ctx, userID, settings))

	got, err := storage.GetSettings(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, settings, got)
}
