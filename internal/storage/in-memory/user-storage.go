package in_memory

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/iamvkosarev/replyme/internal/model"
)

var (
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserStorage holds Telegram users, profiles and settings.
type UserStorage struct {
	mu               sync.RWMutex
	users            map[uuid.UUID]*model.User
	telegramUsersIDs map[int64]uuid.UUID
	profiles         map[uuid.UUID]model.Profile
	settings         map[uuid.UUID]model.Settings
}

func NewUserStorage() *UserStorage {
	return &UserStorage{
		users:            make(map[uuid.UUID]*model.User),
		telegramUsersIDs: make(map[int64]uuid.UUID),
		profiles:         make(map[uuid.UUID]model.Profile),
		settings:         make(map[uuid.UUID]model.Settings),
	}
}

func (u *UserStorage) CreateNewTelegramUser(_ context.Context, userTelegramID int64) (uuid.UUID, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, ok := u.telegramUsersIDs[userTelegramID]; ok {
		return uuid.Nil, ErrUserAlreadyExists
	}
	userID := uuid.New()
	u.telegramUsersIDs[userTelegramID] = userID
	u.users[userID] = &model.User{
		UserID:     userID,
		TelegramID: userTelegramID,
		Tone:       model.ToneMixed,
		Mode:       model.ModeStandard,
	}
	return userID, nil
}

func (u *UserStorage) UpdateUserPreferences(
	_ context.Context, userID uuid.UUID, tone model.Tone, mode model.Mode,
) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	user, ok := u.users[userID]
	if !ok {
		return model.ErrUserDoesNotExist
	}
	user.Tone = tone
	user.Mode = mode
	return nil
}

func (u *UserStorage) GetUserInfo(_ context.Context, userID uuid.UUID) (model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	user, ok := u.users[userID]
	if !ok {
		return model.User{}, model.ErrUserDoesNotExist
	}
	return *user, nil
}

func (u *UserStorage) GetUserIDForTelegramUser(_ context.Context, userTelegramID int64) (uuid.UUID, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	userID, ok := u.telegramUsersIDs[userTelegramID]
	if !ok {
		return uuid.Nil, model.ErrTelegramUserDoesNotExist
	}
	return userID, nil
}

func (u *UserStorage) GetProfile(_ context.Context, userID uuid.UUID) (model.Profile, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	profile, ok := u.profiles[userID]
	if !ok {
		return model.Profile{}, model.ErrProfileNotFound
	}
	return profile, nil
}

func (u *UserStorage) SetProfile(_ context.Context, profile model.Profile) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.profiles[profile.UserID] = profile
	return nil
}

func (u *UserStorage) GetSettings(_ context.Context, userID uuid.UUID) (model.Settings, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	settings, ok := u.settings[userID]
	if !ok {
		return model.Settings{}, model.ErrSettingsNotFound
	}
	return settings, nil
}

func (u *UserStorage) SetSettings(_ context.Context, userID uuid.UUID, settings model.Settings) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.settings[userID] = settings
	return nil
}
