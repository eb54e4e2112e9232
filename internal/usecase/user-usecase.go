package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/iamvkosarev/replyme/internal/model"
)

type UserStorage interface {
	GetUserIDForTelegramUser(ctx context.Context, userTelegramID int64) (uuid.UUID, error)
	CreateNewTelegramUser(ctx context.Context, userTelegramID int64) (uuid.UUID, error)
	GetUserInfo(ctx context.Context, userID uuid.UUID) (model.User, error)
	UpdateUserPreferences(ctx context.Context, userID uuid.UUID, tone model.Tone, mode model.Mode) error
}

type ProfileStorage interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (model.Profile, error)
	SetProfile(ctx context.Context, profile model.Profile) error
	GetSettings(ctx context.Context, userID uuid.UUID) (model.Settings, error)
	SetSettings(ctx context.Context, userID uuid.UUID, settings model.Settings) error
}

type UserUsecaseDeps struct {
	UserStorage    UserStorage
	ProfileStorage ProfileStorage
}

type UserUsecase struct {
	UserUsecaseDeps
	now func() time.Time
}

func NewUserUsecase(deps UserUsecaseDeps) *UserUsecase {
	return &UserUsecase{
		UserUsecaseDeps: deps,
		now:             time.Now,
	}
}

// GetUserInfoForTelegramUser returns the user behind a Telegram ID, creating
// it with default preferences on first contact.
func (u *UserUsecase) GetUserInfoForTelegramUser(ctx context.Context, userTelegramID int64) (model.User, error) {
	userID, err := u.UserStorage.GetUserIDForTelegramUser(ctx, userTelegramID)
	if err != nil {
		if !errors.Is(err, model.ErrTelegramUserDoesNotExist) {
			return model.User{}, fmt.Errorf("failed to get telegram user: %w", err)
		}
		userID, err = u.UserStorage.CreateNewTelegramUser(ctx, userTelegramID)
		if err != nil {
			return model.User{}, fmt.Errorf("failed to create telegram user: %w", err)
		}
	}
	return u.UserStorage.GetUserInfo(ctx, userID)
}

func (u *UserUsecase) UpdateUserTone(ctx context.Context, user model.User, tone model.Tone) error {
	return u.UserStorage.UpdateUserPreferences(ctx, user.UserID, tone, user.Mode)
}

func (u *UserUsecase) UpdateUserMode(ctx context.Context, user model.User, mode model.Mode) error {
	return u.UserStorage.UpdateUserPreferences(ctx, user.UserID, user.Tone, mode)
}

func (u *UserUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	return u.ProfileStorage.GetProfile(ctx, userID)
}

type ProfileInput struct {
	Email   string
	Name    string
	Age     int
	Address string
}

// SaveProfile creates or replaces the profile, keeping the first creation time.
func (u *UserUsecase) SaveProfile(ctx context.Context, userID uuid.UUID, input ProfileInput) (model.Profile, error) {
	now := u.now().UTC()
	createdAt := now
	existing, err := u.ProfileStorage.GetProfile(ctx, userID)
	switch {
	case err == nil:
		createdAt = existing.CreatedAt
	case !errors.Is(err, model.ErrProfileNotFound):
		return model.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	profile := model.Profile{
		UserID:    userID,
		Email:     input.Email,
		Name:      input.Name,
		Age:       input.Age,
		Address:   input.Address,
		CreatedAt: createdAt,
		UpdatedAt: now,
	}
	if err = u.ProfileStorage.SetProfile(ctx, profile); err != nil {
		return model.Profile{}, fmt.Errorf("failed to set profile: %w", err)
	}
	return profile, nil
}

// GetSettings returns stored settings or the defaults when none were saved.
func (u *UserUsecase) GetSettings(ctx context.Context, userID uuid.UUID) (model.Settings, error) {
	settings, err := u.ProfileStorage.GetSettings(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrSettingsNotFound) {
			return model.DefaultSettings(), nil
		}
		return model.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

func (u *UserUsecase) SaveSettings(ctx context.Context, userID uuid.UUID, settings model.Settings) error {
	return u.ProfileStorage.SetSettings(ctx, userID, settings)
}
