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

var (
	ErrUserAlreadyExists = errors.New("user already exists")
)

type userInternal struct {
	UserID     string `json:"user_id"`
	TelegramID int64  `json:"telegram_id"`
	Tone       string `json:"tone"`
	Mode       string `json:"mode"`
}

type profileInternal struct {
	UserID    string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Address   string `json:"address,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type settingsInternal struct {
	Notifications      bool `json:"notifications"`
	EmailNotifications bool `json:"emailNotifications"`
	PushNotifications  bool `json:"pushNotifications"`
}

type UserStorage struct {
	rdb *redis.Client
}

func NewUserStorage(rdb *redis.Client) *UserStorage {
	return &UserStorage{
		rdb: rdb,
	}
}

func (u *UserStorage) CreateNewTelegramUser(ctx context.Context, userTelegramID int64) (uuid.UUID, error) {
	userTelegramIDKey := getUserTelegramIDKey(userTelegramID)
	userID := uuid.New()
	created, err := u.rdb.SetNX(ctx, userTelegramIDKey, userID.String(), 0).Result()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save user %s: %w", userTelegramIDKey, err)
	}
	if !created {
		return uuid.Nil, ErrUserAlreadyExists
	}

	user := userInternal{
		UserID:     userID.String(),
		TelegramID: userTelegramID,
		Tone:       string(model.ToneMixed),
		Mode:       string(model.ModeStandard),
	}
	if err = u.setUser(ctx, userID, user); err != nil {
		return uuid.Nil, fmt.Errorf("failed to set user: %w", err)
	}
	return userID, nil
}

func (u *UserStorage) UpdateUserPreferences(
	ctx context.Context, userID uuid.UUID, tone model.Tone, mode model.Mode,
) error {
	user, err := u.getUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	user.Tone = string(tone)
	user.Mode = string(mode)
	if err = u.setUser(ctx, userID, user); err != nil {
		return fmt.Errorf("failed to set user: %w", err)
	}
	return nil
}

func (u *UserStorage) GetUserInfo(ctx context.Context, userID uuid.UUID) (model.User, error) {
	userInt, err := u.getUser(ctx, userID)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	tone, _ := model.ParseTone(userInt.Tone)
	return model.User{
		UserID:     userID,
		TelegramID: userInt.TelegramID,
		Tone:       tone,
		Mode:       model.ParseMode(userInt.Mode),
	}, nil
}

func (u *UserStorage) GetUserIDForTelegramUser(ctx context.Context, userTelegramID int64) (uuid.UUID, error) {
	userTelegramIDKey := getUserTelegramIDKey(userTelegramID)
	userIDStr, err := u.rdb.Get(ctx, userTelegramIDKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, model.ErrTelegramUserDoesNotExist
		}
		return uuid.Nil, fmt.Errorf("failed to get telegram user id %s: %w", userTelegramIDKey, err)
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse userID %s: %w", userIDStr, err)
	}
	return userID, nil
}

func (u *UserStorage) GetProfile(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	var profileInt profileInternal
	if err := u.getJSON(ctx, getProfileKey(userID), &profileInt); err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Profile{}, model.ErrProfileNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to get profile %s: %w", userID, err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, profileInt.CreatedAt)
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to parse created_at of %s: %w", userID, err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, profileInt.UpdatedAt)
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to parse updated_at of %s: %w", userID, err)
	}
	return model.Profile{
		UserID:    userID,
		Email:     profileInt.Email,
		Name:      profileInt.Name,
		Age:       profileInt.Age,
		Address:   profileInt.Address,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func (u *UserStorage) SetProfile(ctx context.Context, profile model.Profile) error {
	profileInt := profileInternal{
		UserID:    profile.UserID.String(),
		Email:     profile.Email,
		Name:      profile.Name,
		Age:       profile.Age,
		Address:   profile.Address,
		CreatedAt: profile.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt: profile.UpdatedAt.Format(time.RFC3339Nano),
	}
	if err := u.setJSON(ctx, getProfileKey(profile.UserID), profileInt); err != nil {
		return fmt.Errorf("failed to save profile %s: %w", profile.UserID, err)
	}
	return nil
}

func (u *UserStorage) GetSettings(ctx context.Context, userID uuid.UUID) (model.Settings, error) {
	var settingsInt settingsInternal
	if err := u.getJSON(ctx, getSettingsKey(userID), &settingsInt); err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Settings{}, model.ErrSettingsNotFound
		}
		return model.Settings{}, fmt.Errorf("failed to get settings %s: %w", userID, err)
	}
	return model.Settings{
		Notifications:      settingsInt.Notifications,
		EmailNotifications: settingsInt.EmailNotifications,
		PushNotifications:  settingsInt.PushNotifications,
	}, nil
}

func (u *UserStorage) SetSettings(ctx context.Context, userID uuid.UUID, settings model.Settings) error {
	settingsInt := settingsInternal{
		Notifications:      settings.Notifications,
		EmailNotifications: settings.EmailNotifications,
		PushNotifications:  settings.PushNotifications,
	}
	if err := u.setJSON(ctx, getSettingsKey(userID), settingsInt); err != nil {
		return fmt.Errorf("failed to save settings %s: %w", userID, err)
	}
	return nil
}

func (u *UserStorage) getUser(ctx context.Context, userID uuid.UUID) (userInternal, error) {
	var user userInternal
	if err := u.getJSON(ctx, getUserIDKey(userID), &user); err != nil {
		if errors.Is(err, redis.Nil) {
			return userInternal{}, model.ErrUserDoesNotExist
		}
		return userInternal{}, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return user, nil
}

func (u *UserStorage) setUser(ctx context.Context, userID uuid.UUID, userInt userInternal) error {
	if err := u.setJSON(ctx, getUserIDKey(userID), userInt); err != nil {
		return fmt.Errorf("failed to save user %s: %w", userID, err)
	}
	return nil
}

// getJSON returns redis.Nil unwrapped when the key is missing.
func (u *UserStorage) getJSON(ctx context.Context, key string, v any) error {
	raw, err := u.rdb.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	if err = json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return nil
}

func (u *UserStorage) setJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return u.rdb.Set(ctx, key, raw, 0).Err()
}

func getUserTelegramIDKey(id int64) string {
	return fmt.Sprintf("telegram_%d", id)
}

func getUserIDKey(id uuid.UUID) string {
	return fmt.Sprintf("user_%s", id.String())
}

func getProfileKey(id uuid.UUID) string {
	return fmt.Sprintf("profile:%s", id.String())
}

func getSettingsKey(id uuid.UUID) string {
	return fmt.Sprintf("settings:%s", id.String())
}
