package model

import (
	"time"

	"github.com/google/uuid"
)

// User is a Telegram user of the bot front-end. Tone and Mode are the
// generation preferences picked with /tone and /mode.
type User struct {
	UserID     uuid.UUID
	TelegramID int64
	Tone       Tone
	Mode       Mode
}

type Profile struct {
	UserID    uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Settings struct {
	Notifications      bool `json:"notifications"`
	EmailNotifications bool `json:"email_notifications"`
	PushNotifications  bool `json:"push_notifications"`
}

func DefaultSettings() Settings {
	return Settings{
		Notifications:      true,
		EmailNotifications: false,
		PushNotifications:  false,
	}
}
