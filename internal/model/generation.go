package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Mode string

const (
	ModeStandard   = Mode("standard")
	ModeUnfiltered = Mode("unfiltered")
)

// ParseMode treats anything but "unfiltered" as standard.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), string(ModeUnfiltered)) {
		return ModeUnfiltered
	}
	return ModeStandard
}

// RepliesCount is the fixed size of every GenerationResult.
const RepliesCount = 3

type Reply struct {
	Text        string `json:"text"`
	Explanation string `json:"explanation"`
	Tone        Tone   `json:"tone"`
}

type ReplySource string

const (
	ReplySourceLive     = ReplySource("live")
	ReplySourceFallback = ReplySource("fallback")
)

type GenerationResult struct {
	Replies [RepliesCount]Reply `json:"replies"`
	Source  ReplySource         `json:"source"`
}

// Generation is a history entry.
type Generation struct {
	ID         uuid.UUID           `json:"id"`
	OwnerID    uuid.UUID           `json:"-"`
	Timestamp  time.Time           `json:"timestamp"`
	Input      string              `json:"input"`
	Tone       Tone                `json:"tone"`
	Mode       Mode                `json:"mode"`
	Replies    [RepliesCount]Reply `json:"replies"`
	Source     ReplySource         `json:"source"`
	IsFavorite bool                `json:"is_favorite"`
}

// Owner identifies whose history a generation belongs to. Anonymous owners
// are devices without a signed-in user.
type Owner struct {
	ID        uuid.UUID
	Anonymous bool
}
