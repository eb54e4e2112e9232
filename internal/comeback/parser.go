package comeback

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iamvkosarev/replyme/internal/model"
)

type replyInternal struct {
	Tone        string `json:"tone"`
	Text        string `json:"text"`
	Explanation string `json:"explanation"`
}

type repliesInternal struct {
	Replies []replyInternal `json:"replies"`
}

// ParseReplies extracts the replies payload from raw model output. The object
// may be surrounded by prose; candidates are tried in order of appearance and
// the first one carrying a valid replies list wins.
//
// Extra entries beyond RepliesCount are dropped; fewer is a FormatError. A
// known tone label other than expectedTone is kept as-is, an unknown or empty
// label becomes expectedTone.
func ParseReplies(raw string, expectedTone model.Tone) ([model.RepliesCount]model.Reply, error) {
	var replies [model.RepliesCount]model.Reply

	candidates := jsonObjects(raw)
	if len(candidates) == 0 {
		return replies, &model.FormatError{Reason: "no json object found"}
	}

	var lastErr error
	for _, candidate := range candidates {
		parsed, err := decodeReplies(candidate, expectedTone)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return replies, lastErr
}

func decodeReplies(candidate string, expectedTone model.Tone) ([model.RepliesCount]model.Reply, error) {
	var replies [model.RepliesCount]model.Reply

	var payload repliesInternal
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		return replies, &model.FormatError{Reason: "malformed json", Err: err}
	}
	if len(payload.Replies) < model.RepliesCount {
		return replies, &model.FormatError{
			Reason: fmt.Sprintf("expected %d replies, got %d", model.RepliesCount, len(payload.Replies)),
		}
	}

	for i := range replies {
		entry := payload.Replies[i]
		text := strings.TrimSpace(entry.Text)
		if text == "" {
			return replies, &model.FormatError{Reason: fmt.Sprintf("reply %d has no text", i+1)}
		}
		tone, ok := model.ParseTone(entry.Tone)
		if !ok {
			tone = expectedTone.Normalize()
		}
		replies[i] = model.Reply{
			Text:        text,
			Explanation: strings.TrimSpace(entry.Explanation),
			Tone:        tone,
		}
	}
	return replies, nil
}

// jsonObjects returns every top-level brace-balanced substring of s. Braces
// inside JSON strings are ignored.
func jsonObjects(s string) []string {
	objects := make([]string, 0)
	depth := 0
	start := -1
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				objects = append(objects, s[start:i+1])
				start = -1
			}
		}
	}
	return objects
}
