package usecase

import (
	"strings"
	"testing"

	"github.com/iamvkosarev/replyme/internal/model"
	"github.com/iamvkosarev/replyme/pkg/local"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToneKeyboardRows(t *testing.T) {
	rows := toneKeyboardRows()
	require.Len(t, rows, 4)

	var seen []model.Tone
	for _, row := range rows {
		assert.LessOrEqual(t, len(row), maxButtonsInRow)
		for _, button := range row {
			require.NotNil(t, button.CallbackData)
			tone, ok := parseToneCallback(*button.CallbackData)
			require.True(t, ok)
			assert.Contains(t, button.Text, tone.Info().Label)
			seen = append(seen, tone)
		}
	}
	assert.Equal(t, model.Tones, seen)
}

func TestParseToneCallback(t *testing.T) {
	tone, ok := parseToneCallback("tone:flirty")
	assert.True(t, ok)
	assert.Equal(t, model.ToneFlirty, tone)

	_, ok = parseToneCallback("tone:grumpy")
	assert.False(t, ok)

	_, ok = parseToneCallback("flirty")
	assert.False(t, ok)
}

func TestToggleMode(t *testing.T) {
	assert.Equal(t, model.ModeUnfiltered, toggleMode(model.ModeStandard))
	assert.Equal(t, model.ModeStandard, toggleMode(model.ModeUnfiltered))
}

func TestFormatReplies(t *testing.T) {
	generation := model.Generation{
		Replies: [model.RepliesCount]model.Reply{
			{Text: "one", Explanation: "why one", Tone: model.ToneSavage},
			{Text: "two", Tone: model.ToneSavage},
			{Text: "three", Explanation: "why three", Tone: model.ToneWitty},
		},
		Source: model.ReplySourceLive,
	}

	text := formatReplies(generation, local.Eng)
	assert.True(t, strings.HasPrefix(text, "1. one\n"))
	assert.Contains(t, text, "2. two\n\n3. three")
	assert.Contains(t, text, "why three")
	assert.NotContains(t, text, MessageFallbackNotice.Text(local.Eng))

	generation.Source = model.ReplySourceFallback
	text = formatReplies(generation, local.Rus)
	assert.True(t, strings.HasSuffix(text, MessageFallbackNotice.Text(local.Rus)))
}

func TestFormatHistory(t *testing.T) {
	assert.Equal(t, MessageHistoryEmpty.Text(local.Eng), formatHistory(nil, local.Eng))

	generations := make([]model.Generation, 7)
	for i := range generations {
		generations[i] = model.Generation{Input: "input", Tone: model.ToneBold}
		generations[i].Replies[0].Text = "reply"
	}
	generations[0].IsFavorite = true

	text := formatHistory(generations, local.Eng)
	assert.True(t, strings.HasPrefix(text, "Your last 5 comebacks:"))
	assert.Contains(t, text, "5) ")
	assert.NotContains(t, text, "6) ")
	assert.Equal(t, 1, strings.Count(text, "★"))
}
