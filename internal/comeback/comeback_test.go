package comeback

import (
	"fmt"
	"strings"
	"testing"

	"github.com/iamvkosarev/replyme/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAppropriate(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{text: "I will kill him", want: false},
		{text: "let's grab coffee", want: true},
		{text: "that's a THREAT", want: false},
		{text: "send me something NSFW", want: false},
		{text: "skillful move", want: true},
		{text: "", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAppropriate(tt.text))
		})
	}
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	first := BuildPrompt("hey", model.ToneSavage, model.ModeStandard)
	second := BuildPrompt("hey", model.ToneSavage, model.ModeStandard)
	assert.Equal(t, first, second)
}

func TestBuildPromptContents(t *testing.T) {
	prompt := BuildPrompt(`you're "so" boring`, model.ToneSavage, model.ModeStandard)

	assert.Contains(t, prompt, `Message received: "you're "so" boring"`)
	assert.Contains(t, prompt, model.ToneSavage.Info().Phrase)
	assert.Contains(t, prompt, "SAVAGE MODE")
	assert.Contains(t, prompt, `"replies"`)
	assert.Equal(t, model.RepliesCount, strings.Count(prompt, `"tone": "savage"`))
}

func TestBuildPromptModeChangesInstructions(t *testing.T) {
	standard := BuildPrompt("hey", model.ToneWitty, model.ModeStandard)
	unfiltered := BuildPrompt("hey", model.ToneWitty, model.ModeUnfiltered)

	assert.NotEqual(t, standard, unfiltered)
	assert.Contains(t, unfiltered, "UNFILTERED - MAXIMUM")
	assert.NotContains(t, standard, "UNFILTERED - MAXIMUM")
}

func TestBuildPromptEmphasisOnlyForIntenseTones(t *testing.T) {
	assert.Contains(t, BuildPrompt("hey", model.ToneUnhinged, model.ModeStandard), "UNHINGED MODE")
	assert.Contains(t, BuildPrompt("hey", model.ToneFlirty, model.ModeStandard), "FLIRTY MODE")
	assert.Contains(t, BuildPrompt("hey", model.ToneSarcastic, model.ModeStandard), "SARCASTIC MODE")
	assert.NotContains(t, BuildPrompt("hey", model.ToneCasual, model.ModeStandard), " MODE:")
}

func TestBuildPromptUnknownToneUsesMixed(t *testing.T) {
	assert.Equal(
		t,
		BuildPrompt("hey", model.ToneMixed, model.ModeStandard),
		BuildPrompt("hey", model.Tone("spicy"), model.ModeStandard),
	)
}

func TestFallbackForEveryTone(t *testing.T) {
	for _, tone := range model.Tones {
		t.Run(string(tone), func(t *testing.T) {
			replies := FallbackFor(tone)
			texts := make(map[string]struct{})
			for _, reply := range replies {
				assert.Equal(t, tone, reply.Tone)
				assert.NotEmpty(t, reply.Text)
				assert.NotEmpty(t, reply.Explanation)
				texts[reply.Text] = struct{}{}
			}
			assert.Len(t, texts, model.RepliesCount, "fallback replies must be distinct")
		})
	}
}

func TestFallbackForUnknownToneUsesMixed(t *testing.T) {
	replies := FallbackFor(model.Tone("legacy"))
	assert.Equal(t, FallbackFor(model.ToneMixed), replies)
	for _, reply := range replies {
		assert.Equal(t, model.ToneMixed, reply.Tone)
	}
}

func validPayload(tone string) string {
	entries := make([]string, 0, model.RepliesCount)
	for i := 1; i <= model.RepliesCount; i++ {
		entries = append(
			entries,
			fmt.Sprintf(`{"tone":%q,"text":"reply %d","explanation":"why %d"}`, tone, i, i),
		)
	}
	return `{"replies":[` + strings.Join(entries, ",") + `]}`
}

func TestParseRepliesWithLeadingProse(t *testing.T) {
	raw := "Sure! " + validPayload("savage") + "\nHope that helps {:"

	replies, err := ParseReplies(raw, model.ToneSavage)
	require.NoError(t, err)
	for i, reply := range replies {
		assert.Equal(t, fmt.Sprintf("reply %d", i+1), reply.Text)
		assert.Equal(t, fmt.Sprintf("why %d", i+1), reply.Explanation)
		assert.Equal(t, model.ToneSavage, reply.Tone)
	}
}

func TestParseRepliesBracesInsideStrings(t *testing.T) {
	raw := `{"replies":[
		{"tone":"funny","text":"you {really} said that }","explanation":"quote \" and brace {"},
		{"tone":"funny","text":"b","explanation":"b"},
		{"tone":"funny","text":"c","explanation":"c"}
	]}`

	replies, err := ParseReplies(raw, model.ToneFunny)
	require.NoError(t, err)
	assert.Equal(t, "you {really} said that }", replies[0].Text)
	assert.Equal(t, `quote " and brace {`, replies[0].Explanation)
}

func TestParseRepliesSkipsNonMatchingObjects(t *testing.T) {
	raw := `Here is the schema {"type":"object"} and the answer: ` + validPayload("witty")

	replies, err := ParseReplies(raw, model.ToneWitty)
	require.NoError(t, err)
	assert.Equal(t, "reply 1", replies[0].Text)
}

func TestParseRepliesToneLeniency(t *testing.T) {
	raw := `{"replies":[
		{"tone":"funny","text":"a","explanation":"a"},
		{"tone":"whatever","text":"b","explanation":"b"},
		{"text":"c","explanation":"c"},
		{"tone":"savage","text":"d","explanation":"d"}
	]}`

	replies, err := ParseReplies(raw, model.ToneSavage)
	require.NoError(t, err)
	assert.Equal(t, model.ToneFunny, replies[0].Tone)
	assert.Equal(t, model.ToneSavage, replies[1].Tone)
	assert.Equal(t, model.ToneSavage, replies[2].Tone)
	assert.Equal(t, "c", replies[2].Text)
}

func TestParseRepliesFormatErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "no json", raw: "I can't help with that."},
		{name: "malformed", raw: `{"replies": [ {"text": }`},
		{name: "broken object", raw: `{"replies": nope}`},
		{name: "missing replies", raw: `{"answers": []}`},
		{name: "too few", raw: `{"replies":[{"tone":"bold","text":"a","explanation":"a"}]}`},
		{
			name: "empty text",
			raw: `{"replies":[{"text":"a"},{"text":"  "},{"text":"c"}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReplies(tt.raw, model.ToneBold)
			var formatErr *model.FormatError
			require.ErrorAs(t, err, &formatErr)
		})
	}
}
