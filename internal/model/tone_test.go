package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTone(t *testing.T) {
	tests := []struct {
		in     string
		want   Tone
		wantOK bool
	}{
		{in: "savage", want: ToneSavage, wantOK: true},
		{in: " Flirty ", want: ToneFlirty, wantOK: true},
		{in: "MIXED", want: ToneMixed, wantOK: true},
		{in: "savvage", want: ToneMixed, wantOK: false},
		{in: "", want: ToneMixed, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseTone(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestToneInfoCoversEveryTone(t *testing.T) {
	seen := make(map[string]Tone)
	for _, tone := range Tones {
		info := tone.Info()
		assert.Equal(t, tone, info.ID)
		assert.NotEmpty(t, info.Label)
		assert.NotEmpty(t, info.Emoji)
		assert.NotEmpty(t, info.Phrase)
		if prev, ok := seen[info.Phrase]; ok {
			t.Errorf("tones %s and %s share a phrase", prev, tone)
		}
		seen[info.Phrase] = tone
	}
}

func TestUnknownToneUsesMixed(t *testing.T) {
	assert.Equal(t, ToneMixed.Info(), Tone("legacy").Info())
	assert.Equal(t, ToneMixed, Tone("legacy").Normalize())
	assert.Equal(t, ToneWitty, ToneWitty.Normalize())
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeUnfiltered, ParseMode("unfiltered"))
	assert.Equal(t, ModeUnfiltered, ParseMode("Unfiltered"))
	assert.Equal(t, ModeStandard, ParseMode("standard"))
	assert.Equal(t, ModeStandard, ParseMode(""))
}

func TestTemplates(t *testing.T) {
	template, err := FindTemplate("friend-2")
	assert.NoError(t, err)
	assert.Equal(t, ToneFunny, template.SuggestedTone)

	_, err = FindTemplate("nope")
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	assert.Len(t, TemplatesByCategory(TemplateCategoryDating), 4)
	assert.Len(t, TemplatesByCategory(""), len(Templates))
	for _, template := range Templates {
		assert.True(t, template.SuggestedTone.IsKnown(), template.ID)
	}
}
