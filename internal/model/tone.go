package model

import "strings"

type Tone string

const (
	ToneSavage       = Tone("savage")
	ToneFunny        = Tone("funny")
	ToneBold         = Tone("bold")
	ToneFlirty       = Tone("flirty")
	ToneSarcastic    = Tone("sarcastic")
	ToneWitty        = Tone("witty")
	ToneUnhinged     = Tone("unhinged")
	ToneProfessional = Tone("professional")
	ToneCasual       = Tone("casual")
	ToneMysterious   = Tone("mysterious")
	ToneMature       = Tone("mature")
	ToneMixed        = Tone("mixed")
)

// Tones lists the closed tone set in display order.
var Tones = []Tone{
	ToneSavage,
	ToneFunny,
	ToneBold,
	ToneFlirty,
	ToneSarcastic,
	ToneWitty,
	ToneUnhinged,
	ToneProfessional,
	ToneCasual,
	ToneMysterious,
	ToneMature,
	ToneMixed,
}

type ToneInfo struct {
	ID          Tone   `json:"id"`
	Label       string `json:"label"`
	Emoji       string `json:"emoji"`
	Color       string `json:"color"`
	Description string `json:"description"`
	// Phrase is the generation-side description inserted into prompts.
	Phrase string `json:"-"`
}

// ParseTone maps a wire value onto the tone set. Unknown values (typos, tones
// from a newer client) resolve to ToneMixed and ok is false.
func ParseTone(s string) (tone Tone, ok bool) {
	t := Tone(strings.ToLower(strings.TrimSpace(s)))
	if t.IsKnown() {
		return t, true
	}
	return ToneMixed, false
}

func (t Tone) IsKnown() bool {
	switch t {
	case ToneSavage, ToneFunny, ToneBold, ToneFlirty, ToneSarcastic, ToneWitty, ToneUnhinged,
		ToneProfessional, ToneCasual, ToneMysterious, ToneMature, ToneMixed:
		return true
	default:
		return false
	}
}

// Info returns the catalog entry for t, or the mixed entry for an unknown tone.
func (t Tone) Info() ToneInfo {
	switch t {
	case ToneSavage:
		return ToneInfo{
			ID: t, Label: "Savage", Emoji: "🔥", Color: "#FF5C5C",
			Description: "Brutally honest & devastating",
			Phrase:      "brutally honest, cutting, and merciless - absolutely devastating",
		}
	case ToneFunny:
		return ToneInfo{
			ID: t, Label: "Funny", Emoji: "😄", Color: "#FFB84D",
			Description: "Witty & humorous",
			Phrase:      "witty, humorous, and light-hearted with clever wordplay",
		}
	case ToneBold:
		return ToneInfo{
			ID: t, Label: "Bold", Emoji: "💪", Color: "#FF6B6B",
			Description: "Confident & direct",
			Phrase:      "confident, direct, and assertive without apology",
		}
	case ToneFlirty:
		return ToneInfo{
			ID: t, Label: "Flirty", Emoji: "😏", Color: "#FF69B4",
			Description: "Playful & charming",
			Phrase:      "playful, charming, and subtly seductive",
		}
	case ToneSarcastic:
		return ToneInfo{
			ID: t, Label: "Sarcastic", Emoji: "🙄", Color: "#9B59B6",
			Description: "Sharp & ironic",
			Phrase:      "dripping with irony and sharp wit",
		}
	case ToneWitty:
		return ToneInfo{
			ID: t, Label: "Witty", Emoji: "🧠", Color: "#3498DB",
			Description: "Clever & sharp",
			Phrase:      "intellectually sharp and cleverly amusing",
		}
	case ToneUnhinged:
		return ToneInfo{
			ID: t, Label: "Unhinged", Emoji: "🤪", Color: "#E74C3C",
			Description: "Chaotic & wild",
			Phrase:      "chaotic, unpredictable, and delightfully insane",
		}
	case ToneProfessional:
		return ToneInfo{
			ID: t, Label: "Professional", Emoji: "💼", Color: "#34495E",
			Description: "Polished & diplomatic",
			Phrase:      "polished, diplomatic, and business-appropriate",
		}
	case ToneCasual:
		return ToneInfo{
			ID: t, Label: "Casual", Emoji: "😎", Color: "#1ABC9C",
			Description: "Relaxed & chill",
			Phrase:      "relaxed, friendly, and easy-going",
		}
	case ToneMysterious:
		return ToneInfo{
			ID: t, Label: "Mysterious", Emoji: "🎭", Color: "#8E44AD",
			Description: "Enigmatic & cryptic",
			Phrase:      "enigmatic, intriguing, and subtly cryptic",
		}
	case ToneMature:
		return ToneInfo{
			ID: t, Label: "Mature", Emoji: "🧘", Color: "#7C5CFF",
			Description: "Thoughtful & measured",
			Phrase:      "thoughtful, professional, and empathetic",
		}
	default:
		return ToneInfo{
			ID: ToneMixed, Label: "Mixed", Emoji: "✨", Color: "#00E5A8",
			Description: "Balanced variety",
			Phrase:      "balanced mix of different tones",
		}
	}
}

// Normalize returns t when known, ToneMixed otherwise.
func (t Tone) Normalize() Tone {
	if t.IsKnown() {
		return t
	}
	return ToneMixed
}
