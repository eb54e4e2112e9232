package comeback

import (
	"fmt"
	"strings"

	"github.com/iamvkosarev/replyme/internal/model"
)

const personaPrompt = `You are a comeback generator that creates REAL, AUTHENTIC text message replies. Your goal is to help people respond with style and personality.

CRITICAL: Write like a REAL PERSON texting, not a robot. Be natural, spontaneous, and UNHINGED when appropriate. Use casual language, slang, and modern texting style. NO corporate speak, NO robotic phrases, NO "I appreciate..." nonsense.`

const styleRequirements = `STYLE REQUIREMENTS:
- Write like you're texting a friend, not writing an essay
- Use natural reactions and emotions
- Be BOLD and UNAPOLOGETIC
- Make it MEMORABLE and punchy
- Keep it 1-2 sentences MAX (like a real text)
- Add personality, attitude, and SPICE
- Use emojis sparingly if they fit the vibe
- NO polite filler words unless the tone calls for it`

const standardModeInstructions = `CREATIVITY LEVEL: STANDARD
- Be creative but keep it clever rather than crude
- Stay sharp without crossing into cruelty or slurs
- Every reply should still be something a person would actually send`

const unfilteredModeInstructions = `CREATIVITY LEVEL: UNFILTERED - MAXIMUM
- Max creativity and edge. NO holding back
- Push every reply to the most intense version of the vibe
- Fewer restrictions: be outrageous, unexpected, and unforgettable
- Never water it down, never hedge, never apologize`

// toneEmphasis holds extra intensity directives for the tones that need them.
var toneEmphasis = map[model.Tone]string{
	model.ToneSavage: `SAVAGE MODE: Go for the throat. Every reply should leave them speechless. ` +
		`No mercy, no softening, pure devastation.`,
	model.ToneUnhinged: `UNHINGED MODE: Absolute chaos. Make no logical sense in the best way possible. ` +
		`Random tangents and unhinged energy are encouraged.`,
	model.ToneFlirty: `FLIRTY MODE: Turn up the charm. Be smooth, teasing, and confident. ` +
		`Make them blush without being creepy.`,
	model.ToneSarcastic: `SARCASTIC MODE: Maximum irony. Every word should drip with sarcasm ` +
		`so thick they can feel it through the screen.`,
}

// BuildPrompt renders the instruction sent to the model. Unknown tones use
// the mixed phrase. The input is quoted verbatim.
func BuildPrompt(input string, tone model.Tone, mode model.Mode) string {
	info := tone.Info()
	toneID := info.ID

	var b strings.Builder
	b.WriteString(personaPrompt)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Message received: \"%s\"\n\n", input)
	fmt.Fprintf(
		&b, "Generate %d KILLER comeback replies with the %q vibe (%s).\n\n",
		model.RepliesCount, toneID, info.Phrase,
	)
	b.WriteString(styleRequirements)
	b.WriteString("\n\n")
	if mode == model.ModeUnfiltered {
		b.WriteString(unfilteredModeInstructions)
	} else {
		b.WriteString(standardModeInstructions)
	}
	b.WriteString("\n\n")
	if emphasis, ok := toneEmphasis[toneID]; ok {
		b.WriteString(emphasis)
		b.WriteString("\n\n")
	}
	b.WriteString("For each reply, provide:\n")
	b.WriteString("- The actual reply text (raw, unfiltered, REAL)\n")
	b.WriteString("- A brief explanation of the strategy\n\n")
	b.WriteString("Respond with ONLY this JSON object, no other text:\n")
	writeFormatContract(&b, toneID)
	return b.String()
}

func writeFormatContract(b *strings.Builder, tone model.Tone) {
	b.WriteString("{\n  \"replies\": [\n")
	for i := 0; i < model.RepliesCount; i++ {
		b.WriteString("    {\n")
		fmt.Fprintf(b, "      \"tone\": %q,\n", tone)
		b.WriteString("      \"text\": \"reply text here\",\n")
		b.WriteString("      \"explanation\": \"why this works\"\n")
		if i < model.RepliesCount-1 {
			b.WriteString("    },\n")
		} else {
			b.WriteString("    }\n")
		}
	}
	b.WriteString("  ]\n}")
}
