package comeback

import "github.com/iamvkosarev/replyme/internal/model"

type cannedReply struct {
	text        string
	explanation string
}

var fallbackReplies = map[model.Tone][model.RepliesCount]cannedReply{
	model.ToneSavage: {
		{"That's cute. Try again.", "Dismissive and cutting"},
		{"I've had more interesting conversations with my microwave.", "Brutal comparison that ends the debate"},
		{"Bold of you to type that with your whole chest.", "Mocks their confidence without breaking a sweat"},
	},
	model.ToneFlirty: {
		{"Is that your best line? 😏", "Playful challenge"},
		{"Keep talking like that and I might start liking you.", "Teasing with a hint of interest"},
		{"You're lucky you're cute, you know that?", "Flips the message into a compliment"},
	},
	model.ToneSarcastic: {
		{"Wow, riveting stuff there.", "Dripping with sarcasm"},
		{"Stop, I can only handle so much excitement in one day.", "Exaggerated boredom"},
		{"Groundbreaking. Someone call the news.", "Mock praise for a mundane message"},
	},
	model.ToneFunny: {
		{"Haha wait are you serious rn 😭", "Natural and casual"},
		{"Hold on, let me screenshot this for the group chat.", "Turns the message into a shared joke"},
		{"I laughed so hard my phone autocorrected to 'help'.", "Absurd exaggeration keeps it light"},
	},
	model.ToneBold: {
		{"I'm gonna need you to rephrase that.", "Direct and assertive"},
		{"Say that again, but with confidence this time.", "Takes control of the conversation"},
		{"Noted. Now here's how it's actually going to go.", "Sets the terms without apology"},
	},
	model.ToneWitty: {
		{"Fascinating. Tell me more about how wrong you are.", "Sharp and clever"},
		{"I'd agree with you, but then we'd both be wrong.", "Classic twist that lands the point"},
		{"That's one way to think. The other way is correctly.", "Wordplay with a quiet jab"},
	},
	model.ToneUnhinged: {
		{"LMAOOO not you saying this 💀💀💀", "Chaotic energy"},
		{"I just read this out loud to my plants and now they're wilting.", "Random tangent nobody expected"},
		{"Cool cool cool. I'm moving to the woods. Bye.", "Over-the-top escalation"},
	},
	model.ToneProfessional: {
		{"I appreciate your input. Let's discuss further.", "Polished and diplomatic"},
		{"Thanks for flagging this. I'll follow up shortly.", "Acknowledges and sets expectations"},
		{"Understood. Could you share a bit more context?", "Keeps things constructive"},
	},
	model.ToneCasual: {
		{"lol idk man sounds weird to me", "Relaxed and chill"},
		{"haha fair enough, we'll see", "Low-key and easy-going"},
		{"ok but why tho 😂", "Casual curiosity"},
	},
	model.ToneMysterious: {
		{"Interesting... but you're missing something.", "Cryptic and intriguing"},
		{"You'll understand eventually.", "Leaves them wondering"},
		{"Maybe. Maybe not. Time will tell.", "Refuses to give anything away"},
	},
	model.ToneMature: {
		{"I hear you. Let's talk about this properly.", "Thoughtful and measured"},
		{"That's fair. I'd like to understand where you're coming from.", "Empathetic and open"},
		{"Thanks for being honest. Let's figure it out together.", "Calm and constructive"},
	},
	model.ToneMixed: {
		{"Haha okay but like... why though?", "Balanced casual response"},
		{"Interesting take. I'll allow it. For now.", "A little playful, a little bold"},
		{"Wow. Okay. I have thoughts.", "Keeps them guessing"},
	},
}

// FallbackFor returns the canned replies for tone, or the mixed set for an
// unknown tone. It never fails.
func FallbackFor(tone model.Tone) [model.RepliesCount]model.Reply {
	tone = tone.Normalize()
	canned, ok := fallbackReplies[tone]
	if !ok {
		tone = model.ToneMixed
		canned = fallbackReplies[model.ToneMixed]
	}

	var replies [model.RepliesCount]model.Reply
	for i, reply := range canned {
		replies[i] = model.Reply{
			Text:        reply.text,
			Explanation: reply.explanation,
			Tone:        tone,
		}
	}
	return replies
}
