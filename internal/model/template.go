package model

type TemplateCategory string

const (
	TemplateCategoryDating   = TemplateCategory("dating")
	TemplateCategoryFriends  = TemplateCategory("friends")
	TemplateCategoryTrending = TemplateCategory("trending")
)

// Template is a canned scenario message the user can generate comebacks for.
type Template struct {
	ID            string           `json:"id"`
	Category      TemplateCategory `json:"category"`
	Title         string           `json:"title"`
	Scenario      string           `json:"scenario"`
	SuggestedTone Tone             `json:"suggested_tone"`
	Icon          string           `json:"icon"`
}

var Templates = []Template{
	{ID: "date-1", Category: TemplateCategoryDating, Title: "First Date Follow-up", Scenario: "Had a great time last night! Would love to see you again soon.", SuggestedTone: ToneBold, Icon: "💕"},
	{ID: "date-2", Category: TemplateCategoryDating, Title: "Running Late", Scenario: "I'm so sorry, running about 15 minutes late!", SuggestedTone: ToneMature, Icon: "⏰"},
	{ID: "date-3", Category: TemplateCategoryDating, Title: "Making Plans", Scenario: "What are you up to this weekend?", SuggestedTone: ToneFunny, Icon: "📅"},
	{ID: "date-4", Category: TemplateCategoryDating, Title: "Compliment Response", Scenario: "You looked amazing tonight 😍", SuggestedTone: ToneBold, Icon: "✨"},

	{ID: "friend-1", Category: TemplateCategoryFriends, Title: "Cancel Plans", Scenario: "Hey, I'm not feeling well. Can we reschedule?", SuggestedTone: ToneMature, Icon: "🤒"},
	{ID: "friend-2", Category: TemplateCategoryFriends, Title: "Group Chat Banter", Scenario: "Who's down for pizza tonight?", SuggestedTone: ToneFunny, Icon: "🍕"},
	{ID: "friend-3", Category: TemplateCategoryFriends, Title: "Need Advice", Scenario: "Can I get your opinion on something?", SuggestedTone: ToneMature, Icon: "💭"},
	{ID: "friend-4", Category: TemplateCategoryFriends, Title: "Birthday Thanks", Scenario: "Thanks so much for the birthday wishes!", SuggestedTone: ToneFunny, Icon: "🎂"},

	{ID: "trend-1", Category: TemplateCategoryTrending, Title: "Awkward Silence Breaker", Scenario: "It's been a while! How have you been?", SuggestedTone: ToneMixed, Icon: "👋"},
	{ID: "trend-2", Category: TemplateCategoryTrending, Title: "Work Message", Scenario: "Can you send me that file when you get a chance?", SuggestedTone: ToneMature, Icon: "💼"},
	{ID: "trend-3", Category: TemplateCategoryTrending, Title: "Thanks for Gift", Scenario: "I loved the gift! You know me so well!", SuggestedTone: ToneBold, Icon: "🎁"},
	{ID: "trend-4", Category: TemplateCategoryTrending, Title: "Networking Follow-up", Scenario: "Great meeting you at the event! Let's stay in touch.", SuggestedTone: ToneMature, Icon: "🤝"},
}

func FindTemplate(id string) (Template, error) {
	for _, template := range Templates {
		if template.ID == id {
			return template, nil
		}
	}
	return Template{}, ErrTemplateNotFound
}

// TemplatesByCategory returns all templates when category is empty.
func TemplatesByCategory(category TemplateCategory) []Template {
	if category == "" {
		return Templates
	}
	templates := make([]Template, 0)
	for _, template := range Templates {
		if template.Category == category {
			templates = append(templates, template)
		}
	}
	return templates
}
