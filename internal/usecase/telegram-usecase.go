package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	api "github.com/OvyFlash/telegram-bot-api"
	"github.com/iamvkosarev/replyme/config"
	"github.com/iamvkosarev/replyme/internal/logger"
	"github.com/iamvkosarev/replyme/internal/model"
	"github.com/iamvkosarev/replyme/pkg/local"
	"github.com/sourcegraph/conc"
)

const (
	CommandStart   = "start"
	CommandHelp    = "help"
	CommandTone    = "tone"
	CommandMode    = "mode"
	CommandHistory = "history"

	toneCallbackPrefix  = "tone:"
	historyCommandLimit = 5
	maxButtonsInRow     = 3
)

var (
	MessageServerError = local.NewSet(
		"Something wrong with me. Try later",
		local.NewTrans(local.Rus, "Что-то пошло не так. Попробуй позже"),
	)
	MessageUserNoAccess = local.NewSet(
		"You are not allowed to use this bot",
		local.NewTrans(local.Rus, "У тебя нет доступа к этому боту"),
	)
	MessageCommandStart = local.NewSet(
		"Welcome to Reply Me! Send me a message you received and I'll give you three comebacks. Use /tone to pick a vibe and /mode to go unfiltered.",
		local.NewTrans(local.Rus, "Добро пожаловать в Reply Me! Пришли сообщение, которое тебе написали, и я предложу три ответа. /tone выбирает тон, /mode включает режим без фильтров."),
	)
	MessageCommandHelp = local.NewSet(
		"Send any message to get three replies.\n/tone - choose a tone\n/mode - toggle standard or unfiltered\n/history - your last comebacks",
		local.NewTrans(local.Rus, "Пришли любое сообщение, чтобы получить три ответа.\n/tone - выбрать тон\n/mode - переключить обычный режим или без фильтров\n/history - последние ответы"),
	)
	MessageCommandUnknown = local.NewSet(
		"I don't know that command",
		local.NewTrans(local.Rus, "Я не знаю такой команды"),
	)
	MessageSelectTone = local.NewSet(
		"Pick a tone. Current: %s",
		local.NewTrans(local.Rus, "Выбери тон. Сейчас: %s"),
	)
	MessageSelectedToneFormat = local.NewSet(
		"Tone set to %s %s",
		local.NewTrans(local.Rus, "Тон изменён на %s %s"),
	)
	MessageUnknownTone = local.NewSet(
		"I don't know that tone",
		local.NewTrans(local.Rus, "Я не знаю такого тона"),
	)
	MessageModeFormat = local.NewSet(
		"Mode set to %s",
		local.NewTrans(local.Rus, "Режим: %s"),
	)
	MessageRejectedInput = local.NewSet(
		"I can't help with that message. Try something else.",
		local.NewTrans(local.Rus, "С этим сообщением я не помогу. Попробуй другое."),
	)
	MessageHistoryEmpty = local.NewSet(
		"No comebacks yet. Send me a message!",
		local.NewTrans(local.Rus, "Пока пусто. Пришли мне сообщение!"),
	)
	MessageHistoryHeaderFormat = local.NewSet(
		"Your last %d comebacks:",
		local.NewTrans(local.Rus, "Последние ответы (%d):"),
	)
	MessageFallbackNotice = local.NewSet(
		"(the AI is busy, here are some classics)",
		local.NewTrans(local.Rus, "(ИИ занят, вот проверенная классика)"),
	)
)

type TelegramUsecaseDeps struct {
	User    *UserUsecase
	History *HistoryUsecase
	Bot     *api.BotAPI
}

type TelegramUsecase struct {
	TelegramUsecaseDeps
	allowedUsers map[int64]struct{}
}

// NewTelegramUsecase registers the bot commands. An empty allow list makes
// the bot public.
func NewTelegramUsecase(cfg config.Telegram, deps TelegramUsecaseDeps) (*TelegramUsecase, error) {
	allowedUsers := make(map[int64]struct{}, len(cfg.AllowedTelegramID))
	for _, userID := range cfg.AllowedTelegramID {
		allowedUsers[userID] = struct{}{}
	}

	_, err := deps.Bot.Request(
		api.NewSetMyCommands(
			[]api.BotCommand{
				{
					Command:     CommandHelp,
					Description: "Get help",
				},
				{
					Command:     CommandTone,
					Description: "Choose a reply tone",
				},
				{
					Command:     CommandMode,
					Description: "Toggle standard or unfiltered mode",
				},
				{
					Command:     CommandHistory,
					Description: "Show your last comebacks",
				},
			}...,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set bot commands: %w", err)
	}

	return &TelegramUsecase{
		TelegramUsecaseDeps: deps,
		allowedUsers:        allowedUsers,
	}, nil
}

// Run polls updates until ctx is done.
func (t *TelegramUsecase) Run(ctx context.Context) error {
	u := api.NewUpdate(0)
	u.Timeout = 60

	updates := t.Bot.GetUpdatesChan(u)
	defer t.Bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message != nil {
				if err := t.handleMessage(ctx, update); err != nil {
					logger.Error("Failed to handle telegram message", err, logger.Fields{
						"chat_id": update.Message.Chat.ID,
					})
				}
			}
			if update.CallbackQuery != nil {
				if err := t.handleCallbackQuery(ctx, update); err != nil {
					logger.Error("Failed to handle telegram callback query", err, logger.Fields{
						"data": update.CallbackQuery.Data,
					})
				}
			}
		}
	}
}

func (t *TelegramUsecase) isAllowed(telegramUserID int64) bool {
	if len(t.allowedUsers) == 0 {
		return true
	}
	_, ok := t.allowedUsers[telegramUserID]
	return ok
}

func (t *TelegramUsecase) handleCallbackQuery(ctx context.Context, update api.Update) error {
	query := update.CallbackQuery
	chatID := query.Message.Chat.ID
	lang := local.ParseLanguage(query.From.LanguageCode)

	if _, err := t.Bot.Request(api.NewCallback(query.ID, "")); err != nil {
		return fmt.Errorf("failed to request callback: %w", err)
	}
	if !t.isAllowed(query.From.ID) {
		t.sendMessageAndHandleErr(chatID, MessageUserNoAccess.Text(lang))
		return nil
	}

	tone, ok := parseToneCallback(query.Data)
	if !ok {
		t.sendMessageAndHandleErr(chatID, MessageUnknownTone.Text(lang))
		return nil
	}

	user, err := t.User.GetUserInfoForTelegramUser(ctx, query.From.ID)
	if err != nil {
		t.sendMessageAndHandleErr(chatID, MessageServerError.Text(lang))
		return fmt.Errorf("failed to get user info for telegram user: %w", err)
	}
	if err = t.User.UpdateUserTone(ctx, user, tone); err != nil {
		t.sendMessageAndHandleErr(chatID, MessageServerError.Text(lang))
		return fmt.Errorf("failed to update user tone: %w", err)
	}
	info := tone.Info()
	t.sendMessageAndHandleErr(chatID, MessageSelectedToneFormat.Format(lang, info.Emoji, info.Label))
	return nil
}

func (t *TelegramUsecase) handleMessage(ctx context.Context, update api.Update) error {
	chatID := update.Message.Chat.ID
	if update.Message.From == nil {
		return nil
	}
	telegramUserID := update.Message.From.ID
	lang := local.ParseLanguage(update.Message.From.LanguageCode)

	if !t.isAllowed(telegramUserID) {
		t.sendMessageAndHandleErr(chatID, MessageUserNoAccess.Text(lang))
		return nil
	}

	user, err := t.User.GetUserInfoForTelegramUser(ctx, telegramUserID)
	if err != nil {
		t.sendMessageAndHandleErr(chatID, MessageServerError.Text(lang))
		return fmt.Errorf("failed to get user info for telegram user: %w", err)
	}

	if update.Message.IsCommand() {
		return t.handleCommand(ctx, update.Message.Command(), user, chatID, lang)
	}

	input := strings.TrimSpace(update.Message.Text)
	if input == "" {
		return nil
	}

	var generation model.Generation
	var generateErr error
	wg := conc.NewWaitGroup()
	wg.Go(
		func() {
			if _, err := t.Bot.Request(api.NewChatAction(chatID, api.ChatTyping)); err != nil {
				logger.Warn("Failed to send typing action", logger.Fields{"chat_id": chatID, "error": err.Error()})
			}
		},
	)
	wg.Go(
		func() {
			owner := model.Owner{ID: user.UserID}
			generation, generateErr = t.History.GenerateComeback(ctx, owner, input, user.Tone, user.Mode)
		},
	)
	wg.Wait()

	if generateErr != nil {
		if errors.Is(generateErr, model.ErrRejectedInput) {
			t.sendMessageAndHandleErr(chatID, MessageRejectedInput.Text(lang))
			return nil
		}
		t.sendMessageAndHandleErr(chatID, MessageServerError.Text(lang))
		return fmt.Errorf("failed to generate comeback: %w", generateErr)
	}

	t.sendMessageAndHandleErr(chatID, formatReplies(generation, lang))
	return nil
}

func (t *TelegramUsecase) handleCommand(
	ctx context.Context, command string, user model.User, chatID int64, lang local.Language,
) error {
	var answerText string
	switch command {
	case CommandStart:
		answerText = MessageCommandStart.Text(lang)
	case CommandHelp:
		answerText = MessageCommandHelp.Text(lang)
	case CommandTone:
		msg := api.NewMessage(chatID, MessageSelectTone.Format(lang, user.Tone.Info().Label))
		msg.ReplyMarkup = api.NewInlineKeyboardMarkup(toneKeyboardRows()...)
		if _, err := t.Bot.Send(msg); err != nil {
			return fmt.Errorf("failed to send tone keyboard: %w", err)
		}
		return nil
	case CommandMode:
		mode := toggleMode(user.Mode)
		if err := t.User.UpdateUserMode(ctx, user, mode); err != nil {
			t.sendMessageAndHandleErr(chatID, MessageServerError.Text(lang))
			return fmt.Errorf("failed to update user mode: %w", err)
		}
		answerText = MessageModeFormat.Format(lang, mode)
	case CommandHistory:
		generations, err := t.History.ListHistory(ctx, user.UserID)
		if err != nil {
			t.sendMessageAndHandleErr(chatID, MessageServerError.Text(lang))
			return fmt.Errorf("failed to list history: %w", err)
		}
		answerText = formatHistory(generations, lang)
	default:
		answerText = MessageCommandUnknown.Text(lang)
	}
	t.sendMessageAndHandleErr(chatID, answerText)
	return nil
}

func toggleMode(mode model.Mode) model.Mode {
	if mode == model.ModeUnfiltered {
		return model.ModeStandard
	}
	return model.ModeUnfiltered
}

func parseToneCallback(data string) (model.Tone, bool) {
	id, ok := strings.CutPrefix(data, toneCallbackPrefix)
	if !ok {
		return "", false
	}
	return model.ParseTone(id)
}

func toneKeyboardRows() [][]api.InlineKeyboardButton {
	inlineRows := make([][]api.InlineKeyboardButton, 0, len(model.Tones)/maxButtonsInRow+1)
	inlineButtons := make([]api.InlineKeyboardButton, 0, maxButtonsInRow)
	for _, tone := range model.Tones {
		if len(inlineButtons) == maxButtonsInRow {
			inlineRows = append(inlineRows, inlineButtons)
			inlineButtons = make([]api.InlineKeyboardButton, 0, maxButtonsInRow)
		}
		info := tone.Info()
		inlineButtons = append(
			inlineButtons,
			api.NewInlineKeyboardButtonData(info.Emoji+" "+info.Label, toneCallbackPrefix+string(tone)),
		)
	}
	if len(inlineButtons) > 0 {
		inlineRows = append(inlineRows, inlineButtons)
	}
	return inlineRows
}

func formatReplies(generation model.Generation, lang local.Language) string {
	result := strings.Builder{}
	for i, reply := range generation.Replies {
		if i > 0 {
			result.WriteString("\n\n")
		}
		result.WriteString(fmt.Sprintf("%d. %s", i+1, reply.Text))
		if reply.Explanation != "" {
			result.WriteString(fmt.Sprintf("\n%s %s", reply.Tone.Info().Emoji, reply.Explanation))
		}
	}
	if generation.Source == model.ReplySourceFallback {
		result.WriteString("\n\n")
		result.WriteString(MessageFallbackNotice.Text(lang))
	}
	return result.String()
}

func formatHistory(generations []model.Generation, lang local.Language) string {
	if len(generations) == 0 {
		return MessageHistoryEmpty.Text(lang)
	}
	if len(generations) > historyCommandLimit {
		generations = generations[:historyCommandLimit]
	}
	result := strings.Builder{}
	result.WriteString(MessageHistoryHeaderFormat.Format(lang, len(generations)))
	for i, generation := range generations {
		var favorite string
		if generation.IsFavorite {
			favorite = " ★"
		}
		result.WriteString(
			fmt.Sprintf(
				"\n%d) %s %q%s\n   → %s", i+1, generation.Tone.Info().Emoji, generation.Input, favorite,
				generation.Replies[0].Text,
			),
		)
	}
	return result.String()
}

func (t *TelegramUsecase) sendMessageAndHandleErr(chatID int64, message string) {
	if _, err := t.Bot.Send(api.NewMessage(chatID, message)); err != nil {
		logger.Warn("Failed to send telegram message", logger.Fields{"chat_id": chatID, "error": err.Error()})
	}
}
