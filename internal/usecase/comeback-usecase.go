package usecase

import (
	"context"
	"errors"

	"github.com/iamvkosarev/replyme/internal/comeback"
	"github.com/iamvkosarev/replyme/internal/logger"
	"github.com/iamvkosarev/replyme/internal/model"
)

type ModelClient interface {
	CallModel(ctx context.Context, prompt string, mode model.Mode) (string, error)
}

type ComebackUsecaseDeps struct {
	Model ModelClient
}

// ComebackUsecase runs moderation, prompt building, the model call and
// parsing. Every failure after moderation is absorbed into a fallback result.
type ComebackUsecase struct {
	ComebackUsecaseDeps
}

func NewComebackUsecase(deps ComebackUsecaseDeps) *ComebackUsecase {
	return &ComebackUsecase{
		ComebackUsecaseDeps: deps,
	}
}

// Generate returns exactly RepliesCount replies. The only error is
// model.ErrRejectedInput.
func (c *ComebackUsecase) Generate(
	ctx context.Context, input string, tone model.Tone, mode model.Mode,
) (model.GenerationResult, error) {
	if !comeback.IsAppropriate(input) {
		return model.GenerationResult{}, model.ErrRejectedInput
	}

	prompt := comeback.BuildPrompt(input, tone, mode)

	raw, err := c.Model.CallModel(ctx, prompt, mode)
	if err != nil {
		return c.fallback(tone, mode, "calling", err), nil
	}

	replies, err := comeback.ParseReplies(raw, tone)
	if err != nil {
		return c.fallback(tone, mode, "parsing", err), nil
	}

	return model.GenerationResult{
		Replies: replies,
		Source:  model.ReplySourceLive,
	}, nil
}

func (c *ComebackUsecase) fallback(tone model.Tone, mode model.Mode, stage string, err error) model.GenerationResult {
	logger.Warn("Using fallback replies", logger.Fields{
		"tone":  string(tone),
		"mode":  string(mode),
		"stage": stage,
		"kind":  failureKind(err),
		"error": err.Error(),
	})
	return model.GenerationResult{
		Replies: comeback.FallbackFor(tone),
		Source:  model.ReplySourceFallback,
	}
}

func failureKind(err error) string {
	var transportErr *model.TransportError
	var formatErr *model.FormatError
	switch {
	case errors.As(err, &transportErr):
		return "transport"
	case errors.Is(err, model.ErrEmptyResponse):
		return "empty"
	case errors.As(err, &formatErr):
		return "format"
	default:
		return "unknown"
	}
}
