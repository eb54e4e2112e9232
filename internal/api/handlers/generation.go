package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/iamvkosarev/replyme/internal/api/middleware"
	"github.com/iamvkosarev/replyme/internal/logger"
	"github.com/iamvkosarev/replyme/internal/model"
)

type ComebackGenerator interface {
	GenerateComeback(
		ctx context.Context, owner model.Owner, input string, tone model.Tone, mode model.Mode,
	) (model.Generation, error)
}

type TokenCounter interface {
	Count(text string) (int, bool)
}

type GenerationHandler struct {
	generator      ComebackGenerator
	counter        TokenCounter
	maxInputTokens int
}

// NewGenerationHandler disables the input length guard when maxInputTokens <= 0.
func NewGenerationHandler(generator ComebackGenerator, counter TokenCounter, maxInputTokens int) *GenerationHandler {
	return &GenerationHandler{
		generator:      generator,
		counter:        counter,
		maxInputTokens: maxInputTokens,
	}
}

type GenerateRequest struct {
	Input string `json:"input"`
	Tone  string `json:"tone"`
	Mode  string `json:"mode"`
}

type TemplateGenerateRequest struct {
	Tone string `json:"tone"`
	Mode string `json:"mode"`
}

// Generate creates three comebacks for the submitted message
func (h *GenerationHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errorCodeInvalidInput, "message": err.Error()})
		return
	}

	input := strings.TrimSpace(req.Input)
	if input == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errorCodeInvalidInput, "message": "Input is required"})
		return
	}
	if err := h.checkInputLength(c, input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errorCodeInputTooLong, "message": err.Error()})
		return
	}

	tone, _ := model.ParseTone(req.Tone)
	h.generate(c, input, tone, model.ParseMode(req.Mode))
}

// GenerateFromTemplate generates comebacks for a template scenario using its
// suggested tone unless the request names one.
func (h *GenerationHandler) GenerateFromTemplate(c *gin.Context) {
	template, err := model.FindTemplate(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errorCodeNotFound, "message": err.Error()})
		return
	}

	var req TemplateGenerateRequest
	if err = c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": errorCodeInvalidInput, "message": err.Error()})
		return
	}

	tone := template.SuggestedTone
	if strings.TrimSpace(req.Tone) != "" {
		tone, _ = model.ParseTone(req.Tone)
	}
	h.generate(c, template.Scenario, tone, model.ParseMode(req.Mode))
}

func (h *GenerationHandler) generate(c *gin.Context, input string, tone model.Tone, mode model.Mode) {
	owner, ok := middleware.GetOwner(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": errorCodeUnauthorized})
		return
	}

	generation, err := h.generator.GenerateComeback(c.Request.Context(), owner, input, tone, mode)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrSignInRequired):
			c.JSON(http.StatusForbidden, gin.H{"error": errorCodeSignInRequired, "message": err.Error()})
		case errors.Is(err, model.ErrRejectedInput):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": errorCodeRejectedInput, "message": err.Error()})
		default:
			logger.Error("Failed to generate comeback", err, logger.Fields{
				"request_id": middleware.GetRequestID(c),
				"tone":       string(tone),
			})
			c.JSON(http.StatusInternalServerError, gin.H{"error": errorCodeInternal})
		}
		return
	}

	c.JSON(http.StatusCreated, generation)
}

func (h *GenerationHandler) checkInputLength(c *gin.Context, input string) error {
	if h.maxInputTokens <= 0 || h.counter == nil {
		return nil
	}
	count, exact := h.counter.Count(input)
	logger.Debug("Counted input tokens", logger.Fields{
		"request_id": middleware.GetRequestID(c),
		"tokens":     count,
		"exact":      exact,
	})
	if count > h.maxInputTokens {
		return model.ErrInputTooLong
	}
	return nil
}
