package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/iamvkosarev/replyme/internal/api/middleware"
	"github.com/iamvkosarev/replyme/internal/logger"
	"github.com/iamvkosarev/replyme/internal/model"
	"github.com/iamvkosarev/replyme/internal/usecase"
)

type UserHandler struct {
	user *usecase.UserUsecase
}

func NewUserHandler(user *usecase.UserUsecase) *UserHandler {
	return &UserHandler{user: user}
}

type ProfileRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Name    string `json:"name" binding:"required"`
	Age     int    `json:"age" binding:"gte=0,lte=150"`
	Address string `json:"address"`
}

type SettingsRequest struct {
	Notifications      *bool `json:"notifications" binding:"required"`
	EmailNotifications *bool `json:"email_notifications" binding:"required"`
	PushNotifications  *bool `json:"push_notifications" binding:"required"`
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	owner, _ := middleware.GetOwner(c)
	profile, err := h.user.GetProfile(c.Request.Context(), owner.ID)
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errorCodeNotFound, "message": err.Error()})
			return
		}
		h.internalError(c, "Failed to get profile", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	owner, _ := middleware.GetOwner(c)
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errorCodeInvalidInput, "message": err.Error()})
		return
	}
	profile, err := h.user.SaveProfile(c.Request.Context(), owner.ID, usecase.ProfileInput{
		Email:   strings.TrimSpace(req.Email),
		Name:    strings.TrimSpace(req.Name),
		Age:     req.Age,
		Address: strings.TrimSpace(req.Address),
	})
	if err != nil {
		h.internalError(c, "Failed to save profile", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) GetSettings(c *gin.Context) {
	owner, _ := middleware.GetOwner(c)
	settings, err := h.user.GetSettings(c.Request.Context(), owner.ID)
	if err != nil {
		h.internalError(c, "Failed to get settings", err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *UserHandler) UpdateSettings(c *gin.Context) {
	owner, _ := middleware.GetOwner(c)
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errorCodeInvalidInput, "message": err.Error()})
		return
	}
	settings := model.Settings{
		Notifications:      *req.Notifications,
		EmailNotifications: *req.EmailNotifications,
		PushNotifications:  *req.PushNotifications,
	}
	if err := h.user.SaveSettings(c.Request.Context(), owner.ID, settings); err != nil {
		h.internalError(c, "Failed to save settings", err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *UserHandler) internalError(c *gin.Context, msg string, err error) {
	logger.Error(msg, err, logger.Fields{"request_id": middleware.GetRequestID(c)})
	c.JSON(http.StatusInternalServerError, gin.H{"error": errorCodeInternal})
}
