package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/iamvkosarev/replyme/internal/model"
)

// ListTones returns display metadata for every tone in display order
func ListTones(c *gin.Context) {
	tones := make([]model.ToneInfo, 0, len(model.Tones))
	for _, tone := range model.Tones {
		tones = append(tones, tone.Info())
	}
	c.JSON(http.StatusOK, gin.H{"tones": tones})
}

// ListTemplates returns scenario templates, optionally filtered by ?category=
func ListTemplates(c *gin.Context) {
	category := model.TemplateCategory(strings.ToLower(strings.TrimSpace(c.Query("category"))))
	c.JSON(http.StatusOK, gin.H{"templates": model.TemplatesByCategory(category)})
}
