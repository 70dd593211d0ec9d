package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marianadoces/console/internal/domain/models"
)

type loginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateSession authenticates against the backend with the supplied
// credentials and returns the backend token and user.
func (h *Handler) CreateSession(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid credentials payload"})
		return
	}

	resp, err := h.session.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		h.logger.Warn("login failed", zap.String("email", payload.Email), zap.Error(err))
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Token: resp.Token, User: resp.User})
}

// DeleteSession discards the backend session.
func (h *Handler) DeleteSession(c *gin.Context) {
	h.session.Logout()
	c.Status(http.StatusNoContent)
}
