package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marianadoces/console/internal/domain/models"
	"github.com/marianadoces/console/internal/service/sales"
)

type salesPreviewPayload struct {
	Channel    models.Channel `json:"channel" binding:"required"`
	Quantities map[string]int `json:"quantities" binding:"required"`
}

// SalesPreview prices a quantity grid without submitting it.
func (h *Handler) SalesPreview(c *gin.Context) {
	var payload salesPreviewPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sales payload"})
		return
	}
	if err := payload.Channel.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	preview, err := h.sales.BuildPreview(c.Request.Context(), payload.Channel, payload.Quantities)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, preview)
}

// SubmitSale prices the grid and submits the order to the backend.
func (h *Handler) SubmitSale(c *gin.Context) {
	var payload sales.SubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sales payload"})
		return
	}
	if err := payload.Channel.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.sales.Submit(c.Request.Context(), payload)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}
