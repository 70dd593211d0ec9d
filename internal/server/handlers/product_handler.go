package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marianadoces/console/internal/service/catalog"
)

// ProductDetail serves the combined product view: catalog record, recipe and
// computed pricing preview.
func (h *Handler) ProductDetail(c *gin.Context) {
	detail, err := h.catalog.ProductDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

type costPreviewPayload struct {
	Lines []catalog.DraftLine `json:"lines" binding:"required,min=1,dive"`
}

// CostPreview prices a draft recipe without persisting it.
func (h *Handler) CostPreview(c *gin.Context) {
	var payload costPreviewPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe payload"})
		return
	}

	analysis, err := h.catalog.CostPreview(c.Request.Context(), payload.Lines)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}
