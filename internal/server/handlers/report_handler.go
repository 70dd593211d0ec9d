package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marianadoces/console/internal/domain/models"
)

// reportRange reads and validates the from/to query parameters.
func reportRange(c *gin.Context) (string, string, bool) {
	from := c.Query("from")
	to := c.Query("to")
	for _, value := range []string{from, to} {
		if _, err := time.Parse(models.DateLayout, value); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from and to must be dates in YYYY-MM-DD form"})
			return "", "", false
		}
	}
	return from, to, true
}

// SalesSummary serves the period sales summary, optionally per channel.
func (h *Handler) SalesSummary(c *gin.Context) {
	from, to, ok := reportRange(c)
	if !ok {
		return
	}

	var channel *models.Channel
	if raw := c.Query("channel"); raw != "" {
		ch := models.Channel(raw)
		if err := ch.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		channel = &ch
	}

	summary, err := h.reports.SalesSummary(c.Request.Context(), from, to, channel)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ProductSales serves per-product sales performance for the period.
func (h *Handler) ProductSales(c *gin.Context) {
	from, to, ok := reportRange(c)
	if !ok {
		return
	}

	reports, err := h.reports.ProductSales(c.Request.Context(), from, to)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": reports})
}

// StockReport serves the current ingredient stock valuation.
func (h *Handler) StockReport(c *gin.Context) {
	report, err := h.reports.StockReport(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// ExportSalesCSV streams the period's orders as a CSV attachment.
func (h *Handler) ExportSalesCSV(c *gin.Context) {
	from, to, ok := reportRange(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=sales-%s-%s.csv", from, to))

	if err := h.reports.ExportSalesCSV(c.Request.Context(), c.Writer, from, to); err != nil {
		// Headers may already be written; log instead of switching status.
		h.logger.Error("csv export failed", zap.Error(err))
	}
}

// ExportStockCSV streams the current stock valuation as a CSV attachment.
func (h *Handler) ExportStockCSV(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=stock-%s.csv", time.Now().Format(models.DateLayout)))

	if err := h.reports.ExportStockCSV(c.Request.Context(), c.Writer); err != nil {
		h.logger.Error("stock csv export failed", zap.Error(err))
	}
}
