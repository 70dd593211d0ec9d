// Package handlers adapts the console services onto the gin HTTP surface.
package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marianadoces/console/internal/domain/models"
	"github.com/marianadoces/console/internal/service/catalog"
	"github.com/marianadoces/console/internal/service/sales"
	"github.com/marianadoces/console/pkg/clients/backend"
)

// SessionAPI is the authentication slice of the backend client.
type SessionAPI interface {
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	Logout()
}

// CatalogService computes product detail and recipe cost previews.
type CatalogService interface {
	ProductDetail(ctx context.Context, productID string) (*catalog.ProductDetail, error)
	CostPreview(ctx context.Context, lines []catalog.DraftLine) (*catalog.CostAnalysis, error)
}

// SalesService prices and submits daily sales entries.
type SalesService interface {
	BuildPreview(ctx context.Context, channel models.Channel, quantities map[string]int) (*sales.Preview, error)
	Submit(ctx context.Context, req sales.SubmitRequest) (*models.SaleOrder, error)
}

// ReportService builds the report views.
type ReportService interface {
	SalesSummary(ctx context.Context, from, to string, channel *models.Channel) (*models.ReportSummary, error)
	ProductSales(ctx context.Context, from, to string) ([]models.ProductReport, error)
	StockReport(ctx context.Context) (*models.StockReport, error)
	ExportSalesCSV(ctx context.Context, w io.Writer, from, to string) error
	ExportStockCSV(ctx context.Context, w io.Writer) error
}

// Handler bundles the console HTTP endpoints.
type Handler struct {
	session SessionAPI
	catalog CatalogService
	sales   SalesService
	reports ReportService
	logger  *zap.Logger
}

// NewHandler constructs the HTTP handler adapter.
func NewHandler(session SessionAPI, catalogSvc CatalogService, salesSvc SalesService, reportSvc ReportService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		session: session,
		catalog: catalogSvc,
		sales:   salesSvc,
		reports: reportSvc,
		logger:  logger,
	}
}

// respondError maps domain errors onto HTTP statuses. Backend failures the
// console merely relays surface as 502.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, backend.ErrUnauthorized), errors.Is(err, backend.ErrNoSession):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "backend session rejected"})
	case errors.Is(err, backend.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, sales.ErrEmptyOrder):
		c.JSON(http.StatusBadRequest, gin.H{"error": "order needs at least one item with quantity greater than zero"})
	case errors.Is(err, catalog.ErrInvalidDraft):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			h.logger.Error("backend request failed", zap.Int("status", apiErr.Status), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": apiErr.Message})
			return
		}
		h.logger.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
