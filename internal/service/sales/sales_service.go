// Package sales implements daily sales entry: turning a grid of product
// quantities into channel-priced order totals and submitting the order to
// the backend.
package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/marianadoces/console/internal/domain/models"
	"github.com/marianadoces/console/internal/pricing"
	"github.com/marianadoces/console/pkg/clients/backend"
)

// ErrEmptyOrder reports a submission with no line carrying a positive
// quantity.
var ErrEmptyOrder = errors.New("sales: order has no items with quantity greater than zero")

// BackendAPI is the slice of the backend client the sales service needs.
type BackendAPI interface {
	ListProducts(ctx context.Context, params backend.ListParams) (*models.Paginated[models.Product], error)
	GetSettings(ctx context.Context) (models.Settings, error)
	CreateOrder(ctx context.Context, req models.CreateSaleOrderRequest) (*models.SaleOrder, error)
}

// Service computes sale previews and submits orders.
type Service struct {
	api    BackendAPI
	logger *zap.Logger
}

// NewService wires a sales service instance.
func NewService(api BackendAPI, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, logger: logger}
}

// PreviewLine is one priced line of the sales grid.
type PreviewLine struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Qty         int             `json:"qty"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// Preview is the computed totals of a sales grid before submission.
type Preview struct {
	Channel      models.Channel  `json:"channel"`
	FeePercent   decimal.Decimal `json:"feePercent"`
	Lines        []PreviewLine   `json:"lines"`
	GrossAmount  decimal.Decimal `json:"grossAmount"`
	PlatformFees decimal.Decimal `json:"platformFees"`
	NetAmount    decimal.Decimal `json:"netAmount"`
	ItemCount    int             `json:"itemCount"`
}

// BuildPreview prices the quantity grid on the given channel. Quantities for
// unknown or inactive products are skipped, matching the sales grid's
// defensive behavior; lines with qty <= 0 never reach the totals. The
// platform fee percent comes from system configuration, falling back to the
// default when the configuration is unreachable.
func (s *Service) BuildPreview(ctx context.Context, channel models.Channel, quantities map[string]int) (*Preview, error) {
	if err := channel.Validate(); err != nil {
		return nil, err
	}

	page, err := s.api.ListProducts(ctx, backend.ListParams{Limit: 100})
	if err != nil {
		return nil, err
	}

	settings, err := s.api.GetSettings(ctx)
	if err != nil {
		s.logger.Warn("settings unavailable, using default platform fee", zap.Error(err))
		settings = models.DefaultSettings()
	}

	preview := &Preview{Channel: channel, FeePercent: settings.IFoodFeePercent}
	var items []pricing.LineItem

	for _, product := range page.Data {
		qty, ok := quantities[product.ID]
		if !ok || qty <= 0 || !product.Active {
			continue
		}
		unitPrice := pricing.ListedPrice(product, channel)
		preview.Lines = append(preview.Lines, PreviewLine{
			ProductID:   product.ID,
			ProductName: product.Name,
			Qty:         qty,
			UnitPrice:   unitPrice,
			LineTotal:   decimal.NewFromInt(int64(qty)).Mul(unitPrice),
		})
		items = append(items, pricing.LineItem{Qty: qty, UnitPrice: unitPrice})
	}

	totals := pricing.OrderTotals(items, channel, settings.IFoodFeePercent)
	preview.GrossAmount = totals.GrossAmount
	preview.PlatformFees = totals.PlatformFees
	preview.NetAmount = totals.NetAmount
	preview.ItemCount = totals.ItemCount

	return preview, nil
}

// SubmitRequest is a daily sales entry submission.
type SubmitRequest struct {
	Date       string         `json:"date" binding:"required"`
	Channel    models.Channel `json:"channel" binding:"required"`
	Quantities map[string]int `json:"quantities" binding:"required"`
	Notes      string         `json:"notes"`
}

// Submit prices the grid and posts the resulting order to the backend.
// Submissions with no positive-quantity line are rejected.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*models.SaleOrder, error) {
	if _, err := time.Parse(models.DateLayout, req.Date); err != nil {
		return nil, fmt.Errorf("sales: invalid date %q: %w", req.Date, err)
	}

	preview, err := s.BuildPreview(ctx, req.Channel, req.Quantities)
	if err != nil {
		return nil, err
	}
	if preview.ItemCount == 0 {
		return nil, ErrEmptyOrder
	}

	orderReq := models.CreateSaleOrderRequest{
		Date:    req.Date,
		Channel: req.Channel,
		Notes:   req.Notes,
	}
	for _, line := range preview.Lines {
		orderReq.Items = append(orderReq.Items, models.CreateSaleItem{
			ProductID: line.ProductID,
			Qty:       line.Qty,
			UnitPrice: line.UnitPrice,
		})
	}

	order, err := s.api.CreateOrder(ctx, orderReq)
	if err != nil {
		return nil, err
	}

	s.logger.Info("sale order submitted",
		zap.String("order_id", order.ID),
		zap.String("channel", string(req.Channel)),
		zap.Int("items", preview.ItemCount))

	return order, nil
}
