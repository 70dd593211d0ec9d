// Package reporting aggregates backend sales and inventory data into the
// console's report views: period summaries, per-product performance, stock
// valuation and CSV exports.
package reporting

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/marianadoces/console/internal/costing"
	"github.com/marianadoces/console/internal/domain/models"
	"github.com/marianadoces/console/pkg/clients/backend"
)

const pageLimit = 100

var hundred = decimal.NewFromInt(100)

// BackendAPI is the slice of the backend client the reporting service needs.
type BackendAPI interface {
	ListOrders(ctx context.Context, params backend.OrderParams) (*models.Paginated[models.SaleOrder], error)
	ListIngredients(ctx context.Context, params backend.ListParams) (*models.Paginated[models.Ingredient], error)
	GetRecipe(ctx context.Context, productID string) (*models.ProductRecipe, error)
}

// Service builds report views from backend data.
type Service struct {
	api    BackendAPI
	logger *zap.Logger
}

// NewService wires a reporting service instance.
func NewService(api BackendAPI, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, logger: logger}
}

// collectOrders walks every page of orders matching the filter.
func (s *Service) collectOrders(ctx context.Context, from, to string, channel *models.Channel) ([]models.SaleOrder, error) {
	params := backend.OrderParams{Limit: pageLimit, DateFrom: from, DateTo: to}
	if channel != nil {
		params.Channel = *channel
	}

	var orders []models.SaleOrder
	for page := 1; ; page++ {
		params.Page = page
		resp, err := s.api.ListOrders(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("list orders page %d: %w", page, err)
		}
		orders = append(orders, resp.Data...)
		if page >= resp.Pagination.Pages || len(resp.Data) == 0 {
			break
		}
	}
	return orders, nil
}

// SalesSummary aggregates orders over an inclusive date range, optionally
// restricted to one channel.
func (s *Service) SalesSummary(ctx context.Context, from, to string, channel *models.Channel) (*models.ReportSummary, error) {
	orders, err := s.collectOrders(ctx, from, to, channel)
	if err != nil {
		return nil, err
	}

	summary := &models.ReportSummary{
		Period:  models.ReportPeriod{From: from, To: to},
		Channel: channel,
	}
	for _, order := range orders {
		summary.GrossRevenue = summary.GrossRevenue.Add(order.GrossAmount)
		summary.Discounts = summary.Discounts.Add(order.Discounts)
		summary.PlatformFees = summary.PlatformFees.Add(order.PlatformFees)
		summary.Costs = summary.Costs.Add(order.Costs)
		summary.NetRevenue = summary.NetRevenue.Add(order.NetAmount)
		summary.OrderCount++
	}
	if summary.OrderCount > 0 {
		summary.AvgOrderValue = summary.GrossRevenue.Div(decimal.NewFromInt(int64(summary.OrderCount)))
	}

	return summary, nil
}

// ProductSales breaks period revenue down by product. Unit costs come from
// each product's recipe; products without a recipe report zero cost rather
// than failing the whole report.
func (s *Service) ProductSales(ctx context.Context, from, to string) ([]models.ProductReport, error) {
	orders, err := s.collectOrders(ctx, from, to, nil)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		name    string
		qty     int
		revenue decimal.Decimal
	}
	buckets := map[string]*bucket{}
	for _, order := range orders {
		for _, item := range order.Items {
			if item.ProductID == "" || item.Qty <= 0 {
				continue
			}
			b, ok := buckets[item.ProductID]
			if !ok {
				b = &bucket{}
				if item.Product != nil {
					b.name = item.Product.Name
				}
				buckets[item.ProductID] = b
			}
			b.qty += item.Qty
			b.revenue = b.revenue.Add(decimal.NewFromInt(int64(item.Qty)).Mul(item.UnitPrice))
		}
	}

	reports := make([]models.ProductReport, 0, len(buckets))
	for productID, b := range buckets {
		unitCost := s.unitCost(ctx, productID)
		costs := unitCost.Mul(decimal.NewFromInt(int64(b.qty)))
		profit := b.revenue.Sub(costs)
		report := models.ProductReport{
			ProductID:     productID,
			ProductName:   b.name,
			QuantitySold:  b.qty,
			Revenue:       b.revenue,
			Costs:         costs,
			Profit:        profit,
			MarginPercent: decimal.Zero,
		}
		if b.revenue.IsPositive() {
			report.MarginPercent = profit.Div(b.revenue).Mul(hundred)
		}
		reports = append(reports, report)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Revenue.GreaterThan(reports[j].Revenue)
	})
	return reports, nil
}

// unitCost resolves a product's recipe into a unit cost, zero when the
// recipe is missing or unresolvable.
func (s *Service) unitCost(ctx context.Context, productID string) decimal.Decimal {
	recipe, err := s.api.GetRecipe(ctx, productID)
	if err != nil {
		if !errors.Is(err, backend.ErrNotFound) {
			s.logger.Warn("recipe lookup failed, assuming zero cost",
				zap.String("product_id", productID), zap.Error(err))
		}
		return decimal.Zero
	}

	byIngredient := map[string]models.Ingredient{}
	for _, item := range recipe.RecipeItems {
		if item.Ingredient != nil {
			byIngredient[item.IngredientID] = *item.Ingredient
		}
	}
	byPackaging := map[string]models.Packaging{}
	for _, usage := range recipe.PackagingUsages {
		if usage.Packaging != nil {
			byPackaging[usage.PackagingID] = *usage.Packaging
		}
	}

	breakdown, err := costing.UnitCost(*recipe, byIngredient, byPackaging)
	if err != nil {
		s.logger.Warn("recipe costing failed, assuming zero cost",
			zap.String("product_id", productID), zap.Error(err))
		return decimal.Zero
	}
	return breakdown.TotalUnit
}

// StockReport values the ingredient inventory at cost and flags low stock.
func (s *Service) StockReport(ctx context.Context) (*models.StockReport, error) {
	report := &models.StockReport{GeneratedAt: time.Now()}

	for page := 1; ; page++ {
		resp, err := s.api.ListIngredients(ctx, backend.ListParams{Page: page, Limit: pageLimit})
		if err != nil {
			return nil, fmt.Errorf("list ingredients page %d: %w", page, err)
		}
		for _, ing := range resp.Data {
			if !ing.Active {
				continue
			}
			line := models.StockLine{
				IngredientID: ing.ID,
				Name:         ing.Name,
				Unit:         ing.Unit,
				CurrentStock: ing.CurrentStock,
				MinStock:     ing.MinStock,
				CostPerUnit:  ing.CostPerUnit,
				StockValue:   ing.CurrentStock.Mul(ing.CostPerUnit),
				Status:       models.StockStatusOK,
			}
			if ing.CurrentStock.LessThanOrEqual(ing.MinStock) {
				line.Status = models.StockStatusLow
				report.LowCount++
			}
			report.Lines = append(report.Lines, line)
			report.TotalValue = report.TotalValue.Add(line.StockValue)
		}
		if page >= resp.Pagination.Pages || len(resp.Data) == 0 {
			break
		}
	}

	return report, nil
}

// ExportSalesCSV streams the period's orders as CSV, one row per order.
func (s *Service) ExportSalesCSV(ctx context.Context, w io.Writer, from, to string) error {
	orders, err := s.collectOrders(ctx, from, to, nil)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "channel", "items", "gross_amount", "discounts", "platform_fees", "net_amount"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, order := range orders {
		row := []string{
			order.Date,
			string(order.Channel),
			fmt.Sprintf("%d", len(order.Items)),
			order.GrossAmount.StringFixed(2),
			order.Discounts.StringFixed(2),
			order.PlatformFees.StringFixed(2),
			order.NetAmount.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportStockCSV streams the current stock report as CSV.
func (s *Service) ExportStockCSV(ctx context.Context, w io.Writer) error {
	report, err := s.StockReport(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ingredient", "unit", "current_stock", "min_stock", "cost_per_unit", "stock_value", "status"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, line := range report.Lines {
		row := []string{
			line.Name,
			line.Unit,
			line.CurrentStock.String(),
			line.MinStock.String(),
			line.CostPerUnit.StringFixed(2),
			line.StockValue.StringFixed(2),
			line.Status,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// DailySummary aggregates one calendar day of sales into the archive
// snapshot written by the scheduler. Archived values are rounded to 2
// decimal places.
func (s *Service) DailySummary(ctx context.Context, date time.Time) (*models.DailySummary, error) {
	day := date.Format(models.DateLayout)
	orders, err := s.collectOrders(ctx, day, day, nil)
	if err != nil {
		return nil, err
	}

	gross, fees, net := decimal.Zero, decimal.Zero, decimal.Zero
	direct, ifood := decimal.Zero, decimal.Zero
	for _, order := range orders {
		gross = gross.Add(order.GrossAmount)
		fees = fees.Add(order.PlatformFees)
		net = net.Add(order.NetAmount)
		switch order.Channel {
		case models.ChannelDirect:
			direct = direct.Add(order.GrossAmount)
		case models.ChannelIFood:
			ifood = ifood.Add(order.GrossAmount)
		}
	}

	year, month, dom := date.Date()
	return &models.DailySummary{
		Date:          time.Date(year, month, dom, 0, 0, 0, 0, date.Location()),
		OrderCount:    len(orders),
		GrossRevenue:  gross.Round(2).InexactFloat64(),
		PlatformFees:  fees.Round(2).InexactFloat64(),
		NetRevenue:    net.Round(2).InexactFloat64(),
		DirectRevenue: direct.Round(2).InexactFloat64(),
		IFoodRevenue:  ifood.Round(2).InexactFloat64(),
		CreatedAt:     time.Now(),
	}, nil
}
