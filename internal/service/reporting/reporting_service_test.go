package reporting

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marianadoces/console/internal/domain/models"
	"github.com/marianadoces/console/pkg/clients/backend"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type stubAPI struct {
	orderPages      [][]models.SaleOrder
	ingredientPages [][]models.Ingredient
	recipes         map[string]*models.ProductRecipe
}

func (s *stubAPI) ListOrders(_ context.Context, params backend.OrderParams) (*models.Paginated[models.SaleOrder], error) {
	return pageOf(s.orderPages, params.Page), nil
}

func (s *stubAPI) ListIngredients(_ context.Context, params backend.ListParams) (*models.Paginated[models.Ingredient], error) {
	return pageOf(s.ingredientPages, params.Page), nil
}

func (s *stubAPI) GetRecipe(_ context.Context, productID string) (*models.ProductRecipe, error) {
	recipe, ok := s.recipes[productID]
	if !ok {
		return nil, backend.ErrNotFound
	}
	return recipe, nil
}

func pageOf[T any](pages [][]T, page int) *models.Paginated[T] {
	if page < 1 {
		page = 1
	}
	total := 0
	for _, p := range pages {
		total += len(p)
	}
	out := &models.Paginated[T]{
		Pagination: models.Pagination{Page: page, Limit: 100, Total: total, Pages: len(pages)},
	}
	if page <= len(pages) {
		out.Data = pages[page-1]
	}
	return out
}

func order(date string, channel models.Channel, gross, fees, net string, items ...models.SaleItem) models.SaleOrder {
	return models.SaleOrder{
		Date:         date,
		Channel:      channel,
		GrossAmount:  dec(gross),
		PlatformFees: dec(fees),
		NetAmount:    dec(net),
		Items:        items,
	}
}

func TestSalesSummaryAggregatesAcrossPages(t *testing.T) {
	api := &stubAPI{orderPages: [][]models.SaleOrder{
		{order("2026-08-01", models.ChannelDirect, "100", "0", "100")},
		{order("2026-08-02", models.ChannelIFood, "40", "10", "30")},
	}}
	svc := NewService(api, nil)

	summary, err := svc.SalesSummary(context.Background(), "2026-08-01", "2026-08-31", nil)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.OrderCount)
	assert.True(t, summary.GrossRevenue.Equal(dec("140")), "gross %s", summary.GrossRevenue)
	assert.True(t, summary.PlatformFees.Equal(dec("10")))
	assert.True(t, summary.NetRevenue.Equal(dec("130")))
	assert.True(t, summary.AvgOrderValue.Equal(dec("70")), "avg %s", summary.AvgOrderValue)
	assert.Equal(t, "2026-08-01", summary.Period.From)
}

func TestSalesSummaryEmptyPeriod(t *testing.T) {
	svc := NewService(&stubAPI{orderPages: [][]models.SaleOrder{{}}}, nil)

	summary, err := svc.SalesSummary(context.Background(), "2026-08-01", "2026-08-31", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.OrderCount)
	assert.True(t, summary.AvgOrderValue.IsZero())
}

func TestProductSalesGroupsAndCosts(t *testing.T) {
	leite := models.Ingredient{ID: "leite-condensado", CostPerUnit: dec("2")}
	api := &stubAPI{
		orderPages: [][]models.SaleOrder{{
			order("2026-08-01", models.ChannelDirect, "35", "0", "35",
				models.SaleItem{ProductID: "brigadeiro", Qty: 2, UnitPrice: dec("10"), Product: &models.NamedRef{ID: "brigadeiro", Name: "Brigadeiro"}},
				models.SaleItem{ProductID: "beijinho", Qty: 3, UnitPrice: dec("5"), Product: &models.NamedRef{ID: "beijinho", Name: "Beijinho"}},
			),
			order("2026-08-02", models.ChannelDirect, "10", "0", "10",
				models.SaleItem{ProductID: "brigadeiro", Qty: 1, UnitPrice: dec("10")},
			),
		}},
		recipes: map[string]*models.ProductRecipe{
			"brigadeiro": {
				RecipeItems: []models.RecipeItem{
					{IngredientID: "leite-condensado", Qty: dec("2"), Ingredient: &leite},
				},
			},
		},
	}
	svc := NewService(api, nil)

	reports, err := svc.ProductSales(context.Background(), "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	require.Len(t, reports, 2)

	// Sorted by revenue, highest first.
	top := reports[0]
	assert.Equal(t, "brigadeiro", top.ProductID)
	assert.Equal(t, "Brigadeiro", top.ProductName)
	assert.Equal(t, 3, top.QuantitySold)
	assert.True(t, top.Revenue.Equal(dec("30")))
	assert.True(t, top.Costs.Equal(dec("12")), "costs %s", top.Costs)
	assert.True(t, top.Profit.Equal(dec("18")))
	assert.True(t, top.MarginPercent.Equal(dec("60")), "margin %s", top.MarginPercent)

	// No recipe on the backend: cost reported as zero, not an error.
	second := reports[1]
	assert.Equal(t, "beijinho", second.ProductID)
	assert.True(t, second.Costs.IsZero())
	assert.True(t, second.Profit.Equal(second.Revenue))
}

func TestStockReportFlagsLowStock(t *testing.T) {
	api := &stubAPI{ingredientPages: [][]models.Ingredient{{
		{ID: "acucar", Name: "Açúcar", Unit: "kg", Active: true, CostPerUnit: dec("4"), CurrentStock: dec("10"), MinStock: dec("2")},
		{ID: "cacau", Name: "Cacau em pó", Unit: "kg", Active: true, CostPerUnit: dec("30"), CurrentStock: dec("1"), MinStock: dec("2")},
		{ID: "antigo", Name: "Descontinuado", Unit: "kg", Active: false, CostPerUnit: dec("99"), CurrentStock: dec("5")},
	}}}
	svc := NewService(api, nil)

	report, err := svc.StockReport(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Lines, 2, "inactive ingredients stay out of the report")
	assert.Equal(t, models.StockStatusOK, report.Lines[0].Status)
	assert.Equal(t, models.StockStatusLow, report.Lines[1].Status)
	assert.Equal(t, 1, report.LowCount)
	assert.True(t, report.TotalValue.Equal(dec("70")), "total %s", report.TotalValue)
}

func TestExportSalesCSV(t *testing.T) {
	api := &stubAPI{orderPages: [][]models.SaleOrder{{
		order("2026-08-01", models.ChannelIFood, "25", "6.25", "18.75",
			models.SaleItem{ProductID: "brigadeiro", Qty: 2, UnitPrice: dec("10")},
			models.SaleItem{ProductID: "beijinho", Qty: 1, UnitPrice: dec("5")},
		),
	}}}
	svc := NewService(api, nil)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportSalesCSV(context.Background(), &buf, "2026-08-01", "2026-08-01"))

	want := "date,channel,items,gross_amount,discounts,platform_fees,net_amount\n" +
		"2026-08-01,IFOOD,2,25.00,0.00,6.25,18.75\n"
	assert.Equal(t, want, buf.String())
}

func TestExportStockCSVHeader(t *testing.T) {
	api := &stubAPI{ingredientPages: [][]models.Ingredient{{
		{ID: "acucar", Name: "Açúcar", Unit: "kg", Active: true, CostPerUnit: dec("4"), CurrentStock: dec("10"), MinStock: dec("2")},
	}}}
	svc := NewService(api, nil)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportStockCSV(context.Background(), &buf))

	want := "ingredient,unit,current_stock,min_stock,cost_per_unit,stock_value,status\n" +
		"Açúcar,kg,10,2,4.00,40.00,OK\n"
	assert.Equal(t, want, buf.String())
}

func TestDailySummarySplitsChannels(t *testing.T) {
	api := &stubAPI{orderPages: [][]models.SaleOrder{{
		order("2026-08-29", models.ChannelDirect, "100.555", "0", "100.555"),
		order("2026-08-29", models.ChannelIFood, "40", "10", "30"),
	}}}
	svc := NewService(api, nil)

	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	day := time.Date(2026, 8, 29, 15, 30, 0, 0, loc)
	summary, err := svc.DailySummary(context.Background(), day)
	require.NoError(t, err)

	// Archived date is midnight of the same calendar day in the run's zone.
	assert.True(t, summary.Date.Equal(time.Date(2026, 8, 29, 0, 0, 0, 0, loc)), "date %s", summary.Date)
	assert.Equal(t, 2, summary.OrderCount)
	assert.InDelta(t, 140.56, summary.GrossRevenue, 0.001)
	assert.InDelta(t, 10, summary.PlatformFees, 0.001)
	assert.InDelta(t, 130.56, summary.NetRevenue, 0.001)
	assert.InDelta(t, 100.56, summary.DirectRevenue, 0.001)
	assert.InDelta(t, 40, summary.IFoodRevenue, 0.001)
}
