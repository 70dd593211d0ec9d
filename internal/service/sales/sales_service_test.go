package sales

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marianadoces/console/internal/domain/models"
	"github.com/marianadoces/console/pkg/clients/backend"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

type stubAPI struct {
	products    []models.Product
	settings    models.Settings
	settingsErr error
	created     *models.CreateSaleOrderRequest
	createErr   error
}

func (s *stubAPI) ListProducts(_ context.Context, _ backend.ListParams) (*models.Paginated[models.Product], error) {
	return &models.Paginated[models.Product]{
		Data:       s.products,
		Pagination: models.Pagination{Page: 1, Limit: 100, Total: len(s.products), Pages: 1},
	}, nil
}

func (s *stubAPI) GetSettings(_ context.Context) (models.Settings, error) {
	if s.settingsErr != nil {
		return models.Settings{}, s.settingsErr
	}
	return s.settings, nil
}

func (s *stubAPI) CreateOrder(_ context.Context, req models.CreateSaleOrderRequest) (*models.SaleOrder, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = &req
	return &models.SaleOrder{ID: "ord-1", Date: req.Date, Channel: req.Channel}, nil
}

func testProducts() []models.Product {
	return []models.Product{
		{ID: "brigadeiro", Name: "Brigadeiro", Active: true, ChannelBasePriceDirect: decPtr("10")},
		{ID: "beijinho", Name: "Beijinho", Active: true, ChannelBasePriceDirect: decPtr("5")},
		{ID: "bolo", Name: "Bolo de pote", Active: false, ChannelBasePriceDirect: decPtr("12")},
	}
}

func TestBuildPreviewIFoodTotals(t *testing.T) {
	api := &stubAPI{products: testProducts(), settings: models.DefaultSettings()}
	svc := NewService(api, nil)

	preview, err := svc.BuildPreview(context.Background(), models.ChannelIFood, map[string]int{
		"brigadeiro": 2,
		"beijinho":   1,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, preview.ItemCount)
	assert.True(t, preview.GrossAmount.Equal(dec("25")), "gross %s", preview.GrossAmount)
	assert.True(t, preview.PlatformFees.Equal(dec("6.25")), "fees %s", preview.PlatformFees)
	assert.True(t, preview.NetAmount.Equal(dec("18.75")), "net %s", preview.NetAmount)
}

func TestBuildPreviewSkipsUnknownInactiveAndZeroQty(t *testing.T) {
	api := &stubAPI{products: testProducts(), settings: models.DefaultSettings()}
	svc := NewService(api, nil)

	preview, err := svc.BuildPreview(context.Background(), models.ChannelDirect, map[string]int{
		"brigadeiro": 2,
		"bolo":       5, // inactive
		"fantasma":   3, // unknown product
		"beijinho":   0, // zero quantity
	})
	require.NoError(t, err)

	require.Len(t, preview.Lines, 1)
	assert.Equal(t, "brigadeiro", preview.Lines[0].ProductID)
	assert.Equal(t, 1, preview.ItemCount)
	assert.True(t, preview.GrossAmount.Equal(dec("20")))
	assert.True(t, preview.PlatformFees.IsZero())
}

func TestBuildPreviewIFoodPriceFallsBackToDirect(t *testing.T) {
	api := &stubAPI{products: testProducts(), settings: models.DefaultSettings()}
	svc := NewService(api, nil)

	preview, err := svc.BuildPreview(context.Background(), models.ChannelIFood, map[string]int{"brigadeiro": 1})
	require.NoError(t, err)

	require.Len(t, preview.Lines, 1)
	assert.True(t, preview.Lines[0].UnitPrice.Equal(dec("10")), "price %s", preview.Lines[0].UnitPrice)
}

func TestBuildPreviewUsesConfiguredFee(t *testing.T) {
	api := &stubAPI{
		products: testProducts(),
		settings: models.Settings{IFoodFeePercent: dec("30")},
	}
	svc := NewService(api, nil)

	preview, err := svc.BuildPreview(context.Background(), models.ChannelIFood, map[string]int{"brigadeiro": 1})
	require.NoError(t, err)
	assert.True(t, preview.PlatformFees.Equal(dec("3")), "fees %s", preview.PlatformFees)
}

func TestBuildPreviewDefaultsFeeWhenSettingsUnreachable(t *testing.T) {
	api := &stubAPI{products: testProducts(), settingsErr: errors.New("config down")}
	svc := NewService(api, nil)

	preview, err := svc.BuildPreview(context.Background(), models.ChannelIFood, map[string]int{"brigadeiro": 1})
	require.NoError(t, err)
	assert.True(t, preview.PlatformFees.Equal(dec("2.5")), "fees %s", preview.PlatformFees)
}

func TestBuildPreviewRejectsUnknownChannel(t *testing.T) {
	svc := NewService(&stubAPI{}, nil)
	_, err := svc.BuildPreview(context.Background(), models.Channel("UBER"), nil)
	require.Error(t, err)
}

func TestSubmitRejectsEmptyCart(t *testing.T) {
	api := &stubAPI{products: testProducts(), settings: models.DefaultSettings()}
	svc := NewService(api, nil)

	_, err := svc.Submit(context.Background(), SubmitRequest{
		Date:       "2026-08-29",
		Channel:    models.ChannelDirect,
		Quantities: map[string]int{"brigadeiro": 0},
	})
	require.ErrorIs(t, err, ErrEmptyOrder)
	assert.Nil(t, api.created)
}

func TestSubmitRejectsBadDate(t *testing.T) {
	svc := NewService(&stubAPI{}, nil)

	_, err := svc.Submit(context.Background(), SubmitRequest{
		Date:       "29/08/2026",
		Channel:    models.ChannelDirect,
		Quantities: map[string]int{"brigadeiro": 1},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}

func TestSubmitBuildsOrderRequest(t *testing.T) {
	api := &stubAPI{products: testProducts(), settings: models.DefaultSettings()}
	svc := NewService(api, nil)

	order, err := svc.Submit(context.Background(), SubmitRequest{
		Date:       "2026-08-29",
		Channel:    models.ChannelIFood,
		Quantities: map[string]int{"brigadeiro": 2, "beijinho": 1},
		Notes:      "entrega às 18h",
	})
	require.NoError(t, err)
	assert.Equal(t, "ord-1", order.ID)

	require.NotNil(t, api.created)
	assert.Equal(t, "2026-08-29", api.created.Date)
	assert.Equal(t, models.ChannelIFood, api.created.Channel)
	assert.Equal(t, "entrega às 18h", api.created.Notes)
	require.Len(t, api.created.Items, 2)
	for _, item := range api.created.Items {
		assert.Positive(t, item.Qty)
		assert.False(t, item.UnitPrice.IsZero())
	}
}
