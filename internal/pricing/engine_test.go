package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/marianadoces/console/internal/domain/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestMarginValue(t *testing.T) {
	m := Margin(dec("7.70"), dec("15.00"))
	assert.True(t, m.Value.Equal(dec("7.30")), "value %s", m.Value)
	assert.True(t, m.Percent.Round(2).Equal(dec("48.67")), "percent %s", m.Percent)
}

func TestMarginZeroListedPriceHasZeroPercent(t *testing.T) {
	for _, cost := range []string{"0", "7.70", "100"} {
		m := Margin(dec(cost), decimal.Zero)
		assert.True(t, m.Percent.IsZero(), "unit cost %s produced percent %s", cost, m.Percent)
		assert.True(t, m.Value.Equal(dec(cost).Neg()))
	}
}

func TestMarginNegativeWhenPriceBelowCost(t *testing.T) {
	m := Margin(dec("10"), dec("8"))
	assert.True(t, m.Value.Equal(dec("-2")))
	assert.True(t, m.Percent.IsNegative())
}

func TestListedPriceChannelSelection(t *testing.T) {
	p := models.Product{
		ChannelBasePriceDirect: decPtr("15.00"),
		ChannelBasePriceIFood:  decPtr("18.00"),
	}
	assert.True(t, ListedPrice(p, models.ChannelDirect).Equal(dec("15.00")))
	assert.True(t, ListedPrice(p, models.ChannelIFood).Equal(dec("18.00")))
}

func TestListedPriceIFoodFallsBackToDirect(t *testing.T) {
	p := models.Product{ChannelBasePriceDirect: decPtr("15.00")}
	assert.True(t, ListedPrice(p, models.ChannelIFood).Equal(dec("15.00")))

	assert.True(t, ListedPrice(models.Product{}, models.ChannelDirect).IsZero())
	assert.True(t, ListedPrice(models.Product{}, models.ChannelIFood).IsZero())
}

func TestOrderTotalsIFoodFee(t *testing.T) {
	items := []LineItem{
		{Qty: 2, UnitPrice: dec("10")},
		{Qty: 1, UnitPrice: dec("5")},
	}

	totals := OrderTotals(items, models.ChannelIFood, dec("25"))
	assert.True(t, totals.GrossAmount.Equal(dec("25")), "gross %s", totals.GrossAmount)
	assert.True(t, totals.PlatformFees.Equal(dec("6.25")), "fees %s", totals.PlatformFees)
	assert.True(t, totals.NetAmount.Equal(dec("18.75")), "net %s", totals.NetAmount)
	assert.Equal(t, 2, totals.ItemCount)
}

func TestOrderTotalsDirectNeverCharged(t *testing.T) {
	items := []LineItem{{Qty: 4, UnitPrice: dec("12.50")}}

	for _, fee := range []string{"0", "25", "99"} {
		totals := OrderTotals(items, models.ChannelDirect, dec(fee))
		assert.True(t, totals.PlatformFees.IsZero(), "fee %s%% charged on direct channel", fee)
		assert.True(t, totals.NetAmount.Equal(totals.GrossAmount))
	}
}

func TestOrderTotalsExcludesNonPositiveQuantities(t *testing.T) {
	items := []LineItem{
		{Qty: 2, UnitPrice: dec("10")},
		{Qty: 0, UnitPrice: dec("100")},
		{Qty: -3, UnitPrice: dec("100")},
	}

	totals := OrderTotals(items, models.ChannelIFood, dec("25"))
	assert.True(t, totals.GrossAmount.Equal(dec("20")), "gross %s", totals.GrossAmount)
	assert.True(t, totals.PlatformFees.Equal(dec("5")), "fees %s", totals.PlatformFees)
	assert.True(t, totals.NetAmount.Equal(dec("15")), "net %s", totals.NetAmount)
	assert.Equal(t, 1, totals.ItemCount)
}

func TestOrderTotalsEmpty(t *testing.T) {
	totals := OrderTotals(nil, models.ChannelIFood, dec("25"))
	assert.True(t, totals.GrossAmount.IsZero())
	assert.True(t, totals.PlatformFees.IsZero())
	assert.True(t, totals.NetAmount.IsZero())
	assert.Equal(t, 0, totals.ItemCount)
}
