// Package pricing translates unit costs and channel prices into margins and
// turns sale line items into gross/fee/net order totals.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/marianadoces/console/internal/domain/models"
)

var hundred = decimal.NewFromInt(100)

// Margin computes listedPrice - unitCost and the margin as a percentage of
// the listed price. A zero listed price yields a percent of exactly 0 so
// consumers never see a division artifact.
func Margin(unitCost, listedPrice decimal.Decimal) models.Margin {
	value := listedPrice.Sub(unitCost)
	percent := decimal.Zero
	if listedPrice.IsPositive() {
		percent = value.Div(listedPrice).Mul(hundred)
	}
	return models.Margin{Value: value, Percent: percent}
}

// ListedPrice resolves the price a product is charged on a channel. The
// iFood price falls back to the direct price when unset; a product with no
// price on either channel lists at zero.
func ListedPrice(p models.Product, channel models.Channel) decimal.Decimal {
	if channel == models.ChannelIFood && p.ChannelBasePriceIFood != nil {
		return *p.ChannelBasePriceIFood
	}
	if p.ChannelBasePriceDirect != nil {
		return *p.ChannelBasePriceDirect
	}
	return decimal.Zero
}

// LineItem is one candidate order line.
type LineItem struct {
	Qty       int
	UnitPrice decimal.Decimal
}

// Totals aggregates an order under a channel fee model.
type Totals struct {
	GrossAmount  decimal.Decimal
	PlatformFees decimal.Decimal
	NetAmount    decimal.Decimal
	ItemCount    int
}

// OrderTotals aggregates line items into gross, platform fee and net
// amounts. Lines with qty <= 0 contribute to nothing, including ItemCount.
// The fee percent applies only on the iFood channel; it is an explicit
// parameter because operators tune it through system configuration.
func OrderTotals(items []LineItem, channel models.Channel, feePercent decimal.Decimal) Totals {
	gross := decimal.Zero
	count := 0
	for _, item := range items {
		if item.Qty <= 0 {
			continue
		}
		gross = gross.Add(decimal.NewFromInt(int64(item.Qty)).Mul(item.UnitPrice))
		count++
	}

	fees := decimal.Zero
	if channel == models.ChannelIFood {
		fees = gross.Mul(feePercent.Div(hundred))
	}

	return Totals{
		GrossAmount:  gross,
		PlatformFees: fees,
		NetAmount:    gross.Sub(fees),
		ItemCount:    count,
	}
}
