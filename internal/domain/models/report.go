package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportPeriod bounds a report by calendar dates, inclusive.
type ReportPeriod struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ReportSummary aggregates sale orders over a period, optionally restricted
// to one channel.
type ReportSummary struct {
	Period        ReportPeriod    `json:"period"`
	Channel       *Channel        `json:"channel,omitempty"`
	GrossRevenue  decimal.Decimal `json:"grossRevenue"`
	Discounts     decimal.Decimal `json:"discounts"`
	PlatformFees  decimal.Decimal `json:"platformFees"`
	Costs         decimal.Decimal `json:"costs"`
	NetRevenue    decimal.Decimal `json:"netRevenue"`
	OrderCount    int             `json:"orderCount"`
	AvgOrderValue decimal.Decimal `json:"avgOrderValue"`
}

// ProductReport is the sales performance of one product over a period.
type ProductReport struct {
	ProductID     string          `json:"productId"`
	ProductName   string          `json:"productName"`
	QuantitySold  int             `json:"quantitySold"`
	Revenue       decimal.Decimal `json:"revenue"`
	Costs         decimal.Decimal `json:"costs"`
	Profit        decimal.Decimal `json:"profit"`
	MarginPercent decimal.Decimal `json:"marginPercent"`
}

// Stock status labels used by the stock report.
const (
	StockStatusLow = "LOW"
	StockStatusOK  = "OK"
)

// StockLine is one ingredient's valuation in the stock report.
type StockLine struct {
	IngredientID string          `json:"ingredientId"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	CurrentStock decimal.Decimal `json:"currentStock"`
	MinStock     decimal.Decimal `json:"minStock"`
	CostPerUnit  decimal.Decimal `json:"costPerUnit"`
	StockValue   decimal.Decimal `json:"stockValue"`
	Status       string          `json:"status"`
}

// StockReport values the whole ingredient inventory at cost.
type StockReport struct {
	Lines       []StockLine     `json:"lines"`
	TotalValue  decimal.Decimal `json:"totalValue"`
	LowCount    int             `json:"lowCount"`
	GeneratedAt time.Time       `json:"generatedAt"`
}

// DailySummary is the archived snapshot of one day of sales. Values are
// rounded to 2 decimal places before archiving; the live report types keep
// full precision.
type DailySummary struct {
	Date          time.Time `bson:"date" json:"date"`
	OrderCount    int       `bson:"order_count" json:"orderCount"`
	GrossRevenue  float64   `bson:"gross_revenue" json:"grossRevenue"`
	PlatformFees  float64   `bson:"platform_fees" json:"platformFees"`
	NetRevenue    float64   `bson:"net_revenue" json:"netRevenue"`
	DirectRevenue float64   `bson:"direct_revenue" json:"directRevenue"`
	IFoodRevenue  float64   `bson:"ifood_revenue" json:"ifoodRevenue"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

// Margin is the spread between a listed price and the unit cost, as an
// absolute value and as a percentage of the listed price.
type Margin struct {
	Value   decimal.Decimal `json:"value"`
	Percent decimal.Decimal `json:"percent"`
}

// PricingPreview is the computed costing/pricing view of one product.
type PricingPreview struct {
	ProductID            string          `json:"productId"`
	ProductName          string          `json:"productName"`
	IngredientsCost      decimal.Decimal `json:"ingredientsCost"`
	PackagingCost        decimal.Decimal `json:"packagingCost"`
	LaborCost            decimal.Decimal `json:"laborCost"`
	TotalUnitCost        decimal.Decimal `json:"totalUnitCost"`
	SuggestedPriceDirect decimal.Decimal `json:"suggestedPriceDirect"`
	SuggestedPriceIFood  decimal.Decimal `json:"suggestedPriceIFood"`
	MarginDirect         Margin          `json:"marginDirect"`
	MarginIFood          Margin          `json:"marginIFood"`
}
