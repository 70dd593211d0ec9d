package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Channel identifies the sales outlet an order was taken on.
type Channel string

const (
	// ChannelDirect is direct-to-customer sale, no platform fee.
	ChannelDirect Channel = "DIRECT"
	// ChannelIFood is marketplace sale subject to a percentage platform fee.
	ChannelIFood Channel = "IFOOD"
)

// Validate rejects channel tags the backend does not know.
func (c Channel) Validate() error {
	switch c {
	case ChannelDirect, ChannelIFood:
		return nil
	default:
		return fmt.Errorf("unknown sales channel %q", string(c))
	}
}

// DateLayout is the calendar-date format used by sale orders and report
// ranges.
const DateLayout = "2006-01-02"

// SaleOrder is a sale transaction on a given date and channel.
type SaleOrder struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Channel       Channel         `json:"channel"`
	GrossAmount   decimal.Decimal `json:"grossAmount"`
	Discounts     decimal.Decimal `json:"discounts"`
	PlatformFees  decimal.Decimal `json:"platformFees"`
	Costs         decimal.Decimal `json:"costs"`
	NetAmount     decimal.Decimal `json:"netAmount"`
	Notes         string          `json:"notes,omitempty"`
	CustomerName  string          `json:"customerName,omitempty"`
	CustomerPhone string          `json:"customerPhone,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	Items         []SaleItem      `json:"items"`
}

// SaleItem is one order line.
type SaleItem struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"productId,omitempty"`
	VariantID    string          `json:"variantId,omitempty"`
	Qty          int             `json:"qty"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	LineGross    decimal.Decimal `json:"lineGross"`
	LineDiscount decimal.Decimal `json:"lineDiscount"`
	LineNet      decimal.Decimal `json:"lineNet"`
	Product      *NamedRef       `json:"product,omitempty"`
	Variant      *NamedRef       `json:"variant,omitempty"`
}

// NamedRef is a shallow reference to a related record.
type NamedRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateSaleItem is one line of an order submission.
type CreateSaleItem struct {
	ProductID string          `json:"productId,omitempty"`
	VariantID string          `json:"variantId,omitempty"`
	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// CreateSaleOrderRequest submits a sale to the backend.
type CreateSaleOrderRequest struct {
	Date          string           `json:"date"`
	Channel       Channel          `json:"channel"`
	Items         []CreateSaleItem `json:"items"`
	Discounts     *decimal.Decimal `json:"discounts,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	CustomerName  string           `json:"customerName,omitempty"`
	CustomerPhone string           `json:"customerPhone,omitempty"`
}

// StockMovementType classifies a stock movement.
type StockMovementType string

const (
	StockIn         StockMovementType = "IN"
	StockOut        StockMovementType = "OUT"
	StockAdjustment StockMovementType = "ADJUSTMENT"
)

// StockMovement is an inventory entry, exit or correction for an ingredient.
type StockMovement struct {
	ID           string            `json:"id"`
	IngredientID string            `json:"ingredientId"`
	Type         StockMovementType `json:"type"`
	Quantity     decimal.Decimal   `json:"quantity"`
	Reason       string            `json:"reason"`
	Notes        string            `json:"notes,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	Ingredient   *IngredientRef    `json:"ingredient,omitempty"`
}

// IngredientRef is a shallow ingredient reference carried by movements.
type IngredientRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// CreateStockMovementRequest registers a stock movement on the backend.
type CreateStockMovementRequest struct {
	IngredientID string            `json:"ingredientId"`
	Type         StockMovementType `json:"type"`
	Quantity     decimal.Decimal   `json:"quantity"`
	Reason       string            `json:"reason"`
	Notes        string            `json:"notes,omitempty"`
}
