package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The backend API speaks plain JSON numbers for money fields.
	decimal.MarshalJSONWithoutQuotes = true
}

// Ingredient is a raw material tracked by the backend, priced per
// measurement unit.
type Ingredient struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	CostPerUnit  decimal.Decimal `json:"costPerUnit"`
	Supplier     string          `json:"supplier,omitempty"`
	Active       bool            `json:"active"`
	CurrentStock decimal.Decimal `json:"currentStock"`
	MinStock     decimal.Decimal `json:"minStock"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// CreateIngredientRequest is the payload accepted by the backend when
// registering or updating an ingredient.
type CreateIngredientRequest struct {
	Name         string           `json:"name"`
	Unit         string           `json:"unit"`
	CostPerUnit  decimal.Decimal  `json:"costPerUnit"`
	Supplier     string           `json:"supplier,omitempty"`
	CurrentStock *decimal.Decimal `json:"currentStock,omitempty"`
	MinStock     *decimal.Decimal `json:"minStock,omitempty"`
}

// Packaging is a packaging material consumed per produced unit.
type Packaging struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitCost  decimal.Decimal `json:"unitCost"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// CreatePackagingRequest is the backend payload for packaging upserts.
type CreatePackagingRequest struct {
	Name     string          `json:"name"`
	UnitCost decimal.Decimal `json:"unitCost"`
}

// Product is a sellable item with optional per-channel base prices.
type Product struct {
	ID                     string           `json:"id"`
	Name                   string           `json:"name"`
	ChannelBasePriceDirect *decimal.Decimal `json:"channelBasePriceDirect,omitempty"`
	ChannelBasePriceIFood  *decimal.Decimal `json:"channelBasePriceIFood,omitempty"`
	Active                 bool             `json:"active"`
	CreatedAt              time.Time        `json:"createdAt"`
	UpdatedAt              time.Time        `json:"updatedAt"`
	Variants               []ProductVariant `json:"variants,omitempty"`
	LaborCostPreset        *LaborCostPreset `json:"laborCostPreset,omitempty"`
}

// ProductVariant is a named variation of a product (size, flavor).
type ProductVariant struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateProductRequest is the backend payload for product upserts.
type CreateProductRequest struct {
	Name                   string           `json:"name"`
	ChannelBasePriceDirect *decimal.Decimal `json:"channelBasePriceDirect,omitempty"`
	ChannelBasePriceIFood  *decimal.Decimal `json:"channelBasePriceIFood,omitempty"`
}

// RecipeItem says a recipe consumes Qty units of an ingredient, inflated by
// WastePct. A zero WastePct means no waste.
type RecipeItem struct {
	ID           string          `json:"id,omitempty"`
	IngredientID string          `json:"ingredientId"`
	Qty          decimal.Decimal `json:"qty"`
	WastePct     decimal.Decimal `json:"wastePct,omitempty"`
	Ingredient   *Ingredient     `json:"ingredient,omitempty"`
}

// PackagingUsage says producing one unit consumes Qty packaging units.
type PackagingUsage struct {
	ID          string     `json:"id,omitempty"`
	PackagingID string     `json:"packagingId"`
	Qty         int        `json:"qty"`
	Packaging   *Packaging `json:"packaging,omitempty"`
}

// LaborCostPreset allocates the labor cost of a production batch across the
// units it yields.
type LaborCostPreset struct {
	ID               string          `json:"id,omitempty"`
	Name             string          `json:"name"`
	MinutesPerBatch  decimal.Decimal `json:"minutesPerBatch"`
	BatchYield       decimal.Decimal `json:"batchYield"`
	LaborRatePerHour decimal.Decimal `json:"laborRatePerHour"`
}

// Validate rejects presets that would make per-unit labor cost undefined or
// negative. Validation happens at the boundary; the calculator assumes a
// valid preset.
func (p *LaborCostPreset) Validate() error {
	if p == nil {
		return nil
	}
	if !p.BatchYield.IsPositive() {
		return errors.New("labor preset: batchYield must be greater than zero")
	}
	if !p.MinutesPerBatch.IsPositive() {
		return errors.New("labor preset: minutesPerBatch must be greater than zero")
	}
	if p.LaborRatePerHour.IsNegative() {
		return errors.New("labor preset: laborRatePerHour must not be negative")
	}
	return nil
}

// ProductRecipe is the full recipe of a product as served by the backend.
type ProductRecipe struct {
	RecipeItems     []RecipeItem     `json:"recipeItems"`
	PackagingUsages []PackagingUsage `json:"packagingUsages"`
	LaborCostPreset *LaborCostPreset `json:"laborCostPreset,omitempty"`
}

// UpdateRecipeRequest replaces a product recipe on the backend.
type UpdateRecipeRequest struct {
	RecipeItems []struct {
		IngredientID string          `json:"ingredientId"`
		Qty          decimal.Decimal `json:"qty"`
		WastePct     decimal.Decimal `json:"wastePct,omitempty"`
	} `json:"recipeItems"`
	PackagingUsages []struct {
		PackagingID string `json:"packagingId"`
		Qty         int    `json:"qty"`
	} `json:"packagingUsages"`
	LaborCostPreset *LaborCostPreset `json:"laborCostPreset,omitempty"`
}

// Pagination is the page envelope the backend wraps list responses in.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// Paginated is a page of backend records.
type Paginated[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}
