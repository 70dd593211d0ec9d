// Package costing derives the fully loaded unit cost of producing one
// sellable unit from a product recipe. All functions are pure and keep full
// decimal precision; rounding belongs to the presentation edge.
package costing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/marianadoces/console/internal/domain/models"
)

var (
	// ErrUnknownIngredient reports a recipe line whose ingredient is not in
	// the supplied lookup set.
	ErrUnknownIngredient = errors.New("recipe references unknown ingredient")
	// ErrUnknownPackaging reports a packaging usage whose material is not in
	// the supplied lookup set.
	ErrUnknownPackaging = errors.New("recipe references unknown packaging")
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
	sixty   = decimal.NewFromInt(60)
)

// Breakdown is the unit cost of a product split by component.
type Breakdown struct {
	Ingredients decimal.Decimal
	Packaging   decimal.Decimal
	Labor       decimal.Decimal
	TotalUnit   decimal.Decimal
}

// IngredientIndex builds the ingredient lookup set the calculator consumes.
func IngredientIndex(ingredients []models.Ingredient) map[string]models.Ingredient {
	byID := make(map[string]models.Ingredient, len(ingredients))
	for _, ing := range ingredients {
		byID[ing.ID] = ing
	}
	return byID
}

// PackagingIndex builds the packaging lookup set the calculator consumes.
func PackagingIndex(items []models.Packaging) map[string]models.Packaging {
	byID := make(map[string]models.Packaging, len(items))
	for _, p := range items {
		byID[p.ID] = p
	}
	return byID
}

// LineCost prices one recipe line: qty * costPerUnit * (1 + wastePct/100).
func LineCost(qty, costPerUnit, wastePct decimal.Decimal) decimal.Decimal {
	wasteFactor := one.Add(wastePct.Div(hundred))
	return qty.Mul(costPerUnit).Mul(wasteFactor)
}

// IngredientsCost sums the waste-adjusted cost of every recipe line. A line
// referencing an ingredient missing from the lookup set is a data-integrity
// error surfaced to the caller, never silently skipped here; callers that
// tolerate dangling references filter their lines first.
func IngredientsCost(items []models.RecipeItem, byID map[string]models.Ingredient) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		ing, ok := byID[item.IngredientID]
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownIngredient, item.IngredientID)
		}
		total = total.Add(LineCost(item.Qty, ing.CostPerUnit, item.WastePct))
	}
	return total, nil
}

// PackagingCost sums qty * unitCost over every packaging usage. No waste
// factor applies to packaging.
func PackagingCost(usages []models.PackagingUsage, byID map[string]models.Packaging) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, usage := range usages {
		pack, ok := byID[usage.PackagingID]
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownPackaging, usage.PackagingID)
		}
		total = total.Add(decimal.NewFromInt(int64(usage.Qty)).Mul(pack.UnitCost))
	}
	return total, nil
}

// LaborCostPerUnit allocates batch labor across batch yield:
// (minutesPerBatch / 60) * laborRatePerHour / batchYield. A nil preset costs
// nothing. The preset must have passed Validate; batchYield is assumed
// positive here.
func LaborCostPerUnit(preset *models.LaborCostPreset) decimal.Decimal {
	if preset == nil {
		return decimal.Zero
	}
	return preset.MinutesPerBatch.Div(sixty).
		Mul(preset.LaborRatePerHour).
		Div(preset.BatchYield)
}

// UnitCost computes the full per-unit cost breakdown of a recipe.
func UnitCost(recipe models.ProductRecipe, ingredients map[string]models.Ingredient, packaging map[string]models.Packaging) (Breakdown, error) {
	if err := recipe.LaborCostPreset.Validate(); err != nil {
		return Breakdown{}, err
	}

	ingredientsCost, err := IngredientsCost(recipe.RecipeItems, ingredients)
	if err != nil {
		return Breakdown{}, err
	}

	packagingCost, err := PackagingCost(recipe.PackagingUsages, packaging)
	if err != nil {
		return Breakdown{}, err
	}

	labor := LaborCostPerUnit(recipe.LaborCostPreset)

	return Breakdown{
		Ingredients: ingredientsCost,
		Packaging:   packagingCost,
		Labor:       labor,
		TotalUnit:   ingredientsCost.Add(packagingCost).Add(labor),
	}, nil
}
