// Package catalog computes the product detail view: catalog data combined
// with the costing and pricing derived from it.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/marianadoces/console/internal/costing"
	"github.com/marianadoces/console/internal/domain/models"
	"github.com/marianadoces/console/internal/pricing"
	"github.com/marianadoces/console/pkg/clients/backend"
)

// BackendAPI is the slice of the backend client the catalog service needs.
type BackendAPI interface {
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	GetRecipe(ctx context.Context, productID string) (*models.ProductRecipe, error)
	ListIngredients(ctx context.Context, params backend.ListParams) (*models.Paginated[models.Ingredient], error)
}

// Service derives costing and pricing views from backend catalog data.
type Service struct {
	api    BackendAPI
	logger *zap.Logger
}

// NewService wires a catalog service instance.
func NewService(api BackendAPI, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, logger: logger}
}

// ProductDetail is the combined detail view of one product.
type ProductDetail struct {
	Product models.Product        `json:"product"`
	Recipe  models.ProductRecipe  `json:"recipe"`
	Pricing models.PricingPreview `json:"pricing"`
}

// ProductDetail fetches product, recipe and the ingredient catalog
// concurrently and derives the pricing preview. Any failed fetch aborts the
// whole view; the preview is never computed over partial data. A recipe line
// referencing an ingredient missing from the catalog aborts too: the detail
// view is strict about dangling references.
func (s *Service) ProductDetail(ctx context.Context, productID string) (*ProductDetail, error) {
	var (
		product     *models.Product
		recipe      *models.ProductRecipe
		ingredients *models.Paginated[models.Ingredient]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		product, err = s.api.GetProduct(gctx, productID)
		return err
	})
	g.Go(func() error {
		var err error
		recipe, err = s.api.GetRecipe(gctx, productID)
		return err
	})
	g.Go(func() error {
		var err error
		ingredients, err = s.api.ListIngredients(gctx, backend.ListParams{Limit: 500})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	breakdown, err := costing.UnitCost(*recipe, costing.IngredientIndex(ingredients.Data), embeddedPackaging(recipe.PackagingUsages))
	if err != nil {
		return nil, err
	}

	priceDirect := pricing.ListedPrice(*product, models.ChannelDirect)
	priceIFood := pricing.ListedPrice(*product, models.ChannelIFood)

	return &ProductDetail{
		Product: *product,
		Recipe:  *recipe,
		Pricing: models.PricingPreview{
			ProductID:            product.ID,
			ProductName:          product.Name,
			IngredientsCost:      breakdown.Ingredients,
			PackagingCost:        breakdown.Packaging,
			LaborCost:            breakdown.Labor,
			TotalUnitCost:        breakdown.TotalUnit,
			SuggestedPriceDirect: priceDirect,
			SuggestedPriceIFood:  priceIFood,
			MarginDirect:         pricing.Margin(breakdown.TotalUnit, priceDirect),
			MarginIFood:          pricing.Margin(breakdown.TotalUnit, priceIFood),
		},
	}, nil
}

// ErrInvalidDraft reports a draft recipe line with values the calculator
// must never see.
var ErrInvalidDraft = errors.New("catalog: invalid draft recipe line")

var hundred = decimal.NewFromInt(100)

// DraftLine is one line of a recipe being edited.
type DraftLine struct {
	IngredientID string          `json:"ingredientId" binding:"required"`
	Qty          decimal.Decimal `json:"qty" binding:"required"`
	WastePct     decimal.Decimal `json:"wastePct"`
}

// Validate rejects quantities and waste percentages outside the costing
// domain. The calculator assumes validated input; this is the boundary.
func (l DraftLine) Validate() error {
	if !l.Qty.IsPositive() {
		return fmt.Errorf("%w: qty must be greater than zero", ErrInvalidDraft)
	}
	if l.WastePct.IsNegative() || l.WastePct.GreaterThan(hundred) {
		return fmt.Errorf("%w: wastePct must be between 0 and 100", ErrInvalidDraft)
	}
	return nil
}

// CostLine is the costed version of a draft line.
type CostLine struct {
	IngredientID   string          `json:"ingredientId"`
	IngredientName string          `json:"ingredientName"`
	Unit           string          `json:"unit"`
	Qty            decimal.Decimal `json:"qty"`
	CostPerUnit    decimal.Decimal `json:"costPerUnit"`
	WastePct       decimal.Decimal `json:"wastePct"`
	LineCost       decimal.Decimal `json:"lineCost"`
}

// CostAnalysis is the recipe editor's cost preview.
type CostAnalysis struct {
	Lines      []CostLine      `json:"lines"`
	TotalCost  decimal.Decimal `json:"totalCost"`
	SkippedIDs []string        `json:"skippedIds,omitempty"`
}

// CostPreview prices a draft recipe against the current ingredient catalog.
// Lines with out-of-domain values are rejected outright; lines referencing
// unknown ingredients are skipped and reported in SkippedIDs so the editor
// can surface them instead of dropping them silently.
func (s *Service) CostPreview(ctx context.Context, lines []DraftLine) (*CostAnalysis, error) {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}

	page, err := s.api.ListIngredients(ctx, backend.ListParams{Limit: 500})
	if err != nil {
		return nil, err
	}
	byID := costing.IngredientIndex(page.Data)

	analysis := &CostAnalysis{TotalCost: decimal.Zero}
	for _, line := range lines {
		ing, ok := byID[line.IngredientID]
		if !ok {
			analysis.SkippedIDs = append(analysis.SkippedIDs, line.IngredientID)
			continue
		}
		lineCost := costing.LineCost(line.Qty, ing.CostPerUnit, line.WastePct)
		analysis.Lines = append(analysis.Lines, CostLine{
			IngredientID:   ing.ID,
			IngredientName: ing.Name,
			Unit:           ing.Unit,
			Qty:            line.Qty,
			CostPerUnit:    ing.CostPerUnit,
			WastePct:       line.WastePct,
			LineCost:       lineCost,
		})
		analysis.TotalCost = analysis.TotalCost.Add(lineCost)
	}

	if len(analysis.SkippedIDs) > 0 {
		s.logger.Warn("cost preview skipped unknown ingredients",
			zap.Strings("ingredient_ids", analysis.SkippedIDs))
	}

	return analysis, nil
}

func embeddedPackaging(usages []models.PackagingUsage) map[string]models.Packaging {
	byID := make(map[string]models.Packaging, len(usages))
	for _, usage := range usages {
		if usage.Packaging != nil {
			byID[usage.PackagingID] = *usage.Packaging
		}
	}
	return byID
}
