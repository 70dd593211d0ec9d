package backend

import (
	"context"
	"strconv"

	"github.com/marianadoces/console/internal/domain/models"
)

// ListParams control pagination and search on backend list endpoints.
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

func (p ListParams) query() map[string]string {
	q := map[string]string{}
	if p.Page > 0 {
		q["page"] = strconv.Itoa(p.Page)
	}
	if p.Limit > 0 {
		q["limit"] = strconv.Itoa(p.Limit)
	}
	if p.Search != "" {
		q["search"] = p.Search
	}
	return q
}

// ListIngredients fetches one page of ingredients.
func (c *Client) ListIngredients(ctx context.Context, params ListParams) (*models.Paginated[models.Ingredient], error) {
	return doGet[models.Paginated[models.Ingredient]](ctx, c, "/ingredients", params.query())
}

// GetIngredient fetches one ingredient by id.
func (c *Client) GetIngredient(ctx context.Context, id string) (*models.Ingredient, error) {
	return doGet[models.Ingredient](ctx, c, "/ingredients/"+id, nil)
}

// CreateIngredient registers a new ingredient.
func (c *Client) CreateIngredient(ctx context.Context, req models.CreateIngredientRequest) (*models.Ingredient, error) {
	return doPost[models.Ingredient](ctx, c, "/ingredients", req)
}

// UpdateIngredient updates an existing ingredient.
func (c *Client) UpdateIngredient(ctx context.Context, id string, req models.CreateIngredientRequest) (*models.Ingredient, error) {
	return doPut[models.Ingredient](ctx, c, "/ingredients/"+id, req)
}

// DeleteIngredient removes an ingredient.
func (c *Client) DeleteIngredient(ctx context.Context, id string) error {
	return c.doDelete(ctx, "/ingredients/"+id)
}

// ListPackaging fetches one page of packaging materials.
func (c *Client) ListPackaging(ctx context.Context, params ListParams) (*models.Paginated[models.Packaging], error) {
	return doGet[models.Paginated[models.Packaging]](ctx, c, "/packaging", params.query())
}

// GetPackaging fetches one packaging material by id.
func (c *Client) GetPackaging(ctx context.Context, id string) (*models.Packaging, error) {
	return doGet[models.Packaging](ctx, c, "/packaging/"+id, nil)
}

// CreatePackaging registers a new packaging material.
func (c *Client) CreatePackaging(ctx context.Context, req models.CreatePackagingRequest) (*models.Packaging, error) {
	return doPost[models.Packaging](ctx, c, "/packaging", req)
}

// UpdatePackaging updates an existing packaging material.
func (c *Client) UpdatePackaging(ctx context.Context, id string, req models.CreatePackagingRequest) (*models.Packaging, error) {
	return doPut[models.Packaging](ctx, c, "/packaging/"+id, req)
}

// DeletePackaging removes a packaging material.
func (c *Client) DeletePackaging(ctx context.Context, id string) error {
	return c.doDelete(ctx, "/packaging/"+id)
}

// ListProducts fetches one page of products.
func (c *Client) ListProducts(ctx context.Context, params ListParams) (*models.Paginated[models.Product], error) {
	return doGet[models.Paginated[models.Product]](ctx, c, "/products", params.query())
}

// GetProduct fetches one product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return doGet[models.Product](ctx, c, "/products/"+id, nil)
}

// CreateProduct registers a new product.
func (c *Client) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	return doPost[models.Product](ctx, c, "/products", req)
}

// UpdateProduct updates an existing product.
func (c *Client) UpdateProduct(ctx context.Context, id string, req models.CreateProductRequest) (*models.Product, error) {
	return doPut[models.Product](ctx, c, "/products/"+id, req)
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.doDelete(ctx, "/products/"+id)
}

// GetRecipe fetches the full recipe of a product, with ingredient and
// packaging records embedded in each line.
func (c *Client) GetRecipe(ctx context.Context, productID string) (*models.ProductRecipe, error) {
	return doGet[models.ProductRecipe](ctx, c, "/products/"+productID+"/recipe", nil)
}

// UpdateRecipe replaces the recipe of a product.
func (c *Client) UpdateRecipe(ctx context.Context, productID string, req models.UpdateRecipeRequest) error {
	_, err := doPut[struct{}](ctx, c, "/products/"+productID+"/recipe", req)
	return err
}
