package backend

import (
	"context"
	"strconv"

	"github.com/marianadoces/console/internal/domain/models"
)

// OrderParams filter and paginate the order listing.
type OrderParams struct {
	Page     int
	Limit    int
	DateFrom string
	DateTo   string
	Channel  models.Channel
}

func (p OrderParams) query() map[string]string {
	q := map[string]string{}
	if p.Page > 0 {
		q["page"] = strconv.Itoa(p.Page)
	}
	if p.Limit > 0 {
		q["limit"] = strconv.Itoa(p.Limit)
	}
	if p.DateFrom != "" {
		q["dateFrom"] = p.DateFrom
	}
	if p.DateTo != "" {
		q["dateTo"] = p.DateTo
	}
	if p.Channel != "" {
		q["channel"] = string(p.Channel)
	}
	return q
}

// ListOrders fetches one page of sale orders.
func (c *Client) ListOrders(ctx context.Context, params OrderParams) (*models.Paginated[models.SaleOrder], error) {
	return doGet[models.Paginated[models.SaleOrder]](ctx, c, "/orders", params.query())
}

// GetOrder fetches one sale order by id.
func (c *Client) GetOrder(ctx context.Context, id string) (*models.SaleOrder, error) {
	return doGet[models.SaleOrder](ctx, c, "/orders/"+id, nil)
}

// CreateOrder submits a sale order. The backend recomputes and persists the
// order totals; the console's own totals are previews.
func (c *Client) CreateOrder(ctx context.Context, req models.CreateSaleOrderRequest) (*models.SaleOrder, error) {
	return doPost[models.SaleOrder](ctx, c, "/orders", req)
}

// DeleteOrder removes a sale order.
func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.doDelete(ctx, "/orders/"+id)
}

// ListStockMovements fetches one page of ingredient stock movements.
func (c *Client) ListStockMovements(ctx context.Context, params ListParams) (*models.Paginated[models.StockMovement], error) {
	return doGet[models.Paginated[models.StockMovement]](ctx, c, "/stock/movements", params.query())
}

// CreateStockMovement registers an ingredient stock movement.
func (c *Client) CreateStockMovement(ctx context.Context, req models.CreateStockMovementRequest) (*models.StockMovement, error) {
	return doPost[models.StockMovement](ctx, c, "/stock/movements", req)
}
