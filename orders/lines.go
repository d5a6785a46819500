package orders

import (
	"errors"
	"fmt"

	"jossy/models"
)

var (
	ErrInvalidItem    = errors.New("invalid order item")
	ErrUnknownProduct = errors.New("unknown product")
	ErrOutOfStock     = errors.New("out of stock")
)

// BuildItems turns request lines into priced order items against a catalog
// snapshot. Duplicate lines for the same product are merged before
// clamping, quantities are clamped to available stock, and prices come
// from the snapshot. Returns the items and the order total. No state is
// touched: callers apply stock changes only after the whole request has
// passed through here.
func BuildItems(lines []models.OrderItemRequest, catalog map[string]models.Product) ([]models.OrderItem, int64, error) {
	merged := make(map[string]int, len(lines))
	order := make([]string, 0, len(lines))

	for _, line := range lines {
		if line.ProductID == "" || line.Quantity <= 0 {
			return nil, 0, ErrInvalidItem
		}
		if _, ok := merged[line.ProductID]; !ok {
			order = append(order, line.ProductID)
		}
		merged[line.ProductID] += line.Quantity
	}

	var items []models.OrderItem
	var total int64
	for _, id := range order {
		product, ok := catalog[id]
		if !ok {
			return nil, 0, fmt.Errorf("%w: %s", ErrUnknownProduct, id)
		}

		qty := merged[id]
		if qty > product.StockQuantity {
			qty = product.StockQuantity
		}
		if qty <= 0 {
			return nil, 0, fmt.Errorf("%w: %s", ErrOutOfStock, product.Name)
		}

		items = append(items, models.OrderItem{
			ProductID:   product.ProductID,
			ProductName: product.Name,
			Quantity:    qty,
			Price:       product.Price,
		})
		total += product.Price * int64(qty)
	}
	return items, total, nil
}
