package orders

import (
	"errors"
	"testing"

	"jossy/models"
)

func catalogOf(ps ...models.Product) map[string]models.Product {
	m := make(map[string]models.Product, len(ps))
	for _, p := range ps {
		m[p.ProductID] = p
	}
	return m
}

func stocked(id string, price int64, stock int) models.Product {
	return models.Product{
		ProductID:     id,
		Name:          "product " + id,
		Price:         price,
		StockQuantity: stock,
		InStock:       stock > 0,
	}
}

func TestBuildItemsTotalAndPrices(t *testing.T) {
	catalog := catalogOf(stocked("a", 15000, 12), stocked("b", 8500, 30))
	items, total, err := BuildItems([]models.OrderItemRequest{
		{ProductID: "a", Quantity: 2},
		{ProductID: "b", Quantity: 3},
	}, catalog)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if want := int64(2*15000 + 3*8500); total != want {
		t.Errorf("expected total %d, got %d", want, total)
	}
	if items[0].Price != 15000 || items[0].ProductName != "product a" {
		t.Errorf("item not priced from catalog: %+v", items[0])
	}
}

func TestBuildItemsClampsToStock(t *testing.T) {
	items, total, err := BuildItems(
		[]models.OrderItemRequest{{ProductID: "a", Quantity: 9}},
		catalogOf(stocked("a", 1000, 4)),
	)
	if err != nil {
		t.Fatal(err)
	}
	if items[0].Quantity != 4 {
		t.Errorf("expected quantity clamped to 4, got %d", items[0].Quantity)
	}
	if total != 4*1000 {
		t.Errorf("expected total from clamped quantity, got %d", total)
	}
}

func TestBuildItemsMergesDuplicateLines(t *testing.T) {
	// Two lines for the same product count once, summed then clamped, so
	// stock can never be drawn down twice for one submission.
	items, total, err := BuildItems([]models.OrderItemRequest{
		{ProductID: "a", Quantity: 3},
		{ProductID: "a", Quantity: 4},
	}, catalogOf(stocked("a", 1000, 5)))
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Fatalf("expected merged single item, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Errorf("expected merged quantity clamped to 5, got %d", items[0].Quantity)
	}
	if total != 5*1000 {
		t.Errorf("expected total 5000, got %d", total)
	}
}

func TestBuildItemsRejectsBadLinesWithoutPartialResult(t *testing.T) {
	catalog := catalogOf(stocked("a", 1000, 5))

	// A later unknown line fails the whole request; the earlier valid
	// line produces nothing a caller could have applied.
	items, total, err := BuildItems([]models.OrderItemRequest{
		{ProductID: "a", Quantity: 1},
		{ProductID: "ghost", Quantity: 1},
	}, catalog)
	if !errors.Is(err, ErrUnknownProduct) {
		t.Fatalf("expected ErrUnknownProduct, got %v", err)
	}
	if items != nil || total != 0 {
		t.Error("expected no items and zero total on rejection")
	}

	_, _, err = BuildItems([]models.OrderItemRequest{
		{ProductID: "a", Quantity: 1},
		{ProductID: "a", Quantity: 0},
	}, catalog)
	if !errors.Is(err, ErrInvalidItem) {
		t.Errorf("expected ErrInvalidItem for zero quantity, got %v", err)
	}

	_, _, err = BuildItems([]models.OrderItemRequest{
		{ProductID: "", Quantity: 1},
	}, catalog)
	if !errors.Is(err, ErrInvalidItem) {
		t.Errorf("expected ErrInvalidItem for empty id, got %v", err)
	}
}

func TestBuildItemsOutOfStock(t *testing.T) {
	_, _, err := BuildItems(
		[]models.OrderItemRequest{{ProductID: "a", Quantity: 1}},
		catalogOf(stocked("a", 1000, 0)),
	)
	if !errors.Is(err, ErrOutOfStock) {
		t.Errorf("expected ErrOutOfStock, got %v", err)
	}
}

func TestBuildItemsKeepsLineOrder(t *testing.T) {
	catalog := catalogOf(stocked("c", 100, 9), stocked("a", 100, 9), stocked("b", 100, 9))
	items, _, err := BuildItems([]models.OrderItemRequest{
		{ProductID: "c", Quantity: 1},
		{ProductID: "a", Quantity: 1},
		{ProductID: "b", Quantity: 1},
	}, catalog)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"c", "a", "b"}
	for i, id := range want {
		if items[i].ProductID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, items[i].ProductID)
		}
	}
}
