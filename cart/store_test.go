package cart

import (
	"testing"

	"jossy/models"
)

func product(id string, price int64, stock int) models.Product {
	return models.Product{
		ProductID:     id,
		Name:          "product " + id,
		Price:         price,
		Category:      "clothes",
		StockQuantity: stock,
		InStock:       stock > 0,
	}
}

func TestAddClampsToStock(t *testing.T) {
	s := NewStore()
	s.Add(product("a", 15000, 2), 3)

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Errorf("expected quantity clamped to 2, got %d", items[0].Quantity)
	}
	if s.TotalItems() != 2 {
		t.Errorf("expected TotalItems 2, got %d", s.TotalItems())
	}
}

func TestAddMergesExistingEntry(t *testing.T) {
	s := NewStore()
	p := product("a", 15000, 5)
	s.Add(p, 1)
	s.Add(p, 1)

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("expected a single merged entry, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", items[0].Quantity)
	}
	if s.TotalAmount() != 2*15000 {
		t.Errorf("expected total 30000, got %d", s.TotalAmount())
	}
}

func TestRepeatedAddsNeverExceedStock(t *testing.T) {
	s := NewStore()
	p := product("a", 500, 4)
	for i := 0; i < 10; i++ {
		s.Add(p, 1)
	}
	if got := s.Items()[0].Quantity; got != 4 {
		t.Errorf("expected final quantity 4, got %d", got)
	}
}

func TestAddZeroOrNegativeStoresNothing(t *testing.T) {
	s := NewStore()
	s.Add(product("a", 500, 4), 0)
	s.Add(product("b", 500, 4), -2)
	if len(s.Items()) != 0 {
		t.Errorf("expected empty cart, got %d entries", len(s.Items()))
	}
}

func TestAddOutOfStockProductStoresNothing(t *testing.T) {
	s := NewStore()
	s.Add(product("a", 500, 0), 1)
	if len(s.Items()) != 0 {
		t.Errorf("expected empty cart, got %d entries", len(s.Items()))
	}
}

func TestSetQuantity(t *testing.T) {
	s := NewStore()
	s.Add(product("a", 1000, 5), 1)

	s.SetQuantity("a", 3)
	if got := s.Items()[0].Quantity; got != 3 {
		t.Errorf("expected quantity 3, got %d", got)
	}

	// Clamped to stock.
	s.SetQuantity("a", 99)
	if got := s.Items()[0].Quantity; got != 5 {
		t.Errorf("expected quantity clamped to 5, got %d", got)
	}

	// Zero removes the entry.
	s.SetQuantity("a", 0)
	if len(s.Items()) != 0 {
		t.Error("expected entry removed for quantity 0")
	}
}

func TestSetQuantityUnknownIDIsNoop(t *testing.T) {
	s := NewStore()
	s.Add(product("a", 1000, 5), 2)
	s.SetQuantity("missing", 3)

	if len(s.Items()) != 1 || s.Items()[0].Quantity != 2 {
		t.Error("cart changed by SetQuantity on unknown id")
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := NewStore()
	s.Add(product("a", 1000, 5), 2)
	s.Remove("a")
	s.Remove("a")
	s.Remove("never-there")
	if len(s.Items()) != 0 {
		t.Error("expected empty cart after remove")
	}
}

func TestDerivedTotals(t *testing.T) {
	s := NewStore()
	s.Add(product("a", 15000, 12), 2)
	s.Add(product("b", 8500, 30), 3)

	if s.TotalItems() != 5 {
		t.Errorf("expected TotalItems 5, got %d", s.TotalItems())
	}
	if want := int64(2*15000 + 3*8500); s.TotalAmount() != want {
		t.Errorf("expected TotalAmount %d, got %d", want, s.TotalAmount())
	}
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.Add(product("a", 15000, 12), 2)
	s.Add(product("b", 8500, 30), 3)
	s.Clear()

	if s.TotalItems() != 0 || s.TotalAmount() != 0 || len(s.Items()) != 0 {
		t.Error("expected empty cart with zero totals after Clear")
	}
}

func TestItemsKeepInsertionOrder(t *testing.T) {
	s := NewStore()
	s.Add(product("c", 100, 9), 1)
	s.Add(product("a", 100, 9), 1)
	s.Add(product("b", 100, 9), 1)
	s.Remove("a")
	s.Add(product("a", 100, 9), 1)

	want := []string{"c", "b", "a"}
	items := s.Items()
	if len(items) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(items))
	}
	for i, id := range want {
		if items[i].Product.ProductID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, items[i].Product.ProductID)
		}
	}
}

func TestSnapshotPriceSurvivesCatalogChange(t *testing.T) {
	s := NewStore()
	p := product("a", 15000, 12)
	s.Add(p, 2)

	// A later catalog price change does not affect the captured entry.
	p.Price = 99999
	if s.TotalAmount() != 2*15000 {
		t.Errorf("expected snapshot total 30000, got %d", s.TotalAmount())
	}
}

func TestSummaryIsConsistentUnderConcurrentMutation(t *testing.T) {
	s := NewStore()
	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		p := product("a", 1000, 50)
		q := product("b", 250, 50)
		for {
			select {
			case <-stop:
				return
			default:
			}
			s.Add(p, 1)
			s.Add(q, 2)
			s.Remove("a")
			s.SetQuantity("b", 1)
			s.Remove("b")
		}
	}()

	// Every snapshot must agree with itself: the totals are derived from
	// the same entry set they are returned with.
	for i := 0; i < 1000; i++ {
		sum := s.Summary()
		items, amount := 0, int64(0)
		for _, e := range sum.Items {
			items += e.Quantity
			amount += e.Product.Price * int64(e.Quantity)
		}
		if sum.TotalItems != items || sum.TotalAmount != amount {
			t.Fatalf("summary not atomic: totals (%d, %d) vs items (%d, %d)",
				sum.TotalItems, sum.TotalAmount, items, amount)
		}
	}
	close(stop)
	<-done
}

func TestSessionRegistry(t *testing.T) {
	c := NewCarts()

	a := c.Session("sess-a")
	b := c.Session("sess-b")
	if a == b {
		t.Fatal("expected distinct stores per session")
	}
	if c.Session("sess-a") != a {
		t.Error("expected same store on repeat lookup")
	}

	a.Add(product("a", 100, 9), 1)
	if b.TotalItems() != 0 {
		t.Error("sessions must not share entries")
	}

	// Empty id maps to the shared fallback store.
	if c.Session("") != c.Session("") {
		t.Error("expected a stable fallback store")
	}

	c.Drop("sess-a")
	if c.Session("sess-a") == a {
		t.Error("expected a fresh store after Drop")
	}
}
