package cart

import (
	"sync"

	"jossy/models"
)

// Store holds the in-memory cart for one session: a mapping of product id
// to (product snapshot, quantity). Quantities are always clamped to the
// product's available stock and an entry never holds a quantity below 1.
// Totals are derived on every read, never cached.
type Store struct {
	mu      sync.Mutex
	entries map[string]*models.CartItem
	order   []string // product ids in insertion order, drives display order
}

func NewStore() *Store {
	return &Store{entries: make(map[string]*models.CartItem)}
}

// Add merges quantity into an existing entry or creates a new one. The
// resulting quantity never exceeds the product's stock; an add that would
// leave the entry at zero or below (qty <= 0 on a new entry, or a product
// with no stock) stores nothing.
func (s *Store) Add(p models.Product, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[p.ProductID]; ok {
		// Merge keeps the original snapshot, clamps against the stock
		// reported by the product passed in now.
		s.setLocked(p.ProductID, e, clampQty(e.Quantity+qty, p.StockQuantity))
		return
	}
	q := clampQty(qty, p.StockQuantity)
	if q <= 0 {
		return
	}
	s.entries[p.ProductID] = &models.CartItem{Product: p, Quantity: q}
	s.order = append(s.order, p.ProductID)
}

// SetQuantity sets an entry's quantity, clamped to the snapshot's stock.
// A quantity of zero or below removes the entry. Unknown product ids are
// ignored.
func (s *Store) SetQuantity(productID string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[productID]
	if !ok {
		return
	}
	if qty <= 0 {
		s.removeLocked(productID)
		return
	}
	s.setLocked(productID, e, clampQty(qty, e.Product.StockQuantity))
}

// Remove deletes the entry for productID. No-op if absent.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

// Clear empties the cart. Called after a successful order placement.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*models.CartItem)
	s.order = nil
}

// Items returns the entries in insertion order.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemsLocked()
}

func (s *Store) itemsLocked() []models.CartItem {
	items := make([]models.CartItem, 0, len(s.order))
	for _, id := range s.order {
		if e, ok := s.entries[id]; ok {
			items = append(items, *e)
		}
	}
	return items
}

// TotalItems is the sum of all entry quantities.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, e := range s.entries {
		n += e.Quantity
	}
	return n
}

// TotalAmount is the sum of snapshot price times quantity over all entries.
func (s *Store) TotalAmount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, e := range s.entries {
		total += e.Product.Price * int64(e.Quantity)
	}
	return total
}

// Summary bundles the entries and both derived totals in one atomic read:
// all three are computed under a single lock so the triple is always a
// consistent snapshot even while another request mutates the cart.
func (s *Store) Summary() models.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := models.CartSummary{Items: s.itemsLocked()}
	for _, item := range sum.Items {
		sum.TotalItems += item.Quantity
		sum.TotalAmount += item.Product.Price * int64(item.Quantity)
	}
	return sum
}

// setLocked applies a clamped quantity to an existing entry, dropping the
// entry when the clamp leaves nothing (a zero-stock product is removed on
// the next mutation rather than kept at zero).
func (s *Store) setLocked(productID string, e *models.CartItem, qty int) {
	if qty <= 0 {
		s.removeLocked(productID)
		return
	}
	e.Quantity = qty
}

func (s *Store) removeLocked(productID string) {
	if _, ok := s.entries[productID]; !ok {
		return
	}
	delete(s.entries, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func clampQty(qty, stock int) int {
	if qty > stock {
		return stock
	}
	return qty
}
