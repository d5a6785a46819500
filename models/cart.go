package models

// CartItem pairs a product snapshot with the quantity in the cart.
// The snapshot is the product as it was when the entry was created;
// totals are computed from it, not from a live re-fetch.
type CartItem struct {
	Product  Product `json:"product" bson:"product"`
	Quantity int     `json:"quantity" bson:"quantity"`
}

// CartSummary is the wire shape returned for every cart read.
type CartSummary struct {
	Items       []CartItem `json:"items"`
	TotalItems  int        `json:"totalItems"`
	TotalAmount int64      `json:"totalAmount"`
}
