package models

import "time"

// Media types for product imagery.
const (
	MediaImage = "IMAGE"
	MediaVideo = "VIDEO"
)

// Discount kinds. A product with a discount but no explicit type is
// treated as a percentage discount.
const (
	DiscountFixed      = "FIXED"
	DiscountPercentage = "PERCENTAGE"
)

// MediaItem is one entry in a product's media gallery.
type MediaItem struct {
	URL  string `json:"url" bson:"url"`
	Type string `json:"type" bson:"type"` // IMAGE or VIDEO
}

// Product is the canonical catalog record. Prices are whole naira.
type Product struct {
	ProductID     string      `json:"id" bson:"productid"`
	Name          string      `json:"name" bson:"name"`
	Price         int64       `json:"price" bson:"price"`
	OriginalPrice int64       `json:"originalPrice,omitempty" bson:"originalPrice,omitempty"`
	Category      string      `json:"category" bson:"category"`
	Description   string      `json:"description" bson:"description"`
	Media         []MediaItem `json:"media" bson:"media"`
	StockQuantity int         `json:"stockQuantity" bson:"stockQuantity"`
	InStock       bool        `json:"inStock" bson:"inStock"`

	DiscountType             string `json:"discountType,omitempty" bson:"discountType,omitempty"`
	DiscountValue            int64  `json:"discountValue,omitempty" bson:"discountValue,omitempty"`
	DiscountRemainingSeconds int64  `json:"discountRemainingSeconds,omitempty" bson:"discountRemainingSeconds,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
