package products

import (
	"strings"

	"jossy/models"
	"jossy/utils"
)

// productPayload is the inbound product shape. Older feeds carry a plain
// images[] list and an "available" stock count; newer ones carry typed
// media[] and stockQuantity. Both are accepted here and nowhere else: the
// rest of the codebase only ever sees the canonical models.Product.
type productPayload struct {
	ID                       string             `json:"id"`
	Name                     string             `json:"name"`
	Price                    int64              `json:"price"`
	OriginalPrice            int64              `json:"originalPrice"`
	Category                 string             `json:"category"`
	Description              string             `json:"description"`
	Images                   []string           `json:"images"`
	Media                    []models.MediaItem `json:"media"`
	StockQuantity            *int               `json:"stockQuantity"`
	Available                *int               `json:"available"`
	DiscountType             string             `json:"discountType"`
	DiscountValue            int64              `json:"discountValue"`
	DiscountRemainingSeconds int64              `json:"discountRemainingSeconds"`
}

// normalize folds the union shape into the canonical product record.
func (p productPayload) normalize() models.Product {
	stock := 0
	if p.StockQuantity != nil {
		stock = *p.StockQuantity
	} else if p.Available != nil {
		stock = *p.Available
	}
	if stock < 0 {
		stock = 0
	}

	return models.Product{
		ProductID:                p.ID,
		Name:                     strings.TrimSpace(p.Name),
		Price:                    p.Price,
		OriginalPrice:            p.OriginalPrice,
		Category:                 utils.NormalizeTag(p.Category),
		Description:              p.Description,
		Media:                    normalizeMedia(p.Media, p.Images),
		StockQuantity:            stock,
		InStock:                  stock > 0,
		DiscountType:             normalizeDiscountType(p.DiscountType, p.DiscountValue),
		DiscountValue:            p.DiscountValue,
		DiscountRemainingSeconds: p.DiscountRemainingSeconds,
	}
}

// normalizeMedia prefers typed media entries; a legacy images list is
// lifted into IMAGE entries. Entries with no URL are dropped.
func normalizeMedia(media []models.MediaItem, images []string) []models.MediaItem {
	out := make([]models.MediaItem, 0, len(media)+len(images))
	if len(media) > 0 {
		for _, m := range media {
			if m.URL == "" {
				continue
			}
			typ := strings.ToUpper(strings.TrimSpace(m.Type))
			if typ != models.MediaVideo {
				typ = models.MediaImage
			}
			out = append(out, models.MediaItem{URL: m.URL, Type: typ})
		}
		return out
	}
	for _, url := range images {
		if url == "" {
			continue
		}
		out = append(out, models.MediaItem{URL: url, Type: models.MediaImage})
	}
	return out
}

// normalizeDiscountType maps the two-valued tag; anything that is not
// FIXED counts as a percentage discount. Products without a discount value
// carry no tag at all.
func normalizeDiscountType(tag string, value int64) string {
	if value <= 0 {
		return ""
	}
	if strings.EqualFold(strings.TrimSpace(tag), models.DiscountFixed) {
		return models.DiscountFixed
	}
	return models.DiscountPercentage
}
