package products

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"jossy/db"
	"jossy/discount"
	"jossy/models"
	"jossy/rdx"
	"jossy/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetProducts lists the catalog, optionally filtered by ?category=.
// Listings are cached in Redis for CatalogTTL.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	category := utils.NormalizeTag(r.URL.Query().Get("category"))
	cacheKey := "catalog:products:" + category

	if cached, ok := rdx.CacheGet(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(cached))
		return
	}

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := db.ProductCollection.Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		log.Println("GetProducts Find error:", err)
		http.Error(w, "Could not retrieve products", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var list []models.Product
	if err := cursor.All(ctx, &list); err != nil {
		log.Println("GetProducts cursor.All error:", err)
		http.Error(w, "Error reading products", http.StatusInternalServerError)
		return
	}
	if len(list) == 0 {
		list = []models.Product{}
	}

	body, err := json.Marshal(map[string]interface{}{"data": list})
	if err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
	rdx.CacheSet(cacheKey, string(body), rdx.CatalogTTL)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// GetProduct returns a single product. The response carries the product
// plus the current rendering of its discount countdown, so a client can
// seed its local ticker without re-deriving the display rules.
func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	err := db.ProductCollection.FindOne(ctx, bson.M{"productid": ps.ByName("productid")}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Println("GetProduct FindOne error:", err)
		http.Error(w, "Could not retrieve product", http.StatusInternalServerError)
		return
	}

	resp := utils.M{"data": product}
	if c := discount.NewCountdown(product.DiscountRemainingSeconds); c.Active() {
		resp["discountDisplay"] = c.Display()
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// CreateProduct inserts a new catalog record from the normalized payload.
func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload productPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("CreateProduct decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	product := payload.normalize()
	if product.Name == "" || product.Category == "" || product.Price <= 0 {
		http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
		return
	}
	product.ProductID = utils.GetUUID()
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt

	if _, err := db.ProductCollection.InsertOne(ctx, product); err != nil {
		log.Println("CreateProduct InsertOne error:", err)
		http.Error(w, "Failed to create product", http.StatusInternalServerError)
		return
	}

	rdx.InvalidateCatalog()
	utils.RespondWithData(w, http.StatusCreated, product)
}

// productUpdate carries only the fields present in a PUT body.
type productUpdate struct {
	Name                     *string             `json:"name"`
	Price                    *int64              `json:"price"`
	OriginalPrice            *int64              `json:"originalPrice"`
	Category                 *string             `json:"category"`
	Description              *string             `json:"description"`
	Media                    *[]models.MediaItem `json:"media"`
	Images                   *[]string           `json:"images"`
	StockQuantity            *int                `json:"stockQuantity"`
	Available                *int                `json:"available"`
	DiscountType             *string             `json:"discountType"`
	DiscountValue            *int64              `json:"discountValue"`
	DiscountRemainingSeconds *int64              `json:"discountRemainingSeconds"`
}

// UpdateProduct applies a partial update. Stock changes recompute inStock.
func UpdateProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload productUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("UpdateProduct decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if payload.Name != nil {
		set["name"] = *payload.Name
	}
	if payload.Price != nil {
		set["price"] = *payload.Price
	}
	if payload.OriginalPrice != nil {
		set["originalPrice"] = *payload.OriginalPrice
	}
	if payload.Category != nil {
		set["category"] = utils.NormalizeTag(*payload.Category)
	}
	if payload.Description != nil {
		set["description"] = *payload.Description
	}
	if payload.Media != nil {
		set["media"] = normalizeMedia(*payload.Media, nil)
	} else if payload.Images != nil {
		set["media"] = normalizeMedia(nil, *payload.Images)
	}
	stock := payload.StockQuantity
	if stock == nil {
		stock = payload.Available
	}
	if stock != nil {
		q := *stock
		if q < 0 {
			q = 0
		}
		set["stockQuantity"] = q
		set["inStock"] = q > 0
	}
	if payload.DiscountValue != nil {
		tag := ""
		if payload.DiscountType != nil {
			tag = *payload.DiscountType
		}
		set["discountValue"] = *payload.DiscountValue
		set["discountType"] = normalizeDiscountType(tag, *payload.DiscountValue)
	}
	if payload.DiscountRemainingSeconds != nil {
		set["discountRemainingSeconds"] = *payload.DiscountRemainingSeconds
	}

	res, err := db.ProductCollection.UpdateOne(ctx, bson.M{"productid": ps.ByName("productid")}, bson.M{"$set": set})
	if err != nil {
		log.Println("UpdateProduct UpdateOne error:", err)
		http.Error(w, "Failed to update product", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	rdx.InvalidateCatalog()

	var product models.Product
	if err := db.ProductCollection.FindOne(ctx, bson.M{"productid": ps.ByName("productid")}).Decode(&product); err != nil {
		log.Println("UpdateProduct reload error:", err)
		http.Error(w, "Failed to reload product", http.StatusInternalServerError)
		return
	}
	utils.RespondWithData(w, http.StatusOK, product)
}

// GetCategories lists the distinct category tags in the catalog.
func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	raw, err := db.ProductCollection.Distinct(ctx, "category", bson.M{})
	if err != nil {
		log.Println("GetCategories Distinct error:", err)
		http.Error(w, "Could not retrieve categories", http.StatusInternalServerError)
		return
	}

	categories := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			categories = append(categories, s)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, categories)
}
