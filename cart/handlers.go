package cart

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"jossy/db"
	"jossy/models"
	"jossy/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AddToCart resolves the product from the catalog and merges it into the
// session's cart. The product snapshot is captured here, at add time.
func AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("AddToCart decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if payload.ProductID == "" {
		http.Error(w, "productId is required", http.StatusBadRequest)
		return
	}
	if payload.Quantity == 0 {
		payload.Quantity = 1
	}

	var product models.Product
	err := db.ProductCollection.FindOne(ctx, bson.M{"productid": payload.ProductID}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Println("AddToCart FindOne error:", err)
		http.Error(w, "Could not load product", http.StatusInternalServerError)
		return
	}
	if !product.InStock {
		http.Error(w, "Product is out of stock", http.StatusConflict)
		return
	}

	store := Sessions.Session(SessionID(r))
	store.Add(product, payload.Quantity)

	utils.RespondWithJSON(w, http.StatusCreated, store.Summary())
}

// GetCart returns the session's entries and derived totals.
func GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	store := Sessions.Session(SessionID(r))
	utils.RespondWithJSON(w, http.StatusOK, store.Summary())
}

// UpdateCartItem sets an entry's quantity; zero or below removes it. An
// unknown product id leaves the cart untouched, mirroring the store.
func UpdateCartItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("UpdateCartItem decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	store := Sessions.Session(SessionID(r))
	store.SetQuantity(ps.ByName("productid"), payload.Quantity)

	utils.RespondWithJSON(w, http.StatusOK, store.Summary())
}

// RemoveFromCart deletes one entry. Idempotent.
func RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	store := Sessions.Session(SessionID(r))
	store.Remove(ps.ByName("productid"))
	utils.RespondWithJSON(w, http.StatusOK, store.Summary())
}

// ClearCart empties the session's cart.
func ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	store := Sessions.Session(SessionID(r))
	store.Clear()
	utils.RespondWithJSON(w, http.StatusOK, store.Summary())
}
