package orders

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"jossy/cart"
	"jossy/db"
	"jossy/models"
	"jossy/pay"
	"jossy/rdx"
	"jossy/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PlaceOrder records a finalized order. Every line is resolved, clamped
// and priced against the catalog before any state changes: stock is
// decremented and the order inserted only once the whole request has
// validated, so a rejected submission never drains stock. The order starts
// in pending_payment until the bank transfer is confirmed.
func PlaceOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("PlaceOrder decode error:", err)
		http.Error(w, "Invalid order payload", http.StatusBadRequest)
		return
	}

	phone := req.CustomerPhone
	if phone == "" {
		phone = req.Phone
	}
	name, phone, err := ValidateCustomer(req.CustomerName, phone)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Items) == 0 {
		http.Error(w, "Order has no items", http.StatusBadRequest)
		return
	}

	// Resolve every referenced product up front.
	catalog := make(map[string]models.Product, len(req.Items))
	for _, line := range req.Items {
		if line.ProductID == "" {
			http.Error(w, "Invalid order item", http.StatusBadRequest)
			return
		}
		if _, ok := catalog[line.ProductID]; ok {
			continue
		}
		var product models.Product
		err := db.ProductCollection.FindOne(ctx, bson.M{"productid": line.ProductID}).Decode(&product)
		if err == mongo.ErrNoDocuments {
			http.Error(w, "Unknown product: "+line.ProductID, http.StatusBadRequest)
			return
		}
		if err != nil {
			log.Println("PlaceOrder FindOne error:", err)
			http.Error(w, "Failed to load product", http.StatusInternalServerError)
			return
		}
		catalog[line.ProductID] = product
	}

	items, total, err := BuildItems(req.Items, catalog)
	if err != nil {
		switch {
		case errors.Is(err, ErrOutOfStock):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return
	}

	now := time.Now()
	order := models.Order{
		OrderID:       utils.GetUUID(),
		OrderNumber:   OrderNumber(now),
		Status:        models.OrderPendingPayment,
		CustomerName:  name,
		CustomerPhone: phone,
		Items:         items,
		TotalAmount:   total,
		CreatedAt:     now,
	}

	// The request is fully validated; apply stock changes and persist.
	for _, item := range order.Items {
		if err := decrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			log.Println("PlaceOrder stock update error:", err)
			http.Error(w, "Failed to reserve stock", http.StatusInternalServerError)
			return
		}
	}

	if _, err := db.OrderCollection.InsertOne(ctx, order); err != nil {
		log.Println("PlaceOrder InsertOne error:", err)
		http.Error(w, "Order creation failed", http.StatusInternalServerError)
		return
	}

	rdx.InvalidateCatalog()
	cart.Sessions.Session(cart.SessionID(r)).Clear()

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"data":    order,
		"payment": pay.Details(),
	})
}

// GetOrder looks up an order by its human-readable order number.
func GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var order models.Order
	err := db.OrderCollection.FindOne(ctx, bson.M{"orderNumber": ps.ByName("ordernumber")}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Println("GetOrder FindOne error:", err)
		http.Error(w, "Could not retrieve order", http.StatusInternalServerError)
		return
	}

	utils.RespondWithData(w, http.StatusOK, order)
}

// decrementStock reduces a product's stock and flips inStock off when it
// hits zero.
func decrementStock(ctx context.Context, productID string, qty int) error {
	_, err := db.ProductCollection.UpdateOne(ctx,
		bson.M{"productid": productID},
		bson.M{"$inc": bson.M{"stockQuantity": -qty}},
	)
	if err != nil {
		return err
	}
	_, err = db.ProductCollection.UpdateMany(ctx,
		bson.M{"productid": productID, "stockQuantity": bson.M{"$lte": 0}},
		bson.M{"$set": bson.M{"stockQuantity": 0, "inStock": false}},
	)
	return err
}
