package models

import "time"

// Order status values. Orders are settled by manual bank transfer, so
// every new order starts as pending_payment.
const (
	OrderPendingPayment = "pending_payment"
	OrderPaid           = "paid"
	OrderCancelled      = "cancelled"
)

// OrderItemRequest is one line of an incoming order submission.
type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// OrderRequest is the order submission payload. Some clients send the
// phone number as "phone" rather than "customerPhone"; both are accepted.
type OrderRequest struct {
	CustomerName  string             `json:"customerName"`
	CustomerPhone string             `json:"customerPhone"`
	Phone         string             `json:"phone"`
	Items         []OrderItemRequest `json:"items"`
}

// OrderItem is a priced line of a placed order.
type OrderItem struct {
	ProductID   string `json:"productId" bson:"productId"`
	ProductName string `json:"productName" bson:"productName"`
	Quantity    int    `json:"quantity" bson:"quantity"`
	Price       int64  `json:"price" bson:"price"` // unit price at placement
}

// Order is a finalized order as stored and returned.
type Order struct {
	OrderID       string      `json:"orderId" bson:"orderId"`
	OrderNumber   string      `json:"orderNumber" bson:"orderNumber"`
	Status        string      `json:"status" bson:"status"`
	CustomerName  string      `json:"customerName" bson:"customerName"`
	CustomerPhone string      `json:"customerPhone" bson:"customerPhone"`
	Items         []OrderItem `json:"items" bson:"items"`
	TotalAmount   int64       `json:"totalAmount" bson:"totalAmount"`
	CreatedAt     time.Time   `json:"createdAt" bson:"createdAt"`
}

// BankDetails is the account a customer transfers payment to.
type BankDetails struct {
	BankName      string `json:"bankName"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	WhatsApp      string `json:"whatsapp,omitempty"`
}
