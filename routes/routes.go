package routes

import (
	"net/http"

	"jossy/cart"
	"jossy/orders"
	"jossy/pay"
	"jossy/products"
	"jossy/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/productpic/*filepath", http.Dir("static/productpic"))
}

func AddProductRoutes(router *httprouter.Router) {
	router.GET("/api/v1/public/products", products.GetProducts)
	router.GET("/api/v1/public/products/:productid", products.GetProduct)
	router.GET("/api/v1/products/categories", products.GetCategories)

	router.POST("/api/v1/products", ratelim.RateLimit(products.CreateProduct))
	router.PUT("/api/v1/products/:productid", ratelim.RateLimit(products.UpdateProduct))
	router.POST("/api/v1/products/:productid/images", ratelim.RateLimit(products.UploadProductImage))
}

func AddCartRoutes(router *httprouter.Router) {
	router.GET("/api/v1/cart", cart.GetCart)
	router.POST("/api/v1/cart", ratelim.RateLimit(cart.AddToCart))
	router.PUT("/api/v1/cart/item/:productid", ratelim.RateLimit(cart.UpdateCartItem))
	router.DELETE("/api/v1/cart/item/:productid", ratelim.RateLimit(cart.RemoveFromCart))
	router.DELETE("/api/v1/cart", ratelim.RateLimit(cart.ClearCart))
}

func AddOrderRoutes(router *httprouter.Router) {
	router.POST("/api/v1/orders", ratelim.RateLimit(orders.PlaceOrder))
	router.GET("/api/v1/orders/:ordernumber", orders.GetOrder)
}

func AddPaymentRoutes(router *httprouter.Router) {
	router.GET("/api/v1/payment/bank-details", pay.GetBankDetails)
	router.GET("/api/v1/payment/order/:ordernumber/qr", pay.PaymentQR)
	router.GET("/api/v1/payment/order/:ordernumber/instructions", pay.PaymentInstructions)
}
