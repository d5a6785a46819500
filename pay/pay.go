package pay

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"jossy/db"
	"jossy/models"
	"jossy/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Details reads the transfer account from the environment, falling back
// to the store's published account.
func Details() models.BankDetails {
	return models.BankDetails{
		BankName:      utils.Env("BANK_NAME", "First Bank of Nigeria"),
		AccountName:   utils.Env("BANK_ACCOUNT_NAME", "Jossy-Diva Collections"),
		AccountNumber: utils.Env("BANK_ACCOUNT_NUMBER", "1234567890"),
		WhatsApp:      utils.Env("WHATSAPP_NUMBER", "+2349049264366"),
	}
}

// GetBankDetails returns the account a customer should transfer to.
func GetBankDetails(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithData(w, http.StatusOK, Details())
}

func findOrder(ctx context.Context, w http.ResponseWriter, orderNumber string) (models.Order, bool) {
	var order models.Order
	err := db.OrderCollection.FindOne(ctx, bson.M{"orderNumber": orderNumber}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Order not found", http.StatusNotFound)
		return order, false
	}
	if err != nil {
		log.Println("pay order lookup error:", err)
		http.Error(w, "Could not retrieve order", http.StatusInternalServerError)
		return order, false
	}
	return order, true
}

// transferPayload is the string encoded into the QR a customer scans at
// their banking app: account|name|order reference|amount.
func transferPayload(d models.BankDetails, order models.Order) string {
	return fmt.Sprintf("%s|%s|%s|%d", d.AccountNumber, d.AccountName, order.OrderNumber, order.TotalAmount)
}

// PaymentQR returns a PNG QR code carrying the transfer reference for an
// order.
func PaymentQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, ok := findOrder(ctx, w, ps.ByName("ordernumber"))
	if !ok {
		return
	}

	png, err := qrcode.Encode(transferPayload(Details(), order), qrcode.Medium, 256)
	if err != nil {
		log.Println("PaymentQR encode error:", err)
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// PaymentInstructions renders a PDF with the bank details, the order
// summary and the transfer QR code.
func PaymentInstructions(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, ok := findOrder(ctx, w, ps.ByName("ordernumber"))
	if !ok {
		return
	}

	details := Details()
	qrPNG, err := qrcode.Encode(transferPayload(details, order), qrcode.Medium, 256)
	if err != nil {
		log.Println("PaymentInstructions QR error:", err)
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Payment Instructions")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Order: %s", order.OrderNumber))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Customer: %s", order.CustomerName))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Amount: NGN %d", order.TotalAmount))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, "Transfer to:")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Bank: %s", details.BankName))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Account Name: %s", details.AccountName))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Account Number: %s", details.AccountNumber))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, "Items")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	for _, item := range order.Items {
		pdf.Cell(0, 8, fmt.Sprintf("%s x %d - NGN %d", item.ProductName, item.Quantity, item.Price*int64(item.Quantity)))
		pdf.Ln(7)
	}
	pdf.Ln(4)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Use %s as your transfer reference. Send your receipt on WhatsApp %s.", order.OrderNumber, details.WhatsApp))

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Println("PaymentInstructions PDF error:", err)
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=payment-"+order.OrderNumber+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
