package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Receipt is the immutable record of a completed sale. Items are a
// value snapshot of the cart at payment time, not live references.
type Receipt struct {
	ID             string     `json:"id"`
	Items          []CartItem `json:"items"`
	Payment        *Payment   `json:"payment"`
	TotalAmount    float64    `json:"total_amount"`
	TaxAmount      float64    `json:"tax_amount"`
	DiscountAmount float64    `json:"discount_amount"`
	FinalAmount    float64    `json:"final_amount"`
	CreatedAt      time.Time  `json:"created_at"`
}

func NewReceipt(items []CartItem, payment *Payment, total, tax, discount float64) *Receipt {
	return &Receipt{
		ID:             uuid.NewString(),
		Items:          items,
		Payment:        payment,
		TotalAmount:    total,
		TaxAmount:      tax,
		DiscountAmount: discount,
		FinalAmount:    total + tax - discount,
		CreatedAt:      time.Now().UTC(),
	}
}

// Text renders the canonical receipt layout.
func (r *Receipt) Text() string {
	banner := strings.Repeat("=", 40)
	divider := strings.Repeat("-", 40)

	lines := []string{
		banner,
		"           Supermarket receipt",
		banner,
		"receiptID: " + r.ID,
		"time: " + r.CreatedAt.Format("2006-01-02 15:04:05"),
		divider,
		"Product Details:",
	}
	for i, item := range r.Items {
		lines = append(lines, fmt.Sprintf("%d. %s x%d @ $%.2f", i+1, item.ProductName, item.Quantity, item.UnitPrice))
	}
	lines = append(lines, divider, fmt.Sprintf("Total: $%.2f", r.TotalAmount))
	if r.TaxAmount > 0 {
		lines = append(lines, fmt.Sprintf("Tax: $%.2f", r.TaxAmount))
	}
	if r.DiscountAmount > 0 {
		lines = append(lines, fmt.Sprintf("Discount: -$%.2f", r.DiscountAmount))
	}
	lines = append(lines,
		fmt.Sprintf("Amount Paid: $%.2f", r.FinalAmount),
		"Payment Method: "+string(r.Payment.Method),
		"PaymentID: "+r.Payment.TransactionID,
		banner,
		"        Thank you for your patronage, and we look forward to seeing you again!",
		banner,
	)

	return strings.Join(lines, "\n")
}

func (r *Receipt) String() string {
	return r.Text()
}

// ReturnedItem is one line of a processed return, priced at the unit
// price from the original receipt.
type ReturnedItem struct {
	ProductID  string  `json:"product_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// ReturnRecord is the immutable record of a processed refund against a
// prior receipt.
type ReturnRecord struct {
	ID           string         `json:"id"`
	ReceiptID    string         `json:"receipt_id"`
	Items        []ReturnedItem `json:"items"`
	RefundAmount float64        `json:"refund_amount"`
	CreatedAt    time.Time      `json:"created_at"`
}
