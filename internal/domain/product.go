package domain

import "errors"

var (
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrPaymentNotPending    = errors.New("payment not pending")
	ErrPaymentNotRefundable = errors.New("payment not refundable")
	ErrPaymentZeroAmount    = errors.New("payment amount must be positive")
)

type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	Category      string  `json:"category"`
	Barcode       string  `json:"barcode,omitempty"`
}

// UpdateStock applies a stock delta. Negative deltas represent sales,
// positive deltas returns or restocks. A delta that would drive the
// stock below zero is rejected and the quantity is left unchanged.
func (p *Product) UpdateStock(delta int) error {
	if p.StockQuantity+delta < 0 {
		return ErrInsufficientStock
	}
	p.StockQuantity += delta
	return nil
}

type CartItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// TotalPrice is the line total at the unit price snapshotted when the
// item was added to the cart.
func (i CartItem) TotalPrice() float64 {
	return i.UnitPrice * float64(i.Quantity)
}
