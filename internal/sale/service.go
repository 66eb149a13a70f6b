package sale

import (
	"context"
	"log"
	"math"

	"supermarket/pos/internal/domain"
	"supermarket/pos/internal/inventory"
	"supermarket/pos/internal/store"
)

// Service orchestrates a sale: cart creation, item addition with stock
// reservation, payment, receipt creation and the sales history.
//
// Stock is reserved the moment an item is added to the cart, not at
// payment time. CancelSale releases the reservation, so an abandoned
// cart must go through it or its stock stays held.
type Service struct {
	repo           store.Repository
	inventory      *inventory.Service
	taxRatePercent float64
	discountAmount float64
}

func New(repo store.Repository, inv *inventory.Service, taxRatePercent float64, discountAmount float64) *Service {
	if taxRatePercent < 0 || taxRatePercent > 100 {
		taxRatePercent = 0
	}
	if discountAmount < 0 {
		discountAmount = 0
	}

	return &Service{
		repo:           repo,
		inventory:      inv,
		taxRatePercent: taxRatePercent,
		discountAmount: discountAmount,
	}
}

// NewCart starts a fresh, empty sale.
func (s *Service) NewCart() *domain.Cart {
	return domain.NewCart()
}

// AddProductToSale looks up the product, reserves stock by decrementing
// inventory immediately, and adds the item to the cart at the product's
// current price.
func (s *Service) AddProductToSale(ctx context.Context, cart *domain.Cart, productID string, qty int) error {
	if qty < 1 {
		return domain.ErrInvalidQuantity
	}

	product, err := s.inventory.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	if qty > product.StockQuantity {
		return domain.ErrInsufficientStock
	}

	if err := s.inventory.UpdateProductStock(ctx, productID, -qty); err != nil {
		return err
	}
	if err := cart.AddItem(*product, qty); err != nil {
		// Undo the reservation; the cart rejected the line.
		if restockErr := s.inventory.UpdateProductStock(ctx, productID, qty); restockErr != nil {
			log.Printf("[sale] WARN: failed to release stock for %s after cart rejection: %v", productID, restockErr)
		}
		return err
	}

	return nil
}

// CancelSale releases the stock reserved by the cart's items and
// empties the cart.
func (s *Service) CancelSale(ctx context.Context, cart *domain.Cart) error {
	for _, item := range cart.Items() {
		if err := s.inventory.UpdateProductStock(ctx, item.ProductID, item.Quantity); err != nil {
			return err
		}
	}
	cart.Clear()
	return nil
}

// ProcessPayment finalizes the sale: it builds a payment for the cart
// total plus configured tax minus configured discount, processes it,
// and on success appends a receipt to the sales history. On payment
// failure nothing is recorded.
func (s *Service) ProcessPayment(ctx context.Context, cart *domain.Cart, method domain.PaymentMethod) (*domain.Receipt, error) {
	total := cart.TotalPrice()
	tax := roundMoney(total * s.taxRatePercent / 100)
	discount := s.discountAmount
	if discount > total+tax {
		discount = total + tax
	}

	payment := domain.NewPayment(total+tax-discount, method)
	if err := payment.Process(); err != nil {
		return nil, err
	}

	receipt := domain.NewReceipt(cart.Items(), payment, total, tax, discount)
	created, err := s.repo.AppendReceipt(ctx, *receipt)
	if err != nil {
		return nil, err
	}

	log.Printf("[sale] receipt %s: %d items, paid $%.2f via %s", created.ID, len(created.Items), created.FinalAmount, method)
	return created, nil
}

// SalesHistory returns all completed receipts in creation order.
func (s *Service) SalesHistory(ctx context.Context) ([]domain.Receipt, error) {
	return s.repo.ListReceipts(ctx)
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
