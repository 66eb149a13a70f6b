package returns

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"supermarket/pos/internal/domain"
	"supermarket/pos/internal/inventory"
	"supermarket/pos/internal/store"
)

// RequestedItem is one line of a return request against a receipt.
type RequestedItem struct {
	ProductID string
	Quantity  int
}

// Service processes returns against past receipts: it validates the
// requested quantities, refunds the payment, restores stock and keeps
// the append-only return history.
type Service struct {
	repo      store.Repository
	inventory *inventory.Service
}

func New(repo store.Repository, inv *inventory.Service) *Service {
	return &Service{
		repo:      repo,
		inventory: inv,
	}
}

func (s *Service) FindReceipt(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	return s.repo.FindReceiptByID(ctx, receiptID)
}

// ProcessReturn validates each requested line against the original
// receipt and the quantities already returned for it. Invalid lines are
// dropped with a warning; if nothing valid remains, or the refund total
// is zero, the whole return fails with no side effects. The refund only
// succeeds while the receipt's payment is in the success state, so a
// second return against the same receipt is rejected.
func (s *Service) ProcessReturn(ctx context.Context, receiptID string, requested []RequestedItem) (*domain.ReturnRecord, error) {
	receipt, err := s.repo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		return nil, err
	}

	purchasedByID := make(map[string]domain.CartItem, len(receipt.Items))
	for _, item := range receipt.Items {
		purchasedByID[item.ProductID] = item
	}

	returnedSoFar, err := s.repo.GetReturnedQtyByReceipt(ctx, receiptID)
	if err != nil {
		return nil, err
	}

	validItems := make([]domain.ReturnedItem, 0, len(requested))
	refundAmount := 0.0
	for _, line := range requested {
		original, ok := purchasedByID[line.ProductID]
		if !ok {
			log.Printf("[returns] WARN: dropping line %s: not on receipt %s", line.ProductID, receiptID)
			continue
		}
		if line.Quantity < 1 || line.Quantity+returnedSoFar[line.ProductID] > original.Quantity {
			log.Printf("[returns] WARN: dropping line %s: invalid quantity %d", line.ProductID, line.Quantity)
			continue
		}
		returnedSoFar[line.ProductID] += line.Quantity
		validItems = append(validItems, domain.ReturnedItem{
			ProductID:  original.ProductID,
			Name:       original.ProductName,
			Quantity:   line.Quantity,
			UnitPrice:  original.UnitPrice,
			TotalPrice: original.UnitPrice * float64(line.Quantity),
		})
		refundAmount += original.UnitPrice * float64(line.Quantity)
	}

	if len(validItems) == 0 || refundAmount == 0 {
		return nil, store.ErrInvalidReturn
	}

	if err := s.repo.RefundReceiptPayment(ctx, receiptID); err != nil {
		if errors.Is(err, domain.ErrPaymentNotRefundable) {
			return nil, store.ErrInvalidReturn
		}
		return nil, err
	}

	for _, item := range validItems {
		if err := s.inventory.UpdateProductStock(ctx, item.ProductID, item.Quantity); err != nil {
			log.Printf("[returns] WARN: failed to restore stock for %s: %v", item.ProductID, err)
		}
	}

	record := domain.ReturnRecord{
		ID:           uuid.NewString(),
		ReceiptID:    receiptID,
		Items:        validItems,
		RefundAmount: refundAmount,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := s.repo.AppendReturnRecord(ctx, record)
	if err != nil {
		return nil, err
	}

	log.Printf("[returns] return %s against receipt %s: refunded $%.2f", created.ID, receiptID, created.RefundAmount)
	return created, nil
}

// ReturnHistory returns all processed returns in creation order.
func (s *Service) ReturnHistory(ctx context.Context) ([]domain.ReturnRecord, error) {
	return s.repo.ListReturnRecords(ctx)
}
