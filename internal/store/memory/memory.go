package memory

import (
	"context"
	"strings"
	"sync"

	"supermarket/pos/internal/domain"
	"supermarket/pos/internal/store"
)

// Store is a mutex-guarded in-memory repository. Products keep their
// catalog insertion order; receipts and return records are append-only.
type Store struct {
	mu           sync.RWMutex
	products     map[string]*domain.Product
	productOrder []string
	receiptsByID map[string]*domain.Receipt
	receipts     []*domain.Receipt
	returns      []domain.ReturnRecord
}

func New() *Store {
	return &Store{
		products:     make(map[string]*domain.Product),
		productOrder: make([]string, 0, 16),
		receiptsByID: make(map[string]*domain.Receipt),
		receipts:     make([]*domain.Receipt, 0, 32),
		returns:      make([]domain.ReturnRecord, 0, 16),
	}
}

// NewSeeded builds a store preloaded with the sample catalog. It stands
// in for an external catalog data source in demo mode.
func NewSeeded() *Store {
	s := New()
	seed := []domain.Product{
		{ID: "P001", Name: "Cola", Price: 3.5, StockQuantity: 100, Category: "Beverage", Barcode: "1234567890123"},
		{ID: "P002", Name: "Potato Chips", Price: 8.5, StockQuantity: 50, Category: "Snack", Barcode: "1234567890124"},
		{ID: "P003", Name: "Milk", Price: 12.0, StockQuantity: 30, Category: "Dairy", Barcode: "1234567890125"},
		{ID: "P004", Name: "Bread", Price: 6.0, StockQuantity: 40, Category: "Food", Barcode: "1234567890126"},
		{ID: "P005", Name: "Mineral Water", Price: 2.0, StockQuantity: 200, Category: "Beverage", Barcode: "1234567890127"},
	}
	for _, p := range seed {
		product := p
		s.products[product.ID] = &product
		s.productOrder = append(s.productOrder, product.ID)
	}
	return s
}

func (s *Store) ListProducts(_ context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]domain.Product, 0, len(s.productOrder))
	for _, id := range s.productOrder {
		products = append(products, *s.products[id])
	}
	return products, nil
}

func (s *Store) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copyProduct := *product
	return &copyProduct, nil
}

func (s *Store) GetProductByBarcode(_ context.Context, barcode string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.productOrder {
		if s.products[id].Barcode == barcode {
			copyProduct := *s.products[id]
			return &copyProduct, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) SearchProducts(_ context.Context, keyword string) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keyword = strings.ToLower(keyword)
	results := make([]domain.Product, 0, len(s.productOrder))
	for _, id := range s.productOrder {
		p := s.products[id]
		if strings.Contains(strings.ToLower(p.Name), keyword) || strings.Contains(strings.ToLower(p.Category), keyword) {
			results = append(results, *p)
		}
	}
	return results, nil
}

func (s *Store) AddProduct(_ context.Context, product domain.Product) error {
	if product.ID == "" || product.Name == "" || product.Price < 0 || product.StockQuantity < 0 {
		return store.ErrInvalidProduct
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[product.ID]; exists {
		return store.ErrDuplicateProduct
	}
	s.products[product.ID] = &product
	s.productOrder = append(s.productOrder, product.ID)
	return nil
}

func (s *Store) AdjustStock(_ context.Context, id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return store.ErrNotFound
	}
	return product.UpdateStock(delta)
}

func (s *Store) AppendReceipt(_ context.Context, receipt domain.Receipt) (*domain.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if receipt.ID == "" || receipt.Payment == nil {
		return nil, store.ErrInvalidReceipt
	}
	stored := cloneReceipt(&receipt)
	s.receiptsByID[stored.ID] = stored
	s.receipts = append(s.receipts, stored)
	return cloneReceipt(stored), nil
}

func (s *Store) FindReceiptByID(_ context.Context, id string) (*domain.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	receipt, ok := s.receiptsByID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneReceipt(receipt), nil
}

func (s *Store) ListReceipts(_ context.Context) ([]domain.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	receipts := make([]domain.Receipt, 0, len(s.receipts))
	for _, r := range s.receipts {
		receipts = append(receipts, *cloneReceipt(r))
	}
	return receipts, nil
}

// RefundReceiptPayment moves the stored receipt's payment from SUCCESS
// to REFUNDED. Any other payment state fails without a state change.
func (s *Store) RefundReceiptPayment(_ context.Context, receiptID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	receipt, ok := s.receiptsByID[receiptID]
	if !ok {
		return store.ErrNotFound
	}
	return receipt.Payment.Refund()
}

func (s *Store) GetReturnedQtyByReceipt(_ context.Context, receiptID string) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]int)
	for _, record := range s.returns {
		if record.ReceiptID != receiptID {
			continue
		}
		for _, item := range record.Items {
			result[item.ProductID] += item.Quantity
		}
	}
	return result, nil
}

func (s *Store) AppendReturnRecord(_ context.Context, record domain.ReturnRecord) (*domain.ReturnRecord, error) {
	if record.ID == "" || record.ReceiptID == "" || len(record.Items) == 0 {
		return nil, store.ErrInvalidReturn
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := record
	stored.Items = append([]domain.ReturnedItem(nil), record.Items...)
	s.returns = append(s.returns, stored)
	created := stored
	created.Items = append([]domain.ReturnedItem(nil), stored.Items...)
	return &created, nil
}

func (s *Store) ListReturnRecords(_ context.Context) ([]domain.ReturnRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.ReturnRecord, 0, len(s.returns))
	for _, record := range s.returns {
		copyRecord := record
		copyRecord.Items = append([]domain.ReturnedItem(nil), record.Items...)
		records = append(records, copyRecord)
	}
	return records, nil
}

func cloneReceipt(r *domain.Receipt) *domain.Receipt {
	copyReceipt := *r
	copyReceipt.Items = append([]domain.CartItem(nil), r.Items...)
	if r.Payment != nil {
		copyPayment := *r.Payment
		copyReceipt.Payment = &copyPayment
	}
	return &copyReceipt
}
