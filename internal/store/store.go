package store

import (
	"context"
	"errors"

	"supermarket/pos/internal/domain"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicateProduct = errors.New("duplicate product")
	ErrInvalidProduct   = errors.New("invalid product")
	ErrInvalidReceipt   = errors.New("invalid receipt")
	ErrInvalidReturn    = errors.New("invalid return")
)

type Repository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	GetProductByBarcode(ctx context.Context, barcode string) (*domain.Product, error)
	SearchProducts(ctx context.Context, keyword string) ([]domain.Product, error)
	AddProduct(ctx context.Context, product domain.Product) error
	AdjustStock(ctx context.Context, id string, delta int) error
	AppendReceipt(ctx context.Context, receipt domain.Receipt) (*domain.Receipt, error)
	FindReceiptByID(ctx context.Context, id string) (*domain.Receipt, error)
	ListReceipts(ctx context.Context) ([]domain.Receipt, error)
	RefundReceiptPayment(ctx context.Context, receiptID string) error
	GetReturnedQtyByReceipt(ctx context.Context, receiptID string) (map[string]int, error)
	AppendReturnRecord(ctx context.Context, record domain.ReturnRecord) (*domain.ReturnRecord, error)
	ListReturnRecords(ctx context.Context) ([]domain.ReturnRecord, error)
}
