package domain

import (
	"errors"
	"testing"
)

func TestUpdateStockRejectsNegativeResult(t *testing.T) {
	product := Product{ID: "P001", Name: "Cola", Price: 3.5, StockQuantity: 10}

	if err := product.UpdateStock(-11); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if product.StockQuantity != 10 {
		t.Fatalf("expected stock unchanged at 10, got %d", product.StockQuantity)
	}
}

func TestUpdateStockAppliesDelta(t *testing.T) {
	product := Product{ID: "P001", Name: "Cola", Price: 3.5, StockQuantity: 10}

	if err := product.UpdateStock(-10); err != nil {
		t.Fatalf("decrement to zero failed: %v", err)
	}
	if product.StockQuantity != 0 {
		t.Fatalf("expected stock 0, got %d", product.StockQuantity)
	}

	if err := product.UpdateStock(4); err != nil {
		t.Fatalf("increment failed: %v", err)
	}
	if product.StockQuantity != 4 {
		t.Fatalf("expected stock 4, got %d", product.StockQuantity)
	}
}
