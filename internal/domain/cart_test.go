package domain

import (
	"errors"
	"testing"
)

func testProduct() Product {
	return Product{ID: "P001", Name: "Cola", Price: 3.5, StockQuantity: 100, Category: "Beverage"}
}

func TestAddItemAccumulatesQuantity(t *testing.T) {
	cart := NewCart()
	product := testProduct()

	if err := cart.AddItem(product, 2); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if err := cart.AddItem(product, 3); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	items := cart.Items()
	if len(items) != 1 {
		t.Fatalf("expected a single line, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", items[0].Quantity)
	}
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	cart := NewCart()

	if err := cart.AddItem(testProduct(), 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if err := cart.AddItem(testProduct(), -1); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if len(cart.Items()) != 0 {
		t.Fatalf("expected empty cart")
	}
}

func TestAddItemSnapshotsUnitPrice(t *testing.T) {
	cart := NewCart()
	product := testProduct()

	if err := cart.AddItem(product, 1); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	product.Price = 99.0
	items := cart.Items()
	if items[0].UnitPrice != 3.5 {
		t.Fatalf("expected snapshotted unit price 3.5, got %.2f", items[0].UnitPrice)
	}
}

func TestRemoveItemFullAndPartial(t *testing.T) {
	cart := NewCart()
	if err := cart.AddItem(testProduct(), 5); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	if !cart.RemoveItem("P001", 2) {
		t.Fatalf("partial remove failed")
	}
	if got := cart.Items()[0].Quantity; got != 3 {
		t.Fatalf("expected quantity 3 after partial remove, got %d", got)
	}

	if !cart.RemoveItem("P001", 3) {
		t.Fatalf("full remove failed")
	}
	if len(cart.Items()) != 0 {
		t.Fatalf("expected line removed when qty matches remaining")
	}
}

func TestRemoveItemWithoutQuantityDeletesLine(t *testing.T) {
	cart := NewCart()
	if err := cart.AddItem(testProduct(), 5); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	if !cart.RemoveItem("P001", 0) {
		t.Fatalf("remove failed")
	}
	if len(cart.Items()) != 0 {
		t.Fatalf("expected line removed")
	}
}

func TestRemoveItemAbsentProduct(t *testing.T) {
	cart := NewCart()
	if cart.RemoveItem("P404", 1) {
		t.Fatalf("expected remove of absent product to fail")
	}
}

func TestUpdateQuantity(t *testing.T) {
	cart := NewCart()
	if err := cart.AddItem(testProduct(), 2); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	if err := cart.UpdateQuantity("P001", 7); err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}
	if got := cart.Items()[0].Quantity; got != 7 {
		t.Fatalf("expected quantity 7, got %d", got)
	}

	if err := cart.UpdateQuantity("P001", 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity for qty 0, got %v", err)
	}
	if err := cart.UpdateQuantity("P404", 1); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity for absent product, got %v", err)
	}
}

func TestCartTotals(t *testing.T) {
	cart := NewCart()
	if err := cart.AddItem(Product{ID: "P001", Name: "Cola", Price: 3.5}, 2); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if err := cart.AddItem(Product{ID: "P005", Name: "Mineral Water", Price: 2.0}, 3); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	if got := cart.TotalPrice(); got != 13.0 {
		t.Fatalf("expected total price 13.0, got %.2f", got)
	}
	if got := cart.TotalQuantity(); got != 5 {
		t.Fatalf("expected total quantity 5, got %d", got)
	}

	sum := 0.0
	for _, item := range cart.Items() {
		sum += item.TotalPrice()
	}
	if sum != cart.TotalPrice() {
		t.Fatalf("line totals %.2f do not add up to cart total %.2f", sum, cart.TotalPrice())
	}
}

func TestCartClear(t *testing.T) {
	cart := NewCart()
	if err := cart.AddItem(testProduct(), 2); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	cart.Clear()
	if cart.TotalQuantity() != 0 || len(cart.Items()) != 0 {
		t.Fatalf("expected empty cart after clear")
	}
}
