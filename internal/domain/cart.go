package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Cart holds the items of one in-progress sale, keyed by product id.
// One cart belongs to exactly one sale and is discarded on completion
// or cancel.
type Cart struct {
	ID        string
	CreatedAt time.Time

	items map[string]*CartItem
}

func NewCart() *Cart {
	return &Cart{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		items:     make(map[string]*CartItem),
	}
}

// AddItem adds qty units of product at its current price, or bumps the
// quantity of an existing line. The unit price is snapshotted the first
// time the product enters the cart.
func (c *Cart) AddItem(product Product, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}

	if item, ok := c.items[product.ID]; ok {
		item.Quantity += qty
		return nil
	}

	c.items[product.ID] = &CartItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    qty,
		UnitPrice:   product.Price,
	}
	return nil
}

// RemoveItem removes qty units of a line. A qty below 1, or at or above
// the current line quantity, removes the line entirely. Returns false
// when the product is not in the cart.
func (c *Cart) RemoveItem(productID string, qty int) bool {
	item, ok := c.items[productID]
	if !ok {
		return false
	}

	if qty < 1 || qty >= item.Quantity {
		delete(c.items, productID)
		return true
	}

	item.Quantity -= qty
	return true
}

// UpdateQuantity sets the absolute quantity of an existing line. Fails
// when the product is absent or qty is not positive.
func (c *Cart) UpdateQuantity(productID string, qty int) error {
	item, ok := c.items[productID]
	if !ok || qty < 1 {
		return ErrInvalidQuantity
	}
	item.Quantity = qty
	return nil
}

// Items returns a value snapshot of the cart lines, sorted by product
// id so rendering and receipts are deterministic.
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, *item)
	}
	slices.SortFunc(items, func(a, b CartItem) int {
		return strings.Compare(a.ProductID, b.ProductID)
	})
	return items
}

func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, item := range c.items {
		total += item.TotalPrice()
	}
	return total
}

func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) Clear() {
	clear(c.items)
}

// String renders the cart for the sale sub-menu.
func (c *Cart) String() string {
	items := c.Items()
	if len(items) == 0 {
		return "(empty)"
	}

	var b strings.Builder
	b.WriteString("items:\n")
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s x%d @ $%.2f = $%.2f\n", i+1, item.ProductName, item.Quantity, item.UnitPrice, item.TotalPrice())
	}
	fmt.Fprintf(&b, "total: $%.2f", c.TotalPrice())
	return b.String()
}
