package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"supermarket/pos/internal/domain"
	"supermarket/pos/internal/inventory"
	"supermarket/pos/internal/returns"
	"supermarket/pos/internal/sale"
	"supermarket/pos/internal/store"
)

var errInterrupted = errors.New("input closed")

// UI drives the services through an interactive text menu. It is pure
// presentation: every domain failure is translated to a user-facing
// message and the loop always returns to the menu.
type UI struct {
	inventory *inventory.Service
	sales     *sale.Service
	returns   *returns.Service
	storeName string

	in  *bufio.Reader
	out io.Writer
}

func New(inv *inventory.Service, sales *sale.Service, rets *returns.Service, storeName string, in io.Reader, out io.Writer) *UI {
	return &UI{
		inventory: inv,
		sales:     sales,
		returns:   rets,
		storeName: storeName,
		in:        bufio.NewReader(in),
		out:       out,
	}
}

// Run loops on the main menu until the operator exits, the input
// stream closes, or the context is canceled.
func (u *UI) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		u.clearScreen()
		u.printMenu()

		choice, err := u.readLine("please choose: ")
		if err != nil {
			return nil
		}

		switch choice {
		case "1":
			if err := u.startNewSale(ctx); err != nil {
				return nil
			}
		case "2":
			if err := u.processReturn(ctx); err != nil {
				return nil
			}
		case "3":
			u.clearScreen()
			u.displayProducts(ctx)
			u.pause()
		case "4":
			u.clearScreen()
			u.viewSalesHistory(ctx)
			u.pause()
		case "5":
			u.clearScreen()
			u.viewReturnHistory(ctx)
			u.pause()
		case "6":
			fmt.Fprintln(u.out, "Thank you for using the supermarket POS system. Goodbye!")
			return nil
		default:
			fmt.Fprintln(u.out, "Invalid selection, please enter again")
			u.pause()
		}
	}
}

func (u *UI) printMenu() {
	banner := strings.Repeat("=", 50)
	fmt.Fprintln(u.out, banner)
	fmt.Fprintf(u.out, "           %s\n", u.storeName)
	fmt.Fprintln(u.out, banner)
	fmt.Fprintln(u.out, "1. Start New Sale")
	fmt.Fprintln(u.out, "2. Handle Returns")
	fmt.Fprintln(u.out, "3. Check product inventory")
	fmt.Fprintln(u.out, "4. View Sales History")
	fmt.Fprintln(u.out, "5. View return history")
	fmt.Fprintln(u.out, "6. Exit")
	fmt.Fprintln(u.out, banner)
}

func (u *UI) displayProducts(ctx context.Context) []domain.Product {
	products, err := u.inventory.ListProducts(ctx)
	if err != nil {
		fmt.Fprintf(u.out, "Failed to load inventory: %v\n", err)
		return nil
	}

	divider := strings.Repeat("-", 60)
	fmt.Fprintln(u.out, "\nProduct Inventory:")
	fmt.Fprintln(u.out, divider)
	for i, p := range products {
		fmt.Fprintf(u.out, "%d. %s - $%.2f (Inventory: %d)\n", i+1, p.Name, p.Price, p.StockQuantity)
	}
	fmt.Fprintln(u.out, divider)
	return products
}

func (u *UI) startNewSale(ctx context.Context) error {
	cart := u.sales.NewCart()
	fmt.Fprintln(u.out, "\nStart a new sale...")

	for {
		u.clearScreen()
		fmt.Fprintln(u.out, "Current shopping cart:")
		fmt.Fprintln(u.out, cart.String())
		fmt.Fprintln(u.out, "\nOptions:")
		fmt.Fprintln(u.out, "1. Add Product")
		fmt.Fprintln(u.out, "2. Complete the sale")
		fmt.Fprintln(u.out, "3. Cancel Sale")

		choice, err := u.readLine("\nPlease select an action: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			u.addProductToSale(ctx, cart)
		case "2":
			u.completeSale(ctx, cart)
			return nil
		case "3":
			if err := u.sales.CancelSale(ctx, cart); err != nil {
				fmt.Fprintf(u.out, "Failed to release reserved stock: %v\n", err)
			}
			fmt.Fprintln(u.out, "The sale has been canceled")
			return nil
		default:
			fmt.Fprintln(u.out, "Invalid selection, please enter again")
		}
	}
}

func (u *UI) addProductToSale(ctx context.Context, cart *domain.Cart) {
	products := u.displayProducts(ctx)
	if len(products) == 0 {
		u.pause()
		return
	}

	num, err := u.readInt("\nPlease enter the product number: ")
	if err != nil {
		u.pause()
		return
	}
	if num < 1 || num > len(products) {
		fmt.Fprintln(u.out, "Invalid product number")
		u.pause()
		return
	}
	product := products[num-1]

	qty, err := u.readInt("Please enter the quantity: ")
	if err != nil {
		u.pause()
		return
	}
	if qty < 1 {
		fmt.Fprintln(u.out, "The quantity must be greater than 0")
		u.pause()
		return
	}

	switch err := u.sales.AddProductToSale(ctx, cart, product.ID, qty); {
	case err == nil:
		fmt.Fprintf(u.out, "Added %s x%d\n", product.Name, qty)
	case errors.Is(err, domain.ErrInsufficientStock):
		fmt.Fprintln(u.out, "Failed to add, insufficient stock")
	case errors.Is(err, store.ErrNotFound):
		fmt.Fprintln(u.out, "Product not found")
	default:
		fmt.Fprintf(u.out, "Failed to add: %v\n", err)
	}

	u.pause()
}

func (u *UI) completeSale(ctx context.Context, cart *domain.Cart) {
	if cart.TotalQuantity() == 0 {
		fmt.Fprintln(u.out, "The shopping cart is empty, unable to complete the purchase.")
		u.pause()
		return
	}

	fmt.Fprintln(u.out, "\nChoose a payment method:")
	fmt.Fprintln(u.out, "1. Cash")
	fmt.Fprintln(u.out, "2. Credit card")
	fmt.Fprintln(u.out, "3. Debit Card")
	fmt.Fprintln(u.out, "4. Mobile payment")

	methods := map[string]domain.PaymentMethod{
		"1": domain.MethodCash,
		"2": domain.MethodCreditCard,
		"3": domain.MethodDebitCard,
		"4": domain.MethodMobilePayment,
	}

	choice, err := u.readLine("Please choose a payment method: ")
	if err != nil {
		return
	}
	method, ok := methods[choice]
	if !ok {
		fmt.Fprintln(u.out, "Invalid payment method")
		u.pause()
		return
	}

	receipt, err := u.sales.ProcessPayment(ctx, cart, method)
	if err != nil {
		fmt.Fprintln(u.out, "Payment processing failed")
	} else {
		fmt.Fprintln(u.out, "\nSale completed!")
		fmt.Fprintln(u.out, receipt.Text())
	}

	u.pause()
}

func (u *UI) processReturn(ctx context.Context) error {
	fmt.Fprintln(u.out, "\nHandle Returns")
	receiptID, err := u.readLine("Please enter the receipt ID: ")
	if err != nil {
		return err
	}

	receipt, err := u.returns.FindReceipt(ctx, receiptID)
	if err != nil {
		fmt.Fprintln(u.out, "No corresponding sales record found")
		u.pause()
		return nil
	}

	fmt.Fprintln(u.out, "\nFound sales record:")
	fmt.Fprintln(u.out, receipt.Text())

	fmt.Fprintln(u.out, "\nPlease enter the items you want to return:")
	for i, item := range receipt.Items {
		fmt.Fprintf(u.out, "%d. %s - Purchase Quantity: %d\n", i+1, item.ProductName, item.Quantity)
	}

	var requested []returns.RequestedItem
	for {
		num, err := u.readInt("\nPlease enter the item number (enter 0 to finish): ")
		if err != nil {
			if errors.Is(err, errInterrupted) {
				return err
			}
			continue
		}
		if num == 0 {
			break
		}
		if num < 1 || num > len(receipt.Items) {
			fmt.Fprintln(u.out, "Invalid item number")
			continue
		}
		original := receipt.Items[num-1]

		qty, err := u.readInt("Please enter the return quantity: ")
		if err != nil {
			if errors.Is(err, errInterrupted) {
				return err
			}
			continue
		}
		if qty < 1 || qty > original.Quantity {
			fmt.Fprintln(u.out, "Invalid return quantity")
			continue
		}

		requested = append(requested, returns.RequestedItem{ProductID: original.ProductID, Quantity: qty})
		fmt.Fprintf(u.out, "Added %s x%d to return list\n", original.ProductName, qty)
	}

	if len(requested) == 0 {
		fmt.Fprintln(u.out, "There are no items to return")
		u.pause()
		return nil
	}

	record, err := u.returns.ProcessReturn(ctx, receiptID, requested)
	if err != nil {
		fmt.Fprintln(u.out, "Return processing failed")
	} else {
		fmt.Fprintln(u.out, "\nReturn processed successfully!")
		fmt.Fprintf(u.out, "Refund Amount: $%.2f\n", record.RefundAmount)
		fmt.Fprintf(u.out, "Return ID: %s\n", record.ID)
	}

	u.pause()
	return nil
}

func (u *UI) viewSalesHistory(ctx context.Context) {
	sales, err := u.sales.SalesHistory(ctx)
	if err != nil {
		fmt.Fprintf(u.out, "Failed to load sales history: %v\n", err)
		return
	}

	divider := strings.Repeat("-", 80)
	fmt.Fprintln(u.out, "\nSales History:")
	fmt.Fprintln(u.out, divider)
	for i, receipt := range sales {
		fmt.Fprintf(u.out, "%d. Receipt ID: %s | Time: %s | Amount: $%.2f\n",
			i+1, receipt.ID, receipt.CreatedAt.Format("2006-01-02 15:04"), receipt.FinalAmount)
	}
	fmt.Fprintln(u.out, divider)
}

func (u *UI) viewReturnHistory(ctx context.Context) {
	records, err := u.returns.ReturnHistory(ctx)
	if err != nil {
		fmt.Fprintf(u.out, "Failed to load return history: %v\n", err)
		return
	}

	divider := strings.Repeat("-", 80)
	fmt.Fprintln(u.out, "\nReturn History:")
	fmt.Fprintln(u.out, divider)
	for i, record := range records {
		fmt.Fprintf(u.out, "%d. Return ID: %s | Original Receipt ID: %s | Refund Amount: $%.2f\n",
			i+1, record.ID, record.ReceiptID, record.RefundAmount)
	}
	fmt.Fprintln(u.out, divider)
}

// readLine prompts and reads one trimmed line. The error is
// errInterrupted when the input stream has closed.
func (u *UI) readLine(prompt string) (string, error) {
	fmt.Fprint(u.out, prompt)
	line, err := u.in.ReadString('\n')
	if err != nil && line == "" {
		return "", errInterrupted
	}
	return strings.TrimSpace(line), nil
}

// readInt reads one line and parses it as an integer. Non-numeric
// input is reported to the operator and returned as an error so the
// caller can re-prompt.
func (u *UI) readInt(prompt string) (int, error) {
	line, err := u.readLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintln(u.out, "Please enter a valid number")
		return 0, err
	}
	return n, nil
}

func (u *UI) pause() {
	fmt.Fprint(u.out, "\nPress Enter to continue...")
	_, _ = u.in.ReadString('\n')
}

func (u *UI) clearScreen() {
	fmt.Fprint(u.out, "\033[2J\033[H")
}
