package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type PaymentMethod string

const (
	MethodCash          PaymentMethod = "cash"
	MethodCreditCard    PaymentMethod = "credit_card"
	MethodDebitCard     PaymentMethod = "debit_card"
	MethodMobilePayment PaymentMethod = "mobile_payment"
)

type PaymentStatus string

const (
	StatusPending PaymentStatus = "pending"
	StatusSuccess PaymentStatus = "success"
	// No transition assigns StatusFailed; a payment that cannot
	// process stays pending.
	StatusFailed   PaymentStatus = "failed"
	StatusRefunded PaymentStatus = "refunded"
)

// Payment is the payment attached to one sale. It starts PENDING,
// moves to SUCCESS exactly once via Process, and from SUCCESS to the
// terminal REFUNDED state via Refund.
type Payment struct {
	ID            string        `json:"id"`
	Amount        float64       `json:"amount"`
	Method        PaymentMethod `json:"method"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transaction_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	ProcessedAt   *time.Time    `json:"processed_at,omitempty"`
}

func NewPayment(amount float64, method PaymentMethod) *Payment {
	return &Payment{
		ID:        uuid.NewString(),
		Amount:    amount,
		Method:    method,
		Status:    StatusPending,
		CreatedAt: time.Now().UTC(),
	}
}

// Process transitions a PENDING payment with a positive amount to
// SUCCESS and assigns a transaction id. A non-positive amount leaves
// the payment PENDING; a second call on a processed payment is a
// no-op error.
func (p *Payment) Process() error {
	if p.Status != StatusPending {
		return ErrPaymentNotPending
	}
	if p.Amount <= 0 {
		return ErrPaymentZeroAmount
	}

	p.Status = StatusSuccess
	p.TransactionID = "TXN" + strings.ToUpper(uuid.NewString()[:8])
	now := time.Now().UTC()
	p.ProcessedAt = &now
	return nil
}

// Refund transitions SUCCESS to REFUNDED. Any other starting state
// fails without a state change.
func (p *Payment) Refund() error {
	if p.Status != StatusSuccess {
		return ErrPaymentNotRefundable
	}
	p.Status = StatusRefunded
	return nil
}
