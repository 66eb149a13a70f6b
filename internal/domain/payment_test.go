package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestProcessPaymentTransitionsOnce(t *testing.T) {
	payment := NewPayment(7.0, MethodCash)

	if payment.Status != StatusPending {
		t.Fatalf("expected new payment to be pending, got %s", payment.Status)
	}
	if err := payment.Process(); err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if payment.Status != StatusSuccess {
		t.Fatalf("expected success, got %s", payment.Status)
	}
	if !strings.HasPrefix(payment.TransactionID, "TXN") || len(payment.TransactionID) != 11 {
		t.Fatalf("unexpected transaction id %q", payment.TransactionID)
	}
	if payment.ProcessedAt == nil {
		t.Fatalf("expected processed timestamp")
	}

	if err := payment.Process(); !errors.Is(err, ErrPaymentNotPending) {
		t.Fatalf("expected second process to fail with ErrPaymentNotPending, got %v", err)
	}
}

func TestProcessPaymentRejectsNonPositiveAmount(t *testing.T) {
	payment := NewPayment(0, MethodCreditCard)

	if err := payment.Process(); !errors.Is(err, ErrPaymentZeroAmount) {
		t.Fatalf("expected ErrPaymentZeroAmount, got %v", err)
	}
	if payment.Status != StatusPending {
		t.Fatalf("expected payment to stay pending, got %s", payment.Status)
	}
	if payment.TransactionID != "" {
		t.Fatalf("expected no transaction id, got %q", payment.TransactionID)
	}
}

func TestRefundOnlyFromSuccess(t *testing.T) {
	payment := NewPayment(7.0, MethodCash)

	if err := payment.Refund(); !errors.Is(err, ErrPaymentNotRefundable) {
		t.Fatalf("expected refund of pending payment to fail, got %v", err)
	}
	if payment.Status != StatusPending {
		t.Fatalf("expected payment to stay pending, got %s", payment.Status)
	}

	if err := payment.Process(); err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if err := payment.Refund(); err != nil {
		t.Fatalf("refund failed: %v", err)
	}
	if payment.Status != StatusRefunded {
		t.Fatalf("expected refunded, got %s", payment.Status)
	}

	if err := payment.Refund(); !errors.Is(err, ErrPaymentNotRefundable) {
		t.Fatalf("expected second refund to fail, got %v", err)
	}
	if payment.Status != StatusRefunded {
		t.Fatalf("refunded must be terminal, got %s", payment.Status)
	}
}
