package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewMonthlyBill_StartsUnpaid(t *testing.T) {
	bill := NewMonthlyBill(2025, 9, uuid.New(), uuid.New(), 15000)

	if bill.IsPaid {
		t.Error("new bill must start unpaid")
	}
	if bill.AmountPaid != 0 {
		t.Errorf("AmountPaid = %d, want 0", bill.AmountPaid)
	}
	if bill.PaidAt != nil {
		t.Error("PaidAt must be nil on a new bill")
	}
	if bill.AmountDue != 15000 {
		t.Errorf("AmountDue = %d, want 15000", bill.AmountDue)
	}
}

func TestMonthlyBill_MarkPaid(t *testing.T) {
	bill := NewMonthlyBill(2025, 9, uuid.New(), uuid.New(), 15000)
	now := time.Date(2025, time.September, 10, 12, 0, 0, 0, time.UTC)

	bill.MarkPaid(now)

	if !bill.IsPaid {
		t.Error("expected IsPaid true")
	}
	if bill.AmountPaid != bill.AmountDue {
		t.Errorf("AmountPaid = %d, want %d", bill.AmountPaid, bill.AmountDue)
	}
	if bill.PaidAt == nil || !bill.PaidAt.Equal(now) {
		t.Errorf("PaidAt = %v, want %v", bill.PaidAt, now)
	}
}

func TestMonthlyBill_MarkUnpaid(t *testing.T) {
	bill := NewMonthlyBill(2025, 9, uuid.New(), uuid.New(), 15000)
	bill.MarkPaid(time.Now().UTC())

	bill.MarkUnpaid()

	if bill.IsPaid {
		t.Error("expected IsPaid false")
	}
	if bill.AmountPaid != 0 {
		t.Errorf("AmountPaid = %d, want 0", bill.AmountPaid)
	}
	if bill.PaidAt != nil {
		t.Error("PaidAt must be nil after MarkUnpaid")
	}
}

func TestMonthlyBill_ToggleRoundTrip(t *testing.T) {
	bill := NewMonthlyBill(2025, 9, uuid.New(), uuid.New(), 20000)

	bill.MarkPaid(time.Now().UTC())
	bill.MarkUnpaid()
	bill.MarkPaid(time.Now().UTC())

	if !bill.IsPaid || bill.AmountPaid != 20000 || bill.PaidAt == nil {
		t.Errorf("unexpected state after toggle round trip: %+v", bill)
	}
}
