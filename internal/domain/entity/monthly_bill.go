// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MonthlyBill is one resident's recurring due for one expense category in a
// given month. At most one bill exists per (year, month, resident, category).
//
// Payment is a two-state toggle: a bill is either fully unpaid
// (is_paid=false, amount_paid=0, paid_at=nil) or fully paid
// (is_paid=true, amount_paid=amount_due, paid_at set). Partial payments are
// not representable; use MarkPaid/MarkUnpaid so the three fields always move
// together.
type MonthlyBill struct {
	ID         uuid.UUID
	Year       int
	Month      int
	ResidentID uuid.UUID
	CategoryID uuid.UUID
	AmountDue  int64
	AmountPaid int64
	IsPaid     bool
	PaidAt     *time.Time
	CreatedAt  time.Time
}

// NewMonthlyBill creates a new unpaid MonthlyBill entity.
func NewMonthlyBill(year, month int, residentID, categoryID uuid.UUID, amountDue int64) *MonthlyBill {
	return &MonthlyBill{
		ID:         uuid.New(),
		Year:       year,
		Month:      month,
		ResidentID: residentID,
		CategoryID: categoryID,
		AmountDue:  amountDue,
		AmountPaid: 0,
		IsPaid:     false,
		CreatedAt:  time.Now().UTC(),
	}
}

// MarkPaid transitions the bill to the paid state.
func (b *MonthlyBill) MarkPaid(now time.Time) {
	b.IsPaid = true
	b.AmountPaid = b.AmountDue
	b.PaidAt = &now
}

// MarkUnpaid transitions the bill back to the unpaid state.
func (b *MonthlyBill) MarkUnpaid() {
	b.IsPaid = false
	b.AmountPaid = 0
	b.PaidAt = nil
}

// MonthlyBillWithRelations is a bill joined with its resident and category
// rows, as the listing endpoint returns it.
type MonthlyBillWithRelations struct {
	MonthlyBill
	Resident *Resident
	Category *Category
}
