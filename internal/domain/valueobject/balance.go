// Package valueobject defines immutable domain values derived from entities.
package valueobject

import "github.com/kas-sigmafam/backend/internal/domain/entity"

// Balance holds the income/expense/net totals for a transaction set.
// Net is always Income - Expense; amounts are whole rupiah.
type Balance struct {
	Income  int64
	Expense int64
	Net     int64
}

// BalanceOf reduces a transaction list into income, expense and net totals.
// Callers filter by period before calling; this function applies no filtering.
func BalanceOf(transactions []*entity.Transaction) Balance {
	var b Balance
	for _, t := range transactions {
		switch t.Type {
		case entity.TransactionTypeIncome:
			b.Income += t.Amount
		case entity.TransactionTypeExpense:
			b.Expense += t.Amount
		}
	}
	b.Net = b.Income - b.Expense
	return b
}

// TotalAccountBalance sums all account balances. The result can be negative
// since individual account balances may be negative.
func TotalAccountBalance(accounts []*entity.Account) int64 {
	var total int64
	for _, a := range accounts {
		total += a.Balance
	}
	return total
}
