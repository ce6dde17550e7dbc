package valueobject

import (
	"testing"

	"github.com/kas-sigmafam/backend/internal/domain/entity"
)

func TestBalanceOf(t *testing.T) {
	transactions := []*entity.Transaction{
		{Type: entity.TransactionTypeIncome, Amount: 100000},
		{Type: entity.TransactionTypeIncome, Amount: 50000},
		{Type: entity.TransactionTypeExpense, Amount: 30000},
	}

	balance := BalanceOf(transactions)

	if balance.Income != 150000 {
		t.Errorf("Income = %d, want 150000", balance.Income)
	}
	if balance.Expense != 30000 {
		t.Errorf("Expense = %d, want 30000", balance.Expense)
	}
	if balance.Net != 120000 {
		t.Errorf("Net = %d, want 120000", balance.Net)
	}
}

func TestBalanceOf_EmptyList(t *testing.T) {
	balance := BalanceOf(nil)
	if balance.Income != 0 || balance.Expense != 0 || balance.Net != 0 {
		t.Errorf("expected zero balance, got %+v", balance)
	}
}

func TestBalanceOf_NegativeNet(t *testing.T) {
	transactions := []*entity.Transaction{
		{Type: entity.TransactionTypeIncome, Amount: 10000},
		{Type: entity.TransactionTypeExpense, Amount: 25000},
	}

	if net := BalanceOf(transactions).Net; net != -15000 {
		t.Errorf("Net = %d, want -15000", net)
	}
}

func TestTotalAccountBalance(t *testing.T) {
	t.Run("mixed balances sum to surplus", func(t *testing.T) {
		accounts := []*entity.Account{
			{Balance: 50000},
			{Balance: -20000},
		}
		if total := TotalAccountBalance(accounts); total != 30000 {
			t.Errorf("total = %d, want 30000", total)
		}
	})

	t.Run("total can be negative", func(t *testing.T) {
		accounts := []*entity.Account{
			{Balance: 5000},
			{Balance: -15000},
		}
		if total := TotalAccountBalance(accounts); total != -10000 {
			t.Errorf("total = %d, want -10000", total)
		}
	})

	t.Run("no accounts", func(t *testing.T) {
		if total := TotalAccountBalance(nil); total != 0 {
			t.Errorf("total = %d, want 0", total)
		}
	})
}
