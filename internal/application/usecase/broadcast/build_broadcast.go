// Package broadcast renders the monthly WhatsApp recap message.
package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/kas-sigmafam/backend/internal/application/adapter"
	"github.com/kas-sigmafam/backend/internal/domain/entity"
	domainerror "github.com/kas-sigmafam/backend/internal/domain/error"
	"github.com/kas-sigmafam/backend/internal/domain/valueobject"
)

// fallbackName labels income without a resident and expenses without a category.
const fallbackName = "Lainnya"

// BuildBroadcastInput represents the input for broadcast rendering.
type BuildBroadcastInput struct {
	Period valueobject.Period
}

// BuildBroadcastOutput is the rendered message plus the stats shown beside it.
// It is JSON-cached as a whole, so all fields are serializable.
type BuildBroadcastOutput struct {
	Message      string `json:"message"`
	WhatsAppURL  string `json:"whatsapp_url"`
	IncomeCount  int    `json:"income_count"`
	ExpenseCount int    `json:"expense_count"`
	TotalIncome  int64  `json:"total_income"`
	TotalExpense int64  `json:"total_expense"`
	TotalBalance int64  `json:"total_balance"`
}

// BuildBroadcastUseCase assembles the monthly recap from the period's
// transactions, the expense category menu and the current account totals.
// Rendered output is cached per period and invalidated by every write to the
// underlying collections.
type BuildBroadcastUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	accountRepo     adapter.AccountRepository
	cache           adapter.BroadcastCache
	appURL          string
}

// NewBuildBroadcastUseCase creates a new BuildBroadcastUseCase instance.
func NewBuildBroadcastUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	accountRepo adapter.AccountRepository,
	cache adapter.BroadcastCache,
	appURL string,
) *BuildBroadcastUseCase {
	return &BuildBroadcastUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		accountRepo:     accountRepo,
		cache:           cache,
		appURL:          appURL,
	}
}

// Execute renders the broadcast for the period, serving from cache when the
// underlying data has not changed since the last render.
func (uc *BuildBroadcastUseCase) Execute(ctx context.Context, input BuildBroadcastInput) (*BuildBroadcastOutput, error) {
	if !input.Period.Valid() {
		return nil, domainerror.ErrInvalidPeriod
	}

	if cached, err := uc.cache.Get(ctx, input.Period.Year, input.Period.Month); err == nil && cached != nil {
		var output BuildBroadcastOutput
		if err := json.Unmarshal(cached, &output); err == nil {
			return &output, nil
		}
	}

	start, end := input.Period.Range()
	transactions, err := uc.transactionRepo.FindByPeriod(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	expenseCategories, err := uc.categoryRepo.FindByType(ctx, entity.CategoryTypeExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense categories: %w", err)
	}

	accounts, err := uc.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	var incomes, expenses []*entity.TransactionWithRelations
	for _, t := range transactions {
		if t.Type == entity.TransactionTypeIncome {
			incomes = append(incomes, t)
		} else {
			expenses = append(expenses, t)
		}
	}

	var totalIncome, totalExpense int64
	for _, t := range incomes {
		totalIncome += t.Amount
	}
	for _, t := range expenses {
		totalExpense += t.Amount
	}
	saldo := valueobject.TotalAccountBalance(accounts)

	message := uc.renderMessage(input.Period, incomes, expenses, expenseCategories, totalIncome, totalExpense, saldo)

	output := &BuildBroadcastOutput{
		Message:      message,
		WhatsAppURL:  "https://wa.me/?text=" + url.QueryEscape(message),
		IncomeCount:  len(incomes),
		ExpenseCount: len(expenses),
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		TotalBalance: saldo,
	}

	if payload, err := json.Marshal(output); err == nil {
		_ = uc.cache.Set(ctx, input.Period.Year, input.Period.Month, payload)
	}

	return output, nil
}

func (uc *BuildBroadcastUseCase) renderMessage(
	period valueobject.Period,
	incomes, expenses []*entity.TransactionWithRelations,
	expenseCategories []*entity.Category,
	totalIncome, totalExpense, saldo int64,
) string {
	monthName := period.MonthName()

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", uc.appURL)
	fmt.Fprintf(&b, "*Iuran %s %d*\n\n", monthName, period.Year)

	if len(incomes) > 0 {
		b.WriteString("*Uang Diterima:*\n")
		items := make([]string, len(incomes))
		for i, t := range incomes {
			name := fallbackName
			if t.Resident != nil {
				name = t.Resident.Name
			}
			items[i] = name + " " + FormatShortRupiah(t.Amount)
		}
		b.WriteString(strings.Join(items, " + "))
		fmt.Fprintf(&b, "\nTotal: %s\n\n", FormatRupiah(totalIncome))
	}

	if len(expenses) > 0 {
		b.WriteString("*Uang Keluar:*\n")
		items := make([]string, len(expenses))
		for i, t := range expenses {
			name := fallbackName
			if t.Category != nil {
				name = t.Category.Name
			}
			items[i] = FormatShortRupiah(t.Amount) + " (" + name + ")"
		}
		b.WriteString(strings.Join(items, " + "))
		fmt.Fprintf(&b, "\nTotal: %s\n\n", FormatRupiah(totalExpense))
	}

	var listrik, others []*entity.Category
	for _, c := range expenseCategories {
		if strings.Contains(strings.ToLower(c.Name), "listrik") {
			listrik = append(listrik, c)
		} else {
			others = append(others, c)
		}
	}
	writeCategoryMenu(&b, "*Iuran Listrik:*", listrik)
	writeCategoryMenu(&b, "*Iuran Lain-lain:*", others)

	fmt.Fprintf(&b, "*Ringkasan %s:*\n", monthName)
	fmt.Fprintf(&b, "Pemasukan: %s\n", FormatRupiah(totalIncome))
	fmt.Fprintf(&b, "Pengeluaran: %s\n", FormatRupiah(totalExpense))
	net := totalIncome - totalExpense
	plus := ""
	if net >= 0 {
		plus = "+"
	}
	fmt.Fprintf(&b, "Selisih: %s%s\n\n", plus, FormatRupiah(net))

	fmt.Fprintf(&b, "*Saldo Kas Saat Ini: %s*", FormatRupiah(saldo))

	return b.String()
}

// writeCategoryMenu appends a numbered per-person due list, skipped entirely
// when the section has no categories.
func writeCategoryMenu(b *strings.Builder, header string, categories []*entity.Category) {
	if len(categories) == 0 {
		return
	}
	b.WriteString(header)
	b.WriteByte('\n')
	for i, c := range categories {
		perPerson := "-"
		if c.DefaultPerPerson != nil && *c.DefaultPerPerson != 0 {
			perPerson = FormatShortRupiah(*c.DefaultPerPerson) + "/org"
		}
		fmt.Fprintf(b, "%d. %s %s\n", i+1, c.Name, perPerson)
	}
	b.WriteByte('\n')
}
