package statistics

import (
	"sort"

	"github.com/at-ishikawa/lifeos/internal/model"
)

// Balance is the money summary of one month.
type Balance struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`
}

// MonthlyBalance sums the transactions in the calendar month of ref.
func MonthlyBalance(transactions []model.Transaction, ref model.Date) Balance {
	var b Balance
	for _, t := range transactions {
		if !t.Date.SameMonth(ref) {
			continue
		}
		switch t.Type {
		case model.TransactionTypeIncome:
			b.Income += t.Amount
		case model.TransactionTypeExpense:
			b.Expenses += t.Amount
		}
	}
	b.Balance = b.Income - b.Expenses
	return b
}

// MonthlyTransactions returns the transactions in the month of ref, newest first.
func MonthlyTransactions(transactions []model.Transaction, ref model.Date) []model.Transaction {
	monthly := make([]model.Transaction, 0)
	for _, t := range transactions {
		if t.Date.SameMonth(ref) {
			monthly = append(monthly, t)
		}
	}
	sort.SliceStable(monthly, func(i, j int) bool { return monthly[i].Date.After(monthly[j].Date) })
	return monthly
}

type CategoryTotal struct {
	Category model.TransactionCategory `json:"category"`
	Amount   float64                   `json:"amount"`
}

// ExpensesByCategory totals expenses per category, largest first.
func ExpensesByCategory(transactions []model.Transaction) []CategoryTotal {
	totals := make(map[model.TransactionCategory]float64)
	var order []model.TransactionCategory
	for _, t := range transactions {
		if t.Type != model.TransactionTypeExpense {
			continue
		}
		if _, ok := totals[t.Category]; !ok {
			order = append(order, t.Category)
		}
		totals[t.Category] += t.Amount
	}

	result := make([]CategoryTotal, 0, len(order))
	for _, c := range order {
		result = append(result, CategoryTotal{Category: c, Amount: totals[c]})
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Amount > result[j].Amount })
	return result
}
