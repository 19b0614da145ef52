package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionCategory_ValidFor(t *testing.T) {
	tests := []struct {
		category TransactionCategory
		typ      TransactionType
		want     bool
	}{
		{IncomeCategorySalary, TransactionTypeIncome, true},
		{IncomeCategorySalary, TransactionTypeExpense, false},
		{ExpenseCategoryBills, TransactionTypeExpense, true},
		{ExpenseCategoryBills, TransactionTypeIncome, false},
		{CategoryOther, TransactionTypeIncome, true},
		{CategoryOther, TransactionTypeExpense, true},
		{"lottery", TransactionTypeIncome, false},
		{ExpenseCategoryFood, "transfer", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.category)+"/"+string(tt.typ), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.category.ValidFor(tt.typ))
		})
	}
}
