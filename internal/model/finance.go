package model

import "time"

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// TransactionCategory holds either an income or an expense category.
type TransactionCategory string

const (
	IncomeCategorySalary     TransactionCategory = "salary"
	IncomeCategoryFreelance  TransactionCategory = "freelance"
	IncomeCategoryInvestment TransactionCategory = "investment"

	ExpenseCategoryFood          TransactionCategory = "food"
	ExpenseCategoryTransport     TransactionCategory = "transport"
	ExpenseCategoryEntertainment TransactionCategory = "entertainment"
	ExpenseCategoryEducation     TransactionCategory = "education"
	ExpenseCategoryHealth        TransactionCategory = "health"
	ExpenseCategoryShopping      TransactionCategory = "shopping"
	ExpenseCategoryBills         TransactionCategory = "bills"

	CategoryOther TransactionCategory = "other"
)

var (
	IncomeCategories = []TransactionCategory{
		IncomeCategorySalary, IncomeCategoryFreelance, IncomeCategoryInvestment, CategoryOther,
	}
	ExpenseCategories = []TransactionCategory{
		ExpenseCategoryFood, ExpenseCategoryTransport, ExpenseCategoryEntertainment, ExpenseCategoryEducation,
		ExpenseCategoryHealth, ExpenseCategoryShopping, ExpenseCategoryBills, CategoryOther,
	}
)

// ValidFor reports whether c belongs to the category set of typ.
func (c TransactionCategory) ValidFor(typ TransactionType) bool {
	var categories []TransactionCategory
	switch typ {
	case TransactionTypeIncome:
		categories = IncomeCategories
	case TransactionTypeExpense:
		categories = ExpenseCategories
	default:
		return false
	}
	for _, candidate := range categories {
		if c == candidate {
			return true
		}
	}
	return false
}

type Transaction struct {
	ID        string              `json:"id" yaml:"id" validate:"required"`
	Type      TransactionType     `json:"type" yaml:"type" validate:"oneof=income expense"`
	Amount    float64             `json:"amount" yaml:"amount" validate:"gt=0"`
	Category  TransactionCategory `json:"category" yaml:"category" validate:"txcategory"`
	Date      Date                `json:"date" yaml:"date" validate:"required"`
	Note      string              `json:"note,omitempty" yaml:"note,omitempty"`
	CreatedAt time.Time           `json:"createdAt" yaml:"created_at"`
}

func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}
