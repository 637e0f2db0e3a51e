package models

import "time"

// FinanceCategories lists the selectable transaction categories.
var FinanceCategories = []string{
	"Equipment",
	"Nutrition",
	"Training",
	"Medical",
	"Competition",
	"Travel",
	"Other",
}

// Finance is one financial transaction. Amount is always positive; the
// direction is carried in IsIncome.
type Finance struct {
	ID          int       `json:"id,omitempty"`
	UserID      int       `json:"userId"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	IsIncome    bool      `json:"isIncome"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
}

// Signed returns the amount with its direction applied: positive for income,
// negative for expenses.
func (f Finance) Signed() float64 {
	if f.IsIncome {
		return f.Amount
	}
	return -f.Amount
}
