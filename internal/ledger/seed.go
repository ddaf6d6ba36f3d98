package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"hishab/internal/models"
	"hishab/internal/uuid"
)

// DefaultSnapshot builds the seed ledger used when no persisted snapshot
// exists: a fixed starting balance, one salary entry, and the household's
// standing special payments (one open-ended monthly account and three
// fixed debts).
func DefaultSnapshot() *models.UserFinance {
	return &models.UserFinance{
		BankBalance: decimal.NewFromInt(500000),
		Transactions: []models.Transaction{
			{
				ID:       uuid.New(),
				Date:     time.Now().UTC(),
				Amount:   decimal.NewFromInt(45000),
				Type:     models.TransactionTypeIncome,
				Category: "salary",
				Note:     "January salary",
			},
		},
		Loans: []models.Loan{},
		Goals: []models.Goal{},
		SpecialPayments: []models.SpecialPayment{
			{
				ID:          uuid.New(),
				Name:        "Father's account",
				TotalAmount: decimal.Zero,
				PaidAmount:  decimal.Zero,
				Type:        models.SpecialPaymentTypeMonthly,
			},
			{
				ID:          uuid.New(),
				Name:        "Toma",
				TotalAmount: decimal.NewFromInt(120000),
				PaidAmount:  decimal.Zero,
				Type:        models.SpecialPaymentTypeFixed,
			},
			{
				ID:          uuid.New(),
				Name:        "Uncle",
				TotalAmount: decimal.NewFromInt(70000),
				PaidAmount:  decimal.Zero,
				Type:        models.SpecialPaymentTypeFixed,
			},
			{
				ID:          uuid.New(),
				Name:        "Overdue installments",
				TotalAmount: decimal.NewFromInt(100000),
				PaidAmount:  decimal.Zero,
				Type:        models.SpecialPaymentTypeFixed,
			},
		},
	}
}
