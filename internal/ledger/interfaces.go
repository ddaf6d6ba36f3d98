package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"hishab/internal/models"
)

// Servicer is the ledger surface the HTTP layer consumes. Every mutation
// returns the updated snapshot for re-render.
type Servicer interface {
	Snapshot() *models.UserFinance
	AddTransaction(amount decimal.Decimal, txType models.TransactionType, category, note string) (*models.UserFinance, error)
	DeleteTransaction(id string) (*models.UserFinance, error)
	AddLoan(name string, total, remaining, installment decimal.Decimal, nextPaymentDate time.Time) (*models.UserFinance, error)
	AddGoal(name string, target, current decimal.Decimal, deadline time.Time, goalType models.GoalType) (*models.UserFinance, error)
	ApplySpecialPayment(id string, amount decimal.Decimal) (*models.UserFinance, error)
}

var _ Servicer = (*Store)(nil)
