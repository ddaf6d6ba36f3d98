package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"hishab/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// MemorySnapshotStore is an in-memory ledger.SnapshotStore. Seed gives
// Initialize something to load; Saves and Saved record what the store
// persisted; SaveErr and LoadErr force failures.
type MemorySnapshotStore struct {
	Seed    *models.UserFinance
	Saved   *models.UserFinance
	Saves   int
	SaveErr error
	LoadErr error
}

// Load returns the seeded snapshot, or (nil, nil) when none was seeded.
func (m *MemorySnapshotStore) Load() (*models.UserFinance, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Seed == nil {
		return nil, nil
	}
	return m.Seed.Clone(), nil
}

// Save records the snapshot handed over by the ledger store.
func (m *MemorySnapshotStore) Save(f *models.UserFinance) error {
	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saved = f.Clone()
	return nil
}

// EmptySnapshot builds a snapshot with the given starting balance and no
// records.
func EmptySnapshot(balance int64) *models.UserFinance {
	return &models.UserFinance{
		BankBalance:     decimal.NewFromInt(balance),
		Transactions:    []models.Transaction{},
		Loans:           []models.Loan{},
		Goals:           []models.Goal{},
		SpecialPayments: []models.SpecialPayment{},
	}
}

// FixedPayment builds a FIXED special payment with nothing paid yet.
func FixedPayment(id string, total int64) models.SpecialPayment {
	return models.SpecialPayment{
		ID:          id,
		Name:        fmt.Sprintf("Payee %d", nextID()),
		TotalAmount: decimal.NewFromInt(total),
		PaidAmount:  decimal.Zero,
		Type:        models.SpecialPaymentTypeFixed,
	}
}

// MonthlyPayment builds a MONTHLY special payment. Its total is zero:
// monthly payments have no ceiling.
func MonthlyPayment(id string) models.SpecialPayment {
	return models.SpecialPayment{
		ID:          id,
		Name:        fmt.Sprintf("Payee %d", nextID()),
		TotalAmount: decimal.Zero,
		PaidAmount:  decimal.Zero,
		Type:        models.SpecialPaymentTypeMonthly,
	}
}
