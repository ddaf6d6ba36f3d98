// Package ledger owns the canonical UserFinance snapshot and exposes the
// only sanctioned mutation operations. Every mutation keeps the bank
// balance consistent with the transaction history, persists the updated
// snapshot, and hands the caller a deep copy.
package ledger

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	apperrors "hishab/internal/errors"
	"hishab/internal/logger"
	"hishab/internal/models"
	"hishab/internal/uuid"
)

// CategorySpecialPayment is the category assigned to the synthetic expense
// transaction recorded when a special payment is applied.
const CategorySpecialPayment = "special payment"

// SnapshotStore is the persistence contract the store consumes. Load
// returns (nil, nil) when no usable snapshot exists; a malformed persisted
// snapshot reads as absent, never as an error.
type SnapshotStore interface {
	Load() (*models.UserFinance, error)
	Save(*models.UserFinance) error
}

// Store holds the in-memory ledger. A single mutex serializes mutations,
// so each operation is atomic: no partial update is ever observable.
type Store struct {
	mu        sync.Mutex
	finance   *models.UserFinance
	snapshots SnapshotStore
}

// NewStore creates a Store backed by the given snapshot store. A nil
// snapshot store leaves the ledger purely in-memory.
func NewStore(snapshots SnapshotStore) *Store {
	return &Store{snapshots: snapshots}
}

// Initialize loads the persisted snapshot if one exists, falling back to
// the seeded default otherwise. Load failures are logged and treated as
// absent; Initialize never fails.
func (s *Store) Initialize() *models.UserFinance {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshots != nil {
		saved, err := s.snapshots.Load()
		if err != nil {
			logger.Get().Warnw("snapshot load failed, seeding defaults", "error", err)
		} else if saved != nil {
			saved.Normalize()
			s.finance = saved
			return s.finance.Clone()
		}
	}

	s.finance = DefaultSnapshot()
	s.persistLocked()
	return s.finance.Clone()
}

// Snapshot returns a deep copy of the current ledger state.
func (s *Store) Snapshot() *models.UserFinance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finance.Clone()
}

// AddTransaction records a new income or expense entry and adjusts the
// bank balance accordingly. Transactions are kept newest-first.
func (s *Store) AddTransaction(amount decimal.Decimal, txType models.TransactionType, category, note string) (*models.UserFinance, error) {
	if !amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}
	if !txType.Valid() {
		return nil, apperrors.ErrInvalidTransactionType
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.prependTransaction(models.Transaction{
		ID:       uuid.New(),
		Date:     time.Now().UTC(),
		Amount:   amount,
		Type:     txType,
		Category: category,
		Note:     note,
	})
	s.persistLocked()
	return s.finance.Clone(), nil
}

// DeleteTransaction removes the matching transaction and reverses its
// original balance effect, so the balance always equals the initial
// balance plus the signed sum of the transactions still present. An
// unknown id is a no-op.
func (s *Store) DeleteTransaction(id string) (*models.UserFinance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, t := range s.finance.Transactions {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s.finance.Clone(), nil
	}

	removed := s.finance.Transactions[idx]
	s.finance.Transactions = append(s.finance.Transactions[:idx], s.finance.Transactions[idx+1:]...)

	switch removed.Type {
	case models.TransactionTypeIncome:
		s.finance.BankBalance = s.finance.BankBalance.Sub(removed.Amount)
	case models.TransactionTypeExpense:
		s.finance.BankBalance = s.finance.BankBalance.Add(removed.Amount)
	}

	s.persistLocked()
	return s.finance.Clone(), nil
}

// AddLoan appends a new loan. A loan's disbursement is not itself a
// transaction in this model, so the bank balance is untouched.
func (s *Store) AddLoan(name string, total, remaining, installment decimal.Decimal, nextPaymentDate time.Time) (*models.UserFinance, error) {
	if !total.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}
	if remaining.IsNegative() || remaining.GreaterThan(total) {
		return nil, apperrors.ErrInvalidLoanAmounts
	}
	if installment.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Installment amount must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.finance.Loans = append(s.finance.Loans, models.Loan{
		ID:                uuid.New(),
		Name:              name,
		TotalAmount:       total,
		RemainingAmount:   remaining,
		InstallmentAmount: installment,
		NextPaymentDate:   nextPaymentDate,
	})
	s.persistLocked()
	return s.finance.Clone(), nil
}

// AddGoal appends a new savings goal. No balance effect. The target must
// be positive: goal progress divides by it.
func (s *Store) AddGoal(name string, target, current decimal.Decimal, deadline time.Time, goalType models.GoalType) (*models.UserFinance, error) {
	if !target.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Target amount must be greater than zero")
	}
	if current.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Current amount must not be negative")
	}
	if !goalType.Valid() {
		return nil, apperrors.ErrInvalidGoalType
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.finance.Goals = append(s.finance.Goals, models.Goal{
		ID:            uuid.New(),
		Name:          name,
		TargetAmount:  target,
		CurrentAmount: current,
		Deadline:      deadline,
		Type:          goalType,
	})
	s.persistLocked()
	return s.finance.Clone(), nil
}

// ApplySpecialPayment records a payment toward the named payee: it raises
// the payment's paid amount, debits the bank balance, and prepends one
// synthetic expense transaction, all in one atomic step. There is no
// ceiling check, so overpaying a FIXED payment shows as negative
// remaining. An unknown id is rejected.
func (s *Store) ApplySpecialPayment(id string, amount decimal.Decimal) (*models.UserFinance, error) {
	if !amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, p := range s.finance.SpecialPayments {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperrors.ErrPaymentNotFound
	}

	payment := &s.finance.SpecialPayments[idx]
	payment.PaidAmount = payment.PaidAmount.Add(amount)

	s.prependTransaction(models.Transaction{
		ID:       uuid.New(),
		Date:     time.Now().UTC(),
		Amount:   amount,
		Type:     models.TransactionTypeExpense,
		Category: CategorySpecialPayment,
		Note:     "Paid to " + payment.Name,
	})
	s.persistLocked()
	return s.finance.Clone(), nil
}

// prependTransaction inserts a transaction at the head of the newest-first
// sequence and applies its signed amount to the bank balance. Callers hold
// the mutex.
func (s *Store) prependTransaction(t models.Transaction) {
	s.finance.Transactions = append([]models.Transaction{t}, s.finance.Transactions...)
	if t.Type == models.TransactionTypeIncome {
		s.finance.BankBalance = s.finance.BankBalance.Add(t.Amount)
	} else {
		s.finance.BankBalance = s.finance.BankBalance.Sub(t.Amount)
	}
}

// persistLocked saves the current snapshot. A failed save is a warning:
// the in-memory state stays authoritative for the session. Callers hold
// the mutex.
func (s *Store) persistLocked() {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.Save(s.finance); err != nil {
		logger.Get().Warnw("snapshot save failed, in-memory state remains authoritative", "error", err)
	}
}
