// Package models defines the ledger record types and the UserFinance
// snapshot that the ledger store owns and the persistence layer serializes.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Valid reports whether the transaction type is one of the known values.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction is a single income or expense entry. Immutable once created
// except for deletion.
type Transaction struct {
	ID       string          `json:"id"`
	Date     time.Time       `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Type     TransactionType `json:"type"`
	Category string          `json:"category"`
	Note     string          `json:"note,omitempty"`
}

// Loan is a formal debt with a fixed installment schedule. Entry-only:
// the core defines no update or delete operation for loans.
type Loan struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	RemainingAmount   decimal.Decimal `json:"remaining_amount"`
	InstallmentAmount decimal.Decimal `json:"installment_amount"`
	NextPaymentDate   time.Time       `json:"next_payment_date"`
}

// GoalType distinguishes short-term (about a year) from long-term
// (two to three years) savings goals.
type GoalType string

const (
	GoalTypeShort GoalType = "SHORT"
	GoalTypeLong  GoalType = "LONG"
)

// Valid reports whether the goal type is one of the known values.
func (t GoalType) Valid() bool {
	return t == GoalTypeShort || t == GoalTypeLong
}

// Goal is a savings target. CurrentAmount may exceed TargetAmount; display
// progress is clamped, stored amounts are not.
type Goal struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      time.Time       `json:"deadline"`
	Type          GoalType        `json:"type"`
}

// SpecialPaymentType distinguishes open-ended monthly obligations from
// fixed debts that are expected to be paid down to zero.
type SpecialPaymentType string

const (
	SpecialPaymentTypeMonthly SpecialPaymentType = "MONTHLY"
	SpecialPaymentTypeFixed   SpecialPaymentType = "FIXED"
)

// Valid reports whether the payment type is one of the known values.
func (t SpecialPaymentType) Valid() bool {
	return t == SpecialPaymentTypeMonthly || t == SpecialPaymentTypeFixed
}

// SpecialPayment tracks money owed to a specific named person, distinct
// from a formal loan. For MONTHLY payments TotalAmount is not a ceiling
// and progress is undefined.
type SpecialPayment struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	PaidAmount  decimal.Decimal    `json:"paid_amount"`
	Type        SpecialPaymentType `json:"type"`
}

// UserFinance is the ledger root: the bank balance plus the four record
// collections. Transactions are ordered newest-first. The whole structure
// is serialized and persisted atomically as one value.
type UserFinance struct {
	BankBalance     decimal.Decimal  `json:"bank_balance"`
	Transactions    []Transaction    `json:"transactions"`
	Loans           []Loan           `json:"loans"`
	Goals           []Goal           `json:"goals"`
	SpecialPayments []SpecialPayment `json:"special_payments"`
}

// Clone returns a deep copy of the snapshot. Decimal values are immutable,
// so copying the slice elements is sufficient.
func (f *UserFinance) Clone() *UserFinance {
	c := &UserFinance{
		BankBalance:     f.BankBalance,
		Transactions:    make([]Transaction, len(f.Transactions)),
		Loans:           make([]Loan, len(f.Loans)),
		Goals:           make([]Goal, len(f.Goals)),
		SpecialPayments: make([]SpecialPayment, len(f.SpecialPayments)),
	}
	copy(c.Transactions, f.Transactions)
	copy(c.Loans, f.Loans)
	copy(c.Goals, f.Goals)
	copy(c.SpecialPayments, f.SpecialPayments)
	return c
}

// Normalize replaces nil collections with empty ones so that a freshly
// decoded snapshot always round-trips to the same JSON shape.
func (f *UserFinance) Normalize() {
	if f.Transactions == nil {
		f.Transactions = []Transaction{}
	}
	if f.Loans == nil {
		f.Loans = []Loan{}
	}
	if f.Goals == nil {
		f.Goals = []Goal{}
	}
	if f.SpecialPayments == nil {
		f.SpecialPayments = []SpecialPayment{}
	}
}

// Validate checks the structural invariants a persisted snapshot must
// satisfy before the ledger store will accept it.
func (f *UserFinance) Validate() bool {
	for _, t := range f.Transactions {
		if t.ID == "" || !t.Type.Valid() {
			return false
		}
	}
	for _, l := range f.Loans {
		if l.ID == "" {
			return false
		}
	}
	for _, g := range f.Goals {
		if g.ID == "" || !g.Type.Valid() {
			return false
		}
	}
	for _, p := range f.SpecialPayments {
		if p.ID == "" || !p.Type.Valid() {
			return false
		}
	}
	return true
}
