// Package metrics computes derived aggregates over a UserFinance snapshot.
// Everything here is pure and stateless: totals and percentages are views
// recomputed on every read, never persisted.
package metrics

import (
	apperrors "hishab/internal/errors"
	"hishab/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TotalIncome sums the amounts of all INCOME transactions.
func TotalIncome(f *models.UserFinance) decimal.Decimal {
	return sumByType(f, models.TransactionTypeIncome)
}

// TotalExpense sums the amounts of all EXPENSE transactions.
func TotalExpense(f *models.UserFinance) decimal.Decimal {
	return sumByType(f, models.TransactionTypeExpense)
}

func sumByType(f *models.UserFinance, txType models.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, t := range f.Transactions {
		if t.Type == txType {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// TotalOutstandingDebt sums the remaining amounts of all loans.
func TotalOutstandingDebt(f *models.UserFinance) decimal.Decimal {
	total := decimal.Zero
	for _, l := range f.Loans {
		total = total.Add(l.RemainingAmount)
	}
	return total
}

// GoalProgress returns current/target as a percentage. The raw ratio is
// not clamped; callers clamp for display with ClampPercent. Fails for a
// non-positive target, where the ratio is undefined.
func GoalProgress(g models.Goal) (float64, error) {
	if !g.TargetAmount.IsPositive() {
		return 0, apperrors.ErrZeroTarget
	}
	return g.CurrentAmount.Div(g.TargetAmount).Mul(hundred).InexactFloat64(), nil
}

// LoanPayoffProgress returns (1 - remaining/total) as a percentage.
// Fails for a non-positive total amount.
func LoanPayoffProgress(l models.Loan) (float64, error) {
	if !l.TotalAmount.IsPositive() {
		return 0, apperrors.ErrZeroTarget
	}
	paid := l.TotalAmount.Sub(l.RemainingAmount)
	return paid.Div(l.TotalAmount).Mul(hundred).InexactFloat64(), nil
}

// SpecialPaymentProgress returns paid/total as a percentage. Defined only
// for FIXED payments with a positive total; MONTHLY payments have no
// ceiling and progress must not be computed for them.
func SpecialPaymentProgress(p models.SpecialPayment) (float64, error) {
	if p.Type != models.SpecialPaymentTypeFixed {
		return 0, apperrors.ErrNoPaymentCeiling
	}
	if !p.TotalAmount.IsPositive() {
		return 0, apperrors.ErrZeroTarget
	}
	return p.PaidAmount.Div(p.TotalAmount).Mul(hundred).InexactFloat64(), nil
}

// SpecialPaymentRemaining returns total - paid for a FIXED payment. The
// result goes negative on overpayment, which the ledger permits. The
// second return is false for MONTHLY payments, where remaining is not
// meaningful.
func SpecialPaymentRemaining(p models.SpecialPayment) (decimal.Decimal, bool) {
	if p.Type != models.SpecialPaymentTypeFixed {
		return decimal.Zero, false
	}
	return p.TotalAmount.Sub(p.PaidAmount), true
}

// ClampPercent clamps a raw percentage to [0,100] for display.
func ClampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
