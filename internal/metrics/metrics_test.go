package metrics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"hishab/internal/models"
	"hishab/internal/testutil"
)

func TestTotals(t *testing.T) {
	finance := &models.UserFinance{
		BankBalance: decimal.NewFromInt(500000),
		Transactions: []models.Transaction{
			{ID: "t1", Amount: decimal.NewFromInt(45000), Type: models.TransactionTypeIncome},
			{ID: "t2", Amount: decimal.NewFromInt(12000), Type: models.TransactionTypeExpense},
			{ID: "t3", Amount: decimal.NewFromInt(5000), Type: models.TransactionTypeIncome},
			{ID: "t4", Amount: decimal.NewFromInt(3000), Type: models.TransactionTypeExpense},
		},
		Loans: []models.Loan{
			{ID: "l1", RemainingAmount: decimal.NewFromInt(420000)},
			{ID: "l2", RemainingAmount: decimal.NewFromInt(30000)},
		},
	}

	if got := TotalIncome(finance); !got.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("expected total income 50000, got %s", got)
	}
	if got := TotalExpense(finance); !got.Equal(decimal.NewFromInt(15000)) {
		t.Errorf("expected total expense 15000, got %s", got)
	}
	if got := TotalOutstandingDebt(finance); !got.Equal(decimal.NewFromInt(450000)) {
		t.Errorf("expected outstanding debt 450000, got %s", got)
	}
}

func TestTotalsEmpty(t *testing.T) {
	finance := &models.UserFinance{BankBalance: decimal.Zero}

	if got := TotalIncome(finance); !got.IsZero() {
		t.Errorf("expected zero income, got %s", got)
	}
	if got := TotalExpense(finance); !got.IsZero() {
		t.Errorf("expected zero expense, got %s", got)
	}
	if got := TotalOutstandingDebt(finance); !got.IsZero() {
		t.Errorf("expected zero debt, got %s", got)
	}
}

func TestGoalProgress(t *testing.T) {
	t.Run("partial_progress", func(t *testing.T) {
		// 15000 of 80000 is exactly 18.75 percent.
		goal := models.Goal{
			Name:          "New laptop",
			TargetAmount:  decimal.NewFromInt(80000),
			CurrentAmount: decimal.NewFromInt(15000),
			Deadline:      time.Now().AddDate(1, 0, 0),
			Type:          models.GoalTypeShort,
		}

		got, err := GoalProgress(goal)
		testutil.AssertNoError(t, err)
		if got != 18.75 {
			t.Errorf("expected 18.75, got %g", got)
		}
	})

	t.Run("over_target_is_not_clamped", func(t *testing.T) {
		goal := models.Goal{TargetAmount: decimal.NewFromInt(100), CurrentAmount: decimal.NewFromInt(150)}

		got, err := GoalProgress(goal)
		testutil.AssertNoError(t, err)
		if got != 150 {
			t.Errorf("expected raw 150, got %g", got)
		}
	})

	t.Run("zero_target", func(t *testing.T) {
		goal := models.Goal{TargetAmount: decimal.Zero, CurrentAmount: decimal.NewFromInt(10)}

		_, err := GoalProgress(goal)
		testutil.AssertAppError(t, err, "ZERO_TARGET")
	})
}

func TestLoanPayoffProgress(t *testing.T) {
	t.Run("partial_payoff", func(t *testing.T) {
		// 500000 total with 420000 remaining is 16 percent paid.
		loan := models.Loan{
			TotalAmount:     decimal.NewFromInt(500000),
			RemainingAmount: decimal.NewFromInt(420000),
		}

		got, err := LoanPayoffProgress(loan)
		testutil.AssertNoError(t, err)
		if got != 16 {
			t.Errorf("expected 16, got %g", got)
		}
	})

	t.Run("fully_paid", func(t *testing.T) {
		loan := models.Loan{TotalAmount: decimal.NewFromInt(100), RemainingAmount: decimal.Zero}

		got, err := LoanPayoffProgress(loan)
		testutil.AssertNoError(t, err)
		if got != 100 {
			t.Errorf("expected 100, got %g", got)
		}
	})

	t.Run("zero_total", func(t *testing.T) {
		loan := models.Loan{TotalAmount: decimal.Zero}

		_, err := LoanPayoffProgress(loan)
		testutil.AssertAppError(t, err, "ZERO_TARGET")
	})
}

func TestSpecialPaymentProgress(t *testing.T) {
	t.Run("fixed_payment", func(t *testing.T) {
		payment := testutil.FixedPayment("sp1", 120000)
		payment.PaidAmount = decimal.NewFromInt(30000)

		got, err := SpecialPaymentProgress(payment)
		testutil.AssertNoError(t, err)
		if got != 25 {
			t.Errorf("expected 25, got %g", got)
		}
	})

	t.Run("monthly_has_no_progress", func(t *testing.T) {
		payment := testutil.MonthlyPayment("spm")
		payment.PaidAmount = decimal.NewFromInt(5000)

		_, err := SpecialPaymentProgress(payment)
		testutil.AssertAppError(t, err, "NO_PAYMENT_CEILING")
	})

	t.Run("fixed_with_zero_total", func(t *testing.T) {
		payment := testutil.FixedPayment("sp1", 0)

		_, err := SpecialPaymentProgress(payment)
		testutil.AssertAppError(t, err, "ZERO_TARGET")
	})
}

func TestSpecialPaymentRemaining(t *testing.T) {
	t.Run("fixed_payment", func(t *testing.T) {
		payment := testutil.FixedPayment("sp1", 120000)
		payment.PaidAmount = decimal.NewFromInt(50000)

		remaining, ok := SpecialPaymentRemaining(payment)
		if !ok {
			t.Fatal("expected remaining to be defined for a fixed payment")
		}
		if !remaining.Equal(decimal.NewFromInt(70000)) {
			t.Errorf("expected remaining 70000, got %s", remaining)
		}
	})

	t.Run("overpaid_goes_negative", func(t *testing.T) {
		payment := testutil.FixedPayment("sp1", 1000)
		payment.PaidAmount = decimal.NewFromInt(1500)

		remaining, ok := SpecialPaymentRemaining(payment)
		if !ok {
			t.Fatal("expected remaining to be defined for a fixed payment")
		}
		if !remaining.Equal(decimal.NewFromInt(-500)) {
			t.Errorf("expected remaining -500, got %s", remaining)
		}
	})

	t.Run("monthly_is_undefined", func(t *testing.T) {
		payment := testutil.MonthlyPayment("spm")

		_, ok := SpecialPaymentRemaining(payment)
		if ok {
			t.Error("expected remaining to be undefined for a monthly payment")
		}
	})
}

func TestClampPercent(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"negative", -5, 0},
		{"zero", 0, 0},
		{"in_range", 42.5, 42.5},
		{"hundred", 100, 100},
		{"overshoot", 150, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampPercent(tc.in); got != tc.want {
				t.Errorf("ClampPercent(%g) = %g, want %g", tc.in, got, tc.want)
			}
		})
	}
}
