package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "hishab/internal/errors"
	"hishab/internal/models"
	"hishab/internal/pagination"
)

func setupLedgerRouter(store *mockLedgerStore) *gin.Engine {
	router := gin.New()
	h := NewLedgerHandler(store)
	router.GET("/ledger", h.GetSnapshot)
	router.POST("/ledger/transactions", h.AddTransaction)
	router.GET("/ledger/transactions", h.ListTransactions)
	router.DELETE("/ledger/transactions/:id", h.DeleteTransaction)
	router.POST("/ledger/loans", h.AddLoan)
	router.POST("/ledger/goals", h.AddGoal)
	router.POST("/ledger/special-payments/:id/pay", h.PaySpecialPayment)
	return router
}

type financeEnvelope struct {
	Finance models.UserFinance `json:"finance"`
}

func TestGetSnapshot(t *testing.T) {
	store := &mockLedgerStore{
		snapshotFn: func() *models.UserFinance {
			f := &models.UserFinance{BankBalance: decimal.NewFromInt(500000)}
			f.Normalize()
			return f
		},
	}
	router := setupLedgerRouter(store)

	w := doRequest(router, http.MethodGet, "/ledger", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp financeEnvelope
	parseJSON(t, w, &resp)
	if !resp.Finance.BankBalance.Equal(decimal.NewFromInt(500000)) {
		t.Errorf("expected balance 500000, got %s", resp.Finance.BankBalance)
	}
}

func TestAddTransactionHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotAmount decimal.Decimal
		var gotType models.TransactionType
		store := &mockLedgerStore{
			addTransactionFn: func(amount decimal.Decimal, txType models.TransactionType, category, note string) (*models.UserFinance, error) {
				gotAmount, gotType = amount, txType
				f := &models.UserFinance{BankBalance: decimal.NewFromInt(545000)}
				f.Normalize()
				return f, nil
			},
		}
		router := setupLedgerRouter(store)

		w := doRequest(router, http.MethodPost, "/ledger/transactions", gin.H{
			"amount":   "45000",
			"type":     "INCOME",
			"category": "salary",
		})

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (body %q)", w.Code, w.Body.String())
		}
		if !gotAmount.Equal(decimal.NewFromInt(45000)) {
			t.Errorf("expected amount 45000, got %s", gotAmount)
		}
		if gotType != models.TransactionTypeIncome {
			t.Errorf("expected INCOME, got %s", gotType)
		}
		var resp financeEnvelope
		parseJSON(t, w, &resp)
		if !resp.Finance.BankBalance.Equal(decimal.NewFromInt(545000)) {
			t.Errorf("expected updated balance in response, got %s", resp.Finance.BankBalance)
		}
	})

	t.Run("missing_category", func(t *testing.T) {
		router := setupLedgerRouter(&mockLedgerStore{})

		w := doRequest(router, http.MethodPost, "/ledger/transactions", gin.H{
			"amount": "100",
			"type":   "INCOME",
		})

		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("unknown_type", func(t *testing.T) {
		router := setupLedgerRouter(&mockLedgerStore{})

		w := doRequest(router, http.MethodPost, "/ledger/transactions", gin.H{
			"amount":   "100",
			"type":     "TRANSFER",
			"category": "misc",
		})

		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("negative_amount", func(t *testing.T) {
		router := setupLedgerRouter(&mockLedgerStore{})

		w := doRequest(router, http.MethodPost, "/ledger/transactions", gin.H{
			"amount":   "-100",
			"type":     "EXPENSE",
			"category": "misc",
		})

		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})
}

func TestListTransactionsHandler(t *testing.T) {
	snapshot := func() *models.UserFinance {
		f := &models.UserFinance{
			Transactions: []models.Transaction{
				{ID: "t3", Amount: decimal.NewFromInt(300), Type: models.TransactionTypeExpense},
				{ID: "t2", Amount: decimal.NewFromInt(200), Type: models.TransactionTypeIncome},
				{ID: "t1", Amount: decimal.NewFromInt(100), Type: models.TransactionTypeIncome},
			},
		}
		f.Normalize()
		return f
	}

	t.Run("pages_newest_first", func(t *testing.T) {
		router := setupLedgerRouter(&mockLedgerStore{snapshotFn: snapshot})

		w := doRequest(router, http.MethodGet, "/ledger/transactions?page=1&page_size=2", nil)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp pagination.PageResponse[models.Transaction]
		parseJSON(t, w, &resp)
		if resp.TotalItems != 3 || resp.TotalPages != 2 {
			t.Errorf("expected 3 items over 2 pages, got %d/%d", resp.TotalItems, resp.TotalPages)
		}
		if len(resp.Data) != 2 || resp.Data[0].ID != "t3" {
			t.Errorf("expected the newest 2 transactions, got %+v", resp.Data)
		}
	})

	t.Run("filters_by_type", func(t *testing.T) {
		router := setupLedgerRouter(&mockLedgerStore{snapshotFn: snapshot})

		w := doRequest(router, http.MethodGet, "/ledger/transactions?type=INCOME", nil)

		var resp pagination.PageResponse[models.Transaction]
		parseJSON(t, w, &resp)
		if resp.TotalItems != 2 {
			t.Errorf("expected 2 income transactions, got %d", resp.TotalItems)
		}
		for _, tx := range resp.Data {
			if tx.Type != models.TransactionTypeIncome {
				t.Errorf("unexpected type %s in filtered list", tx.Type)
			}
		}
	})

	t.Run("rejects_unknown_filter", func(t *testing.T) {
		router := setupLedgerRouter(&mockLedgerStore{snapshotFn: snapshot})

		w := doRequest(router, http.MethodGet, "/ledger/transactions?type=TRANSFER", nil)

		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})
}

func TestDeleteTransactionHandler(t *testing.T) {
	var gotID string
	store := &mockLedgerStore{
		deleteTransactionFn: func(id string) (*models.UserFinance, error) {
			gotID = id
			f := &models.UserFinance{BankBalance: decimal.NewFromInt(500000)}
			f.Normalize()
			return f, nil
		},
	}
	router := setupLedgerRouter(store)

	w := doRequest(router, http.MethodDelete, "/ledger/transactions/t1", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotID != "t1" {
		t.Errorf("expected id t1, got %q", gotID)
	}
}

func TestAddLoanHandler(t *testing.T) {
	t.Run("success_with_bare_date", func(t *testing.T) {
		var gotDate time.Time
		store := &mockLedgerStore{
			addLoanFn: func(name string, total, remaining, installment decimal.Decimal, nextPaymentDate time.Time) (*models.UserFinance, error) {
				gotDate = nextPaymentDate
				f := &models.UserFinance{}
				f.Normalize()
				return f, nil
			},
		}
		router := setupLedgerRouter(store)

		w := doRequest(router, http.MethodPost, "/ledger/loans", gin.H{
			"name":               "Car loan",
			"total_amount":       "500000",
			"remaining_amount":   "420000",
			"installment_amount": "10000",
			"next_payment_date":  "2026-10-01",
		})

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (body %q)", w.Code, w.Body.String())
		}
		want := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
		if !gotDate.Equal(want) {
			t.Errorf("expected date %v, got %v", want, gotDate)
		}
	})

	t.Run("invalid_date", func(t *testing.T) {
		router := setupLedgerRouter(&mockLedgerStore{})

		w := doRequest(router, http.MethodPost, "/ledger/loans", gin.H{
			"name":              "Car loan",
			"total_amount":      "500000",
			"next_payment_date": "next month",
		})

		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("store_rejects_amounts", func(t *testing.T) {
		store := &mockLedgerStore{
			addLoanFn: func(name string, total, remaining, installment decimal.Decimal, nextPaymentDate time.Time) (*models.UserFinance, error) {
				return nil, apperrors.ErrInvalidLoanAmounts
			},
		}
		router := setupLedgerRouter(store)

		w := doRequest(router, http.MethodPost, "/ledger/loans", gin.H{
			"name":              "Car loan",
			"total_amount":      "100",
			"remaining_amount":  "200",
			"next_payment_date": "2026-10-01",
		})

		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_LOAN_AMOUNTS")
	})
}

func TestAddGoalHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotType models.GoalType
		store := &mockLedgerStore{
			addGoalFn: func(name string, target, current decimal.Decimal, deadline time.Time, goalType models.GoalType) (*models.UserFinance, error) {
				gotType = goalType
				f := &models.UserFinance{}
				f.Normalize()
				return f, nil
			},
		}
		router := setupLedgerRouter(store)

		w := doRequest(router, http.MethodPost, "/ledger/goals", gin.H{
			"name":          "New laptop",
			"target_amount": "80000",
			"deadline":      "2027-06-01",
			"type":          "SHORT",
		})

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (body %q)", w.Code, w.Body.String())
		}
		if gotType != models.GoalTypeShort {
			t.Errorf("expected SHORT, got %s", gotType)
		}
	})

	t.Run("unknown_goal_type", func(t *testing.T) {
		router := setupLedgerRouter(&mockLedgerStore{})

		w := doRequest(router, http.MethodPost, "/ledger/goals", gin.H{
			"name":          "New laptop",
			"target_amount": "80000",
			"deadline":      "2027-06-01",
			"type":          "MEDIUM",
		})

		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})
}

func TestPaySpecialPaymentHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotID string
		var gotAmount decimal.Decimal
		store := &mockLedgerStore{
			applySpecialPaymentFn: func(id string, amount decimal.Decimal) (*models.UserFinance, error) {
				gotID, gotAmount = id, amount
				f := &models.UserFinance{BankBalance: decimal.NewFromInt(450000)}
				f.Normalize()
				return f, nil
			},
		}
		router := setupLedgerRouter(store)

		w := doRequest(router, http.MethodPost, "/ledger/special-payments/sp2/pay", gin.H{
			"amount": "50000",
		})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (body %q)", w.Code, w.Body.String())
		}
		if gotID != "sp2" {
			t.Errorf("expected id sp2, got %q", gotID)
		}
		if !gotAmount.Equal(decimal.NewFromInt(50000)) {
			t.Errorf("expected amount 50000, got %s", gotAmount)
		}
	})

	t.Run("unknown_payee", func(t *testing.T) {
		store := &mockLedgerStore{
			applySpecialPaymentFn: func(id string, amount decimal.Decimal) (*models.UserFinance, error) {
				return nil, apperrors.ErrPaymentNotFound
			},
		}
		router := setupLedgerRouter(store)

		w := doRequest(router, http.MethodPost, "/ledger/special-payments/missing/pay", gin.H{
			"amount": "100",
		})

		assertErrorCode(t, w, http.StatusNotFound, "PAYMENT_NOT_FOUND")
	})

	t.Run("zero_amount", func(t *testing.T) {
		router := setupLedgerRouter(&mockLedgerStore{})

		w := doRequest(router, http.MethodPost, "/ledger/special-payments/sp1/pay", gin.H{
			"amount": "0",
		})

		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})
}
