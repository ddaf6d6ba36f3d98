package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hishab/internal/advisor"
	"hishab/internal/models"
	"hishab/internal/validator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.Register()
	os.Exit(m.Run())
}

// mockLedgerStore implements ledger.Servicer with overridable functions.
type mockLedgerStore struct {
	snapshotFn            func() *models.UserFinance
	addTransactionFn      func(amount decimal.Decimal, txType models.TransactionType, category, note string) (*models.UserFinance, error)
	deleteTransactionFn   func(id string) (*models.UserFinance, error)
	addLoanFn             func(name string, total, remaining, installment decimal.Decimal, nextPaymentDate time.Time) (*models.UserFinance, error)
	addGoalFn             func(name string, target, current decimal.Decimal, deadline time.Time, goalType models.GoalType) (*models.UserFinance, error)
	applySpecialPaymentFn func(id string, amount decimal.Decimal) (*models.UserFinance, error)
}

func (m *mockLedgerStore) Snapshot() *models.UserFinance {
	if m.snapshotFn != nil {
		return m.snapshotFn()
	}
	f := &models.UserFinance{}
	f.Normalize()
	return f
}

func (m *mockLedgerStore) AddTransaction(amount decimal.Decimal, txType models.TransactionType, category, note string) (*models.UserFinance, error) {
	return m.addTransactionFn(amount, txType, category, note)
}

func (m *mockLedgerStore) DeleteTransaction(id string) (*models.UserFinance, error) {
	return m.deleteTransactionFn(id)
}

func (m *mockLedgerStore) AddLoan(name string, total, remaining, installment decimal.Decimal, nextPaymentDate time.Time) (*models.UserFinance, error) {
	return m.addLoanFn(name, total, remaining, installment, nextPaymentDate)
}

func (m *mockLedgerStore) AddGoal(name string, target, current decimal.Decimal, deadline time.Time, goalType models.GoalType) (*models.UserFinance, error) {
	return m.addGoalFn(name, target, current, deadline, goalType)
}

func (m *mockLedgerStore) ApplySpecialPayment(id string, amount decimal.Decimal) (*models.UserFinance, error) {
	return m.applySpecialPaymentFn(id, amount)
}

// mockAdvisor implements advisor.Advisor.
type mockAdvisor struct {
	generateReportFn func(ctx context.Context, summary advisor.Summary) (string, error)
}

func (m *mockAdvisor) GenerateReport(ctx context.Context, summary advisor.Summary) (string, error) {
	return m.generateReportFn(ctx, summary)
}

func doRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func parseJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to parse response %q: %v", w.Body.String(), err)
	}
}

func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	if w.Code != status {
		t.Errorf("expected status %d, got %d (body %q)", status, w.Code, w.Body.String())
	}
	var resp ErrorResponse
	parseJSON(t, w, &resp)
	if resp.Error.Code != code {
		t.Errorf("expected error code %q, got %q", code, resp.Error.Code)
	}
}
