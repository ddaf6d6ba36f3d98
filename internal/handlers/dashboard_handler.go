package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hishab/internal/ledger"
	"hishab/internal/metrics"
	"hishab/internal/models"
)

// DashboardHandler serves the derived-metrics view of the ledger. All
// numbers here are recomputed from the snapshot on every request and
// never persisted.
type DashboardHandler struct {
	store ledger.Servicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(store ledger.Servicer) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// GoalSummary is a goal with its display-clamped progress. Progress is
// omitted when the target amount makes the ratio undefined.
type GoalSummary struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Progress      *float64        `json:"progress,omitempty"`
}

// LoanSummary is a loan with its display-clamped payoff progress.
type LoanSummary struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	PayoffProgress  *float64        `json:"payoff_progress,omitempty"`
}

// SpecialPaymentSummary is a special payment with progress and remaining
// balance. Both are omitted for MONTHLY payments, which have no ceiling.
type SpecialPaymentSummary struct {
	ID          string                    `json:"id"`
	Name        string                    `json:"name"`
	Type        models.SpecialPaymentType `json:"type"`
	TotalAmount decimal.Decimal           `json:"total_amount"`
	PaidAmount  decimal.Decimal           `json:"paid_amount"`
	Progress    *float64                  `json:"progress,omitempty"`
	Remaining   *decimal.Decimal          `json:"remaining,omitempty"`
}

// DashboardResponse is the aggregate view of the current snapshot.
type DashboardResponse struct {
	BankBalance          decimal.Decimal         `json:"bank_balance"`
	TotalIncome          decimal.Decimal         `json:"total_income"`
	TotalExpense         decimal.Decimal         `json:"total_expense"`
	TotalOutstandingDebt decimal.Decimal         `json:"total_outstanding_debt"`
	Goals                []GoalSummary           `json:"goals"`
	Loans                []LoanSummary           `json:"loans"`
	SpecialPayments      []SpecialPaymentSummary `json:"special_payments"`
}

// GetDashboard returns the derived-metrics summary
// @Summary     Get the dashboard
// @Description Totals and per-entity progress derived from the current snapshot
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} DashboardResponse "Dashboard summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	finance := h.store.Snapshot()

	resp := DashboardResponse{
		BankBalance:          finance.BankBalance,
		TotalIncome:          metrics.TotalIncome(finance),
		TotalExpense:         metrics.TotalExpense(finance),
		TotalOutstandingDebt: metrics.TotalOutstandingDebt(finance),
		Goals:                make([]GoalSummary, 0, len(finance.Goals)),
		Loans:                make([]LoanSummary, 0, len(finance.Loans)),
		SpecialPayments:      make([]SpecialPaymentSummary, 0, len(finance.SpecialPayments)),
	}

	for _, g := range finance.Goals {
		summary := GoalSummary{
			ID:            g.ID,
			Name:          g.Name,
			TargetAmount:  g.TargetAmount,
			CurrentAmount: g.CurrentAmount,
		}
		if progress, err := metrics.GoalProgress(g); err == nil {
			clamped := metrics.ClampPercent(progress)
			summary.Progress = &clamped
		}
		resp.Goals = append(resp.Goals, summary)
	}

	for _, l := range finance.Loans {
		summary := LoanSummary{
			ID:              l.ID,
			Name:            l.Name,
			TotalAmount:     l.TotalAmount,
			RemainingAmount: l.RemainingAmount,
		}
		if progress, err := metrics.LoanPayoffProgress(l); err == nil {
			clamped := metrics.ClampPercent(progress)
			summary.PayoffProgress = &clamped
		}
		resp.Loans = append(resp.Loans, summary)
	}

	for _, p := range finance.SpecialPayments {
		summary := SpecialPaymentSummary{
			ID:          p.ID,
			Name:        p.Name,
			Type:        p.Type,
			TotalAmount: p.TotalAmount,
			PaidAmount:  p.PaidAmount,
		}
		if progress, err := metrics.SpecialPaymentProgress(p); err == nil {
			clamped := metrics.ClampPercent(progress)
			summary.Progress = &clamped
		}
		if remaining, ok := metrics.SpecialPaymentRemaining(p); ok {
			summary.Remaining = &remaining
		}
		resp.SpecialPayments = append(resp.SpecialPayments, summary)
	}

	c.JSON(http.StatusOK, resp)
}
