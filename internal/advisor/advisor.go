// Package advisor builds a narrative advisory report request from the
// ledger's derived metrics and delegates it to an external text-generation
// service. The service is an opaque collaborator: any failure degrades to
// a fixed fallback message rather than an error the user sees.
package advisor

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"hishab/internal/metrics"
	"hishab/internal/models"
)

// FallbackReport is shown whenever the external service cannot produce a
// report. It is fixed: transport details never reach the user.
const FallbackReport = "The advisory service is unavailable right now. Please try again later."

// Summary is the financial snapshot embedded in the report prompt. It is
// read once at request time; the requester has no further interaction
// with the ledger.
type Summary struct {
	BankBalance          decimal.Decimal `json:"bank_balance"`
	TotalIncome          decimal.Decimal `json:"total_income"`
	TotalExpense         decimal.Decimal `json:"total_expense"`
	TotalOutstandingDebt decimal.Decimal `json:"total_outstanding_debt"`
	GoalCount            int             `json:"goal_count"`
}

// Summarize derives the report summary from a ledger snapshot.
func Summarize(f *models.UserFinance) Summary {
	return Summary{
		BankBalance:          f.BankBalance,
		TotalIncome:          metrics.TotalIncome(f),
		TotalExpense:         metrics.TotalExpense(f),
		TotalOutstandingDebt: metrics.TotalOutstandingDebt(f),
		GoalCount:            len(f.Goals),
	}
}

// BuildPrompt renders the free-text prompt sent to the text-generation
// service.
func BuildPrompt(s Summary) string {
	return fmt.Sprintf(`You are a professional financial advisor. Here is a user's financial snapshot:
- Current balance: %s
- Total income this month: %s
- Total expenses this month: %s
- Total outstanding debt: %s
- Number of savings goals: %d

Based on this, write the user a short but actionable financial report with:
1. An assessment of their current financial position.
2. A comment on their spending pattern.
3. Advice on managing their debt.
4. Three practical tips to grow their savings.

Format the report as clear bullet points and keep the tone positive.`,
		s.BankBalance.String(),
		s.TotalIncome.String(),
		s.TotalExpense.String(),
		s.TotalOutstandingDebt.String(),
		s.GoalCount,
	)
}

// Advisor generates a narrative report for a financial summary.
type Advisor interface {
	GenerateReport(ctx context.Context, summary Summary) (string, error)
}
