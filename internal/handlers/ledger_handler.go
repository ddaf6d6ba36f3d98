package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "hishab/internal/errors"
	"hishab/internal/ledger"
	"hishab/internal/models"
	"hishab/internal/pagination"
)

// LedgerHandler exposes the ledger store's operations. Every mutation
// responds with the updated snapshot.
type LedgerHandler struct {
	store ledger.Servicer
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(store ledger.Servicer) *LedgerHandler {
	return &LedgerHandler{store: store}
}

// GetSnapshot returns the full ledger snapshot
// @Summary     Get the ledger snapshot
// @Description Return the full UserFinance snapshot
// @Tags        ledger
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.UserFinance "Current snapshot"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /ledger [get]
func (h *LedgerHandler) GetSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"finance": h.store.Snapshot()})
}

// AddTransactionRequest represents the request payload for adding a transaction
type AddTransactionRequest struct {
	Amount   decimal.Decimal        `json:"amount" binding:"required,positive_decimal"`
	Type     models.TransactionType `json:"type" binding:"required,transaction_type"`
	Category string                 `json:"category" binding:"required,max=100"`
	Note     string                 `json:"note" binding:"max=500"`
}

// AddTransaction records a new income or expense entry
// @Summary     Add a transaction
// @Description Record an income or expense entry and adjust the bank balance
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AddTransactionRequest true "Transaction details"
// @Success     201 {object} models.UserFinance "Updated snapshot"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /ledger/transactions [post]
func (h *LedgerHandler) AddTransaction(c *gin.Context) {
	var req AddTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	finance, err := h.store.AddTransaction(req.Amount, req.Type, req.Category, req.Note)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"finance": finance})
}

// ListTransactionsRequest holds the query parameters for listing transactions.
type ListTransactionsRequest struct {
	pagination.PageRequest
	Type string `form:"type" binding:"omitempty,transaction_type"`
}

// ListTransactions returns transactions newest-first, optionally filtered by type
// @Summary     List transactions
// @Description Page through the transaction history, newest first
// @Tags        ledger
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Param       type query string false "Filter by type (INCOME or EXPENSE)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /ledger/transactions [get]
func (h *LedgerHandler) ListTransactions(c *gin.Context) {
	var req ListTransactionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transactions := h.store.Snapshot().Transactions
	if req.Type != "" {
		filtered := make([]models.Transaction, 0, len(transactions))
		for _, t := range transactions {
			if t.Type == models.TransactionType(req.Type) {
				filtered = append(filtered, t)
			}
		}
		transactions = filtered
	}

	c.JSON(http.StatusOK, pagination.Slice(transactions, req.PageRequest))
}

// DeleteTransaction removes a transaction and reverses its balance effect
// @Summary     Delete a transaction
// @Description Remove a transaction and reverse its balance effect; unknown ids are a no-op
// @Tags        ledger
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.UserFinance "Updated snapshot"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /ledger/transactions/{id} [delete]
func (h *LedgerHandler) DeleteTransaction(c *gin.Context) {
	finance, err := h.store.DeleteTransaction(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"finance": finance})
}

// AddLoanRequest represents the request payload for adding a loan
type AddLoanRequest struct {
	Name              string          `json:"name" binding:"required,max=100"`
	TotalAmount       decimal.Decimal `json:"total_amount" binding:"required,positive_decimal"`
	RemainingAmount   decimal.Decimal `json:"remaining_amount"`
	InstallmentAmount decimal.Decimal `json:"installment_amount"`
	NextPaymentDate   string          `json:"next_payment_date" binding:"required"`
}

// AddLoan records a new loan
// @Summary     Add a loan
// @Description Record a loan; loans never touch the bank balance
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AddLoanRequest true "Loan details"
// @Success     201 {object} models.UserFinance "Updated snapshot"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /ledger/loans [post]
func (h *LedgerHandler) AddLoan(c *gin.Context) {
	var req AddLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	nextPayment, err := parseFlexibleTime(req.NextPaymentDate)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	finance, err := h.store.AddLoan(req.Name, req.TotalAmount, req.RemainingAmount, req.InstallmentAmount, nextPayment)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"finance": finance})
}

// AddGoalRequest represents the request payload for adding a savings goal
type AddGoalRequest struct {
	Name          string          `json:"name" binding:"required,max=100"`
	TargetAmount  decimal.Decimal `json:"target_amount" binding:"required,positive_decimal"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      string          `json:"deadline" binding:"required"`
	Type          models.GoalType `json:"type" binding:"required,goal_type"`
}

// AddGoal records a new savings goal
// @Summary     Add a goal
// @Description Record a savings goal; goals never touch the bank balance
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AddGoalRequest true "Goal details"
// @Success     201 {object} models.UserFinance "Updated snapshot"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /ledger/goals [post]
func (h *LedgerHandler) AddGoal(c *gin.Context) {
	var req AddGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	deadline, err := parseFlexibleTime(req.Deadline)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	finance, err := h.store.AddGoal(req.Name, req.TargetAmount, req.CurrentAmount, deadline, req.Type)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"finance": finance})
}

// PaySpecialPaymentRequest represents the request payload for applying a payment
type PaySpecialPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,positive_decimal"`
}

// PaySpecialPayment applies a payment toward a named payee
// @Summary     Apply a special payment
// @Description Raise the payment's paid amount, debit the balance, and record the expense
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Special payment ID"
// @Param       request body PaySpecialPaymentRequest true "Payment amount"
// @Success     200 {object} models.UserFinance "Updated snapshot"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Special payment not found"
// @Router      /ledger/special-payments/{id}/pay [post]
func (h *LedgerHandler) PaySpecialPayment(c *gin.Context) {
	var req PaySpecialPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	finance, err := h.store.ApplySpecialPayment(c.Param("id"), req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"finance": finance})
}
