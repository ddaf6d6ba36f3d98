package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hishab/internal/advisor"
	"hishab/internal/ledger"
	"hishab/internal/logger"
)

// AdvisorHandler requests narrative advisory reports from the external
// text-generation service. The request is fire-and-forget from the
// ledger's perspective: it reads one snapshot of derived metrics and has
// no further interaction with the store.
type AdvisorHandler struct {
	store   ledger.Servicer
	advisor advisor.Advisor
	timeout time.Duration
}

// NewAdvisorHandler creates a new AdvisorHandler.
func NewAdvisorHandler(store ledger.Servicer, adv advisor.Advisor, timeout time.Duration) *AdvisorHandler {
	return &AdvisorHandler{store: store, advisor: adv, timeout: timeout}
}

// ReportResponse carries the advisory report text. Fallback is true when
// the external service failed and the fixed message was substituted.
type ReportResponse struct {
	Report   string `json:"report"`
	Fallback bool   `json:"fallback"`
}

// GenerateReport requests an advisory report
// @Summary     Generate an advisory report
// @Description Send the financial summary to the text-generation service and return its narrative
// @Tags        advisor
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} ReportResponse "Report or fallback message"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     429 {object} ErrorResponse "Rate limited"
// @Router      /advisor/report [post]
func (h *AdvisorHandler) GenerateReport(c *gin.Context) {
	summary := advisor.Summarize(h.store.Snapshot())

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	report, err := h.advisor.GenerateReport(ctx, summary)
	if err != nil {
		// External failures degrade to the fixed fallback text, never an error.
		logger.Get().Warnw("advisory report failed", "error", err)
		c.JSON(http.StatusOK, ReportResponse{Report: advisor.FallbackReport, Fallback: true})
		return
	}

	c.JSON(http.StatusOK, ReportResponse{Report: report})
}
