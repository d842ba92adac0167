// controllers/report.go
package controllers

import (
	"net/http"

	"investment-manager/services"
	"investment-manager/utils"

	"github.com/gin-gonic/gin"
)

// ReportController handles all reporting functions
type ReportController struct {
	Reports *services.ReportService
}

// GetTotal returns the sum of all investment amounts
func (rc *ReportController) GetTotal(c *gin.Context) {
	total, err := rc.Reports.TotalInvestment(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get total investment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"total": total})
}

// GetTopInvestor answers 404 while no investment has been recorded
func (rc *ReportController) GetTopInvestor(c *gin.Context) {
	top, found, err := rc.Reports.TopInvestor(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get top investor")
		return
	}
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "No investments yet")
		return
	}

	c.JSON(http.StatusOK, top)
}

func (rc *ReportController) GetByCustomer(c *gin.Context) {
	totals, err := rc.Reports.InvestmentsByCustomer(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get investments by customer")
		return
	}

	c.JSON(http.StatusOK, totals)
}

func (rc *ReportController) GetSummary(c *gin.Context) {
	summaries, err := rc.Reports.CustomerSummaries(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get customer summary")
		return
	}

	c.JSON(http.StatusOK, summaries)
}
