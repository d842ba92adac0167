package controllers

import (
	"net/http"

	"investment-manager/models"
	"investment-manager/services"
	"investment-manager/utils"

	"github.com/gin-gonic/gin"
)

// CreateInvestmentInput defines the expected JSON structure for recording an investment.
// Dates are YYYY-MM-DD; a null or empty end_date means the investment is ongoing.
type CreateInvestmentInput struct {
	CustomerID     int64           `json:"customer_id" binding:"required"`
	Amount         *float64        `json:"amount" binding:"required"`
	InvestmentType string          `json:"investment_type" binding:"required"`
	StartDate      models.Date     `json:"start_date"`
	EndDate        models.NullDate `json:"end_date"`
	ExpectedProfit float64         `json:"expected_profit"`
}

type InvestmentController struct {
	Investments *services.InvestmentService
}

func (ic *InvestmentController) CreateInvestment(c *gin.Context) {
	var input CreateInvestmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.StartDate.IsZero() {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: start_date is required")
		return
	}

	investment := models.Investment{
		CustomerID:     input.CustomerID,
		Amount:         *input.Amount,
		InvestmentType: input.InvestmentType,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		ExpectedProfit: input.ExpectedProfit,
	}
	if err := ic.Investments.Save(c.Request.Context(), &investment); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create investment")
		return
	}

	c.JSON(http.StatusCreated, investment)
}

func (ic *InvestmentController) GetInvestments(c *gin.Context) {
	investments, err := ic.Investments.GetAll(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve investments")
		return
	}

	c.JSON(http.StatusOK, investments)
}
