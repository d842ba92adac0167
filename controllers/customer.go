package controllers

import (
	"net/http"

	"investment-manager/models"
	"investment-manager/services"
	"investment-manager/utils"

	"github.com/gin-gonic/gin"
)

// CustomerInput defines the expected JSON structure for creating or updating a customer
type CustomerInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CustomerController struct {
	Customers   *services.CustomerService
	Investments *services.InvestmentService
}

// CreateCustomer saves a new customer and returns it with its id
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var input CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer := models.NewCustomer(input.Name, input.Email, input.Phone)
	if err := cc.Customers.Save(c.Request.Context(), &customer); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers retrieves all customers ordered by id
func (cc *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := cc.Customers.GetAll(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomer retrieves a specific customer by ID
func (cc *CustomerController) GetCustomer(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	customer, found, err := cc.Customers.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer overwrites the contact fields. An unknown id is not an error.
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	var input CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := cc.Customers.Update(c.Request.Context(), id, input.Name, input.Email, input.Phone); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer updated successfully"})
}

// DeleteCustomer removes a customer. Its investments are kept.
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	if err := cc.Customers.Delete(c.Request.Context(), id); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete customer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// GetCustomerInvestments lists the investments referencing a customer id
func (cc *CustomerController) GetCustomerInvestments(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	investments, err := cc.Investments.GetByCustomer(c.Request.Context(), id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve investments")
		return
	}

	c.JSON(http.StatusOK, investments)
}

func customerID(c *gin.Context) (int64, bool) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return 0, false
	}
	return id, true
}
