package routes

import (
	"investment-manager/config"
	"investment-manager/controllers"
	"investment-manager/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Services bundles what the handlers call into.
type Services struct {
	Customers   *services.CustomerService
	Investments *services.InvestmentService
	Reports     *services.ReportService
}

func SetupRouter(cfg config.Config, svc Services) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", config.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", config.RequestIDHeader},
		AllowCredentials: true,
	}))

	r.Use(config.RequestID())
	r.Use(config.PerformanceLogger())

	customerController := controllers.CustomerController{Customers: svc.Customers, Investments: svc.Investments}
	investmentController := controllers.InvestmentController{Investments: svc.Investments}
	reportController := controllers.ReportController{Reports: svc.Reports}

	api := r.Group("/api")
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", customerController.CreateCustomer)
			customers.GET("", customerController.GetCustomers)
			customers.GET("/:id", customerController.GetCustomer)
			customers.PUT("/:id", customerController.UpdateCustomer)
			customers.DELETE("/:id", customerController.DeleteCustomer)
			customers.GET("/:id/investments", customerController.GetCustomerInvestments)
		}

		// Investment routes
		investments := api.Group("/investments")
		{
			investments.POST("", investmentController.CreateInvestment)
			investments.GET("", investmentController.GetInvestments)
		}

		// Reports routes
		reports := api.Group("/reports")
		{
			reports.GET("/total", reportController.GetTotal)
			reports.GET("/top-investor", reportController.GetTopInvestor)
			reports.GET("/by-customer", reportController.GetByCustomer)
			reports.GET("/summary", reportController.GetSummary)
		}
	}

	return r
}
