package cmd

import (
	"fmt"
	"os"

	"investment-manager/config"
	"investment-manager/routes"
	"investment-manager/services"

	"github.com/google/subcommands"
)

// Commands lists every subcommand of the binary.
var Commands = []subcommands.Command{
	&menuCmd{},
	&serveCmd{},
	&migrateCmd{},
	&reportCmd{},
	&exportCmd{},
}

// App wires the store to the services for one process run.
type App struct {
	Config      config.Config
	DB          *config.Database
	Customers   *services.CustomerService
	Investments *services.InvestmentService
	Reports     *services.ReportService
}

// NewApp connects to the store described by cfg and builds the services on top of it.
func NewApp(cfg config.Config) (*App, error) {
	db, err := config.Connect(cfg)
	if err != nil {
		return nil, err
	}
	customers := services.NewCustomerService(db)
	investments := services.NewInvestmentService(db)
	return &App{
		Config:      cfg,
		DB:          db,
		Customers:   customers,
		Investments: investments,
		Reports:     services.NewReportService(db, customers, investments),
	}, nil
}

func (a *App) Services() routes.Services {
	return routes.Services{Customers: a.Customers, Investments: a.Investments, Reports: a.Reports}
}

func (a *App) Close() error { return a.DB.Close() }

// openApp loads the configuration and connects, reporting failures on stderr.
func openApp() (*App, bool) {
	app, err := NewApp(config.Load())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		return nil, false
	}
	return app, true
}
