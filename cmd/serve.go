package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"investment-manager/routes"
	"investment-manager/services"

	"github.com/gin-gonic/gin"
	"github.com/google/subcommands"
)

type serveCmd struct {
	port     string
	noDigest bool
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the JSON API and run the scheduled digest" }
func (*serveCmd) Usage() string {
	return `investment-manager serve [-port <port>] [-no-digest]

  Serves the customers, investments and reports API over HTTP.
  Unless disabled, the digest of totals runs on the DIGEST_CRON schedule.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.port, "port", "", "Port to listen on. Defaults to $PORT or 8080.")
	f.BoolVar(&c.noDigest, "no-digest", false, "Do not schedule the digest.")
}

func (c *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, ok := openApp()
	if !ok {
		return subcommands.ExitFailure
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !c.noDigest {
		digest := services.NewDigestService(app.Reports, services.NewNotifier(app.Config.Twilio), app.Config.DigestSchedule)
		if err := digest.Start(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer digest.Stop()
	}

	port := c.port
	if port == "" {
		port = app.Config.Port
	}
	r := routes.SetupRouter(app.Config, app.Services())
	printRoutes(r)

	srv := &http.Server{Addr: ":" + port, Handler: r}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("Listening on :%s", port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
