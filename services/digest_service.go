// services/digest_service.go
package services

import (
	"context"
	"fmt"
	"log"

	"investment-manager/config"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Notifier delivers a digest message somewhere outside the process.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// LogNotifier only writes the digest to the process log.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, message string) error {
	log.Printf("[DIGEST] %s", message)
	return nil
}

// SMSNotifier sends the digest as a text message through Twilio.
type SMSNotifier struct {
	client *twilio.RestClient
	from   string
	to     string
}

func NewSMSNotifier(cfg config.TwilioConfig) *SMSNotifier {
	return &SMSNotifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		}),
		from: cfg.From,
		to:   cfg.To,
	}
}

func (n *SMSNotifier) Notify(_ context.Context, message string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(n.to)
	params.SetFrom(n.from)
	params.SetBody(message)

	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("send digest to %s: %w", n.to, err)
	}
	if resp.Sid != nil {
		log.Printf("Digest sent to %s, SID: %s", n.to, *resp.Sid)
	}
	return nil
}

// NewNotifier returns an SMS notifier when Twilio is fully configured, a log notifier otherwise.
func NewNotifier(cfg config.TwilioConfig) Notifier {
	if cfg.Enabled() {
		return NewSMSNotifier(cfg)
	}
	return LogNotifier{}
}

// DigestService periodically reports the total invested and the top investor.
type DigestService struct {
	reports  *ReportService
	notifier Notifier
	schedule string
	cron     *cron.Cron
}

func NewDigestService(reports *ReportService, notifier Notifier, schedule string) *DigestService {
	return &DigestService{
		reports:  reports,
		notifier: notifier,
		schedule: schedule,
		cron:     cron.New(),
	}
}

// Start registers the digest on its cron schedule and starts the scheduler.
func (s *DigestService) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		if _, err := s.RunOnce(ctx); err != nil {
			log.Printf("Digest failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid digest schedule %q: %w", s.schedule, err)
	}
	s.cron.Start()
	log.Printf("Digest scheduler started (%s)", s.schedule)
	return nil
}

// Stop halts the scheduler and waits for a running digest to finish.
func (s *DigestService) Stop() {
	<-s.cron.Stop().Done()
}

// RunOnce builds the digest message and hands it to the notifier.
func (s *DigestService) RunOnce(ctx context.Context) (string, error) {
	total, err := s.reports.TotalInvestment(ctx)
	if err != nil {
		return "", err
	}
	top, found, err := s.reports.TopInvestor(ctx)
	if err != nil {
		return "", err
	}

	message := fmt.Sprintf("Total invested: %.2f. No investments yet.", total)
	if found {
		message = fmt.Sprintf("Total invested: %.2f. Top investor: %s (ID %d) with %.2f.",
			total, top.Name, top.CustomerID, top.Total)
	}
	if err := s.notifier.Notify(ctx, message); err != nil {
		return message, err
	}
	return message, nil
}
