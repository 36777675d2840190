package email

import (
	"context"
	"fmt"

	"medicine_expiry_notifier/internal/domain/medicine"
	"medicine_expiry_notifier/internal/infra/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Client implements the channel.EmailSender interface over SMTP using
// gomail. Outside production every message is redirected to the configured
// test recipient; callers keep logging the originally intended address.
type Client struct {
	dialer        *gomail.Dialer
	from          string
	environment   string
	testRecipient string
	logger        *logrus.Entry
}

func NewClient(cfg *config.AppConfig, logger *logrus.Entry) *Client {
	return &Client{
		dialer:        gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:          cfg.SMTPFrom,
		environment:   cfg.Environment,
		testRecipient: cfg.TestEmailRecipient,
		logger:        logger,
	}
}

// SendConsolidated wraps an already-composed plain-text summary in the
// pre-formatted consolidated layout and delivers it.
func (c *Client) SendConsolidated(ctx context.Context, to, subject, body string) error {
	html, err := renderConsolidated(subject, body)
	if err != nil {
		return fmt.Errorf("failed to render consolidated email: %w", err)
	}
	return c.send(ctx, to, subject, html)
}

// SendSingle renders the tabular single-medicine layout and delivers it.
func (c *Client) SendSingle(ctx context.Context, to, subject string, med *medicine.Medicine) error {
	html, err := renderSingle(med)
	if err != nil {
		return fmt.Errorf("failed to render medicine email: %w", err)
	}
	return c.send(ctx, to, subject, html)
}

func (c *Client) send(ctx context.Context, to, subject, htmlBody string) error {
	recipient := to
	if c.environment != "production" {
		recipient = c.testRecipient
		c.logger.WithFields(logrus.Fields{
			"intended": to,
			"actual":   recipient,
		}).Debug("Non-production environment, redirecting email recipient")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := c.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}
