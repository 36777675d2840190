package push

import (
	"context"
	"fmt"

	"medicine_expiry_notifier/internal/domain/channel"
	"medicine_expiry_notifier/internal/infra/config"

	webpush "github.com/SherClockHolmes/webpush-go"
)

// Client implements the channel.PushSender interface using VAPID web push.
type Client struct {
	options *webpush.Options
}

func NewClient(cfg *config.AppConfig) *Client {
	return &Client{
		options: &webpush.Options{
			Subscriber:      cfg.VAPIDSubject,
			VAPIDPublicKey:  cfg.VAPIDPublicKey,
			VAPIDPrivateKey: cfg.VAPIDPrivateKey,
			TTL:             60,
		},
	}
}

// Send builds a subscription descriptor from the stored endpoint and keys
// and delivers the raw text payload.
func (c *Client) Send(ctx context.Context, sub channel.PushSubscription, textBody string) error {
	subscription := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}

	resp, err := webpush.SendNotificationWithContext(ctx, []byte(textBody), subscription, c.options)
	if err != nil {
		return fmt.Errorf("web push send failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("web push rejected with status %d", resp.StatusCode)
	}
	return nil
}
