package channel

import (
	"context"

	"medicine_expiry_notifier/internal/domain/medicine"
)

// EmailSender renders and delivers one notification email. The two methods
// map to the two HTML layouts: a pre-formatted consolidated summary and a
// tabular single-medicine notice.
type EmailSender interface {
	SendConsolidated(ctx context.Context, to, subject, body string) error
	SendSingle(ctx context.Context, to, subject string, med *medicine.Medicine) error
}

// PushSubscription carries the web-push endpoint and keys stored in the
// notification settings.
type PushSubscription struct {
	Endpoint string
	P256dh   string
	Auth     string
}

// PushSender delivers a raw text payload to one push subscription.
type PushSender interface {
	Send(ctx context.Context, sub PushSubscription, textBody string) error
}
