package notification

// CadenceType indicates which reminder cadence produced a notification.
type CadenceType string

const (
	CadenceDaily   CadenceType = "DAILY"
	CadenceWeekly  CadenceType = "WEEKLY"
	CadenceMonthly CadenceType = "MONTHLY"
)

// Channel identifies the delivery channel of a notification attempt.
type Channel string

const (
	ChannelEmail Channel = "EMAIL"
	ChannelPush  Channel = "PUSH"
)

// DeliveryStatus records the outcome of a single delivery attempt.
type DeliveryStatus string

const (
	StatusSent   DeliveryStatus = "SENT"
	StatusFailed DeliveryStatus = "FAILED"
)
