package support

import "time"

// Intent is the category of user request inferred from an utterance.
type Intent string

const (
	IntentCancellationReason Intent = "cancellation_reason"
	IntentCancel             Intent = "cancel"
	IntentRefund             Intent = "refund"
	IntentTracking           Intent = "tracking"
	IntentOrderLookup        Intent = "order_lookup"
	IntentProduct            Intent = "product"
	IntentFAQ                Intent = "faq"
	IntentFallback           Intent = "fallback"
)

// Turn is one utterance/reply exchange within a session.
type Turn struct {
	User      string    `json:"user"`
	Bot       string    `json:"bot"`
	Intent    Intent    `json:"intent"`
	CreatedAt time.Time `json:"created_at"`
}

// PendingCancellation records an order awaiting a cancellation reason.
// A session holds zero or one of these, never more.
type PendingCancellation struct {
	OrderID        string `json:"order_id"`
	AwaitingReason bool   `json:"awaiting_reason"`
}
