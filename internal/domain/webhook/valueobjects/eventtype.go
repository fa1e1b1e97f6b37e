package valueobjects

// EventType is the discriminator carried in the "type" field of a webhook event.
type EventType string

const (
	EventTypeOrderPaid   EventType = "ORDER_PAID"
	EventTypeOrderFailed EventType = "ORDER_FAILED"
)

// IsRecognized reports whether the event type routes to a callback category.
func (t EventType) IsRecognized() bool {
	switch t {
	case EventTypeOrderPaid, EventTypeOrderFailed:
		return true
	default:
		return false
	}
}

func (t EventType) IsPaid() bool {
	return t == EventTypeOrderPaid
}

func (t EventType) IsFailed() bool {
	return t == EventTypeOrderFailed
}

func (t EventType) String() string {
	return string(t)
}
