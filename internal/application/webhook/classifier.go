package webhook

import (
	"encoding/json"
	"fmt"

	"walletpay/internal/domain/webhook"
	vo "walletpay/internal/domain/webhook/valueobjects"
	"walletpay/internal/shared/utils"
)

// Category routes a classified event to a callback list.
type Category string

const (
	CategorySuccess      Category = "success"
	CategoryFailure      Category = "failure"
	CategoryUnrecognized Category = "unrecognized"
)

func (c Category) String() string {
	return string(c)
}

// CategoryOf maps an event type to its callback category.
func CategoryOf(t vo.EventType) Category {
	switch t {
	case vo.EventTypeOrderPaid:
		return CategorySuccess
	case vo.EventTypeOrderFailed:
		return CategoryFailure
	default:
		return CategoryUnrecognized
	}
}

// Classification is the result of classifying a verified payload. Event is
// nil for unrecognized types.
type Classification struct {
	Type     vo.EventType
	Category Category
	Event    *webhook.Event
}

type eventEnvelope struct {
	Type vo.EventType `json:"type"`
}

// Classify parses the verified body. WalletPay posts a JSON array and only the
// first element is considered. Recognized events are fully decoded and
// validated; anything else is acknowledged without decoding further.
func Classify(body []byte) (*Classification, error) {
	var events []json.RawMessage
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("%w: empty event array", ErrMalformedPayload)
	}

	var envelope eventEnvelope
	if err := json.Unmarshal(events[0], &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	category := CategoryOf(envelope.Type)
	if category == CategoryUnrecognized {
		return &Classification{Type: envelope.Type, Category: category}, nil
	}

	event, err := webhook.DecodeEvent(events[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if err := utils.ValidateStruct(event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	return &Classification{Type: event.Type, Category: category, Event: event}, nil
}
