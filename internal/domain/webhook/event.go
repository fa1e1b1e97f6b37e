// Package webhook holds the typed view over WalletPay webhook notifications.
package webhook

import (
	"bytes"
	"encoding/json"

	vo "walletpay/internal/domain/webhook/valueobjects"
)

// Event is a single notification delivered by WalletPay. The provider posts a
// JSON array of events; only the first element is dispatched.
type Event struct {
	EventID       int64        `json:"eventId" validate:"required"`
	EventDateTime vo.Timestamp `json:"eventDateTime"`
	Type          vo.EventType `json:"type" validate:"required"`
	Payload       *Payload     `json:"payload" validate:"required"`

	raw json.RawMessage
}

// Payload carries the order details of an event.
type Payload struct {
	OrderID                int64           `json:"id" validate:"required"`
	OrderNumber            string          `json:"number"`
	ExternalID             string          `json:"externalId"`
	Status                 vo.OrderStatus  `json:"status,omitempty"`
	CustomData             CustomData      `json:"customData"`
	OrderAmount            *vo.MoneyAmount `json:"orderAmount" validate:"required"`
	SelectedPaymentOption  *PaymentOption  `json:"selectedPaymentOption,omitempty"`
	OrderCompletedDateTime *vo.Timestamp   `json:"orderCompletedDateTime,omitempty"`
}

// PaymentOption is the option picked by the payer. Absent for failed orders.
type PaymentOption struct {
	Amount       vo.MoneyAmount `json:"amount"`
	AmountFee    vo.MoneyAmount `json:"amountFee"`
	AmountNet    vo.MoneyAmount `json:"amountNet"`
	ExchangeRate string         `json:"exchangeRate"`
}

// Raw returns the event object exactly as it appeared in the request body.
func (e *Event) Raw() json.RawMessage {
	return e.raw
}

// IsPaid reports whether the event is an ORDER_PAID notification.
func (e *Event) IsPaid() bool {
	return e.Type.IsPaid()
}

// IsFailed reports whether the event is an ORDER_FAILED notification.
func (e *Event) IsFailed() bool {
	return e.Type.IsFailed()
}

// DecodeEvent decodes a single event object and keeps its raw bytes.
func DecodeEvent(data json.RawMessage) (*Event, error) {
	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	event.raw = append(json.RawMessage(nil), data...)
	return &event, nil
}

// CustomData is the merchant supplied string attached to an order. When the
// string holds valid JSON the decoded value is exposed through Value, otherwise
// Value is the string itself.
type CustomData struct {
	Raw   string
	Value any
}

func (c *CustomData) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*c = CustomData{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = ParseCustomData(raw)
	return nil
}

func (c CustomData) MarshalJSON() ([]byte, error) {
	if c.Raw == "" {
		return []byte("null"), nil
	}
	return json.Marshal(c.Raw)
}

// IsEmpty reports whether the order carried no custom data.
func (c CustomData) IsEmpty() bool {
	return c.Raw == ""
}

// Object returns the decoded JSON object, if the custom data was one.
func (c CustomData) Object() (map[string]any, bool) {
	obj, ok := c.Value.(map[string]any)
	return obj, ok
}

func ParseCustomData(raw string) CustomData {
	if raw == "" {
		return CustomData{}
	}
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return CustomData{Raw: raw, Value: raw}
	}
	return CustomData{Raw: raw, Value: decoded}
}
