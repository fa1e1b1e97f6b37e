package webhook

import vo "walletpay/internal/domain/webhook/valueobjects"

// OrderPreview is the order as reported by the WalletPay store API.
type OrderPreview struct {
	ID                 int64          `json:"id"`
	Status             vo.OrderStatus `json:"status"`
	Number             string         `json:"number"`
	Amount             vo.MoneyAmount `json:"amount"`
	CreatedDateTime    vo.Timestamp   `json:"createdDateTime"`
	ExpirationDateTime vo.Timestamp   `json:"expirationDateTime"`
	CompletedDateTime  *vo.Timestamp  `json:"completedDateTime,omitempty"`
	PayLink            string         `json:"payLink"`
	DirectPayLink      string         `json:"directPayLink"`
}

// IsPaid reports whether WalletPay considers the order paid.
func (o *OrderPreview) IsPaid() bool {
	return o.Status == vo.OrderStatusPaid
}
