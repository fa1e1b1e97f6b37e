package valueobjects

type OrderStatus string

const (
	OrderStatusActive    OrderStatus = "ACTIVE"
	OrderStatusExpired   OrderStatus = "EXPIRED"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusActive, OrderStatusExpired, OrderStatusPaid, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsFinal reports whether the order can no longer change state.
func (s OrderStatus) IsFinal() bool {
	return s == OrderStatusExpired || s == OrderStatusPaid || s == OrderStatusCancelled
}

func (s OrderStatus) String() string {
	return string(s)
}
