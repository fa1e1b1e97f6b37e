package valueobjects

import "fmt"

// MoneyAmount is an amount as sent by WalletPay: a decimal string plus a currency
// code (TON, BTC, USDT, EUR, USD, RUB). The decimal string is kept verbatim,
// exponent forms such as "1E-7" included, so no precision is lost in transit.
type MoneyAmount struct {
	CurrencyCode string `json:"currencyCode" validate:"required"`
	Amount       string `json:"amount" validate:"required"`
}

func NewMoneyAmount(amount, currencyCode string) MoneyAmount {
	return MoneyAmount{
		CurrencyCode: currencyCode,
		Amount:       amount,
	}
}

func (m MoneyAmount) Equals(other MoneyAmount) bool {
	return m.Amount == other.Amount && m.CurrencyCode == other.CurrencyCode
}

func (m MoneyAmount) String() string {
	return fmt.Sprintf("%s %s", m.Amount, m.CurrencyCode)
}
