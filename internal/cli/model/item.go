package model

import "github.com/shopspring/decimal"

// Item statuses.
const (
	ItemStatusPledged     = "pledged"
	ItemStatusOwnedByShop = "owned-by-shop"
)

// Item — предмет залога. Владелец приходит вложенным объектом.
type Item struct {
	ID             string          `json:"_id"`
	Name           string          `json:"name"`
	EstimatedPrice decimal.Decimal `json:"estimatedPrice"`
	LoanAmount     decimal.Decimal `json:"loanAmount"`
	Commission     decimal.Decimal `json:"commission"`
	Owner          *Client         `json:"owner"`
	Status         string          `json:"status"`
}

// ItemPayload — тело запроса; владелец передаётся идентификатором.
type ItemPayload struct {
	Name           string          `json:"name"`
	EstimatedPrice decimal.Decimal `json:"estimatedPrice"`
	LoanAmount     decimal.Decimal `json:"loanAmount"`
	Commission     decimal.Decimal `json:"commission"`
	Owner          string          `json:"owner"`
}

// StatusLabel returns the Ukrainian label of the pledge status.
func (it Item) StatusLabel() string {
	if it.Status == ItemStatusPledged {
		return "Під заставою"
	}
	return "Власність ломбарду"
}

// ItemName renders an embedded item reference; "-" when it is missing.
func ItemName(it *Item) string {
	if it == nil || it.Name == "" {
		return Missing
	}
	return it.Name
}

// Hryvnias formats an amount as shown in tables and options: "1500 грн".
func Hryvnias(d decimal.Decimal) string {
	return d.String() + " грн"
}
