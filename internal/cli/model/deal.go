package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DealStatus is derived from the return flag and the due date.
type DealStatus string

const (
	DealActive   DealStatus = "active"
	DealOverdue  DealStatus = "overdue"
	DealReturned DealStatus = "returned"
)

// Label returns the Ukrainian status text.
func (s DealStatus) Label() string {
	switch s {
	case DealReturned:
		return "Повернено"
	case DealOverdue:
		return "Прострочено"
	default:
		return "Активна"
	}
}

// Deal — сделка займа. Клиент и предмет приходят вложенными объектами.
type Deal struct {
	ID         string          `json:"_id"`
	Client     *Client         `json:"client"`
	Item       *Item           `json:"item"`
	LoanAmount decimal.Decimal `json:"loanAmount"`
	Commission decimal.Decimal `json:"commission"`
	IssueDate  Date            `json:"issueDate"`
	DueDate    Date            `json:"dueDate"`
	IsReturned bool            `json:"isReturned"`
}

// DealPayload — тело запроса; ссылки передаются идентификаторами.
type DealPayload struct {
	Client     string          `json:"client"`
	Item       string          `json:"item"`
	LoanAmount decimal.Decimal `json:"loanAmount"`
	Commission decimal.Decimal `json:"commission"`
	IssueDate  Date            `json:"issueDate"`
	DueDate    Date            `json:"dueDate"`
}

// Status derives the deal status at the given moment. A returned deal is
// "returned" regardless of dates; otherwise a due date before now is overdue.
func (d Deal) Status(now time.Time) DealStatus {
	if d.IsReturned {
		return DealReturned
	}
	if !d.DueDate.IsZero() && d.DueDate.Before(now) {
		return DealOverdue
	}
	return DealActive
}
