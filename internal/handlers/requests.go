package handlers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"Lombard/internal/model"

	"github.com/shopspring/decimal"
)

// ClientRequest — тело POST/PUT /api/clients.
type ClientRequest struct {
	Surname    string `json:"surname"`
	Name       string `json:"name"`
	Patronymic string `json:"patronymic"`
	Passport   string `json:"passport"`
}

// ItemRequest — тело POST/PUT /api/items; owner передаётся идентификатором.
type ItemRequest struct {
	Name           string          `json:"name"`
	EstimatedPrice decimal.Decimal `json:"estimatedPrice"`
	LoanAmount     decimal.Decimal `json:"loanAmount"`
	Commission     decimal.Decimal `json:"commission"`
	Owner          string          `json:"owner"`
	Status         string          `json:"status"`
}

// DealRequest — тело POST/PUT /api/deals. Даты как YYYY-MM-DD или RFC 3339.
type DealRequest struct {
	Client     string          `json:"client"`
	Item       string          `json:"item"`
	LoanAmount decimal.Decimal `json:"loanAmount"`
	Commission decimal.Decimal `json:"commission"`
	IssueDate  string          `json:"issueDate"`
	DueDate    string          `json:"dueDate"`
	IsReturned *bool           `json:"isReturned"`
}

var errRequired = errors.New("missing required fields")

func applyClient(req ClientRequest, c *model.Client, _ bool) error {
	req.Surname = strings.TrimSpace(req.Surname)
	req.Name = strings.TrimSpace(req.Name)
	req.Passport = strings.TrimSpace(req.Passport)
	if req.Surname == "" || req.Name == "" || req.Passport == "" {
		return fmt.Errorf("%w: surname, name, passport", errRequired)
	}
	c.Surname = req.Surname
	c.Name = req.Name
	c.Patronymic = strings.TrimSpace(req.Patronymic)
	c.Passport = req.Passport
	return nil
}

func applyItem(req ItemRequest, it *model.Item, creating bool) error {
	if strings.TrimSpace(req.Name) == "" || req.Owner == "" {
		return fmt.Errorf("%w: name, owner", errRequired)
	}
	if err := nonNegative(map[string]decimal.Decimal{
		"estimatedPrice": req.EstimatedPrice,
		"loanAmount":     req.LoanAmount,
		"commission":     req.Commission,
	}); err != nil {
		return err
	}
	switch req.Status {
	case "":
		if creating {
			it.Status = model.ItemStatusPledged
		}
	case model.ItemStatusPledged, model.ItemStatusOwnedByShop:
		it.Status = req.Status
	default:
		return fmt.Errorf("unknown status %q", req.Status)
	}
	it.Name = strings.TrimSpace(req.Name)
	it.EstimatedPrice = req.EstimatedPrice
	it.LoanAmount = req.LoanAmount
	it.Commission = req.Commission
	it.OwnerID = req.Owner
	it.Owner = nil
	return nil
}

func applyDeal(req DealRequest, d *model.Deal, _ bool) error {
	if req.Client == "" || req.Item == "" || req.DueDate == "" {
		return fmt.Errorf("%w: client, item, dueDate", errRequired)
	}
	if err := nonNegative(map[string]decimal.Decimal{
		"loanAmount": req.LoanAmount,
		"commission": req.Commission,
	}); err != nil {
		return err
	}
	due, err := parseDate(req.DueDate)
	if err != nil {
		return fmt.Errorf("dueDate: %w", err)
	}
	issue := time.Now().UTC().Truncate(24 * time.Hour)
	if req.IssueDate != "" {
		if issue, err = parseDate(req.IssueDate); err != nil {
			return fmt.Errorf("issueDate: %w", err)
		}
	}
	d.ClientID = req.Client
	d.ItemID = req.Item
	d.Client, d.Item = nil, nil
	d.LoanAmount = req.LoanAmount
	d.Commission = req.Commission
	d.IssueDate = issue
	d.DueDate = due
	if req.IsReturned != nil {
		d.IsReturned = *req.IsReturned
	}
	return nil
}

func nonNegative(fields map[string]decimal.Decimal) error {
	for name, v := range fields {
		if v.IsNegative() {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t.UTC(), nil
}
