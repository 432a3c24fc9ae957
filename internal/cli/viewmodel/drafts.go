package viewmodel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"Lombard/internal/cli/model"

	"github.com/shopspring/decimal"
)

// Draft is the editable, untyped-by-input state of one form. Set never
// validates; Payload validates and coerces.
type Draft[T, P any] interface {
	Set(field, value string) error
	Fill(record T)
	Values() map[string]string
	Payload() (P, error)
}

var errNegative = errors.New("negative amount")

// Подписи полей для сообщений об ошибках.
var fieldLabels = map[string]string{
	"estimatedPrice": "Оціночна вартість",
	"loanAmount":     "Сума позики",
	"commission":     "Комісія",
	"issueDate":      "Дата видачі",
	"dueDate":        "Термін повернення",
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func requireFields(values ...string) error {
	for _, v := range values {
		if blank(v) {
			return &ValidationError{Message: MsgRequired}
		}
	}
	return nil
}

// money coerces form input into a non-negative amount. Empty input is zero
// for optional fields; non-numeric text is never a silent zero.
func money(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err == nil && d.IsNegative() {
		err = errNegative
	}
	if err != nil {
		return decimal.Zero, &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("Некоректне значення поля «%s»", fieldLabels[field]),
			Err:     err,
		}
	}
	return d, nil
}

func date(field, raw string) (model.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return model.Date{}, nil
	}
	d, err := model.ParseDate(raw)
	if err != nil {
		return model.Date{}, &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("Некоректна дата у полі «%s»", fieldLabels[field]),
			Err:     err,
		}
	}
	return d, nil
}

func unknownField(field string) error {
	return fmt.Errorf("%w: %q", ErrUnknownField, field)
}

// ClientDraft — черновик формы клиента.
type ClientDraft struct {
	Surname    string
	Name       string
	Patronymic string
	Passport   string
}

var _ Draft[model.Client, model.ClientPayload] = (*ClientDraft)(nil)

func (d *ClientDraft) Set(field, value string) error {
	switch field {
	case "surname":
		d.Surname = value
	case "name":
		d.Name = value
	case "patronymic":
		d.Patronymic = value
	case "passport":
		d.Passport = value
	default:
		return unknownField(field)
	}
	return nil
}

func (d *ClientDraft) Fill(c model.Client) {
	*d = ClientDraft{Surname: c.Surname, Name: c.Name, Patronymic: c.Patronymic, Passport: c.Passport}
}

func (d *ClientDraft) Values() map[string]string {
	return map[string]string{"surname": d.Surname, "name": d.Name, "patronymic": d.Patronymic, "passport": d.Passport}
}

// Payload requires surname, name and passport; patronymic is optional.
func (d *ClientDraft) Payload() (model.ClientPayload, error) {
	if err := requireFields(d.Surname, d.Name, d.Passport); err != nil {
		return model.ClientPayload{}, err
	}
	return model.ClientPayload{Surname: d.Surname, Name: d.Name, Patronymic: d.Patronymic, Passport: d.Passport}, nil
}

// ItemDraft — черновик формы предмета. Суммы хранятся как введённый текст.
type ItemDraft struct {
	Name           string
	EstimatedPrice string
	LoanAmount     string
	Commission     string
	Owner          string // id клиента
}

var _ Draft[model.Item, model.ItemPayload] = (*ItemDraft)(nil)

func (d *ItemDraft) Set(field, value string) error {
	switch field {
	case "name":
		d.Name = value
	case "estimatedPrice":
		d.EstimatedPrice = value
	case "loanAmount":
		d.LoanAmount = value
	case "commission":
		d.Commission = value
	case "owner":
		d.Owner = value
	default:
		return unknownField(field)
	}
	return nil
}

func (d *ItemDraft) Fill(it model.Item) {
	*d = ItemDraft{
		Name:           it.Name,
		EstimatedPrice: it.EstimatedPrice.String(),
		LoanAmount:     it.LoanAmount.String(),
		Commission:     it.Commission.String(),
	}
	if it.Owner != nil {
		d.Owner = it.Owner.ID
	}
}

func (d *ItemDraft) Values() map[string]string {
	return map[string]string{
		"name":           d.Name,
		"estimatedPrice": d.EstimatedPrice,
		"loanAmount":     d.LoanAmount,
		"commission":     d.Commission,
		"owner":          d.Owner,
	}
}

// Payload requires name, estimatedPrice and owner; loanAmount and commission default to zero.
func (d *ItemDraft) Payload() (model.ItemPayload, error) {
	var p model.ItemPayload
	if err := requireFields(d.Name, d.EstimatedPrice, d.Owner); err != nil {
		return p, err
	}
	var err error
	if p.EstimatedPrice, err = money("estimatedPrice", d.EstimatedPrice); err != nil {
		return p, err
	}
	if p.LoanAmount, err = money("loanAmount", d.LoanAmount); err != nil {
		return p, err
	}
	if p.Commission, err = money("commission", d.Commission); err != nil {
		return p, err
	}
	p.Name = d.Name
	p.Owner = d.Owner
	return p, nil
}

// DealDraft — черновик формы угоды. Даты в формате YYYY-MM-DD.
type DealDraft struct {
	Client     string
	Item       string
	LoanAmount string
	Commission string
	IssueDate  string
	DueDate    string
}

var _ Draft[model.Deal, model.DealPayload] = (*DealDraft)(nil)

// NewDealDraft returns a draft whose issue date is today.
func NewDealDraft(now time.Time) *DealDraft {
	return &DealDraft{IssueDate: now.Format(model.DateLayout)}
}

func (d *DealDraft) Set(field, value string) error {
	switch field {
	case "client":
		d.Client = value
	case "item":
		d.Item = value
	case "loanAmount":
		d.LoanAmount = value
	case "commission":
		d.Commission = value
	case "issueDate":
		d.IssueDate = value
	case "dueDate":
		d.DueDate = value
	default:
		return unknownField(field)
	}
	return nil
}

func (d *DealDraft) Fill(deal model.Deal) {
	*d = DealDraft{
		LoanAmount: deal.LoanAmount.String(),
		Commission: deal.Commission.String(),
	}
	if deal.Client != nil {
		d.Client = deal.Client.ID
	}
	if deal.Item != nil {
		d.Item = deal.Item.ID
	}
	if !deal.IssueDate.IsZero() {
		d.IssueDate = deal.IssueDate.Format(model.DateLayout)
	}
	if !deal.DueDate.IsZero() {
		d.DueDate = deal.DueDate.Format(model.DateLayout)
	}
}

func (d *DealDraft) Values() map[string]string {
	return map[string]string{
		"client":     d.Client,
		"item":       d.Item,
		"loanAmount": d.LoanAmount,
		"commission": d.Commission,
		"issueDate":  d.IssueDate,
		"dueDate":    d.DueDate,
	}
}

// Payload requires client, item, loanAmount and dueDate. The order of the
// issue and due dates is not checked.
func (d *DealDraft) Payload() (model.DealPayload, error) {
	var p model.DealPayload
	if err := requireFields(d.Client, d.Item, d.LoanAmount, d.DueDate); err != nil {
		return p, err
	}
	var err error
	if p.LoanAmount, err = money("loanAmount", d.LoanAmount); err != nil {
		return p, err
	}
	if p.Commission, err = money("commission", d.Commission); err != nil {
		return p, err
	}
	if p.IssueDate, err = date("issueDate", d.IssueDate); err != nil {
		return p, err
	}
	if p.DueDate, err = date("dueDate", d.DueDate); err != nil {
		return p, err
	}
	p.Client = d.Client
	p.Item = d.Item
	return p, nil
}
