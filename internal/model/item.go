package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// деньги уходят в JSON числами, как их ждёт клиент
	decimal.MarshalJSONWithoutQuotes = true
}

// Item statuses.
const (
	ItemStatusPledged     = "pledged"
	ItemStatusOwnedByShop = "owned-by-shop"
)

// Item — предмет залога. Владелец отдаётся вложенным объектом.
type Item struct {
	ID             string          `gorm:"primaryKey;size:36" json:"_id"`
	Name           string          `gorm:"not null" json:"name"`
	EstimatedPrice decimal.Decimal `gorm:"type:numeric;not null" json:"estimatedPrice"`
	LoanAmount     decimal.Decimal `gorm:"type:numeric;not null" json:"loanAmount"`
	Commission     decimal.Decimal `gorm:"type:numeric;not null" json:"commission"`
	Status         string          `gorm:"not null;default:pledged" json:"status"`

	OwnerID string  `gorm:"size:36;index" json:"-"`
	Owner   *Client `gorm:"foreignKey:OwnerID" json:"owner"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate assigns a UUID and the default status.
func (it *Item) BeforeCreate(*gorm.DB) error {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	if it.Status == "" {
		it.Status = ItemStatusPledged
	}
	return nil
}
