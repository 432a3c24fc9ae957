package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Deal — сделка займа под залог предмета.
type Deal struct {
	ID string `gorm:"primaryKey;size:36" json:"_id"`

	ClientID string  `gorm:"size:36;index" json:"-"`
	Client   *Client `gorm:"foreignKey:ClientID" json:"client"`
	ItemID   string  `gorm:"size:36;index" json:"-"`
	Item     *Item   `gorm:"foreignKey:ItemID" json:"item"`

	LoanAmount decimal.Decimal `gorm:"type:numeric;not null" json:"loanAmount"`
	Commission decimal.Decimal `gorm:"type:numeric;not null" json:"commission"`
	IssueDate  time.Time       `gorm:"not null" json:"issueDate"`
	DueDate    time.Time       `gorm:"not null" json:"dueDate"`
	IsReturned bool            `gorm:"not null;default:false" json:"isReturned"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (d *Deal) BeforeCreate(*gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
