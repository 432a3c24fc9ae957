package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client — серверная модель клиента ломбарда.
type Client struct {
	ID         string `gorm:"primaryKey;size:36" json:"_id"`
	Surname    string `gorm:"not null" json:"surname"`
	Name       string `gorm:"not null" json:"name"`
	Patronymic string `json:"patronymic"`
	Passport   string `gorm:"not null;index" json:"passport"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate assigns a UUID when the id is empty.
func (c *Client) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
