package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const MaxCustomerNameLength = 100

// Customer owns zero or more accounts. Read-only after creation.
type Customer struct {
	CustomerID uuid.UUID `gorm:"type:uuid;primaryKey" json:"customerId"`
	FirstName  string    `gorm:"type:varchar(200);not null" json:"firstName"`
	LastName   string    `gorm:"type:varchar(200);not null" json:"lastName"`
	CreatedAt  time.Time `gorm:"not null" json:"createdAt"`

	Accounts []Account `gorm:"foreignKey:CustomerID;references:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	return c.Validate()
}

func (c *Customer) Validate() error {
	if c.CustomerID == uuid.Nil {
		return errors.New("customer ID is required")
	}

	if strings.TrimSpace(c.FirstName) == "" {
		return errors.New("first name is required")
	}

	if strings.TrimSpace(c.LastName) == "" {
		return errors.New("last name is required")
	}

	return nil
}

func (c *Customer) TableName() string {
	return "customers"
}
