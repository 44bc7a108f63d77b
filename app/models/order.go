package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is an immutable customer/shipping snapshot taken at checkout.
// Paid is set unconditionally at creation; it is the single seam where a
// real payment gateway would plug in later.
type Order struct {
	ID         string      `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	FirstName  string      `gorm:"size:100;not null" json:"first_name"`
	LastName   string      `gorm:"size:100;not null" json:"last_name"`
	Email      string      `gorm:"size:255;not null" json:"email"`
	Address    string      `gorm:"size:255;not null" json:"address"`
	City       string      `gorm:"size:100;not null" json:"city"`
	PostalCode string      `gorm:"size:20;not null" json:"postal_code"`
	Paid       bool        `gorm:"not null;default:false" json:"paid"`
	OrderItems []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"order_items,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}

// Total sums the snapshotted line totals.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.OrderItems {
		total = total.Add(item.TotalPrice())
	}
	return total
}
