package models

import (
	"time"

	"explorecamp/src/types"
)

// Availability is one calendar day opened for booking on a product. A day with
// no row is not bookable at all; opening days is an administrative action.
type Availability struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ProductID uint      `gorm:"uniqueIndex:idx_product_date" json:"product_id,omitempty"`
	Date      time.Time `gorm:"uniqueIndex:idx_product_date;type:date" json:"date"`
	IsBooked  bool      `json:"is_booked"`

	Product *Product `gorm:"foreignKey:product_id" json:"-"`

	types.Timestamps
}
