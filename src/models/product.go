package models

import "explorecamp/src/types"

type Product struct {
	ID            uint             `gorm:"primarykey" json:"id"`
	Name          string           `json:"name,omitempty"`
	Slug          string           `gorm:"uniqueIndex" json:"slug,omitempty"`
	Location      string           `json:"location,omitempty"`
	About         string           `json:"about,omitempty"`
	PricePerNight float64          `json:"price_per_night,omitempty"`
	Images        types.JSONBArray `gorm:"type:jsonb" json:"images,omitempty"`
	Amenities     types.JSONBArray `gorm:"type:jsonb" json:"amenities,omitempty"`
	Latitude      float64          `json:"latitude,omitempty"`
	Longitude     float64          `json:"longitude,omitempty"`
	CheckInTime   string           `gorm:"default:'14:00'" json:"check_in_time,omitempty"`
	CheckOutTime  string           `gorm:"default:'11:00'" json:"check_out_time,omitempty"`
	OwnerID       uint             `json:"owner_id,omitempty"`

	Owner        *User          `gorm:"foreignKey:owner_id" json:"-"`
	Availability []Availability `gorm:"foreignKey:product_id;constraint:OnDelete:CASCADE" json:"availability,omitempty"`

	types.Timestamps
}
