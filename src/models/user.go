package models

import "explorecamp/src/types"

type User struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	Name         string `json:"name,omitempty"`
	Email        string `gorm:"uniqueIndex" json:"email,omitempty"`
	PasswordHash string `json:"-"`
	Phone        string `json:"phone,omitempty"`
	IsAdmin      bool   `json:"is_admin,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`

	Bookings []Booking `gorm:"foreignKey:user_id" json:"bookings,omitempty"`

	types.Timestamps
}

func (u *User) Role() types.ActorRole {
	if u.IsAdmin {
		return types.ROLE_ADMIN
	}
	return types.ROLE_USER
}
