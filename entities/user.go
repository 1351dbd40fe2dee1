package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username        string    `gorm:"uniqueIndex;size:50" json:"username"`
	Email           string    `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash    string    `json:"-"`
	FirstName       string    `gorm:"size:100" json:"first_name"`
	LastName        string    `gorm:"size:100" json:"last_name"`
	Bio             string    `gorm:"size:500" json:"bio,omitempty"`
	Location        string    `gorm:"size:100" json:"location,omitempty"`
	Website         string    `json:"website,omitempty"`
	ProfileImageURL string    `json:"profile_image_url,omitempty"`

	IsPublicProfile    bool `gorm:"default:true" json:"is_public_profile"`
	EmailNotifications bool `gorm:"default:true" json:"email_notifications"`
	PushNotifications  bool `gorm:"default:true" json:"push_notifications"`
	IsVerified         bool `json:"is_verified"`
	IsActive           bool `gorm:"default:true" json:"is_active"`

	Timestamp
}
