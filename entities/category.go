package entities

import (
	"time"
)

type Category struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:100" json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `gorm:"size:7" json:"color,omitempty"`
	Icon        string    `gorm:"size:50" json:"icon,omitempty"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"type:timestamp" json:"created_at"`
}
