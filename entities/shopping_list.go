package entities

import (
	"github.com/google/uuid"
)

type ShoppingListItem struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;index" json:"user_id"`
	RecipeID       *uuid.UUID `gorm:"type:uuid" json:"recipe_id,omitempty"`
	IngredientName string     `gorm:"size:255" json:"ingredient_name"`
	Quantity       *float64   `json:"quantity,omitempty"`
	Unit           string     `gorm:"size:50" json:"unit,omitempty"`
	Notes          string     `gorm:"size:255" json:"notes,omitempty"`
	IsCompleted    bool       `json:"is_completed"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:SET NULL"`
	Timestamp
}
