package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AuthorID        uuid.UUID `gorm:"type:uuid;index" json:"author_id"`
	Title           string    `gorm:"size:255" json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	PrepTimeMinutes int       `json:"prep_time_minutes"`
	CookTimeMinutes int       `json:"cook_time_minutes"`
	Servings        int       `json:"servings"`
	Difficulty      string    `gorm:"size:20" json:"difficulty"`
	Instructions    string    `gorm:"type:text" json:"instructions"`
	ImageURL        string    `json:"image_url,omitempty"`
	IsPublic        bool      `gorm:"default:true;index" json:"is_public"`
	IsFeatured      bool      `json:"is_featured"`

	Author *User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Timestamp
}

type RecipeIngredient struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID   uuid.UUID `gorm:"type:uuid;index" json:"recipe_id"`
	Name       string    `gorm:"size:255" json:"name"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `gorm:"size:50" json:"unit"`
	Notes      string    `gorm:"size:255" json:"notes,omitempty"`
	OrderIndex int       `json:"order_index"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

type RecipeCategory struct {
	RecipeID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	CategoryID int       `gorm:"primaryKey" json:"category_id"`

	Recipe   *Recipe   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}
