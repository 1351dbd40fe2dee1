package entities

import (
	"github.com/google/uuid"
)

type RecipeComment struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID        uuid.UUID  `gorm:"type:uuid;index" json:"recipe_id"`
	UserID          uuid.UUID  `gorm:"type:uuid" json:"user_id"`
	Comment         string     `gorm:"type:text" json:"comment"`
	ParentCommentID *uuid.UUID `gorm:"type:uuid;index" json:"parent_comment_id,omitempty"`
	IsEdited        bool       `json:"is_edited"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Parent *RecipeComment `gorm:"foreignKey:ParentCommentID;constraint:OnDelete:CASCADE"`
	Timestamp
}
