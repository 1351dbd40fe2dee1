package domain

import (
	"errors"
)

var (
	MessageSuccessGetCategories = "success get categories"
	MessageSuccessGetCategory   = "success get category detail"

	MessageFailedGetCategories = "failed to get categories"
	MessageFailedGetCategory   = "failed to get category detail"

	ErrCategoryNotFound = errors.New("category not found")
)

type (
	CategoryResponse struct {
		ID          int    `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
		Color       string `json:"color,omitempty"`
		Icon        string `json:"icon,omitempty"`
		RecipeCount int64  `json:"recipe_count"`
	}
)
