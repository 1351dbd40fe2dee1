package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetShoppingList   = "success get shopping list"
	MessageSuccessAddItem           = "item added to shopping list"
	MessageSuccessUpdateItem        = "shopping list item updated"
	MessageSuccessDeleteItem        = "shopping list item deleted"
	MessageSuccessToggleItem        = "shopping list item toggled"
	MessageSuccessAddRecipeToList   = "recipe ingredients added to shopping list"
	MessageSuccessClearCompleted    = "completed items cleared"
	MessageSuccessClearShoppingList = "shopping list cleared"

	MessageFailedGetShoppingList = "failed to get shopping list"
	MessageFailedAddItem         = "failed to add shopping list item"
	MessageFailedUpdateItem      = "failed to update shopping list item"
	MessageFailedDeleteItem      = "failed to delete shopping list item"
	MessageFailedAddRecipeToList = "failed to add recipe to shopping list"
	MessageFailedClearList       = "failed to clear shopping list"

	ErrShoppingItemNotFound    = errors.New("shopping list item not found")
	ErrRecipeWithoutIngredients = errors.New("recipe has no ingredients")
)

type (
	ShoppingListItemRequest struct {
		IngredientName string   `json:"ingredient_name" validate:"required,max=255"`
		Quantity       *float64 `json:"quantity" validate:"omitempty,gt=0"`
		Unit           string   `json:"unit" validate:"omitempty,max=50"`
		Notes          string   `json:"notes" validate:"omitempty,max=255"`
		RecipeID       string   `json:"recipe_id" validate:"omitempty,uuid"`
	}

	// Pointer fields so an absent key and an explicit value are
	// distinguishable; an all-nil patch is rejected.
	ShoppingListItemPatch struct {
		IngredientName *string  `json:"ingredient_name" validate:"omitempty,max=255"`
		Quantity       *float64 `json:"quantity" validate:"omitempty,gt=0"`
		Unit           *string  `json:"unit" validate:"omitempty,max=50"`
		Notes          *string  `json:"notes" validate:"omitempty,max=255"`
		IsCompleted    *bool    `json:"is_completed"`
	}

	AddRecipeToListRequest struct {
		ServingMultiplier float64 `json:"serving_multiplier" validate:"omitempty,gte=0.1,lte=10"`
	}

	ShoppingListItemResponse struct {
		ID             string    `json:"id"`
		IngredientName string    `json:"ingredient_name"`
		Quantity       *float64  `json:"quantity,omitempty"`
		Unit           string    `json:"unit,omitempty"`
		Notes          string    `json:"notes,omitempty"`
		IsCompleted    bool      `json:"is_completed"`
		RecipeID       string    `json:"recipe_id,omitempty"`
		RecipeTitle    string    `json:"recipe_title,omitempty"`
		CreatedAt      time.Time `json:"created_at"`
		UpdatedAt      time.Time `json:"updated_at"`
	}
)
