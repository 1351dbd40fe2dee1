package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessUploadRecipe    = "recipe image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedUploadRecipe    = "failed to upload recipe image"

	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrRecipeAccessDenied = errors.New("access denied to private recipe")
	ErrNotRecipeOwner     = errors.New("only the recipe owner can do this")
)

type (
	RecipeIngredientRequest struct {
		Name     string  `json:"name" validate:"required,max=255"`
		Quantity float64 `json:"quantity" validate:"required,gt=0"`
		Unit     string  `json:"unit" validate:"required,max=50"`
		Notes    string  `json:"notes" validate:"omitempty,max=255"`
	}

	RecipeRequest struct {
		Title           string                    `json:"title" validate:"required,max=255"`
		Description     string                    `json:"description" validate:"required,min=10,max=2000"`
		PrepTimeMinutes int                       `json:"prep_time_minutes" validate:"required,min=1,max=1440"`
		CookTimeMinutes int                       `json:"cook_time_minutes" validate:"required,min=1,max=1440"`
		Servings        int                       `json:"servings" validate:"required,min=1,max=100"`
		Difficulty      string                    `json:"difficulty" validate:"required,oneof=Easy Medium Hard Expert"`
		Instructions    []string                  `json:"instructions" validate:"required,min=1,dive,required,max=1000"`
		Ingredients     []RecipeIngredientRequest `json:"ingredients" validate:"required,min=1,dive"`
		CategoryIDs     []int                     `json:"category_ids" validate:"omitempty,dive,gt=0"`
		ImageURL        string                    `json:"image_url" validate:"omitempty,url"`
		IsPublic        *bool                     `json:"is_public"`
	}

	// RecipeListQuery enumerates every filter the listing accepts. Column
	// names never come from the request; Sort is resolved against an
	// allow-list in the repository.
	RecipeListQuery struct {
		Page       int
		Limit      int
		Search     string
		Category   string
		Difficulty string
		AuthorID   string
		Featured   *bool
		Sort       string
		Order      string
	}

	AuthorInfo struct {
		ID              string `json:"id"`
		Username        string `json:"username"`
		FirstName       string `json:"first_name"`
		LastName        string `json:"last_name"`
		FullName        string `json:"full_name"`
		ProfileImageURL string `json:"profile_image_url,omitempty"`
	}

	IngredientResponse struct {
		ID         string  `json:"id"`
		Name       string  `json:"name"`
		Quantity   float64 `json:"quantity"`
		Unit       string  `json:"unit"`
		Notes      string  `json:"notes,omitempty"`
		OrderIndex int     `json:"order_index"`
	}

	RecipeSummary struct {
		ID              string             `json:"id"`
		Title           string             `json:"title"`
		Description     string             `json:"description"`
		PrepTimeMinutes int                `json:"prep_time_minutes"`
		CookTimeMinutes int                `json:"cook_time_minutes"`
		Servings        int                `json:"servings"`
		Difficulty      string             `json:"difficulty"`
		ImageURL        string             `json:"image_url,omitempty"`
		IsPublic        bool               `json:"is_public"`
		IsFeatured      bool               `json:"is_featured"`
		CreatedAt       time.Time          `json:"created_at"`
		UpdatedAt       time.Time          `json:"updated_at"`
		Author          AuthorInfo         `json:"author"`
		Categories      []CategoryResponse `json:"categories"`
		LikesCount      int64              `json:"likes_count"`
		CommentsCount   int64              `json:"comments_count"`
		RatingsCount    int64              `json:"ratings_count"`
		AverageRating   float64            `json:"average_rating"`
		IsLiked         bool               `json:"is_liked"`
	}

	RecipeDetail struct {
		RecipeSummary
		Instructions []string             `json:"instructions"`
		Ingredients  []IngredientResponse `json:"ingredients"`
		ViewerRating int                  `json:"viewer_rating,omitempty"`
	}
)
