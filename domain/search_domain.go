package domain

import (
	"errors"
)

var (
	MessageSuccessSearch = "success search"

	MessageFailedSearch = "failed to search"

	ErrSearchQueryTooShort = errors.New("search query must be at least 2 characters")
	ErrSearchTypeInvalid   = errors.New("search type must be one of: all, recipes, users, ingredients")
)

const (
	SearchTypeAll         = "all"
	SearchTypeRecipes     = "recipes"
	SearchTypeUsers       = "users"
	SearchTypeIngredients = "ingredients"
)

type (
	// AdvancedSearchQuery composes independent optional filters with AND
	// semantics on top of the visibility predicate.
	AdvancedSearchQuery struct {
		Query       string
		Ingredients []string
		Categories  []string
		Difficulty  string
		MaxPrepTime int
		MaxCookTime int
		MinRating   float64
		Sort        string
		Page        int
		Limit       int
	}

	UserSearchResult struct {
		ID              string `json:"id"`
		Username        string `json:"username"`
		FirstName       string `json:"first_name"`
		LastName        string `json:"last_name"`
		FullName        string `json:"full_name"`
		ProfileImageURL string `json:"profile_image_url,omitempty"`
		Bio             string `json:"bio,omitempty"`
		FollowersCount  int64  `json:"followers_count"`
		RecipesCount    int64  `json:"recipes_count"`
	}

	IngredientSearchResult struct {
		Name        string `json:"name"`
		RecipeCount int64  `json:"recipe_count"`
	}

	GlobalSearchResponse struct {
		Query       string                   `json:"query"`
		Type        string                   `json:"type"`
		Recipes     []RecipeSummary          `json:"recipes,omitempty"`
		Users       []UserSearchResult       `json:"users,omitempty"`
		Ingredients []IngredientSearchResult `json:"ingredients,omitempty"`
	}
)
