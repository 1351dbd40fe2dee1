package domain

import (
	"time"
)

var (
	MessageSuccessGetFavorites = "success get favorite recipes"
	MessageSuccessGetHistory   = "success get recipe history"

	MessageFailedGetFavorites = "failed to get favorite recipes"
	MessageFailedGetHistory   = "failed to get recipe history"
)

const (
	HistoryTypeAll       = "all"
	HistoryTypeRated     = "rated"
	HistoryTypeCommented = "commented"
)

type (
	FavoriteRecipe struct {
		RecipeSummary
		LikedAt time.Time `json:"liked_at"`
	}

	HistoryRecipe struct {
		RecipeSummary
		InteractionType string    `json:"interaction_type"`
		InteractionDate time.Time `json:"interaction_date"`
	}
)
