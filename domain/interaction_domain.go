package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessLikeRecipe    = "recipe liked"
	MessageSuccessUnlikeRecipe  = "recipe unliked"
	MessageSuccessRateRecipe    = "recipe rated successfully"
	MessageSuccessGetRatings    = "success get ratings"
	MessageSuccessDeleteRating  = "rating deleted successfully"

	MessageFailedLikeRecipe   = "failed to like recipe"
	MessageFailedRateRecipe   = "failed to rate recipe"
	MessageFailedGetRatings   = "failed to get ratings"
	MessageFailedDeleteRating = "failed to delete rating"

	ErrSelfRating     = errors.New("cannot rate your own recipe")
	ErrRatingNotFound = errors.New("rating not found")
	ErrTooManyActions = errors.New("too many actions, slow down")
)

type (
	RateRecipeRequest struct {
		Rating int    `json:"rating" validate:"required,min=1,max=5"`
		Review string `json:"review" validate:"omitempty,max=1000"`
	}

	LikeResponse struct {
		Liked      bool  `json:"liked"`
		LikesCount int64 `json:"likes_count"`
	}

	RatingResponse struct {
		ID        string    `json:"id"`
		Rating    int       `json:"rating"`
		Review    string    `json:"review,omitempty"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
		User      AuthorInfo `json:"user"`
	}

	RateResponse struct {
		Rating        RatingResponse `json:"rating"`
		AverageRating float64        `json:"average_rating"`
		RatingsCount  int64          `json:"ratings_count"`
	}
)
