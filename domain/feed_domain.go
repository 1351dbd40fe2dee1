package domain

import (
	"time"
)

var (
	MessageSuccessGetFeed     = "success get feed"
	MessageSuccessGetTrending = "success get trending recipes"
	MessageSuccessGetActivity = "success get activity"

	MessageFailedGetFeed     = "failed to get feed"
	MessageFailedGetTrending = "failed to get trending recipes"
	MessageFailedGetActivity = "failed to get activity"
)

const (
	ActivityLike     = "like"
	ActivityComment  = "comment"
	ActivityFollower = "follower"
)

type (
	TrendingRecipe struct {
		RecipeSummary
		RecentLikes int64 `json:"recent_likes"`
	}

	ActivityEntry struct {
		Type      string    `json:"type"`
		Message   string    `json:"message"`
		ActorID   string    `json:"actor_id"`
		Actor     string    `json:"actor"`
		RecipeID  string    `json:"recipe_id,omitempty"`
		Recipe    string    `json:"recipe,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}
)
