package domain

var (
	MessageSuccessGetPlatformStats = "success get platform statistics"
	MessageSuccessGetUserStats     = "success get user statistics"

	MessageFailedGetPlatformStats = "failed to get platform statistics"
	MessageFailedGetUserStats     = "failed to get user statistics"
)

type (
	PlatformStats struct {
		TotalUsers      int64   `json:"total_users"`
		TotalRecipes    int64   `json:"total_recipes"`
		PublicRecipes   int64   `json:"public_recipes"`
		TotalLikes      int64   `json:"total_likes"`
		TotalRatings    int64   `json:"total_ratings"`
		TotalComments   int64   `json:"total_comments"`
		AverageRating   float64 `json:"average_rating"`
		RecentRecipes   int64   `json:"recent_recipes"`
		RecentLikes     int64   `json:"recent_likes"`
		RecentComments  int64   `json:"recent_comments"`
		RecentUsers     int64   `json:"recent_users"`
		TopCategories   []CategoryResponse `json:"top_categories"`
	}

	TopRecipe struct {
		ID         string `json:"id"`
		Title      string `json:"title"`
		LikesCount int64  `json:"likes_count"`
	}

	UserStats struct {
		RecipesTotal     int64      `json:"recipes_total"`
		RecipesPublic    int64      `json:"recipes_public"`
		LikesReceived    int64      `json:"likes_received"`
		RatingsReceived  int64      `json:"ratings_received"`
		AverageRating    float64    `json:"average_rating"`
		CommentsReceived int64      `json:"comments_received"`
		LikesGiven       int64      `json:"likes_given"`
		RatingsGiven     int64      `json:"ratings_given"`
		CommentsGiven    int64      `json:"comments_given"`
		FollowersCount   int64      `json:"followers_count"`
		FollowingCount   int64      `json:"following_count"`
		TopRecipe        *TopRecipe `json:"top_recipe,omitempty"`
	}
)
