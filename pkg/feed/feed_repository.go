package feed

import (
	"Recipe-Share-API/entities"
	"Recipe-Share-API/pkg/recipe"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	TrendingRow struct {
		recipe.RecipeRow
		RecentLikes int64
	}

	LikeEventRow struct {
		ActorID         string
		ActorUsername   string
		ActorFirstName  string
		ActorLastName   string
		RecipeID        string
		RecipeTitle     string
		CreatedAt       time.Time
	}

	CommentEventRow struct {
		ActorID        string
		ActorUsername  string
		ActorFirstName string
		ActorLastName  string
		RecipeID       string
		RecipeTitle    string
		CreatedAt      time.Time
	}

	FollowerEventRow struct {
		ActorID        string
		ActorUsername  string
		ActorFirstName string
		ActorLastName  string
		CreatedAt      time.Time
	}

	FeedRepository interface {
		GetFeedRecipes(ctx context.Context, userID string, offset, limit int) ([]recipe.RecipeRow, int64, error)
		GetTrendingRecipes(ctx context.Context, since time.Time, limit int) ([]TrendingRow, error)
		GetLikeEvents(ctx context.Context, userID string, limit int) ([]LikeEventRow, error)
		GetCommentEvents(ctx context.Context, userID string, limit int) ([]CommentEventRow, error)
		GetFollowerEvents(ctx context.Context, userID string, limit int) ([]FollowerEventRow, error)
	}

	feedRepository struct {
		db *gorm.DB
	}
)

func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &feedRepository{db: db}
}

// GetFeedRecipes lists public recipes by the user and everyone they follow,
// newest first.
func (r *feedRepository) GetFeedRecipes(ctx context.Context, userID string, offset, limit int) ([]recipe.RecipeRow, int64, error) {
	authorFilter := "recipes.is_public = true AND (recipes.author_id = ? OR recipes.author_id IN " +
		"(SELECT following_id FROM user_followers WHERE follower_id = ?))"

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where(authorFilter, userID, userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var rows []recipe.RecipeRow
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Select(recipe.AggregateSelect).
		Joins("JOIN users ON users.id = recipes.author_id").
		Where(authorFilter, userID, userID).
		Order("recipes.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, count, nil
}

// GetTrendingRecipes ranks public recipes by likes collected since the cutoff,
// ties broken by recency. Recipes with no recent likes do not trend.
func (r *feedRepository) GetTrendingRecipes(ctx context.Context, since time.Time, limit int) ([]TrendingRow, error) {
	var rows []TrendingRow
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Select(recipe.AggregateSelect+", "+
			"(SELECT COUNT(*) FROM recipe_likes rl WHERE rl.recipe_id = recipes.id AND rl.created_at >= ?) AS recent_likes",
			since).
		Joins("JOIN users ON users.id = recipes.author_id").
		Where("recipes.is_public = ?", true).
		Where("EXISTS (SELECT 1 FROM recipe_likes rl WHERE rl.recipe_id = recipes.id AND rl.created_at >= ?)", since).
		Order("recent_likes DESC, recipes.created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *feedRepository) GetLikeEvents(ctx context.Context, userID string, limit int) ([]LikeEventRow, error) {
	var rows []LikeEventRow
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeLike{}).
		Select("recipe_likes.user_id AS actor_id, "+
			"users.username AS actor_username, "+
			"users.first_name AS actor_first_name, "+
			"users.last_name AS actor_last_name, "+
			"recipes.id AS recipe_id, recipes.title AS recipe_title, recipe_likes.created_at").
		Joins("JOIN recipes ON recipes.id = recipe_likes.recipe_id").
		Joins("JOIN users ON users.id = recipe_likes.user_id").
		Where("recipes.author_id = ? AND recipe_likes.user_id <> ?", userID, userID).
		Order("recipe_likes.created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *feedRepository) GetCommentEvents(ctx context.Context, userID string, limit int) ([]CommentEventRow, error) {
	var rows []CommentEventRow
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeComment{}).
		Select("recipe_comments.user_id AS actor_id, "+
			"users.username AS actor_username, "+
			"users.first_name AS actor_first_name, "+
			"users.last_name AS actor_last_name, "+
			"recipes.id AS recipe_id, recipes.title AS recipe_title, recipe_comments.created_at").
		Joins("JOIN recipes ON recipes.id = recipe_comments.recipe_id").
		Joins("JOIN users ON users.id = recipe_comments.user_id").
		Where("recipes.author_id = ? AND recipe_comments.user_id <> ?", userID, userID).
		Order("recipe_comments.created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *feedRepository) GetFollowerEvents(ctx context.Context, userID string, limit int) ([]FollowerEventRow, error) {
	var rows []FollowerEventRow
	if err := r.db.WithContext(ctx).
		Model(&entities.UserFollower{}).
		Select("user_followers.follower_id AS actor_id, "+
			"users.username AS actor_username, "+
			"users.first_name AS actor_first_name, "+
			"users.last_name AS actor_last_name, "+
			"user_followers.created_at").
		Joins("JOIN users ON users.id = user_followers.follower_id").
		Where("user_followers.following_id = ?", userID).
		Order("user_followers.created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
