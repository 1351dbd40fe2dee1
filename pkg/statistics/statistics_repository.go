package statistics

import (
	"Recipe-Share-API/entities"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type (
	TopCategoryRow struct {
		entities.Category
		RecipeCount int64
	}

	TopRecipeRow struct {
		ID         string
		Title      string
		LikesCount int64
	}

	StatisticsRepository interface {
		CountUsers(ctx context.Context) (int64, error)
		CountRecipes(ctx context.Context, publicOnly bool) (int64, error)
		CountLikes(ctx context.Context) (int64, error)
		CountRatings(ctx context.Context) (int64, error)
		CountComments(ctx context.Context) (int64, error)
		GlobalAverageRating(ctx context.Context) (float64, error)
		CountUsersSince(ctx context.Context, since time.Time) (int64, error)
		CountRecipesSince(ctx context.Context, since time.Time) (int64, error)
		CountLikesSince(ctx context.Context, since time.Time) (int64, error)
		CountCommentsSince(ctx context.Context, since time.Time) (int64, error)
		TopCategories(ctx context.Context, limit int) ([]TopCategoryRow, error)
		UserRecipeCounts(ctx context.Context, userID string) (total, public int64, err error)
		UserLikesReceived(ctx context.Context, userID string) (int64, error)
		UserRatingsReceived(ctx context.Context, userID string) (count int64, average float64, err error)
		UserCommentsReceived(ctx context.Context, userID string) (int64, error)
		UserLikesGiven(ctx context.Context, userID string) (int64, error)
		UserRatingsGiven(ctx context.Context, userID string) (int64, error)
		UserCommentsGiven(ctx context.Context, userID string) (int64, error)
		UserTopRecipe(ctx context.Context, userID string) (*TopRecipeRow, error)
	}

	statisticsRepository struct {
		db *gorm.DB
	}
)

func NewStatisticsRepository(db *gorm.DB) StatisticsRepository {
	return &statisticsRepository{db: db}
}

func (r *statisticsRepository) count(ctx context.Context, model interface{}, conds ...interface{}) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(model)
	if len(conds) > 0 {
		query = query.Where(conds[0], conds[1:]...)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *statisticsRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, &entities.User{}, "is_active = ?", true)
}

func (r *statisticsRepository) CountRecipes(ctx context.Context, publicOnly bool) (int64, error) {
	if publicOnly {
		return r.count(ctx, &entities.Recipe{}, "is_public = ?", true)
	}
	return r.count(ctx, &entities.Recipe{})
}

func (r *statisticsRepository) CountLikes(ctx context.Context) (int64, error) {
	return r.count(ctx, &entities.RecipeLike{})
}

func (r *statisticsRepository) CountRatings(ctx context.Context) (int64, error) {
	return r.count(ctx, &entities.RecipeRating{})
}

func (r *statisticsRepository) CountComments(ctx context.Context) (int64, error) {
	return r.count(ctx, &entities.RecipeComment{})
}

func (r *statisticsRepository) GlobalAverageRating(ctx context.Context) (float64, error) {
	var average float64
	err := r.db.WithContext(ctx).
		Model(&entities.RecipeRating{}).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&average).Error
	return average, err
}

func (r *statisticsRepository) CountUsersSince(ctx context.Context, since time.Time) (int64, error) {
	return r.count(ctx, &entities.User{}, "created_at >= ?", since)
}

func (r *statisticsRepository) CountRecipesSince(ctx context.Context, since time.Time) (int64, error) {
	return r.count(ctx, &entities.Recipe{}, "created_at >= ?", since)
}

func (r *statisticsRepository) CountLikesSince(ctx context.Context, since time.Time) (int64, error) {
	return r.count(ctx, &entities.RecipeLike{}, "created_at >= ?", since)
}

func (r *statisticsRepository) CountCommentsSince(ctx context.Context, since time.Time) (int64, error) {
	return r.count(ctx, &entities.RecipeComment{}, "created_at >= ?", since)
}

func (r *statisticsRepository) TopCategories(ctx context.Context, limit int) ([]TopCategoryRow, error) {
	var rows []TopCategoryRow
	if err := r.db.WithContext(ctx).
		Model(&entities.Category{}).
		Select("categories.*, " +
			"(SELECT COUNT(*) FROM recipe_categories rc JOIN recipes rec ON rec.id = rc.recipe_id " +
			"WHERE rc.category_id = categories.id AND rec.is_public = true) AS recipe_count").
		Where("categories.is_active = ?", true).
		Order("recipe_count DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *statisticsRepository) UserRecipeCounts(ctx context.Context, userID string) (int64, int64, error) {
	total, err := r.count(ctx, &entities.Recipe{}, "author_id = ?", userID)
	if err != nil {
		return 0, 0, err
	}
	public, err := r.count(ctx, &entities.Recipe{}, "author_id = ? AND is_public = ?", userID, true)
	if err != nil {
		return 0, 0, err
	}
	return total, public, nil
}

func (r *statisticsRepository) UserLikesReceived(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.RecipeLike{}).
		Joins("JOIN recipes ON recipes.id = recipe_likes.recipe_id").
		Where("recipes.author_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *statisticsRepository) UserRatingsReceived(ctx context.Context, userID string) (int64, float64, error) {
	var stats struct {
		Count   int64
		Average float64
	}
	err := r.db.WithContext(ctx).
		Model(&entities.RecipeRating{}).
		Select("COUNT(*) AS count, COALESCE(AVG(recipe_ratings.rating), 0) AS average").
		Joins("JOIN recipes ON recipes.id = recipe_ratings.recipe_id").
		Where("recipes.author_id = ?", userID).
		Scan(&stats).Error
	return stats.Count, stats.Average, err
}

// UserCommentsReceived counts comments left by others on the user's recipes.
func (r *statisticsRepository) UserCommentsReceived(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.RecipeComment{}).
		Joins("JOIN recipes ON recipes.id = recipe_comments.recipe_id").
		Where("recipes.author_id = ? AND recipe_comments.user_id <> ?", userID, userID).
		Count(&count).Error
	return count, err
}

func (r *statisticsRepository) UserLikesGiven(ctx context.Context, userID string) (int64, error) {
	return r.count(ctx, &entities.RecipeLike{}, "user_id = ?", userID)
}

func (r *statisticsRepository) UserRatingsGiven(ctx context.Context, userID string) (int64, error) {
	return r.count(ctx, &entities.RecipeRating{}, "user_id = ?", userID)
}

func (r *statisticsRepository) UserCommentsGiven(ctx context.Context, userID string) (int64, error) {
	return r.count(ctx, &entities.RecipeComment{}, "user_id = ?", userID)
}

func (r *statisticsRepository) UserTopRecipe(ctx context.Context, userID string) (*TopRecipeRow, error) {
	var row TopRecipeRow
	err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Select("recipes.id, recipes.title, " +
			"(SELECT COUNT(*) FROM recipe_likes rl WHERE rl.recipe_id = recipes.id) AS likes_count").
		Where("recipes.author_id = ?", userID).
		Order("likes_count DESC, recipes.created_at DESC").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
