package collection

import (
	"Recipe-Share-API/entities"
	"Recipe-Share-API/pkg/recipe"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	FavoriteRow struct {
		recipe.RecipeRow
		LikedAt time.Time
	}

	HistoryRow struct {
		recipe.RecipeRow
		InteractionType string
		InteractionDate time.Time
	}

	CollectionRepository interface {
		GetFavorites(ctx context.Context, userID, sort string, offset, limit int) ([]FavoriteRow, int64, error)
		GetRatedRecipes(ctx context.Context, userID string, offset, limit int) ([]HistoryRow, int64, error)
		GetCommentedRecipes(ctx context.Context, userID string, offset, limit int) ([]HistoryRow, int64, error)
		GetInteractedRecipes(ctx context.Context, userID string, offset, limit int) ([]HistoryRow, int64, error)
	}

	collectionRepository struct {
		db *gorm.DB
	}
)

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

var favoriteSortOrders = map[string]string{
	"liked_at":   "recipe_likes.created_at DESC",
	"created_at": "recipes.created_at DESC",
	"title":      "recipes.title ASC",
	"rating":     "average_rating DESC",
}

// GetFavorites lists the recipes the user liked that are still visible to
// them.
func (r *collectionRepository) GetFavorites(ctx context.Context, userID, sort string, offset, limit int) ([]FavoriteRow, int64, error) {
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Model(&entities.Recipe{}).
			Joins("JOIN recipe_likes ON recipe_likes.recipe_id = recipes.id").
			Joins("JOIN users ON users.id = recipes.author_id").
			Where("recipe_likes.user_id = ?", userID).
			Where("recipes.is_public = ? OR recipes.author_id = ?", true, userID)
	}

	var count int64
	if err := base().Count(&count).Error; err != nil {
		return nil, 0, err
	}

	order, ok := favoriteSortOrders[sort]
	if !ok {
		order = favoriteSortOrders["liked_at"]
	}

	var rows []FavoriteRow
	if err := base().
		Select(recipe.AggregateSelect + ", recipe_likes.created_at AS liked_at").
		Order(order).
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, count, nil
}

func (r *collectionRepository) GetRatedRecipes(ctx context.Context, userID string, offset, limit int) ([]HistoryRow, int64, error) {
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Model(&entities.Recipe{}).
			Joins("JOIN recipe_ratings ON recipe_ratings.recipe_id = recipes.id").
			Joins("JOIN users ON users.id = recipes.author_id").
			Where("recipe_ratings.user_id = ?", userID).
			Where("recipes.is_public = ? OR recipes.author_id = ?", true, userID)
	}

	var count int64
	if err := base().Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var rows []HistoryRow
	if err := base().
		Select(recipe.AggregateSelect+", ? AS interaction_type, recipe_ratings.created_at AS interaction_date", "rated").
		Order("recipe_ratings.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, count, nil
}

func (r *collectionRepository) GetCommentedRecipes(ctx context.Context, userID string, offset, limit int) ([]HistoryRow, int64, error) {
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Model(&entities.Recipe{}).
			Joins("JOIN users ON users.id = recipes.author_id").
			Where("EXISTS (SELECT 1 FROM recipe_comments rc WHERE rc.recipe_id = recipes.id AND rc.user_id = ?)", userID).
			Where("recipes.is_public = ? OR recipes.author_id = ?", true, userID)
	}

	var count int64
	if err := base().Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var rows []HistoryRow
	if err := base().
		Select(recipe.AggregateSelect+", ? AS interaction_type, "+
			"(SELECT MAX(rc.created_at) FROM recipe_comments rc WHERE rc.recipe_id = recipes.id AND rc.user_id = ?) AS interaction_date",
			"commented", userID).
		Order("interaction_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, count, nil
}

// GetInteractedRecipes unions the rated and commented listings, one row per
// interaction type. A recipe the user both rated and commented shows up
// twice, each row ordered by its own interaction date.
func (r *collectionRepository) GetInteractedRecipes(ctx context.Context, userID string, offset, limit int) ([]HistoryRow, int64, error) {
	rated := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Select(recipe.AggregateSelect+", ? AS interaction_type, recipe_ratings.created_at AS interaction_date", "rated").
		Joins("JOIN recipe_ratings ON recipe_ratings.recipe_id = recipes.id").
		Joins("JOIN users ON users.id = recipes.author_id").
		Where("recipe_ratings.user_id = ?", userID).
		Where("recipes.is_public = ? OR recipes.author_id = ?", true, userID)

	commented := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Select(recipe.AggregateSelect+", ? AS interaction_type, "+
			"(SELECT MAX(rc.created_at) FROM recipe_comments rc WHERE rc.recipe_id = recipes.id AND rc.user_id = ?) AS interaction_date",
			"commented", userID).
		Joins("JOIN users ON users.id = recipes.author_id").
		Where("EXISTS (SELECT 1 FROM recipe_comments rc WHERE rc.recipe_id = recipes.id AND rc.user_id = ?)", userID).
		Where("recipes.is_public = ? OR recipes.author_id = ?", true, userID)

	var count int64
	if err := r.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM (? UNION ALL ?) history", rated, commented).
		Scan(&count).Error; err != nil {
		return nil, 0, err
	}

	var rows []HistoryRow
	if err := r.db.WithContext(ctx).
		Raw("SELECT * FROM (? UNION ALL ?) history ORDER BY interaction_date DESC LIMIT ? OFFSET ?",
			rated, commented, limit, offset).
		Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, count, nil
}
