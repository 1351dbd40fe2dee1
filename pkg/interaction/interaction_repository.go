package interaction

import (
	"Recipe-Share-API/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RatingRow struct {
		entities.RecipeRating
		Username        string
		FirstName       string
		LastName        string
		ProfileImageURL string
	}

	InteractionRepository interface {
		GetLike(ctx context.Context, userID, recipeID string) (*entities.RecipeLike, error)
		CreateLike(ctx context.Context, like *entities.RecipeLike) error
		DeleteLike(ctx context.Context, userID, recipeID string) error
		CountLikes(ctx context.Context, recipeID string) (int64, error)
		GetRating(ctx context.Context, userID, recipeID string) (*entities.RecipeRating, error)
		SaveRating(ctx context.Context, rating *entities.RecipeRating) error
		DeleteRating(ctx context.Context, userID, recipeID string) (int64, error)
		GetRatings(ctx context.Context, recipeID string, offset, limit int) ([]RatingRow, int64, error)
		GetRatingRow(ctx context.Context, userID, recipeID string) (*RatingRow, error)
		RatingStats(ctx context.Context, recipeID string) (float64, int64, error)
	}

	interactionRepository struct {
		db *gorm.DB
	}
)

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) GetLike(ctx context.Context, userID, recipeID string) (*entities.RecipeLike, error) {
	var like entities.RecipeLike
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&like).Error; err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *interactionRepository) CreateLike(ctx context.Context, like *entities.RecipeLike) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *interactionRepository) DeleteLike(ctx context.Context, userID, recipeID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.RecipeLike{}).Error
}

func (r *interactionRepository) CountLikes(ctx context.Context, recipeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.RecipeLike{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error
	return count, err
}

func (r *interactionRepository) GetRating(ctx context.Context, userID, recipeID string) (*entities.RecipeRating, error) {
	var rating entities.RecipeRating
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *interactionRepository) SaveRating(ctx context.Context, rating *entities.RecipeRating) error {
	if rating.ID == uuid.Nil {
		rating.ID = uuid.New()
		return r.db.WithContext(ctx).Create(rating).Error
	}
	return r.db.WithContext(ctx).Save(rating).Error
}

func (r *interactionRepository) DeleteRating(ctx context.Context, userID, recipeID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.RecipeRating{})
	return res.RowsAffected, res.Error
}

func (r *interactionRepository) GetRatings(ctx context.Context, recipeID string, offset, limit int) ([]RatingRow, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeRating{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var rows []RatingRow
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeRating{}).
		Select("recipe_ratings.*, users.username, users.first_name, users.last_name, users.profile_image_url").
		Joins("JOIN users ON users.id = recipe_ratings.user_id").
		Where("recipe_ratings.recipe_id = ?", recipeID).
		Order("recipe_ratings.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, count, nil
}

func (r *interactionRepository) GetRatingRow(ctx context.Context, userID, recipeID string) (*RatingRow, error) {
	var row RatingRow
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeRating{}).
		Select("recipe_ratings.*, users.username, users.first_name, users.last_name, users.profile_image_url").
		Joins("JOIN users ON users.id = recipe_ratings.user_id").
		Where("recipe_ratings.user_id = ? AND recipe_ratings.recipe_id = ?", userID, recipeID).
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *interactionRepository) RatingStats(ctx context.Context, recipeID string) (float64, int64, error) {
	var stats struct {
		Average float64
		Count   int64
	}
	err := r.db.WithContext(ctx).
		Model(&entities.RecipeRating{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("recipe_id = ?", recipeID).
		Scan(&stats).Error
	return stats.Average, stats.Count, err
}
