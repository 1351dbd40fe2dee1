package category

import (
	"Recipe-Share-API/entities"
	"context"

	"gorm.io/gorm"
)

type (
	CategoryRow struct {
		entities.Category
		RecipeCount int64
	}

	CategoryRepository interface {
		GetCategories(ctx context.Context, activeOnly bool) ([]CategoryRow, error)
		GetCategoryByID(ctx context.Context, id int) (*CategoryRow, error)
	}

	categoryRepository struct {
		db *gorm.DB
	}
)

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

const recipeCountSelect = "categories.*, " +
	"(SELECT COUNT(*) FROM recipe_categories rc " +
	"JOIN recipes r ON r.id = rc.recipe_id " +
	"WHERE rc.category_id = categories.id AND r.is_public = true) AS recipe_count"

func (r *categoryRepository) GetCategories(ctx context.Context, activeOnly bool) ([]CategoryRow, error) {
	var rows []CategoryRow
	query := r.db.WithContext(ctx).
		Model(&entities.Category{}).
		Select(recipeCountSelect)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("name asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id int) (*CategoryRow, error) {
	var row CategoryRow
	if err := r.db.WithContext(ctx).
		Model(&entities.Category{}).
		Select(recipeCountSelect).
		Where("categories.id = ?", id).
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
