package category

import (
	"Recipe-Share-API/domain"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	CategoryService interface {
		GetCategories(ctx context.Context, activeOnly bool) ([]domain.CategoryResponse, error)
		GetCategoryByID(ctx context.Context, id int) (domain.CategoryResponse, error)
	}

	categoryService struct {
		categoryRepository CategoryRepository
	}
)

func NewCategoryService(categoryRepository CategoryRepository) CategoryService {
	return &categoryService{categoryRepository: categoryRepository}
}

func toCategoryResponse(row CategoryRow) domain.CategoryResponse {
	return domain.CategoryResponse{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Color:       row.Color,
		Icon:        row.Icon,
		RecipeCount: row.RecipeCount,
	}
}

func (s *categoryService) GetCategories(ctx context.Context, activeOnly bool) ([]domain.CategoryResponse, error) {
	rows, err := s.categoryRepository.GetCategories(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CategoryResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, toCategoryResponse(row))
	}
	return result, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id int) (domain.CategoryResponse, error) {
	row, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CategoryResponse{}, domain.ErrCategoryNotFound
		}
		return domain.CategoryResponse{}, err
	}
	return toCategoryResponse(*row), nil
}
