package collection

import (
	"Recipe-Share-API/domain"
	"Recipe-Share-API/pkg/recipe"
	"context"
)

type (
	CollectionService interface {
		GetFavorites(ctx context.Context, userID, sort string, page, limit int) ([]domain.FavoriteRecipe, int64, error)
		GetHistory(ctx context.Context, userID, historyType string, page, limit int) ([]domain.HistoryRecipe, int64, error)
	}

	collectionService struct {
		collectionRepository CollectionRepository
		recipeRepository     recipe.RecipeRepository
	}
)

func NewCollectionService(collectionRepository CollectionRepository, recipeRepository recipe.RecipeRepository) CollectionService {
	return &collectionService{
		collectionRepository: collectionRepository,
		recipeRepository:     recipeRepository,
	}
}

func (s *collectionService) toSummary(ctx context.Context, row recipe.RecipeRow, userID string) domain.RecipeSummary {
	categories, err := s.recipeRepository.GetRecipeCategories(ctx, row.ID.String())
	if err != nil {
		categories = nil
	}
	isLiked, _ := s.recipeRepository.IsLiked(ctx, userID, row.ID.String())
	return recipe.ToSummary(row, categories, isLiked)
}

func (s *collectionService) GetFavorites(ctx context.Context, userID, sort string, page, limit int) ([]domain.FavoriteRecipe, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	rows, count, err := s.collectionRepository.GetFavorites(ctx, userID, sort, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.FavoriteRecipe, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.FavoriteRecipe{
			RecipeSummary: s.toSummary(ctx, row.RecipeRow, userID),
			LikedAt:       row.LikedAt,
		})
	}
	return result, count, nil
}

func (s *collectionService) GetHistory(ctx context.Context, userID, historyType string, page, limit int) ([]domain.HistoryRecipe, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	var (
		rows  []HistoryRow
		count int64
		err   error
	)
	switch historyType {
	case domain.HistoryTypeRated:
		rows, count, err = s.collectionRepository.GetRatedRecipes(ctx, userID, offset, limit)
	case domain.HistoryTypeCommented:
		rows, count, err = s.collectionRepository.GetCommentedRecipes(ctx, userID, offset, limit)
	default:
		rows, count, err = s.collectionRepository.GetInteractedRecipes(ctx, userID, offset, limit)
	}
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.HistoryRecipe, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.HistoryRecipe{
			RecipeSummary:   s.toSummary(ctx, row.RecipeRow, userID),
			InteractionType: row.InteractionType,
			InteractionDate: row.InteractionDate,
		})
	}
	return result, count, nil
}
