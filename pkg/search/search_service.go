package search

import (
	"Recipe-Share-API/domain"
	"Recipe-Share-API/pkg/recipe"
	"context"
	"strings"
)

type (
	SearchService interface {
		GlobalSearch(ctx context.Context, q, searchType, viewerID string, limit int) (domain.GlobalSearchResponse, error)
		AdvancedSearch(ctx context.Context, q domain.AdvancedSearchQuery, viewerID string) ([]domain.RecipeSummary, int64, error)
	}

	searchService struct {
		searchRepository SearchRepository
		recipeRepository recipe.RecipeRepository
	}
)

func NewSearchService(searchRepository SearchRepository, recipeRepository recipe.RecipeRepository) SearchService {
	return &searchService{
		searchRepository: searchRepository,
		recipeRepository: recipeRepository,
	}
}

func (s *searchService) toSummaries(ctx context.Context, rows []recipe.RecipeRow, viewerID string) []domain.RecipeSummary {
	result := make([]domain.RecipeSummary, 0, len(rows))
	for _, row := range rows {
		categories, err := s.recipeRepository.GetRecipeCategories(ctx, row.ID.String())
		if err != nil {
			categories = nil
		}
		isLiked := false
		if viewerID != "" {
			isLiked, _ = s.recipeRepository.IsLiked(ctx, viewerID, row.ID.String())
		}
		result = append(result, recipe.ToSummary(row, categories, isLiked))
	}
	return result
}

func (s *searchService) GlobalSearch(ctx context.Context, q, searchType, viewerID string, limit int) (domain.GlobalSearchResponse, error) {
	q = strings.TrimSpace(q)
	if len(q) < 2 {
		return domain.GlobalSearchResponse{}, domain.ErrSearchQueryTooShort
	}
	if searchType == "" {
		searchType = domain.SearchTypeAll
	}
	switch searchType {
	case domain.SearchTypeAll, domain.SearchTypeRecipes, domain.SearchTypeUsers, domain.SearchTypeIngredients:
	default:
		return domain.GlobalSearchResponse{}, domain.ErrSearchTypeInvalid
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	response := domain.GlobalSearchResponse{Query: q, Type: searchType}

	if searchType == domain.SearchTypeAll || searchType == domain.SearchTypeRecipes {
		rows, err := s.searchRepository.SearchRecipes(ctx, q, viewerID, limit)
		if err != nil {
			return domain.GlobalSearchResponse{}, err
		}
		response.Recipes = s.toSummaries(ctx, rows, viewerID)
	}

	if searchType == domain.SearchTypeAll || searchType == domain.SearchTypeUsers {
		rows, err := s.searchRepository.SearchUsers(ctx, q, limit)
		if err != nil {
			return domain.GlobalSearchResponse{}, err
		}
		users := make([]domain.UserSearchResult, 0, len(rows))
		for _, row := range rows {
			users = append(users, domain.UserSearchResult{
				ID:              row.ID.String(),
				Username:        row.Username,
				FirstName:       row.FirstName,
				LastName:        row.LastName,
				FullName:        domain.FullName(row.FirstName, row.LastName),
				ProfileImageURL: row.ProfileImageURL,
				Bio:             row.Bio,
				FollowersCount:  row.FollowersCount,
				RecipesCount:    row.RecipesCount,
			})
		}
		response.Users = users
	}

	if searchType == domain.SearchTypeAll || searchType == domain.SearchTypeIngredients {
		rows, err := s.searchRepository.SearchIngredients(ctx, q, limit)
		if err != nil {
			return domain.GlobalSearchResponse{}, err
		}
		ingredients := make([]domain.IngredientSearchResult, 0, len(rows))
		for _, row := range rows {
			ingredients = append(ingredients, domain.IngredientSearchResult{
				Name:        row.Name,
				RecipeCount: row.RecipeCount,
			})
		}
		response.Ingredients = ingredients
	}

	return response, nil
}

func (s *searchService) AdvancedSearch(ctx context.Context, q domain.AdvancedSearchQuery, viewerID string) ([]domain.RecipeSummary, int64, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 20
	}

	rows, count, err := s.searchRepository.AdvancedSearch(ctx, q, viewerID)
	if err != nil {
		return nil, 0, err
	}
	return s.toSummaries(ctx, rows, viewerID), count, nil
}
