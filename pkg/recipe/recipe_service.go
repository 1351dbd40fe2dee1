package recipe

import (
	"Recipe-Share-API/domain"
	"Recipe-Share-API/entities"
	"Recipe-Share-API/internal/utils/storage"
	"context"
	"encoding/json"
	"errors"
	"math"
	"mime/multipart"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.RecipeRequest, userID string) (domain.RecipeDetail, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.RecipeRequest, userID string) (domain.RecipeDetail, error)
		DeleteRecipe(ctx context.Context, recipeID string, userID string) error
		GetRecipes(ctx context.Context, q domain.RecipeListQuery, viewerID string) ([]domain.RecipeSummary, int64, error)
		GetRecipeDetail(ctx context.Context, recipeID string, viewerID string) (domain.RecipeDetail, error)
		UploadRecipeImage(ctx context.Context, recipeID string, userID string, file *multipart.FileHeader) (string, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

func roundRating(avg float64) float64 {
	return math.Round(avg*100) / 100
}

// ToSummary converts a joined row into the response shape shared by listing,
// feed, search and collection endpoints.
func ToSummary(row RecipeRow, categories []entities.Category, isLiked bool) domain.RecipeSummary {
	categoryResponses := make([]domain.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		categoryResponses = append(categoryResponses, domain.CategoryResponse{
			ID:    c.ID,
			Name:  c.Name,
			Color: c.Color,
			Icon:  c.Icon,
		})
	}

	return domain.RecipeSummary{
		ID:              row.ID.String(),
		Title:           row.Title,
		Description:     row.Description,
		PrepTimeMinutes: row.PrepTimeMinutes,
		CookTimeMinutes: row.CookTimeMinutes,
		Servings:        row.Servings,
		Difficulty:      row.Difficulty,
		ImageURL:        row.ImageURL,
		IsPublic:        row.IsPublic,
		IsFeatured:      row.IsFeatured,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
		Author: domain.AuthorInfo{
			ID:              row.AuthorID.String(),
			Username:        row.AuthorUsername,
			FirstName:       row.AuthorFirstName,
			LastName:        row.AuthorLastName,
			FullName:        domain.FullName(row.AuthorFirstName, row.AuthorLastName),
			ProfileImageURL: row.AuthorImage,
		},
		Categories:    categoryResponses,
		LikesCount:    row.LikesCount,
		CommentsCount: row.CommentsCount,
		RatingsCount:  row.RatingsCount,
		AverageRating: roundRating(row.AverageRating),
		IsLiked:       isLiked,
	}
}

func buildIngredients(reqs []domain.RecipeIngredientRequest) []entities.RecipeIngredient {
	ingredients := make([]entities.RecipeIngredient, 0, len(reqs))
	for _, ing := range reqs {
		ingredients = append(ingredients, entities.RecipeIngredient{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Notes:    ing.Notes,
		})
	}
	return ingredients
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.RecipeRequest, userID string) (domain.RecipeDetail, error) {
	authorID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeDetail{}, domain.ErrParseUUID
	}

	instructions, err := json.Marshal(req.Instructions)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	recipe := entities.Recipe{
		ID:              uuid.New(),
		AuthorID:        authorID,
		Title:           req.Title,
		Description:     req.Description,
		PrepTimeMinutes: req.PrepTimeMinutes,
		CookTimeMinutes: req.CookTimeMinutes,
		Servings:        req.Servings,
		Difficulty:      req.Difficulty,
		Instructions:    string(instructions),
		ImageURL:        req.ImageURL,
		IsPublic:        isPublic,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, &recipe, buildIngredients(req.Ingredients), req.CategoryIDs); err != nil {
		return domain.RecipeDetail{}, err
	}

	return s.GetRecipeDetail(ctx, recipe.ID.String(), userID)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.RecipeRequest, userID string) (domain.RecipeDetail, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetail{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetail{}, err
	}
	if recipe.AuthorID.String() != userID {
		return domain.RecipeDetail{}, domain.ErrNotRecipeOwner
	}

	instructions, err := json.Marshal(req.Instructions)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	recipe.Title = req.Title
	recipe.Description = req.Description
	recipe.PrepTimeMinutes = req.PrepTimeMinutes
	recipe.CookTimeMinutes = req.CookTimeMinutes
	recipe.Servings = req.Servings
	recipe.Difficulty = req.Difficulty
	recipe.Instructions = string(instructions)
	if req.ImageURL != "" {
		recipe.ImageURL = req.ImageURL
	}
	if req.IsPublic != nil {
		recipe.IsPublic = *req.IsPublic
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, buildIngredients(req.Ingredients), req.CategoryIDs); err != nil {
		return domain.RecipeDetail{}, err
	}

	return s.GetRecipeDetail(ctx, recipeID, userID)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	if recipe.AuthorID.String() != userID {
		return domain.ErrNotRecipeOwner
	}

	return s.recipeRepository.DeleteRecipe(ctx, recipeID)
}

func (s *recipeService) GetRecipes(ctx context.Context, q domain.RecipeListQuery, viewerID string) ([]domain.RecipeSummary, int64, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 20
	}

	rows, count, err := s.recipeRepository.GetRecipes(ctx, q, viewerID)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.RecipeSummary, 0, len(rows))
	for _, row := range rows {
		categories, err := s.recipeRepository.GetRecipeCategories(ctx, row.ID.String())
		if err != nil {
			return nil, 0, err
		}
		isLiked := false
		if viewerID != "" {
			isLiked, _ = s.recipeRepository.IsLiked(ctx, viewerID, row.ID.String())
		}
		result = append(result, ToSummary(row, categories, isLiked))
	}
	return result, count, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string, viewerID string) (domain.RecipeDetail, error) {
	row, err := s.recipeRepository.GetRecipeRow(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetail{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetail{}, err
	}
	if !row.IsPublic && row.AuthorID.String() != viewerID {
		return domain.RecipeDetail{}, domain.ErrRecipeAccessDenied
	}

	categories, err := s.recipeRepository.GetRecipeCategories(ctx, recipeID)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	ingredients, err := s.recipeRepository.GetIngredients(ctx, recipeID)
	if err != nil {
		return domain.RecipeDetail{}, err
	}
	ingredientResponses := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ing := range ingredients {
		ingredientResponses = append(ingredientResponses, domain.IngredientResponse{
			ID:         ing.ID.String(),
			Name:       ing.Name,
			Quantity:   ing.Quantity,
			Unit:       ing.Unit,
			Notes:      ing.Notes,
			OrderIndex: ing.OrderIndex,
		})
	}

	var instructions []string
	if row.Instructions != "" {
		if err := json.Unmarshal([]byte(row.Instructions), &instructions); err != nil {
			instructions = []string{row.Instructions}
		}
	}

	isLiked := false
	viewerRating := 0
	if viewerID != "" {
		isLiked, _ = s.recipeRepository.IsLiked(ctx, viewerID, recipeID)
		viewerRating, _ = s.recipeRepository.GetViewerRating(ctx, viewerID, recipeID)
	}

	return domain.RecipeDetail{
		RecipeSummary: ToSummary(*row, categories, isLiked),
		Instructions:  instructions,
		Ingredients:   ingredientResponses,
		ViewerRating:  viewerRating,
	}, nil
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, recipeID string, userID string, file *multipart.FileHeader) (string, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrRecipeNotFound
		}
		return "", err
	}
	if recipe.AuthorID.String() != userID {
		return "", domain.ErrNotRecipeOwner
	}

	url, err := s.s3.UploadFile(ctx, "recipes", file)
	if err != nil {
		return "", err
	}
	if err := s.recipeRepository.UpdateImageURL(ctx, recipeID, url); err != nil {
		return "", err
	}
	return url, nil
}
