package interaction

import (
	"Recipe-Share-API/domain"
	"Recipe-Share-API/entities"
	"Recipe-Share-API/pkg/recipe"
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	InteractionService interface {
		ToggleLike(ctx context.Context, recipeID, userID string) (domain.LikeResponse, error)
		RateRecipe(ctx context.Context, recipeID, userID string, req domain.RateRecipeRequest) (domain.RateResponse, error)
		GetRatings(ctx context.Context, recipeID, viewerID string, page, limit int) ([]domain.RatingResponse, int64, error)
		DeleteRating(ctx context.Context, recipeID, userID string) error
	}

	interactionService struct {
		interactionRepository InteractionRepository
		recipeRepository      recipe.RecipeRepository
	}
)

func NewInteractionService(interactionRepository InteractionRepository, recipeRepository recipe.RecipeRepository) InteractionService {
	return &interactionService{
		interactionRepository: interactionRepository,
		recipeRepository:      recipeRepository,
	}
}

// visibleRecipe loads the recipe and applies the same visibility rule as the
// detail endpoint.
func (s *interactionService) visibleRecipe(ctx context.Context, recipeID, viewerID string) (*entities.Recipe, error) {
	rec, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	if !rec.IsPublic && rec.AuthorID.String() != viewerID {
		return nil, domain.ErrRecipeAccessDenied
	}
	return rec, nil
}

func (s *interactionService) ToggleLike(ctx context.Context, recipeID, userID string) (domain.LikeResponse, error) {
	if _, err := s.visibleRecipe(ctx, recipeID, userID); err != nil {
		return domain.LikeResponse{}, err
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.LikeResponse{}, domain.ErrParseUUID
	}
	rid, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.LikeResponse{}, domain.ErrParseUUID
	}

	liked := false
	_, err = s.interactionRepository.GetLike(ctx, userID, recipeID)
	switch {
	case err == nil:
		if err := s.interactionRepository.DeleteLike(ctx, userID, recipeID); err != nil {
			return domain.LikeResponse{}, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.interactionRepository.CreateLike(ctx, &entities.RecipeLike{UserID: uid, RecipeID: rid}); err != nil {
			return domain.LikeResponse{}, err
		}
		liked = true
	default:
		return domain.LikeResponse{}, err
	}

	count, err := s.interactionRepository.CountLikes(ctx, recipeID)
	if err != nil {
		return domain.LikeResponse{}, err
	}
	return domain.LikeResponse{Liked: liked, LikesCount: count}, nil
}

func toRatingResponse(row RatingRow) domain.RatingResponse {
	return domain.RatingResponse{
		ID:        row.ID.String(),
		Rating:    row.Rating,
		Review:    row.Review,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		User: domain.AuthorInfo{
			ID:              row.UserID.String(),
			Username:        row.Username,
			FirstName:       row.FirstName,
			LastName:        row.LastName,
			FullName:        domain.FullName(row.FirstName, row.LastName),
			ProfileImageURL: row.ProfileImageURL,
		},
	}
}

func (s *interactionService) RateRecipe(ctx context.Context, recipeID, userID string, req domain.RateRecipeRequest) (domain.RateResponse, error) {
	rec, err := s.visibleRecipe(ctx, recipeID, userID)
	if err != nil {
		return domain.RateResponse{}, err
	}
	if rec.AuthorID.String() == userID {
		return domain.RateResponse{}, domain.ErrSelfRating
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.RateResponse{}, domain.ErrParseUUID
	}
	rid, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.RateResponse{}, domain.ErrParseUUID
	}

	rating, err := s.interactionRepository.GetRating(ctx, userID, recipeID)
	switch {
	case err == nil:
		rating.Rating = req.Rating
		rating.Review = req.Review
	case errors.Is(err, gorm.ErrRecordNotFound):
		rating = &entities.RecipeRating{
			RecipeID: rid,
			UserID:   uid,
			Rating:   req.Rating,
			Review:   req.Review,
		}
	default:
		return domain.RateResponse{}, err
	}

	if err := s.interactionRepository.SaveRating(ctx, rating); err != nil {
		return domain.RateResponse{}, err
	}

	average, count, err := s.interactionRepository.RatingStats(ctx, recipeID)
	if err != nil {
		return domain.RateResponse{}, err
	}

	row, err := s.interactionRepository.GetRatingRow(ctx, userID, recipeID)
	if err != nil {
		return domain.RateResponse{}, err
	}

	return domain.RateResponse{
		Rating:        toRatingResponse(*row),
		AverageRating: math.Round(average*100) / 100,
		RatingsCount:  count,
	}, nil
}

func (s *interactionService) GetRatings(ctx context.Context, recipeID, viewerID string, page, limit int) ([]domain.RatingResponse, int64, error) {
	if _, err := s.visibleRecipe(ctx, recipeID, viewerID); err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	rows, count, err := s.interactionRepository.GetRatings(ctx, recipeID, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.RatingResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, toRatingResponse(row))
	}
	return result, count, nil
}

func (s *interactionService) DeleteRating(ctx context.Context, recipeID, userID string) error {
	if _, err := s.visibleRecipe(ctx, recipeID, userID); err != nil {
		return err
	}

	affected, err := s.interactionRepository.DeleteRating(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrRatingNotFound
	}
	return nil
}
