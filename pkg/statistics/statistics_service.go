package statistics

import (
	"Recipe-Share-API/domain"
	"Recipe-Share-API/pkg/follow"
	"context"
	"math"
	"time"
)

const recentWindow = 7 * 24 * time.Hour

type (
	StatisticsService interface {
		GetPlatformStats(ctx context.Context) (domain.PlatformStats, error)
		GetUserStats(ctx context.Context, userID string) (domain.UserStats, error)
	}

	statisticsService struct {
		statisticsRepository StatisticsRepository
		followRepository     follow.FollowRepository
	}
)

func NewStatisticsService(statisticsRepository StatisticsRepository, followRepository follow.FollowRepository) StatisticsService {
	return &statisticsService{
		statisticsRepository: statisticsRepository,
		followRepository:     followRepository,
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func (s *statisticsService) GetPlatformStats(ctx context.Context) (domain.PlatformStats, error) {
	var stats domain.PlatformStats
	var err error

	if stats.TotalUsers, err = s.statisticsRepository.CountUsers(ctx); err != nil {
		return domain.PlatformStats{}, err
	}
	if stats.TotalRecipes, err = s.statisticsRepository.CountRecipes(ctx, false); err != nil {
		return domain.PlatformStats{}, err
	}
	if stats.PublicRecipes, err = s.statisticsRepository.CountRecipes(ctx, true); err != nil {
		return domain.PlatformStats{}, err
	}
	if stats.TotalLikes, err = s.statisticsRepository.CountLikes(ctx); err != nil {
		return domain.PlatformStats{}, err
	}
	if stats.TotalRatings, err = s.statisticsRepository.CountRatings(ctx); err != nil {
		return domain.PlatformStats{}, err
	}
	if stats.TotalComments, err = s.statisticsRepository.CountComments(ctx); err != nil {
		return domain.PlatformStats{}, err
	}

	average, err := s.statisticsRepository.GlobalAverageRating(ctx)
	if err != nil {
		return domain.PlatformStats{}, err
	}
	stats.AverageRating = round2(average)

	since := time.Now().Add(-recentWindow)
	if stats.RecentUsers, err = s.statisticsRepository.CountUsersSince(ctx, since); err != nil {
		return domain.PlatformStats{}, err
	}
	if stats.RecentRecipes, err = s.statisticsRepository.CountRecipesSince(ctx, since); err != nil {
		return domain.PlatformStats{}, err
	}
	if stats.RecentLikes, err = s.statisticsRepository.CountLikesSince(ctx, since); err != nil {
		return domain.PlatformStats{}, err
	}
	if stats.RecentComments, err = s.statisticsRepository.CountCommentsSince(ctx, since); err != nil {
		return domain.PlatformStats{}, err
	}

	topCategories, err := s.statisticsRepository.TopCategories(ctx, 5)
	if err != nil {
		return domain.PlatformStats{}, err
	}
	stats.TopCategories = make([]domain.CategoryResponse, 0, len(topCategories))
	for _, row := range topCategories {
		stats.TopCategories = append(stats.TopCategories, domain.CategoryResponse{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			Color:       row.Color,
			Icon:        row.Icon,
			RecipeCount: row.RecipeCount,
		})
	}

	return stats, nil
}

func (s *statisticsService) GetUserStats(ctx context.Context, userID string) (domain.UserStats, error) {
	var stats domain.UserStats
	var err error

	if stats.RecipesTotal, stats.RecipesPublic, err = s.statisticsRepository.UserRecipeCounts(ctx, userID); err != nil {
		return domain.UserStats{}, err
	}
	if stats.LikesReceived, err = s.statisticsRepository.UserLikesReceived(ctx, userID); err != nil {
		return domain.UserStats{}, err
	}

	ratingsReceived, average, err := s.statisticsRepository.UserRatingsReceived(ctx, userID)
	if err != nil {
		return domain.UserStats{}, err
	}
	stats.RatingsReceived = ratingsReceived
	stats.AverageRating = round2(average)

	if stats.CommentsReceived, err = s.statisticsRepository.UserCommentsReceived(ctx, userID); err != nil {
		return domain.UserStats{}, err
	}
	if stats.LikesGiven, err = s.statisticsRepository.UserLikesGiven(ctx, userID); err != nil {
		return domain.UserStats{}, err
	}
	if stats.RatingsGiven, err = s.statisticsRepository.UserRatingsGiven(ctx, userID); err != nil {
		return domain.UserStats{}, err
	}
	if stats.CommentsGiven, err = s.statisticsRepository.UserCommentsGiven(ctx, userID); err != nil {
		return domain.UserStats{}, err
	}
	if stats.FollowersCount, err = s.followRepository.CountFollowers(ctx, userID); err != nil {
		return domain.UserStats{}, err
	}
	if stats.FollowingCount, err = s.followRepository.CountFollowing(ctx, userID); err != nil {
		return domain.UserStats{}, err
	}

	top, err := s.statisticsRepository.UserTopRecipe(ctx, userID)
	if err != nil {
		return domain.UserStats{}, err
	}
	if top != nil {
		stats.TopRecipe = &domain.TopRecipe{
			ID:         top.ID,
			Title:      top.Title,
			LikesCount: top.LikesCount,
		}
	}

	return stats, nil
}
