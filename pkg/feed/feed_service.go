package feed

import (
	"Recipe-Share-API/domain"
	"Recipe-Share-API/pkg/recipe"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	trendingWindow   = 7 * 24 * time.Hour
	trendingCacheTTL = 5 * time.Minute
)

type (
	FeedService interface {
		GetFeed(ctx context.Context, userID string, page, limit int) ([]domain.RecipeSummary, int64, error)
		GetTrending(ctx context.Context, viewerID string, limit int) ([]domain.TrendingRecipe, error)
		GetActivity(ctx context.Context, userID string, limit int) ([]domain.ActivityEntry, error)
	}

	feedService struct {
		feedRepository   FeedRepository
		recipeRepository recipe.RecipeRepository
		rdb              *redis.Client
	}
)

func NewFeedService(feedRepository FeedRepository, recipeRepository recipe.RecipeRepository, rdb *redis.Client) FeedService {
	return &feedService{
		feedRepository:   feedRepository,
		recipeRepository: recipeRepository,
		rdb:              rdb,
	}
}

func (s *feedService) toSummary(ctx context.Context, row recipe.RecipeRow, viewerID string) domain.RecipeSummary {
	categories, err := s.recipeRepository.GetRecipeCategories(ctx, row.ID.String())
	if err != nil {
		categories = nil
	}
	isLiked := false
	if viewerID != "" {
		isLiked, _ = s.recipeRepository.IsLiked(ctx, viewerID, row.ID.String())
	}
	return recipe.ToSummary(row, categories, isLiked)
}

func (s *feedService) GetFeed(ctx context.Context, userID string, page, limit int) ([]domain.RecipeSummary, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	rows, count, err := s.feedRepository.GetFeedRecipes(ctx, userID, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.RecipeSummary, 0, len(rows))
	for _, row := range rows {
		result = append(result, s.toSummary(ctx, row, userID))
	}
	return result, count, nil
}

// GetTrending serves anonymous traffic from a short-lived cache; signed-in
// viewers always hit the database so is_liked stays accurate.
func (s *feedService) GetTrending(ctx context.Context, viewerID string, limit int) ([]domain.TrendingRecipe, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}

	cacheKey := fmt.Sprintf("trending:%d", limit)
	if viewerID == "" && s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var result []domain.TrendingRecipe
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return result, nil
			}
		}
	}

	rows, err := s.feedRepository.GetTrendingRecipes(ctx, time.Now().Add(-trendingWindow), limit)
	if err != nil {
		return nil, err
	}

	result := make([]domain.TrendingRecipe, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.TrendingRecipe{
			RecipeSummary: s.toSummary(ctx, row.RecipeRow, viewerID),
			RecentLikes:   row.RecentLikes,
		})
	}

	if viewerID == "" && s.rdb != nil {
		payload, err := json.Marshal(result)
		if err == nil {
			if err := s.rdb.Set(ctx, cacheKey, payload, trendingCacheTTL).Err(); err != nil {
				log.Printf("trending cache write failed: %v", err)
			}
		}
	}
	return result, nil
}

func actorName(username, firstName, lastName string) string {
	if full := domain.FullName(firstName, lastName); full != "" {
		return full
	}
	return username
}

func (s *feedService) GetActivity(ctx context.Context, userID string, limit int) ([]domain.ActivityEntry, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	likes, err := s.feedRepository.GetLikeEvents(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	comments, err := s.feedRepository.GetCommentEvents(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	followers, err := s.feedRepository.GetFollowerEvents(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.ActivityEntry, 0, len(likes)+len(comments)+len(followers))
	for _, e := range likes {
		actor := actorName(e.ActorUsername, e.ActorFirstName, e.ActorLastName)
		entries = append(entries, domain.ActivityEntry{
			Type:      domain.ActivityLike,
			Message:   fmt.Sprintf("%s liked your recipe %s", actor, e.RecipeTitle),
			ActorID:   e.ActorID,
			Actor:     actor,
			RecipeID:  e.RecipeID,
			Recipe:    e.RecipeTitle,
			CreatedAt: e.CreatedAt,
		})
	}
	for _, e := range comments {
		actor := actorName(e.ActorUsername, e.ActorFirstName, e.ActorLastName)
		entries = append(entries, domain.ActivityEntry{
			Type:      domain.ActivityComment,
			Message:   fmt.Sprintf("%s commented on your recipe %s", actor, e.RecipeTitle),
			ActorID:   e.ActorID,
			Actor:     actor,
			RecipeID:  e.RecipeID,
			Recipe:    e.RecipeTitle,
			CreatedAt: e.CreatedAt,
		})
	}
	for _, e := range followers {
		actor := actorName(e.ActorUsername, e.ActorFirstName, e.ActorLastName)
		entries = append(entries, domain.ActivityEntry{
			Type:      domain.ActivityFollower,
			Message:   fmt.Sprintf("%s started following you", actor),
			ActorID:   e.ActorID,
			Actor:     actor,
			CreatedAt: e.CreatedAt,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
