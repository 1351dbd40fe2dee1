package follow

import (
	"Recipe-Share-API/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	FollowerRow struct {
		entities.User
		FollowedAt time.Time
	}

	SuggestionRow struct {
		entities.User
		RecipesCount   int64
		FollowersCount int64
	}

	FollowRepository interface {
		IsFollowing(ctx context.Context, followerID, followingID string) (bool, error)
		CreateFollow(ctx context.Context, follow *entities.UserFollower) error
		DeleteFollow(ctx context.Context, followerID, followingID string) error
		CountFollowers(ctx context.Context, userID string) (int64, error)
		CountFollowing(ctx context.Context, userID string) (int64, error)
		GetFollowers(ctx context.Context, userID string, offset, limit int) ([]FollowerRow, int64, error)
		GetFollowing(ctx context.Context, userID string, offset, limit int) ([]FollowerRow, int64, error)
		GetSuggestions(ctx context.Context, userID string, limit int) ([]SuggestionRow, error)
	}

	followRepository struct {
		db *gorm.DB
	}
)

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.UserFollower{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

func (r *followRepository) CreateFollow(ctx context.Context, follow *entities.UserFollower) error {
	return r.db.WithContext(ctx).Create(follow).Error
}

func (r *followRepository) DeleteFollow(ctx context.Context, followerID, followingID string) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&entities.UserFollower{}).Error
}

func (r *followRepository) CountFollowers(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.UserFollower{}).
		Where("following_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *followRepository) CountFollowing(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.UserFollower{}).
		Where("follower_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *followRepository) GetFollowers(ctx context.Context, userID string, offset, limit int) ([]FollowerRow, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.UserFollower{}).
		Where("following_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var rows []FollowerRow
	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Select("users.*, user_followers.created_at AS followed_at").
		Joins("JOIN user_followers ON user_followers.follower_id = users.id").
		Where("user_followers.following_id = ? AND users.is_active = ?", userID, true).
		Order("user_followers.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, count, nil
}

func (r *followRepository) GetFollowing(ctx context.Context, userID string, offset, limit int) ([]FollowerRow, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.UserFollower{}).
		Where("follower_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var rows []FollowerRow
	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Select("users.*, user_followers.created_at AS followed_at").
		Joins("JOIN user_followers ON user_followers.following_id = users.id").
		Where("user_followers.follower_id = ? AND users.is_active = ?", userID, true).
		Order("user_followers.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, count, nil
}

// GetSuggestions surfaces active public users the caller does not follow yet,
// strongest recipe authors first.
func (r *followRepository) GetSuggestions(ctx context.Context, userID string, limit int) ([]SuggestionRow, error) {
	var rows []SuggestionRow
	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Select("users.*, " +
			"(SELECT COUNT(*) FROM recipes r WHERE r.author_id = users.id AND r.is_public = true) AS recipes_count, " +
			"(SELECT COUNT(*) FROM user_followers uf WHERE uf.following_id = users.id) AS followers_count").
		Where("users.id <> ? AND users.is_active = ? AND users.is_public_profile = ?", userID, true, true).
		Where("NOT EXISTS (SELECT 1 FROM user_followers uf WHERE uf.follower_id = ? AND uf.following_id = users.id)", userID).
		Order("recipes_count DESC, followers_count DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
