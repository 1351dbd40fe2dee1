package follow

import (
	"Recipe-Share-API/domain"
	"Recipe-Share-API/entities"
	"Recipe-Share-API/pkg/user"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FollowService interface {
		ToggleFollow(ctx context.Context, targetUsername, userID string) (domain.FollowResponse, error)
		GetFollowers(ctx context.Context, targetUsername, viewerID string, page, limit int) ([]domain.FollowerEntry, int64, error)
		GetFollowing(ctx context.Context, targetUsername, viewerID string, page, limit int) ([]domain.FollowerEntry, int64, error)
		GetSuggestions(ctx context.Context, userID string, limit int) ([]domain.FollowSuggestion, error)
	}

	followService struct {
		followRepository FollowRepository
		userRepository   user.UserRepository
	}
)

func NewFollowService(followRepository FollowRepository, userRepository user.UserRepository) FollowService {
	return &followService{
		followRepository: followRepository,
		userRepository:   userRepository,
	}
}

func (s *followService) activeUser(ctx context.Context, username string) (*entities.User, error) {
	target, err := s.userRepository.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	if !target.IsActive {
		return nil, domain.ErrUserNotFound
	}
	return target, nil
}

func (s *followService) ToggleFollow(ctx context.Context, targetUsername, userID string) (domain.FollowResponse, error) {
	target, err := s.activeUser(ctx, targetUsername)
	if err != nil {
		return domain.FollowResponse{}, err
	}
	targetID := target.ID.String()
	if targetID == userID {
		return domain.FollowResponse{}, domain.ErrSelfFollow
	}

	followerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FollowResponse{}, domain.ErrParseUUID
	}
	followingID := target.ID

	following, err := s.followRepository.IsFollowing(ctx, userID, targetID)
	if err != nil {
		return domain.FollowResponse{}, err
	}

	if following {
		if err := s.followRepository.DeleteFollow(ctx, userID, targetID); err != nil {
			return domain.FollowResponse{}, err
		}
	} else {
		follow := entities.UserFollower{FollowerID: followerID, FollowingID: followingID}
		if err := s.followRepository.CreateFollow(ctx, &follow); err != nil {
			return domain.FollowResponse{}, err
		}
	}

	followers, err := s.followRepository.CountFollowers(ctx, targetID)
	if err != nil {
		return domain.FollowResponse{}, err
	}
	followingCount, err := s.followRepository.CountFollowing(ctx, targetID)
	if err != nil {
		return domain.FollowResponse{}, err
	}

	return domain.FollowResponse{
		Following:      !following,
		FollowersCount: followers,
		FollowingCount: followingCount,
	}, nil
}

func (s *followService) toFollowerEntry(ctx context.Context, viewerID string, row FollowerRow) domain.FollowerEntry {
	isFollowingBack := false
	if viewerID != "" && viewerID != row.ID.String() {
		isFollowingBack, _ = s.followRepository.IsFollowing(ctx, viewerID, row.ID.String())
	}
	return domain.FollowerEntry{
		ID:              row.ID.String(),
		Username:        row.Username,
		FirstName:       row.FirstName,
		LastName:        row.LastName,
		FullName:        domain.FullName(row.FirstName, row.LastName),
		ProfileImageURL: row.ProfileImageURL,
		Bio:             row.Bio,
		FollowedAt:      row.FollowedAt,
		IsFollowingBack: isFollowingBack,
	}
}

// listAccess gates the follower listings of private profiles to their owner.
func (s *followService) listAccess(ctx context.Context, targetUsername, viewerID string) (string, error) {
	target, err := s.activeUser(ctx, targetUsername)
	if err != nil {
		return "", err
	}
	targetID := target.ID.String()
	if !target.IsPublicProfile && viewerID != targetID {
		return "", domain.ErrProfilePrivate
	}
	return targetID, nil
}

func (s *followService) GetFollowers(ctx context.Context, targetUsername, viewerID string, page, limit int) ([]domain.FollowerEntry, int64, error) {
	targetID, err := s.listAccess(ctx, targetUsername, viewerID)
	if err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	rows, count, err := s.followRepository.GetFollowers(ctx, targetID, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.FollowerEntry, 0, len(rows))
	for _, row := range rows {
		result = append(result, s.toFollowerEntry(ctx, viewerID, row))
	}
	return result, count, nil
}

func (s *followService) GetFollowing(ctx context.Context, targetUsername, viewerID string, page, limit int) ([]domain.FollowerEntry, int64, error) {
	targetID, err := s.listAccess(ctx, targetUsername, viewerID)
	if err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	rows, count, err := s.followRepository.GetFollowing(ctx, targetID, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.FollowerEntry, 0, len(rows))
	for _, row := range rows {
		result = append(result, s.toFollowerEntry(ctx, viewerID, row))
	}
	return result, count, nil
}

func (s *followService) GetSuggestions(ctx context.Context, userID string, limit int) ([]domain.FollowSuggestion, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}

	rows, err := s.followRepository.GetSuggestions(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]domain.FollowSuggestion, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.FollowSuggestion{
			ID:              row.ID.String(),
			Username:        row.Username,
			FirstName:       row.FirstName,
			LastName:        row.LastName,
			FullName:        domain.FullName(row.FirstName, row.LastName),
			ProfileImageURL: row.ProfileImageURL,
			Bio:             row.Bio,
			RecipesCount:    row.RecipesCount,
			FollowersCount:  row.FollowersCount,
		})
	}
	return result, nil
}
