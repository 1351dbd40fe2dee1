package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessFollow         = "user followed"
	MessageSuccessUnfollow       = "user unfollowed"
	MessageSuccessGetFollowers   = "success get followers"
	MessageSuccessGetFollowing   = "success get following"
	MessageSuccessGetSuggestions = "success get follow suggestions"

	MessageFailedFollow         = "failed to toggle follow"
	MessageFailedGetFollowers   = "failed to get followers"
	MessageFailedGetFollowing   = "failed to get following"
	MessageFailedGetSuggestions = "failed to get follow suggestions"

	ErrSelfFollow = errors.New("cannot follow yourself")
)

type (
	FollowResponse struct {
		Following      bool  `json:"following"`
		FollowersCount int64 `json:"followers_count"`
		FollowingCount int64 `json:"following_count"`
	}

	FollowerEntry struct {
		ID              string    `json:"id"`
		Username        string    `json:"username"`
		FirstName       string    `json:"first_name"`
		LastName        string    `json:"last_name"`
		FullName        string    `json:"full_name"`
		ProfileImageURL string    `json:"profile_image_url,omitempty"`
		Bio             string    `json:"bio,omitempty"`
		FollowedAt      time.Time `json:"followed_at"`
		IsFollowingBack bool      `json:"is_following_back"`
	}

	FollowSuggestion struct {
		ID              string `json:"id"`
		Username        string `json:"username"`
		FirstName       string `json:"first_name"`
		LastName        string `json:"last_name"`
		FullName        string `json:"full_name"`
		ProfileImageURL string `json:"profile_image_url,omitempty"`
		Bio             string `json:"bio,omitempty"`
		RecipesCount    int64  `json:"recipes_count"`
		FollowersCount  int64  `json:"followers_count"`
	}
)
