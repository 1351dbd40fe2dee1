package domain

import (
	"errors"
	"strings"
	"time"
)

func FullName(firstName, lastName string) string {
	return strings.TrimSpace(firstName + " " + lastName)
}

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetProfile     = "success get profile"
	MessageSuccessUpdateProfile  = "profile updated successfully"
	MessageSuccessChangePassword = "password changed successfully"
	MessageSuccessVerifyToken    = "token is valid"
	MessageSuccessGetUser        = "success get user"
	MessageSuccessUploadImage    = "image uploaded successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetProfile     = "failed to get profile"
	MessageFailedUpdateProfile  = "failed to update profile"
	MessageFailedChangePassword = "failed to change password"
	MessageFailedGetUser        = "failed to get user"
	MessageFailedUploadImage    = "failed to upload image"

	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrUsernameAlreadyExists = errors.New("username already taken")
	ErrCredentialsInvalid    = errors.New("invalid credentials")
	ErrUserNotFound          = errors.New("user not found")
	ErrAccountInactive       = errors.New("account is deactivated")
	ErrPasswordIncorrect     = errors.New("current password is incorrect")
	ErrProfilePrivate        = errors.New("this profile is private")
	ErrEmptyUpdate           = errors.New("no fields provided for update")
)

type (
	UserRegisterRequest struct {
		Username  string `json:"username" validate:"required,username"`
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"required,password"`
		FirstName string `json:"first_name" validate:"required,max=100"`
		LastName  string `json:"last_name" validate:"omitempty,max=100"`
		Bio       string `json:"bio" validate:"omitempty,max=500"`
	}

	UserLoginRequest struct {
		Identifier string `json:"identifier" validate:"required"`
		Password   string `json:"password" validate:"required"`
	}

	UserUpdateRequest struct {
		FirstName          *string `json:"first_name" validate:"omitempty,max=100"`
		LastName           *string `json:"last_name" validate:"omitempty,max=100"`
		Bio                *string `json:"bio" validate:"omitempty,max=500"`
		Location           *string `json:"location" validate:"omitempty,max=100"`
		Website            *string `json:"website" validate:"omitempty,url"`
		ProfileImageURL    *string `json:"profile_image_url" validate:"omitempty,url"`
		IsPublicProfile    *bool   `json:"is_public_profile"`
		EmailNotifications *bool   `json:"email_notifications"`
		PushNotifications  *bool   `json:"push_notifications"`
	}

	ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,password"`
	}

	UserResponse struct {
		ID              string    `json:"id"`
		Username        string    `json:"username"`
		Email           string    `json:"email,omitempty"`
		FirstName       string    `json:"first_name"`
		LastName        string    `json:"last_name"`
		FullName        string    `json:"full_name"`
		Bio             string    `json:"bio,omitempty"`
		Location        string    `json:"location,omitempty"`
		Website         string    `json:"website,omitempty"`
		ProfileImageURL string    `json:"profile_image_url,omitempty"`
		IsPublicProfile bool      `json:"is_public_profile"`
		IsVerified      bool      `json:"is_verified"`
		CreatedAt       time.Time `json:"created_at"`
	}

	AuthResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	UserProfileResponse struct {
		UserResponse
		RecipesCount   int64 `json:"recipes_count"`
		FollowersCount int64 `json:"followers_count"`
		FollowingCount int64 `json:"following_count"`
		IsFollowing    bool  `json:"is_following"`
		IsOwnProfile   bool  `json:"is_own_profile"`
	}
)
