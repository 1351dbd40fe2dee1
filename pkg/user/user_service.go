package user

import (
	"Recipe-Share-API/domain"
	"Recipe-Share-API/entities"
	"Recipe-Share-API/internal/utils/mailing"
	"Recipe-Share-API/internal/utils/storage"
	"Recipe-Share-API/pkg/jwt"
	"context"
	"errors"
	"log"
	"mime/multipart"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

type (
	UserService interface {
		Register(ctx context.Context, req domain.UserRegisterRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.UserLoginRequest) (domain.AuthResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateProfile(ctx context.Context, req domain.UserUpdateRequest, userID string) (domain.UserResponse, error)
		ChangePassword(ctx context.Context, req domain.ChangePasswordRequest, userID string) error
		GetPublicProfile(ctx context.Context, username string, viewerID string) (domain.UserProfileResponse, error)
		UploadProfileImage(ctx context.Context, userID string, file *multipart.FileHeader) (string, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		s3             storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		s3:             s3,
	}
}

func toUserResponse(u *entities.User, includeEmail bool) domain.UserResponse {
	res := domain.UserResponse{
		ID:              u.ID.String(),
		Username:        u.Username,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		FullName:        domain.FullName(u.FirstName, u.LastName),
		Bio:             u.Bio,
		Location:        u.Location,
		Website:         u.Website,
		ProfileImageURL: u.ProfileImageURL,
		IsPublicProfile: u.IsPublicProfile,
		IsVerified:      u.IsVerified,
		CreatedAt:       u.CreatedAt,
	}
	if includeEmail {
		res.Email = u.Email
	}
	return res
}

func (s *userService) Register(ctx context.Context, req domain.UserRegisterRequest) (domain.AuthResponse, error) {
	emailTaken, err := s.userRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	if emailTaken {
		return domain.AuthResponse{}, domain.ErrEmailAlreadyExists
	}

	usernameTaken, err := s.userRepository.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	if usernameTaken {
		return domain.AuthResponse{}, domain.ErrUsernameAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	user := entities.User{
		ID:              uuid.New(),
		Username:        req.Username,
		Email:           req.Email,
		PasswordHash:    string(hash),
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Bio:             req.Bio,
		IsPublicProfile: true,
		IsActive:        true,
	}
	user.EmailNotifications = true
	user.PushNotifications = true

	if err := s.userRepository.CreateUser(ctx, &user); err != nil {
		return domain.AuthResponse{}, err
	}

	// best effort, registration never fails on mail problems
	go func() {
		if err := mailing.SendWelcomeMail(user.Email, user.FirstName); err != nil {
			log.Printf("welcome mail to %s failed: %v", user.Email, err)
		}
	}()

	token := s.jwtService.GenerateTokenUser(user.ID.String(), domain.RoleUser)
	return domain.AuthResponse{
		Token: token,
		User:  toUserResponse(&user, true),
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.UserLoginRequest) (domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByIdentifier(ctx, req.Identifier)
	if err != nil {
		// same error whichever check failed
		return domain.AuthResponse{}, domain.ErrCredentialsInvalid
	}
	if !user.IsActive {
		return domain.AuthResponse{}, domain.ErrCredentialsInvalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), domain.RoleUser)
	return domain.AuthResponse{
		Token: token,
		User:  toUserResponse(user, true),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user, true), nil
}

func (s *userService) UpdateProfile(ctx context.Context, req domain.UserUpdateRequest, userID string) (domain.UserResponse, error) {
	if req.FirstName == nil && req.LastName == nil && req.Bio == nil &&
		req.Location == nil && req.Website == nil && req.ProfileImageURL == nil &&
		req.IsPublicProfile == nil && req.EmailNotifications == nil && req.PushNotifications == nil {
		return domain.UserResponse{}, domain.ErrEmptyUpdate
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Website != nil {
		user.Website = *req.Website
	}
	if req.ProfileImageURL != nil {
		user.ProfileImageURL = *req.ProfileImageURL
	}
	if req.IsPublicProfile != nil {
		user.IsPublicProfile = *req.IsPublicProfile
	}
	if req.EmailNotifications != nil {
		user.EmailNotifications = *req.EmailNotifications
	}
	if req.PushNotifications != nil {
		user.PushNotifications = *req.PushNotifications
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user, true), nil
}

func (s *userService) ChangePassword(ctx context.Context, req domain.ChangePasswordRequest, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return domain.ErrPasswordIncorrect
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)

	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) GetPublicProfile(ctx context.Context, username string, viewerID string) (domain.UserProfileResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.UserProfileResponse{}, err
	}
	if !user.IsActive {
		return domain.UserProfileResponse{}, domain.ErrUserNotFound
	}

	isOwn := viewerID != "" && viewerID == user.ID.String()

	isFollowing := false
	if viewerID != "" && !isOwn {
		isFollowing, _ = s.userRepository.IsFollowing(ctx, viewerID, user.ID.String())
	}

	// strangers only see a reduced card for private profiles
	if !user.IsPublicProfile && !isOwn {
		return domain.UserProfileResponse{
			UserResponse: domain.UserResponse{
				ID:              user.ID.String(),
				Username:        user.Username,
				FirstName:       user.FirstName,
				LastName:        user.LastName,
				FullName:        domain.FullName(user.FirstName, user.LastName),
				ProfileImageURL: user.ProfileImageURL,
				IsPublicProfile: false,
				CreatedAt:       user.CreatedAt,
			},
			IsFollowing:  isFollowing,
			IsOwnProfile: false,
		}, nil
	}

	recipes, err := s.userRepository.CountRecipes(ctx, user.ID.String(), !isOwn)
	if err != nil {
		return domain.UserProfileResponse{}, err
	}
	followers, err := s.userRepository.CountFollowers(ctx, user.ID.String())
	if err != nil {
		return domain.UserProfileResponse{}, err
	}
	following, err := s.userRepository.CountFollowing(ctx, user.ID.String())
	if err != nil {
		return domain.UserProfileResponse{}, err
	}

	return domain.UserProfileResponse{
		UserResponse:   toUserResponse(user, isOwn),
		RecipesCount:   recipes,
		FollowersCount: followers,
		FollowingCount: following,
		IsFollowing:    isFollowing,
		IsOwnProfile:   isOwn,
	}, nil
}

func (s *userService) UploadProfileImage(ctx context.Context, userID string, file *multipart.FileHeader) (string, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}

	url, err := s.s3.UploadFile(ctx, "profiles", file)
	if err != nil {
		return "", err
	}

	user.ProfileImageURL = url
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return "", err
	}
	return url, nil
}
