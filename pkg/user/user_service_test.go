package user

import (
	"Recipe-Share-API/domain"
	"Recipe-Share-API/entities"
	"Recipe-Share-API/internal/utils/storage"
	"Recipe-Share-API/pkg/jwt"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Recipe{},
		&entities.UserFollower{},
	))
	return db
}

func newTestService(t *testing.T) (UserService, *gorm.DB) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	return NewUserService(repo, jwt.NewJWTService(), storage.NewAwsS3()), db
}

func seedUser(t *testing.T, db *gorm.DB, username, email, password string) *entities.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := entities.User{
		ID:              uuid.New(),
		Username:        username,
		Email:           email,
		PasswordHash:    string(hash),
		FirstName:       "Test",
		LastName:        "User",
		IsPublicProfile: true,
		IsActive:        true,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func TestRegister(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	seedUser(t, db, "existing", "existing@example.com", "password123")

	t.Run("Valid registration", func(t *testing.T) {
		res, err := service.Register(ctx, domain.UserRegisterRequest{
			Username:  "newuser",
			Email:     "new@example.com",
			Password:  "Password123!",
			FirstName: "New",
			LastName:  "User",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, "newuser", res.User.Username)
		assert.Equal(t, "new@example.com", res.User.Email)
		assert.Equal(t, "New User", res.User.FullName)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		_, err := service.Register(ctx, domain.UserRegisterRequest{
			Username:  "another",
			Email:     "existing@example.com",
			Password:  "Password123!",
			FirstName: "Another",
		})
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("Duplicate username", func(t *testing.T) {
		_, err := service.Register(ctx, domain.UserRegisterRequest{
			Username:  "existing",
			Email:     "unused@example.com",
			Password:  "Password123!",
			FirstName: "Another",
		})
		assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)
	})
}

func TestLogin(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	seedUser(t, db, "alice", "alice@example.com", "correct-horse")

	inactive := seedUser(t, db, "bob", "bob@example.com", "correct-horse")
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)

	t.Run("Login with username", func(t *testing.T) {
		res, err := service.Login(ctx, domain.UserLoginRequest{
			Identifier: "alice",
			Password:   "correct-horse",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, "alice", res.User.Username)
	})

	t.Run("Login with email", func(t *testing.T) {
		res, err := service.Login(ctx, domain.UserLoginRequest{
			Identifier: "alice@example.com",
			Password:   "correct-horse",
		})
		require.NoError(t, err)
		assert.Equal(t, "alice", res.User.Username)
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, err := service.Login(ctx, domain.UserLoginRequest{
			Identifier: "alice",
			Password:   "wrong",
		})
		assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
	})

	t.Run("Unknown identifier", func(t *testing.T) {
		_, err := service.Login(ctx, domain.UserLoginRequest{
			Identifier: "nobody",
			Password:   "correct-horse",
		})
		assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
	})

	t.Run("Deactivated account", func(t *testing.T) {
		_, err := service.Login(ctx, domain.UserLoginRequest{
			Identifier: "bob",
			Password:   "correct-horse",
		})
		assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
	})
}

func TestChangePassword(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	u := seedUser(t, db, "carol", "carol@example.com", "old-password")

	t.Run("Wrong current password", func(t *testing.T) {
		err := service.ChangePassword(ctx, domain.ChangePasswordRequest{
			CurrentPassword: "nope",
			NewPassword:     "NewPassword123!",
		}, u.ID.String())
		assert.ErrorIs(t, err, domain.ErrPasswordIncorrect)
	})

	t.Run("Successful change", func(t *testing.T) {
		err := service.ChangePassword(ctx, domain.ChangePasswordRequest{
			CurrentPassword: "old-password",
			NewPassword:     "NewPassword123!",
		}, u.ID.String())
		require.NoError(t, err)

		_, err = service.Login(ctx, domain.UserLoginRequest{
			Identifier: "carol",
			Password:   "NewPassword123!",
		})
		assert.NoError(t, err)

		_, err = service.Login(ctx, domain.UserLoginRequest{
			Identifier: "carol",
			Password:   "old-password",
		})
		assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
	})
}

func TestUpdateProfile(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	u := seedUser(t, db, "dave", "dave@example.com", "password123")

	t.Run("Empty update rejected", func(t *testing.T) {
		_, err := service.UpdateProfile(ctx, domain.UserUpdateRequest{}, u.ID.String())
		assert.ErrorIs(t, err, domain.ErrEmptyUpdate)
	})

	t.Run("Partial update keeps other fields", func(t *testing.T) {
		bio := "I cook things"
		res, err := service.UpdateProfile(ctx, domain.UserUpdateRequest{Bio: &bio}, u.ID.String())
		require.NoError(t, err)
		assert.Equal(t, "I cook things", res.Bio)
		assert.Equal(t, "Test", res.FirstName)
	})
}

func TestGetPublicProfile(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	owner := seedUser(t, db, "erin", "erin@example.com", "password123")
	viewer := seedUser(t, db, "frank", "frank@example.com", "password123")

	require.NoError(t, db.Create(&entities.Recipe{
		ID:       uuid.New(),
		AuthorID: owner.ID,
		Title:    "Public pie",
		IsPublic: true,
	}).Error)
	require.NoError(t, db.Create(&entities.Recipe{
		ID:       uuid.New(),
		AuthorID: owner.ID,
		Title:    "Secret pie",
		IsPublic: false,
	}).Error)

	t.Run("Stranger sees public recipe count only", func(t *testing.T) {
		res, err := service.GetPublicProfile(ctx, "erin", viewer.ID.String())
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.RecipesCount)
		assert.Empty(t, res.Email)
		assert.False(t, res.IsOwnProfile)
	})

	t.Run("Owner sees all recipes and email", func(t *testing.T) {
		res, err := service.GetPublicProfile(ctx, "erin", owner.ID.String())
		require.NoError(t, err)
		assert.Equal(t, int64(2), res.RecipesCount)
		assert.Equal(t, "erin@example.com", res.Email)
		assert.True(t, res.IsOwnProfile)
	})

	t.Run("Private profile reduced card", func(t *testing.T) {
		require.NoError(t, db.Model(owner).Update("is_public_profile", false).Error)
		res, err := service.GetPublicProfile(ctx, "erin", viewer.ID.String())
		require.NoError(t, err)
		assert.Equal(t, "erin", res.Username)
		assert.Zero(t, res.RecipesCount)
		assert.Zero(t, res.FollowersCount)
		require.NoError(t, db.Model(owner).Update("is_public_profile", true).Error)
	})

	t.Run("Unknown user", func(t *testing.T) {
		_, err := service.GetPublicProfile(ctx, "ghost", "")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("Deactivated user hidden", func(t *testing.T) {
		require.NoError(t, db.Model(owner).Update("is_active", false).Error)
		_, err := service.GetPublicProfile(ctx, "erin", "")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
