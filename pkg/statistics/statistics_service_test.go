package statistics

import (
	"Recipe-Share-API/entities"
	"Recipe-Share-API/pkg/follow"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Category{},
		&entities.Recipe{},
		&entities.RecipeCategory{},
		&entities.RecipeLike{},
		&entities.RecipeRating{},
		&entities.RecipeComment{},
		&entities.UserFollower{},
	))
	return db
}

func newTestService(t *testing.T) (StatisticsService, *gorm.DB) {
	db := setupTestDB(t)
	return NewStatisticsService(NewStatisticsRepository(db), follow.NewFollowRepository(db)), db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *entities.User {
	u := entities.User{
		ID:              uuid.New(),
		Username:        username,
		Email:           username + "@example.com",
		IsPublicProfile: true,
		IsActive:        true,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func seedRecipe(t *testing.T, db *gorm.DB, author *entities.User, title string, public bool) *entities.Recipe {
	r := entities.Recipe{
		ID:       uuid.New(),
		AuthorID: author.ID,
		Title:    title,
		IsPublic: public,
	}
	require.NoError(t, db.Create(&r).Error)
	return &r
}

func TestGetPlatformStats(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	a := seedUser(t, db, "a")
	b := seedUser(t, db, "b")

	pub := seedRecipe(t, db, a, "Public one", true)
	seedRecipe(t, db, a, "Private one", false)

	require.NoError(t, db.Create(&entities.RecipeLike{UserID: b.ID, RecipeID: pub.ID}).Error)
	require.NoError(t, db.Create(&entities.RecipeRating{
		ID: uuid.New(), RecipeID: pub.ID, UserID: b.ID, Rating: 4,
	}).Error)

	cat := entities.Category{Name: "Dinner", IsActive: true}
	require.NoError(t, db.Create(&cat).Error)
	require.NoError(t, db.Create(&entities.RecipeCategory{RecipeID: pub.ID, CategoryID: cat.ID}).Error)

	stats, err := service.GetPlatformStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(2), stats.TotalRecipes)
	assert.Equal(t, int64(1), stats.PublicRecipes)
	assert.Equal(t, int64(1), stats.TotalLikes)
	assert.Equal(t, int64(1), stats.TotalRatings)
	assert.Equal(t, 4.0, stats.AverageRating)
	assert.Equal(t, int64(2), stats.RecentRecipes)
	require.NotEmpty(t, stats.TopCategories)
	assert.Equal(t, "Dinner", stats.TopCategories[0].Name)
}

func TestGetUserStats(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	me := seedUser(t, db, "me")
	other := seedUser(t, db, "other")

	mine := seedRecipe(t, db, me, "Mine", true)
	seedRecipe(t, db, me, "Mine private", false)
	theirs := seedRecipe(t, db, other, "Theirs", true)

	require.NoError(t, db.Create(&entities.RecipeLike{UserID: other.ID, RecipeID: mine.ID}).Error)
	require.NoError(t, db.Create(&entities.RecipeLike{UserID: me.ID, RecipeID: theirs.ID}).Error)
	require.NoError(t, db.Create(&entities.RecipeRating{
		ID: uuid.New(), RecipeID: mine.ID, UserID: other.ID, Rating: 5,
	}).Error)

	// a visitor's comment counts, the author's own does not
	require.NoError(t, db.Create(&entities.RecipeComment{
		ID: uuid.New(), RecipeID: mine.ID, UserID: other.ID, Comment: "great",
	}).Error)
	require.NoError(t, db.Create(&entities.RecipeComment{
		ID: uuid.New(), RecipeID: mine.ID, UserID: me.ID, Comment: "thanks",
	}).Error)

	require.NoError(t, db.Create(&entities.UserFollower{FollowerID: other.ID, FollowingID: me.ID}).Error)

	stats, err := service.GetUserStats(ctx, me.ID.String())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.RecipesTotal)
	assert.Equal(t, int64(1), stats.RecipesPublic)
	assert.Equal(t, int64(1), stats.LikesReceived)
	assert.Equal(t, int64(1), stats.RatingsReceived)
	assert.Equal(t, 5.0, stats.AverageRating)
	assert.Equal(t, int64(1), stats.CommentsReceived)
	assert.Equal(t, int64(1), stats.LikesGiven)
	assert.Equal(t, int64(1), stats.CommentsGiven)
	assert.Equal(t, int64(1), stats.FollowersCount)
	assert.Zero(t, stats.FollowingCount)

	require.NotNil(t, stats.TopRecipe)
	assert.Equal(t, "Mine", stats.TopRecipe.Title)
	assert.Equal(t, int64(1), stats.TopRecipe.LikesCount)
}

func TestGetUserStatsNoActivity(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	loner := seedUser(t, db, "loner")

	stats, err := service.GetUserStats(ctx, loner.ID.String())
	require.NoError(t, err)
	assert.Zero(t, stats.RecipesTotal)
	assert.Nil(t, stats.TopRecipe)
}
