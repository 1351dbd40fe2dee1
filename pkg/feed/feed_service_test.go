package feed

import (
	"Recipe-Share-API/domain"
	"Recipe-Share-API/entities"
	"Recipe-Share-API/pkg/recipe"
	"context"
	"testing"
	"time"

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
		&entities.Recipe{},
		&entities.RecipeLike{},
		&entities.RecipeRating{},
		&entities.RecipeComment{},
		&entities.UserFollower{},
	))
	return db
}

func newTestService(t *testing.T) (FeedService, *gorm.DB) {
	db := setupTestDB(t)
	return NewFeedService(NewFeedRepository(db), recipe.NewRecipeRepository(db), nil), db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *entities.User {
	u := entities.User{
		ID:       uuid.New(),
		Username: username,
		Email:    username + "@example.com",
		IsActive: true,
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

func follow(t *testing.T, db *gorm.DB, follower, following *entities.User) {
	require.NoError(t, db.Create(&entities.UserFollower{
		FollowerID:  follower.ID,
		FollowingID: following.ID,
	}).Error)
}

func like(t *testing.T, db *gorm.DB, u *entities.User, r *entities.Recipe, at time.Time) {
	require.NoError(t, db.Create(&entities.RecipeLike{
		UserID:    u.ID,
		RecipeID:  r.ID,
		CreatedAt: at,
	}).Error)
}

func TestGetFeed(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	me := seedUser(t, db, "me")
	followed := seedUser(t, db, "followed")
	stranger := seedUser(t, db, "stranger")
	follow(t, db, me, followed)

	seedRecipe(t, db, me, "My own dish", true)
	seedRecipe(t, db, followed, "Followed dish", true)
	seedRecipe(t, db, followed, "Followed draft", false)
	seedRecipe(t, db, stranger, "Stranger dish", true)

	rows, count, err := service.GetFeed(ctx, me.ID.String(), 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	titles := make([]string, 0, len(rows))
	for _, r := range rows {
		titles = append(titles, r.Title)
	}
	assert.Contains(t, titles, "My own dish")
	assert.Contains(t, titles, "Followed dish")
	assert.NotContains(t, titles, "Followed draft")
	assert.NotContains(t, titles, "Stranger dish")
}

func TestGetTrending(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	fan1 := seedUser(t, db, "fan1")
	fan2 := seedUser(t, db, "fan2")

	hot := seedRecipe(t, db, author, "Hot right now", true)
	stale := seedRecipe(t, db, author, "Old news", true)
	cold := seedRecipe(t, db, author, "Never liked", true)
	_ = cold

	now := time.Now()
	like(t, db, fan1, hot, now.Add(-time.Hour))
	like(t, db, fan2, hot, now.Add(-2*time.Hour))
	like(t, db, fan1, stale, now.Add(-30*24*time.Hour))

	rows, err := service.GetTrending(ctx, "", 10)
	require.NoError(t, err)

	// only recipes with likes inside the window qualify
	require.Len(t, rows, 1)
	assert.Equal(t, "Hot right now", rows[0].Title)
	assert.Equal(t, int64(2), rows[0].RecentLikes)
	assert.Equal(t, int64(2), rows[0].LikesCount)
}

func TestGetActivity(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	me := seedUser(t, db, "me")
	actor := seedUser(t, db, "actor")
	mine := seedRecipe(t, db, me, "My recipe", true)

	like(t, db, actor, mine, time.Now().Add(-time.Minute))
	follow(t, db, actor, me)
	require.NoError(t, db.Create(&entities.RecipeComment{
		ID:       uuid.New(),
		RecipeID: mine.ID,
		UserID:   actor.ID,
		Comment:  "nice",
	}).Error)

	// own comments never show up as activity
	require.NoError(t, db.Create(&entities.RecipeComment{
		ID:       uuid.New(),
		RecipeID: mine.ID,
		UserID:   me.ID,
		Comment:  "thanks",
	}).Error)

	entries, err := service.GetActivity(ctx, me.ID.String(), 20)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	types := map[string]int{}
	for _, e := range entries {
		types[e.Type]++
		assert.NotEmpty(t, e.Message)
	}
	assert.Equal(t, 1, types[domain.ActivityLike])
	assert.Equal(t, 1, types[domain.ActivityComment])
	assert.Equal(t, 1, types[domain.ActivityFollower])
}
