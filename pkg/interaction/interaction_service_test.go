package interaction

import (
	"Recipe-Share-API/domain"
	"Recipe-Share-API/entities"
	"Recipe-Share-API/pkg/recipe"
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
		&entities.Recipe{},
		&entities.RecipeLike{},
		&entities.RecipeRating{},
		&entities.RecipeComment{},
	))
	return db
}

func newTestService(t *testing.T) (InteractionService, *gorm.DB) {
	db := setupTestDB(t)
	return NewInteractionService(NewInteractionRepository(db), recipe.NewRecipeRepository(db)), db
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

func seedRecipe(t *testing.T, db *gorm.DB, author *entities.User, public bool) *entities.Recipe {
	r := entities.Recipe{
		ID:       uuid.New(),
		AuthorID: author.ID,
		Title:    "Test Recipe",
		IsPublic: public,
	}
	require.NoError(t, db.Create(&r).Error)
	return &r
}

func TestToggleLike(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	author := seedUser(t, db, "author")
	liker := seedUser(t, db, "liker")
	rec := seedRecipe(t, db, author, true)

	t.Run("First toggle likes", func(t *testing.T) {
		res, err := service.ToggleLike(ctx, rec.ID.String(), liker.ID.String())
		require.NoError(t, err)
		assert.True(t, res.Liked)
		assert.Equal(t, int64(1), res.LikesCount)
	})

	t.Run("Second toggle unlikes", func(t *testing.T) {
		res, err := service.ToggleLike(ctx, rec.ID.String(), liker.ID.String())
		require.NoError(t, err)
		assert.False(t, res.Liked)
		assert.Zero(t, res.LikesCount)
	})

	t.Run("Private recipe denied to strangers", func(t *testing.T) {
		hidden := seedRecipe(t, db, author, false)
		_, err := service.ToggleLike(ctx, hidden.ID.String(), liker.ID.String())
		assert.ErrorIs(t, err, domain.ErrRecipeAccessDenied)
	})

	t.Run("Unknown recipe", func(t *testing.T) {
		_, err := service.ToggleLike(ctx, uuid.NewString(), liker.ID.String())
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})
}

func TestRateRecipe(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	author := seedUser(t, db, "chef")
	rater := seedUser(t, db, "critic")
	second := seedUser(t, db, "critic2")
	rec := seedRecipe(t, db, author, true)

	t.Run("Author cannot rate own recipe", func(t *testing.T) {
		_, err := service.RateRecipe(ctx, rec.ID.String(), author.ID.String(), domain.RateRecipeRequest{Rating: 5})
		assert.ErrorIs(t, err, domain.ErrSelfRating)
	})

	t.Run("First rating", func(t *testing.T) {
		res, err := service.RateRecipe(ctx, rec.ID.String(), rater.ID.String(), domain.RateRecipeRequest{
			Rating: 4,
			Review: "Pretty good",
		})
		require.NoError(t, err)
		assert.Equal(t, 4, res.Rating.Rating)
		assert.Equal(t, "Pretty good", res.Rating.Review)
		assert.Equal(t, "critic", res.Rating.User.Username)
		assert.Equal(t, int64(1), res.RatingsCount)
		assert.Equal(t, 4.0, res.AverageRating)
	})

	t.Run("Re-rating replaces, not duplicates", func(t *testing.T) {
		res, err := service.RateRecipe(ctx, rec.ID.String(), rater.ID.String(), domain.RateRecipeRequest{Rating: 2})
		require.NoError(t, err)
		assert.Equal(t, 2, res.Rating.Rating)
		assert.Equal(t, int64(1), res.RatingsCount)
		assert.Equal(t, 2.0, res.AverageRating)

		var count int64
		db.Model(&entities.RecipeRating{}).Where("recipe_id = ?", rec.ID).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Average rounds to two decimals", func(t *testing.T) {
		res, err := service.RateRecipe(ctx, rec.ID.String(), second.ID.String(), domain.RateRecipeRequest{Rating: 5})
		require.NoError(t, err)
		assert.Equal(t, int64(2), res.RatingsCount)
		assert.Equal(t, 3.5, res.AverageRating)
	})
}

func TestGetRatings(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	author := seedUser(t, db, "baker")
	rec := seedRecipe(t, db, author, true)

	for i, name := range []string{"r1", "r2", "r3"} {
		u := seedUser(t, db, name)
		_, err := service.RateRecipe(ctx, rec.ID.String(), u.ID.String(), domain.RateRecipeRequest{Rating: i + 1})
		require.NoError(t, err)
	}

	rows, count, err := service.GetRatings(ctx, rec.ID.String(), "", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Len(t, rows, 2)
}

func TestDeleteRating(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	author := seedUser(t, db, "host")
	rater := seedUser(t, db, "guest")
	rec := seedRecipe(t, db, author, true)

	t.Run("No rating to delete", func(t *testing.T) {
		err := service.DeleteRating(ctx, rec.ID.String(), rater.ID.String())
		assert.ErrorIs(t, err, domain.ErrRatingNotFound)
	})

	t.Run("Delete existing rating", func(t *testing.T) {
		_, err := service.RateRecipe(ctx, rec.ID.String(), rater.ID.String(), domain.RateRecipeRequest{Rating: 3})
		require.NoError(t, err)

		require.NoError(t, service.DeleteRating(ctx, rec.ID.String(), rater.ID.String()))

		var count int64
		db.Model(&entities.RecipeRating{}).Where("recipe_id = ?", rec.ID).Count(&count)
		assert.Zero(t, count)
	})
}
