package category

import (
	"Recipe-Share-API/domain"
	"Recipe-Share-API/entities"
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
	))
	return db
}

func TestGetCategories(t *testing.T) {
	db := setupTestDB(t)
	service := NewCategoryService(NewCategoryRepository(db))
	ctx := context.Background()

	active := entities.Category{Name: "Breakfast", IsActive: true}
	retired := entities.Category{Name: "Retired", IsActive: false}
	require.NoError(t, db.Create(&active).Error)
	require.NoError(t, db.Create(&retired).Error)

	author := entities.User{ID: uuid.New(), Username: "author", Email: "a@example.com", IsActive: true}
	require.NoError(t, db.Create(&author).Error)

	pub := entities.Recipe{ID: uuid.New(), AuthorID: author.ID, Title: "Omelette", IsPublic: true}
	priv := entities.Recipe{ID: uuid.New(), AuthorID: author.ID, Title: "Secret", IsPublic: false}
	require.NoError(t, db.Create(&pub).Error)
	require.NoError(t, db.Create(&priv).Error)
	require.NoError(t, db.Create(&entities.RecipeCategory{RecipeID: pub.ID, CategoryID: active.ID}).Error)
	require.NoError(t, db.Create(&entities.RecipeCategory{RecipeID: priv.ID, CategoryID: active.ID}).Error)

	t.Run("Active only hides retired categories", func(t *testing.T) {
		rows, err := service.GetCategories(ctx, true)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Breakfast", rows[0].Name)
		// only public recipes contribute to the count
		assert.Equal(t, int64(1), rows[0].RecipeCount)
	})

	t.Run("Include inactive", func(t *testing.T) {
		rows, err := service.GetCategories(ctx, false)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("By ID", func(t *testing.T) {
		row, err := service.GetCategoryByID(ctx, active.ID)
		require.NoError(t, err)
		assert.Equal(t, "Breakfast", row.Name)
	})

	t.Run("Unknown ID", func(t *testing.T) {
		_, err := service.GetCategoryByID(ctx, 9999)
		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	})
}
