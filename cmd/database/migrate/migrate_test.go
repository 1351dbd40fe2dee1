package migration

import (
	"Recipe-Share-API/entities"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestMigrateSeedsCategories(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	var count int64
	require.NoError(t, db.Model(&entities.Category{}).Count(&count).Error)
	assert.Equal(t, int64(len(defaultCategories)), count)

	// running again must not duplicate the seed
	require.NoError(t, Migrate(db))
	require.NoError(t, db.Model(&entities.Category{}).Count(&count).Error)
	assert.Equal(t, int64(len(defaultCategories)), count)
}

func TestStatus(t *testing.T) {
	db := openTestDB(t)

	tables, err := Status(db)
	require.NoError(t, err)
	assert.Empty(t, tables)

	require.NoError(t, Migrate(db))

	tables, err = Status(db)
	require.NoError(t, err)
	assert.Contains(t, tables, "users")
	assert.Contains(t, tables, "recipes")
	assert.Contains(t, tables, "categories")
}

func TestForceResetKeepsSchema(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	u := entities.User{ID: uuid.New(), Username: "gone", Email: "gone@example.com", IsActive: true}
	require.NoError(t, db.Create(&u).Error)
	r := entities.Recipe{ID: uuid.New(), AuthorID: u.ID, Title: "Wiped", IsPublic: true}
	require.NoError(t, db.Create(&r).Error)

	require.NoError(t, ForceReset(db))

	var users, recipes, categories int64
	require.NoError(t, db.Model(&entities.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&entities.Recipe{}).Count(&recipes).Error)
	require.NoError(t, db.Model(&entities.Category{}).Count(&categories).Error)
	assert.Zero(t, users)
	assert.Zero(t, recipes)
	assert.Equal(t, int64(len(defaultCategories)), categories)
}

func TestReset(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	u := entities.User{ID: uuid.New(), Username: "temp", Email: "temp@example.com", IsActive: true}
	require.NoError(t, db.Create(&u).Error)

	require.NoError(t, Reset(db))

	var users int64
	require.NoError(t, db.Model(&entities.User{}).Count(&users).Error)
	assert.Zero(t, users)

	tables, err := Status(db)
	require.NoError(t, err)
	assert.Contains(t, tables, "users")
}
