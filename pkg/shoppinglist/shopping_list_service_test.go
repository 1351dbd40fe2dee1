package shoppinglist

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
		&entities.RecipeIngredient{},
		&entities.ShoppingListItem{},
	))
	return db
}

func newTestService(t *testing.T) (ShoppingListService, *gorm.DB) {
	db := setupTestDB(t)
	return NewShoppingListService(NewShoppingListRepository(db), recipe.NewRecipeRepository(db)), db
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

func seedRecipeWithIngredients(t *testing.T, db *gorm.DB, author *entities.User, public bool, ingredients []entities.RecipeIngredient) *entities.Recipe {
	r := entities.Recipe{
		ID:       uuid.New(),
		AuthorID: author.ID,
		Title:    "Pantry Pasta",
		Servings: 2,
		IsPublic: public,
	}
	require.NoError(t, db.Create(&r).Error)
	for i := range ingredients {
		ingredients[i].ID = uuid.New()
		ingredients[i].RecipeID = r.ID
		ingredients[i].OrderIndex = i + 1
		require.NoError(t, db.Create(&ingredients[i]).Error)
	}
	return &r
}

func TestAddItem(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	u := seedUser(t, db, "shopper")

	t.Run("Manual item without recipe", func(t *testing.T) {
		qty := 2.0
		res, err := service.AddItem(ctx, u.ID.String(), domain.ShoppingListItemRequest{
			IngredientName: "Milk",
			Quantity:       &qty,
			Unit:           "l",
		})
		require.NoError(t, err)
		assert.Equal(t, "Milk", res.IngredientName)
		require.NotNil(t, res.Quantity)
		assert.Equal(t, 2.0, *res.Quantity)
		assert.False(t, res.IsCompleted)
	})

	t.Run("Item linked to a recipe", func(t *testing.T) {
		rec := seedRecipeWithIngredients(t, db, u, true, nil)
		res, err := service.AddItem(ctx, u.ID.String(), domain.ShoppingListItemRequest{
			IngredientName: "Basil",
			RecipeID:       rec.ID.String(),
		})
		require.NoError(t, err)
		assert.Equal(t, rec.ID.String(), res.RecipeID)
		assert.Equal(t, "Pantry Pasta", res.RecipeTitle)
	})

	t.Run("Unknown recipe rejected", func(t *testing.T) {
		_, err := service.AddItem(ctx, u.ID.String(), domain.ShoppingListItemRequest{
			IngredientName: "Basil",
			RecipeID:       uuid.NewString(),
		})
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})
}

func TestGetItems(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	u := seedUser(t, db, "lister")

	first, err := service.AddItem(ctx, u.ID.String(), domain.ShoppingListItemRequest{IngredientName: "Eggs"})
	require.NoError(t, err)
	_, err = service.AddItem(ctx, u.ID.String(), domain.ShoppingListItemRequest{IngredientName: "Flour"})
	require.NoError(t, err)

	_, err = service.ToggleItem(ctx, u.ID.String(), first.ID)
	require.NoError(t, err)

	t.Run("All items, open before completed", func(t *testing.T) {
		items, err := service.GetItems(ctx, u.ID.String(), nil)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Flour", items[0].IngredientName)
		assert.Equal(t, "Eggs", items[1].IngredientName)
		assert.True(t, items[1].IsCompleted)
	})

	t.Run("Completed filter", func(t *testing.T) {
		completed := true
		items, err := service.GetItems(ctx, u.ID.String(), &completed)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Eggs", items[0].IngredientName)
	})

	t.Run("Open filter", func(t *testing.T) {
		open := false
		items, err := service.GetItems(ctx, u.ID.String(), &open)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Flour", items[0].IngredientName)
	})
}

func TestUpdateItem(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	u := seedUser(t, db, "editor")
	other := seedUser(t, db, "intruder")

	item, err := service.AddItem(ctx, u.ID.String(), domain.ShoppingListItemRequest{IngredientName: "Rice"})
	require.NoError(t, err)

	t.Run("Empty patch rejected", func(t *testing.T) {
		_, err := service.UpdateItem(ctx, u.ID.String(), item.ID, domain.ShoppingListItemPatch{})
		assert.ErrorIs(t, err, domain.ErrEmptyUpdate)
	})

	t.Run("Patch applies only sent fields", func(t *testing.T) {
		name := "Brown rice"
		qty := 0.5
		res, err := service.UpdateItem(ctx, u.ID.String(), item.ID, domain.ShoppingListItemPatch{
			IngredientName: &name,
			Quantity:       &qty,
		})
		require.NoError(t, err)
		assert.Equal(t, "Brown rice", res.IngredientName)
		require.NotNil(t, res.Quantity)
		assert.Equal(t, 0.5, *res.Quantity)
	})

	t.Run("Items are scoped to their owner", func(t *testing.T) {
		name := "stolen"
		_, err := service.UpdateItem(ctx, other.ID.String(), item.ID, domain.ShoppingListItemPatch{IngredientName: &name})
		assert.ErrorIs(t, err, domain.ErrShoppingItemNotFound)
	})
}

func TestAddRecipeToList(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	cook := seedUser(t, db, "cook")
	visitor := seedUser(t, db, "visitor")

	rec := seedRecipeWithIngredients(t, db, cook, true, []entities.RecipeIngredient{
		{Name: "Spaghetti", Quantity: 200, Unit: "g"},
		{Name: "Parmesan", Quantity: 50, Unit: "g"},
		{Name: "Pepper", Quantity: 0, Unit: ""},
	})

	t.Run("Ingredients copied with multiplier", func(t *testing.T) {
		items, err := service.AddRecipeToList(ctx, visitor.ID.String(), rec.ID.String(), 2)
		require.NoError(t, err)
		require.Len(t, items, 3)

		byName := map[string]domain.ShoppingListItemResponse{}
		for _, it := range items {
			byName[it.IngredientName] = it
			assert.Equal(t, rec.ID.String(), it.RecipeID)
			assert.Equal(t, "Pantry Pasta", it.RecipeTitle)
		}
		require.NotNil(t, byName["Spaghetti"].Quantity)
		assert.Equal(t, 400.0, *byName["Spaghetti"].Quantity)
		require.NotNil(t, byName["Parmesan"].Quantity)
		assert.Equal(t, 100.0, *byName["Parmesan"].Quantity)
		assert.Nil(t, byName["Pepper"].Quantity)
	})

	t.Run("Zero multiplier defaults to one", func(t *testing.T) {
		items, err := service.AddRecipeToList(ctx, visitor.ID.String(), rec.ID.String(), 0)
		require.NoError(t, err)

		var spaghetti *domain.ShoppingListItemResponse
		for i := range items {
			if items[i].IngredientName == "Spaghetti" {
				spaghetti = &items[i]
			}
		}
		require.NotNil(t, spaghetti)
		assert.Equal(t, 200.0, *spaghetti.Quantity)
	})

	t.Run("Recipe without ingredients", func(t *testing.T) {
		empty := seedRecipeWithIngredients(t, db, cook, true, nil)
		_, err := service.AddRecipeToList(ctx, visitor.ID.String(), empty.ID.String(), 1)
		assert.ErrorIs(t, err, domain.ErrRecipeWithoutIngredients)
	})

	t.Run("Private recipe denied", func(t *testing.T) {
		hidden := seedRecipeWithIngredients(t, db, cook, false, []entities.RecipeIngredient{
			{Name: "Secret spice", Quantity: 1, Unit: "tsp"},
		})
		_, err := service.AddRecipeToList(ctx, visitor.ID.String(), hidden.ID.String(), 1)
		assert.ErrorIs(t, err, domain.ErrRecipeAccessDenied)
	})
}

func TestClearOperations(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	u := seedUser(t, db, "cleaner")

	a, err := service.AddItem(ctx, u.ID.String(), domain.ShoppingListItemRequest{IngredientName: "A"})
	require.NoError(t, err)
	_, err = service.AddItem(ctx, u.ID.String(), domain.ShoppingListItemRequest{IngredientName: "B"})
	require.NoError(t, err)
	_, err = service.AddItem(ctx, u.ID.String(), domain.ShoppingListItemRequest{IngredientName: "C"})
	require.NoError(t, err)

	_, err = service.ToggleItem(ctx, u.ID.String(), a.ID)
	require.NoError(t, err)

	t.Run("Clear completed", func(t *testing.T) {
		removed, err := service.ClearCompleted(ctx, u.ID.String())
		require.NoError(t, err)
		assert.Equal(t, int64(1), removed)

		items, err := service.GetItems(ctx, u.ID.String(), nil)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("Clear all", func(t *testing.T) {
		removed, err := service.ClearAll(ctx, u.ID.String())
		require.NoError(t, err)
		assert.Equal(t, int64(2), removed)

		items, err := service.GetItems(ctx, u.ID.String(), nil)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("Delete unknown item", func(t *testing.T) {
		err := service.DeleteItem(ctx, u.ID.String(), uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrShoppingItemNotFound)
	})
}
