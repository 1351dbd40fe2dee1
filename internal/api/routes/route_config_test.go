package routes

import (
	"Recipe-Share-API/entities"
	"Recipe-Share-API/internal/api/handlers"
	"Recipe-Share-API/internal/middleware"
	"Recipe-Share-API/internal/utils"
	"Recipe-Share-API/internal/utils/storage"
	"Recipe-Share-API/pkg/category"
	"Recipe-Share-API/pkg/collection"
	"Recipe-Share-API/pkg/comment"
	"Recipe-Share-API/pkg/feed"
	"Recipe-Share-API/pkg/follow"
	"Recipe-Share-API/pkg/interaction"
	"Recipe-Share-API/pkg/jwt"
	"Recipe-Share-API/pkg/recipe"
	"Recipe-Share-API/pkg/search"
	"Recipe-Share-API/pkg/shoppinglist"
	"Recipe-Share-API/pkg/statistics"
	"Recipe-Share-API/pkg/user"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) *fiber.App {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Category{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.RecipeCategory{},
		&entities.RecipeLike{},
		&entities.RecipeRating{},
		&entities.RecipeComment{},
		&entities.UserFollower{},
		&entities.ShoppingListItem{},
	))

	utils.InitValidator()
	app := fiber.New()
	s3 := storage.NewAwsS3()

	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	jwtService := jwt.NewJWTService()

	config := Config{
		App:         app,
		UserHandler: handlers.NewUserHandler(user.NewUserService(userRepository, jwtService, s3), utils.Validate),
		CategoryHandler: handlers.NewCategoryHandler(
			category.NewCategoryService(category.NewCategoryRepository(db))),
		RecipeHandler: handlers.NewRecipeHandler(
			recipe.NewRecipeService(recipeRepository, s3), utils.Validate),
		InteractionHandler: handlers.NewInteractionHandler(
			interaction.NewInteractionService(interaction.NewInteractionRepository(db), recipeRepository), utils.Validate),
		CommentHandler: handlers.NewCommentHandler(
			comment.NewCommentService(comment.NewCommentRepository(db), recipeRepository), utils.Validate),
		FollowHandler: handlers.NewFollowHandler(
			follow.NewFollowService(follow.NewFollowRepository(db), userRepository)),
		FeedHandler: handlers.NewFeedHandler(
			feed.NewFeedService(feed.NewFeedRepository(db), recipeRepository, nil)),
		ShoppingListHandler: handlers.NewShoppingListHandler(
			shoppinglist.NewShoppingListService(shoppinglist.NewShoppingListRepository(db), recipeRepository), utils.Validate),
		SearchHandler: handlers.NewSearchHandler(
			search.NewSearchService(search.NewSearchRepository(db), recipeRepository)),
		StatisticsHandler: handlers.NewStatisticsHandler(
			statistics.NewStatisticsService(statistics.NewStatisticsRepository(db), follow.NewFollowRepository(db))),
		CollectionHandler: handlers.NewCollectionHandler(
			collection.NewCollectionService(collection.NewCollectionRepository(db), recipeRepository)),
		AdminHandler: handlers.NewAdminHandler(db),
		Middleware:   middleware.NewMiddleware(userRepository, nil),
		JWTService:   jwtService,
	}
	config.Setup()
	return app
}

func jsonRequest(t *testing.T, method, target, token string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, res *http.Response) map[string]any {
	var out map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return out
}

func registerUser(t *testing.T, app *fiber.App, username string) string {
	res, err := app.Test(jsonRequest(t, fiber.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username":   username,
		"email":      username + "@example.com",
		"password":   "Password123!",
		"first_name": username,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, res.StatusCode)

	body := decodeBody(t, res)
	data := body["data"].(map[string]any)
	return data["token"].(string)
}

func TestAuthFlow(t *testing.T) {
	app := setupTestApp(t)

	token := registerUser(t, app, "flowuser")

	t.Run("Login", func(t *testing.T) {
		res, err := app.Test(jsonRequest(t, fiber.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"identifier": "flowuser",
			"password":   "Password123!",
		}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, res.StatusCode)
	})

	t.Run("Profile requires token", func(t *testing.T) {
		res, err := app.Test(jsonRequest(t, fiber.MethodGet, "/api/v1/auth/profile", "", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
	})

	t.Run("Profile with token", func(t *testing.T) {
		res, err := app.Test(jsonRequest(t, fiber.MethodGet, "/api/v1/auth/profile", token, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, res.StatusCode)

		body := decodeBody(t, res)
		data := body["data"].(map[string]any)
		assert.Equal(t, "flowuser", data["username"])
	})

	t.Run("Weak password rejected", func(t *testing.T) {
		res, err := app.Test(jsonRequest(t, fiber.MethodPost, "/api/v1/auth/register", "", map[string]string{
			"username":   "weakling",
			"email":      "weak@example.com",
			"password":   "short",
			"first_name": "Weak",
		}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
	})

	t.Run("Duplicate registration conflicts", func(t *testing.T) {
		res, err := app.Test(jsonRequest(t, fiber.MethodPost, "/api/v1/auth/register", "", map[string]string{
			"username":   "flowuser",
			"email":      "other@example.com",
			"password":   "Password123!",
			"first_name": "Dup",
		}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, res.StatusCode)
	})
}

func TestRecipeFlow(t *testing.T) {
	app := setupTestApp(t)
	token := registerUser(t, app, "recipeflow")

	recipeBody := map[string]any{
		"title":             "Integration Stew",
		"description":       "A stew cooked through the whole stack.",
		"prep_time_minutes": 15,
		"cook_time_minutes": 45,
		"servings":          4,
		"difficulty":        "Medium",
		"instructions":      []string{"Chop", "Simmer"},
		"ingredients": []map[string]any{
			{"name": "Beef", "quantity": 500, "unit": "g"},
		},
	}

	t.Run("Create requires auth", func(t *testing.T) {
		res, err := app.Test(jsonRequest(t, fiber.MethodPost, "/api/v1/recipes", "", recipeBody))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
	})

	var recipeID string
	t.Run("Create", func(t *testing.T) {
		res, err := app.Test(jsonRequest(t, fiber.MethodPost, "/api/v1/recipes", token, recipeBody))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusCreated, res.StatusCode)

		body := decodeBody(t, res)
		data := body["data"].(map[string]any)
		recipeID = data["id"].(string)
		assert.Equal(t, "Integration Stew", data["title"])
	})

	t.Run("Anonymous listing sees it", func(t *testing.T) {
		res, err := app.Test(jsonRequest(t, fiber.MethodGet, "/api/v1/recipes", "", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, res.StatusCode)

		body := decodeBody(t, res)
		data := body["data"].(map[string]any)
		recipes := data["recipes"].([]any)
		assert.Len(t, recipes, 1)
	})

	t.Run("Like own recipe via another account", func(t *testing.T) {
		likerToken := registerUser(t, app, "liker")
		res, err := app.Test(jsonRequest(t, fiber.MethodPost, fmt.Sprintf("/api/v1/recipes/%s/like", recipeID), likerToken, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, res.StatusCode)

		body := decodeBody(t, res)
		data := body["data"].(map[string]any)
		assert.Equal(t, true, data["liked"])
		assert.Equal(t, float64(1), data["likes_count"])
	})

	t.Run("Unknown recipe 404", func(t *testing.T) {
		res, err := app.Test(jsonRequest(t, fiber.MethodGet, "/api/v1/recipes/2f9d7b96-0000-0000-0000-000000000000", "", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
	})

	t.Run("Ping", func(t *testing.T) {
		res, err := app.Test(jsonRequest(t, fiber.MethodGet, "/api/ping", "", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, res.StatusCode)
	})
}
