package routes

import (
	"Recipe-Share-API/internal/api/handlers"
	"Recipe-Share-API/internal/middleware"
	"Recipe-Share-API/pkg/jwt"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	CategoryHandler     handlers.CategoryHandler
	RecipeHandler       handlers.RecipeHandler
	InteractionHandler  handlers.InteractionHandler
	CommentHandler      handlers.CommentHandler
	FollowHandler       handlers.FollowHandler
	FeedHandler         handlers.FeedHandler
	ShoppingListHandler handlers.ShoppingListHandler
	SearchHandler       handlers.SearchHandler
	StatisticsHandler   handlers.StatisticsHandler
	CollectionHandler   handlers.CollectionHandler
	AdminHandler        handlers.AdminHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Users()
	c.Recipes()
	c.Comments()
	c.Categories()
	c.Feed()
	c.ShoppingList()
	c.Search()
	c.Statistics()
	c.Collections()
	c.Admin()
	c.GuestRoute()
}

func (c *Config) auth() fiber.Handler {
	return c.Middleware.AuthMiddleware(c.JWTService)
}

func (c *Config) optionalAuth() fiber.Handler {
	return c.Middleware.OptionalAuthMiddleware(c.JWTService)
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Get("/profile", c.auth(), c.UserHandler.Me)
		auth.Get("/verify", c.auth(), func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"user_id": c.Locals("user_id"),
				"role":    c.Locals("role"),
			})
		})
		auth.Put("/change-password", c.auth(), c.UserHandler.ChangePassword)
	}
}

func (c *Config) Users() {
	users := c.App.Group("/api/v1/users")
	{
		users.Get("/suggestions", c.auth(), c.FollowHandler.GetSuggestions)
		users.Put("/profile", c.auth(), c.UserHandler.UpdateProfile)
		users.Post("/profile-image", c.auth(), c.UserHandler.UploadProfileImage)
		users.Get("/:username", c.optionalAuth(), c.UserHandler.GetPublicProfile)
		users.Post("/:username/follow", c.auth(), c.FollowHandler.ToggleFollow)
		users.Get("/:username/followers", c.optionalAuth(), c.FollowHandler.GetFollowers)
		users.Get("/:username/following", c.optionalAuth(), c.FollowHandler.GetFollowing)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Get("", c.optionalAuth(), c.RecipeHandler.GetRecipes)
		recipes.Post("", c.auth(), c.RecipeHandler.CreateRecipe)
		recipes.Get("/:id", c.optionalAuth(), c.RecipeHandler.GetRecipeDetail)
		recipes.Put("/:id", c.auth(), c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.auth(), c.RecipeHandler.DeleteRecipe)
		recipes.Post("/:id/image", c.auth(), c.RecipeHandler.UploadRecipeImage)

		recipes.Post("/:id/like", c.auth(),
			c.Middleware.RateLimitMiddleware("like", 60, time.Minute),
			c.InteractionHandler.ToggleLike)
		recipes.Post("/:id/rate", c.auth(),
			c.Middleware.RateLimitMiddleware("rate", 30, time.Minute),
			c.InteractionHandler.RateRecipe)
		recipes.Get("/:id/ratings", c.optionalAuth(), c.InteractionHandler.GetRatings)
		recipes.Delete("/:id/rating", c.auth(), c.InteractionHandler.DeleteRating)

		recipes.Post("/:id/comments", c.auth(),
			c.Middleware.RateLimitMiddleware("comment", 30, time.Minute),
			c.CommentHandler.CreateComment)
		recipes.Get("/:id/comments", c.optionalAuth(), c.CommentHandler.GetComments)
	}
}

func (c *Config) Comments() {
	comments := c.App.Group("/api/v1/comments", c.auth())
	{
		comments.Put("/:id", c.CommentHandler.UpdateComment)
		comments.Delete("/:id", c.CommentHandler.DeleteComment)
	}
}

func (c *Config) Categories() {
	categories := c.App.Group("/api/v1/categories")
	{
		categories.Get("", c.CategoryHandler.GetCategories)
		categories.Get("/:id", c.CategoryHandler.GetCategoryByID)
	}
}

func (c *Config) Feed() {
	c.App.Get("/api/v1/feed", c.auth(), c.FeedHandler.GetFeed)
	c.App.Get("/api/v1/trending", c.optionalAuth(), c.FeedHandler.GetTrending)
	c.App.Get("/api/v1/activity", c.auth(), c.FeedHandler.GetActivity)
}

func (c *Config) ShoppingList() {
	list := c.App.Group("/api/v1/shopping-list", c.auth())
	{
		list.Get("", c.ShoppingListHandler.GetItems)
		list.Post("", c.ShoppingListHandler.AddItem)
		list.Post("/recipes/:id", c.ShoppingListHandler.AddRecipeToList)
		list.Delete("/completed/clear", c.ShoppingListHandler.ClearCompleted)
		list.Delete("/all/clear", c.ShoppingListHandler.ClearAll)
		list.Put("/:id", c.ShoppingListHandler.UpdateItem)
		list.Patch("/:id/toggle", c.ShoppingListHandler.ToggleItem)
		list.Delete("/:id", c.ShoppingListHandler.DeleteItem)
	}
}

func (c *Config) Search() {
	c.App.Get("/api/v1/search", c.optionalAuth(), c.SearchHandler.GlobalSearch)
	c.App.Get("/api/v1/search/recipes", c.optionalAuth(), c.SearchHandler.AdvancedSearch)
}

func (c *Config) Statistics() {
	c.App.Get("/api/v1/statistics/platform", c.StatisticsHandler.GetPlatformStats)
	c.App.Get("/api/v1/statistics/user", c.auth(), c.StatisticsHandler.GetUserStats)
}

func (c *Config) Collections() {
	collections := c.App.Group("/api/v1/collections", c.auth())
	{
		collections.Get("/favorites", c.CollectionHandler.GetFavorites)
		collections.Get("/history", c.CollectionHandler.GetHistory)
	}
}

func (c *Config) Admin() {
	admin := c.App.Group("/api/v1/admin")
	{
		admin.Post("/init", c.AdminHandler.InitDatabase)
		admin.Post("/reset", c.AdminHandler.ResetDatabase)
		admin.Post("/force-reset", c.AdminHandler.ForceResetDatabase)
		admin.Get("/status", c.AdminHandler.GetDatabaseStatus)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
