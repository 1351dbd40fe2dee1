package config

import (
	"Recipe-Share-API/internal/api/handlers"
	"Recipe-Share-API/internal/api/routes"
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
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB, rdb *redis.Client) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        50,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	categoryRepository := category.NewCategoryRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	interactionRepository := interaction.NewInteractionRepository(db)
	commentRepository := comment.NewCommentRepository(db)
	followRepository := follow.NewFollowRepository(db)
	feedRepository := feed.NewFeedRepository(db)
	shoppingListRepository := shoppinglist.NewShoppingListRepository(db)
	searchRepository := search.NewSearchRepository(db)
	statisticsRepository := statistics.NewStatisticsRepository(db)
	collectionRepository := collection.NewCollectionRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	categoryService := category.NewCategoryService(categoryRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, s3)
	interactionService := interaction.NewInteractionService(interactionRepository, recipeRepository)
	commentService := comment.NewCommentService(commentRepository, recipeRepository)
	followService := follow.NewFollowService(followRepository, userRepository)
	feedService := feed.NewFeedService(feedRepository, recipeRepository, rdb)
	shoppingListService := shoppinglist.NewShoppingListService(shoppingListRepository, recipeRepository)
	searchService := search.NewSearchService(searchRepository, recipeRepository)
	statisticsService := statistics.NewStatisticsService(statisticsRepository, followRepository)
	collectionService := collection.NewCollectionService(collectionRepository, recipeRepository)

	middlewares := middleware.NewMiddleware(userRepository, rdb)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	interactionHandler := handlers.NewInteractionHandler(interactionService, validator)
	commentHandler := handlers.NewCommentHandler(commentService, validator)
	followHandler := handlers.NewFollowHandler(followService)
	feedHandler := handlers.NewFeedHandler(feedService)
	shoppingListHandler := handlers.NewShoppingListHandler(shoppingListService, validator)
	searchHandler := handlers.NewSearchHandler(searchService)
	statisticsHandler := handlers.NewStatisticsHandler(statisticsService)
	collectionHandler := handlers.NewCollectionHandler(collectionService)
	adminHandler := handlers.NewAdminHandler(db)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		CategoryHandler:     categoryHandler,
		RecipeHandler:       recipeHandler,
		InteractionHandler:  interactionHandler,
		CommentHandler:      commentHandler,
		FollowHandler:       followHandler,
		FeedHandler:         feedHandler,
		ShoppingListHandler: shoppingListHandler,
		SearchHandler:       searchHandler,
		StatisticsHandler:   statisticsHandler,
		CollectionHandler:   collectionHandler,
		AdminHandler:        adminHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
