package recipe

import (
	"Recipe-Share-API/domain"
	"Recipe-Share-API/entities"
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// RecipeRow is a recipe joined with its author and the read-time
	// aggregates.
	RecipeRow struct {
		entities.Recipe
		AuthorUsername  string
		AuthorFirstName string
		AuthorLastName  string
		AuthorImage     string
		LikesCount      int64
		CommentsCount   int64
		RatingsCount    int64
		AverageRating   float64
	}

	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []entities.RecipeIngredient, categoryIDs []int) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []entities.RecipeIngredient, categoryIDs []int) error
		DeleteRecipe(ctx context.Context, id string) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipeRow(ctx context.Context, id string) (*RecipeRow, error)
		GetRecipes(ctx context.Context, q domain.RecipeListQuery, viewerID string) ([]RecipeRow, int64, error)
		GetIngredients(ctx context.Context, recipeID string) ([]entities.RecipeIngredient, error)
		GetRecipeCategories(ctx context.Context, recipeID string) ([]entities.Category, error)
		IsLiked(ctx context.Context, userID, recipeID string) (bool, error)
		GetViewerRating(ctx context.Context, userID, recipeID string) (int, error)
		UpdateImageURL(ctx context.Context, recipeID, url string) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// AggregateSelect joins a recipe with its author columns and read-time
// aggregates; the feed, search and collection listings reuse it.
const AggregateSelect = "recipes.*, " +
	"users.username AS author_username, " +
	"users.first_name AS author_first_name, " +
	"users.last_name AS author_last_name, " +
	"users.profile_image_url AS author_image, " +
	"(SELECT COUNT(*) FROM recipe_likes rl WHERE rl.recipe_id = recipes.id) AS likes_count, " +
	"(SELECT COUNT(*) FROM recipe_comments rc WHERE rc.recipe_id = recipes.id) AS comments_count, " +
	"(SELECT COUNT(*) FROM recipe_ratings rr WHERE rr.recipe_id = recipes.id) AS ratings_count, " +
	"COALESCE((SELECT AVG(rr.rating) FROM recipe_ratings rr WHERE rr.recipe_id = recipes.id), 0) AS average_rating"

// sortColumns is the complete set of orderings the listing accepts; anything
// else falls back to created_at.
var sortColumns = map[string]string{
	"created_at":        "recipes.created_at",
	"title":             "recipes.title",
	"prep_time_minutes": "recipes.prep_time_minutes",
	"cook_time_minutes": "recipes.cook_time_minutes",
	"difficulty":        "recipes.difficulty",
}

func replaceIngredients(tx *gorm.DB, recipeID uuid.UUID, ingredients []entities.RecipeIngredient) error {
	if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.RecipeIngredient{}).Error; err != nil {
		return err
	}
	for i := range ingredients {
		ingredients[i].ID = uuid.New()
		ingredients[i].RecipeID = recipeID
		ingredients[i].OrderIndex = i + 1
	}
	if len(ingredients) == 0 {
		return nil
	}
	return tx.Create(&ingredients).Error
}

func replaceCategories(tx *gorm.DB, recipeID uuid.UUID, categoryIDs []int) error {
	if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.RecipeCategory{}).Error; err != nil {
		return err
	}
	seen := make(map[int]bool, len(categoryIDs))
	links := make([]entities.RecipeCategory, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		links = append(links, entities.RecipeCategory{RecipeID: recipeID, CategoryID: id})
	}
	if len(links) == 0 {
		return nil
	}
	return tx.Create(&links).Error
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []entities.RecipeIngredient, categoryIDs []int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		if err := replaceIngredients(tx, recipe.ID, ingredients); err != nil {
			return err
		}
		return replaceCategories(tx, recipe.ID, categoryIDs)
	})
}

// UpdateRecipe replaces the owned collections entirely; the ingredient order
// indices are reassigned 1..n.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []entities.RecipeIngredient, categoryIDs []int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(recipe).Error; err != nil {
			return err
		}
		if err := replaceIngredients(tx, recipe.ID, ingredients); err != nil {
			return err
		}
		return replaceCategories(tx, recipe.ID, categoryIDs)
	})
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeCategory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeRating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeComment{}).Error; err != nil {
			return err
		}
		// shopping list items survive, their recipe link is cleared
		if err := tx.Model(&entities.ShoppingListItem{}).
			Where("recipe_id = ?", id).
			Update("recipe_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Recipe{}).Error
	})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeRow(ctx context.Context, id string) (*RecipeRow, error) {
	var row RecipeRow
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Select(AggregateSelect).
		Joins("JOIN users ON users.id = recipes.author_id").
		Where("recipes.id = ?", id).
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *recipeRepository) listQuery(ctx context.Context, q domain.RecipeListQuery, viewerID string) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Joins("JOIN users ON users.id = recipes.author_id")

	// visibility first, every other filter ANDed on top
	if viewerID == "" {
		query = query.Where("recipes.is_public = ?", true)
	} else {
		query = query.Where("recipes.is_public = ? OR recipes.author_id = ?", true, viewerID)
	}

	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		query = query.Where("LOWER(recipes.title) LIKE ? OR LOWER(recipes.description) LIKE ?", pattern, pattern)
	}
	if q.Category != "" {
		query = query.Where(
			"EXISTS (SELECT 1 FROM recipe_categories rc JOIN categories c ON c.id = rc.category_id "+
				"WHERE rc.recipe_id = recipes.id AND LOWER(c.name) = ?)",
			strings.ToLower(q.Category),
		)
	}
	if q.Difficulty != "" {
		query = query.Where("recipes.difficulty = ?", q.Difficulty)
	}
	if q.AuthorID != "" {
		query = query.Where("recipes.author_id = ?", q.AuthorID)
	}
	if q.Featured != nil {
		query = query.Where("recipes.is_featured = ?", *q.Featured)
	}
	return query
}

func (r *recipeRepository) GetRecipes(ctx context.Context, q domain.RecipeListQuery, viewerID string) ([]RecipeRow, int64, error) {
	var count int64
	if err := r.listQuery(ctx, q, viewerID).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[q.Sort]
	if !ok {
		column = "recipes.created_at"
	}
	direction := "DESC"
	if strings.EqualFold(q.Order, "asc") {
		direction = "ASC"
	}

	var rows []RecipeRow
	offset := (q.Page - 1) * q.Limit
	if err := r.listQuery(ctx, q, viewerID).
		Select(AggregateSelect).
		Order(column + " " + direction).
		Offset(offset).
		Limit(q.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, count, nil
}

func (r *recipeRepository) GetIngredients(ctx context.Context, recipeID string) ([]entities.RecipeIngredient, error) {
	var ingredients []entities.RecipeIngredient
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("order_index asc").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *recipeRepository) GetRecipeCategories(ctx context.Context, recipeID string) ([]entities.Category, error) {
	var categories []entities.Category
	if err := r.db.WithContext(ctx).
		Model(&entities.Category{}).
		Joins("JOIN recipe_categories rc ON rc.category_id = categories.id").
		Where("rc.recipe_id = ?", recipeID).
		Order("name asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *recipeRepository) IsLiked(ctx context.Context, userID, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeLike{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) GetViewerRating(ctx context.Context, userID, recipeID string) (int, error) {
	var rating entities.RecipeRating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&rating).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, err
	}
	return rating.Rating, nil
}

func (r *recipeRepository) UpdateImageURL(ctx context.Context, recipeID, url string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", recipeID).
		Update("image_url", url).Error
}
