package search

import (
	"Recipe-Share-API/domain"
	"Recipe-Share-API/entities"
	"Recipe-Share-API/pkg/recipe"
	"context"
	"strings"

	"gorm.io/gorm"
)

type (
	UserRow struct {
		entities.User
		FollowersCount int64
		RecipesCount   int64
	}

	IngredientRow struct {
		Name        string
		RecipeCount int64
	}

	SearchRepository interface {
		SearchRecipes(ctx context.Context, q string, viewerID string, limit int) ([]recipe.RecipeRow, error)
		SearchUsers(ctx context.Context, q string, limit int) ([]UserRow, error)
		SearchIngredients(ctx context.Context, q string, limit int) ([]IngredientRow, error)
		AdvancedSearch(ctx context.Context, q domain.AdvancedSearchQuery, viewerID string) ([]recipe.RecipeRow, int64, error)
	}

	searchRepository struct {
		db *gorm.DB
	}
)

func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &searchRepository{db: db}
}

func likePattern(q string) string {
	return "%" + strings.ToLower(q) + "%"
}

func prefixPattern(q string) string {
	return strings.ToLower(q) + "%"
}

func (r *searchRepository) visibility(query *gorm.DB, viewerID string) *gorm.DB {
	if viewerID == "" {
		return query.Where("recipes.is_public = ?", true)
	}
	return query.Where("recipes.is_public = ? OR recipes.author_id = ?", true, viewerID)
}

// SearchRecipes matches titles and descriptions, title prefix matches first.
func (r *searchRepository) SearchRecipes(ctx context.Context, q string, viewerID string, limit int) ([]recipe.RecipeRow, error) {
	var rows []recipe.RecipeRow
	query := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Select(recipe.AggregateSelect+", "+
			"CASE WHEN LOWER(recipes.title) LIKE ? THEN 0 ELSE 1 END AS title_rank", prefixPattern(q)).
		Joins("JOIN users ON users.id = recipes.author_id")
	query = r.visibility(query, viewerID)
	if err := query.
		Where("LOWER(recipes.title) LIKE ? OR LOWER(recipes.description) LIKE ?", likePattern(q), likePattern(q)).
		Order("title_rank ASC, recipes.created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *searchRepository) SearchUsers(ctx context.Context, q string, limit int) ([]UserRow, error) {
	var rows []UserRow
	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Select("users.*, "+
			"(SELECT COUNT(*) FROM user_followers uf WHERE uf.following_id = users.id) AS followers_count, "+
			"(SELECT COUNT(*) FROM recipes r WHERE r.author_id = users.id AND r.is_public = true) AS recipes_count, "+
			"CASE WHEN LOWER(users.username) LIKE ? THEN 0 ELSE 1 END AS username_rank", prefixPattern(q)).
		Where("users.is_active = ? AND users.is_public_profile = ?", true, true).
		Where("LOWER(users.username) LIKE ? OR LOWER(users.first_name) LIKE ? OR LOWER(users.last_name) LIKE ?",
			likePattern(q), likePattern(q), likePattern(q)).
		Order("username_rank ASC, followers_count DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SearchIngredients groups matching ingredient names of public recipes with
// how many recipes use each.
func (r *searchRepository) SearchIngredients(ctx context.Context, q string, limit int) ([]IngredientRow, error) {
	var rows []IngredientRow
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeIngredient{}).
		Select("LOWER(recipe_ingredients.name) AS name, COUNT(DISTINCT recipe_ingredients.recipe_id) AS recipe_count").
		Joins("JOIN recipes ON recipes.id = recipe_ingredients.recipe_id").
		Where("recipes.is_public = ? AND LOWER(recipe_ingredients.name) LIKE ?", true, likePattern(q)).
		Group("LOWER(recipe_ingredients.name)").
		Order("recipe_count DESC, name ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

var advancedSortOrders = map[string]string{
	"newest":     "recipes.created_at DESC",
	"oldest":     "recipes.created_at ASC",
	"rating":     "average_rating DESC, ratings_count DESC",
	"popular":    "likes_count DESC, recipes.created_at DESC",
	"prep_time":  "recipes.prep_time_minutes ASC",
	"cook_time":  "recipes.cook_time_minutes ASC",
	"total_time": "(recipes.prep_time_minutes + recipes.cook_time_minutes) ASC",
	"title":      "recipes.title ASC",
}

func (r *searchRepository) advancedFilter(ctx context.Context, q domain.AdvancedSearchQuery, viewerID string) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Joins("JOIN users ON users.id = recipes.author_id")
	query = r.visibility(query, viewerID)

	if q.Query != "" {
		query = query.Where("LOWER(recipes.title) LIKE ? OR LOWER(recipes.description) LIKE ?",
			likePattern(q.Query), likePattern(q.Query))
	}
	for _, ing := range q.Ingredients {
		query = query.Where(
			"EXISTS (SELECT 1 FROM recipe_ingredients ri WHERE ri.recipe_id = recipes.id AND LOWER(ri.name) LIKE ?)",
			likePattern(ing),
		)
	}
	if len(q.Categories) > 0 {
		lowered := make([]string, 0, len(q.Categories))
		for _, c := range q.Categories {
			lowered = append(lowered, strings.ToLower(c))
		}
		query = query.Where(
			"EXISTS (SELECT 1 FROM recipe_categories rc JOIN categories c ON c.id = rc.category_id "+
				"WHERE rc.recipe_id = recipes.id AND LOWER(c.name) IN ?)",
			lowered,
		)
	}
	if q.Difficulty != "" {
		query = query.Where("recipes.difficulty = ?", q.Difficulty)
	}
	if q.MaxPrepTime > 0 {
		query = query.Where("recipes.prep_time_minutes <= ?", q.MaxPrepTime)
	}
	if q.MaxCookTime > 0 {
		query = query.Where("recipes.cook_time_minutes <= ?", q.MaxCookTime)
	}
	if q.MinRating > 0 {
		query = query.Where(
			"COALESCE((SELECT AVG(rr.rating) FROM recipe_ratings rr WHERE rr.recipe_id = recipes.id), 0) >= ?",
			q.MinRating,
		)
	}
	return query
}

func (r *searchRepository) AdvancedSearch(ctx context.Context, q domain.AdvancedSearchQuery, viewerID string) ([]recipe.RecipeRow, int64, error) {
	var count int64
	if err := r.advancedFilter(ctx, q, viewerID).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	sel := r.advancedFilter(ctx, q, viewerID).Select(recipe.AggregateSelect)

	order, ok := advancedSortOrders[q.Sort]
	if !ok {
		// relevance (and anything unknown) ranks prefix title matches first
		// when there is a text query, otherwise falls back to newest
		order = advancedSortOrders["newest"]
		if q.Query != "" {
			sel = sel.Select(
				recipe.AggregateSelect+", CASE WHEN LOWER(recipes.title) LIKE ? THEN 0 ELSE 1 END AS title_rank",
				prefixPattern(q.Query))
			order = "title_rank ASC, recipes.created_at DESC"
		}
	}

	var rows []recipe.RecipeRow
	if err := sel.
		Order(order).
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, count, nil
}
