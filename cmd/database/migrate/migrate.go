package migration

import (
	"Recipe-Share-API/entities"
	"log"

	"gorm.io/gorm"
)

func models() []interface{} {
	return []interface{}{
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
	}
}

func Migrate(db *gorm.DB) error {
	for _, model := range models() {
		if err := db.AutoMigrate(model); err != nil {
			return err
		}
	}

	if err := SeedCategories(db); err != nil {
		return err
	}

	log.Println("database migration complete")
	return nil
}

var defaultCategories = []entities.Category{
	{Name: "Breakfast", Description: "Morning meals and brunch ideas", Color: "#FFB347", Icon: "sunrise", IsActive: true},
	{Name: "Lunch", Description: "Midday meals", Color: "#77DD77", Icon: "sun", IsActive: true},
	{Name: "Dinner", Description: "Evening meals", Color: "#779ECB", Icon: "moon", IsActive: true},
	{Name: "Dessert", Description: "Sweet treats and desserts", Color: "#F49AC2", Icon: "cake", IsActive: true},
	{Name: "Appetizer", Description: "Starters and small bites", Color: "#FFD96A", Icon: "utensils", IsActive: true},
	{Name: "Snack", Description: "Quick bites between meals", Color: "#AEC6CF", Icon: "cookie", IsActive: true},
	{Name: "Soup", Description: "Soups, stews and broths", Color: "#CFCFC4", Icon: "bowl", IsActive: true},
	{Name: "Salad", Description: "Fresh and healthy salads", Color: "#B2EC5D", Icon: "leaf", IsActive: true},
	{Name: "Beverage", Description: "Drinks, smoothies and cocktails", Color: "#C23B22", Icon: "cup", IsActive: true},
	{Name: "Baking", Description: "Breads, pastries and baked goods", Color: "#DEA5A4", Icon: "bread", IsActive: true},
	{Name: "Vegetarian", Description: "Meat-free recipes", Color: "#03C03C", Icon: "sprout", IsActive: true},
	{Name: "Vegan", Description: "Plant-based recipes", Color: "#66B032", Icon: "plant", IsActive: true},
	{Name: "Gluten-Free", Description: "Recipes without gluten", Color: "#E6A817", Icon: "wheat-off", IsActive: true},
	{Name: "Seafood", Description: "Fish and shellfish dishes", Color: "#0892D0", Icon: "fish", IsActive: true},
	{Name: "Grilling", Description: "BBQ and grilled dishes", Color: "#FF6961", Icon: "flame", IsActive: true},
	{Name: "Slow Cooker", Description: "Set-and-forget recipes", Color: "#966FD6", Icon: "timer", IsActive: true},
	{Name: "Italian", Description: "Italian cuisine", Color: "#008C45", Icon: "pizza", IsActive: true},
	{Name: "Asian", Description: "Asian cuisine", Color: "#DE2910", Icon: "noodles", IsActive: true},
	{Name: "Mexican", Description: "Mexican cuisine", Color: "#006847", Icon: "pepper", IsActive: true},
	{Name: "Mediterranean", Description: "Mediterranean cuisine", Color: "#0D5EAF", Icon: "olive", IsActive: true},
}

// SeedCategories inserts the default category set, skipping names that
// already exist so re-running migrations stays safe.
func SeedCategories(db *gorm.DB) error {
	for _, category := range defaultCategories {
		var count int64
		if err := db.Model(&entities.Category{}).
			Where("name = ?", category.Name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&category).Error; err != nil {
			return err
		}
	}
	return nil
}

// Reset drops every application table and migrates from scratch.
func Reset(db *gorm.DB) error {
	if err := db.Migrator().DropTable(models()...); err != nil {
		return err
	}
	return Migrate(db)
}

// ForceReset truncates all data but keeps the schema, then reseeds the
// categories.
func ForceReset(db *gorm.DB) error {
	ordered := []interface{}{
		&entities.ShoppingListItem{},
		&entities.UserFollower{},
		&entities.RecipeComment{},
		&entities.RecipeRating{},
		&entities.RecipeLike{},
		&entities.RecipeCategory{},
		&entities.RecipeIngredient{},
		&entities.Recipe{},
		&entities.Category{},
		&entities.User{},
	}
	for _, model := range ordered {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}
	return SeedCategories(db)
}

// Status reports which application tables exist.
func Status(db *gorm.DB) ([]string, error) {
	tables := make([]string, 0, len(models()))
	for _, model := range models() {
		if db.Migrator().HasTable(model) {
			stmt := &gorm.Statement{DB: db}
			if err := stmt.Parse(model); err != nil {
				return nil, err
			}
			tables = append(tables, stmt.Schema.Table)
		}
	}
	return tables, nil
}
