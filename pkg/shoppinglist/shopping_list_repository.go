package shoppinglist

import (
	"Recipe-Share-API/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ItemRow struct {
		entities.ShoppingListItem
		RecipeTitle string
	}

	ShoppingListRepository interface {
		GetItems(ctx context.Context, userID string, completed *bool) ([]ItemRow, error)
		GetItemByID(ctx context.Context, userID, itemID string) (*entities.ShoppingListItem, error)
		CreateItem(ctx context.Context, item *entities.ShoppingListItem) error
		CreateItems(ctx context.Context, items []entities.ShoppingListItem) error
		UpdateItem(ctx context.Context, item *entities.ShoppingListItem) error
		DeleteItem(ctx context.Context, userID, itemID string) (int64, error)
		ClearCompleted(ctx context.Context, userID string) (int64, error)
		ClearAll(ctx context.Context, userID string) (int64, error)
	}

	shoppingListRepository struct {
		db *gorm.DB
	}
)

func NewShoppingListRepository(db *gorm.DB) ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

// GetItems keeps open items ahead of completed ones, newest first within each
// group.
func (r *shoppingListRepository) GetItems(ctx context.Context, userID string, completed *bool) ([]ItemRow, error) {
	query := r.db.WithContext(ctx).
		Model(&entities.ShoppingListItem{}).
		Select("shopping_list_items.*, recipes.title AS recipe_title").
		Joins("LEFT JOIN recipes ON recipes.id = shopping_list_items.recipe_id").
		Where("shopping_list_items.user_id = ?", userID)
	if completed != nil {
		query = query.Where("shopping_list_items.is_completed = ?", *completed)
	}

	var rows []ItemRow
	if err := query.
		Order("shopping_list_items.is_completed ASC, shopping_list_items.created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *shoppingListRepository) GetItemByID(ctx context.Context, userID, itemID string) (*entities.ShoppingListItem, error) {
	var item entities.ShoppingListItem
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *shoppingListRepository) CreateItem(ctx context.Context, item *entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *shoppingListRepository) CreateItems(ctx context.Context, items []entities.ShoppingListItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *shoppingListRepository) UpdateItem(ctx context.Context, item *entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *shoppingListRepository) DeleteItem(ctx context.Context, userID, itemID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&entities.ShoppingListItem{})
	return res.RowsAffected, res.Error
}

func (r *shoppingListRepository) ClearCompleted(ctx context.Context, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND is_completed = ?", userID, true).
		Delete(&entities.ShoppingListItem{})
	return res.RowsAffected, res.Error
}

func (r *shoppingListRepository) ClearAll(ctx context.Context, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&entities.ShoppingListItem{})
	return res.RowsAffected, res.Error
}
