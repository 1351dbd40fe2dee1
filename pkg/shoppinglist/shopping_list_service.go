package shoppinglist

import (
	"Recipe-Share-API/domain"
	"Recipe-Share-API/entities"
	"Recipe-Share-API/pkg/recipe"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ShoppingListService interface {
		GetItems(ctx context.Context, userID string, completed *bool) ([]domain.ShoppingListItemResponse, error)
		AddItem(ctx context.Context, userID string, req domain.ShoppingListItemRequest) (domain.ShoppingListItemResponse, error)
		UpdateItem(ctx context.Context, userID, itemID string, patch domain.ShoppingListItemPatch) (domain.ShoppingListItemResponse, error)
		ToggleItem(ctx context.Context, userID, itemID string) (domain.ShoppingListItemResponse, error)
		DeleteItem(ctx context.Context, userID, itemID string) error
		AddRecipeToList(ctx context.Context, userID, recipeID string, multiplier float64) ([]domain.ShoppingListItemResponse, error)
		ClearCompleted(ctx context.Context, userID string) (int64, error)
		ClearAll(ctx context.Context, userID string) (int64, error)
	}

	shoppingListService struct {
		shoppingListRepository ShoppingListRepository
		recipeRepository       recipe.RecipeRepository
	}
)

func NewShoppingListService(shoppingListRepository ShoppingListRepository, recipeRepository recipe.RecipeRepository) ShoppingListService {
	return &shoppingListService{
		shoppingListRepository: shoppingListRepository,
		recipeRepository:       recipeRepository,
	}
}

func toItemResponse(item entities.ShoppingListItem, recipeTitle string) domain.ShoppingListItemResponse {
	res := domain.ShoppingListItemResponse{
		ID:             item.ID.String(),
		IngredientName: item.IngredientName,
		Quantity:       item.Quantity,
		Unit:           item.Unit,
		Notes:          item.Notes,
		IsCompleted:    item.IsCompleted,
		RecipeTitle:    recipeTitle,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
	if item.RecipeID != nil {
		res.RecipeID = item.RecipeID.String()
	}
	return res
}

func (s *shoppingListService) GetItems(ctx context.Context, userID string, completed *bool) ([]domain.ShoppingListItemResponse, error) {
	rows, err := s.shoppingListRepository.GetItems(ctx, userID, completed)
	if err != nil {
		return nil, err
	}

	result := make([]domain.ShoppingListItemResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, toItemResponse(row.ShoppingListItem, row.RecipeTitle))
	}
	return result, nil
}

func (s *shoppingListService) AddItem(ctx context.Context, userID string, req domain.ShoppingListItemRequest) (domain.ShoppingListItemResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.ShoppingListItemResponse{}, domain.ErrParseUUID
	}

	item := entities.ShoppingListItem{
		ID:             uuid.New(),
		UserID:         uid,
		IngredientName: req.IngredientName,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		Notes:          req.Notes,
	}

	recipeTitle := ""
	if req.RecipeID != "" {
		rec, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ShoppingListItemResponse{}, domain.ErrRecipeNotFound
			}
			return domain.ShoppingListItemResponse{}, err
		}
		item.RecipeID = &rec.ID
		recipeTitle = rec.Title
	}

	if err := s.shoppingListRepository.CreateItem(ctx, &item); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}
	return toItemResponse(item, recipeTitle), nil
}

func (s *shoppingListService) getOwnItem(ctx context.Context, userID, itemID string) (*entities.ShoppingListItem, error) {
	item, err := s.shoppingListRepository.GetItemByID(ctx, userID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShoppingItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *shoppingListService) UpdateItem(ctx context.Context, userID, itemID string, patch domain.ShoppingListItemPatch) (domain.ShoppingListItemResponse, error) {
	if patch.IngredientName == nil && patch.Quantity == nil && patch.Unit == nil &&
		patch.Notes == nil && patch.IsCompleted == nil {
		return domain.ShoppingListItemResponse{}, domain.ErrEmptyUpdate
	}

	item, err := s.getOwnItem(ctx, userID, itemID)
	if err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	if patch.IngredientName != nil {
		item.IngredientName = *patch.IngredientName
	}
	if patch.Quantity != nil {
		item.Quantity = patch.Quantity
	}
	if patch.Unit != nil {
		item.Unit = *patch.Unit
	}
	if patch.Notes != nil {
		item.Notes = *patch.Notes
	}
	if patch.IsCompleted != nil {
		item.IsCompleted = *patch.IsCompleted
	}

	if err := s.shoppingListRepository.UpdateItem(ctx, item); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}
	return toItemResponse(*item, ""), nil
}

func (s *shoppingListService) ToggleItem(ctx context.Context, userID, itemID string) (domain.ShoppingListItemResponse, error) {
	item, err := s.getOwnItem(ctx, userID, itemID)
	if err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	item.IsCompleted = !item.IsCompleted
	if err := s.shoppingListRepository.UpdateItem(ctx, item); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}
	return toItemResponse(*item, ""), nil
}

func (s *shoppingListService) DeleteItem(ctx context.Context, userID, itemID string) error {
	affected, err := s.shoppingListRepository.DeleteItem(ctx, userID, itemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrShoppingItemNotFound
	}
	return nil
}

// AddRecipeToList copies a recipe's ingredients into the list, quantities
// scaled by the serving multiplier. Quantities the recipe never specified
// stay unspecified.
func (s *shoppingListService) AddRecipeToList(ctx context.Context, userID, recipeID string, multiplier float64) ([]domain.ShoppingListItemResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	rec, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	if !rec.IsPublic && rec.AuthorID.String() != userID {
		return nil, domain.ErrRecipeAccessDenied
	}

	ingredients, err := s.recipeRepository.GetIngredients(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if len(ingredients) == 0 {
		return nil, domain.ErrRecipeWithoutIngredients
	}

	if multiplier == 0 {
		multiplier = 1
	}

	items := make([]entities.ShoppingListItem, 0, len(ingredients))
	for _, ing := range ingredients {
		item := entities.ShoppingListItem{
			ID:             uuid.New(),
			UserID:         uid,
			RecipeID:       &rec.ID,
			IngredientName: ing.Name,
			Unit:           ing.Unit,
			Notes:          ing.Notes,
		}
		if ing.Quantity > 0 {
			scaled := ing.Quantity * multiplier
			item.Quantity = &scaled
		}
		items = append(items, item)
	}

	if err := s.shoppingListRepository.CreateItems(ctx, items); err != nil {
		return nil, err
	}

	result := make([]domain.ShoppingListItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, toItemResponse(item, rec.Title))
	}
	return result, nil
}

func (s *shoppingListService) ClearCompleted(ctx context.Context, userID string) (int64, error) {
	return s.shoppingListRepository.ClearCompleted(ctx, userID)
}

func (s *shoppingListService) ClearAll(ctx context.Context, userID string) (int64, error) {
	return s.shoppingListRepository.ClearAll(ctx, userID)
}
