package handlers

import (
	"Recipe-Share-API/domain"
	"Recipe-Share-API/internal/api/presenters"
	"Recipe-Share-API/pkg/collection"

	"github.com/gofiber/fiber/v2"
)

type (
	CollectionHandler interface {
		GetFavorites(c *fiber.Ctx) error
		GetHistory(c *fiber.Ctx) error
	}

	collectionHandler struct {
		collectionService collection.CollectionService
	}
)

func NewCollectionHandler(collectionService collection.CollectionService) CollectionHandler {
	return &collectionHandler{collectionService: collectionService}
}

func (h *collectionHandler) GetFavorites(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	page, limit := pagination(c)
	sort := c.Query("sort", "liked_at")

	favorites, count, err := h.collectionService.GetFavorites(c.Context(), userID, sort, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetFavorites, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"recipes":    favorites,
		"pagination": paginationMap(page, limit, count),
	}, fiber.StatusOK, domain.MessageSuccessGetFavorites)
}

func (h *collectionHandler) GetHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	page, limit := pagination(c)
	historyType := c.Query("type", domain.HistoryTypeAll)

	history, count, err := h.collectionService.GetHistory(c.Context(), userID, historyType, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetHistory, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"recipes":    history,
		"pagination": paginationMap(page, limit, count),
	}, fiber.StatusOK, domain.MessageSuccessGetHistory)
}
