package handlers

import (
	"Recipe-Share-API/domain"
	"Recipe-Share-API/internal/api/presenters"
	"Recipe-Share-API/pkg/feed"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type (
	FeedHandler interface {
		GetFeed(c *fiber.Ctx) error
		GetTrending(c *fiber.Ctx) error
		GetActivity(c *fiber.Ctx) error
	}

	feedHandler struct {
		feedService feed.FeedService
	}
)

func NewFeedHandler(feedService feed.FeedService) FeedHandler {
	return &feedHandler{feedService: feedService}
}

func (h *feedHandler) GetFeed(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	page, limit := pagination(c)

	recipes, count, err := h.feedService.GetFeed(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetFeed, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"recipes":    recipes,
		"pagination": paginationMap(page, limit, count),
	}, fiber.StatusOK, domain.MessageSuccessGetFeed)
}

func (h *feedHandler) GetTrending(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	res, err := h.feedService.GetTrending(c.Context(), viewerID(c), limit)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetTrending, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTrending)
}

func (h *feedHandler) GetActivity(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	res, err := h.feedService.GetActivity(c.Context(), userID, limit)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetActivity, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetActivity)
}
