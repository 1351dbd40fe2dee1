package handlers

import (
	"Recipe-Share-API/domain"
	"Recipe-Share-API/internal/api/presenters"
	"Recipe-Share-API/pkg/follow"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type (
	FollowHandler interface {
		ToggleFollow(c *fiber.Ctx) error
		GetFollowers(c *fiber.Ctx) error
		GetFollowing(c *fiber.Ctx) error
		GetSuggestions(c *fiber.Ctx) error
	}

	followHandler struct {
		followService follow.FollowService
	}
)

func NewFollowHandler(followService follow.FollowService) FollowHandler {
	return &followHandler{followService: followService}
}

func (h *followHandler) ToggleFollow(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	targetUsername := c.Params("username")

	res, err := h.followService.ToggleFollow(c.Context(), targetUsername, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedFollow, err)
	}

	message := domain.MessageSuccessUnfollow
	if res.Following {
		message = domain.MessageSuccessFollow
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, message)
}

func (h *followHandler) GetFollowers(c *fiber.Ctx) error {
	targetUsername := c.Params("username")
	page, limit := pagination(c)

	followers, count, err := h.followService.GetFollowers(c.Context(), targetUsername, viewerID(c), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetFollowers, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"followers":  followers,
		"pagination": paginationMap(page, limit, count),
	}, fiber.StatusOK, domain.MessageSuccessGetFollowers)
}

func (h *followHandler) GetFollowing(c *fiber.Ctx) error {
	targetUsername := c.Params("username")
	page, limit := pagination(c)

	following, count, err := h.followService.GetFollowing(c.Context(), targetUsername, viewerID(c), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetFollowing, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"following":  following,
		"pagination": paginationMap(page, limit, count),
	}, fiber.StatusOK, domain.MessageSuccessGetFollowing)
}

func (h *followHandler) GetSuggestions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	res, err := h.followService.GetSuggestions(c.Context(), userID, limit)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetSuggestions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSuggestions)
}
