package handlers

import (
	"Recipe-Share-API/domain"
	"Recipe-Share-API/internal/api/presenters"
	"Recipe-Share-API/pkg/interaction"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	InteractionHandler interface {
		ToggleLike(c *fiber.Ctx) error
		RateRecipe(c *fiber.Ctx) error
		GetRatings(c *fiber.Ctx) error
		DeleteRating(c *fiber.Ctx) error
	}

	interactionHandler struct {
		interactionService interaction.InteractionService
		validator          *validator.Validate
	}
)

func NewInteractionHandler(interactionService interaction.InteractionService, validator *validator.Validate) InteractionHandler {
	return &interactionHandler{
		interactionService: interactionService,
		validator:          validator,
	}
}

func (h *interactionHandler) ToggleLike(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	res, err := h.interactionService.ToggleLike(c.Context(), recipeID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedLikeRecipe, err)
	}

	message := domain.MessageSuccessUnlikeRecipe
	if res.Liked {
		message = domain.MessageSuccessLikeRecipe
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, message)
}

func (h *interactionHandler) RateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")
	req := new(domain.RateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRateRecipe, err)
	}

	res, err := h.interactionService.RateRecipe(c.Context(), recipeID, userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedRateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRateRecipe)
}

func (h *interactionHandler) GetRatings(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	page, limit := pagination(c)

	ratings, count, err := h.interactionService.GetRatings(c.Context(), recipeID, viewerID(c), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetRatings, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"ratings":    ratings,
		"pagination": paginationMap(page, limit, count),
	}, fiber.StatusOK, domain.MessageSuccessGetRatings)
}

func (h *interactionHandler) DeleteRating(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	if err := h.interactionService.DeleteRating(c.Context(), recipeID, userID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedDeleteRating, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRating)
}
