package handlers

import (
	"Recipe-Share-API/domain"
	"Recipe-Share-API/internal/api/presenters"
	"Recipe-Share-API/pkg/statistics"

	"github.com/gofiber/fiber/v2"
)

type (
	StatisticsHandler interface {
		GetPlatformStats(c *fiber.Ctx) error
		GetUserStats(c *fiber.Ctx) error
	}

	statisticsHandler struct {
		statisticsService statistics.StatisticsService
	}
)

func NewStatisticsHandler(statisticsService statistics.StatisticsService) StatisticsHandler {
	return &statisticsHandler{statisticsService: statisticsService}
}

func (h *statisticsHandler) GetPlatformStats(c *fiber.Ctx) error {
	res, err := h.statisticsService.GetPlatformStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetPlatformStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPlatformStats)
}

func (h *statisticsHandler) GetUserStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.statisticsService.GetUserStats(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetUserStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUserStats)
}
