package handlers

import (
	"Recipe-Share-API/domain"
	"Recipe-Share-API/internal/api/presenters"
	"Recipe-Share-API/pkg/search"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type (
	SearchHandler interface {
		GlobalSearch(c *fiber.Ctx) error
		AdvancedSearch(c *fiber.Ctx) error
	}

	searchHandler struct {
		searchService search.SearchService
	}
)

func NewSearchHandler(searchService search.SearchService) SearchHandler {
	return &searchHandler{searchService: searchService}
}

func (h *searchHandler) GlobalSearch(c *fiber.Ctx) error {
	q := c.Query("q")
	searchType := c.Query("type", domain.SearchTypeAll)

	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	res, err := h.searchService.GlobalSearch(c.Context(), q, searchType, viewerID(c), limit)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedSearch, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearch)
}

func csv(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (h *searchHandler) AdvancedSearch(c *fiber.Ctx) error {
	page, limit := pagination(c)

	maxPrepTime, _ := strconv.Atoi(c.Query("max_prep_time", "0"))
	maxCookTime, _ := strconv.Atoi(c.Query("max_cook_time", "0"))
	minRating, _ := strconv.ParseFloat(c.Query("min_rating", "0"), 64)

	q := domain.AdvancedSearchQuery{
		Query:       c.Query("q"),
		Ingredients: csv(c.Query("ingredients")),
		Categories:  csv(c.Query("categories")),
		Difficulty:  c.Query("difficulty"),
		MaxPrepTime: maxPrepTime,
		MaxCookTime: maxCookTime,
		MinRating:   minRating,
		Sort:        c.Query("sort", "newest"),
		Page:        page,
		Limit:       limit,
	}

	recipes, count, err := h.searchService.AdvancedSearch(c.Context(), q, viewerID(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedSearch, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"recipes":    recipes,
		"pagination": paginationMap(page, limit, count),
	}, fiber.StatusOK, domain.MessageSuccessSearch)
}
