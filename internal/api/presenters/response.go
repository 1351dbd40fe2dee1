package presenters

import (
	"errors"
	"time"

	"Recipe-Share-API/domain"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SuccessResponse(c *fiber.Ctx, data any, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"success":   true,
		"message":   message,
		"data":      data,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	resp := fiber.Map{
		"success":   false,
		"message":   message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if err != nil {
		resp["error"] = err.Error()
	}
	return c.Status(code).JSON(resp)
}

// StatusCode maps domain sentinel errors onto HTTP status codes so handlers
// stay free of per-error status tables.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrCommentNotFound),
		errors.Is(err, domain.ErrParentCommentMissing),
		errors.Is(err, domain.ErrRatingNotFound),
		errors.Is(err, domain.ErrShoppingItemNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrRecipeAccessDenied),
		errors.Is(err, domain.ErrNotRecipeOwner),
		errors.Is(err, domain.ErrNotCommentOwner),
		errors.Is(err, domain.ErrCommentDeleteDenied),
		errors.Is(err, domain.ErrProfilePrivate),
		errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrUsernameAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrCredentialsInvalid),
		errors.Is(err, domain.ErrAccountInactive),
		errors.Is(err, domain.ErrTokenNotFound),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrTooManyActions):
		return fiber.StatusTooManyRequests
	case errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrParentCommentForeign),
		errors.Is(err, domain.ErrSelfRating),
		errors.Is(err, domain.ErrSelfFollow),
		errors.Is(err, domain.ErrSearchQueryTooShort),
		errors.Is(err, domain.ErrSearchTypeInvalid),
		errors.Is(err, domain.ErrRecipeWithoutIngredients),
		errors.Is(err, domain.ErrPasswordIncorrect),
		errors.Is(err, domain.ErrEmptyUpdate):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
