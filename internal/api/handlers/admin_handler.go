package handlers

import (
	migration "Recipe-Share-API/cmd/database/migrate"
	"Recipe-Share-API/domain"
	"Recipe-Share-API/internal/api/presenters"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type (
	AdminHandler interface {
		InitDatabase(c *fiber.Ctx) error
		ResetDatabase(c *fiber.Ctx) error
		ForceResetDatabase(c *fiber.Ctx) error
		GetDatabaseStatus(c *fiber.Ctx) error
	}

	adminHandler struct {
		db *gorm.DB
	}
)

func NewAdminHandler(db *gorm.DB) AdminHandler {
	return &adminHandler{db: db}
}

func (h *adminHandler) InitDatabase(c *fiber.Ctx) error {
	if err := migration.Migrate(h.db); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedInitDatabase, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessInitDatabase)
}

func (h *adminHandler) ResetDatabase(c *fiber.Ctx) error {
	if err := migration.Reset(h.db); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedResetDatabase, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessResetDatabase)
}

func (h *adminHandler) ForceResetDatabase(c *fiber.Ctx) error {
	if err := migration.ForceReset(h.db); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedForceReset, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessForceReset)
}

func (h *adminHandler) GetDatabaseStatus(c *fiber.Ctx) error {
	tables, err := migration.Status(h.db)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetStatus, err)
	}

	status := "ok"
	if len(tables) == 0 {
		status = "empty"
	}

	return presenters.SuccessResponse(c, domain.DatabaseStatus{
		Status:     status,
		Tables:     tables,
		TableCount: len(tables),
	}, fiber.StatusOK, domain.MessageSuccessGetStatus)
}
