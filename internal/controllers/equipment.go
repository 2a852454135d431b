package controllers

import (
	"net/http"

	"inventory-service/internal/dto"
	"inventory-service/internal/services"
	apperrors "inventory-service/pkg/errors"
	"inventory-service/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(
	service services.EquipmentServiceInterface,
	logger *zap.Logger,
) *EquipmentController {
	return &EquipmentController{
		equipmentService: service,
		logger:           logger,
	}
}

func (c *EquipmentController) GetEquipments(ctx echo.Context) error {
	res, err := c.equipmentService.GetEquipments(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetEquipments: failed to list equipment", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, res)
}

func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	var payload dto.CreateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Warn("CreateEquipment: bind failed", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil),
			c.logger,
		)
	}

	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			utils.TranslateValidationError(err, dto.EquipmentValidationMessages, "name is required"),
			c.logger,
		)
	}

	res, err := c.equipmentService.CreateEquipment(ctx.Request().Context(), payload.Name)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusCreated, res)
}

func (c *EquipmentController) DeleteEquipment(ctx echo.Context) error {
	id, ok := utils.ParseID(ctx.Param("id"))
	if !ok {
		return utils.ErrorResponse(ctx, apperrors.NewNotFoundError("Equipment not found"), c.logger)
	}

	res, err := c.equipmentService.DeleteEquipment(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, res)
}
