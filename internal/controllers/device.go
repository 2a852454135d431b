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

type DeviceController struct {
	deviceService services.DeviceServiceInterface
	logger        *zap.Logger
}

func NewDeviceController(
	service services.DeviceServiceInterface,
	logger *zap.Logger,
) *DeviceController {
	return &DeviceController{
		deviceService: service,
		logger:        logger,
	}
}

func (c *DeviceController) GetDevices(ctx echo.Context) error {
	res, err := c.deviceService.GetDevices(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetDevices: failed to list devices", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, res)
}

func (c *DeviceController) CreateDevice(ctx echo.Context) error {
	var payload dto.CreateDeviceDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Warn("CreateDevice: bind failed", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil),
			c.logger,
		)
	}

	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			utils.TranslateValidationError(err, dto.DeviceValidationMessages, "name is required"),
			c.logger,
		)
	}

	res, err := c.deviceService.CreateDevice(ctx.Request().Context(), payload.Name)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusCreated, res)
}

func (c *DeviceController) DeleteDevice(ctx echo.Context) error {
	id, ok := utils.ParseID(ctx.Param("id"))
	if !ok {
		return utils.ErrorResponse(ctx, apperrors.NewNotFoundError("Device not found"), c.logger)
	}

	res, err := c.deviceService.DeleteDevice(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, res)
}
