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

type AssignmentController struct {
	assignmentService services.AssignmentServiceInterface
	logger            *zap.Logger
}

func NewAssignmentController(
	service services.AssignmentServiceInterface,
	logger *zap.Logger,
) *AssignmentController {
	return &AssignmentController{
		assignmentService: service,
		logger:            logger,
	}
}

func (c *AssignmentController) GetAssignments(ctx echo.Context) error {
	res, err := c.assignmentService.GetAssignments(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetAssignments: failed to list assignments", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, res)
}

func (c *AssignmentController) CreateAssignment(ctx echo.Context) error {
	var payload dto.CreateAssignmentDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Warn("CreateAssignment: bind failed", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil),
			c.logger,
		)
	}

	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			utils.TranslateValidationError(err, dto.AssignmentValidationMessages, dto.AssignmentIDsRequired),
			c.logger,
		)
	}

	res, err := c.assignmentService.CreateAssignment(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusCreated, res)
}

func (c *AssignmentController) DeleteAssignment(ctx echo.Context) error {
	id, ok := utils.ParseID(ctx.Param("id"))
	if !ok {
		return utils.ErrorResponse(ctx, apperrors.NewNotFoundError("Assignment not found"), c.logger)
	}

	res, err := c.assignmentService.DeleteAssignment(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, res)
}
