package controllers

import (
	"net/http"
	"time"

	"inventory-service/internal/dto"

	"github.com/labstack/echo/v4"
)

// isoMillis matches the ISO-8601 form browsers produce with toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

type HealthController struct {
	now func() time.Time
}

func NewHealthController() *HealthController {
	return &HealthController{now: time.Now}
}

func (c *HealthController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, dto.HealthDTO{
		Status: "ok",
		Time:   c.now().UTC().Format(isoMillis),
	})
}
