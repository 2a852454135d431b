package routes

import (
	"inventory-service/internal/controllers"
	"inventory-service/pkg/metrics"

	"github.com/labstack/echo/v4"
)

func runHealthRouter(e *echo.Echo, healthCtrl *controllers.HealthController, m *metrics.Metrics) {
	e.GET("/health", healthCtrl.Health)
	e.GET("/metrics", echo.WrapHandler(m.Handler()))
}
