package routes

import (
	"inventory-service/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runDeviceRouter(e *echo.Echo, deviceCtrl *controllers.DeviceController) {
	e.GET("/devices", deviceCtrl.GetDevices)
	e.POST("/devices", deviceCtrl.CreateDevice)
	e.DELETE("/devices/:id", deviceCtrl.DeleteDevice)
}
