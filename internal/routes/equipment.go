package routes

import (
	"inventory-service/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runEquipmentRouter(e *echo.Echo, equipmentCtrl *controllers.EquipmentController) {
	e.GET("/equipment", equipmentCtrl.GetEquipments)
	e.POST("/equipment", equipmentCtrl.CreateEquipment)
	e.DELETE("/equipment/:id", equipmentCtrl.DeleteEquipment)
}
