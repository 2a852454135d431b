package routes

import (
	"inventory-service/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runAssignmentRouter(e *echo.Echo, assignmentCtrl *controllers.AssignmentController) {
	e.GET("/assignments", assignmentCtrl.GetAssignments)
	e.POST("/assignments", assignmentCtrl.CreateAssignment)
	e.DELETE("/assignments/:id", assignmentCtrl.DeleteAssignment)
}
