package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-service/internal/controllers"
	"inventory-service/internal/events"
	"inventory-service/internal/listeners"
	"inventory-service/internal/repositories"
	"inventory-service/internal/services"
	"inventory-service/pkg/config"
	"inventory-service/pkg/eventbus"
	"inventory-service/pkg/metrics"
)

// Dependencies is everything InitRouter wires into the handlers.
type Dependencies struct {
	Store   *repositories.InventoryStore
	Bus     *eventbus.Bus
	Metrics *metrics.Metrics
	Logger  *zap.Logger
	Config  *config.Config
}

func InitRouter(e *echo.Echo, deps Dependencies) {
	logger := deps.Logger
	logger.Info("InitRouter: registering routes")

	// --- 0. SHARED ---
	listeners.NewMetricsListener(deps.Metrics, logger).Register(deps.Bus)
	deps.Metrics.RegisterRecordGauge(events.ResourceEquipment, func() int { return deps.Store.Counts()[events.ResourceEquipment] })
	deps.Metrics.RegisterRecordGauge(events.ResourceDevices, func() int { return deps.Store.Counts()[events.ResourceDevices] })
	deps.Metrics.RegisterRecordGauge(events.ResourceAssignments, func() int { return deps.Store.Counts()[events.ResourceAssignments] })

	// --- 1. SERVICES ---
	equipmentService := services.NewEquipmentService(deps.Store, deps.Bus, logger.Named("equipment"))
	deviceService := services.NewDeviceService(deps.Store, deps.Bus, logger.Named("devices"))
	assignmentService := services.NewAssignmentService(deps.Store, deps.Bus, logger.Named("assignments"))

	// --- 2. CONTROLLERS ---
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)
	deviceCtrl := controllers.NewDeviceController(deviceService, logger)
	assignmentCtrl := controllers.NewAssignmentController(assignmentService, logger)
	healthCtrl := controllers.NewHealthController()

	// --- 3. ROUTERS ---
	runEquipmentRouter(e, equipmentCtrl)
	runDeviceRouter(e, deviceCtrl)
	runAssignmentRouter(e, assignmentCtrl)
	runHealthRouter(e, healthCtrl, deps.Metrics)
	runStaticRouter(e, deps.Config.Server.StaticDir)

	logger.Info("InitRouter: routes registered")
}
