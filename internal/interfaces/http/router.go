package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ganeshsutar/coldstrg-sub001/internal/application/report"
	"github.com/ganeshsutar/coldstrg-sub001/internal/application/usecase"
	"github.com/ganeshsutar/coldstrg-sub001/internal/application/warehouse"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ChamberUC        *usecase.ChamberUseCase
	FloorUC          *usecase.FloorUseCase
	AmadUC           *usecase.AmadUseCase
	OccupancyUC      *warehouse.OccupancyUseCase
	RegisterMovement *warehouse.RegisterMovementUseCase
	ShiftCoordinator *warehouse.ShiftCoordinator
	ReportUC         *report.ReportUseCase
	JWTSecret        string
}

// Router registra las rutas de la API. Todas requieren Bearer Token: la API
// entera opera dentro de la organización del token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// La estructura espacial la administran solo los admins; los operadores
	// registran movimientos y consultan.
	admin := RequireRole("admin")

	// Chambers: CRUD + vistas derivadas de la cámara
	chambers := api.Group("/chambers")
	chamberHandler := NewChamberHandler(deps.ChamberUC)
	chambers.Post("/", admin, chamberHandler.Create)
	chambers.Get("/", chamberHandler.List)
	chambers.Get("/:id", chamberHandler.GetByID)
	chambers.Put("/:id", admin, chamberHandler.Update)
	chambers.Delete("/:id", admin, chamberHandler.Delete)

	floorHandler := NewFloorHandler(deps.FloorUC)
	chambers.Post("/:id/floors", admin, floorHandler.Create)
	chambers.Get("/:id/floors", floorHandler.ListByChamber)

	occupancyHandler := NewOccupancyHandler(deps.OccupancyUC)
	chambers.Get("/:id/occupancy", occupancyHandler.GetRackOccupancy)
	chambers.Get("/:id/stats", occupancyHandler.GetChamberStats)
	chambers.Get("/:id/capacity-check", occupancyHandler.CheckCapacity)
	chambers.Put("/:id/overrides", occupancyHandler.SetOverride)
	chambers.Delete("/:id/overrides", occupancyHandler.ClearOverride)

	reportHandler := NewReportHandler(deps.ReportUC)
	chambers.Get("/:id/report.pdf", reportHandler.DownloadOccupancyPDF)

	// Floors: mutaciones por ID de piso
	floors := api.Group("/floors")
	floors.Put("/:id", admin, floorHandler.Update)
	floors.Delete("/:id", admin, floorHandler.Delete)

	// Movements: el libro append-only
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.RegisterMovement)
	movements.Post("/loading", movementHandler.RegisterLoading)
	movements.Post("/unloading", movementHandler.RegisterUnloading)
	movements.Post("/:id/void", movementHandler.VoidMovement)
	movements.Get("/", movementHandler.List)

	// Shifts: traslados atómicos entre racks
	shifts := api.Group("/shifts")
	shiftingHandler := NewShiftingHandler(deps.ShiftCoordinator)
	shifts.Post("/", shiftingHandler.CommitShift)
	shifts.Get("/", shiftingHandler.List)
	shifts.Get("/:id", shiftingHandler.GetByID)

	// Amads: referencia externa, solo lectura
	amads := api.Group("/amads")
	amadHandler := NewAmadHandler(deps.AmadUC)
	amads.Get("/", amadHandler.List)
	amads.Get("/:id", amadHandler.GetByID)
}
