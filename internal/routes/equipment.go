package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"medequip-system/internal/controllers"
	"medequip-system/internal/services"
)

func runEquipmentRouter(g *echo.Group, equipmentService services.EquipmentServiceInterface, noteService services.EquipmentNoteServiceInterface, logger *zap.Logger) {
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)
	noteCtrl := controllers.NewEquipmentNoteController(noteService, logger)

	g.GET("/equipment", equipmentCtrl.GetEquipments)
	g.GET("/equipment/:id", equipmentCtrl.FindEquipment)
	g.GET("/equipment/barcode/:code", equipmentCtrl.FindEquipmentByBarcode)
	g.POST("/equipment", equipmentCtrl.CreateEquipment)
	g.PATCH("/equipment/:id", equipmentCtrl.UpdateEquipment)

	g.GET("/equipment/:id/notes", noteCtrl.GetNotes)
	g.POST("/equipment/:id/notes", noteCtrl.CreateNote)
	g.DELETE("/equipment-notes/:id", noteCtrl.DeleteNote)
}
