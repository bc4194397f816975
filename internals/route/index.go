package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	facultyRoute "nodues_backend/internals/features/faculties/route"
	hodRoute "nodues_backend/internals/features/hods/route"
	studentRoute "nodues_backend/internals/features/students/route"
	osshelper "nodues_backend/internals/helpers/oss"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, blob osshelper.BlobService) {
	BaseRoutes(app, db)

	log.Println("[INFO] Setting up StudentRoutes...")
	studentRoute.StudentRoutes(app, db)

	log.Println("[INFO] Setting up FacultyRoutes...")
	facultyRoute.FacultyRoutes(app, db, blob)

	log.Println("[INFO] Setting up HodRoutes...")
	hodRoute.HodRoutes(app, db)
}
