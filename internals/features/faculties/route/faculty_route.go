package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	clearanceController "nodues_backend/internals/features/clearance/controller"
	facultyController "nodues_backend/internals/features/faculties/controller"
	osshelper "nodues_backend/internals/helpers/oss"
	"nodues_backend/internals/middlewares"
)

func FacultyRoutes(app *fiber.App, db *gorm.DB, blob osshelper.BlobService) {
	ctrl := facultyController.NewFacultyController(db, blob)
	clearance := clearanceController.NewClearanceController(db)

	r := app.Group("/Faculty")

	r.Post("/register", middlewares.AuthRateLimiter(), ctrl.Register)
	r.Post("/login", middlewares.AuthRateLimiter(), ctrl.Login)
	r.Get("/getProfile/:id", ctrl.GetProfile)
	r.Put("/update/:id", ctrl.UpdateUser)
	r.Delete("/delete/:id", ctrl.DeleteUser)

	r.Post("/:id/addTeachingDetail", ctrl.AddTeachingDetail)
	r.Get("/:id/getTeachingDetails", ctrl.GetTeachingDetails)
	r.Delete("/:id/deleteTeachingDetail/:detailId", ctrl.DeleteTeachingDetail)
	r.Put("/updatePhoto/:id", ctrl.UpdatePhoto)

	r.Get("/list", ctrl.GetAllFaculty)
	r.Get("/bySubject/:subject", ctrl.GetFacultyBySubject)
	r.Get("/bySemesterSection/:semester/:section", ctrl.GetFacultyBySemesterSection)

	// faculty approval screen feed
	r.Get("/:id/students", clearance.GetFacultyStudents)
}
