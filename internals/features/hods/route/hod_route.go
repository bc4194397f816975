package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nodues_backend/internals/constants"
	clearanceController "nodues_backend/internals/features/clearance/controller"
	hodController "nodues_backend/internals/features/hods/controller"
	"nodues_backend/internals/middlewares"
	authmw "nodues_backend/internals/middlewares/auth"
)

func HodRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := hodController.NewHodController(db)
	clearance := clearanceController.NewClearanceController(db)

	r := app.Group("/Hod")

	r.Post("/register", middlewares.AuthRateLimiter(), ctrl.Register)
	r.Post("/login", middlewares.AuthRateLimiter(), ctrl.Login)
	r.Get("/profile/:id", ctrl.GetProfile)
	r.Put("/update/:id", ctrl.UpdateUser)
	r.Delete("/delete/:id", ctrl.DeleteUser)

	// HOD approval screen feed, scoped to the caller's department
	r.Get("/students",
		authmw.AuthMiddleware(),
		authmw.RequireUserType(constants.RoleHod),
		clearance.GetDepartmentStudents,
	)
}
