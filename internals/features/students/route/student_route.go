package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nodues_backend/internals/constants"
	clearanceController "nodues_backend/internals/features/clearance/controller"
	studentController "nodues_backend/internals/features/students/controller"
	"nodues_backend/internals/middlewares"
	authmw "nodues_backend/internals/middlewares/auth"
)

func StudentRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)
	clearance := clearanceController.NewClearanceController(db)

	r := app.Group("/Student")

	r.Post("/register", middlewares.AuthRateLimiter(), ctrl.Register)
	r.Post("/login", middlewares.AuthRateLimiter(), ctrl.Login)
	r.Get("/profile/:id", ctrl.GetProfile)
	r.Put("/update/:id", ctrl.UpdateUser)
	r.Delete("/delete/:id", ctrl.DeleteUser)
	r.Get("/getList", ctrl.GetList)

	// clearance mutations are policy-guarded: only the assigned faculty
	// may judge a subject, only the department's HOD may decide
	r.Post("/updateStatus",
		authmw.AuthMiddleware(),
		authmw.RequireUserType(constants.RoleFaculty),
		clearance.UpdateStatus,
	)
	r.Post("/updateHodApprovalStatus",
		authmw.AuthMiddleware(),
		authmw.RequireUserType(constants.RoleHod),
		clearance.UpdateHodApprovalStatus,
	)
	r.Get("/clearance/:id", clearance.GetStudentClearance)
}
