// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"

	helper "nodues_backend/internals/helpers"
)

// Locals keys set after a verified token.
const (
	LocUserID   = "user_id"
	LocUserType = "user_type"
)

// AuthMiddleware verifies the bearer JWT and stores id + userType in
// Locals. It does not hit the database; record existence is checked by
// whichever handler loads the caller.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing token")
		}

		id, userType, err := helper.ParseToken(tokenString)
		if err != nil {
			log.Println("[ERROR] Token parse failed:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or expired token")
		}

		c.Locals(LocUserID, id.String())
		c.Locals(LocUserType, userType)
		return c.Next()
	}
}

// RequireUserType gates a route to one or more user types ("student",
// "faculty", "hod"). Must run after AuthMiddleware.
func RequireUserType(types ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(types))
	for _, t := range types {
		allowed[t] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		ut, _ := c.Locals(LocUserType).(string)
		if _, ok := allowed[ut]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Forbidden - Wrong user type for this endpoint")
		}
		return c.Next()
	}
}
