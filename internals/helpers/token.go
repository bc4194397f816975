package helper

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"nodues_backend/internals/configs"
)

// Access tokens live 30 days, matching the web client's stored session.
const TokenLifetime = 30 * 24 * time.Hour

// IssueToken signs an HS256 JWT carrying the record ID and user type
// ("student" | "faculty" | "hod").
func IssueToken(id uuid.UUID, userType string) (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT secret key is missing in backend environment configuration")
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":       id.String(),
		"userType": userType,
		"iat":      now.Unix(),
		"exp":      now.Add(TokenLifetime).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken verifies the signature and expiry and returns (id, userType).
func ParseToken(tokenString string) (uuid.UUID, string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return uuid.Nil, "", fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	}); err != nil {
		return uuid.Nil, "", err
	}

	rawID, _ := claims["id"].(string)
	id, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, "", fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in token")
	}
	userType, _ := claims["userType"].(string)
	return id, userType, nil
}

// GetRawAccessToken returns the bearer token from the Authorization header
// or, as a fallback, the "access_token" cookie.
func GetRawAccessToken(c *fiber.Ctx) string {
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	return ""
}
