package middleware

import (
	"fmt"
	"strings"

	"video-gallery/internal/domain/dto"
	apperrors "video-gallery/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const userIDKey = "userID"

// RequireAuth validates the bearer token issued by the identity provider.
// Unauthenticated calls are rejected before any gateway or store work runs.
func RequireAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return apperrors.HandleError(c, apperrors.ErrMissingConfig("auth secret not configured"))
		}

		authHeader := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return unauthorized(c)
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return unauthorized(c)
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if sub, ok := claims["sub"].(string); ok {
				c.Locals(userIDKey, sub)
			}
		}
		return c.Next()
	}
}

// UserID returns the authenticated subject, empty on public routes.
func UserID(c *fiber.Ctx) string {
	if id, ok := c.Locals(userIDKey).(string); ok {
		return id
	}
	return ""
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error:   apperrors.CodeUnauthorized,
		Message: "unauthorized",
	})
}
