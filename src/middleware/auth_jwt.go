package middleware

import (
	"strings"

	"Backend-SurveyStudio/src/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthJWT validates the Bearer token and stashes the claims plus the raw
// token on the request context. The raw token is forwarded to the upstream
// platform API by the submission pipeline.
func AuthJWT(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing or invalid Authorization header"})
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := utils.ParseJWT(tokenStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token", "detail": err.Error()})
	}

	c.Locals("userId", claims.UserID)
	c.Locals("email", claims.Email)
	c.Locals("role", claims.Role)
	c.Locals("token", tokenStr)

	return c.Next()
}

// RequireTeacher rejects requests whose token does not carry the teacher
// role. Survey authoring is a teacher-only surface.
func RequireTeacher(c *fiber.Ctx) error {
	if role, _ := c.Locals("role").(string); role != "teacher" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Teacher role required"})
	}
	return c.Next()
}
