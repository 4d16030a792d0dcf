package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Login checks the submitted password against the sheet-held secret and
// issues a session token. There is no lockout or rate limiting; a wrong
// password is a non-fatal 401.
func Login(sessions *Sessions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			Password string `json:"password"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
		if strings.TrimSpace(req.Password) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Password is required",
			})
		}

		token, ok, err := sessions.Login(c.Context(), req.Password)
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "비밀번호 정보를 불러오는데 실패했습니다.",
			})
		}
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "비밀번호가 올바르지 않습니다.",
			})
		}
		return c.JSON(fiber.Map{"token": token})
	}
}

// Logout revokes the caller's session token.
func Logout(sessions *Sessions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := bearerToken(c); token != "" {
			sessions.Logout(token)
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

// Me reports whether the caller holds a live session and when it was opened.
func Me(sessions *Sessions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		issued, ok := sessions.IssuedAt(token)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not authenticated",
			})
		}
		return c.JSON(fiber.Map{"authenticated": true, "issued_at": issued})
	}
}

// PasswordHint returns the access password's length for the login screen's
// masked input placeholder.
func PasswordHint(sessions *Sessions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		length, err := sessions.PasswordLength(c.Context())
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "비밀번호 정보를 불러오는데 실패했습니다.",
			})
		}
		return c.JSON(fiber.Map{"length": length})
	}
}

// RequireSession rejects requests without a live session token.
func RequireSession(sessions *Sessions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !sessions.Valid(bearerToken(c)) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return c.Get("X-Session-Token")
}
