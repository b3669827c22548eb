package middleware

import (
	"crm/blacklist"
	"crm/config"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Session lifetimes are deliberately different per role: end users get a
// short window, admins a longer working session.
const (
	UserTokenTTL  = 1 * time.Hour
	AdminTokenTTL = 3 * time.Hour

	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// ErrTokenExpired and ErrTokenInvalid split the two rejection outcomes the
// API contract keeps distinct: expired prompts a re-login (401), anything
// malformed or tampered is forbidden (403).
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Identity is the decoded token payload attached to the request context.
type Identity struct {
	UserID uint
	Email  string
	Role   string
}

// GenerateJWT generates a signed token for the identity. TTL depends on role.
func GenerateJWT(userID uint, email, role string) (string, error) {
	ttl := UserTokenTTL
	if role == RoleAdmin {
		ttl = AdminTokenTTL
	}

	claims := jwt.MapClaims{
		"userId": userID,
		"email":  email,
		"role":   role,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// ParseToken verifies signature and expiry and returns the embedded
// identity. Expiry and malformation are reported as distinct errors.
func ParseToken(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid || claims["userId"] == nil {
		return nil, ErrTokenInvalid
	}

	userID, ok := claims["userId"].(float64) // numeric claims decode as float64
	if !ok {
		return nil, ErrTokenInvalid
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return &Identity{UserID: uint(userID), Email: email, Role: role}, nil
}

// BearerToken extracts the raw token from the Authorization header.
func BearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return authHeader[len("Bearer "):], true
}

// JWT guards protected routes. Revoked tokens are rejected with the same
// message as a missing header so callers cannot tell the two apart.
func JWT(store blacklist.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := BearerToken(c)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "No token provided.", nil)
		}

		revoked, err := store.Has(c.UserContext(), tokenString)
		if err != nil {
			return JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}
		if revoked {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "No token provided.", nil)
		}

		identity, err := ParseToken(tokenString)
		if err != nil {
			if errors.Is(err, ErrTokenExpired) {
				return JsonResponse(c, fiber.StatusUnauthorized, false, "Token has expired. Please log in again.", nil)
			}
			return JsonResponse(c, fiber.StatusForbidden, false, "Invalid token.", nil)
		}

		c.Locals("userId", identity.UserID)
		c.Locals("email", identity.Email)
		c.Locals("role", identity.Role)

		return c.Next()
	}
}

// RequireRole gates a route on the role claim set by JWT.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		current, ok := c.Locals("role").(string)
		if !ok || current != role {
			return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}
		return c.Next()
	}
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errors)
}
