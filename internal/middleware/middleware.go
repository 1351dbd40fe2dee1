package middleware

import (
	"Recipe-Share-API/domain"
	"Recipe-Share-API/internal/api/presenters"
	"Recipe-Share-API/internal/utils"
	"Recipe-Share-API/pkg/jwt"
	"Recipe-Share-API/pkg/user"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"
)

type (
	Middleware interface {
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		OptionalAuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		CORSMiddleware() fiber.Handler
		RateLimitMiddleware(resource string, limit int, window time.Duration) fiber.Handler
	}

	middleware struct {
		userRepository user.UserRepository
		rdb            *redis.Client
	}
)

func NewMiddleware(userRepository user.UserRepository, rdb *redis.Client) Middleware {
	return &middleware{
		userRepository: userRepository,
		rdb:            rdb,
	}
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		userID, role, err := jwtService.GetUserIDByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		// a valid signature is not enough, the account must still exist and be active
		u, err := m.userRepository.GetUserByID(c.Context(), userID)
		if err != nil || !u.IsActive {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, domain.ErrAccountInactive)
		}

		c.Locals("user_id", userID)
		c.Locals("role", role)
		return c.Next()
	}
}

// OptionalAuthMiddleware resolves the viewer when a valid token is present
// and stays anonymous on any failure.
func (m *middleware) OptionalAuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Next()
		}

		userID, role, err := jwtService.GetUserIDByToken(token)
		if err != nil {
			return c.Next()
		}

		u, err := m.userRepository.GetUserByID(c.Context(), userID)
		if err != nil || !u.IsActive {
			return c.Next()
		}

		c.Locals("user_id", userID)
		c.Locals("role", role)
		return c.Next()
	}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	origin := utils.GetConfig("CORS_ORIGIN")
	if origin == "" {
		origin = "*"
	}
	return cors.New(cors.Config{
		AllowOrigins: origin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	})
}

// RateLimitMiddleware counts writes per user (per IP when anonymous) in a
// redis window. Fails open when redis is down.
func (m *middleware) RateLimitMiddleware(resource string, limit int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m.rdb == nil {
			return c.Next()
		}

		id := c.IP()
		if userID, ok := c.Locals("user_id").(string); ok && userID != "" {
			id = userID
		}
		key := fmt.Sprintf("rl:%s:%s", resource, id)

		count, err := m.rdb.Incr(c.Context(), key).Result()
		if err != nil {
			return c.Next()
		}
		if count == 1 {
			m.rdb.Expire(c.Context(), key, window)
		}
		if count > int64(limit) {
			return presenters.ErrorResponse(c, fiber.StatusTooManyRequests, domain.MessageFailedProcessRequest, domain.ErrTooManyActions)
		}
		return c.Next()
	}
}
