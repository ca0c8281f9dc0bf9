package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/ride-sharing-service/pkg/util"
)

const principalKey = "auth_principal"

// Bearer token rejections share one response body; the reason only reaches
// the log so a caller cannot probe why a token was refused.
const unauthorizedMessage = "authentication required"

// AuthMiddleware resolves the principal from the Authorization header. It
// never touches the database: the role comes from the verified claim, so a
// role change takes effect at the next login. That staleness window is the
// documented trade-off for keeping token verification a pure CPU operation.
type AuthMiddleware struct {
	tokens *TokenManager
	logger *zap.Logger
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, logger: logger}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		m.logger.Debug("auth rejected", zap.String("reason", "missing credential"), zap.String("path", c.Path()))
		return apperrors.NewUnauthorized(unauthorizedMessage)
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		m.logger.Debug("auth rejected", zap.String("reason", "malformed header"), zap.String("path", c.Path()))
		return apperrors.NewUnauthorized(unauthorizedMessage)
	}

	principal, err := m.tokens.Verify(parts[1])
	if err != nil {
		m.logger.Debug("auth rejected", zap.String("reason", err.Error()), zap.String("path", c.Path()))
		return apperrors.NewUnauthorized(unauthorizedMessage)
	}

	c.Locals(principalKey, principal)
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated identity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
