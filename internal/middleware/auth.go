package middleware

import (
	stderrors "errors"

	"accounts-service/internal/errors"
	"accounts-service/internal/handlers"
	"accounts-service/internal/logging"
	"accounts-service/internal/models"
	"accounts-service/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	OperatorIDContextKey = "operator_id"
	RoleContextKey       = "role"
)

// RequireAuth creates a middleware that requires a valid operator token
func RequireAuth(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			if claims.OperatorID == "" {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Operator ID missing from token"))
			}

			c.Set(OperatorIDContextKey, claims.OperatorID)
			c.Set(RoleContextKey, claims.Role)

			req := c.Request()
			ctx := req.Context()
			logger := logging.FromContext(ctx).With("operator_id", claims.OperatorID)
			c.SetRequest(req.WithContext(logging.WithLogger(ctx, logger)))

			return next(c)
		}
	}
}

// RequireRole creates a middleware that requires one of the given roles
func RequireRole(requiredRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(RoleContextKey).(string)
			if !ok {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Role not found in token"))
			}

			for _, required := range requiredRoles {
				if role == required {
					return next(c)
				}
			}

			return handlers.SendError(c, errors.AuthInsufficientPermission)
		}
	}
}

// RequireAdmin is a convenience middleware that requires admin role
func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole(models.RoleAdmin)
}
