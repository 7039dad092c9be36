package middleware

import (
	"errors"

	apperrors "personal-finance/internal/errors"
	"personal-finance/internal/handlers"
	"personal-finance/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequireAuth validates the bearer token and stores the caller in the echo context.
// Every entry endpoint is scoped to the user id carried in the token subject.
func RequireAuth(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, apperrors.AuthMissingToken)
			}

			tokenString, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(tokenString)
			if err != nil {
				if errors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, apperrors.AuthExpiredToken)
				}
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat)
			}

			userID, err := uuid.Parse(claims.SubjectUserID())
			if err != nil {
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat)
			}

			c.Set("user_id", userID)
			c.Set("user_email", claims.Email)

			ctx := services.WithCorrelationID(c.Request().Context(), GetTraceID(c))
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
