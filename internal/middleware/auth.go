package middleware

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"finreview/internal/auth"
	apperrors "finreview/internal/errors"
	"finreview/internal/model"
	"finreview/internal/repository"
)

const accountContextKey = "account"

// JWT extracts an access token from the Authorization header or the token
// cookie (header wins) and verifies it. Expired tokens get a distinct code so
// clients know to start a refresh flow; the gateway never refreshes itself.
func JWT(tokens *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:Authorization:Bearer ,cookie:token",
		ParseTokenFunc: func(c echo.Context, raw string) (interface{}, error) {
			return tokens.VerifyAccessToken(raw)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if errors.Is(err, auth.ErrTokenExpired) {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "token expired",
					Code:  "TOKEN_EXPIRED",
				})
			}
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "authentication required",
				Code:  "UNAUTHENTICATED",
			})
		},
	})
}

// ResolveAccount loads the authenticated account fresh from the store on
// every request. Approval state is never cached, so a just-approved user is
// recognized immediately, and deleted accounts holding live tokens are
// rejected.
func ResolveAccount(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get("user").(uuid.UUID)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "authentication required",
					Code:  "UNAUTHENTICATED",
				})
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "account no longer exists",
					Code:  "UNAUTHENTICATED",
				})
			}

			c.Set(accountContextKey, user)
			return next(c)
		}
	}
}

// RequireRole rejects requests whose resolved account role is not in the
// allowed set.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account := CurrentAccount(c)
			if account == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "authentication required",
					Code:  "UNAUTHENTICATED",
				})
			}
			for _, role := range roles {
				if account.Role == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Error: "insufficient role",
				Code:  "FORBIDDEN",
			})
		}
	}
}

// RequireApproved gates content-write routes on the account's approval flag.
func RequireApproved() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account := CurrentAccount(c)
			if account == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "authentication required",
					Code:  "UNAUTHENTICATED",
				})
			}
			if !account.IsApproved {
				return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
					Error: "account is not approved yet",
					Code:  "NOT_APPROVED",
				})
			}
			return next(c)
		}
	}
}

// CurrentAccount returns the account resolved by ResolveAccount, or nil.
func CurrentAccount(c echo.Context) *model.User {
	account, _ := c.Get(accountContextKey).(*model.User)
	return account
}
