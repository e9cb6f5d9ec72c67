package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// authErrorResponse is the structured body returned for unauthenticated and
// unauthorized access. It never carries internal error details.
type authErrorResponse struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

// RequireAuthority guards a route with an any-of authority predicate.
// Requests without a principal get 401; principals lacking all of the listed
// authorities get 403.
func RequireAuthority(authorities ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := Principal(c)
			if principal == nil {
				return c.JSON(http.StatusUnauthorized, authErrorResponse{
					Status:  http.StatusUnauthorized,
					Error:   "Unauthorized",
					Message: "Full authentication is required to access this resource",
					Path:    c.Request().URL.Path,
				})
			}
			if !principal.HasAnyAuthority(authorities...) {
				return c.JSON(http.StatusForbidden, authErrorResponse{
					Status:  http.StatusForbidden,
					Error:   "Forbidden",
					Message: "Access Denied",
					Path:    c.Request().URL.Path,
				})
			}
			return next(c)
		}
	}
}
