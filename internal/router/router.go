package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"finreview/internal/auth"
	"finreview/internal/config"
	"finreview/internal/handler"
	"finreview/internal/middleware"
	"finreview/internal/model"
	"finreview/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	users repository.UserRepository,
	authHandler *handler.AuthHandler,
	approvalHandler *handler.ApprovalHandler,
	institutionHandler *handler.InstitutionHandler,
	reviewHandler *handler.ReviewHandler,
	threadHandler *handler.ThreadHandler,
	commentHandler *handler.CommentHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Per-request gateway: verify token, then resolve the account fresh from
	// the store so approval state is never served stale.
	authed := middleware.JWT(jwtService)
	resolved := middleware.ResolveAccount(users)
	adminOnly := middleware.RequireRole(model.RoleAdmin)
	approvedOnly := middleware.RequireApproved()

	// Public auth routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)

	// Authenticated auth routes
	api.POST("/auth/logout", authHandler.Logout, authed, resolved)
	api.GET("/auth/me", authHandler.Me, authed, resolved)
	api.POST("/auth/approval-screenshot", approvalHandler.UploadScreenshot, authed, resolved)

	// Admin approval workflow
	api.GET("/auth/pending-users", approvalHandler.PendingUsers, authed, resolved, adminOnly)
	api.PUT("/auth/approve-user/:userId", approvalHandler.ApproveUser, authed, resolved, adminOnly)

	// Institutions: public reads, admin writes
	api.GET("/institutions", institutionHandler.List)
	api.GET("/institutions/:id", institutionHandler.Get)
	api.POST("/institutions", institutionHandler.Create, authed, resolved, adminOnly)
	api.PUT("/institutions/:id", institutionHandler.Update, authed, resolved, adminOnly)
	api.DELETE("/institutions/:id", institutionHandler.Delete, authed, resolved, adminOnly)

	// Reviews: public reads, approval-gated writes
	api.GET("/institutions/:id/reviews", reviewHandler.ListByInstitution)
	api.POST("/institutions/:id/reviews", reviewHandler.Create, authed, resolved, approvedOnly)
	api.DELETE("/reviews/:id", reviewHandler.Delete, authed, resolved, approvedOnly)

	// Forum: public reads, approval-gated writes; helpful votes only need a
	// valid account.
	api.GET("/categories", threadHandler.ListCategories)
	api.GET("/categories/:id/threads", threadHandler.ListByCategory)
	api.GET("/threads/:id", threadHandler.Get)
	api.POST("/threads", threadHandler.Create, authed, resolved, approvedOnly)
	api.GET("/threads/:id/comments", commentHandler.ListByThread)
	api.POST("/threads/:id/comments", commentHandler.Create, authed, resolved, approvedOnly)
	api.DELETE("/comments/:id", commentHandler.Delete, authed, resolved, approvedOnly)
	api.POST("/comments/:id/helpful", commentHandler.MarkHelpful, authed, resolved)
	api.DELETE("/comments/:id/helpful", commentHandler.UnmarkHelpful, authed, resolved)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
