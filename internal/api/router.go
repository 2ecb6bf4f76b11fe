package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/longrunpc/calmato-be/internal/api/handler"
	"github.com/longrunpc/calmato-be/internal/api/middleware"
	"github.com/longrunpc/calmato-be/internal/core/domain"
	"github.com/longrunpc/calmato-be/internal/core/ports"
	"github.com/longrunpc/calmato-be/internal/core/service"
	"github.com/longrunpc/calmato-be/internal/infrastructure/db/postgres"
	redisinfra "github.com/longrunpc/calmato-be/internal/infrastructure/db/redis"
	"github.com/longrunpc/calmato-be/internal/infrastructure/http/handlers"
)

// Deps bundles the external resources the router wires together.
type Deps struct {
	DB      *sql.DB
	Redis   *goredis.Client
	Store   ports.BlobStore
	Issuer  ports.TokenIssuer
	Cleaner service.Cleaner
	Log     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("calmato"))

	// --- Repositories ---
	authRepo := postgres.NewAuthRepository(deps.DB)
	playlistRepo := postgres.NewPlaylistRepository(deps.DB)
	asmrRepo := postgres.NewAsmrRepository(deps.DB)
	boardRepo := postgres.NewBoardRepository(deps.DB)
	commentRepo := postgres.NewCommentRepository(deps.DB)
	views := redisinfra.NewViewMarker(deps.Redis)

	// --- Services ---
	authService := service.NewAuthService(authRepo, deps.Issuer)
	playlistService := service.NewPlaylistService(playlistRepo, deps.Cleaner)
	asmrService := service.NewAsmrService(asmrRepo, deps.Cleaner)
	freeBoardService := service.NewFreeBoardService(boardRepo, views, deps.Cleaner, deps.Log)
	requestBoardService := service.NewRequestBoardService(boardRepo, views, deps.Cleaner, deps.Log)
	commentService := service.NewCommentService(commentRepo, boardRepo)
	uploadService := service.NewUploadService(deps.Store)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	playlistHandler := handler.NewPlaylistHandler(playlistService)
	asmrHandler := handler.NewAsmrHandler(asmrService)
	freeBoardHandler := handler.NewFreeBoardHandler(freeBoardService)
	requestBoardHandler := handler.NewRequestBoardHandler(requestBoardService)
	commentHandler := handler.NewCommentHandler(commentService)
	uploadHandler := handler.NewUploadHandler(uploadService)

	auth := middleware.Auth(deps.Issuer)
	optionalAuth := middleware.OptionalAuth(deps.Issuer)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/profile", authHandler.Profile, auth)
	e.GET("/auth/users", authHandler.ListUsers, auth, adminOnly)

	// --- Playlist and track catalogue ---
	playlists := e.Group("/playlists", auth)
	playlists.POST("", playlistHandler.Create)
	playlists.GET("", playlistHandler.List)
	playlists.GET("/:id", playlistHandler.Get)
	playlists.PUT("/:id", playlistHandler.Update)
	playlists.DELETE("/:id", playlistHandler.Delete)

	asmrs := e.Group("/asmrs", auth)
	asmrs.POST("", asmrHandler.Create)
	asmrs.GET("", asmrHandler.List)
	asmrs.GET("/:id", asmrHandler.Get)
	asmrs.PUT("/:id", asmrHandler.Update)
	asmrs.DELETE("/:id", asmrHandler.Delete)

	// --- Community boards ---
	free := e.Group("/boards/free")
	free.GET("", freeBoardHandler.List)
	free.GET("/me", freeBoardHandler.ListMine, auth)
	free.GET("/:id", freeBoardHandler.Get, optionalAuth)
	free.POST("", freeBoardHandler.Create, auth)
	free.PUT("/:id", freeBoardHandler.Update, auth)
	free.DELETE("/:id", freeBoardHandler.Delete, auth)
	free.POST("/:id/like", freeBoardHandler.ToggleLike, auth)

	request := e.Group("/boards/request")
	request.GET("", requestBoardHandler.List)
	request.GET("/me", requestBoardHandler.ListMine, auth)
	request.GET("/:id", requestBoardHandler.Get, optionalAuth)
	request.POST("", requestBoardHandler.Create, auth)
	request.PUT("/:id", requestBoardHandler.Update, auth)
	request.PATCH("/:id/status", requestBoardHandler.UpdateStatus, auth, adminOnly)
	request.DELETE("/:id", requestBoardHandler.Delete, auth)
	request.POST("/:id/like", requestBoardHandler.ToggleLike, auth)

	// --- Comments ---
	e.POST("/posts/:postId/comments", commentHandler.Create, auth)
	e.GET("/posts/:postId/comments", commentHandler.ListByPost)
	e.GET("/comments/me", commentHandler.ListMine, auth)
	e.PUT("/comments/:id", commentHandler.Update, auth)
	e.DELETE("/comments/:id", commentHandler.Delete, auth)

	// --- Uploads ---
	e.POST("/upload/file", uploadHandler.Upload, auth)
	e.DELETE("/upload/file", uploadHandler.Remove, auth)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
