package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/smartcloset/internal/domain/auth"
	"github.com/yanqian/smartcloset/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, authSvc auth.Service) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(handler.logger),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
	)

	router.GET("/healthz", handler.Healthz)

	api := router.Group("/api/v1")
	{
		api.GET("/healthz", handler.Healthz)

		api.POST("/auth/register", handler.Register)
		api.POST("/auth/login", handler.Login)
		api.POST("/auth/refresh", handler.Refresh)
		api.GET("/auth/google/login", handler.GoogleLogin)
		api.GET("/auth/google/callback", handler.GoogleCallback)

		api.GET("/weather/current", handler.CurrentWeather)
		api.POST("/outfits/preview", handler.PreviewOutfit)
		api.GET("/wardrobe/catalog", handler.WardrobeCatalog)
		api.GET("/vibes/defaults", handler.DefaultVibes)
	}

	secured := api.Group("")
	secured.Use(authMiddleware(authSvc))
	{
		secured.GET("/me", handler.Me)
		secured.PATCH("/me", handler.UpdateMe)
		secured.POST("/auth/logout", handler.Logout)

		secured.GET("/wardrobe/items", handler.ListItems)
		secured.POST("/wardrobe/items", handler.AddItem)
		secured.DELETE("/wardrobe/items", handler.ClearItems)
		secured.GET("/wardrobe/items/:id", handler.GetItem)
		secured.DELETE("/wardrobe/items/:id", handler.DeleteItem)
		secured.GET("/wardrobe/closet", handler.Closet)
		secured.POST("/wardrobe/images", handler.UploadImage)
		secured.GET("/wardrobe/images/*key", handler.ServeImage)

		secured.GET("/vibes", handler.ListVibes)
		secured.POST("/vibes", handler.CreateVibe)
		secured.DELETE("/vibes/:id", handler.DeleteVibe)

		secured.POST("/outfits/generate", handler.GenerateOutfit)

		secured.GET("/explore/users", handler.SearchUsers)
		secured.GET("/explore/users/:id", handler.UserProfile)
		secured.POST("/explore/users/:id/follow", handler.ToggleFollow)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, handler.logger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
