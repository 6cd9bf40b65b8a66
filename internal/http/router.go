package api

import (
	"log"
	stdhttp "net/http"

	intconfig "backoffice/internal/config"
	h "backoffice/internal/http/handlers"
	"backoffice/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/backend-check", h.BackendCheck)
		api.GET("/routes", h.Routes)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Everything below needs an operator token.
		secured := api.Group("")
		secured.Use(middleware.Auth(h.JWTSecret()))

		secured.POST("/session", h.SetBackendSession)
		secured.DELETE("/session", h.ClearBackendSession)

		secured.GET("/exports", h.ExportHistoryList)
		secured.GET("/exports/:id", h.ExportHistoryDetail)
		secured.POST("/uploads", h.UploadMedia)

		// Generic hotel collections: bookings, rooms, halls, offers,
		// promocodes, unavailabilities, members, roles.
		secured.GET("/:entity", h.ListEntity)
		secured.POST("/:entity", h.CreateEntity)
		secured.POST("/:entity/export", h.ExportEntity)
		secured.GET("/:entity/:id", h.GetEntity)
		secured.PUT("/:entity/:id", h.UpdateEntity)
		secured.DELETE("/:entity/:id", h.DeleteEntity)
	}

	h.SetRouter(r)
	return r
}
