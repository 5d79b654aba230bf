package api

import (
	"github.com/studycircle/studycircle/api/handlers"
	"github.com/studycircle/studycircle/api/middleware"
	"github.com/studycircle/studycircle/pkg/auth"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires every route onto the engine with the injected handler
// and verifier. Reads are public; anything that writes on behalf of a user
// sits behind the Bearer check.
func SetupRouter(router *gin.Engine, h *handlers.Handler, verifier *auth.Verifier, corsOrigins []string) {
	corsConfig := cors.DefaultConfig()
	if len(corsOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = corsOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))
	router.Use(middleware.RequestID())

	router.GET("/healthz", h.Health)

	public := router.Group("/api")
	{
		public.GET("/users", h.ListUsers)
		public.GET("/users/:userID", h.GetUser)
		public.GET("/users/:userID/profile", h.GetProfile)

		public.GET("/timeline", h.Timeline)

		public.GET("/techs/trend", h.GetTrend)
		public.GET("/techs/suggest", h.SuggestTechs)
		public.GET("/techs/:techID/users", h.GetTechRoster)
	}

	authorized := router.Group("/api")
	authorized.Use(middleware.Auth(verifier))
	{
		authorized.POST("/users", h.CreateUser)
		authorized.PUT("/users/:userID/profile", h.UpdateProfile)

		authorized.POST("/sessions/:sessionID/like", h.LikeSession)
		authorized.DELETE("/sessions/:sessionID/like", h.UnlikeSession)
	}
}
