package api

import (
	"github.com/gin-gonic/gin"
	"github.com/simplecontainer/mirror/pkg/api/middlewares"
	"github.com/simplecontainer/mirror/pkg/logger"
	"github.com/simplecontainer/mirror/pkg/version"
	"go.uber.org/zap"
)

func NewApi(hook Hook, v *version.Version, log *zap.Logger) *Api {
	return &Api{
		Hook:    hook,
		Version: v,
		Logger:  logger.Or(log),
	}
}

// Router serves the api. Repository names containing slashes must be sent path-escaped.
func (api *Api) Router() *gin.Engine {
	router := gin.New()
	router.UseRawPath = true
	router.UnescapePathValues = true

	router.Use(gin.Recovery(), middlewares.Logger(api.Logger), middlewares.CORS())

	v1 := router.Group("/api/v1")
	{
		repositories := v1.Group("/repositories")
		{
			repositories.POST("/:repository/post-receive", api.PostReceive)
			repositories.GET("/:repository/settings", api.GetSettings)
			repositories.PUT("/:repository/settings", api.SetSettings)
		}
	}

	router.GET("/metrics", api.MetricsHandle())
	router.GET("/healthz", api.Health)
	router.GET("/version", api.DisplayVersion)

	return router
}
