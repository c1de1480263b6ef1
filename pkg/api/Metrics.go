package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (api *Api) MetricsHandle() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
