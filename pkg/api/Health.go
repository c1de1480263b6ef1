package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/simplecontainer/mirror/pkg/static"
)

func (api *Api) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response(http.StatusOK, static.RESPONSE_HEALTHY, nil, nil))
}
