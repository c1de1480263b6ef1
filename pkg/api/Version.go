package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (api *Api) DisplayVersion(c *gin.Context) {
	c.JSON(http.StatusOK, response(http.StatusOK, "", nil, api.Version))
}
