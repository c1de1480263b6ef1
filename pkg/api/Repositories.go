package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/simplecontainer/mirror/pkg/credentials"
	"github.com/simplecontainer/mirror/pkg/repository"
	"github.com/simplecontainer/mirror/pkg/settings"
	"github.com/simplecontainer/mirror/pkg/static"
	"github.com/simplecontainer/mirror/pkg/validation"
	"go.uber.org/zap"
)

// PostReceive queues a push to every mirror of the repository and answers before any push runs.
func (api *Api) PostReceive(c *gin.Context) {
	attempts, err := api.Hook.PostReceive(c.Request.Context(), c.Param("repository"))

	if err != nil {
		api.failed(c, err)
		return
	}

	scheduled := make([]Scheduled, 0, len(attempts))
	for _, attempt := range attempts {
		scheduled = append(scheduled, Scheduled{
			ID:     attempt.ID.String(),
			Mirror: credentials.RedactUrl(attempt.Target.Url),
			Index:  attempt.Target.Index,
		})
	}

	c.JSON(http.StatusAccepted, response(http.StatusAccepted, static.RESPONSE_SCHEDULED, nil, scheduled))
}

func (api *Api) GetSettings(c *gin.Context) {
	targets, err := api.Hook.Targets(c.Request.Context(), c.Param("repository"))

	if err != nil {
		api.failed(c, err)
		return
	}

	c.JSON(http.StatusOK, response(http.StatusOK, "", nil, targets))
}

// SetSettings validates and saves a flat settings map, then schedules a push to every saved mirror.
func (api *Api) SetSettings(c *gin.Context) {
	flat := settings.Flat{}

	if err := c.ShouldBindJSON(&flat); err != nil {
		c.JSON(http.StatusBadRequest, response(http.StatusBadRequest, static.RESPONSE_BAD_REQUEST, err, nil))
		return
	}

	reporter := validation.NewErrors()

	if !api.Hook.Validate(c.Request.Context(), c.Param("repository"), flat, reporter) {
		c.JSON(http.StatusBadRequest, response(http.StatusBadRequest, static.RESPONSE_INVALID, nil, reporter))
		return
	}

	c.JSON(http.StatusOK, response(http.StatusOK, static.RESPONSE_SAVED, nil, nil))
}

func (api *Api) failed(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrInvalidName):
		c.JSON(http.StatusBadRequest, response(http.StatusBadRequest, static.RESPONSE_BAD_REQUEST, err, nil))
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, response(http.StatusNotFound, static.RESPONSE_NOT_FOUND, err, nil))
	default:
		api.Logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, response(http.StatusInternalServerError, static.RESPONSE_INTERNAL_ERROR, err, nil))
	}
}
