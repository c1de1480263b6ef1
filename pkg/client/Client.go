package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/simplecontainer/mirror/pkg/logger"
	"go.uber.org/zap"
)

func New(apiURL string) *Client {
	return &Client{
		APIURL:     strings.TrimRight(apiURL, "/"),
		Http:       &http.Client{Timeout: 10 * time.Second},
		MaxElapsed: 30 * time.Second,
	}
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status: %d, response: %s", e.Status, e.Body)
}

// Trigger sends the post-receive event of a repository to the daemon. Connection errors and 5xx
// responses are retried with exponential backoff, any other response is final.
func (c *Client) Trigger(ctx context.Context, repository string) error {
	if c.APIURL == "" {
		return fmt.Errorf("API URL is not set")
	}

	triggerURL := fmt.Sprintf("%s/api/v1/repositories/%s/post-receive", c.APIURL, url.PathEscape(repository))

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.MaxElapsedTime = c.MaxElapsed

	err := backoff.Retry(func() error {
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, triggerURL, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}

		resp, err := c.Http.Do(req)
		if err != nil {
			logger.Log.Debug("trigger attempt failed, will retry", zap.Error(err))
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusAccepted || resp.StatusCode == http.StatusOK {
			return nil
		}

		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		statusErr := &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}

		if resp.StatusCode >= http.StatusInternalServerError {
			logger.Log.Debug("trigger failed with status, will retry", zap.Int("status", resp.StatusCode))
			return statusErr
		}

		return backoff.Permanent(statusErr)
	}, backoff.WithContext(expBackoff, ctx))

	if err != nil {
		return fmt.Errorf("trigger failed: %w", err)
	}

	return nil
}
