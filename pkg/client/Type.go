package client

import (
	"net/http"
	"time"
)

type Client struct {
	APIURL     string
	Http       *http.Client
	MaxElapsed time.Duration
}

// StatusError is a non-successful api response.
type StatusError struct {
	Status int
	Body   string
}
