// Package client is a typed Go client for the zoo-ops API, used by zooctl
// and by anything else that talks to the server from Go.
package client

import (
	"encoding/json"
	"fmt"

	"zoo-ops/internal/platform/httpclient"
)

type Client struct {
	http *httpclient.Client

	// Dev-mode identity headers, set with As().
	userID string
	role   string
}

func New(baseURL string) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(baseURL, httpclient.DefaultTimeout)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

// As sets the dev-mode identity sent with every request.
func (c *Client) As(userID, role string) *Client {
	c.userID = userID
	c.role = role
	return c
}

func (c *Client) headers() map[string]string {
	h := map[string]string{}
	if c.userID != "" {
		h["X-Debug-User-ID"] = c.userID
	}
	if c.role != "" {
		h["X-Debug-Role"] = c.role
	}
	return h
}

// apiError turns a non-2xx response into the server's message when the body
// carries the standard envelope.
func apiError(err error) error {
	he, ok := err.(*httpclient.HTTPError)
	if !ok {
		return err
	}

	var env struct {
		Message string `json:"message"`
	}
	if jsonErr := json.Unmarshal([]byte(he.Body), &env); jsonErr == nil && env.Message != "" {
		return fmt.Errorf("%s", env.Message)
	}
	return fmt.Errorf("HTTP error! status: %d", he.StatusCode)
}
