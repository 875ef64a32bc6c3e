// Package gateway is the single egress point from the dashboard to the SMS
// backend. It attaches the session's bearer token, normalizes the backend's
// response shapes and maps failures onto a small error taxonomy.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"sms-dashboard/internal/config"
	"sms-dashboard/internal/session"
)

// Navigator moves the user's screens to another route.
type Navigator interface {
	Navigate(route string)
}

// NavigatorFunc adapts a plain function to Navigator.
type NavigatorFunc func(route string)

func (f NavigatorFunc) Navigate(route string) { f(route) }

type Client struct {
	BaseURL    string
	LoginRoute string
	HTTPClient *http.Client
	Session    session.Store
	Navigator  Navigator
}

func NewClient(cfg *config.Config, store session.Store, nav Navigator) *Client {
	if nav == nil {
		nav = NavigatorFunc(func(string) {})
	}
	return &Client{
		BaseURL:    strings.TrimRight(cfg.APIBaseURL, "/"),
		LoginRoute: cfg.LoginRoute,
		HTTPClient: &http.Client{Timeout: cfg.HTTPTimeout},
		Session:    store,
		Navigator:  nav,
	}
}

// multipartPayload is a prepared multipart/form-data body. Its content type
// carries the boundary generated by the multipart writer.
type multipartPayload struct {
	body        *bytes.Buffer
	contentType string
}

// --- Helper Functions ---

// sendRequest performs one backend call. body is nil, a *multipartPayload or
// any value encodable as JSON. When out is non-nil the 2xx response body is
// decoded into it.
func (c *Client) sendRequest(ctx context.Context, method, path string, body any, headers map[string]string, out any) error {
	var bodyReader io.Reader
	contentType := "application/json"
	switch b := body.(type) {
	case nil:
	case *multipartPayload:
		bodyReader = b.body
		contentType = b.contentType
	default:
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}
	// The token is read once per call; a later Clear does not affect this request.
	token, ok, err := c.Session.Get()
	if err != nil {
		return err
	}
	if ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return c.expireSession()
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newRequestError(resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// expireSession handles a rejected token: the session is dropped and the
// screens are sent to the login route.
func (c *Client) expireSession() error {
	clearErr := c.Session.Clear()
	c.Navigator.Navigate(c.LoginRoute)
	if clearErr != nil {
		return errors.Join(ErrUnauthorized, clearErr)
	}
	return ErrUnauthorized
}
