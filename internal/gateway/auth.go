package gateway

import (
	"context"
	"fmt"
	"net/http"

	"sms-dashboard/pkg/models"
)

// Login exchanges credentials for a token and stores it in the session before
// returning the backend's response.
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	creds := models.Credentials{Email: email, Password: password}
	if err := c.sendRequest(ctx, http.MethodPost, "/auth/login", creds, nil, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, ErrMissingToken
	}
	if err := c.Session.Set(resp.AccessToken); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}
	return &resp, nil
}

// Register creates an account. It does not log the user in.
func (c *Client) Register(ctx context.Context, email, password string) (map[string]any, error) {
	var resp map[string]any
	creds := models.Credentials{Email: email, Password: password}
	if err := c.sendRequest(ctx, http.MethodPost, "/auth/register", creds, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Logout drops the session and shows the login route. It never contacts the
// backend and cannot fail.
func (c *Client) Logout() {
	_ = c.Session.Clear()
	c.Navigator.Navigate(c.LoginRoute)
}
