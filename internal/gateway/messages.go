package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"sms-dashboard/pkg/models"
)

// ListMessages fetches one page of the message history. A non-empty status is
// sent to the backend as a filter; no filtering happens locally.
func (c *Client) ListMessages(ctx context.Context, page, limit int, status models.MessageStatus) (*models.MessagePage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	if status != "" {
		query.Set("status", string(status))
	}

	var raw json.RawMessage
	if err := c.sendRequest(ctx, http.MethodGet, "/messages?"+query.Encode(), nil, nil, &raw); err != nil {
		return nil, err
	}
	return decodeMessagePage(raw, page)
}

// SendMessage asks the backend to send content to a contact and returns the
// created record with its backend-assigned id and status.
func (c *Client) SendMessage(ctx context.Context, content, contactID string) (*models.Message, error) {
	var msg models.Message
	req := models.SendMessageRequest{Content: content, ContactID: contactID}
	if err := c.sendRequest(ctx, http.MethodPost, "/messages", req, nil, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
