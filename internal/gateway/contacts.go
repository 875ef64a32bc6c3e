package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"

	"sms-dashboard/pkg/models"
)

// ListContacts fetches every contact. The result is a models.ContactArray or a
// *models.ContactEnvelope depending on what the backend sent; records are
// normalized either way.
func (c *Client) ListContacts(ctx context.Context) (models.ContactList, error) {
	var raw json.RawMessage
	if err := c.sendRequest(ctx, http.MethodGet, "/contacts", nil, nil, &raw); err != nil {
		return nil, err
	}
	return decodeContactList(raw)
}

// GetContact fetches one contact by id, normalized like listed contacts.
func (c *Client) GetContact(ctx context.Context, id string) (*models.Contact, error) {
	var raw json.RawMessage
	if err := c.sendRequest(ctx, http.MethodGet, "/contacts/"+url.PathEscape(id), nil, nil, &raw); err != nil {
		return nil, err
	}
	top, err := decodeLoose(raw)
	if err != nil {
		return nil, fmt.Errorf("decode contact: %w", err)
	}
	record, ok := top.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("decode contact: unexpected %T", top)
	}
	contact := NormalizeContact(record)
	return &contact, nil
}

// UploadContacts sends a CSV file as multipart form data under the "file" field.
func (c *Client) UploadContacts(ctx context.Context, filename string, file io.Reader) (*models.UploadResult, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	payload := &multipartPayload{body: body, contentType: writer.FormDataContentType()}
	var raw json.RawMessage
	if err := c.sendRequest(ctx, http.MethodPost, "/contacts/upload", payload, nil, &raw); err != nil {
		return nil, err
	}
	return decodeUploadResult(raw)
}
