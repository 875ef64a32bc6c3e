package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"sms-dashboard/pkg/models"
)

// Field aliases accepted for each canonical contact field, in priority order.
var (
	contactIDKeys        = []string{"id", "ID", "uuid"}
	contactNameKeys      = []string{"name", "nombre", "nombre_completo", "full_name"}
	contactPhoneKeys     = []string{"phone", "telefono", "telefono_celular", "mobile"}
	contactEmailKeys     = []string{"email", "correo", "mail"}
	contactCreatedAtKeys = []string{"created_at", "fecha", "createdAt"}
)

// NormalizeContact maps a raw backend record onto the canonical Contact.
// For each field the first alias present with a non-null value wins; fields
// with no alias present are left empty.
func NormalizeContact(raw map[string]any) models.Contact {
	return models.Contact{
		ID:        firstValue(raw, contactIDKeys),
		Name:      firstValue(raw, contactNameKeys),
		Phone:     firstValue(raw, contactPhoneKeys),
		Email:     firstValue(raw, contactEmailKeys),
		CreatedAt: firstValue(raw, contactCreatedAtKeys),
	}
}

func normalizeContacts(raw []any) []models.Contact {
	contacts := make([]models.Contact, 0, len(raw))
	for _, item := range raw {
		record, _ := item.(map[string]any)
		contacts = append(contacts, NormalizeContact(record))
	}
	return contacts
}

func firstValue(raw map[string]any, keys []string) string {
	for _, key := range keys {
		if v, ok := raw[key]; ok && v != nil {
			return stringify(v)
		}
	}
	return ""
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// decodeLoose decodes arbitrary JSON keeping numbers exact.
func decodeLoose(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// decodeContactList decodes the contact listing, which is either a bare array
// of records or an object, optionally wrapping its payload under "data", that
// holds "items" with optional "total", "page" and "pages".
func decodeContactList(data []byte) (models.ContactList, error) {
	top, err := decodeLoose(data)
	if err != nil {
		return nil, fmt.Errorf("decode contact list: %w", err)
	}

	if records, ok := top.([]any); ok {
		return models.ContactArray(normalizeContacts(records)), nil
	}

	body := top
	if obj, ok := top.(map[string]any); ok && obj["data"] != nil {
		body = obj["data"]
	}
	obj, _ := body.(map[string]any)

	rawItems, _ := obj["items"].([]any)
	items := normalizeContacts(rawItems)

	envelope := &models.ContactEnvelope{
		Items: items,
		Total: intOr(obj["total"], len(items)),
		Pages: intOr(obj["pages"], 1),
	}
	if page, ok := asInt(obj["page"]); ok {
		envelope.Page = &page
	}
	return envelope, nil
}

// decodeUploadResult accepts {"uploaded": n} or the array of created records.
func decodeUploadResult(data []byte) (*models.UploadResult, error) {
	top, err := decodeLoose(data)
	if err != nil {
		return nil, fmt.Errorf("decode upload result: %w", err)
	}
	switch t := top.(type) {
	case []any:
		return &models.UploadResult{Uploaded: len(t)}, nil
	case map[string]any:
		return &models.UploadResult{Uploaded: intOr(t["uploaded"], 0)}, nil
	}
	return nil, fmt.Errorf("decode upload result: unexpected %T", top)
}

// decodeMessagePage accepts the paged envelope or a bare array, for which the
// page is synthesized.
func decodeMessagePage(data []byte, page int) (*models.MessagePage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []models.Message
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decode messages: %w", err)
		}
		return &models.MessagePage{Items: items, Total: len(items), Page: page, Pages: 1}, nil
	}

	var result models.MessagePage
	if err := json.Unmarshal(trimmed, &result); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	if result.Items == nil {
		result.Items = []models.Message{}
	}
	return &result, nil
}

func asInt(v any) (int, bool) {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return int(i), true
		}
		if f, err := t.Float64(); err == nil {
			return int(f), true
		}
	case float64:
		return int(t), true
	case string:
		if i, err := strconv.Atoi(t); err == nil {
			return i, true
		}
	}
	return 0, false
}

func intOr(v any, fallback int) int {
	if i, ok := asInt(v); ok {
		return i
	}
	return fallback
}
