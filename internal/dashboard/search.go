package dashboard

import (
	"strings"

	"sms-dashboard/pkg/models"
)

// FilterContacts keeps the contacts whose name contains query, ignoring case,
// or whose phone contains it verbatim. An empty query keeps everything.
func FilterContacts(contacts []models.Contact, query string) []models.Contact {
	if query == "" {
		return contacts
	}
	lower := strings.ToLower(query)
	out := make([]models.Contact, 0, len(contacts))
	for _, c := range contacts {
		if strings.Contains(strings.ToLower(c.Name), lower) || strings.Contains(c.Phone, query) {
			out = append(out, c)
		}
	}
	return out
}
