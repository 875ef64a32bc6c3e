package models

// Contact is the canonical contact record shown on the dashboard.
// An empty ID means the backend sent no identifier for the record.
type Contact struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ContactList is the result of listing contacts. The backend answers either
// with a bare array or with an envelope, and callers must handle both.
type ContactList interface {
	Contacts() []Contact
	isContactList()
}

// ContactArray is a bare array reply.
type ContactArray []Contact

func (a ContactArray) Contacts() []Contact { return a }
func (ContactArray) isContactList()        {}

// ContactEnvelope is an enveloped reply with paging totals.
type ContactEnvelope struct {
	Items []Contact `json:"items"`
	Total int       `json:"total"`
	Page  *int      `json:"page,omitempty"`
	Pages int       `json:"pages"`
}

func (e *ContactEnvelope) Contacts() []Contact { return e.Items }
func (*ContactEnvelope) isContactList()        {}

// UploadResult reports how many contacts the backend ingested from a CSV file.
type UploadResult struct {
	Uploaded int `json:"uploaded"`
}
