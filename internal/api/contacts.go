package api

import (
	"encoding/csv"
	"log"
	"net/http"

	"sms-dashboard/internal/dashboard"
	"sms-dashboard/internal/gateway"
	"sms-dashboard/internal/ws"
	"sms-dashboard/pkg/models"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	Client *gateway.Client
	Hub    *ws.Hub
}

func NewContactHandler(client *gateway.Client, hub *ws.Hub) *ContactHandler {
	return &ContactHandler{Client: client, Hub: hub}
}

// GetContacts lists contacts in the shape the backend used. With ?q= only the
// matching records are kept; envelope totals still describe the full list.
func (h *ContactHandler) GetContacts(c *gin.Context) {
	list, err := h.Client.ListContacts(c.Request.Context())
	if err != nil {
		respondError(c, err, h.Client.LoginRoute)
		return
	}

	query := c.Query("q")
	switch l := list.(type) {
	case models.ContactArray:
		c.JSON(http.StatusOK, models.ContactArray(dashboard.FilterContacts(l, query)))
	case *models.ContactEnvelope:
		filtered := *l
		filtered.Items = dashboard.FilterContacts(l.Items, query)
		c.JSON(http.StatusOK, &filtered)
	}
}

func (h *ContactHandler) GetContact(c *gin.Context) {
	contact, err := h.Client.GetContact(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, h.Client.LoginRoute)
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (h *ContactHandler) UploadContacts(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		respondError(c, invalidField("file", "file is required"), h.Client.LoginRoute)
		return
	}
	if err := dashboard.Validate(dashboard.UploadForm{Filename: header.Filename}); err != nil {
		respondError(c, err, h.Client.LoginRoute)
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer file.Close()

	result, err := h.Client.UploadContacts(c.Request.Context(), header.Filename, file)
	if err != nil {
		respondError(c, err, h.Client.LoginRoute)
		return
	}

	h.Hub.NotifyContactsUploaded(*result)
	c.JSON(http.StatusOK, result)
}

// ExportContacts downloads the normalized contact list as a CSV file.
func (h *ContactHandler) ExportContacts(c *gin.Context) {
	list, err := h.Client.ListContacts(c.Request.Context())
	if err != nil {
		respondError(c, err, h.Client.LoginRoute)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=contacts.csv")
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	w.Write([]string{"ID", "Name", "Phone", "Email", "Created At"})
	for _, contact := range list.Contacts() {
		w.Write([]string{contact.ID, contact.Name, contact.Phone, contact.Email, contact.CreatedAt})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Printf("Error writing contacts export: %v", err)
	}
}
