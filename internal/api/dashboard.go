package api

import (
	"net/http"
	"time"

	"sms-dashboard/internal/dashboard"
	"sms-dashboard/internal/gateway"
	"sms-dashboard/internal/ws"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	Client *gateway.Client
	Hub    *ws.Hub
	Now    func() time.Time
}

func NewDashboardHandler(client *gateway.Client, hub *ws.Hub) *DashboardHandler {
	return &DashboardHandler{Client: client, Hub: hub, Now: time.Now}
}

func (h *DashboardHandler) GetMessages(c *gin.Context) {
	var query dashboard.HistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := dashboard.Validate(query); err != nil {
		respondError(c, err, h.Client.LoginRoute)
		return
	}
	query = query.Normalized()

	page, err := h.Client.ListMessages(c.Request.Context(), query.Page, query.Limit, query.MessageStatus())
	if err != nil {
		respondError(c, err, h.Client.LoginRoute)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":  page.Items,
		"total":  page.Total,
		"page":   page.Page,
		"pages":  page.Pages,
		"limit":  query.Limit,
		"status": query.Status,
		"pager":  dashboard.NewPager(page.Page, page.Pages),
	})
}

func (h *DashboardHandler) SendMessage(c *gin.Context) {
	var form dashboard.MessageForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := dashboard.Validate(form); err != nil {
		respondError(c, err, h.Client.LoginRoute)
		return
	}

	msg, err := h.Client.SendMessage(c.Request.Context(), form.Content, form.ContactID)
	if err != nil {
		respondError(c, err, h.Client.LoginRoute)
		return
	}

	h.Hub.NotifyMessageSent(*msg)
	c.JSON(http.StatusCreated, msg)
}

type PreviewRequest struct {
	Content      string `json:"content"`
	ContactID    string `json:"contact_id"`
	ContactPhone string `json:"contact_phone"`
}

// Preview renders the phone mockup. When only a contact id is given, the
// contact is fetched to show its phone number.
func (h *DashboardHandler) Preview(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	phone := req.ContactPhone
	if phone == "" && req.ContactID != "" {
		contact, err := h.Client.GetContact(c.Request.Context(), req.ContactID)
		if err != nil {
			respondError(c, err, h.Client.LoginRoute)
			return
		}
		phone = contact.Phone
	}

	c.JSON(http.StatusOK, dashboard.BuildPreview(req.Content, phone, h.Now()))
}
