package dashboard

import (
	"sms-dashboard/pkg/models"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// HistoryQuery is the state of the message history screen: the page being
// viewed and the status filter, empty for all messages.
type HistoryQuery struct {
	Page   int    `form:"page" json:"page" validate:"gte=0"`
	Limit  int    `form:"limit" json:"limit" validate:"gte=0"`
	Status string `form:"status" json:"status" validate:"omitempty,oneof=pending sent failed"`
}

// Normalized fills in defaults: page 1 and DefaultPageSize, with the limit
// capped at MaxPageSize.
func (q HistoryQuery) Normalized() HistoryQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageSize
	}
	if q.Limit > MaxPageSize {
		q.Limit = MaxPageSize
	}
	return q
}

// WithStatus switches the filter. Changing the filter returns to the first page.
func (q HistoryQuery) WithStatus(status string) HistoryQuery {
	if status != q.Status {
		q.Status = status
		q.Page = 1
	}
	return q
}

func (q HistoryQuery) MessageStatus() models.MessageStatus {
	return models.MessageStatus(q.Status)
}

// Pager tells the history screen which page controls to enable.
type Pager struct {
	Page    int  `json:"page"`
	Pages   int  `json:"pages"`
	HasPrev bool `json:"has_prev"`
	HasNext bool `json:"has_next"`
}

func NewPager(page, pages int) Pager {
	if pages < 1 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	return Pager{
		Page:    page,
		Pages:   pages,
		HasPrev: page > 1,
		HasNext: page < pages,
	}
}
