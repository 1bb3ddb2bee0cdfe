package models

import "time"

// Event type constants
const (
	EventTypePast    = "past"
	EventTypeCurrent = "current"
	EventTypeFuture  = "future"
)

type Event struct {
	Event_ID        int       `json:"eventId" goqu:"skipinsert"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Event_Date      time.Time `json:"date"`
	Location        string    `json:"location"`
	Image_URL       string    `json:"imageUrl"`
	Video_URL       string    `json:"videoUrl"`
	Event_Type      string    `json:"type"`
	Created_By      int       `json:"createdBy"`
	Datetime_Create time.Time `json:"datetimeCreate" goqu:"skipinsert"`
	Updated_By      int       `json:"updatedBy"`
	Datetime_Update time.Time `json:"datetimeUpdate" goqu:"skipinsert"`
}

type EventCreate struct {
	Title       string `json:"title" form:"title" binding:"required"`
	Description string `json:"description" form:"description" binding:"required"`
	Date        string `json:"date" form:"date" binding:"required"`
	Location    string `json:"location" form:"location" binding:"required"`
	Image_URL   string `json:"imageUrl" form:"imageUrl"`
	Video_URL   string `json:"videoUrl" form:"videoUrl"`
	Event_Type  string `json:"type" form:"type" binding:"required,oneof=past current future"`
}
