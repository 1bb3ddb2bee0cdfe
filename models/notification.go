package models

import "time"

// Notification type constants
const (
	NotificationTypeVolunteerApplication = "VOLUNTEER_APPLICATION"
	NotificationTypePrayerRequest        = "PRAYER_REQUEST"
)

// Notification status constants
const (
	NotificationStatusRead   = "READ"
	NotificationStatusUnread = "UNREAD"
)

type Notification struct {
	Notification_ID      int       `json:"notificationId" goqu:"skipinsert"`
	Operator_Profile_ID  int       `json:"operatorProfileId"`
	Notification_Type    string    `json:"notificationType"`
	Notification_Message string    `json:"notificationMessage"`
	Notification_Status  string    `json:"notificationStatus"`
	Datetime_Create      time.Time `json:"datetimeCreate" goqu:"skipinsert"`
	Datetime_Update      time.Time `json:"datetimeUpdate" goqu:"skipinsert"`
}
