package models

import "time"

type PrayerRequest struct {
	Prayer_Request_ID int       `json:"prayerRequestId" goqu:"skipinsert"`
	Full_Name         string    `json:"name"`
	Email             string    `json:"email"`
	Request           string    `json:"request"`
	Datetime_Create   time.Time `json:"createdAt" goqu:"skipinsert"`
}

type PrayerRequestCreate struct {
	Full_Name string `json:"name" form:"name" binding:"required"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	Request   string `json:"request" form:"request" binding:"required"`
}
