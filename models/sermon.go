package models

import "time"

type Sermon struct {
	Sermon_ID       int       `json:"sermonId" goqu:"skipinsert"`
	Title           string    `json:"title"`
	Speaker         string    `json:"speaker"`
	Sermon_Date     time.Time `json:"date"`
	Duration        string    `json:"duration"`
	Description     string    `json:"description"`
	Video_URL       string    `json:"videoUrl"`
	Image_URL       string    `json:"imageUrl"`
	Created_By      int       `json:"createdBy"`
	Datetime_Create time.Time `json:"createdAt" goqu:"skipinsert"`
	Updated_By      int       `json:"updatedBy"`
	Datetime_Update time.Time `json:"datetimeUpdate" goqu:"skipinsert"`
}

type SermonCreate struct {
	Title       string `json:"title" form:"title" binding:"required"`
	Speaker     string `json:"speaker" form:"speaker" binding:"required"`
	Date        string `json:"date" form:"date" binding:"required"`
	Duration    string `json:"duration" form:"duration" binding:"required"`
	Description string `json:"description" form:"description" binding:"required"`
	Video_URL   string `json:"videoUrl" form:"videoUrl" binding:"required"`
	Image_URL   string `json:"imageUrl" form:"imageUrl"`
}
