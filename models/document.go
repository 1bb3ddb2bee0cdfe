package models

import "time"

type Document struct {
	Document_ID     int       `json:"documentId" goqu:"skipinsert"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	File_URL        string    `json:"fileUrl"`
	File_Type       string    `json:"fileType"`
	File_Size       string    `json:"fileSize"`
	Image_URL       string    `json:"imageUrl"`
	Created_By      int       `json:"createdBy"`
	Datetime_Create time.Time `json:"createdAt" goqu:"skipinsert"`
	Updated_By      int       `json:"updatedBy"`
	Datetime_Update time.Time `json:"datetimeUpdate" goqu:"skipinsert"`
}

// File_Type and File_Size are display strings ("PDF", "2.4 MB"), not
// validated against the file behind File_URL.
type DocumentCreate struct {
	Title       string `json:"title" form:"title" binding:"required"`
	Description string `json:"description" form:"description" binding:"required"`
	File_URL    string `json:"fileUrl" form:"fileUrl" binding:"required"`
	File_Type   string `json:"fileType" form:"fileType" binding:"required"`
	File_Size   string `json:"fileSize" form:"fileSize" binding:"required"`
	Image_URL   string `json:"imageUrl" form:"imageUrl"`
}
