package models

import "time"

// SoulCount is a singleton aggregate; the table holds at most one row.
type SoulCount struct {
	Soul_Count_ID int       `json:"soulCountId" goqu:"skipinsert"`
	Count         int       `json:"count"`
	Last_Updated  time.Time `json:"lastUpdated"`
}

type SoulCountUpdate struct {
	Count *int `json:"count" binding:"required,gte=0"`
}
