package models

import "time"

// VolunteerUnits is the fixed list of ministry units shown on the
// Get Involved page. Applications for any other unit are rejected.
var VolunteerUnits = []string{
	"Prayer Unit",
	"Kitchen Unit",
	"Choir Unit",
	"Ushering Unit",
	"Children Unit",
	"Media Unit",
	"Welfare Unit",
	"Evangelism Unit",
	"Protocol Unit",
	"Technical Unit",
	"Medical Unit",
	"Transportation Unit",
	"Maintenance Unit",
}

func ValidVolunteerUnit(unit string) bool {
	for _, u := range VolunteerUnits {
		if u == unit {
			return true
		}
	}
	return false
}

type Volunteer struct {
	Volunteer_ID    int       `json:"volunteerId" goqu:"skipinsert"`
	Reference_Code  string    `json:"referenceCode"`
	Full_Name       string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Unit            string    `json:"unit"`
	Message         string    `json:"message"`
	Datetime_Create time.Time `json:"createdAt" goqu:"skipinsert"`
}

type VolunteerCreate struct {
	Full_Name string `json:"name" form:"name" binding:"required"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	Phone     string `json:"phone" form:"phone" binding:"required"`
	Unit      string `json:"unit" form:"unit" binding:"required"`
	Message   string `json:"message" form:"message"`
}
