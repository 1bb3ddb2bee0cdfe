package models

import "time"

type OperatorProfile struct {
	Operator_Profile_ID int       `json:"operatorProfileId" goqu:"skipinsert"`
	Username            string    `json:"username"`
	Password            string    `json:"-"`
	Email               string    `json:"email"`
	First_Name          string    `json:"firstName"`
	Last_Name           string    `json:"lastName"`
	Admin               bool      `json:"admin"`
	Created_By          int       `json:"createdBy"`
	Datetime_Create     time.Time `json:"datetimeCreate" goqu:"skipinsert"`
	Updated_By          int       `json:"updatedBy"`
	Datetime_Update     time.Time `json:"datetimeUpdate" goqu:"skipinsert"`
}

type OperatorSignup struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required,min=6"`
	Email      string `json:"email" binding:"required,email"`
	First_Name string `json:"firstName"`
	Last_Name  string `json:"lastName"`
	Admin      bool   `json:"admin"`
}

type Login struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
