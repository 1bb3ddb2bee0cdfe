package controllers

import (
	"time"

	"github.com/ReachoutToAll/models"
	"golang.org/x/crypto/bcrypt"
)

// Test fixture data for use in tests

// MockOperator creates a sample operator profile for testing
func MockOperator() models.OperatorProfile {
	return models.OperatorProfile{
		Operator_Profile_ID: 1,
		Username:            "testoperator",
		First_Name:          "Test",
		Last_Name:           "Operator",
		Email:               "operator@example.com",
		Admin:               false,
		Created_By:          1,
		Updated_By:          1,
		Datetime_Create:     time.Now(),
		Datetime_Update:     time.Now(),
	}
}

// MockOperatorWithPassword creates a sample operator with a bcrypt hashed password
// Password is "password123" - use this in tests
func MockOperatorWithPassword() models.OperatorProfile {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	operator := MockOperator()
	operator.Password = string(hashedPassword)
	return operator
}

// MockAdminOperator creates a sample admin operator for testing
func MockAdminOperator() models.OperatorProfile {
	return models.OperatorProfile{
		Operator_Profile_ID: 2,
		Username:            "adminoperator",
		First_Name:          "Admin",
		Last_Name:           "Operator",
		Email:               "admin@example.com",
		Admin:               true,
		Created_By:          1,
		Updated_By:          1,
		Datetime_Create:     time.Now(),
		Datetime_Update:     time.Now(),
	}
}

// MockEvent creates a sample event for testing
func MockEvent() models.Event {
	return models.Event{
		Event_ID:        1,
		Title:           "Mission Outreach",
		Description:     "Annual mission outreach to the northern villages",
		Event_Date:      time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC),
		Location:        "Northern Region",
		Image_URL:       "https://example.com/outreach.jpg",
		Video_URL:       "",
		Event_Type:      models.EventTypeFuture,
		Created_By:      1,
		Updated_By:      1,
		Datetime_Create: time.Now(),
		Datetime_Update: time.Now(),
	}
}

// MockSermon creates a sample sermon for testing
func MockSermon() models.Sermon {
	return models.Sermon{
		Sermon_ID:       1,
		Title:           "The Great Commission",
		Speaker:         "Bawa G. Emmanuel",
		Sermon_Date:     time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		Duration:        "50 mins",
		Description:     "A call to carry the gospel to the ends of the earth",
		Video_URL:       "https://example.com/sermons/1",
		Image_URL:       "",
		Created_By:      1,
		Updated_By:      1,
		Datetime_Create: time.Now(),
		Datetime_Update: time.Now(),
	}
}

// MockDocument creates a sample document for testing
func MockDocument() models.Document {
	return models.Document{
		Document_ID:     1,
		Title:           "Discipleship Manual",
		Description:     "Study material for new converts",
		File_URL:        "https://example.com/docs/manual.pdf",
		File_Type:       "PDF",
		File_Size:       "2.4 MB",
		Image_URL:       "",
		Created_By:      1,
		Updated_By:      1,
		Datetime_Create: time.Now(),
		Datetime_Update: time.Now(),
	}
}
