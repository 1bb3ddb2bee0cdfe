package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ReachoutToAll/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventRows(events ...models.Event) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"event_id", "title", "description", "event_date", "location",
		"image_url", "video_url", "event_type", "created_by",
		"datetime_create", "updated_by", "datetime_update",
	})
	for _, e := range events {
		rows.AddRow(e.Event_ID, e.Title, e.Description, e.Event_Date, e.Location,
			e.Image_URL, e.Video_URL, e.Event_Type, e.Created_By,
			e.Datetime_Create, e.Updated_By, e.Datetime_Update)
	}
	return rows
}

func jsonRequest(c *gin.Context, method, target string, payload interface{}) {
	body, _ := json.Marshal(payload)
	c.Request = httptest.NewRequest(method, target, bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")
}

func TestGetEvents_Success(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "event"`).
		WillReturnRows(eventRows(MockEvent()))

	c, w := SetupTestContext()
	c.Request = httptest.NewRequest(http.MethodGet, "/events", nil)

	GetEvents(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var events []models.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "Mission Outreach", events[0].Title)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEvents_EmptyListNotNull(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "event"`).
		WillReturnRows(eventRows())

	c, w := SetupTestContext()
	c.Request = httptest.NewRequest(http.MethodGet, "/events", nil)

	GetEvents(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetEvents_DatabaseError(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "event"`).
		WillReturnError(errors.New("connection refused"))

	c, w := SetupTestContext()
	c.Request = httptest.NewRequest(http.MethodGet, "/events", nil)

	GetEvents(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCreateEvent_Success(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	mock.ExpectExec(`INSERT INTO "event"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(`SELECT (.+) FROM "event"`).
		WillReturnRows(eventRows(MockEvent()))

	c, w := SetupTestContext()
	SetAuthenticatedOperator(c, MockOperator(), false)
	jsonRequest(c, http.MethodPost, "/admin/events", gin.H{
		"title":       "Mission Outreach",
		"description": "Annual mission outreach to the northern villages",
		"date":        "2024-06-15T09:00",
		"location":    "Northern Region",
		"type":        "future",
	})

	CreateEvent(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message string         `json:"message"`
		Events  []models.Event `json:"events"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Event created successfully.", resp.Message)
	assert.Len(t, resp.Events, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEvent_InvalidType(t *testing.T) {
	_, _, cleanup := SetupTestDB(t)
	defer cleanup()

	c, w := SetupTestContext()
	SetAuthenticatedOperator(c, MockOperator(), false)
	jsonRequest(c, http.MethodPost, "/admin/events", gin.H{
		"title":       "Mission Outreach",
		"description": "Annual mission outreach",
		"date":        "2024-06-15T09:00",
		"location":    "Northern Region",
		"type":        "upcoming",
	})

	CreateEvent(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateEvent_MissingTitle(t *testing.T) {
	_, _, cleanup := SetupTestDB(t)
	defer cleanup()

	c, w := SetupTestContext()
	SetAuthenticatedOperator(c, MockOperator(), false)
	jsonRequest(c, http.MethodPost, "/admin/events", gin.H{
		"description": "Annual mission outreach",
		"date":        "2024-06-15T09:00",
		"location":    "Northern Region",
		"type":        "future",
	})

	CreateEvent(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateEvent_InvalidDate(t *testing.T) {
	_, _, cleanup := SetupTestDB(t)
	defer cleanup()

	c, w := SetupTestContext()
	SetAuthenticatedOperator(c, MockOperator(), false)
	jsonRequest(c, http.MethodPost, "/admin/events", gin.H{
		"title":       "Mission Outreach",
		"description": "Annual mission outreach",
		"date":        "not-a-date",
		"location":    "Northern Region",
		"type":        "future",
	})

	CreateEvent(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateEvent_DatabaseError(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	mock.ExpectExec(`INSERT INTO "event"`).
		WillReturnError(errors.New("insert failed"))

	c, w := SetupTestContext()
	SetAuthenticatedOperator(c, MockOperator(), false)
	jsonRequest(c, http.MethodPost, "/admin/events", gin.H{
		"title":       "Mission Outreach",
		"description": "Annual mission outreach",
		"date":        "2024-06-15T09:00",
		"location":    "Northern Region",
		"type":        "future",
	})

	CreateEvent(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestUpdateEvent_Success(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "event"`).
		WillReturnRows(eventRows(MockEvent()))
	mock.ExpectExec(`UPDATE "event"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT (.+) FROM "event"`).
		WillReturnRows(eventRows(MockEvent()))

	c, w := SetupTestContext()
	SetAuthenticatedOperator(c, MockOperator(), false)
	c.Params = gin.Params{{Key: "event_id", Value: "1"}}
	jsonRequest(c, http.MethodPut, "/admin/events/1", gin.H{
		"title":       "Mission Outreach (rescheduled)",
		"description": "Annual mission outreach",
		"date":        "2024-07-01T09:00",
		"location":    "Northern Region",
		"type":        "future",
	})

	UpdateEvent(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Event updated successfully.", resp.Message)

	// UPDATE was issued, not a second INSERT
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEvent_NotFound(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "event"`).
		WillReturnRows(eventRows())

	c, w := SetupTestContext()
	SetAuthenticatedOperator(c, MockOperator(), false)
	c.Params = gin.Params{{Key: "event_id", Value: "99"}}
	jsonRequest(c, http.MethodPut, "/admin/events/99", gin.H{
		"title":       "Mission Outreach",
		"description": "Annual mission outreach",
		"date":        "2024-07-01T09:00",
		"location":    "Northern Region",
		"type":        "future",
	})

	UpdateEvent(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateEvent_InvalidID(t *testing.T) {
	_, _, cleanup := SetupTestDB(t)
	defer cleanup()

	c, w := SetupTestContext()
	SetAuthenticatedOperator(c, MockOperator(), false)
	c.Params = gin.Params{{Key: "event_id", Value: "abc"}}
	c.Request = httptest.NewRequest(http.MethodPut, "/admin/events/abc", nil)

	UpdateEvent(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteEvent_NotConfirmed(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	c, w := SetupTestContext()
	c.Params = gin.Params{{Key: "event_id", Value: "1"}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/admin/events/1", nil)

	DeleteEvent(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	// No database access without confirm=true
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEvent_Success(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "event"`).
		WillReturnRows(eventRows(MockEvent()))
	mock.ExpectExec(`DELETE FROM "event"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT (.+) FROM "event"`).
		WillReturnRows(eventRows())
	mock.ExpectQuery(`SELECT (.+) FROM "sermon"`).
		WillReturnRows(sermonRows(MockSermon()))
	mock.ExpectQuery(`SELECT (.+) FROM "document"`).
		WillReturnRows(documentRows(MockDocument()))

	c, w := SetupTestContext()
	c.Params = gin.Params{{Key: "event_id", Value: "1"}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/admin/events/1?confirm=true", nil)

	DeleteEvent(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message   string            `json:"message"`
		Events    []models.Event    `json:"events"`
		Sermons   []models.Sermon   `json:"sermons"`
		Documents []models.Document `json:"documents"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Event deleted successfully.", resp.Message)
	assert.Len(t, resp.Events, 0)
	assert.Len(t, resp.Sermons, 1)
	assert.Len(t, resp.Documents, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEvent_NotFound(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "event"`).
		WillReturnRows(eventRows())

	c, w := SetupTestContext()
	c.Params = gin.Params{{Key: "event_id", Value: "99"}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/admin/events/99?confirm=true", nil)

	DeleteEvent(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
