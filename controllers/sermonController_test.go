package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ReachoutToAll/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sermonRows(sermons ...models.Sermon) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"sermon_id", "title", "speaker", "sermon_date", "duration",
		"description", "video_url", "image_url", "created_by",
		"datetime_create", "updated_by", "datetime_update",
	})
	for _, s := range sermons {
		rows.AddRow(s.Sermon_ID, s.Title, s.Speaker, s.Sermon_Date, s.Duration,
			s.Description, s.Video_URL, s.Image_URL, s.Created_By,
			s.Datetime_Create, s.Updated_By, s.Datetime_Update)
	}
	return rows
}

func TestGetSermons_Success(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "sermon"`).
		WillReturnRows(sermonRows(MockSermon()))

	c, w := SetupTestContext()
	c.Request = httptest.NewRequest(http.MethodGet, "/sermons", nil)

	GetSermons(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var sermons []models.Sermon
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sermons))
	require.Len(t, sermons, 1)
	assert.Equal(t, "The Great Commission", sermons[0].Title)
}

func TestGetSermons_DatabaseError(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "sermon"`).
		WillReturnError(errors.New("connection refused"))

	c, w := SetupTestContext()
	c.Request = httptest.NewRequest(http.MethodGet, "/sermons", nil)

	GetSermons(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// A new sermon submitted from the dashboard form lands at the top of the
// refreshed list with its datetime-local date stored as a UTC timestamp.
func TestCreateSermon_SundayService(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	newSermon := models.Sermon{
		Sermon_ID:   2,
		Title:       "Sunday Service",
		Speaker:     "Bawa G. Emmanuel",
		Sermon_Date: time.Date(2024, 1, 7, 10, 0, 0, 0, time.UTC),
		Duration:    "45 mins",
		Description: "Walking in faith",
		Video_URL:   "https://example.com/sermons/2",
	}

	mock.ExpectExec(`INSERT INTO "sermon"`).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectQuery(`SELECT (.+) FROM "sermon"`).
		WillReturnRows(sermonRows(newSermon, MockSermon()))

	c, w := SetupTestContext()
	SetAuthenticatedOperator(c, MockOperator(), false)
	jsonRequest(c, http.MethodPost, "/admin/sermons", gin.H{
		"title":       "Sunday Service",
		"speaker":     "Bawa G. Emmanuel",
		"date":        "2024-01-07T10:00",
		"duration":    "45 mins",
		"description": "Walking in faith",
		"videoUrl":    "https://example.com/sermons/2",
	})

	CreateSermon(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message string          `json:"message"`
		Sermons []models.Sermon `json:"sermons"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Sermon created successfully.", resp.Message)
	require.Len(t, resp.Sermons, 2)
	assert.Equal(t, "Sunday Service", resp.Sermons[0].Title)
	assert.True(t, resp.Sermons[0].Sermon_Date.Equal(time.Date(2024, 1, 7, 10, 0, 0, 0, time.UTC)))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSermon_MissingVideoURL(t *testing.T) {
	_, _, cleanup := SetupTestDB(t)
	defer cleanup()

	c, w := SetupTestContext()
	SetAuthenticatedOperator(c, MockOperator(), false)
	jsonRequest(c, http.MethodPost, "/admin/sermons", gin.H{
		"title":       "Sunday Service",
		"speaker":     "Bawa G. Emmanuel",
		"date":        "2024-01-07T10:00",
		"duration":    "45 mins",
		"description": "Walking in faith",
	})

	CreateSermon(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSermon_Success(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "sermon"`).
		WillReturnRows(sermonRows(MockSermon()))
	mock.ExpectExec(`UPDATE "sermon"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT (.+) FROM "sermon"`).
		WillReturnRows(sermonRows(MockSermon()))

	c, w := SetupTestContext()
	SetAuthenticatedOperator(c, MockOperator(), false)
	c.Params = gin.Params{{Key: "sermon_id", Value: "1"}}
	jsonRequest(c, http.MethodPut, "/admin/sermons/1", gin.H{
		"title":       "The Great Commission (part 2)",
		"speaker":     "Bawa G. Emmanuel",
		"date":        "2024-01-14T10:00",
		"duration":    "50 mins",
		"description": "Continuing the call",
		"videoUrl":    "https://example.com/sermons/1",
	})

	UpdateSermon(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSermon_NotFound(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "sermon"`).
		WillReturnRows(sermonRows())

	c, w := SetupTestContext()
	SetAuthenticatedOperator(c, MockOperator(), false)
	c.Params = gin.Params{{Key: "sermon_id", Value: "99"}}
	jsonRequest(c, http.MethodPut, "/admin/sermons/99", gin.H{
		"title":       "The Great Commission",
		"speaker":     "Bawa G. Emmanuel",
		"date":        "2024-01-14T10:00",
		"duration":    "50 mins",
		"description": "Continuing the call",
		"videoUrl":    "https://example.com/sermons/1",
	})

	UpdateSermon(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteSermon_NotConfirmed(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	c, w := SetupTestContext()
	c.Params = gin.Params{{Key: "sermon_id", Value: "1"}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/admin/sermons/1", nil)

	DeleteSermon(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSermon_Success(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "sermon"`).
		WillReturnRows(sermonRows(MockSermon()))
	mock.ExpectExec(`DELETE FROM "sermon"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT (.+) FROM "event"`).
		WillReturnRows(eventRows())
	mock.ExpectQuery(`SELECT (.+) FROM "sermon"`).
		WillReturnRows(sermonRows())
	mock.ExpectQuery(`SELECT (.+) FROM "document"`).
		WillReturnRows(documentRows())

	c, w := SetupTestContext()
	c.Params = gin.Params{{Key: "sermon_id", Value: "1"}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/admin/sermons/1?confirm=true", nil)

	DeleteSermon(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
