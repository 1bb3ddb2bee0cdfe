package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/ReachoutToAll/initializers"
	"github.com/ReachoutToAll/models"
	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
)

// fetchSermons returns all sermons, most recent date first.
func fetchSermons() ([]models.Sermon, error) {
	sermons := []models.Sermon{}
	err := initializers.DB.From("sermon").
		Order(goqu.C("sermon_date").Desc()).
		ScanStructs(&sermons)
	return sermons, err
}

// GetSermons - list all sermons (public Resources page and admin dashboard)
func GetSermons(c *gin.Context) {
	sermons, err := fetchSermons()
	if err != nil {
		log.Println("Error fetching sermons:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sermons", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sermons)
}

// CreateSermon - create a new sermon from the dashboard form
func CreateSermon(c *gin.Context) {
	currentUser := c.MustGet("currentUser").(models.OperatorProfile)

	var body models.SermonCreate
	if err := c.ShouldBind(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sermonDate, err := parseFormTimestamp(body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date", "details": err.Error()})
		return
	}

	sermon := models.Sermon{
		Title:       body.Title,
		Speaker:     body.Speaker,
		Sermon_Date: sermonDate,
		Duration:    body.Duration,
		Description: body.Description,
		Video_URL:   body.Video_URL,
		Image_URL:   body.Image_URL,
		Created_By:  currentUser.Operator_Profile_ID,
		Updated_By:  currentUser.Operator_Profile_ID,
	}

	insert := initializers.DB.Insert("sermon").Rows(sermon).Executor()
	if _, err := insert.Exec(); err != nil {
		log.Println("Error creating sermon:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sermon", "details": err.Error()})
		return
	}

	sermons, err := fetchSermons()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sermons after create", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Sermon created successfully.",
		"sermons": sermons,
	})
}

// UpdateSermon - update an existing sermon
func UpdateSermon(c *gin.Context) {
	currentUser := c.MustGet("currentUser").(models.OperatorProfile)

	sermonID, err := strconv.Atoi(c.Param("sermon_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sermon ID"})
		return
	}

	var existing models.Sermon
	found, err := initializers.DB.From("sermon").
		Where(goqu.C("sermon_id").Eq(sermonID)).
		ScanStruct(&existing)

	if err != nil || !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sermon not found"})
		return
	}

	var body models.SermonCreate
	if err := c.ShouldBind(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sermonDate, err := parseFormTimestamp(body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date", "details": err.Error()})
		return
	}

	update := initializers.DB.Update("sermon").
		Set(goqu.Record{
			"title":       body.Title,
			"speaker":     body.Speaker,
			"sermon_date": sermonDate,
			"duration":    body.Duration,
			"description": body.Description,
			"video_url":   body.Video_URL,
			"image_url":   body.Image_URL,
			"updated_by":  currentUser.Operator_Profile_ID,
		}).
		Where(goqu.C("sermon_id").Eq(sermonID))

	if _, err := update.Executor().Exec(); err != nil {
		log.Println("Error updating sermon:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sermon", "details": err.Error()})
		return
	}

	sermons, err := fetchSermons()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sermons after update", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Sermon updated successfully.",
		"sermons": sermons,
	})
}

// DeleteSermon - delete a sermon; requires explicit ?confirm=true
func DeleteSermon(c *gin.Context) {
	sermonID, err := strconv.Atoi(c.Param("sermon_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sermon ID"})
		return
	}

	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Delete not confirmed. Pass confirm=true to delete this sermon."})
		return
	}

	var existing models.Sermon
	found, err := initializers.DB.From("sermon").
		Where(goqu.C("sermon_id").Eq(sermonID)).
		ScanStruct(&existing)

	if err != nil || !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sermon not found"})
		return
	}

	_, err = initializers.DB.Delete("sermon").
		Where(goqu.C("sermon_id").Eq(sermonID)).
		Executor().
		Exec()

	if err != nil {
		log.Println("Error deleting sermon:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sermon", "details": err.Error()})
		return
	}

	respondWithAllLists(c, "Sermon deleted successfully.")
}
