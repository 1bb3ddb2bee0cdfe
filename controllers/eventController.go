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

// fetchEvents returns all events, most recent date first.
func fetchEvents() ([]models.Event, error) {
	events := []models.Event{}
	err := initializers.DB.From("event").
		Order(goqu.C("event_date").Desc()).
		ScanStructs(&events)
	return events, err
}

// GetEvents - list all events (public Events page and admin dashboard)
func GetEvents(c *gin.Context) {
	events, err := fetchEvents()
	if err != nil {
		log.Println("Error fetching events:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, events)
}

// CreateEvent - create a new event from the dashboard form
func CreateEvent(c *gin.Context) {
	currentUser := c.MustGet("currentUser").(models.OperatorProfile)

	var body models.EventCreate
	if err := c.ShouldBind(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	eventDate, err := parseFormTimestamp(body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date", "details": err.Error()})
		return
	}

	// Blank optional URLs are stored as explicit empty strings.
	event := models.Event{
		Title:       body.Title,
		Description: body.Description,
		Event_Date:  eventDate,
		Location:    body.Location,
		Image_URL:   body.Image_URL,
		Video_URL:   body.Video_URL,
		Event_Type:  body.Event_Type,
		Created_By:  currentUser.Operator_Profile_ID,
		Updated_By:  currentUser.Operator_Profile_ID,
	}

	insert := initializers.DB.Insert("event").Rows(event).Executor()
	if _, err := insert.Exec(); err != nil {
		log.Println("Error creating event:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event", "details": err.Error()})
		return
	}

	events, err := fetchEvents()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events after create", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Event created successfully.",
		"events":  events,
	})
}

// UpdateEvent - update an existing event
func UpdateEvent(c *gin.Context) {
	currentUser := c.MustGet("currentUser").(models.OperatorProfile)

	eventID, err := strconv.Atoi(c.Param("event_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var existing models.Event
	found, err := initializers.DB.From("event").
		Where(goqu.C("event_id").Eq(eventID)).
		ScanStruct(&existing)

	if err != nil || !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var body models.EventCreate
	if err := c.ShouldBind(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	eventDate, err := parseFormTimestamp(body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date", "details": err.Error()})
		return
	}

	update := initializers.DB.Update("event").
		Set(goqu.Record{
			"title":       body.Title,
			"description": body.Description,
			"event_date":  eventDate,
			"location":    body.Location,
			"image_url":   body.Image_URL,
			"video_url":   body.Video_URL,
			"event_type":  body.Event_Type,
			"updated_by":  currentUser.Operator_Profile_ID,
		}).
		Where(goqu.C("event_id").Eq(eventID))

	if _, err := update.Executor().Exec(); err != nil {
		log.Println("Error updating event:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event", "details": err.Error()})
		return
	}

	events, err := fetchEvents()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events after update", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully.",
		"events":  events,
	})
}

// DeleteEvent - delete an event; requires explicit ?confirm=true
func DeleteEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("event_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Delete not confirmed. Pass confirm=true to delete this event."})
		return
	}

	var existing models.Event
	found, err := initializers.DB.From("event").
		Where(goqu.C("event_id").Eq(eventID)).
		ScanStruct(&existing)

	if err != nil || !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	_, err = initializers.DB.Delete("event").
		Where(goqu.C("event_id").Eq(eventID)).
		Executor().
		Exec()

	if err != nil {
		log.Println("Error deleting event:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event", "details": err.Error()})
		return
	}

	respondWithAllLists(c, "Event deleted successfully.")
}
