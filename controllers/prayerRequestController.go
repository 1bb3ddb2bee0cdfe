package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/ReachoutToAll/initializers"
	"github.com/ReachoutToAll/models"
	"github.com/ReachoutToAll/services"
	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
)

// SubmitPrayerRequest - public prayer request form submission
func SubmitPrayerRequest(c *gin.Context) {
	var body models.PrayerRequestCreate
	if err := c.ShouldBind(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prayerRequest := models.PrayerRequest{
		Full_Name: body.Full_Name,
		Email:     body.Email,
		Request:   body.Request,
	}

	insert := initializers.DB.Insert("prayer_request").Rows(prayerRequest).Executor()
	if _, err := insert.Exec(); err != nil {
		log.Println("Error saving prayer request:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again.", "details": err.Error()})
		return
	}

	go services.NotifyPrayerRequest(prayerRequest)

	c.JSON(http.StatusCreated, gin.H{"message": "Your prayer request has been received."})
}

// GetPrayerRequests - list all prayer requests, newest first (admin)
func GetPrayerRequests(c *gin.Context) {
	prayerRequests := []models.PrayerRequest{}
	err := initializers.DB.From("prayer_request").
		Order(goqu.C("datetime_create").Desc()).
		ScanStructs(&prayerRequests)

	if err != nil {
		log.Println("Error fetching prayer requests:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch prayer requests", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, prayerRequests)
}

// DeletePrayerRequest - remove a handled prayer request (admin)
func DeletePrayerRequest(c *gin.Context) {
	prayerRequestID, err := strconv.Atoi(c.Param("prayer_request_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer request ID"})
		return
	}

	var existing models.PrayerRequest
	found, err := initializers.DB.From("prayer_request").
		Where(goqu.C("prayer_request_id").Eq(prayerRequestID)).
		ScanStruct(&existing)

	if err != nil || !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prayer request not found"})
		return
	}

	_, err = initializers.DB.Delete("prayer_request").
		Where(goqu.C("prayer_request_id").Eq(prayerRequestID)).
		Executor().
		Exec()

	if err != nil {
		log.Println("Error deleting prayer request:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete prayer request", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Prayer request deleted successfully."})
}
