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
	"github.com/google/uuid"
)

// SubmitVolunteerApplication - public Get Involved form submission
func SubmitVolunteerApplication(c *gin.Context) {
	var body models.VolunteerCreate
	if err := c.ShouldBind(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidVolunteerUnit(body.Unit) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown ministry unit", "details": body.Unit})
		return
	}

	volunteer := models.Volunteer{
		Reference_Code: uuid.NewString(),
		Full_Name:      body.Full_Name,
		Email:          body.Email,
		Phone:          body.Phone,
		Unit:           body.Unit,
		Message:        body.Message,
	}

	insert := initializers.DB.Insert("volunteer").Rows(volunteer).Executor()
	if _, err := insert.Exec(); err != nil {
		log.Println("Error saving volunteer application:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again.", "details": err.Error()})
		return
	}

	go services.NotifyVolunteerApplication(volunteer)

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Thank you for volunteering! We will contact you soon.",
		"referenceCode": volunteer.Reference_Code,
	})
}

// GetVolunteers - list all volunteer applications, newest first (admin)
func GetVolunteers(c *gin.Context) {
	volunteers := []models.Volunteer{}
	err := initializers.DB.From("volunteer").
		Order(goqu.C("datetime_create").Desc()).
		ScanStructs(&volunteers)

	if err != nil {
		log.Println("Error fetching volunteers:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch volunteers", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, volunteers)
}

// DeleteVolunteer - remove a processed volunteer application (admin)
func DeleteVolunteer(c *gin.Context) {
	volunteerID, err := strconv.Atoi(c.Param("volunteer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid volunteer ID"})
		return
	}

	var existing models.Volunteer
	found, err := initializers.DB.From("volunteer").
		Where(goqu.C("volunteer_id").Eq(volunteerID)).
		ScanStruct(&existing)

	if err != nil || !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Volunteer application not found"})
		return
	}

	_, err = initializers.DB.Delete("volunteer").
		Where(goqu.C("volunteer_id").Eq(volunteerID)).
		Executor().
		Exec()

	if err != nil {
		log.Println("Error deleting volunteer application:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete volunteer application", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Volunteer application deleted successfully."})
}
