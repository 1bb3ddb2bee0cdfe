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

// GetOperatorNotifications - list the signed-in operator's notifications,
// newest first
func GetOperatorNotifications(c *gin.Context) {
	currentUser := c.MustGet("currentUser").(models.OperatorProfile)

	notifications := []models.Notification{}
	err := initializers.DB.From("operator_notification").
		Where(goqu.C("operator_profile_id").Eq(currentUser.Operator_Profile_ID)).
		Order(goqu.C("datetime_create").Desc()).
		ScanStructs(&notifications)

	if err != nil {
		log.Println("Error fetching notifications:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationRead - mark one of the operator's notifications as read
func MarkNotificationRead(c *gin.Context) {
	currentUser := c.MustGet("currentUser").(models.OperatorProfile)

	notificationID, err := strconv.Atoi(c.Param("notification_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	var existing models.Notification
	found, err := initializers.DB.From("operator_notification").
		Where(
			goqu.C("notification_id").Eq(notificationID),
			goqu.C("operator_profile_id").Eq(currentUser.Operator_Profile_ID),
		).
		ScanStruct(&existing)

	if err != nil || !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	update := initializers.DB.Update("operator_notification").
		Set(goqu.Record{"notification_status": models.NotificationStatusRead}).
		Where(goqu.C("notification_id").Eq(notificationID))

	if _, err := update.Executor().Exec(); err != nil {
		log.Println("Error marking notification read:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read."})
}
