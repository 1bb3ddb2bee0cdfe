package services

import (
	"fmt"
	"log"

	"github.com/ReachoutToAll/initializers"
	"github.com/ReachoutToAll/models"
	"github.com/doug-martin/goqu/v9"
)

// adminOperatorIDs returns the ids of every admin operator account.
func adminOperatorIDs() ([]int, error) {
	var ids []int
	err := initializers.DB.From("operator_profile").
		Select("operator_profile_id").
		Where(goqu.C("admin").IsTrue()).
		ScanVals(&ids)
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// notifyOperators persists a notification row per operator, then fans out push.
func notifyOperators(notifType string, message string, payload NotificationPayload) {
	ids, err := adminOperatorIDs()
	if err != nil {
		log.Printf("Failed to load admin operators for %s notification: %v", notifType, err)
		return
	}

	for _, operatorID := range ids {
		notification := models.Notification{
			Operator_Profile_ID:  operatorID,
			Notification_Type:    notifType,
			Notification_Message: message,
			Notification_Status:  models.NotificationStatusUnread,
		}

		insert := initializers.DB.Insert("operator_notification").Rows(notification)
		if _, err := insert.Executor().Exec(); err != nil {
			log.Printf("Failed to create %s notification for operator %d: %v", notifType, operatorID, err)
		}
	}

	pushService := GetPushNotificationService()
	if pushService == nil {
		log.Println("Push notification service not available")
		return
	}

	if err := pushService.SendNotificationToOperators(ids, payload); err != nil {
		log.Printf("Push fan-out for %s failed: %v", notifType, err)
	}
}

// NotifyVolunteerApplication is fired when a visitor submits the Get Involved
// form. Records operator notifications, pushes to their devices, and emails
// the coordinator.
func NotifyVolunteerApplication(volunteer models.Volunteer) {
	message := fmt.Sprintf("%s applied to join the %s", volunteer.Full_Name, volunteer.Unit)

	notifyOperators(models.NotificationTypeVolunteerApplication, message, NotificationPayload{
		Title:    "New volunteer application",
		Body:     message,
		Sound:    "default",
		Priority: "high",
		Data: map[string]string{
			"type":          models.NotificationTypeVolunteerApplication,
			"referenceCode": volunteer.Reference_Code,
		},
	})

	emailService := GetEmailService()
	if emailService == nil {
		log.Println("Email service not available")
		return
	}

	if err := emailService.SendVolunteerApplicationEmail(volunteer); err != nil {
		log.Printf("Failed to email coordinator about volunteer application: %v", err)
	}
}

// NotifyPrayerRequest is fired when a visitor submits a prayer request.
func NotifyPrayerRequest(request models.PrayerRequest) {
	message := fmt.Sprintf("%s submitted a prayer request", request.Full_Name)

	notifyOperators(models.NotificationTypePrayerRequest, message, NotificationPayload{
		Title:    "New prayer request",
		Body:     message,
		Sound:    "default",
		Data: map[string]string{
			"type": models.NotificationTypePrayerRequest,
		},
	})

	emailService := GetEmailService()
	if emailService == nil {
		log.Println("Email service not available")
		return
	}

	if err := emailService.SendPrayerRequestEmail(request); err != nil {
		log.Printf("Failed to email coordinator about prayer request: %v", err)
	}
}
