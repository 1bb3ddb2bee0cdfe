package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ReachoutToAll/initializers"
	"github.com/ReachoutToAll/models"
	"github.com/doug-martin/goqu/v9"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type PushNotificationService struct {
	fcmClient *messaging.Client
}

type NotificationPayload struct {
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Data     map[string]string `json:"data,omitempty"`
	Sound    string            `json:"sound,omitempty"`
	Priority string            `json:"priority,omitempty"`
}

var pushService *PushNotificationService

func InitPushNotificationService() {
	pushService = &PushNotificationService{}

	serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")

	var app *firebase.App
	var err error

	if serviceAccountPath != "" {
		opt := option.WithCredentialsFile(serviceAccountPath)
		app, err = firebase.NewApp(context.Background(), nil, opt)
		if err != nil {
			log.Printf("Failed to initialize Firebase app with service account: %v", err)
			return
		}
		log.Println("Firebase initialized with service account file")
	} else {
		app, err = firebase.NewApp(context.Background(), nil)
		if err != nil {
			log.Printf("Failed to initialize Firebase app with ADC: %v", err)
			return
		}
		log.Println("Firebase initialized with Application Default Credentials")
	}

	pushService.fcmClient, err = app.Messaging(context.Background())
	if err != nil {
		log.Printf("Failed to get Firebase messaging client: %v", err)
		return
	}

	log.Println("Push notification service initialized successfully with FCM")
}

func GetPushNotificationService() *PushNotificationService {
	return pushService
}

// SendNotificationToOperator delivers the payload to every device token
// registered for the operator.
func (s *PushNotificationService) SendNotificationToOperator(operatorID int, payload NotificationPayload) error {
	var tokens []models.PushToken
	query := initializers.DB.From("operator_push_tokens").
		Where(goqu.C("operator_profile_id").Eq(operatorID))

	err := query.ScanStructs(&tokens)
	if err != nil {
		return fmt.Errorf("failed to get push tokens for operator %d: %v", operatorID, err)
	}

	if len(tokens) == 0 {
		return fmt.Errorf("no push tokens found for operator %d", operatorID)
	}

	for _, token := range tokens {
		err := s.sendToToken(token, payload)
		if err != nil {
			log.Printf("Failed to send notification to token %s: %v", token.PushToken, err)
			// Continue with other tokens even if one fails
		}
	}

	return nil
}

func (s *PushNotificationService) SendNotificationToOperators(operatorIDs []int, payload NotificationPayload) error {
	var allErrors []error

	for _, operatorID := range operatorIDs {
		err := s.SendNotificationToOperator(operatorID, payload)
		if err != nil {
			allErrors = append(allErrors, err)
			log.Printf("Failed to send notification to operator %d: %v", operatorID, err)
		}
	}

	if len(allErrors) > 0 {
		return fmt.Errorf("failed to send notifications to %d operators", len(allErrors))
	}

	return nil
}

func (s *PushNotificationService) sendToToken(pushToken models.PushToken, payload NotificationPayload) error {
	if s.fcmClient == nil {
		return fmt.Errorf("FCM client not initialized")
	}

	message := &messaging.Message{
		Token: pushToken.PushToken,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data: payload.Data,
	}

	if pushToken.Platform == "ios" {
		message.APNS = &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Alert: &messaging.ApsAlert{
						Title: payload.Title,
						Body:  payload.Body,
					},
					Sound: payload.Sound,
				},
			},
		}
		if payload.Priority == "high" {
			message.APNS.Headers = map[string]string{
				"apns-priority": "10",
			}
		}
	} else if pushToken.Platform == "android" {
		message.Android = &messaging.AndroidConfig{
			Notification: &messaging.AndroidNotification{
				Title: payload.Title,
				Body:  payload.Body,
				Sound: payload.Sound,
			},
		}
		if payload.Priority == "high" {
			message.Android.Priority = "high"
		} else {
			message.Android.Priority = "normal"
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	response, err := s.fcmClient.Send(ctx, message)
	if err != nil {
		log.Printf("FCM send error: %v", err)
		return fmt.Errorf("failed to send FCM message: %v", err)
	}

	log.Printf("Successfully sent FCM notification. Message ID: %s", response)
	return nil
}
