package services

import (
	"fmt"
	"log"
	"os"

	"github.com/resend/resend-go/v2"

	"github.com/ReachoutToAll/models"
)

type EmailService struct {
	client *resend.Client
	from   string
}

var emailService *EmailService

// InitEmailService initializes the email service with Resend API
func InitEmailService() {
	apiKey := os.Getenv("RESEND_API_KEY")

	if apiKey == "" {
		log.Println("WARNING: RESEND_API_KEY not set. Email service will not be available.")
		return
	}

	from := os.Getenv("EMAIL_FROM")
	if from == "" {
		from = "Reachout To All <noreply@reachouttoall.org>"
	}

	emailService = &EmailService{
		client: resend.NewClient(apiKey),
		from:   from,
	}

	log.Println("Email service initialized successfully with Resend")
}

// GetEmailService returns the singleton email service instance
func GetEmailService() *EmailService {
	return emailService
}

func (s *EmailService) send(to string, subject string, htmlBody string) error {
	if s.client == nil {
		return fmt.Errorf("email service not initialized")
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlBody,
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	log.Printf("Email sent to %s (id %s)", to, sent.Id)
	return nil
}

// SendPasswordResetEmail sends a password reset email with a 6-digit code
func (s *EmailService) SendPasswordResetEmail(toEmail string, code string, firstName string) error {
	greeting := "Hello"
	if firstName != "" {
		greeting = fmt.Sprintf("Hello %s", firstName)
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; color: #333;">
    <h1 style="color: #1d4ed8; border-bottom: 2px solid #1d4ed8; padding-bottom: 10px;">Reachout To All</h1>
    <p>%s,</p>
    <p>We received a request to reset the password for your operator account.
    Enter the verification code below to continue. The code expires in 15 minutes.</p>
    <div style="background-color: #f5f5f5; border: 2px solid #1d4ed8; border-radius: 8px; padding: 20px; text-align: center; margin: 20px 0;">
        <span style="font-size: 32px; font-weight: bold; letter-spacing: 8px;">%s</span>
    </div>
    <p>If you did not request a password reset, you can safely ignore this email.</p>
    <p>On behalf of the Brethren,<br/>Reachout To All</p>
</body>
</html>`, greeting, code)

	return s.send(toEmail, "Your password reset code", htmlBody)
}

// SendVolunteerApplicationEmail notifies the coordinator of a new volunteer application
func (s *EmailService) SendVolunteerApplicationEmail(volunteer models.Volunteer) error {
	coordinator := os.Getenv("COORDINATOR_EMAIL")
	if coordinator == "" {
		return fmt.Errorf("COORDINATOR_EMAIL not set")
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; color: #333;">
    <h1 style="color: #1d4ed8; border-bottom: 2px solid #1d4ed8; padding-bottom: 10px;">New Volunteer Application</h1>
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Phone:</strong> %s</p>
    <p><strong>Unit:</strong> %s</p>
    <p><strong>Message:</strong> %s</p>
    <p><strong>Reference:</strong> %s</p>
</body>
</html>`, volunteer.Full_Name, volunteer.Email, volunteer.Phone, volunteer.Unit, volunteer.Message, volunteer.Reference_Code)

	subject := fmt.Sprintf("New volunteer application: %s (%s)", volunteer.Full_Name, volunteer.Unit)
	return s.send(coordinator, subject, htmlBody)
}

// SendPrayerRequestEmail notifies the coordinator of a new prayer request
func (s *EmailService) SendPrayerRequestEmail(request models.PrayerRequest) error {
	coordinator := os.Getenv("COORDINATOR_EMAIL")
	if coordinator == "" {
		return fmt.Errorf("COORDINATOR_EMAIL not set")
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; color: #333;">
    <h1 style="color: #1d4ed8; border-bottom: 2px solid #1d4ed8; padding-bottom: 10px;">New Prayer Request</h1>
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Request:</strong></p>
    <p>%s</p>
</body>
</html>`, request.Full_Name, request.Email, request.Request)

	subject := fmt.Sprintf("New prayer request from %s", request.Full_Name)
	return s.send(coordinator, subject, htmlBody)
}
