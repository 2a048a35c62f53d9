package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var sesClient *ses.Client

// InitMailer loads AWS config and builds the SES client. Called once at boot.
func InitMailer() {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("AWS config load failed: %v", err)
	}
	sesClient = ses.NewFromConfig(cfg)
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendResetEmail mails the password-reset link for the given plaintext token.
func SendResetEmail(to string, token string) error {
	base := os.Getenv("APP_BASE_URL")
	if base == "" {
		base = "http://localhost:5001"
	}
	resetURL := fmt.Sprintf("%s/auth/reset-password?token=%s", base, token)

	subject := "Reset your FitTrack Pro password"
	body := fmt.Sprintf("We received a request to reset your password.\n\nOpen this link to set a new one (valid for 1 hour):\n%s\n\nIf you didn't request this, you can ignore this email.", resetURL)
	return sendEmail(to, subject, body)
}
