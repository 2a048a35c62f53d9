package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"mime"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

var s3Client *s3.Client

func InitS3() {
	s3Region := os.Getenv("S3_REGION")
	if s3Region == "" {
		s3Region = os.Getenv("AWS_REGION") // fallback
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(s3Region))
	if err != nil {
		log.Fatalf("Unable to load AWS config for S3: %v", err)
	}

	s3Client = s3.NewFromConfig(cfg)
}

// UploadAvatar stores a base64 data-URL image ("data:<mime>;base64,<data>")
// under avatars/ and returns the public URL.
func UploadAvatar(base64Data string) (string, error) {
	parts := strings.Split(base64Data, ",")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid base64 image")
	}
	meta := parts[0]
	data := parts[1]

	metaParts := strings.SplitN(meta, ":", 2)
	if len(metaParts) != 2 {
		return "", fmt.Errorf("invalid base64 image")
	}
	contentType := strings.SplitN(metaParts[1], ";", 2)[0] // "image/jpeg"

	var ext string
	switch contentType {
	case "image/jpeg", "image/jpg":
		ext = ".jpg"
	default:
		if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
			ext = exts[0]
		} else if sub := strings.SplitN(contentType, "/", 2); len(sub) == 2 {
			ext = "." + sub[1]
		}
	}

	imageData, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %v", err)
	}

	key := fmt.Sprintf("avatars/%s%s", uuid.NewString(), ext)

	_, err = s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("S3_BUCKET")),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %v", err)
	}

	cfURL := os.Getenv("CLOUDFRONT_URL")
	return fmt.Sprintf("%s/%s", cfURL, key), nil
}
