// utils/archive.go
package utils

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// RevealArchive writes finished-game summaries to an R2 bucket so history
// survives outside the database.
type RevealArchive struct {
	client *s3.Client
	bucket string
}

// NewRevealArchive builds the R2 client from the CLOUDFLARE_ACCOUNT_ID /
// R2_* environment variables.
func NewRevealArchive() (*RevealArchive, error) {
	accountID := os.Getenv("CLOUDFLARE_ACCOUNT_ID")
	accessKeyID := os.Getenv("R2_ACCESS_KEY_ID")
	accessKeySecret := os.Getenv("R2_ACCESS_KEY_SECRET")
	bucket := os.Getenv("R2_BUCKET_NAME")

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion("auto"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKeyID, accessKeySecret, "",
		)),
		config.WithEndpointResolver(aws.EndpointResolverFunc(
			func(service, region string) (aws.Endpoint, error) {
				return aws.Endpoint{
					URL: fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID),
				}, nil
			}),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load R2 config: %w", err)
	}

	return &RevealArchive{client: s3.NewFromConfig(cfg), bucket: bucket}, nil
}

// ArchiveReveal uploads the summary JSON under reveals/<chat_id>.json.
// A game finished twice simply overwrites the object with identical content.
func (a *RevealArchive) ArchiveReveal(ctx context.Context, chatID string, payload []byte) error {
	key := fmt.Sprintf("reveals/%s.json", chatID)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload reveal summary: %w", err)
	}
	return nil
}
