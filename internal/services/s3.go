package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Publisher uploads the generated JSON artifacts to the bucket backing
// the static symposium site.
type S3Publisher struct {
	client     *s3.Client
	bucketName string
	region     string
}

// S3UploadResult represents the result of an S3 upload operation.
type S3UploadResult struct {
	Key        string    `json:"key"`
	ETag       string    `json:"etag"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
	PublicURL  string    `json:"public_url"`
}

// NewS3Publisher creates an S3 publisher from the default AWS config chain.
// The bucket comes from SESSIONS_S3_BUCKET unless overridden.
func NewS3Publisher(ctx context.Context, bucketName string) (*S3Publisher, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if bucketName == "" {
		bucketName = os.Getenv("SESSIONS_S3_BUCKET")
	}
	if bucketName == "" {
		return nil, fmt.Errorf("no S3 bucket configured (set SESSIONS_S3_BUCKET or pass --bucket)")
	}

	return &S3Publisher{
		client:     s3.NewFromConfig(cfg),
		bucketName: bucketName,
		region:     cfg.Region,
	}, nil
}

// UploadJSON uploads a JSON document under the given key.
func (p *S3Publisher) UploadJSON(ctx context.Context, data []byte, key string) (*S3UploadResult, error) {
	key = strings.TrimPrefix(key, "/")

	result, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
		// Short cache so page reloads pick up republished data quickly.
		CacheControl: aws.String("public, max-age=300"),
		Metadata: map[string]string{
			"uploaded-by": "symposium-session-pipeline",
			"upload-time": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s to S3: %w", key, err)
	}

	return &S3UploadResult{
		Key:        key,
		ETag:       strings.Trim(aws.ToString(result.ETag), `"`),
		Size:       int64(len(data)),
		UploadedAt: time.Now(),
		PublicURL:  p.PublicURL(key),
	}, nil
}

// UploadFile uploads a local JSON artifact both under a timestamped key and
// as the "latest" copy the site fetches.
func (p *S3Publisher) UploadFile(ctx context.Context, path, prefix string) ([]*S3UploadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	timestamp := time.Now().UTC().Format("2006-01-02T15-04-05Z")
	keys := []string{
		fmt.Sprintf("%s/%s.json", prefix, timestamp),
		fmt.Sprintf("%s/latest.json", prefix),
	}

	var results []*S3UploadResult
	for _, key := range keys {
		result, err := p.UploadJSON(ctx, data, key)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

// PublicURL generates the public URL for an uploaded key.
func (p *S3Publisher) PublicURL(key string) string {
	key = strings.TrimPrefix(key, "/")
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", p.bucketName, p.region, key)
}
