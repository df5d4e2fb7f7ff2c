package imagestore

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Config holds the provider settings consumed from the environment.
type S3Config struct {
	Bucket          string
	Region          string
	Folder          string
	PublicURL       string
	AccessKeyID     string
	SecretAccessKey string
}

func (c S3Config) Enabled() bool {
	return c.Bucket != "" && c.Region != ""
}

// S3Store uploads images to an S3-compatible bucket.
type S3Store struct {
	svc       *s3.S3
	bucket    string
	folder    string
	publicURL string
}

func NewS3Store(config S3Config) (*S3Store, error) {
	awsConfig := &aws.Config{
		Region: aws.String(config.Region),
	}
	if config.AccessKeyID != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(
			config.AccessKeyID,
			config.SecretAccessKey,
			"",
		)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &S3Store{
		svc:       s3.New(sess),
		bucket:    config.Bucket,
		folder:    config.Folder,
		publicURL: strings.TrimSuffix(config.PublicURL, "/"),
	}, nil
}

// Upload forwards the file to the bucket and returns its hosted URL.
func (s *S3Store) Upload(ctx context.Context, src io.Reader, filename string) (string, error) {
	contentType, err := ContentType(filename)
	if err != nil {
		return "", err
	}

	key := ObjectKey(s.folder, filename)

	_, err = s.svc.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        aws.ReadSeekCloser(src),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", filename, err)
	}

	log.Printf("Uploaded image: %s", key)
	return s.objectURL(key), nil
}

func (s *S3Store) objectURL(key string) string {
	if s.publicURL != "" {
		return s.publicURL + "/" + key
	}
	region := aws.StringValue(s.svc.Config.Region)
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, region, key)
}
