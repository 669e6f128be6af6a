package blob

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the subset of the S3 client the store needs; satisfied by
// *s3.Client and easy to fake in tests.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store stores assets in an S3 bucket. URLs are urlPrefix + object key, so
// the bucket (or a CDN in front of it) must serve objects publicly.
type S3Store struct {
	client    S3API
	bucket    string
	urlPrefix string
}

// NewS3 loads the default AWS credential chain for region and returns a store
// writing to bucket. urlPrefix must end with a slash.
func NewS3(ctx context.Context, bucket, region, urlPrefix string) (*S3Store, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is empty")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewS3WithClient(s3.NewFromConfig(cfg), bucket, urlPrefix), nil
}

// NewS3WithClient wires an existing client (used by tests).
func NewS3WithClient(client S3API, bucket, urlPrefix string) *S3Store {
	return &S3Store{client: client, bucket: bucket, urlPrefix: urlPrefix}
}

func (s *S3Store) Upload(ctx context.Context, data []byte, contentType, filename string) (string, error) {
	key := objectKey(filename)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put %s: %w", key, err)
	}
	return s.urlPrefix + key, nil
}

func (s *S3Store) Delete(ctx context.Context, url string) error {
	key := strings.TrimPrefix(url, s.urlPrefix)
	if key == url || key == "" {
		return fmt.Errorf("url %q is not under prefix %q", url, s.urlPrefix)
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s: %w", key, err)
	}
	return nil
}
