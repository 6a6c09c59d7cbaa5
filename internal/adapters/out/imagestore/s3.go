package imagestore

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"

	"medidrone/internal/core/domain/model/medication"
	"medidrone/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const s3KeyPrefix = "medication_images"

// ObjectAPI is the part of *s3.Client the store uses.
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(
		ctx context.Context,
		params *s3.DeleteObjectInput,
		optFns ...func(*s3.Options),
	) (*s3.DeleteObjectOutput, error)
}

// S3Config holds the connection settings of an S3-compatible endpoint (AWS, MinIO).
type S3Config struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// NewS3Client builds a client with static credentials. A custom endpoint switches to
// path-style addressing, which MinIO requires.
func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// S3Storage keeps images as objects under medication_images/ in bucket.
// URLs are publicURL + "/" + key, publicURL usually being the bucket URL or a CDN.
type S3Storage struct {
	client    ObjectAPI
	bucket    string
	publicURL string
}

func NewS3Storage(client ObjectAPI, bucket, publicURL string) (*S3Storage, error) {
	if bucket == "" {
		return nil, errs.NewValueIsRequiredError("s3 bucket")
	}
	if publicURL == "" {
		return nil, errs.NewValueIsRequiredError("s3 public url")
	}
	return &S3Storage{client: client, bucket: bucket, publicURL: publicURL}, nil
}

// Save uploads the image and returns its public URL.
func (s *S3Storage) Save(ctx context.Context, image medication.ImageUpload) (string, error) {
	if err := image.Validate(); err != nil {
		return "", err
	}

	key := path.Join(s3KeyPrefix, uuid.NewString()+image.Extension())
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(image.Content()),
		ContentType:   aws.String(image.ContentType()),
		ContentLength: aws.Int64(image.Size()),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return url.JoinPath(s.publicURL, key)
}

// Delete removes the object behind imageURL. S3 reports success for missing keys.
func (s *S3Storage) Delete(ctx context.Context, imageURL string) error {
	name, err := fileName(imageURL)
	if err != nil {
		return err
	}

	key := path.Join(s3KeyPrefix, name)
	if _, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}
