package s3

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	appconfig "github.com/GoArmGo/BlogApp/internal/config"
)

// Client talks to the S3-compatible object store holding avatar files
// (MinIO in development, S3 in production).
type Client struct {
	s3Client   *awss3.Client
	uploader   *manager.Uploader
	bucketName string
	baseURL    string
	logger     *slog.Logger
}

// NewClient builds the S3 client and makes sure the avatar bucket exists.
func NewClient(cfg *appconfig.Config, logger *slog.Logger) (*Client, error) {
	scheme := "http"
	if cfg.S3UseSSL {
		scheme = "https"
	}
	endpointURL := fmt.Sprintf("%s://%s", scheme, cfg.S3Endpoint)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, ""),
		),
		awsconfig.WithEndpointResolverWithOptions(aws.EndpointResolverWithOptionsFunc(
			func(service, region string, options ...interface{}) (aws.Endpoint, error) {
				return aws.Endpoint{
					URL:    endpointURL,
					Source: aws.EndpointSourceCustom,
				}, nil
			})),
	)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	s3Client := awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		o.UsePathStyle = true
	})
	uploader := manager.NewUploader(s3Client)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = s3Client.HeadBucket(ctx, &awss3.HeadBucketInput{
		Bucket: aws.String(cfg.S3BucketName),
	})
	if err != nil {
		logger.Info("bucket not found, creating", "bucket", cfg.S3BucketName)

		_, createErr := s3Client.CreateBucket(context.TODO(), &awss3.CreateBucketInput{
			Bucket: aws.String(cfg.S3BucketName),
			CreateBucketConfiguration: &types.CreateBucketConfiguration{
				LocationConstraint: types.BucketLocationConstraint(cfg.S3Region),
			},
		})
		if createErr != nil {
			return nil, fmt.Errorf("creating bucket %q: %w", cfg.S3BucketName, createErr)
		}

		waiter := awss3.NewBucketExistsWaiter(s3Client)
		if err := waiter.Wait(context.TODO(), &awss3.HeadBucketInput{
			Bucket: aws.String(cfg.S3BucketName),
		}, 30*time.Second); err != nil {
			return nil, fmt.Errorf("waiting for bucket %q: %w", cfg.S3BucketName, err)
		}
	}

	return &Client{
		s3Client:   s3Client,
		uploader:   uploader,
		bucketName: cfg.S3BucketName,
		baseURL:    endpointURL,
		logger:     logger,
	}, nil
}

// UploadFile stores the object and returns its public URL.
func (c *Client) UploadFile(ctx context.Context, objectKey string, fileContent io.Reader, contentType string) (string, error) {
	start := time.Now()

	_, err := c.uploader.Upload(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(c.bucketName),
		Key:         aws.String(objectKey),
		Body:        fileContent,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading %q to bucket %q: %w", objectKey, c.bucketName, err)
	}

	c.logger.Info("file uploaded",
		"key", objectKey,
		"bucket", c.bucketName,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return fmt.Sprintf("%s/%s/%s", c.baseURL, c.bucketName, objectKey), nil
}

// DeleteFile removes the object. Used by the cleanup worker to drop
// replaced avatar files.
func (c *Client) DeleteFile(ctx context.Context, objectKey string) error {
	_, err := c.s3Client.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("deleting %q from bucket %q: %w", objectKey, c.bucketName, err)
	}

	c.logger.Info("file deleted", "key", objectKey, "bucket", c.bucketName)
	return nil
}
