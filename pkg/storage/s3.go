package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type S3Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	Region          string
}

// S3Storage is the S3-compatible backend (AWS, R2, MinIO). Objects have no
// rename, so Commit copies the staged object to its final key and deletes
// the staged one.
type S3Storage struct {
	client *s3.Client
	bucket string
}

func NewS3Storage(ctx context.Context, cfg S3Config) (*S3Storage, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		if cfg.Endpoint != "" {
			return aws.Endpoint{URL: cfg.Endpoint}, nil
		}
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	})

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithEndpointResolverWithOptions(resolver),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Storage{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
	}, nil
}

func (s *S3Storage) Stage(ctx context.Context, key string, r io.Reader, size int64) (StagedFile, error) {
	stageKey := stagingDir + "/" + uuid.NewString()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(stageKey),
		Body:          r,
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload staged object: %w", err)
	}

	return &s3Staged{
		store:    s,
		stageKey: stageKey,
		finalKey: key,
	}, nil
}

func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

type s3Staged struct {
	store    *S3Storage
	stageKey string
	finalKey string
}

func (f *s3Staged) Commit(ctx context.Context) error {
	source := url.PathEscape(f.store.bucket + "/" + f.stageKey)
	_, err := f.store.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(f.store.bucket),
		CopySource: aws.String(source),
		Key:        aws.String(f.finalKey),
	})
	if err != nil {
		return fmt.Errorf("failed to copy staged object into place: %w", err)
	}
	return f.store.Delete(ctx, f.stageKey)
}

func (f *s3Staged) Discard() error {
	return f.store.Delete(context.Background(), f.stageKey)
}
