package repositories

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"inventory-service/internal/entities"
	"inventory-service/pkg/config"
	apperrors "inventory-service/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3SnapshotRepository stores the JSON document as one object in an
// S3-compatible bucket (AWS S3 or MinIO).
type S3SnapshotRepository struct {
	client *s3.Client
	bucket string
	key    string
}

// NewS3SnapshotRepository builds a client from the default AWS credential
// chain. Endpoint and PathStyle are for MinIO and other S3 look-alikes.
func NewS3SnapshotRepository(ctx context.Context, cfg config.S3Config) (*S3SnapshotRepository, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return NewS3SnapshotRepositoryWithClient(client, cfg.Bucket, cfg.Key), nil
}

func NewS3SnapshotRepositoryWithClient(client *s3.Client, bucket, key string) *S3SnapshotRepository {
	if key == "" {
		key = "inventory/data.json"
	}
	return &S3SnapshotRepository{client: client, bucket: bucket, key: key}
}

func (r *S3SnapshotRepository) Load(ctx context.Context) (entities.Dataset, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.key),
	})
	if err != nil {
		if isS3NotFound(err) {
			return entities.EmptyDataset(), apperrors.ErrSnapshotNotFound
		}
		return entities.EmptyDataset(), fmt.Errorf("get s3://%s/%s: %w", r.bucket, r.key, err)
	}
	defer func() { _ = out.Body.Close() }()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return entities.EmptyDataset(), fmt.Errorf("read s3://%s/%s: %w", r.bucket, r.key, err)
	}
	return decodeDataset(data)
}

func (r *S3SnapshotRepository) Save(ctx context.Context, dataset entities.Dataset) error {
	data, err := encodeDataset(dataset)
	if err != nil {
		return err
	}
	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(r.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("put s3://%s/%s: %w", r.bucket, r.key, err)
	}
	return nil
}

func (r *S3SnapshotRepository) Driver() string { return config.DriverS3 }

func (r *S3SnapshotRepository) Close() error { return nil }

func isS3NotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var respErr *awshttp.ResponseError
	return errors.As(err, &respErr) && respErr.HTTPStatusCode() == http.StatusNotFound
}
