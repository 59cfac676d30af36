package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/marcos-nsantos/asset-store/internal/adapter/storage"
	"github.com/marcos-nsantos/asset-store/internal/domain"
	"github.com/marcos-nsantos/asset-store/internal/infrastructure/config"
)

// MinioStorage writes to any S3-compatible server through minio-go. Object
// ACLs are not supported there, so public-read is sent as the x-amz-acl header.
type MinioStorage struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

func NewMinioStorage(cfg config.StorageConfig) (*MinioStorage, error) {
	endpoint, err := url.Parse(cfg.Endpoint)
	if err != nil || endpoint.Host == "" {
		return nil, fmt.Errorf("invalid minio endpoint %q", cfg.Endpoint)
	}

	client, err := minio.New(endpoint.Host, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: endpoint.Scheme == "https",
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("creating minio client: %w", err)
	}

	return &MinioStorage{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: BaseURL(cfg),
	}, nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *MinioStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("checking bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("creating bucket %q: %w", s.bucket, err)
	}
	return nil
}

func (s *MinioStorage) Put(ctx context.Context, in storage.PutInput) error {
	bucket := s.bucket
	opts := minio.PutObjectOptions{
		ContentType:  in.ContentType,
		UserMetadata: map[string]string{},
	}
	if in.Visibility != "" {
		opts.UserMetadata["x-amz-acl"] = string(in.Visibility)
	}

	for name, value := range in.Params {
		switch name {
		case "ACL":
			opts.UserMetadata["x-amz-acl"] = value
		case "Bucket":
			bucket = value
		case "CacheControl":
			opts.CacheControl = value
		case "ContentDisposition":
			opts.ContentDisposition = value
		case "ContentEncoding":
			opts.ContentEncoding = value
		case "ContentLanguage":
			opts.ContentLanguage = value
		case "ContentType":
			opts.ContentType = value
		case "StorageClass":
			opts.StorageClass = value
		default:
			opts.UserMetadata[name] = value
		}
	}

	_, err := s.client.PutObject(ctx, bucket, in.Key, bytes.NewReader(in.Body), int64(len(in.Body)), opts)
	if err != nil {
		return fmt.Errorf("put object %q: %w", in.Key, err)
	}
	return nil
}

func (s *MinioStorage) Delete(ctx context.Context, key string, params storage.Params) error {
	bucket := s.bucket
	if b, ok := params["Bucket"]; ok {
		bucket = b
	}

	opts := minio.RemoveObjectOptions{VersionID: params["VersionId"]}
	if err := s.client.RemoveObject(ctx, bucket, key, opts); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return fmt.Errorf("remove object %q: %w: %w", key, domain.ErrObjectNotFound, err)
		}
		return fmt.Errorf("remove object %q: %w", key, err)
	}
	return nil
}

func (s *MinioStorage) GetURL(key string) string {
	return s.baseURL + "/" + key
}
