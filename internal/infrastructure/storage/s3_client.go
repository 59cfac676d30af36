package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/marcos-nsantos/asset-store/internal/adapter/storage"
	"github.com/marcos-nsantos/asset-store/internal/domain"
	"github.com/marcos-nsantos/asset-store/internal/infrastructure/config"
)

type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3Storage struct {
	client  s3API
	bucket  string
	baseURL string
}

func NewS3Storage(cfg config.StorageConfig) *S3Storage {
	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				"",
			)
		},
	}

	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.UsePathStyle
		})
	}

	return &S3Storage{
		client:  s3.New(s3.Options{}, opts...),
		bucket:  cfg.Bucket,
		baseURL: BaseURL(cfg),
	}
}

// BaseURL is the public prefix objects are served from: the CDN when one is
// configured, the custom endpoint otherwise, falling back to the regional
// virtual-hosted bucket URL.
func BaseURL(cfg config.StorageConfig) string {
	switch {
	case cfg.CDNURL != "":
		return strings.TrimRight(cfg.CDNURL, "/")
	case cfg.Endpoint != "":
		return fmt.Sprintf("%s/%s", strings.TrimRight(cfg.Endpoint, "/"), cfg.Bucket)
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
}

func (s *S3Storage) Put(ctx context.Context, in storage.PutInput) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(in.Key),
		Body:          bytes.NewReader(in.Body),
		ContentType:   aws.String(in.ContentType),
		ContentLength: aws.Int64(int64(len(in.Body))),
	}
	if in.Visibility != "" {
		input.ACL = types.ObjectCannedACL(in.Visibility)
	}
	applyPutParams(input, in.Params)

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("uploading to s3: %w", err)
	}
	return nil
}

func (s *S3Storage) GetURL(key string) string {
	return fmt.Sprintf("%s/%s", s.baseURL, key)
}

func (s *S3Storage) Delete(ctx context.Context, key string, params storage.Params) error {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}
	if bucket, ok := params["Bucket"]; ok {
		input.Bucket = aws.String(bucket)
	}
	if version, ok := params["VersionId"]; ok {
		input.VersionId = aws.String(version)
	}

	if _, err := s.client.DeleteObject(ctx, input); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("deleting from s3: %w: %w", domain.ErrObjectNotFound, err)
		}
		return fmt.Errorf("deleting from s3: %w", err)
	}
	return nil
}

// applyPutParams copies caller params onto the request. Known fields override
// what Put already set; anything else is stored as user metadata.
func applyPutParams(input *s3.PutObjectInput, params storage.Params) {
	for name, value := range params {
		switch name {
		case "ACL":
			input.ACL = types.ObjectCannedACL(value)
		case "Bucket":
			input.Bucket = aws.String(value)
		case "CacheControl":
			input.CacheControl = aws.String(value)
		case "ContentDisposition":
			input.ContentDisposition = aws.String(value)
		case "ContentEncoding":
			input.ContentEncoding = aws.String(value)
		case "ContentLanguage":
			input.ContentLanguage = aws.String(value)
		case "ContentType":
			input.ContentType = aws.String(value)
		case "ServerSideEncryption":
			input.ServerSideEncryption = types.ServerSideEncryption(value)
		case "StorageClass":
			input.StorageClass = types.StorageClass(value)
		case "Tagging":
			input.Tagging = aws.String(value)
		default:
			if input.Metadata == nil {
				input.Metadata = make(map[string]string)
			}
			input.Metadata[name] = value
		}
	}
}

func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
