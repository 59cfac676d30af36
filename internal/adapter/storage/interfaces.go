package storage

import (
	"context"

	"github.com/marcos-nsantos/asset-store/internal/domain/valueobject"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

type Visibility string

const (
	VisibilityPublicRead Visibility = "public-read"
	VisibilityPrivate    Visibility = "private"
)

// Params are caller-supplied object parameters, keyed by S3 PutObject/DeleteObject
// field name (ACL, CacheControl, ContentDisposition, ...). Unknown keys become
// object metadata. They are applied after the defaults and win over them.
type Params map[string]string

type PutInput struct {
	Key         string
	Body        []byte
	ContentType string
	Visibility  Visibility
	Params      Params
}

type BlobSink interface {
	Put(ctx context.Context, input PutInput) error
	Delete(ctx context.Context, key string, params Params) error
	GetURL(key string) string
}

type TransformRequest struct {
	Format     valueobject.ImageFormat
	Encode     valueobject.EncodeOptions
	Resize     valueobject.ResizeOptions
	AutoOrient bool
}

type ImageCodec interface {
	Transform(data []byte, req TransformRequest) ([]byte, error)
}
