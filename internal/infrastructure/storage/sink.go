package storage

import (
	"context"
	"fmt"

	"github.com/marcos-nsantos/asset-store/internal/adapter/storage"
	"github.com/marcos-nsantos/asset-store/internal/infrastructure/config"
)

// NewBlobSink builds the sink for cfg.Driver. The minio driver creates the
// bucket when missing.
func NewBlobSink(ctx context.Context, cfg config.StorageConfig) (storage.BlobSink, error) {
	switch cfg.Driver {
	case config.DriverS3, "":
		return NewS3Storage(cfg), nil
	case config.DriverMinio:
		sink, err := NewMinioStorage(cfg)
		if err != nil {
			return nil, err
		}
		if err := sink.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return sink, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
