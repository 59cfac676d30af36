package asset

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/asset-store/internal/adapter/repository"
	"github.com/marcos-nsantos/asset-store/internal/adapter/storage"
	"github.com/marcos-nsantos/asset-store/internal/domain"
	"github.com/marcos-nsantos/asset-store/internal/domain/entity"
	"github.com/marcos-nsantos/asset-store/internal/pkg/pagination"
)

type Hasher interface {
	Hash(data []byte) string
}

type Service struct {
	assetRepo repository.AssetRepository
	provider  *Provider
	hasher    Hasher
	params    storage.Params
	logger    *zap.Logger
}

func NewService(
	assetRepo repository.AssetRepository,
	provider *Provider,
	hasher Hasher,
	params storage.Params,
	logger *zap.Logger,
) *Service {
	return &Service{
		assetRepo: assetRepo,
		provider:  provider,
		hasher:    hasher,
		params:    params,
		logger:    logger,
	}
}

type CreateInput struct {
	Name        string
	Data        []byte
	ContentType string
	Thumbnail   bool
	Params      storage.Params
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*entity.Asset, error) {
	asset, err := Describe(input.Name, input.Data, input.ContentType, input.Thumbnail, s.hasher)
	if err != nil {
		return nil, err
	}

	if _, err := s.assetRepo.GetByHash(ctx, asset.Hash, asset.Ext); err == nil {
		return nil, domain.ErrAssetAlreadyExists
	} else if !errors.Is(err, domain.ErrAssetNotFound) {
		return nil, err
	}

	params := s.mergeParams(input.Params)

	url, err := s.provider.Upload(ctx, asset, input.Data, params)
	if err != nil {
		return nil, fmt.Errorf("storing asset: %w", err)
	}
	asset.URL = url

	if err := s.assetRepo.Create(ctx, asset); err != nil {
		s.removeObjects(ctx, asset, params)
		return nil, fmt.Errorf("creating asset record: %w", err)
	}

	return asset, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*entity.Asset, error) {
	return s.assetRepo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, params pagination.Params) ([]entity.Asset, *pagination.Info, error) {
	return s.assetRepo.List(ctx, params)
}

func (s *Service) VariantURLs(asset *entity.Asset) []string {
	return s.provider.URLs(asset)
}

type DeleteInput struct {
	ID     uuid.UUID
	Params storage.Params
}

// Delete removes the record, then sweeps its objects with input.Params merged
// over the configured params. Storage failures are logged and never fail the
// call.
func (s *Service) Delete(ctx context.Context, input DeleteInput) error {
	asset, err := s.assetRepo.GetByID(ctx, input.ID)
	if err != nil {
		return err
	}

	if err := s.assetRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("deleting asset record: %w", err)
	}

	s.removeObjects(ctx, asset, s.mergeParams(input.Params))
	return nil
}

func (s *Service) removeObjects(ctx context.Context, asset *entity.Asset, params storage.Params) {
	for _, failure := range s.provider.Delete(ctx, asset, params) {
		s.logger.Warn("failed to delete object",
			zap.String("key", failure.Key),
			zap.String("asset_id", asset.ID.String()),
			zap.Error(failure.Err),
		)
	}
}

func (s *Service) mergeParams(extra storage.Params) storage.Params {
	if len(s.params) == 0 && len(extra) == 0 {
		return nil
	}
	merged := make(storage.Params, len(s.params)+len(extra))
	maps.Copy(merged, s.params)
	maps.Copy(merged, extra)
	return merged
}
