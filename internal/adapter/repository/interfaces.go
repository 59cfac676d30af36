package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/asset-store/internal/domain/entity"
	"github.com/marcos-nsantos/asset-store/internal/pkg/pagination"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

type AssetRepository interface {
	Create(ctx context.Context, asset *entity.Asset) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Asset, error)
	GetByHash(ctx context.Context, hash, ext string) (*entity.Asset, error)
	List(ctx context.Context, params pagination.Params) ([]entity.Asset, *pagination.Info, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
