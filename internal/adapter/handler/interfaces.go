package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/asset-store/internal/domain/entity"
	"github.com/marcos-nsantos/asset-store/internal/pkg/pagination"
	"github.com/marcos-nsantos/asset-store/internal/usecase/asset"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type AssetService interface {
	Create(ctx context.Context, input asset.CreateInput) (*entity.Asset, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Asset, error)
	List(ctx context.Context, params pagination.Params) ([]entity.Asset, *pagination.Info, error)
	VariantURLs(a *entity.Asset) []string
	Delete(ctx context.Context, input asset.DeleteInput) error
}
