package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/asset-store/internal/domain/entity"
	"github.com/marcos-nsantos/asset-store/internal/pkg/pagination"
)

type AssetResponse struct {
	ID        uuid.UUID `json:"id"`
	Hash      string    `json:"hash"`
	Ext       string    `json:"ext"`
	Mime      string    `json:"mime"`
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	URL       string    `json:"url"`
	Kind      string    `json:"kind"`
	Category  string    `json:"category"`
	Variants  []string  `json:"variants,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type PaginationResponse struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

type AssetsListResponse struct {
	Assets     []AssetResponse    `json:"assets"`
	Pagination PaginationResponse `json:"pagination"`
}

func AssetFromEntity(a *entity.Asset) AssetResponse {
	return AssetResponse{
		ID:        a.ID,
		Hash:      a.Hash,
		Ext:       a.Ext,
		Mime:      a.Mime,
		Name:      a.Name,
		Size:      a.Size,
		URL:       a.URL,
		Kind:      a.Kind().String(),
		Category:  a.Category().String(),
		CreatedAt: a.CreatedAt,
	}
}

func AssetsFromEntities(assets []entity.Asset) []AssetResponse {
	result := make([]AssetResponse, 0, len(assets))
	for i := range assets {
		result = append(result, AssetFromEntity(&assets[i]))
	}
	return result
}

func PaginationFromInfo(info *pagination.Info) PaginationResponse {
	return PaginationResponse{
		Page:       info.Page,
		PerPage:    info.PerPage,
		TotalItems: info.TotalItems,
		TotalPages: info.TotalPages,
		HasNext:    info.HasNext,
		HasPrev:    info.HasPrev,
	}
}
