package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/asset-store/internal/domain"
	"github.com/marcos-nsantos/asset-store/internal/domain/entity"
	"github.com/marcos-nsantos/asset-store/internal/pkg/pagination"
)

const uniqueViolation = "23505"

type AssetRepo struct {
	pool *pgxpool.Pool
}

func NewAssetRepo(pool *pgxpool.Pool) *AssetRepo {
	return &AssetRepo{pool: pool}
}

func (r *AssetRepo) Create(ctx context.Context, asset *entity.Asset) error {
	query := `
		INSERT INTO assets (id, hash, ext, mime, name, size, url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		asset.ID, asset.Hash, asset.Ext, asset.Mime,
		asset.Name, asset.Size, asset.URL, asset.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrAssetAlreadyExists
		}
		return fmt.Errorf("inserting asset: %w", err)
	}
	return nil
}

func (r *AssetRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Asset, error) {
	query := `
		SELECT id, hash, ext, mime, name, size, url, created_at
		FROM assets
		WHERE id = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *AssetRepo) GetByHash(ctx context.Context, hash, ext string) (*entity.Asset, error) {
	query := `
		SELECT id, hash, ext, mime, name, size, url, created_at
		FROM assets
		WHERE hash = $1 AND ext = $2
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, hash, ext))
}

func (r *AssetRepo) scanOne(row pgx.Row) (*entity.Asset, error) {
	var asset entity.Asset
	err := row.Scan(
		&asset.ID, &asset.Hash, &asset.Ext, &asset.Mime,
		&asset.Name, &asset.Size, &asset.URL, &asset.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, fmt.Errorf("querying asset: %w", err)
	}
	return &asset, nil
}

func (r *AssetRepo) List(ctx context.Context, params pagination.Params) ([]entity.Asset, *pagination.Info, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM assets`).Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("counting assets: %w", err)
	}

	query := `
		SELECT id, hash, ext, mime, name, size, url, created_at
		FROM assets
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, query, params.Limit(), params.Offset())
	if err != nil {
		return nil, nil, fmt.Errorf("querying assets: %w", err)
	}
	defer rows.Close()

	var assets []entity.Asset
	for rows.Next() {
		var asset entity.Asset
		if err := rows.Scan(
			&asset.ID, &asset.Hash, &asset.Ext, &asset.Mime,
			&asset.Name, &asset.Size, &asset.URL, &asset.CreatedAt,
		); err != nil {
			return nil, nil, fmt.Errorf("scanning asset: %w", err)
		}
		assets = append(assets, asset)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating assets: %w", err)
	}

	return assets, params.Info(total), nil
}

func (r *AssetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting asset: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}
