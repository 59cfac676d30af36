package asset

import (
	"context"
	"fmt"

	"github.com/marcos-nsantos/asset-store/internal/adapter/storage"
	"github.com/marcos-nsantos/asset-store/internal/domain"
	"github.com/marcos-nsantos/asset-store/internal/domain/entity"
	"github.com/marcos-nsantos/asset-store/internal/domain/valueobject"
	"github.com/marcos-nsantos/asset-store/internal/usecase/variant"
)

// KeyError records a failed delete of one bucket key.
type KeyError struct {
	Key string
	Err error
}

func (e KeyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Key, e.Err)
}

func (e KeyError) Unwrap() error {
	return e.Err
}

// Provider writes an asset's planned variants to the blob sink and removes
// them again by the same key derivation.
type Provider struct {
	planner  *variant.Planner
	sink     storage.BlobSink
	sizes    []valueobject.SizeSpec
	observer variant.Observer
}

func NewProvider(
	planner *variant.Planner,
	sink storage.BlobSink,
	sizes []valueobject.SizeSpec,
	observer variant.Observer,
) *Provider {
	if observer == nil {
		observer = variant.NopObserver
	}
	return &Provider{
		planner:  planner,
		sink:     sink,
		sizes:    sizes,
		observer: observer,
	}
}

// Upload stores every variant in plan order and returns the public URL of the
// primary one. The first failed write aborts; objects already written stay.
func (p *Provider) Upload(ctx context.Context, a *entity.Asset, data []byte, params storage.Params) (string, error) {
	variants, err := p.planner.Plan(a, data, p.sizes)
	if err != nil {
		return "", err
	}

	category := a.Category()
	for _, v := range variants {
		key := variant.Key(category, v.Path)
		err := p.sink.Put(ctx, storage.PutInput{
			Key:         key,
			Body:        v.Data,
			ContentType: v.ContentType,
			Visibility:  storage.VisibilityPublicRead,
			Params:      params,
		})
		if err != nil {
			return "", fmt.Errorf("uploading %s: %w: %w", key, domain.ErrSinkWrite, err)
		}
		p.observer.Observe(variant.Event{Type: variant.EventUploaded, Key: key, Category: category})
	}

	return p.sink.GetURL(variant.Key(category, variants[0].Path)), nil
}

// Delete removes every key the asset would have been uploaded to. It never
// stops early; failed keys are returned for the caller to report.
func (p *Provider) Delete(ctx context.Context, a *entity.Asset, params storage.Params) []KeyError {
	var failures []KeyError
	category := a.Category()

	for _, key := range variant.Keys(a, p.sizes) {
		if err := p.sink.Delete(ctx, key, params); err != nil {
			failures = append(failures, KeyError{Key: key, Err: fmt.Errorf("%w: %w", domain.ErrSinkDelete, err)})
			continue
		}
		p.observer.Observe(variant.Event{Type: variant.EventDeleted, Key: key, Category: category})
	}

	return failures
}

// URLs lists the public URL of every object stored for the asset, in plan order.
func (p *Provider) URLs(a *entity.Asset) []string {
	keys := variant.Keys(a, p.sizes)
	urls := make([]string, len(keys))
	for i, key := range keys {
		urls[i] = p.sink.GetURL(key)
	}
	return urls
}
