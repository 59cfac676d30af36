package variant

import (
	"fmt"

	"github.com/marcos-nsantos/asset-store/internal/adapter/storage"
	"github.com/marcos-nsantos/asset-store/internal/domain"
	"github.com/marcos-nsantos/asset-store/internal/domain/entity"
	"github.com/marcos-nsantos/asset-store/internal/domain/valueobject"
)

type Variant struct {
	Path        string
	Data        []byte
	ContentType string
}

type Planner struct {
	codec    storage.ImageCodec
	optimize valueobject.OptimizeOptions
	observer Observer
}

func NewPlanner(codec storage.ImageCodec, optimize valueobject.OptimizeOptions, observer Observer) *Planner {
	if observer == nil {
		observer = NopObserver
	}
	return &Planner{
		codec:    codec,
		optimize: optimize,
		observer: observer,
	}
}

// Plan produces the ordered variants to write for an asset: the original first,
// then per size the same-format copy followed by its webp derivative.
func (p *Planner) Plan(a *entity.Asset, data []byte, sizes []valueobject.SizeSpec) ([]Variant, error) {
	slots := layout(a, sizes, p.optimize)
	category := a.Category()
	variants := make([]Variant, 0, len(slots))

	for _, s := range slots {
		out := data
		if s.transform != nil {
			encoded, err := p.codec.Transform(data, *s.transform)
			if err != nil {
				return nil, fmt.Errorf("generating %s: %w: %w", s.path, domain.ErrEncodeFailure, err)
			}
			out = encoded
			p.observer.Observe(Event{Type: EventGenerated, Key: Key(category, s.path), Category: category})
		}

		variants = append(variants, Variant{
			Path:        s.path,
			Data:        out,
			ContentType: s.contentType,
		})
	}

	return variants, nil
}
