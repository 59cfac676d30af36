package observability

import (
	"go.uber.org/zap"

	"github.com/marcos-nsantos/asset-store/internal/usecase/variant"
)

type VariantObserver struct {
	logger *zap.Logger
}

func NewVariantObserver(logger *zap.Logger) *VariantObserver {
	return &VariantObserver{logger: logger.Named("variant")}
}

func (o *VariantObserver) Observe(e variant.Event) {
	o.logger.Info("variant "+string(e.Type),
		zap.String("event", string(e.Type)),
		zap.String("path", e.Key),
		zap.String("category", e.Category.String()),
	)
}
