package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	adapterStorage "github.com/marcos-nsantos/asset-store/internal/adapter/storage"
	"github.com/marcos-nsantos/asset-store/internal/domain/entity"
	"github.com/marcos-nsantos/asset-store/internal/infrastructure/config"
	"github.com/marcos-nsantos/asset-store/internal/infrastructure/hashing"
	"github.com/marcos-nsantos/asset-store/internal/infrastructure/observability"
	"github.com/marcos-nsantos/asset-store/internal/infrastructure/storage"
	"github.com/marcos-nsantos/asset-store/internal/usecase/asset"
	"github.com/marcos-nsantos/asset-store/internal/usecase/variant"
)

// env holds the collaborators commands build on. Tests swap them out.
type env struct {
	loadImage   func() (*config.ImageConfig, error)
	loadStorage func() (*config.StorageConfig, *config.ImageConfig, error)
	loadJWT     func() (*config.JWTConfig, error)
	newSink     func(context.Context, config.StorageConfig) (adapterStorage.BlobSink, error)
	codec       adapterStorage.ImageCodec
	hasher      asset.Hasher
	readFile    func(string) ([]byte, error)
}

func defaultEnv() *env {
	return &env{
		loadImage:   config.LoadImage,
		loadStorage: config.LoadStorage,
		loadJWT:     config.LoadJWT,
		newSink:     storage.NewBlobSink,
		codec:       storage.NewImageProcessor(),
		hasher:      hashing.NewBlake2bHasher(),
		readFile:    os.ReadFile,
	}
}

func (e *env) observer(flags *globalFlags) (variant.Observer, func(), error) {
	logger, err := observability.NewLogger(config.LogConfig{Level: flags.logLevel, Format: "console"})
	if err != nil {
		return nil, nil, fmt.Errorf("creating logger: %w", err)
	}
	return observability.NewVariantObserver(logger), func() { _ = logger.Sync() }, nil
}

// describeFile reads a local file into an asset record and its bytes.
func (e *env) describeFile(name string, thumbnail bool) (*entity.Asset, []byte, error) {
	data, err := e.readFile(name)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", name, err)
	}

	a, err := asset.Describe(filepath.Base(name), data, "", thumbnail, e.hasher)
	if err != nil {
		return nil, nil, fmt.Errorf("describing %s: %w", name, err)
	}
	return a, data, nil
}

func (e *env) provider(ctx context.Context, flags *globalFlags) (*asset.Provider, *config.StorageConfig, func(), error) {
	storageCfg, imageCfg, err := e.loadStorage()
	if err != nil {
		return nil, nil, nil, err
	}

	sink, err := e.newSink(ctx, *storageCfg)
	if err != nil {
		return nil, nil, nil, err
	}

	observer, done, err := e.observer(flags)
	if err != nil {
		return nil, nil, nil, err
	}

	planner := variant.NewPlanner(e.codec, imageCfg.Optimize, observer)
	return asset.NewProvider(planner, sink, imageCfg.Sizes, observer), storageCfg, done, nil
}
