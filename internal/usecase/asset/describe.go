package asset

import (
	"path"

	"github.com/gabriel-vasile/mimetype"

	"github.com/marcos-nsantos/asset-store/internal/domain"
	"github.com/marcos-nsantos/asset-store/internal/domain/entity"
	"github.com/marcos-nsantos/asset-store/internal/domain/valueobject"
)

// Describe builds the record for raw upload bytes. The extension comes from
// name, the mime from contentType; both fall back to content sniffing.
func Describe(name string, data []byte, contentType string, thumbnail bool, hasher Hasher) (*entity.Asset, error) {
	if len(data) == 0 {
		return nil, domain.ErrEmptyFile
	}

	detected := mimetype.Detect(data)

	ext := path.Ext(name)
	if ext == "" {
		ext = detected.Extension()
	}

	mime := contentType
	if mime == "" || mime == "application/octet-stream" {
		mime = detected.String()
	}

	hash := hasher.Hash(data)
	if thumbnail {
		hash = valueobject.ThumbnailPrefix + hash
	}

	return entity.NewAsset(hash, ext, mime, name, int64(len(data))), nil
}
