package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/asset-store/internal/domain/valueobject"
)

// Asset is the stored record of an uploaded file. Its bytes travel alongside it
// and are never persisted with the record.
type Asset struct {
	ID        uuid.UUID
	Hash      string
	Ext       string
	Mime      string
	Name      string
	Size      int64
	URL       string
	CreatedAt time.Time
}

func NewAsset(hash, ext, mime, name string, size int64) *Asset {
	return &Asset{
		ID:        uuid.New(),
		Hash:      hash,
		Ext:       ext,
		Mime:      mime,
		Name:      name,
		Size:      size,
		CreatedAt: time.Now().UTC(),
	}
}

func (a *Asset) Kind() valueobject.Kind {
	return valueobject.KindOf(a.Hash)
}

func (a *Asset) Category() valueobject.Category {
	return valueobject.CategoryOf(a.Ext)
}

func (a *Asset) Format() valueobject.ImageFormat {
	return valueobject.FormatOf(a.Ext)
}

// FileName is the hash-derived object name, e.g. "abc123.jpg".
func (a *Asset) FileName() string {
	return a.Hash + a.Ext
}
