package variant

import (
	"github.com/marcos-nsantos/asset-store/internal/adapter/storage"
	"github.com/marcos-nsantos/asset-store/internal/domain/entity"
	"github.com/marcos-nsantos/asset-store/internal/domain/valueobject"
)

// webpDir namespaces resized copies of webp originals so they never collide
// with the webp derivatives of other formats.
const webpDir = "webp"

// slot is one planned object. A nil transform means the original bytes.
type slot struct {
	path        string
	contentType string
	transform   *storage.TransformRequest
}

func layout(a *entity.Asset, sizes []valueobject.SizeSpec, opts valueobject.OptimizeOptions) []slot {
	category := a.Category()
	if category != valueobject.CategoryImage {
		return []slot{{path: category.Dir() + "/" + a.FileName(), contentType: a.Mime}}
	}

	kind := a.Kind()
	slots := []slot{{path: kind.String() + "/" + a.FileName(), contentType: a.Mime}}
	if kind == valueobject.KindThumbnail {
		return slots
	}

	format := a.Format()
	for _, size := range sizes {
		if format.Encodable() {
			p := size.Name + "/" + a.FileName()
			if format == valueobject.FormatWebP {
				p = webpDir + "/" + p
			}
			slots = append(slots, slot{
				path:        p,
				contentType: a.Mime,
				transform: &storage.TransformRequest{
					Format:     format,
					Encode:     opts.For(format),
					Resize:     size.Resize,
					AutoOrient: true,
				},
			})
		}

		if size.GenerateWebp && format != valueobject.FormatWebP {
			slots = append(slots, slot{
				path:        size.Name + "/" + a.Hash + ".webp",
				contentType: valueobject.FormatWebP.ContentType(),
				transform: &storage.TransformRequest{
					Format:     valueobject.FormatWebP,
					Encode:     opts.WebP,
					Resize:     size.Resize,
					AutoOrient: true,
				},
			})
		}
	}

	return slots
}

// Paths lists the plan paths of an asset without producing any bytes.
func Paths(a *entity.Asset, sizes []valueobject.SizeSpec) []string {
	slots := layout(a, sizes, valueobject.OptimizeOptions{})
	paths := make([]string, len(slots))
	for i, s := range slots {
		paths[i] = s.path
	}
	return paths
}

// Key maps a plan path to its bucket key. Image paths live under "images/";
// other categories already carry their directory in the path.
func Key(category valueobject.Category, path string) string {
	if category == valueobject.CategoryImage {
		return valueobject.CategoryImage.Dir() + "/" + path
	}
	return path
}

// Keys is Paths mapped through Key.
func Keys(a *entity.Asset, sizes []valueobject.SizeSpec) []string {
	paths := Paths(a, sizes)
	category := a.Category()
	for i, p := range paths {
		paths[i] = Key(category, p)
	}
	return paths
}
