package valueobject

import "strings"

type Kind string

const (
	KindOrigin    Kind = "origin"
	KindThumbnail Kind = "thumbnail"
)

const ThumbnailPrefix = string(KindThumbnail) + "_"

func KindOf(hash string) Kind {
	prefix, _, _ := strings.Cut(hash, "_")
	if prefix == string(KindThumbnail) {
		return KindThumbnail
	}
	return KindOrigin
}

func (k Kind) String() string {
	return string(k)
}
