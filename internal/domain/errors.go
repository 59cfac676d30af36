package domain

import "errors"

var (
	ErrAssetNotFound      = errors.New("asset not found")
	ErrAssetAlreadyExists = errors.New("asset already exists")
	ErrEmptyFile          = errors.New("empty file")
	ErrEncodeFailure      = errors.New("image encode failed")
	ErrSinkWrite          = errors.New("storage write failed")
	ErrSinkDelete         = errors.New("storage delete failed")
	ErrObjectNotFound     = errors.New("object not found")
	ErrUnsupportedFormat  = errors.New("unsupported image format")
	ErrFileTooLarge       = errors.New("file too large")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTokenInvalid       = errors.New("token invalid")
)
