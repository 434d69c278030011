// Package storage хранит загруженные изображения объявлений.
package storage

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

var (
	ErrNotFound        = errors.New("image not found")
	ErrUnsupportedType = errors.New("unsupported image type")
)

// Store: хранилище бинарных изображений. id пригоден для URL /api/images/{id}.
type Store interface {
	Put(ctx context.Context, contentType string, data []byte) (string, error)
	Open(ctx context.Context, id string) (*Object, error)
	Delete(ctx context.Context, id string) error
}

// Object: содержимое изображения.
type Object struct {
	ContentType string
	Data        []byte
}

var extByType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Supported сообщает, принимается ли тип изображения.
func Supported(contentType string) bool {
	_, ok := extByType[contentType]
	return ok
}

func extensionFor(contentType string) (string, error) {
	ext, ok := extByType[contentType]
	if !ok {
		return "", ErrUnsupportedType
	}
	return ext, nil
}

func typeForName(name string) string {
	for ct, ext := range extByType {
		if strings.HasSuffix(name, ext) {
			return ct
		}
	}
	return "application/octet-stream"
}

// URL: публичный путь к изображению.
func URL(id string) string { return "/api/images/" + id }

// IDFromURL извлекает id из URL, выданного URL(); пустая строка: чужой URL.
func IDFromURL(u string) string {
	const prefix = "/api/images/"
	if !strings.HasPrefix(u, prefix) {
		return ""
	}
	return strings.TrimPrefix(u, prefix)
}

var fsIDRe = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.(jpg|png|webp)$`)
