package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FSStore хранит изображения файлами в каталоге.
type FSStore struct {
	dir string
}

// NewFSStore создаёт каталог при необходимости.
func NewFSStore(dir string) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &FSStore{dir: dir}, nil
}

func (s *FSStore) Put(_ context.Context, contentType string, data []byte) (string, error) {
	ext, err := extensionFor(contentType)
	if err != nil {
		return "", err
	}
	id := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.dir, id), data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return id, nil
}

func (s *FSStore) Open(_ context.Context, id string) (*Object, error) {
	// id приходит из URL: допускаем только имена, выданные Put
	if !fsIDRe.MatchString(id) {
		return nil, ErrNotFound
	}
	data, err := os.ReadFile(filepath.Join(s.dir, id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return &Object{ContentType: typeForName(id), Data: data}, nil
}

func (s *FSStore) Delete(_ context.Context, id string) error {
	if !fsIDRe.MatchString(id) {
		return ErrNotFound
	}
	err := os.Remove(filepath.Join(s.dir, id))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	return err
}
