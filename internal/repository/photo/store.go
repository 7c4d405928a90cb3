package photo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"parcel-service/internal/entities"
)

// PathPrefix префикс относительного пути фото, он же URL-префикс раздачи.
const PathPrefix = "uploads"

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

var ErrInvalidFileName = errors.New("invalid photo file name")

// Store хранит фото доставок в локальной директории.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save перезаписывает файл с тем же именем.
func (s *Store) Save(_ context.Context, photo entities.Photo) (entities.StoredPhoto, error) {
	name, err := baseName(photo.FileName)
	if err != nil {
		return entities.StoredPhoto{}, err
	}

	fullPath := filepath.Join(s.dir, name)
	err = os.WriteFile(fullPath, photo.Content, filePerm)
	if err != nil {
		return entities.StoredPhoto{}, fmt.Errorf("write photo: %w", err)
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		return entities.StoredPhoto{}, fmt.Errorf("stat photo: %w", err)
	}

	return entities.StoredPhoto{
		Path:    path.Join(PathPrefix, name),
		ModTime: info.ModTime(),
	}, nil
}

// Remove отсутствие файла ошибкой не считается.
func (s *Store) Remove(_ context.Context, photoPath string) error {
	fullPath, err := s.fullPath(photoPath)
	if err != nil {
		return err
	}

	err = os.Remove(fullPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove photo: %w", err)
	}
	return nil
}

// RemoveIfUnchanged удаляет файл, только если его не перезаписали после stored.
func (s *Store) RemoveIfUnchanged(ctx context.Context, stored entities.StoredPhoto) error {
	fullPath, err := s.fullPath(stored.Path)
	if err != nil {
		return err
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat photo: %w", err)
	}
	if !info.ModTime().Equal(stored.ModTime) {
		return nil
	}

	return s.Remove(ctx, stored.Path)
}

func (s *Store) fullPath(photoPath string) (string, error) {
	name, err := baseName(strings.TrimPrefix(photoPath, PathPrefix+"/"))
	if err != nil {
		return "", err
	}
	return filepath.Join(s.dir, name), nil
}

func (s *Store) ListOlderThan(_ context.Context, cutoff time.Time) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read upload dir: %w", err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// файл мог быть удалён между ReadDir и Info
			continue
		}
		if info.ModTime().Before(cutoff) {
			paths = append(paths, path.Join(PathPrefix, entry.Name()))
		}
	}
	return paths, nil
}

func baseName(name string) (string, error) {
	base := filepath.Base(filepath.FromSlash(strings.ReplaceAll(name, `\`, "/")))
	switch base {
	case "", ".", "..", string(filepath.Separator):
		return "", ErrInvalidFileName
	}
	return base, nil
}
