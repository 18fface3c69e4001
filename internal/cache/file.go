package cache

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileCache keeps entries as files under Dir. Keys may contain slashes and map
// to subdirectories.
type FileCache struct {
	Dir string
}

var _ Cache = (*FileCache)(nil)
var _ ListCache = (*FileCache)(nil)

func NewFileCache(dir string) *FileCache {
	return &FileCache{Dir: dir}
}

func (fc *FileCache) path(key string) string {
	return filepath.Join(fc.Dir, filepath.FromSlash(key))
}

func (fc *FileCache) Get(_ context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(fc.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (fc *FileCache) Exists(_ context.Context, key string) (bool, error) {
	_, err := os.Stat(fc.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (fc *FileCache) Put(_ context.Context, key, value string, opts PutOptions) error {
	filePath := fc.path(key)
	if opts.Condition == PutIfNoneMatch {
		if _, err := os.Stat(filePath); err == nil {
			return ErrAlreadyExists
		}
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return err
	}
	return os.WriteFile(filePath, []byte(value), 0644)
}

func (fc *FileCache) List(_ context.Context, prefix string, _ string) ([]string, error) {
	var keys []string
	err := filepath.Walk(fc.Dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(fc.Dir, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, strings.TrimPrefix(key, prefix))
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}
