package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FSStore keeps assets on the local filesystem, for development runs without
// cloud credentials. URLs are urlPrefix + filename; serving the directory over
// HTTP is the deployment's problem.
type FSStore struct {
	dir       string
	urlPrefix string
}

// NewFS creates dir if needed and returns a store writing into it.
func NewFS(dir, urlPrefix string) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create blob dir: %w", err)
	}
	return &FSStore{dir: dir, urlPrefix: urlPrefix}, nil
}

func (s *FSStore) Upload(ctx context.Context, data []byte, contentType, filename string) (string, error) {
	key := objectKey(filename)
	if err := os.WriteFile(filepath.Join(s.dir, key), data, 0o644); err != nil {
		return "", fmt.Errorf("write blob %s: %w", key, err)
	}
	return s.urlPrefix + key, nil
}

func (s *FSStore) Delete(ctx context.Context, url string) error {
	key := strings.TrimPrefix(url, s.urlPrefix)
	if key == url || key == "" || strings.Contains(key, "/") {
		return fmt.Errorf("url %q is not under prefix %q", url, s.urlPrefix)
	}
	if err := os.Remove(filepath.Join(s.dir, key)); err != nil {
		return fmt.Errorf("remove blob %s: %w", key, err)
	}
	return nil
}
