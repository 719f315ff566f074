package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
)

// LocalStore writes artifacts under a public directory served by the HTTP
// layer at /storage. The returned URL is fully qualified so it can be put
// straight into a notification.
type LocalStore struct {
	baseDir       string
	publicBaseURL string
}

func NewLocalStore(baseDir, publicBaseURL string) *LocalStore {
	return &LocalStore{
		baseDir:       baseDir,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

var _ portssvc.ArtifactStore = (*LocalStore)(nil)

func (s *LocalStore) Store(_ context.Context, relPath string, content []byte) (string, error) {
	cleaned := filepath.Clean(relPath)
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("artifact path %q escapes the storage directory", relPath)
	}

	fullPath := filepath.Join(s.baseDir, cleaned)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("create artifact directory: %w", err)
	}
	if err := os.WriteFile(fullPath, content, 0o644); err != nil {
		return "", fmt.Errorf("write artifact: %w", err)
	}

	return fmt.Sprintf("%s/storage/%s", s.publicBaseURL, filepath.ToSlash(cleaned)), nil
}
