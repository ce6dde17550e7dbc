// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kas-sigmafam/backend/internal/application/adapter"
)

// localReceiptStorage implements adapter.ReceiptStorage on the local
// filesystem. Files land in dir and are served by the router under /receipts.
type localReceiptStorage struct {
	dir     string
	baseURL string
}

// NewLocalReceiptStorage creates a receipt storage rooted at dir. Stored files
// resolve as {baseURL}/receipts/{filename}.
func NewLocalReceiptStorage(dir, baseURL string) (adapter.ReceiptStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create receipt directory: %w", err)
	}
	return &localReceiptStorage{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save writes the content to a timestamped file and returns its public URL.
func (s *localReceiptStorage) Save(ctx context.Context, ext string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d%s", time.Now().UTC().UnixMilli(), normalizeExt(ext))
	path := filepath.Join(s.dir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create receipt file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write receipt file: %w", err)
	}

	return s.baseURL + "/receipts/" + name, nil
}

// normalizeExt returns a lowercase dot-prefixed extension, empty when absent.
func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
