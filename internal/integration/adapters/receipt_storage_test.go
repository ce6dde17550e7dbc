package adapters

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalReceiptStorage_Save(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	storage, err := NewLocalReceiptStorage(dir, "http://localhost:8080/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	url, err := storage.Save(ctx, ".png", strings.NewReader("fake image bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(url, "http://localhost:8080/receipts/") {
		t.Errorf("url = %q, want /receipts/ path under the base URL", url)
	}
	if !strings.HasSuffix(url, ".png") {
		t.Errorf("url = %q, want .png suffix", url)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("stored files = %d, want 1", len(entries))
	}

	content, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(content) != "fake image bytes" {
		t.Errorf("stored content = %q", string(content))
	}
}

func TestLocalReceiptStorage_NormalizesExtension(t *testing.T) {
	ctx := context.Background()

	storage, err := NewLocalReceiptStorage(t.TempDir(), "http://localhost:8080")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	url, err := storage.Save(ctx, "JPG", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(url, ".jpg") {
		t.Errorf("url = %q, want lowercase dotted extension", url)
	}
}

func TestLocalReceiptStorage_CancelledContext(t *testing.T) {
	storage, err := NewLocalReceiptStorage(t.TempDir(), "http://localhost:8080")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := storage.Save(ctx, ".png", strings.NewReader("x")); err == nil {
		t.Error("expected error for cancelled context")
	}
}
