// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"io"
)

// ReceiptStorage stores uploaded receipt images and returns a publicly
// resolvable URL for each stored file.
type ReceiptStorage interface {
	// Save stores the file content under a generated receipts/{timestamp}.{ext}
	// path and returns its public URL.
	Save(ctx context.Context, ext string, content io.Reader) (string, error)
}
