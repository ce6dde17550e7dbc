// Package dto defines data transfer objects for API requests and responses.
package dto

// UploadReceiptResponse represents the response for a receipt upload.
type UploadReceiptResponse struct {
	URL string `json:"url"`
}
