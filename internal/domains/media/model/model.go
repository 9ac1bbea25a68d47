package model

import "strings"

// AssetClass is the storage partition an upload lands in. Classes decouple
// asset kind from URL shape: each maps to a folder prefix in the bucket.
type AssetClass string

const (
	AssetClassImage    AssetClass = "images"
	AssetClassVideo    AssetClass = "videos"
	AssetClassDocument AssetClass = "documents"
	AssetClassRaw      AssetClass = "raw"
)

// Classify maps a declared content type onto an asset class.
// image/* -> images, video/* -> videos, application/pdf -> documents,
// everything else -> raw.
func Classify(contentType string) AssetClass {
	// Strip parameters like "; charset=binary"
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = contentType[:idx]
	}
	contentType = strings.TrimSpace(strings.ToLower(contentType))

	switch {
	case strings.HasPrefix(contentType, "image/"):
		return AssetClassImage
	case strings.HasPrefix(contentType, "video/"):
		return AssetClassVideo
	case contentType == "application/pdf":
		return AssetClassDocument
	default:
		return AssetClassRaw
	}
}

// UploadResult is the wire shape of a successful upload.
type UploadResult struct {
	URL string `json:"url"`
}
