package interfaces

import "context"

// PageFetcher loads the raw page chunk payload for a page id.
type PageFetcher interface {
	LoadPageChunk(ctx context.Context, pageID string) ([]byte, error)
}
