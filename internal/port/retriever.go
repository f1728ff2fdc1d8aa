package port

import "context"

// FileRetriever fetches the latest spreadsheet export for a source from
// the remote file store and returns the local path it was written to.
// Implementations must not leave partially-downloaded files at the
// returned path; retrieval failures wrap domain.ErrRetrievalFailed.
type FileRetriever interface {
	FetchFile(ctx context.Context, sourceID string) (string, error)
}
