package githubapi

import (
	"context"
)

// RepositorySearcher is the one GitHub call the explorer needs.
type RepositorySearcher interface {
	SearchRepositories(ctx context.Context, query string, page, perPage int) (*SearchResult, error)
}

var _ RepositorySearcher = (*Client)(nil)
