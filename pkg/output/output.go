package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/stefanpenner/gh-explorer/pkg/githubapi"
	"github.com/stefanpenner/gh-explorer/pkg/pagination"
)

type Format string

const (
	FormatStyled   Format = "styled"
	FormatMarkdown Format = "markdown"
)

const (
	NoDescription = "No description available"
	MaxTopics     = 3
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatStyled:
		return FormatStyled, nil
	case FormatMarkdown:
		return FormatMarkdown, nil
	default:
		return "", errors.Newf("unknown output format %q (want styled or markdown)", s)
	}
}

// Repositories writes one page of search results followed by the page
// label. query is the user's search text, used for page links.
func Repositories(w io.Writer, query string, result *githubapi.SearchResult, pager pagination.Pager, format Format) error {
	if result == nil {
		result = &githubapi.SearchResult{}
	}
	switch format {
	case FormatMarkdown:
		return repositoriesMarkdown(w, query, result, pager)
	case FormatStyled, "":
		return repositoriesStyled(w, result, pager)
	default:
		return errors.Newf("unknown output format %q", format)
	}
}

// Stars formats a star count with thousands separators.
func Stars(n int) string {
	return humanize.Comma(int64(n))
}

// Description substitutes the placeholder for an empty description.
func Description(repo githubapi.Repository) string {
	if strings.TrimSpace(repo.Description) == "" {
		return NoDescription
	}
	return repo.Description
}

// FoundLabel is the "Found N repositories" summary line.
func FoundLabel(total int) string {
	noun := "repositories"
	if total == 1 {
		noun = "repository"
	}
	return fmt.Sprintf("Found %s %s", humanize.Comma(int64(total)), noun)
}
