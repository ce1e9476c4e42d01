package githubapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/go-github/v74/github"
)

// StatusError is a non-2xx reply from the search endpoint.
type StatusError struct {
	StatusCode       int
	Message          string
	DocumentationURL string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GitHub API error: %d%s", e.StatusCode, formatDetail(e.Message))
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	return 0
}

func handleGithubError(err error, resp *github.Response) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(err, "repository search")
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		statusErr := &StatusError{StatusCode: http.StatusForbidden, Message: rateErr.Message}
		reset := rateErr.Rate.Reset.Time
		if reset.IsZero() {
			return errors.WithHint(statusErr, "API rate limit reached. Wait for the limit to reset and try again.")
		}
		return errors.WithHintf(statusErr, "API rate limit reached. It resets at %s.", reset.Local().Format(time.Kitchen))
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		statusErr := &StatusError{StatusCode: http.StatusForbidden, Message: abuseErr.Message}
		if retry := abuseErr.GetRetryAfter(); retry > 0 {
			return errors.WithHintf(statusErr, "Secondary rate limit hit. Retry after %s.", retry)
		}
		return errors.WithHint(statusErr, "Secondary rate limit hit. Slow down and try again later.")
	}

	var apiErr *github.ErrorResponse
	if errors.As(err, &apiErr) && apiErr.Response != nil {
		statusErr := &StatusError{
			StatusCode:       apiErr.Response.StatusCode,
			Message:          apiErr.Message,
			DocumentationURL: apiErr.DocumentationURL,
		}
		var out error = statusErr
		switch statusErr.StatusCode {
		case http.StatusUnprocessableEntity:
			out = errors.WithHint(out, "The search query is invalid. Check qualifiers such as stars:>N and language:X.")
		case http.StatusNotFound:
			out = errors.WithHint(out, "Not found. Check the API base URL.")
		case http.StatusServiceUnavailable:
			out = errors.WithHint(out, "GitHub search is temporarily unavailable.")
		}
		if statusErr.DocumentationURL != "" {
			out = errors.WithHintf(out, "Docs: %s", statusErr.DocumentationURL)
		}
		return out
	}

	if resp != nil && resp.Response != nil && (resp.StatusCode < 200 || resp.StatusCode >= 300) {
		return &StatusError{StatusCode: resp.StatusCode}
	}
	return errors.Wrap(err, "repository search")
}

func formatDetail(detail string) string {
	if detail == "" {
		return ""
	}
	return " - " + detail
}
