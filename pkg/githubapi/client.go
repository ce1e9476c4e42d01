package githubapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/go-github/v74/github"
	"github.com/stefanpenner/gh-explorer/pkg/logging"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("githubapi")

const (
	DefaultUserAgent = "gh-explorer"
	DefaultTimeout   = 60 * time.Second
	DefaultPerPage   = 30
)

type Client struct {
	baseURL    string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
	gh         *github.Client
	logger     *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithBaseURL points the client at a GitHub-compatible API root, e.g. a
// test server or GitHub Enterprise.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithUserAgent(agent string) Option {
	return func(c *Client) {
		c.userAgent = agent
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func NewClient(opts ...Option) (*Client, error) {
	client := &Client{
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
		logger:    logging.Default(),
	}
	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   client.timeout,
		}
	}

	gh := github.NewClient(client.httpClient)
	gh.UserAgent = client.userAgent
	if client.baseURL != "" {
		base := client.baseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		parsed, err := url.Parse(base)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid GitHub API base URL %q", client.baseURL)
		}
		gh.BaseURL = parsed
	}
	client.gh = gh

	return client, nil
}

// SearchRepositories fetches one page of repositories matching query,
// sorted by stars in descending order.
func (c *Client) SearchRepositories(ctx context.Context, query string, page, perPage int) (*SearchResult, error) {
	ctx, span := tracer.Start(ctx, "SearchRepositories", trace.WithAttributes(
		attribute.String("github.query", query),
		attribute.Int("github.page", page),
		attribute.Int("github.per_page", perPage),
	))
	defer span.End()

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	opts := &github.SearchOptions{
		Sort:  "stars",
		Order: "desc",
		ListOptions: github.ListOptions{
			Page:    page,
			PerPage: perPage,
		},
	}

	started := time.Now()
	result, resp, err := c.gh.Search.Repositories(ctx, query, opts)
	if err != nil {
		err = handleGithubError(err, resp)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Debug("repository search failed",
			slog.String("query", query),
			slog.Int("page", page),
			logging.ErrAttr(err),
		)
		return nil, err
	}

	out := &SearchResult{
		TotalCount:        result.GetTotal(),
		IncompleteResults: result.GetIncompleteResults(),
		Items:             make([]Repository, 0, len(result.Repositories)),
	}
	for _, repo := range result.Repositories {
		out.Items = append(out.Items, convertRepository(repo))
	}

	span.SetAttributes(
		attribute.Int("github.total_count", out.TotalCount),
		attribute.Int("github.items", len(out.Items)),
	)
	c.logger.Debug("repository search",
		slog.String("query", query),
		slog.Int("page", page),
		slog.Int("total", out.TotalCount),
		slog.Duration("elapsed", time.Since(started)),
	)
	return out, nil
}

func convertRepository(repo *github.Repository) Repository {
	return Repository{
		ID:       repo.GetID(),
		Name:     repo.GetName(),
		FullName: repo.GetFullName(),
		Owner: Owner{
			Login:     repo.GetOwner().GetLogin(),
			AvatarURL: repo.GetOwner().GetAvatarURL(),
		},
		HTMLURL:         repo.GetHTMLURL(),
		Description:     repo.GetDescription(),
		StargazersCount: repo.GetStargazersCount(),
		Language:        repo.GetLanguage(),
		Topics:          repo.Topics,
	}
}
