package githubapi

// SearchResult is one page of a repository search.
type SearchResult struct {
	TotalCount        int          `json:"total_count"`
	IncompleteResults bool         `json:"incomplete_results"`
	Items             []Repository `json:"items"`
}

type Repository struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	FullName        string   `json:"full_name"`
	Owner           Owner    `json:"owner"`
	HTMLURL         string   `json:"html_url"`
	Description     string   `json:"description"`
	StargazersCount int      `json:"stargazers_count"`
	Language        string   `json:"language"`
	Topics          []string `json:"topics"`
}

type Owner struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// TopTopics returns at most n topics in API order.
func (r Repository) TopTopics(n int) []string {
	n = max(n, 0)
	if len(r.Topics) <= n {
		return r.Topics
	}
	return r.Topics[:n]
}
