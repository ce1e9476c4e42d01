package output

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/stefanpenner/gh-explorer/pkg/githubapi"
	"github.com/stefanpenner/gh-explorer/pkg/pagination"
)

func repositoriesMarkdown(w io.Writer, query string, result *githubapi.SearchResult, pager pagination.Pager) error {
	fmt.Fprintln(w, "# GitHub Repository Explorer")
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "%s\n", FoundLabel(result.TotalCount))
	fmt.Fprintln(w, "")

	for _, repo := range result.Items {
		fmt.Fprintf(w, "## %s ★ %s\n", markdownLink(repo.HTMLURL, repo.FullName), Stars(repo.StargazersCount))
		fmt.Fprintln(w, "")
		meta := "**" + repo.Owner.Login + "**"
		if repo.Language != "" {
			meta += " · " + repo.Language
		}
		fmt.Fprintln(w, meta)
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, escapeMarkdown(Description(repo)))
		if topics := repo.TopTopics(MaxTopics); len(topics) > 0 {
			fmt.Fprintln(w, "")
			fmt.Fprintf(w, "Topics: %s\n", codeList(topics))
		}
		fmt.Fprintln(w, "")
	}

	fmt.Fprintf(w, "_%s_\n", pager.Label())
	if nav := pageLinks(query, pager); nav != "" {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, nav)
	}
	return nil
}

// pageLinks renders previous/next permalinks. repo-explorer accepts these
// links back as its argument.
func pageLinks(query string, pager pagination.Pager) string {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	var links []string
	if pager.HasPrev() {
		links = append(links, markdownLink(pagination.PageURL(params, pager.Current-1), "← Previous"))
	}
	if pager.HasNext() {
		links = append(links, markdownLink(pagination.PageURL(params, pager.Current+1), "Next →"))
	}
	return strings.Join(links, " · ")
}

func markdownLink(url, text string) string {
	if url == "" {
		return text
	}
	return fmt.Sprintf("[%s](%s)", text, url)
}

func codeList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "`" + item + "`"
	}
	return strings.Join(quoted, ", ")
}

var markdownEscaper = strings.NewReplacer("|", `\|`, "*", `\*`, "_", `\_`, "`", "\\`")

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
