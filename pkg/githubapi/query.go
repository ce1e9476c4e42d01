package githubapi

import "strings"

// DefaultQualifier limits results to popular repositories.
const DefaultQualifier = "stars:>5000"

// BuildQuery appends qualifier to the user's query. A blank query searches
// on the qualifier alone.
func BuildQuery(userQuery, qualifier string) string {
	q := strings.TrimSpace(userQuery)
	qualifier = strings.TrimSpace(qualifier)
	switch {
	case q == "":
		return qualifier
	case qualifier == "":
		return q
	default:
		return q + " " + qualifier
	}
}
