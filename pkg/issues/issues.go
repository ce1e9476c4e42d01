package issues

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/stefanpenner/gh-explorer/pkg/selection"
)

// Status is the business state of an issue.
type Status string

const (
	StatusOpen     Status = "open"
	StatusResolved Status = "resolved"
)

// NormalizeStatus maps anything that is not "resolved" to open.
func NormalizeStatus(raw string) Status {
	if raw == string(StatusResolved) {
		return StatusResolved
	}
	return StatusOpen
}

// Issue is a single row in the issue table.
type Issue struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Message   string  `json:"message"`
	Status    Status  `json:"status"`
	NumEvents int     `json:"numEvents"`
	NumUsers  int     `json:"numUsers"`
	Value     float64 `json:"value"`
}

// IsOpen reports whether the issue can be selected.
func (i Issue) IsOpen() bool {
	return i.Status == StatusOpen
}

// Decode reads a JSON array of issues. Any other top-level JSON value
// yields an empty list.
func Decode(r io.Reader) ([]Issue, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read issues")
	}

	trimmed := bytes.TrimSpace(data)
	if !json.Valid(trimmed) {
		return nil, errors.New("failed to parse issues: invalid JSON")
	}
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return []Issue{}, nil
	}

	var raw []struct {
		Issue
		Status string `json:"status"`
	}
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to parse issues")
	}

	out := make([]Issue, 0, len(raw))
	for _, r := range raw {
		issue := r.Issue
		issue.Status = NormalizeStatus(r.Status)
		out = append(out, issue)
	}
	return out, nil
}

// Load decodes the issue file at path.
func Load(path string) ([]Issue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open issues file %s", path)
	}
	defer f.Close()
	return Decode(f)
}

// ToItems projects issues onto selection items: open issues are eligible
// and Value is the weight.
func ToItems(list []Issue) []selection.Item {
	items := make([]selection.Item, len(list))
	for i, issue := range list {
		items[i] = selection.Item{
			ID:       issue.ID,
			Eligible: issue.IsOpen(),
			Weight:   issue.Value,
		}
	}
	return items
}
