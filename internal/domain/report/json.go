// Package report renders a check result into one of three fixed shapes:
// a JSON document, a Markdown document, or tabular rows carrying per-row
// emphasis intents. All renderers are pure functions of the result; the
// terminal device that draws the table lives in the tui adapter.
package report

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/schemaguard/schemaguard/internal/domain"
)

// jsonDocument pins the JSON shape: exactly the report link, the full
// untruncated change list, and the window. No severity styling.
type jsonDocument struct {
	TargetURL string                  `json:"targetUrl"`
	Changes   []domain.Change         `json:"changes"`
	Window    domain.ValidationWindow `json:"window"`
}

// JSON renders the result as an indented JSON document that round-trips
// losslessly.
func JSON(result *domain.CheckResult) (string, error) {
	doc := jsonDocument{
		TargetURL: result.TargetURL,
		Changes:   result.Changes,
		Window:    result.Window,
	}
	if doc.Changes == nil {
		doc.Changes = []domain.Change{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}
	return string(data), nil
}
