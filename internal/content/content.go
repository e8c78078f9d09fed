// Package content prepares article bodies for storage: it sanitizes HTML and
// derives plain text and reading time from either content representation.
package content

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

const (
	// WordsPerMinute is the reading speed used for estimates.
	WordsPerMinute = 200
	MinReadTime    = 1
	MaxReadTime    = 120
)

// Processor sanitizes article HTML and estimates reading time.
// It is safe for concurrent use.
type Processor struct {
	policy *bluemonday.Policy
}

// NewProcessor creates a Processor with a user-generated-content policy.
func NewProcessor() *Processor {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "pre", "span")
	policy.RequireNoReferrerOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	return &Processor{policy: policy}
}

// Sanitize strips scripts, event handlers and other unsafe markup.
func (p *Processor) Sanitize(html string) string {
	return strings.TrimSpace(p.policy.Sanitize(html))
}

// PlainText returns the visible text of an HTML fragment.
func PlainText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}
	doc.Find("script, style").Remove()
	return strings.Join(strings.Fields(doc.Text()), " "), nil
}

// JSONText collects the "text" leaves of a rich-text JSON document
// (ProseMirror/TipTap shaped). Invalid JSON yields an empty string.
func JSONText(raw json.RawMessage) string {
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ""
	}
	var parts []string
	collectText(doc, &parts)
	return strings.Join(parts, " ")
}

func collectText(node interface{}, parts *[]string) {
	switch n := node.(type) {
	case map[string]interface{}:
		if text, ok := n["text"].(string); ok {
			*parts = append(*parts, text)
		}
		for key, child := range n {
			if key == "text" {
				continue
			}
			collectText(child, parts)
		}
	case []interface{}:
		for _, child := range n {
			collectText(child, parts)
		}
	}
}

// EstimateReadTime returns whole minutes needed to read text, within [MinReadTime, MaxReadTime].
func EstimateReadTime(text string) int {
	words := len(strings.Fields(text))
	minutes := int(math.Ceil(float64(words) / WordsPerMinute))
	if minutes < MinReadTime {
		return MinReadTime
	}
	if minutes > MaxReadTime {
		return MaxReadTime
	}
	return minutes
}

// ReadTime estimates reading time from whichever representation is present,
// preferring HTML.
func (p *Processor) ReadTime(html *string, raw json.RawMessage) int {
	if html != nil && strings.TrimSpace(*html) != "" {
		if text, err := PlainText(*html); err == nil {
			return EstimateReadTime(text)
		}
	}
	if len(raw) > 0 {
		return EstimateReadTime(JSONText(raw))
	}
	return MinReadTime
}
