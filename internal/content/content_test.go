package content

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessor_Sanitize(t *testing.T) {
	p := NewProcessor()

	tests := []struct {
		name     string
		in       string
		contains []string
		excludes []string
	}{
		{
			name:     "removes script",
			in:       `<p>hello</p><script>alert(1)</script>`,
			contains: []string{"<p>hello</p>"},
			excludes: []string{"script", "alert"},
		},
		{
			name:     "removes event handlers",
			in:       `<img src="https://example.com/a.png" onerror="steal()">`,
			contains: []string{`src="https://example.com/a.png"`},
			excludes: []string{"onerror", "steal"},
		},
		{
			name:     "drops javascript links",
			in:       `<a href="javascript:alert(1)">x</a>`,
			excludes: []string{"javascript:"},
		},
		{
			name:     "keeps code formatting",
			in:       `<pre><code class="language-go">db.Query(q, id)</code></pre>`,
			contains: []string{`<code class="language-go">`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := p.Sanitize(tt.in)
			for _, c := range tt.contains {
				assert.Contains(t, out, c)
			}
			for _, e := range tt.excludes {
				assert.NotContains(t, out, e)
			}
		})
	}
}

func TestPlainText(t *testing.T) {
	text, err := PlainText("<h1>Title</h1>\n<p>First   paragraph.</p><style>p{}</style><p>Second</p>")
	require.NoError(t, err)
	assert.Contains(t, text, "First paragraph.")
	assert.NotContains(t, text, "p{}")
}

func TestJSONText(t *testing.T) {
	doc := json.RawMessage(`{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"Rotate"},{"type":"text","text":"keys"}]}]}`)
	assert.ElementsMatch(t, []string{"Rotate", "keys"}, strings.Fields(JSONText(doc)))
	assert.Equal(t, "", JSONText(json.RawMessage(`{broken`)))
}

func TestEstimateReadTime(t *testing.T) {
	assert.Equal(t, 1, EstimateReadTime(""))
	assert.Equal(t, 1, EstimateReadTime(strings.Repeat("word ", 200)))
	assert.Equal(t, 2, EstimateReadTime(strings.Repeat("word ", 201)))
	assert.Equal(t, MaxReadTime, EstimateReadTime(strings.Repeat("word ", 200*500)))
}

func TestProcessor_ReadTime(t *testing.T) {
	p := NewProcessor()
	html := "<p>" + strings.Repeat("word ", 450) + "</p>"

	assert.Equal(t, 3, p.ReadTime(&html, nil))
	assert.Equal(t, 1, p.ReadTime(nil, json.RawMessage(`{"text":"short"}`)))
	assert.Equal(t, 1, p.ReadTime(nil, nil))
}
