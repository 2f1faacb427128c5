package chart

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func rankedFixture() []LanguageShare {
	return []LanguageShare{
		{Name: "Python", Percent: "50.00"},
		{Name: "TypeScript", Percent: "33.33"},
		{Name: "JavaScript", Percent: "16.67"},
	}
}

// assertWellFormedXML walks the whole token stream, a single malformed
// element or unescaped character fails the decode
func assertWellFormedXML(t *testing.T, document string) {
	decoder := xml.NewDecoder(strings.NewReader(document))

	for {
		_, err := decoder.Token()
		if err == io.EOF {
			return
		}

		assert.NoError(t, err)

		if err != nil {
			return
		}
	}
}

// TestRender will test function Render
func TestRender(t *testing.T) {
	renderer := NewRenderer(8)

	tests := []struct {
		name             string
		ranked           []LanguageShare
		displayCount     int
		expectedInDoc    []string
		notExpectedInDoc []string
		expectedHeight   int
	}{
		{
			name:         "All languages displayed",
			ranked:       rankedFixture(),
			displayCount: 5,
			expectedInDoc: []string{
				"<title>Top Languages</title>",
				">Python</text>",
				">TypeScript</text>",
				">JavaScript</text>",
				">50.00%</text>",
				">33.33%</text>",
				">16.67%</text>",
				`translate(0, 0)`,
				`translate(0, 40)`,
				`translate(0, 80)`,
			},
			expectedHeight: 45 + 3*40 + 25,
		},
		{
			name:         "Truncated to the two most used languages",
			ranked:       rankedFixture(),
			displayCount: 2,
			expectedInDoc: []string{
				">Python</text>",
				">TypeScript</text>",
			},
			notExpectedInDoc: []string{
				"JavaScript",
			},
			expectedHeight: 45 + 2*40 + 25,
		},
		{
			name:         "Non positive display count keeps every entry",
			ranked:       rankedFixture(),
			displayCount: 0,
			expectedInDoc: []string{
				">Python</text>",
				">TypeScript</text>",
				">JavaScript</text>",
			},
			expectedHeight: 45 + 3*40 + 25,
		},
		{
			name:         "Empty ranked list renders an empty chart",
			ranked:       []LanguageShare{},
			displayCount: 5,
			expectedInDoc: []string{
				"<title>Top Languages</title>",
			},
			expectedHeight: 45 + 25,
		},
		{
			name: "Language names are escaped for markup",
			ranked: []LanguageShare{
				{Name: "C&C", Percent: "100.00"},
			},
			displayCount: 5,
			expectedInDoc: []string{
				">C&amp;C</text>",
			},
			expectedHeight: 45 + 40 + 25,
		},
	}

	// execute tests
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			document := renderer.Render(tt.ranked, tt.displayCount)

			assertWellFormedXML(t, document)
			assert.Contains(t, document, fmt.Sprintf(`height="%d"`, tt.expectedHeight))

			for _, expected := range tt.expectedInDoc {
				assert.Contains(t, document, expected)
			}

			for _, notExpected := range tt.notExpectedInDoc {
				assert.NotContains(t, document, notExpected)
			}
		})
	}
}

// TestRenderIsDeterministic checks that the same input always produces the
// exact same document, including the concurrently computed colors
func TestRenderIsDeterministic(t *testing.T) {
	renderer := NewRenderer(8)

	first := renderer.Render(rankedFixture(), 5)

	for i := 0; i < 10; i++ {
		assert.Equal(t, first, renderer.Render(rankedFixture(), 5))
	}
}

// TestRenderRowColorsFollowRankOrder checks that each row carries the color
// of its own language whatever order the color goroutines finished in
func TestRenderRowColorsFollowRankOrder(t *testing.T) {
	renderer := NewRenderer(2)
	document := renderer.Render(rankedFixture(), 5)

	rows := strings.Split(document, "</g>")
	assert.GreaterOrEqual(t, len(rows), 3)

	for i, share := range rankedFixture() {
		assert.Contains(t, rows[i], fmt.Sprintf(`fill="#%s"`, ColorForLanguage(share.Name)))
	}
}

// TestColorForLanguage will test function ColorForLanguage
func TestColorForLanguage(t *testing.T) {
	assert.Regexp(t, "^[0-9a-f]{6}$", ColorForLanguage("Go"))
	assert.Regexp(t, "^[0-9a-f]{6}$", ColorForLanguage("C++"))

	// stable across calls, no shared state involved
	assert.Equal(t, ColorForLanguage("Python"), ColorForLanguage("Python"))

	// case sensitive names are distinct inputs for the digest
	assert.NotEqual(t, ColorForLanguage("TypeScript"), ColorForLanguage("typescript"))
}
