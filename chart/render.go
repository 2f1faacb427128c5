package chart

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/remeh/sizedwaitgroup"
)

// chart geometry in svg user units
// document height = headerHeight + rowHeight per entry + bottomPadding
const (
	chartWidth    = 360
	headerHeight  = 45
	rowHeight     = 40
	bottomPadding = 25
	barMaxWidth   = 310
	barHeight     = 8
)

const fontFamily = "'Segoe UI', Ubuntu, sans-serif"

type Renderer struct {
	maxParallelColorTasks int
}

func NewRenderer(maxParallelColorTasks int) Renderer {
	return Renderer{
		maxParallelColorTasks: maxParallelColorTasks,
	}
}

// ColorForLanguage maps a language name to a 6 hex digit fill color
// the md5 digest makes the mapping stable across requests and restarts
// without any persisted palette. collisions between two language names
// are possible and accepted, the color is cosmetic
func ColorForLanguage(name string) string {
	digest := md5.Sum([]byte(name))
	return hex.EncodeToString(digest[:3])
}

// colorResult pairs a computed color with its row position, so rows keep
// rank order in the final document whatever order the goroutines finish in
type colorResult struct {
	RowIndex int
	Hex      string
}

// Render builds the complete svg document for the ranked shares
// displayCount caps the number of rows, any non positive value means
// render every entry. the function is pure: same input, same document
func (r Renderer) Render(ranked []LanguageShare, displayCount int) string {
	if displayCount > 0 && displayCount < len(ranked) {
		ranked = ranked[:displayCount]
	}

	colors := r.assignColors(ranked)
	height := headerHeight + rowHeight*len(ranked) + bottomPadding

	var doc strings.Builder

	doc.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n", chartWidth, height, chartWidth, height))
	doc.WriteString("  <title>Top Languages</title>\n")
	doc.WriteString(fmt.Sprintf(`  <rect x="0.5" y="0.5" width="%d" height="%d" rx="4.5" fill="#fffefe" stroke="#e4e2e2"/>`+"\n", chartWidth-1, height-1))
	doc.WriteString(fmt.Sprintf(`  <text x="25" y="30" font-family="%s" font-size="16" font-weight="600" fill="#2f80ed">Top Languages</text>`+"\n", fontFamily))
	doc.WriteString(fmt.Sprintf(`  <g transform="translate(25, %d)">`+"\n", headerHeight))

	for i, share := range ranked {
		percent, _ := strconv.ParseFloat(share.Percent, 64)
		barWidth := percent / 100 * barMaxWidth

		doc.WriteString(fmt.Sprintf(`    <g transform="translate(0, %d)">`+"\n", i*rowHeight))
		doc.WriteString(fmt.Sprintf(`      <text x="0" y="12" font-family="%s" font-size="12" fill="#333333">%s</text>`+"\n", fontFamily, html.EscapeString(share.Name)))
		doc.WriteString(fmt.Sprintf(`      <text x="%d" y="12" text-anchor="end" font-family="%s" font-size="12" fill="#333333">%s%%</text>`+"\n", barMaxWidth, fontFamily, share.Percent))
		doc.WriteString(fmt.Sprintf(`      <rect x="0" y="19" width="%d" height="%d" rx="4" fill="#dddddd"/>`+"\n", barMaxWidth, barHeight))
		doc.WriteString(fmt.Sprintf(`      <rect x="0" y="19" width="%.2f" height="%d" rx="4" fill="#%s"/>`+"\n", barWidth, barHeight, colors[i]))
		doc.WriteString("    </g>\n")
	}

	doc.WriteString("  </g>\n")
	doc.WriteString("</svg>\n")

	return doc.String()
}

// assignColors computes the fill color of every row
// each digest is independent from the others, so the computation is fanned
// out over a bounded group of goroutines and collected through a channel
// keyed by row index
func (r Renderer) assignColors(ranked []LanguageShare) []string {
	swg := sizedwaitgroup.New(r.maxParallelColorTasks)
	results := make(chan colorResult, len(ranked))

	for i, share := range ranked {
		swg.Add()

		go func(rowIndex int, name string) {
			defer swg.Done()
			results <- colorResult{RowIndex: rowIndex, Hex: ColorForLanguage(name)}
		}(i, share.Name)
	}

	// wait for all tasks to be finished before reading the channel
	swg.Wait()
	close(results)

	colors := make([]string, len(ranked))
	for result := range results {
		colors[result.RowIndex] = result.Hex
	}

	return colors
}
