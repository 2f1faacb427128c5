package chart

import (
	"sort"
	"strconv"

	"github.com/langbadge/toplangs-backend/model"
)

// LanguageShare is one ranked entry of the chart
// Percent is pre-formatted with exactly two decimals, e.g. "33.33"
type LanguageShare struct {
	Name    string
	Percent string
}

// Aggregate turns repository records into language shares ranked by usage
// repositories without a primary language are ignored, language names are
// compared exactly as github returns them (no case folding)
//
// an input without any tagged repository yields an empty list: there is
// nothing to divide by, and the caller renders an empty chart instead
func Aggregate(repos []model.GithubRepository) []LanguageShare {
	counts := make(map[string]int)
	order := make([]string, 0)
	total := 0

	for _, r := range repos {
		if r.PrimaryLanguage == nil || *r.PrimaryLanguage == "" {
			continue
		}

		if _, seen := counts[*r.PrimaryLanguage]; !seen {
			order = append(order, *r.PrimaryLanguage)
		}

		counts[*r.PrimaryLanguage]++
		total++
	}

	if total == 0 {
		return []LanguageShare{}
	}

	// sorting by raw count instead of the derived percentage avoids float
	// comparisons and gives the same order for a fixed total
	// the stable sort over the first-seen list keeps insertion order on ties
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	shares := make([]LanguageShare, 0, len(order))

	for _, name := range order {
		percent := float64(counts[name]) / float64(total) * 100

		shares = append(shares, LanguageShare{
			Name:    name,
			Percent: strconv.FormatFloat(percent, 'f', 2, 64),
		})
	}

	return shares
}
