package model

import "strconv"

type ChartQuery struct {
	Top string `form:"top"`
}

// DisplayCount returns the number of languages to display on the chart
// the top parameter is optional: missing, malformed or non positive values
// all fall back to the default count instead of failing the request
func (params ChartQuery) DisplayCount(defaultCount int) int {
	top, err := strconv.Atoi(params.Top)

	if err != nil || top <= 0 {
		return defaultCount
	}

	return top
}
