// Package plot renders the cumulative regret of each evaluated policy
// as an HTML line chart.
//
// Package plot は評価した各方策の累積リグレットをHTMLの折れ線グラフとして描画します。
package plot

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/sw965/bandit"
	"github.com/sw965/bandit/experiment"
)

// NewCumulativeRegretLine builds one series per policy, in name order so
// the output is stable across runs.
func NewCumulativeRegretLine(results map[string]bandit.Result) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeInfographic,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Total Regret",
			Subtitle: "Cumulative regret per round",
		}),
	)

	names := slices.Sorted(maps.Keys(results))

	rounds := 0
	for _, name := range names {
		if n := len(results[name].Regrets); n > rounds {
			rounds = n
		}
	}

	xs := make([]string, rounds)
	for i := range xs {
		xs[i] = fmt.Sprintf("%d", i)
	}
	line.SetXAxis(xs)

	for _, name := range names {
		cum := experiment.CumulativeRegret(results[name])
		items := make([]opts.LineData, len(cum))
		for i, v := range cum {
			items[i] = opts.LineData{Value: v}
		}
		line.AddSeries(name, items)
	}
	return line
}

func Render(results map[string]bandit.Result, w io.Writer) error {
	return NewCumulativeRegretLine(results).Render(w)
}

func WriteHTML(results map[string]bandit.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Render(results, f)
}
