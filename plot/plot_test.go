package plot_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sw965/bandit"
	"github.com/sw965/bandit/plot"
)

func TestRender(t *testing.T) {
	results := map[string]bandit.Result{
		"random": {Regrets: []float64{1.0, 0.5, 0.25}},
		"ucb":    {Regrets: []float64{0.5, 0.25, 0.125}},
	}

	var buf bytes.Buffer
	if err := plot.Render(results, &buf); err != nil {
		t.Fatal(err)
	}

	html := buf.String()
	if len(html) == 0 {
		t.Fatal("出力が空")
	}
	for _, name := range []string{"random", "ucb"} {
		if !strings.Contains(html, name) {
			t.Fatalf("出力に系列名 %q が含まれていない", name)
		}
	}
}
