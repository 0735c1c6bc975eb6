package experiment_test

import (
	"bytes"
	"testing"

	"github.com/sw965/bandit"
	"github.com/sw965/bandit/experiment"
	"github.com/sw965/bandit/policy"
	"github.com/sw965/bandit/randsrc"
)

func TestNewArmSpecs(t *testing.T) {
	biases := []float64{0.2, 0.5, 1.0}
	specs := experiment.NewArmSpecs(biases)
	if len(specs) != len(biases) {
		t.Fatalf("要素数が一致しない: got=%d, want=%d", len(specs), len(biases))
	}
	for i, spec := range specs {
		if spec.Bias != biases[i] || spec.InitialValue != 1.0-biases[i] {
			t.Fatalf("i=%d: got=%+v", i, spec)
		}
	}
}

func TestRunAll(t *testing.T) {
	rounds := 300
	config := experiment.Config{
		Specs:           experiment.NewArmSpecs([]float64{0.0, 0.25, 0.5}),
		BestActionValue: 1.0,
		Rounds:          rounds,
	}

	policies := []bandit.Policy{
		policy.Random{},
		policy.EpsilonGreedy{Epsilon: 0.5},
		policy.DecayingEpsilonGreedy{EpsilonInit: 0.6},
		policy.UCB{C: 1.0},
		policy.Softmax{Tau: 0.1},
	}

	results, err := config.RunAll(policies, randsrc.NewPCGFromSeed(3, 5))
	if err != nil {
		t.Fatal(err)
	}

	if len(results) != len(policies) {
		t.Fatalf("結果の数が一致しない: got=%d, want=%d", len(results), len(policies))
	}
	for _, p := range policies {
		result, ok := results[p.Name()]
		if !ok {
			t.Fatalf("結果に %s が含まれていない", p.Name())
		}
		if len(result.Regrets) != rounds || len(result.Rewards) != rounds {
			t.Fatalf("%s: 系列の長さが一致しない: regrets=%d, rewards=%d, want=%d", p.Name(), len(result.Regrets), len(result.Rewards), rounds)
		}
	}
}

func TestCumulativeRegret(t *testing.T) {
	result := bandit.Result{Regrets: []float64{1.0, 2.0, 3.0}}
	cum := experiment.CumulativeRegret(result)
	want := []float64{1.0, 3.0, 6.0}
	for i := range want {
		if cum[i] != want[i] {
			t.Fatalf("got=%v, want=%v", cum, want)
		}
	}
}

func TestMeanReward(t *testing.T) {
	result := bandit.Result{Rewards: []float64{1.0, 2.0, 3.0}}
	if mean := experiment.MeanReward(result); mean != 2.0 {
		t.Fatalf("got=%v, want=2.0", mean)
	}
}

func TestNewConsoleProgress(t *testing.T) {
	var buf bytes.Buffer
	observer := experiment.NewConsoleProgress(&buf, 2)

	observer(1, 4)
	if buf.Len() != 0 {
		t.Fatalf("interval外のラウンドで出力された: %q", buf.String())
	}

	observer(2, 4)
	if got, want := buf.String(), "\rRound 2/4"; got != want {
		t.Fatalf("got=%q, want=%q", got, want)
	}
}
