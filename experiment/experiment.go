// Package experiment builds bandit environments from arm specifications
// and evaluates policies against them, collecting the per-round regret
// and reward sequences keyed by policy name.
//
// Package experiment はアーム仕様からバンディット環境を構築し、
// 方策を評価してラウンド毎のリグレットと報酬の系列を方策名で集計します。
package experiment

import (
	"fmt"
	"io"

	"github.com/sw965/bandit"
	"github.com/sw965/bandit/randsrc"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type ArmSpec struct {
	Bias         float64
	InitialValue float64
}

// NewArmSpecs derives a spec per bias with 1-bias as the initial
// estimate, the optimistic prior the standard experiment uses.
func NewArmSpecs(biases []float64) []ArmSpec {
	specs := make([]ArmSpec, len(biases))
	for i, bias := range biases {
		specs[i] = ArmSpec{Bias: bias, InitialValue: 1.0 - bias}
	}
	return specs
}

type Config struct {
	Specs           []ArmSpec
	BestActionValue float64
	Rounds          int
}

func (c Config) NewMAB() (*bandit.MAB, error) {
	arms := make([]*bandit.Arm, len(c.Specs))
	for i, spec := range c.Specs {
		arms[i] = bandit.NewArm(spec.Bias, spec.InitialValue)
	}
	return bandit.NewMAB(c.BestActionValue, c.Rounds, arms...)
}

// Run evaluates one policy against a freshly constructed environment,
// so that estimates and counters never leak between evaluations.
func (c Config) Run(p bandit.Policy, src randsrc.Source, observers ...bandit.RoundObserver) (bandit.Result, error) {
	m, err := c.NewMAB()
	if err != nil {
		return bandit.Result{}, err
	}
	return m.Run(p, src, observers...)
}

func (c Config) RunAll(ps []bandit.Policy, src randsrc.Source, observers ...bandit.RoundObserver) (map[string]bandit.Result, error) {
	results := make(map[string]bandit.Result, len(ps))
	for _, p := range ps {
		result, err := c.Run(p, src, observers...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Name(), err)
		}
		results[p.Name()] = result
	}
	return results, nil
}

func CumulativeRegret(result bandit.Result) []float64 {
	cum := make([]float64, len(result.Regrets))
	floats.CumSum(cum, result.Regrets)
	return cum
}

func MeanReward(result bandit.Result) float64 {
	return stat.Mean(result.Rewards, nil)
}

// NewConsoleProgress returns an observer that rewrites a progress line
// every interval rounds.
func NewConsoleProgress(w io.Writer, interval int) bandit.RoundObserver {
	return func(round, total int) {
		if round%interval == 0 {
			fmt.Fprintf(w, "\rRound %d/%d", round, total)
		}
	}
}
