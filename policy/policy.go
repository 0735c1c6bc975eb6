// Package policy implements the exploration policies for the bandit
// environment: uniform random, epsilon-greedy, decaying epsilon-greedy,
// upper confidence bound, and softmax. Each policy is a stateless value;
// everything it needs is read from the environment at call time.
//
// Package policy はバンディット環境に対する探索方策を実装します。
// 一様ランダム、ε-greedy、減衰ε-greedy、UCB、softmax の5つです。
// 方策自体は状態を持たず、必要な情報は呼び出し時に環境から読み取ります。
package policy

import (
	"fmt"
	"math"

	"github.com/sw965/bandit"
	"github.com/sw965/bandit/randsrc"
	"gonum.org/v1/gonum/floats"
)

// 同値の場合は最小のインデックスを返す。
func argmax(xs []float64) int {
	best := 0
	for i, x := range xs[1:] {
		if x > xs[best] {
			best = i + 1
		}
	}
	return best
}

func selectEpsilonGreedy(m *bandit.MAB, epsilon float64, src randsrc.Source) int {
	if src.Float64() < 1.0-epsilon {
		return argmax(m.QValues())
	}
	return src.IntN(m.NumActions())
}

type Random struct{}

func (p Random) Name() string {
	return "random"
}

func (p Random) Select(m *bandit.MAB, src randsrc.Source) (int, error) {
	return src.IntN(m.NumActions()), nil
}

// EpsilonGreedy exploits the current argmax estimate with probability
// 1-Epsilon and otherwise draws a uniform arm (the argmax arm included).
type EpsilonGreedy struct {
	Epsilon float64
}

func (p EpsilonGreedy) Name() string {
	return "epsilon-greedy"
}

func (p EpsilonGreedy) Select(m *bandit.MAB, src randsrc.Source) (int, error) {
	return selectEpsilonGreedy(m, p.Epsilon, src), nil
}

// DecayingEpsilonGreedy behaves like EpsilonGreedy with an effective
// epsilon of EpsilonInit before the first pull and EpsilonInit/stepCount
// afterwards. The effective epsilon can exceed 1 while stepCount is
// below EpsilonInit; it is intentionally not clamped.
type DecayingEpsilonGreedy struct {
	EpsilonInit float64
}

func (p DecayingEpsilonGreedy) Name() string {
	return "decaying-epsilon-greedy"
}

func (p DecayingEpsilonGreedy) Select(m *bandit.MAB, src randsrc.Source) (int, error) {
	epsilon := p.EpsilonInit
	if step := m.StepCount(); step != 0 {
		epsilon = p.EpsilonInit / float64(step)
	}
	return selectEpsilonGreedy(m, epsilon, src), nil
}

// UCB selects the arm maximizing estimate + C*sqrt(log(step)/(count+1)).
// count+1 で一度も引かれていないアームのゼロ除算を避ける。
type UCB struct {
	C float64
}

func (p UCB) Name() string {
	return "ucb"
}

func (p UCB) Select(m *bandit.MAB, src randsrc.Source) (int, error) {
	qs := m.QValues()
	step := m.StepCount()

	// log(0)が定義出来ない為、最初のステップは信頼区間なしで選ぶ。
	if step == 0 {
		return argmax(qs), nil
	}

	counts := m.Counts()
	logStep := math.Log(float64(step))
	scores := make([]float64, len(qs))
	for i, q := range qs {
		scores[i] = q + p.C*math.Sqrt(logStep/float64(counts[i]+1))
	}
	return argmax(scores), nil
}

// Softmax samples an arm with probability proportional to
// exp(estimate/Tau). Tau > 0 is a caller contract and is not validated.
type Softmax struct {
	Tau float64
}

func (p Softmax) Name() string {
	return "softmax"
}

func (p Softmax) Select(m *bandit.MAB, src randsrc.Source) (int, error) {
	qs := m.QValues()
	ws := make([]float64, len(qs))
	for i, q := range qs {
		ws[i] = math.Exp(q / p.Tau)
	}

	z := floats.Sum(ws)
	ps := make([]float64, len(ws))
	for i, w := range ws {
		ps[i] = w / z
	}

	action, err := src.Categorical(ps)
	if err != nil {
		return -1, fmt.Errorf("softmax: %w", err)
	}
	return action, nil
}
