// Package bandit implements the multi-armed-bandit simulation loop:
// arms with a hidden bias, incremental value estimation on every pull,
// and per-round regret against a known best action value.
//
// Package bandit は多腕バンディットのシミュレーションループを実装します。
// 隠れたバイアスを持つアーム、引く度の逐次的な価値推定、
// 既知の最適行動価値に対するラウンド毎のリグレットを扱います。
package bandit

import (
	"errors"
	"fmt"

	"github.com/sw965/bandit/randsrc"
)

var (
	ErrNoArms           = errors.New("アームエラー: 要素数が0です")
	ErrActionOutOfRange = errors.New("actionエラー: 範囲外です")
	ErrNilPolicy        = errors.New("Policyエラー: nilです")
)

type Arm struct {
	bias  float64
	q     float64
	count int
}

// NewArm creates an arm with a fixed bias and a caller-supplied prior
// for the estimated value.
func NewArm(bias, initialValue float64) *Arm {
	return &Arm{bias: bias, q: initialValue}
}

func (a *Arm) Bias() float64 {
	return a.bias
}

func (a *Arm) QValue() float64 {
	return a.q
}

func (a *Arm) Count() int {
	return a.count
}

// Pull draws reward = bias + U[0,1) and folds it into the running mean.
// 報酬の履歴は保持せず、逐次平均のみを更新する。
func (a *Arm) Pull(src randsrc.Source) float64 {
	a.count += 1
	reward := a.bias + src.Float64()
	a.q += (reward - a.q) / float64(a.count)
	return reward
}

// Policy maps the current environment state to an action index.
// Policies read the MAB through its accessors and never mutate it.
type Policy interface {
	Name() string
	Select(m *MAB, src randsrc.Source) (int, error)
}

// RoundObserver is notified after every completed round with the
// 1-based round number and the total number of rounds.
type RoundObserver func(round, total int)

type Result struct {
	Regrets []float64
	Rewards []float64
}

type MAB struct {
	arms            []*Arm
	step            int
	bestActionValue float64
	rounds          int
}

func NewMAB(bestActionValue float64, rounds int, arms ...*Arm) (*MAB, error) {
	if len(arms) == 0 {
		return nil, fmt.Errorf("%w: アームが1つも与えられていません", ErrNoArms)
	}
	return &MAB{arms: arms, bestActionValue: bestActionValue, rounds: rounds}, nil
}

func (m *MAB) NumActions() int {
	return len(m.arms)
}

// StepCount is the number of pulls executed so far. It increases by
// exactly 1 per Pull and never resets within a run.
func (m *MAB) StepCount() int {
	return m.step
}

func (m *MAB) Rounds() int {
	return m.rounds
}

func (m *MAB) BestActionValue() float64 {
	return m.bestActionValue
}

func (m *MAB) QValues() []float64 {
	qs := make([]float64, len(m.arms))
	for i, arm := range m.arms {
		qs[i] = arm.QValue()
	}
	return qs
}

func (m *MAB) Counts() []int {
	counts := make([]int, len(m.arms))
	for i, arm := range m.arms {
		counts[i] = arm.Count()
	}
	return counts
}

// Pull executes one pull against the chosen arm and returns the reward
// and the arm's updated estimate.
func (m *MAB) Pull(action int, src randsrc.Source) (float64, float64, error) {
	if action < 0 || action >= len(m.arms) {
		return 0.0, 0.0, fmt.Errorf("%w: action=%d, アーム数=%d", ErrActionOutOfRange, action, len(m.arms))
	}
	m.step += 1
	arm := m.arms[action]
	reward := arm.Pull(src)
	return reward, arm.QValue(), nil
}

// Run executes the full experiment: per round the policy selects an
// action, the arm is pulled, and regret = bestActionValue - updated
// estimate of the pulled arm is recorded. The loop is strictly
// sequential. ラウンドの並び替えやバッチ化は行わない。
func (m *MAB) Run(p Policy, src randsrc.Source, observers ...RoundObserver) (Result, error) {
	if p == nil {
		return Result{}, fmt.Errorf("%w", ErrNilPolicy)
	}

	result := Result{
		Regrets: make([]float64, 0, m.rounds),
		Rewards: make([]float64, 0, m.rounds),
	}

	for i := 0; i < m.rounds; i++ {
		action, err := p.Select(m, src)
		if err != nil {
			return Result{}, err
		}

		reward, q, err := m.Pull(action, src)
		if err != nil {
			return Result{}, err
		}

		result.Regrets = append(result.Regrets, m.bestActionValue-q)
		result.Rewards = append(result.Rewards, reward)

		for _, observer := range observers {
			observer(i+1, m.rounds)
		}
	}
	return result, nil
}
