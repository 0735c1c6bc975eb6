// Package randsrc abstracts the pseudo-random stream behind a small Source
// interface, so that every stochastic draw in a simulation goes through one
// explicit, substitutable object.
//
// Package randsrc は疑似乱数ストリームを小さな Source インターフェースに抽象化します。
// シミュレーション内の全ての乱数消費が、明示的に渡された差し替え可能な
// オブジェクトを経由するようになります。
package randsrc

import (
	"errors"
	"fmt"
	randv1 "math/rand"
	randv2 "math/rand/v2"

	omwrand "github.com/sw965/omw/math/rand"
	"github.com/sw965/omw/mathx/randx"
)

var (
	ErrEmptyDistribution = errors.New("分布エラー: 要素数が0です")
)

// Source is the only randomness a simulation consumes.
// Float64 draws from the continuous uniform distribution on [0, 1).
// IntN draws a uniform integer in [0, n).
// Categorical draws an index according to the given weights.
type Source interface {
	Float64() float64
	IntN(n int) int
	Categorical(ws []float64) (int, error)
}

type PCG struct {
	rng *randv2.Rand
}

func NewPCG() *PCG {
	return &PCG{rng: randx.NewPCGFromGlobalSeed()}
}

func NewPCGFromSeed(seed1, seed2 uint64) *PCG {
	return &PCG{rng: randv2.New(randv2.NewPCG(seed1, seed2))}
}

func (p *PCG) Float64() float64 {
	return p.rng.Float64()
}

func (p *PCG) IntN(n int) int {
	return p.rng.IntN(n)
}

func (p *PCG) Categorical(ws []float64) (int, error) {
	if len(ws) == 0 {
		return -1, fmt.Errorf("%w", ErrEmptyDistribution)
	}
	return randx.IntByWeight(ws, p.rng)
}

type MT19937 struct {
	rng *randv1.Rand
}

func NewMT19937() *MT19937 {
	return &MT19937{rng: omwrand.NewMt19937()}
}

func (m *MT19937) Float64() float64 {
	return m.rng.Float64()
}

func (m *MT19937) IntN(n int) int {
	return m.rng.Intn(n)
}

func (m *MT19937) Categorical(ws []float64) (int, error) {
	if len(ws) == 0 {
		return -1, fmt.Errorf("%w", ErrEmptyDistribution)
	}
	return omwrand.IntByWeight(ws, m.rng), nil
}

// Sequence is a scripted Source for tests. Each method consumes the next
// element of its slice and panics when the script runs out.
type Sequence struct {
	Floats []float64
	Ints   []int
	Cats   []int

	fi, ii, ci int
}

func (s *Sequence) Float64() float64 {
	if s.fi >= len(s.Floats) {
		panic("BUG: Sequence.Floats を使い切りました")
	}
	f := s.Floats[s.fi]
	s.fi += 1
	return f
}

func (s *Sequence) IntN(n int) int {
	if s.ii >= len(s.Ints) {
		panic("BUG: Sequence.Ints を使い切りました")
	}
	i := s.Ints[s.ii]
	s.ii += 1
	if i < 0 || i >= n {
		panic(fmt.Sprintf("BUG: スクリプトされた値が範囲外です: %d (n=%d)", i, n))
	}
	return i
}

func (s *Sequence) Categorical(ws []float64) (int, error) {
	if len(ws) == 0 {
		return -1, fmt.Errorf("%w", ErrEmptyDistribution)
	}
	if s.ci >= len(s.Cats) {
		panic("BUG: Sequence.Cats を使い切りました")
	}
	i := s.Cats[s.ci]
	s.ci += 1
	return i, nil
}
