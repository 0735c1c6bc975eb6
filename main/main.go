package main

import (
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"

	"github.com/sw965/bandit"
	"github.com/sw965/bandit/experiment"
	"github.com/sw965/bandit/plot"
	"github.com/sw965/bandit/policy"
	"github.com/sw965/bandit/randsrc"
)

func main() {
	const (
		rounds          = 1000000
		epsilon         = 0.5
		epsilonInit     = 0.6
		tau             = 0.01
		c               = 1.0
		numActions      = 10
		bestActionValue = 0.7
	)

	biases := make([]float64, numActions)
	for i := range biases {
		biases[i] = 1.0 / float64(i+5)
	}

	config := experiment.Config{
		Specs:           experiment.NewArmSpecs(biases),
		BestActionValue: bestActionValue,
		Rounds:          rounds,
	}

	policies := []bandit.Policy{
		policy.Random{},
		policy.EpsilonGreedy{Epsilon: epsilon},
		policy.DecayingEpsilonGreedy{EpsilonInit: epsilonInit},
		policy.UCB{C: c},
		policy.Softmax{Tau: tau},
	}

	src := randsrc.NewPCG()
	progress := experiment.NewConsoleProgress(os.Stdout, 100)

	results := make(map[string]bandit.Result, len(policies))
	for _, p := range policies {
		fmt.Println(aurora.Green(p.Name()))
		result, err := config.Run(p, src, progress)
		if err != nil {
			panic(err)
		}
		fmt.Print("\n")
		fmt.Println(aurora.Blue(fmt.Sprintf("mean reward: %.4f", experiment.MeanReward(result))))
		results[p.Name()] = result
	}

	if err := plot.WriteHTML(results, "regret.html"); err != nil {
		panic(err)
	}
}
