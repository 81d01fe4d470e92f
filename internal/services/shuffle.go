package services

import (
	"math/rand/v2"

	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
)

// SeededLCG is a 64-bit linear congruential generator (Knuth's MMIX constants).
// It exists so that a quiz seed reproduces the same question order; it is not
// a security-relevant random source.
type SeededLCG struct {
	state uint64
}

const (
	lcgMultiplier = 6364136223846793005
	lcgIncrement  = 1442695040888963407
)

func NewSeededLCG(seed int64) *SeededLCG {
	return &SeededLCG{state: uint64(seed)}
}

// Uint64 advances the generator; it also makes SeededLCG a rand.Source.
func (g *SeededLCG) Uint64() uint64 {
	g.state = g.state*lcgMultiplier + lcgIncrement
	return g.state
}

// Float64 returns a value in [0, 1) from the top 53 bits of the state.
func (g *SeededLCG) Float64() float64 {
	return float64(g.Uint64()>>11) / (1 << 53)
}

// IntN returns a value in [0, n).
func (g *SeededLCG) IntN(n int) int {
	return int(g.Float64() * float64(n))
}

// Shuffle is a Fisher–Yates pass driven by the generator.
func (g *SeededLCG) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, g.IntN(i+1))
	}
}

// shuffleQuestions permutes questions in place. A nil seed uses the process RNG.
func shuffleQuestions(questions []*models.Question, seed *int64) {
	swap := func(i, j int) { questions[i], questions[j] = questions[j], questions[i] }
	if seed == nil {
		rand.Shuffle(len(questions), swap)
		return
	}
	NewSeededLCG(*seed).Shuffle(len(questions), swap)
}
