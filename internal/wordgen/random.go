package wordgen

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/povarna/generative-ai-agents/word-agent/internal/config"
)

// RandomGenerator draws each word length uniformly from [MinLength,
// MaxLength] and each symbol uniformly from the alphabet.
type RandomGenerator struct {
	minLength int
	maxLength int
	alphabet  []rune

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomGenerator uses rng when given, otherwise a randomly seeded PCG.
func NewRandomGenerator(cfg config.GeneratorConfig, rng *rand.Rand) *RandomGenerator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	alphabet := []rune(cfg.Alphabet)
	if len(alphabet) == 0 {
		alphabet = []rune(config.DefaultAlphabet)
	}

	return &RandomGenerator{
		minLength: cfg.MinLength,
		maxLength: cfg.MaxLength,
		alphabet:  alphabet,
		rng:       rng,
	}
}

func (g *RandomGenerator) Generate(ctx context.Context, n int) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}
	words := make([]string, 0, n)

	g.mu.Lock()
	defer g.mu.Unlock()

	for range n {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		words = append(words, g.word())
	}

	return words, nil
}

func (g *RandomGenerator) word() string {
	size := g.minLength
	if g.maxLength > g.minLength {
		size += g.rng.IntN(g.maxLength - g.minLength + 1)
	}

	word := make([]rune, size)
	for i := range word {
		word[i] = g.alphabet[g.rng.IntN(len(g.alphabet))]
	}
	return string(word)
}
