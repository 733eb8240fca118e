// Package player holds automated players that pick options on their own.
package player

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/tatianab/advgame/internal/models"
)

// Turn is what a player sees: the stage, its visible options in display
// order, and the stats.
type Turn struct {
	Stage   models.Stage
	Options []models.Option
	Stats   []models.Stat
}

var ErrNoOptions = errors.New("no options to choose from")

// Chooser picks one of turn.Options and returns its 1-based number.
type Chooser interface {
	Choose(ctx context.Context, turn Turn) (int, error)
}

// First always takes the first visible option.
type First struct{}

func (First) Choose(context.Context, Turn) (int, error) { return 1, nil }

// Random picks uniformly, reproducibly for a given seed.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *Random) Choose(_ context.Context, turn Turn) (int, error) {
	if len(turn.Options) == 0 {
		return 0, ErrNoOptions
	}
	return r.rng.IntN(len(turn.Options)) + 1, nil
}
