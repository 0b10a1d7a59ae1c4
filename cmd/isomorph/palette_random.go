package main

import (
	"math/rand/v2"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// RandomPalette draws an independent random colour per key. The colour of a
// key depends only on (seed, key), so one run is self-consistent; a fresh
// seed is picked per run unless one is given.
type RandomPalette struct {
	size int
	seed uint64
}

func NewRandomPalette(size int, seed uint64) (*RandomPalette, error) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandomPalette{size: size, seed: seed}, nil
}

func (p *RandomPalette) Name() string { return "random" }

func (p *RandomPalette) Seed() uint64 { return p.seed }

func (p *RandomPalette) Color(key ColorKey) Color {
	rng := rand.New(rand.NewPCG(p.seed, uint64(key.Reify(p.size))))
	return rgbColor{colorful.Hsl(rng.Float64()*360, 0.6+rng.Float64()*0.4, 0.5+rng.Float64()*0.2)}
}
