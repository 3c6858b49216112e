package model

import "math/rand/v2"

// RandomSource yields uniform draws in [0,1)
type RandomSource interface {
	Float64() float64
}

type defaultSource struct{}

func (defaultSource) Float64() float64 { return rand.Float64() }

// NewSeededSource returns a deterministic RandomSource for the given seed
func NewSeededSource(seed int64) RandomSource {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
