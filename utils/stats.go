package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	Population           int
	PeakPopulation       int
	Edits                int
	StartTime            time.Time

	lastStep time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records a completed generation observed at now
func (s *Stats) Update(generation int, population int, now time.Time) {
	s.TotalGenerations = generation
	s.Population = population
	s.PeakPopulation = max(s.PeakPopulation, population)

	if !s.lastStep.IsZero() {
		if d := now.Sub(s.lastStep); d > 0 {
			s.GenerationsPerSecond = 1.0 / d.Seconds()
		}
	}
	s.lastStep = now

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// RecordEdit counts a pattern placement
func (s *Stats) RecordEdit(population int) {
	s.Edits++
	s.Population = population
	s.PeakPopulation = max(s.PeakPopulation, population)
}
